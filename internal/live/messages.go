package live

// Server to client message types.
const (
	MsgTick      = "tick"
	MsgExcuse    = "excuse"
	MsgShare     = "share"
	MsgCopied    = "copied"
	MsgCopyError = "copy_error"
	MsgError     = "error"
)

// Client to server message types.
const (
	MsgNextExcuse = "next_excuse"
	MsgCopy       = "copy"
	MsgCopyFailed = "copy_failed"
)

// Counter names match the data-counter attributes on the page.
const (
	CounterPackers = "packers"
	CounterTies    = "ties"
	CounterBears   = "bears"
)

// Message is one frame on the live channel in either direction.
type Message struct {
	Type    string `json:"type"`
	Counter string `json:"counter,omitempty"`
	Value   *int   `json:"value,omitempty"`
	Text    string `json:"text,omitempty"`
	Copied  *bool  `json:"copied,omitempty"`
	Reason  string `json:"reason,omitempty"`
	Error   string `json:"error,omitempty"`
}

func tickMessage(counter string, value int) Message {
	return Message{Type: MsgTick, Counter: counter, Value: &value}
}

func copiedMessage(copied bool) Message {
	return Message{Type: MsgCopied, Copied: &copied}
}
