package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrMethod   = "method"
	AttrPath     = "path"
	AttrStatus   = "status"
	AttrProvider = "provider"
	AttrOutcome  = "outcome"
	AttrSource   = "source"
)

// Values for AttrSource on excuse and share metrics.
const (
	SourceHTTP = "http"
	SourceLive = "live"
)
