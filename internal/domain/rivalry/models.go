package rivalry

// Record is the head-to-head history between the two teams. It is loaded once and never mutated.
type Record struct {
	UpdatedThroughSeason string   `json:"updatedThroughSeason"`
	AllTime              AllTime  `json:"allTime"`
	Eras                 []Era    `json:"eras"`
	Excuses              []string `json:"excuses"`
	CTALinks             CTALinks `json:"ctaLinks"`
}

// AllTime aggregates every meeting. PackersWinPct is trusted as provided.
type AllTime struct {
	PackersWins      int     `json:"packersWins"`
	BearsWins        int     `json:"bearsWins"`
	Ties             int     `json:"ties"`
	PackersWinPct    float64 `json:"packersWinPct"`
	LastMatchup      Matchup `json:"lastMatchup"`
	LongestWinStreak Streak  `json:"longestWinStreak"`
	Last10           Tally   `json:"last10"`
}

// Matchup is a single game result.
type Matchup struct {
	Date         string `json:"date"`
	PackersScore int    `json:"packersScore"`
	BearsScore   int    `json:"bearsScore"`
	Winner       string `json:"winner"`
}

// Streak is the longest run of consecutive wins by one team.
type Streak struct {
	Team  string `json:"team"`
	Games int    `json:"games"`
}

// Tally is a win/loss/tie split over a window of games. It conventionally covers ten games.
type Tally struct {
	PackersWins int `json:"packersWins"`
	BearsWins   int `json:"bearsWins"`
	Ties        int `json:"ties"`
}

// Era is a labeled span of the rivalry. Slice order is display order.
type Era struct {
	Name    string `json:"name"`
	Packers int    `json:"packers"`
	Bears   int    `json:"bears"`
	Ties    int    `json:"ties"`
	Note    string `json:"note"`
}

// CTALinks are external pages opened in a new browsing context.
type CTALinks struct {
	TicketsURL string `json:"ticketsUrl"`
	GearURL    string `json:"gearUrl"`
}
