package rivalry

// Summary is the display-ready projection of a record.
type Summary struct {
	UpdatedThroughSeason string `json:"updatedThroughSeason"`
	PackersWins          int    `json:"packersWins"`
	BearsWins            int    `json:"bearsWins"`
	Ties                 int    `json:"ties"`
	TotalGames           int    `json:"totalGames"`
	WinPct               string `json:"winPct"`
	Leader               string `json:"leader"`
	LastMatchupWinner    string `json:"lastMatchupWinner"`
	LastMatchupDate      string `json:"lastMatchupDate"`
	LastMatchupScore     string `json:"lastMatchupScore"`
	StreakTeam           string `json:"streakTeam"`
	StreakLabel          string `json:"streakLabel"`
	Last10               string `json:"last10"`
	Eras                 []Era  `json:"eras"`
	TicketsURL           string `json:"ticketsUrl"`
	GearURL              string `json:"gearUrl"`
}

// Summarize computes every displayed aggregate from the record without recomputing trusted fields.
func Summarize(r *Record) Summary {
	if r == nil {
		return Summary{}
	}
	a := r.AllTime
	eras := make([]Era, len(r.Eras))
	copy(eras, r.Eras)
	return Summary{
		UpdatedThroughSeason: r.UpdatedThroughSeason,
		PackersWins:          a.PackersWins,
		BearsWins:            a.BearsWins,
		Ties:                 a.Ties,
		TotalGames:           a.TotalGames(),
		WinPct:               a.WinPctLabel(),
		Leader:               a.Leader(),
		LastMatchupWinner:    a.LastMatchup.Winner,
		LastMatchupDate:      a.LastMatchup.Date,
		LastMatchupScore:     a.LastMatchup.ScoreLabel(),
		StreakTeam:           a.LongestWinStreak.Team,
		StreakLabel:          a.LongestWinStreak.Label(),
		Last10:               a.Last10.Label(),
		Eras:                 eras,
		TicketsURL:           r.CTALinks.TicketsURL,
		GearURL:              r.CTALinks.GearURL,
	}
}
