package testutil

import "github.com/preston-bernstein/rivalry-service/internal/domain/rivalry"

// SampleRecord returns a record with a 112-96-6 all-time series.
func SampleRecord() rivalry.Record {
	return rivalry.Record{
		UpdatedThroughSeason: "2024",
		AllTime: rivalry.AllTime{
			PackersWins:   112,
			BearsWins:     96,
			Ties:          6,
			PackersWinPct: 0.537,
			LastMatchup: rivalry.Matchup{
				Date:         "2024-11-17",
				PackersScore: 20,
				BearsScore:   19,
				Winner:       rivalry.TeamPackers,
			},
			LongestWinStreak: rivalry.Streak{Team: rivalry.TeamPackers, Games: 11},
			Last10:           rivalry.Tally{PackersWins: 9, BearsWins: 1},
		},
		Eras: []rivalry.Era{
			{Name: "Lambeau vs Halas", Packers: 17, Bears: 27, Ties: 3, Note: "Founders trade blows"},
			{Name: "Favre / Rodgers", Packers: 41, Bears: 13, Note: "Green Bay takes over"},
		},
		Excuses: []string{
			"The wind off the lake changed direction.",
			"Our quarterback was still learning the offense.",
			"The refs were clearly wearing green and gold.",
		},
		CTALinks: rivalry.CTALinks{
			TicketsURL: "https://tickets.example.com/packers-bears",
			GearURL:    "https://gear.example.com/packers",
		},
	}
}
