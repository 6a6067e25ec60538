package web

import (
	"strconv"

	domainrivalry "github.com/preston-bernstein/rivalry-service/internal/domain/rivalry"
)

// PageData feeds every page template.
type PageData struct {
	Title   string
	Version string
	// Refresh, when positive, makes the loading page reload itself after that many seconds.
	Refresh int
	// Live enables the script that connects to the live channel.
	Live    bool
	Message string
	Excuse  string
	Summary domainrivalry.Summary
	Cards   []StatCard
}

// StatCard is one tile in the key stats grid.
type StatCard struct {
	Label       string
	Value       string
	Description string
}

// StatCards builds the key stats grid from a summary.
func StatCards(s domainrivalry.Summary) []StatCard {
	return []StatCard{
		{
			Label:       "All-Time Leader",
			Value:       s.Leader,
			Description: leaderDescription(s.Leader),
		},
		{
			Label:       "Longest Win Streak",
			Value:       s.StreakLabel,
			Description: "Held by " + s.StreakTeam + ". Consistency is king.",
		},
		{
			Label:       "Last 10 Matchups",
			Value:       s.Last10,
			Description: "A decade of data tells a very one-sided story.",
		},
		{
			Label:       "Last Matchup Result",
			Value:       s.LastMatchupScore,
			Description: "Winner: " + s.LastMatchupWinner + " on " + s.LastMatchupDate + ".",
		},
		{
			Label:       "Games Played",
			Value:       strconv.Itoa(s.TotalGames),
			Description: "A historic tally of the NFL's oldest and most frequent rivalry.",
		},
		{
			Label:       "Rivalry Health",
			Value:       "Critical",
			Description: "Tensions remain high despite the statistical gap.",
		},
	}
}

func leaderDescription(leader string) string {
	switch leader {
	case domainrivalry.TeamPackers:
		return "The Packers took the all-time lead in 2017 and haven't looked back."
	case domainrivalry.TeamBears:
		return "The Bears still hold the all-time edge in the series."
	default:
		return "The all-time series is dead even."
	}
}
