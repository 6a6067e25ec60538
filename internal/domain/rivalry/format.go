package rivalry

import (
	"errors"
	"fmt"
	"strconv"
)

const (
	TeamPackers = "Green Bay"
	TeamBears   = "Chicago"
	leaderEven  = "Even"
)

var (
	// ErrNoExcuses reports a record whose excuse list is empty.
	ErrNoExcuses = errors.New("rivalry: excuses must not be empty")
	// ErrNegativeCount reports a record with a negative all-time tally.
	ErrNegativeCount = errors.New("rivalry: all-time counts must be non-negative")
)

// Check enforces the preconditions consumers rely on. It is not a schema validator.
func (r Record) Check() error {
	if r.AllTime.PackersWins < 0 || r.AllTime.BearsWins < 0 || r.AllTime.Ties < 0 {
		return ErrNegativeCount
	}
	if len(r.Excuses) == 0 {
		return ErrNoExcuses
	}
	return nil
}

// TotalGames is the number of meetings across both teams' wins and ties.
func (a AllTime) TotalGames() int {
	return a.PackersWins + a.BearsWins + a.Ties
}

// WinPctLabel renders the provided win percentage with one decimal, e.g. "53.7%".
func (a AllTime) WinPctLabel() string {
	return strconv.FormatFloat(a.PackersWinPct*100, 'f', 1, 64) + "%"
}

// Leader names the team with more all-time wins.
func (a AllTime) Leader() string {
	switch {
	case a.PackersWins > a.BearsWins:
		return TeamPackers
	case a.BearsWins > a.PackersWins:
		return TeamBears
	default:
		return leaderEven
	}
}

// Label renders the split as "packers-bears".
func (t Tally) Label() string {
	return fmt.Sprintf("%d-%d", t.PackersWins, t.BearsWins)
}

// ScoreLabel renders the final score as "packers - bears".
func (m Matchup) ScoreLabel() string {
	return fmt.Sprintf("%d - %d", m.PackersScore, m.BearsScore)
}

// Label renders the streak length, e.g. "8 Games".
func (s Streak) Label() string {
	return fmt.Sprintf("%d Games", s.Games)
}
