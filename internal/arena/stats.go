package arena

import (
	"math"
)

type Stats struct {
	Wins, Losses, Draws int
	WinningFraction     float64
	EloDifference       float64
	LOS                 float64
}

func (s *Stats) add(r GameResult) {
	switch r.Points() {
	case 1:
		s.Wins++
	case 0:
		s.Losses++
	default:
		s.Draws++
	}
	*s = computeStat(s.Wins, s.Losses, s.Draws)
}

func (s Stats) Games() int {
	return s.Wins + s.Losses + s.Draws
}

// https://www.chessprogramming.org/Match_Statistics
func computeStat(wins, losses, draws int) Stats {
	var games = wins + losses + draws
	var stats = Stats{Wins: wins, Losses: losses, Draws: draws}
	if games == 0 {
		return stats
	}
	stats.WinningFraction = (float64(wins) + 0.5*float64(draws)) / float64(games)
	stats.EloDifference = -math.Log(1/stats.WinningFraction-1) * 400 / math.Ln10
	if wins+losses != 0 {
		stats.LOS = 0.5 + 0.5*math.Erf(float64(wins-losses)/math.Sqrt(2*float64(wins+losses)))
	} else {
		stats.LOS = 0.5
	}
	return stats
}
