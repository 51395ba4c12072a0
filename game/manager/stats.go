package manager

import (
	"sort"
	"time"
)

// ScoreStats aggregates the rounds kept in the history window.
type ScoreStats struct {
	Rounds          int
	Wins            int
	AverageScore    float64
	MedianScore     float64
	MaxScore        int
	AverageDuration time.Duration
	MaxDuration     time.Duration
}

func computeStats(rounds []RoundSummary) ScoreStats {
	var st ScoreStats
	if len(rounds) == 0 {
		return st
	}
	st.Rounds = len(rounds)

	scores := make([]float64, 0, len(rounds))
	var totalScore float64
	var totalDuration time.Duration
	for _, r := range rounds {
		if r.Won {
			st.Wins++
		}
		scores = append(scores, float64(r.Score))
		totalScore += float64(r.Score)
		totalDuration += r.Duration
		st.MaxScore = max(st.MaxScore, r.Score)
		st.MaxDuration = max(st.MaxDuration, r.Duration)
	}
	st.AverageScore = totalScore / float64(len(rounds))
	st.AverageDuration = totalDuration / time.Duration(len(rounds))

	sort.Float64s(scores)
	mid := len(scores) / 2
	if len(scores)%2 == 0 {
		st.MedianScore = (scores[mid-1] + scores[mid]) / 2
	} else {
		st.MedianScore = scores[mid]
	}
	return st
}
