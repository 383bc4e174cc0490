package service

import (
	"math"
	"sort"

	ptime "matchmaker/internal/platform/time"
	"matchmaker/internal/services/matching/domain"
)

// Score converts informational reasons into a ranking score.
// Base 0.0, plus 0.1 for residence proximity, rounded to three decimals
func Score(reasons []string) float64 {
	s := 0.0
	for _, r := range reasons {
		if r == domain.ReasonResidenceProximity {
			s += 0.1
		}
	}
	return math.Round(s*1000) / 1000
}

// rank orders results for fair exposure: least-presented first, then the
// longest-unseen, then score descending, then candidate id for stability
func rank(results []domain.CandidateResult) {
	sort.Slice(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.PresentedCount != b.PresentedCount {
			return a.PresentedCount < b.PresentedCount
		}
		at, bt := ptime.OrEpoch(a.LastPresented), ptime.OrEpoch(b.LastPresented)
		if !at.Equal(bt) {
			return at.Before(bt)
		}
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		return a.CandidateID < b.CandidateID
	})
}
