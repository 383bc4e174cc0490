// Package domain holds the matching core types and collaborator ports
package domain

import (
	"context"
	"time"

	users "matchmaker/internal/services/users/domain"
)

// ReasonResidenceProximity is appended when the two residences overlap.
// The only informational reason the evaluator produces today
const ReasonResidenceProximity = "residence-proximity"

// CandidateResult is one ranked row of a candidate query
type CandidateResult struct {
	CandidateID    int64      `json:"candidate_id"`
	Score          float64    `json:"score"`
	Reasons        []string   `json:"reasons"`
	PresentedCount int        `json:"presented_count"`
	LastPresented  *time.Time `json:"last_presented_at,omitempty"`
}

// Assignment pairs a subject with at most one recommended candidate
type Assignment struct {
	Subject     users.Profile
	Recommended *users.Profile
}

// UserPort is the user-store collaborator.
// Satisfied by the users service
type UserPort interface {
	Get(ctx context.Context, id int64) (users.Profile, error)
	GetByNickname(ctx context.Context, nickname string) (users.Profile, error)
	List(ctx context.Context, offset, limit int) ([]users.Profile, error)
	CandidatePool(ctx context.Context, excludeID int64, offset, limit int) ([]users.Profile, error)
}

// HistoryPort is the exposure-history collaborator.
// Satisfied by the presentations service; the core never writes through it
type HistoryPort interface {
	RecentlyPresented(ctx context.Context, requesterID int64, since time.Time) (map[int64]struct{}, error)
	PresentedCounts(ctx context.Context) (map[int64]int, error)
	LastPresentedAt(ctx context.Context) (map[int64]time.Time, error)
}

// EmployerMatcher is the capability seam for same-employer detection so the
// string heuristic can be swapped for a registry without touching the evaluator
type EmployerMatcher interface {
	SameEmployer(a, b string) bool
}

// ServicePort is the matching query surface other modules bind against
type ServicePort interface {
	MutualCandidates(ctx context.Context, requester users.Profile, cooldown time.Duration, limit int) ([]CandidateResult, error)
	SingleMatch(ctx context.Context, userID int64, nickname string) (users.Profile, []users.Profile, error)
	BulkMatch(ctx context.Context) ([]Assignment, error)
}
