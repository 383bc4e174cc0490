// Package domain holds presentation, plan, and outcome types
package domain

import (
	"context"
	"time"

	perr "matchmaker/internal/platform/errors"
	matching "matchmaker/internal/services/matching/domain"
)

// Outcome is the closed presentation-outcome vocabulary
type Outcome string

// Outcome values
const (
	OutcomePending  Outcome = "pending"
	OutcomeAccepted Outcome = "accepted"
	OutcomeDeclined Outcome = "declined"
)

// ParseOutcome validates membership in the outcome vocabulary
func ParseOutcome(s string) (Outcome, error) {
	switch Outcome(s) {
	case OutcomePending, OutcomeAccepted, OutcomeDeclined:
		return Outcome(s), nil
	}
	return "", perr.InvalidArgf("unknown outcome %q", s)
}

// Decided reports whether the outcome is terminal
func (o Outcome) Decided() bool { return o == OutcomeAccepted || o == OutcomeDeclined }

// Role selects which side of a presentation a listing filters on
type Role string

// Role values
const (
	RoleRequester Role = "requester"
	RoleCandidate Role = "candidate"
)

// ParseRole validates a listing role
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleRequester, RoleCandidate:
		return Role(s), nil
	}
	return "", perr.InvalidArgf("unknown role %q", s)
}

// Presentation is one exposure of a candidate to a requester
type Presentation struct {
	ID              int64      `json:"id"`
	RequesterID     int64      `json:"requester_id"`
	CandidateID     int64      `json:"candidate_id"`
	PlanID          *int64     `json:"plan_id,omitempty"`
	TemplateKey     *string    `json:"template_key,omitempty"`
	TemplateVersion *int       `json:"template_version,omitempty"`
	RenderedMessage *string    `json:"rendered_message,omitempty"`
	Outcome         Outcome    `json:"outcome"`
	PresentedAt     time.Time  `json:"presented_at"`
	DecidedAt       *time.Time `json:"decided_at,omitempty"`
}

// Plan groups presentations created in one curated batch
type Plan struct {
	ID        int64     `json:"id"`
	CreatedBy string    `json:"created_by"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// PlanFill is the read-only preview for one requester under a plan
type PlanFill struct {
	RequesterID int64                      `json:"requester_id"`
	Candidates  []matching.CandidateResult `json:"candidates"`
}

// PlanCommit summarizes a committed plan presentation run
type PlanCommit struct {
	PlanID  int64  `json:"plan_id"`
	BatchID string `json:"batch_id"`
	Created int    `json:"created"`
	Skipped int    `json:"skipped"`
}

// ServicePort is the presentations contract other modules bind against
type ServicePort interface {
	Present(ctx context.Context, requesterID int64, in PresentInput) (Presentation, error)
	Decide(ctx context.Context, id int64, outcome Outcome) (Presentation, error)
	ListPending(ctx context.Context, limit int) ([]Presentation, error)
	ListForUser(ctx context.Context, userID int64, role Role, offset, limit int) ([]Presentation, error)

	CreatePlan(ctx context.Context, in PlanCreateInput) (Plan, error)
	GetPlan(ctx context.Context, id int64) (Plan, error)
	ListPlans(ctx context.Context) ([]Plan, error)
	FillPlan(ctx context.Context, planID int64, perUserLimit int, cooldown time.Duration) ([]PlanFill, error)
	PresentPlan(ctx context.Context, planID int64, in PresentPlanInput) (PlanCommit, error)
}
