// Package service contains presentation recording, decisions, and plans
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"matchmaker/internal/modkit/repokit"
	perr "matchmaker/internal/platform/errors"
	"matchmaker/internal/platform/logger"
	matching "matchmaker/internal/services/matching/domain"
	"matchmaker/internal/services/presentations/domain"
	"matchmaker/internal/services/presentations/repo"
	templates "matchmaker/internal/services/templates/domain"
)

// Service is the presentations service contract
type Service interface{ domain.ServicePort }

// Svc implements Service over a bound repo and collaborator ports
type Svc struct {
	Repo repo.Repo
	db   repokit.TxRunner

	users    matching.UserPort
	tpl      templates.ServicePort
	matching matching.ServicePort
}

// New creates a presentations service. Panics on nil deps
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], users matching.UserPort, tpl templates.ServicePort, match matching.ServicePort) *Svc {
	if db == nil {
		panic("presentations.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("presentations.Service requires a non nil Repo binder")
	}
	if users == nil || tpl == nil || match == nil {
		panic("presentations.Service requires user, template, and matching ports")
	}
	return &Svc{Repo: binder.Bind(db), db: db, users: users, tpl: tpl, matching: match}
}

const defaultPendingLimit = 100

// Present records one exposure with a rendered intro message
func (s *Svc) Present(ctx context.Context, requesterID int64, in domain.PresentInput) (domain.Presentation, error) {
	if requesterID == in.CandidateID {
		return domain.Presentation{}, perr.InvalidArgf("cannot present a user to themselves")
	}

	requester, err := s.users.Get(ctx, requesterID)
	if err != nil {
		return domain.Presentation{}, err
	}
	candidate, err := s.users.Get(ctx, in.CandidateID)
	if err != nil {
		return domain.Presentation{}, err
	}
	if in.PlanID != nil {
		if _, err := s.Repo.GetPlan(ctx, *in.PlanID); err != nil {
			return domain.Presentation{}, err
		}
	}

	rendered, err := s.tpl.RenderIntro(ctx, in.TemplateKey, in.TemplateVersion, requester, candidate)
	if err != nil {
		return domain.Presentation{}, err
	}

	return s.Repo.Insert(ctx, domain.Presentation{
		RequesterID:     requester.ID,
		CandidateID:     candidate.ID,
		PlanID:          in.PlanID,
		TemplateKey:     &rendered.Key,
		TemplateVersion: &rendered.Version,
		RenderedMessage: &rendered.Message,
		Outcome:         domain.OutcomePending,
	})
}

// Decide resolves a pending presentation to accepted or declined
func (s *Svc) Decide(ctx context.Context, id int64, outcome domain.Outcome) (domain.Presentation, error) {
	if !outcome.Decided() {
		return domain.Presentation{}, perr.InvalidArgf("outcome must be accepted or declined")
	}

	p, err := s.Repo.Get(ctx, id)
	if err != nil {
		return domain.Presentation{}, err
	}
	if p.Outcome.Decided() {
		return domain.Presentation{}, perr.Conflictf("presentation %d already %s", id, p.Outcome)
	}

	ok, err := s.Repo.Decide(ctx, id, outcome)
	if err != nil {
		return domain.Presentation{}, err
	}
	if !ok {
		return domain.Presentation{}, perr.Conflictf("presentation %d already decided", id)
	}
	return s.Repo.Get(ctx, id)
}

// ListPending returns undecided deliveries, oldest first
func (s *Svc) ListPending(ctx context.Context, limit int) ([]domain.Presentation, error) {
	if limit <= 0 {
		limit = defaultPendingLimit
	}
	return s.Repo.ListPending(ctx, limit)
}

// ListForUser returns presentations where the user played the given role
func (s *Svc) ListForUser(ctx context.Context, userID int64, role domain.Role, offset, limit int) ([]domain.Presentation, error) {
	if limit <= 0 {
		limit = defaultPendingLimit
	}
	if _, err := s.users.Get(ctx, userID); err != nil {
		return nil, err
	}
	return s.Repo.ListByRole(ctx, userID, role, offset, limit)
}

// CreatePlan opens a curated plan
func (s *Svc) CreatePlan(ctx context.Context, in domain.PlanCreateInput) (domain.Plan, error) {
	return s.Repo.InsertPlan(ctx, domain.Plan{CreatedBy: in.CreatedBy, Notes: in.Notes})
}

// GetPlan returns one plan
func (s *Svc) GetPlan(ctx context.Context, id int64) (domain.Plan, error) {
	return s.Repo.GetPlan(ctx, id)
}

// ListPlans returns plans, newest first
func (s *Svc) ListPlans(ctx context.Context) ([]domain.Plan, error) {
	return s.Repo.ListPlans(ctx)
}

// FillPlan previews up to perUserLimit mutual candidates for every active
// user. Read-only, nothing is recorded
func (s *Svc) FillPlan(ctx context.Context, planID int64, perUserLimit int, cooldown time.Duration) ([]domain.PlanFill, error) {
	if _, err := s.Repo.GetPlan(ctx, planID); err != nil {
		return nil, err
	}
	if perUserLimit <= 0 {
		perUserLimit = 3
	}

	subjects, err := s.users.List(ctx, 0, 10_000)
	if err != nil {
		return nil, err
	}

	fills := make([]domain.PlanFill, 0, len(subjects))
	for _, subject := range subjects {
		results, err := s.matching.MutualCandidates(ctx, subject, cooldown, perUserLimit)
		if err != nil {
			return nil, err
		}
		fills = append(fills, domain.PlanFill{RequesterID: subject.ID, Candidates: results})
	}
	return fills, nil
}

// PresentPlan commits a fill into presentation rows, skipping pairs already
// presented under the plan
func (s *Svc) PresentPlan(ctx context.Context, planID int64, in domain.PresentPlanInput) (domain.PlanCommit, error) {
	cooldown := time.Duration(in.CooldownDays) * 24 * time.Hour
	fills, err := s.FillPlan(ctx, planID, in.PerUserLimit, cooldown)
	if err != nil {
		return domain.PlanCommit{}, err
	}

	commit := domain.PlanCommit{PlanID: planID, BatchID: uuid.NewString()}
	for _, fill := range fills {
		requester, err := s.users.Get(ctx, fill.RequesterID)
		if err != nil {
			return domain.PlanCommit{}, err
		}
		for _, cand := range fill.Candidates {
			seen, err := s.Repo.ExistsPair(ctx, fill.RequesterID, cand.CandidateID, planID)
			if err != nil {
				return domain.PlanCommit{}, err
			}
			if seen {
				commit.Skipped++
				continue
			}

			candidate, err := s.users.Get(ctx, cand.CandidateID)
			if err != nil {
				return domain.PlanCommit{}, err
			}
			rendered, err := s.tpl.RenderIntro(ctx, in.TemplateKey, in.TemplateVersion, requester, candidate)
			if err != nil {
				return domain.PlanCommit{}, err
			}

			if _, err := s.Repo.Insert(ctx, domain.Presentation{
				RequesterID:     requester.ID,
				CandidateID:     candidate.ID,
				PlanID:          &planID,
				TemplateKey:     &rendered.Key,
				TemplateVersion: &rendered.Version,
				RenderedMessage: &rendered.Message,
				Outcome:         domain.OutcomePending,
			}); err != nil {
				if perr.IsCode(err, perr.ErrorCodeDuplicateKey) {
					commit.Skipped++
					continue
				}
				return domain.PlanCommit{}, err
			}
			commit.Created++
		}
	}

	logger.C(ctx).Info().
		Int64("plan_id", planID).
		Str("batch_id", commit.BatchID).
		Int("created", commit.Created).
		Int("skipped", commit.Skipped).
		Msg("plan presented")
	return commit, nil
}
