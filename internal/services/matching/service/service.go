// Package service implements the mutual-matching core
package service

import (
	"context"
	"time"

	ptime "matchmaker/internal/platform/time"
	"matchmaker/internal/services/matching/domain"
	users "matchmaker/internal/services/users/domain"
)

const (
	// poolLimit caps how many candidates one query considers
	poolLimit = 10_000

	// singleMatchLimit bounds the ranked list a single-match request walks
	singleMatchLimit = 1_000
)

// Service is the matching query surface
type Service = domain.ServicePort

// Svc orchestrates candidate queries over the user and history ports
type Svc struct {
	users   domain.UserPort
	history domain.HistoryPort
	eval    Evaluator
}

// New builds the matching service. Panics on nil ports
func New(up domain.UserPort, hp domain.HistoryPort) *Svc {
	if up == nil {
		panic("matching: nil user port")
	}
	if hp == nil {
		panic("matching: nil history port")
	}
	return &Svc{users: up, history: hp, eval: NewEvaluator()}
}

// MutualCandidates returns candidates that pass both directions of the
// preference gates, ranked for fair exposure. An empty result is a normal
// outcome, never an error
func (s *Svc) MutualCandidates(ctx context.Context, requester users.Profile, cooldown time.Duration, limit int) ([]domain.CandidateResult, error) {
	pool, err := s.users.CandidatePool(ctx, requester.ID, 0, poolLimit)
	if err != nil {
		return nil, err
	}

	var excluded map[int64]struct{}
	if cooldown > 0 {
		since := time.Now().UTC().Add(-cooldown)
		excluded, err = s.history.RecentlyPresented(ctx, requester.ID, since)
		if err != nil {
			return nil, err
		}
	}

	counts, err := s.history.PresentedCounts(ctx)
	if err != nil {
		return nil, err
	}
	lastSeen, err := s.history.LastPresentedAt(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]domain.CandidateResult, 0, len(pool))
	for _, cand := range pool {
		if _, skip := excluded[cand.ID]; skip {
			continue
		}

		fwdOK, fwdReasons := s.eval.Satisfies(requester, cand)
		revOK, _ := s.eval.Satisfies(cand, requester)
		if !fwdOK || !revOK {
			continue
		}

		res := domain.CandidateResult{
			CandidateID:    cand.ID,
			Score:          Score(fwdReasons),
			Reasons:        fwdReasons,
			PresentedCount: counts[cand.ID],
		}
		if t, ok := lastSeen[cand.ID]; ok {
			res.LastPresented = ptime.Ptr(t)
		}
		results = append(results, res)
	}

	rank(results)
	if limit >= 0 && len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// SingleMatch resolves a subject by id or nickname and returns the subject
// with its ranked mutual candidates, no cooldown applied
func (s *Svc) SingleMatch(ctx context.Context, userID int64, nickname string) (users.Profile, []users.Profile, error) {
	var subject users.Profile
	var err error
	if userID > 0 {
		subject, err = s.users.Get(ctx, userID)
	} else {
		subject, err = s.users.GetByNickname(ctx, nickname)
	}
	if err != nil {
		return users.Profile{}, nil, err
	}

	results, err := s.MutualCandidates(ctx, subject, 0, singleMatchLimit)
	if err != nil {
		return users.Profile{}, nil, err
	}
	profiles, err := s.resolve(ctx, results)
	if err != nil {
		return users.Profile{}, nil, err
	}
	return subject, profiles, nil
}

// BulkMatch walks every active user in id order and greedily assigns each at
// most one candidate, never reusing a candidate within the run
func (s *Svc) BulkMatch(ctx context.Context) ([]domain.Assignment, error) {
	subjects, err := s.users.List(ctx, 0, poolLimit)
	if err != nil {
		return nil, err
	}

	taken := make(map[int64]struct{}, len(subjects))
	out := make([]domain.Assignment, 0, len(subjects))
	for _, subject := range subjects {
		results, err := s.MutualCandidates(ctx, subject, 0, singleMatchLimit)
		if err != nil {
			return nil, err
		}

		a := domain.Assignment{Subject: subject}
		for _, res := range results {
			if _, used := taken[res.CandidateID]; used {
				continue
			}
			cand, err := s.users.Get(ctx, res.CandidateID)
			if err != nil {
				return nil, err
			}
			taken[res.CandidateID] = struct{}{}
			a.Recommended = &cand
			break
		}
		out = append(out, a)
	}
	return out, nil
}

func (s *Svc) resolve(ctx context.Context, results []domain.CandidateResult) ([]users.Profile, error) {
	profiles := make([]users.Profile, 0, len(results))
	for _, res := range results {
		p, err := s.users.Get(ctx, res.CandidateID)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}
