package service

import (
	"context"
	"errors"
	"testing"
	"time"

	perr "matchmaker/internal/platform/errors"
	users "matchmaker/internal/services/users/domain"
)

type fakeUsers struct {
	pool    []users.Profile
	poolErr error
}

func (f *fakeUsers) Get(_ context.Context, id int64) (users.Profile, error) {
	for _, p := range f.pool {
		if p.ID == id {
			return p, nil
		}
	}
	return users.Profile{}, perr.NotFoundf("user %d", id)
}

func (f *fakeUsers) GetByNickname(_ context.Context, nickname string) (users.Profile, error) {
	for _, p := range f.pool {
		if p.Nickname == nickname {
			return p, nil
		}
	}
	return users.Profile{}, perr.NotFoundf("user %q", nickname)
}

func (f *fakeUsers) List(_ context.Context, _, _ int) ([]users.Profile, error) {
	return f.pool, nil
}

func (f *fakeUsers) CandidatePool(_ context.Context, excludeID int64, _, _ int) ([]users.Profile, error) {
	if f.poolErr != nil {
		return nil, f.poolErr
	}
	var out []users.Profile
	for _, p := range f.pool {
		if p.ID != excludeID {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeHistory struct {
	recent      map[int64]struct{}
	counts      map[int64]int
	last        map[int64]time.Time
	recentCalls int
}

func (f *fakeHistory) RecentlyPresented(_ context.Context, _ int64, _ time.Time) (map[int64]struct{}, error) {
	f.recentCalls++
	return f.recent, nil
}

func (f *fakeHistory) PresentedCounts(_ context.Context) (map[int64]int, error) {
	return f.counts, nil
}

func (f *fakeHistory) LastPresentedAt(_ context.Context) (map[int64]time.Time, error) {
	return f.last, nil
}

func newFixture(pool ...users.Profile) (*Svc, *fakeUsers, *fakeHistory) {
	fu := &fakeUsers{pool: pool}
	fh := &fakeHistory{}
	return New(fu, fh), fu, fh
}

func TestMutualCandidatesEmptyPool(t *testing.T) {
	t.Parallel()

	requester := baseProfile(1)
	svc, _, _ := newFixture(requester)

	results, err := svc.MutualCandidates(context.Background(), requester, 0, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("empty pool must yield empty results, got %+v", results)
	}
}

func TestMutualCandidatesCooldownExclusion(t *testing.T) {
	t.Parallel()

	requester := baseProfile(1)
	cand := baseProfile(2)
	svc, _, fh := newFixture(requester, cand)
	fh.recent = map[int64]struct{}{2: {}}

	results, err := svc.MutualCandidates(context.Background(), requester, 7*24*time.Hour, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("recently presented candidate must be excluded, got %+v", results)
	}
	if fh.recentCalls != 1 {
		t.Fatalf("history must be consulted once, got %d", fh.recentCalls)
	}
}

func TestMutualCandidatesZeroCooldownSkipsHistoryWindow(t *testing.T) {
	t.Parallel()

	requester := baseProfile(1)
	cand := baseProfile(2)
	svc, _, fh := newFixture(requester, cand)
	fh.recent = map[int64]struct{}{2: {}}

	results, err := svc.MutualCandidates(context.Background(), requester, 0, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("zero cooldown must not exclude, got %+v", results)
	}
	if fh.recentCalls != 0 {
		t.Fatalf("zero cooldown must not query the window, got %d calls", fh.recentCalls)
	}
}

func TestMutualCandidatesMutuality(t *testing.T) {
	t.Parallel()

	requester := baseProfile(1)

	// candidate tolerates nobody who smokes like the requester does
	cand := baseProfile(2)
	cand.PreferredSmoking = []users.Smoking{users.SmokingSmoker}

	svc, _, _ := newFixture(requester, cand)
	results, err := svc.MutualCandidates(context.Background(), requester, 0, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("one-directional compatibility must not match, got %+v", results)
	}
}

func TestMutualCandidatesLimit(t *testing.T) {
	t.Parallel()

	requester := baseProfile(1)
	pool := []users.Profile{requester}
	for id := int64(2); id <= 6; id++ {
		pool = append(pool, baseProfile(id))
	}
	svc, _, _ := newFixture(pool...)

	for _, limit := range []int{0, 2, 5, 50} {
		results, err := svc.MutualCandidates(context.Background(), requester, 0, limit)
		if err != nil {
			t.Fatalf("limit %d: unexpected error: %v", limit, err)
		}
		want := limit
		if want > 5 {
			want = 5
		}
		if len(results) != want {
			t.Fatalf("limit %d: got %d results want %d", limit, len(results), want)
		}
	}
}

func TestMutualCandidatesScoreAndRanking(t *testing.T) {
	t.Parallel()

	requester := baseProfile(1)
	requester.Residence = "서울 강남구"

	near := baseProfile(2)
	near.Residence = "강남구"
	far := baseProfile(3)
	far.Residence = "부산"

	svc, _, fh := newFixture(requester, near, far)
	fh.counts = map[int64]int{}

	results, err := svc.MutualCandidates(context.Background(), requester, 0, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("want 2 results, got %+v", results)
	}
	if results[0].CandidateID != 2 || results[0].Score != 0.1 {
		t.Fatalf("proximate candidate must rank first with 0.1, got %+v", results[0])
	}
	if results[1].CandidateID != 3 || results[1].Score != 0.0 {
		t.Fatalf("distant candidate must score 0.0, got %+v", results[1])
	}
	if len(results[0].Reasons) != 1 || results[0].Reasons[0] != "residence-proximity" {
		t.Fatalf("bad reasons: %+v", results[0].Reasons)
	}
}

func TestMutualCandidatesExposureRanking(t *testing.T) {
	t.Parallel()

	requester := baseProfile(1)
	fresh := baseProfile(2)
	worn := baseProfile(3)

	svc, _, fh := newFixture(requester, fresh, worn)
	t0 := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	fh.counts = map[int64]int{3: 4}
	fh.last = map[int64]time.Time{3: t0}

	results, err := svc.MutualCandidates(context.Background(), requester, 0, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if results[0].CandidateID != 2 {
		t.Fatalf("least presented must come first, got %+v", results)
	}
	if results[1].PresentedCount != 4 || results[1].LastPresented == nil || !results[1].LastPresented.Equal(t0) {
		t.Fatalf("exposure fields must carry through, got %+v", results[1])
	}
}

func TestMutualCandidatesCollaboratorFailure(t *testing.T) {
	t.Parallel()

	requester := baseProfile(1)
	svc, fu, _ := newFixture(requester)
	fu.poolErr = errors.New("pool down")

	if _, err := svc.MutualCandidates(context.Background(), requester, 0, 10); err == nil {
		t.Fatal("collaborator failure must propagate")
	}
}

func TestMutualCandidatesEmployerScenario(t *testing.T) {
	t.Parallel()

	requester := baseProfile(1)
	requester.CollisionPolicy = users.CollisionForbid
	requester.Employer = "주식회사 ABC"

	colleague := baseProfile(2)
	colleague.Employer = "(주) ABC"
	outsider := baseProfile(3)
	outsider.Employer = "Acme Foods"

	svc, _, _ := newFixture(requester, colleague, outsider)
	results, err := svc.MutualCandidates(context.Background(), requester, 0, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 || results[0].CandidateID != 3 {
		t.Fatalf("colleague must be excluded, outsider kept, got %+v", results)
	}
}

func TestSingleMatchByNickname(t *testing.T) {
	t.Parallel()

	requester := baseProfile(1)
	requester.Nickname = "subject"
	cand := baseProfile(2)
	cand.Nickname = "other"

	svc, _, _ := newFixture(requester, cand)
	subject, candidates, err := svc.SingleMatch(context.Background(), 0, "subject")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if subject.ID != 1 {
		t.Fatalf("wrong subject: %+v", subject)
	}
	if len(candidates) != 1 || candidates[0].ID != 2 {
		t.Fatalf("wrong candidates: %+v", candidates)
	}
}

func TestSingleMatchUnknownUser(t *testing.T) {
	t.Parallel()

	svc, _, _ := newFixture(baseProfile(1))
	if _, _, err := svc.SingleMatch(context.Background(), 42, ""); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("want not found, got %v", err)
	}
}

func TestBulkMatchGreedy(t *testing.T) {
	t.Parallel()

	a := baseProfile(1)
	b := baseProfile(2)
	c := baseProfile(3)

	svc, _, _ := newFixture(a, b, c)
	assignments, err := svc.BulkMatch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(assignments) != 3 {
		t.Fatalf("every subject must appear, got %d", len(assignments))
	}

	seen := map[int64]bool{}
	recommended := 0
	for _, asg := range assignments {
		if asg.Recommended == nil {
			continue
		}
		recommended++
		if seen[asg.Recommended.ID] {
			t.Fatalf("candidate %d assigned twice", asg.Recommended.ID)
		}
		seen[asg.Recommended.ID] = true
		if asg.Recommended.ID == asg.Subject.ID {
			t.Fatal("subject recommended to itself")
		}
	}
	// three mutually-compatible users: 1<->2 pair off, 3 is left with nobody
	if recommended != 2 {
		t.Fatalf("want 2 assignments, got %d", recommended)
	}
}
