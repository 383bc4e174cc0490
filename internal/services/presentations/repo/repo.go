// Package repo provides postgres access for presentations and plans
package repo

import (
	"context"
	"errors"
	"time"

	"matchmaker/internal/modkit/repokit"
	perr "matchmaker/internal/platform/errors"
	"matchmaker/internal/services/presentations/domain"

	"github.com/jackc/pgx/v5"
)

// Repo is the repository contract for presentations and plans.
// The three history queries double as the matching exposure-history port
type Repo interface {
	Insert(ctx context.Context, p domain.Presentation) (domain.Presentation, error)
	Get(ctx context.Context, id int64) (domain.Presentation, error)
	Decide(ctx context.Context, id int64, outcome domain.Outcome) (bool, error)
	ListPending(ctx context.Context, limit int) ([]domain.Presentation, error)
	ListByRole(ctx context.Context, userID int64, role domain.Role, offset, limit int) ([]domain.Presentation, error)
	ExistsPair(ctx context.Context, requesterID, candidateID, planID int64) (bool, error)

	RecentlyPresented(ctx context.Context, requesterID int64, since time.Time) (map[int64]struct{}, error)
	PresentedCounts(ctx context.Context) (map[int64]int, error)
	LastPresentedAt(ctx context.Context) (map[int64]time.Time, error)

	InsertPlan(ctx context.Context, p domain.Plan) (domain.Plan, error)
	GetPlan(ctx context.Context, id int64) (domain.Plan, error)
	ListPlans(ctx context.Context) ([]domain.Plan, error)
}

type (
	// PG implements the Repo contract on Postgres
	PG struct{}

	queries struct{ q repokit.Queryer }
)

// NewPG creates a Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

const cols = `
id, requester_id, candidate_id, plan_id, template_key, template_version,
rendered_message, outcome, presented_at, decided_at`

func scan(row repokit.Row) (domain.Presentation, error) {
	var p domain.Presentation
	var outcome string
	err := row.Scan(
		&p.ID, &p.RequesterID, &p.CandidateID, &p.PlanID, &p.TemplateKey, &p.TemplateVersion,
		&p.RenderedMessage, &outcome, &p.PresentedAt, &p.DecidedAt,
	)
	if err != nil {
		return domain.Presentation{}, err
	}
	if p.Outcome, err = domain.ParseOutcome(outcome); err != nil {
		return domain.Presentation{}, perr.DataIntegrityf("presentation %d: outcome %q", p.ID, outcome)
	}
	return p, nil
}

func (r *queries) Insert(ctx context.Context, p domain.Presentation) (domain.Presentation, error) {
	const sql = `
INSERT INTO presentations (
  requester_id, candidate_id, plan_id, template_key, template_version,
  rendered_message, outcome
) VALUES ($1,$2,$3,$4,$5,$6,$7)
RETURNING id, presented_at`
	err := r.q.QueryRow(ctx, sql,
		p.RequesterID, p.CandidateID, p.PlanID, p.TemplateKey, p.TemplateVersion,
		p.RenderedMessage, string(p.Outcome),
	).Scan(&p.ID, &p.PresentedAt)
	if err != nil {
		return domain.Presentation{}, perr.FromPostgres(err, "insert presentation")
	}
	return p, nil
}

func (r *queries) Get(ctx context.Context, id int64) (domain.Presentation, error) {
	sql := "SELECT " + cols + " FROM presentations WHERE id = $1"
	p, err := scan(r.q.QueryRow(ctx, sql, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Presentation{}, perr.NotFoundf("presentation %d", id)
		}
		if perr.CodeOf(err) != perr.ErrorCodeUnknown {
			return domain.Presentation{}, err
		}
		return domain.Presentation{}, perr.FromPostgres(err, "get presentation")
	}
	return p, nil
}

// Decide flips a pending row to a terminal outcome. Returns false when the
// row was already decided or does not exist
func (r *queries) Decide(ctx context.Context, id int64, outcome domain.Outcome) (bool, error) {
	const sql = `
UPDATE presentations SET outcome = $2, decided_at = now()
WHERE id = $1 AND outcome = 'pending'`
	ct, err := r.q.Exec(ctx, sql, id, string(outcome))
	if err != nil {
		return false, perr.FromPostgres(err, "decide presentation")
	}
	return ct.RowsAffected() > 0, nil
}

func (r *queries) ListPending(ctx context.Context, limit int) ([]domain.Presentation, error) {
	sql := "SELECT " + cols + `
FROM presentations
WHERE outcome = 'pending' AND rendered_message IS NOT NULL
ORDER BY presented_at ASC
LIMIT $1`
	return r.list(ctx, sql, int64(limit))
}

func (r *queries) ListByRole(ctx context.Context, userID int64, role domain.Role, offset, limit int) ([]domain.Presentation, error) {
	col := "requester_id"
	if role == domain.RoleCandidate {
		col = "candidate_id"
	}
	sql := "SELECT " + cols + " FROM presentations WHERE " + col + ` = $1
ORDER BY presented_at DESC OFFSET $2 LIMIT $3`
	return r.list(ctx, sql, userID, int64(offset), int64(limit))
}

func (r *queries) ExistsPair(ctx context.Context, requesterID, candidateID, planID int64) (bool, error) {
	rows, err := r.q.Query(ctx,
		"SELECT 1 FROM presentations WHERE requester_id = $1 AND candidate_id = $2 AND plan_id = $3 LIMIT 1",
		requesterID, candidateID, planID)
	if err != nil {
		return false, perr.FromPostgres(err, "presentation pair lookup")
	}
	defer rows.Close()
	return rows.Next(), rows.Err()
}

func (r *queries) RecentlyPresented(ctx context.Context, requesterID int64, since time.Time) (map[int64]struct{}, error) {
	rows, err := r.q.Query(ctx,
		"SELECT DISTINCT candidate_id FROM presentations WHERE requester_id = $1 AND presented_at >= $2",
		requesterID, since)
	if err != nil {
		return nil, perr.FromPostgres(err, "recently presented")
	}
	defer rows.Close()

	out := make(map[int64]struct{})
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out[id] = struct{}{}
	}
	return out, rows.Err()
}

func (r *queries) PresentedCounts(ctx context.Context) (map[int64]int, error) {
	rows, err := r.q.Query(ctx,
		"SELECT candidate_id, COUNT(*) FROM presentations GROUP BY candidate_id")
	if err != nil {
		return nil, perr.FromPostgres(err, "presented counts")
	}
	defer rows.Close()

	out := make(map[int64]int)
	for rows.Next() {
		var id int64
		var n int
		if err := rows.Scan(&id, &n); err != nil {
			return nil, err
		}
		out[id] = n
	}
	return out, rows.Err()
}

func (r *queries) LastPresentedAt(ctx context.Context) (map[int64]time.Time, error) {
	rows, err := r.q.Query(ctx,
		"SELECT candidate_id, MAX(presented_at) FROM presentations GROUP BY candidate_id")
	if err != nil {
		return nil, perr.FromPostgres(err, "last presented at")
	}
	defer rows.Close()

	out := make(map[int64]time.Time)
	for rows.Next() {
		var id int64
		var t time.Time
		if err := rows.Scan(&id, &t); err != nil {
			return nil, err
		}
		out[id] = t
	}
	return out, rows.Err()
}

func (r *queries) list(ctx context.Context, sql string, args ...any) ([]domain.Presentation, error) {
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, perr.FromPostgres(err, "list presentations")
	}
	defer rows.Close()

	var out []domain.Presentation
	for rows.Next() {
		p, err := scan(rowAdapter{rows})
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// rowAdapter lets scan read from an open Rows cursor
type rowAdapter struct{ r repokit.Rows }

func (a rowAdapter) Scan(dest ...any) error { return a.r.Scan(dest...) }

func (r *queries) InsertPlan(ctx context.Context, p domain.Plan) (domain.Plan, error) {
	err := r.q.QueryRow(ctx,
		"INSERT INTO plans (created_by, notes) VALUES ($1, $2) RETURNING id, created_at",
		p.CreatedBy, p.Notes,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return domain.Plan{}, perr.FromPostgres(err, "insert plan")
	}
	return p, nil
}

func (r *queries) GetPlan(ctx context.Context, id int64) (domain.Plan, error) {
	var p domain.Plan
	var notes *string
	err := r.q.QueryRow(ctx,
		"SELECT id, created_by, notes, created_at FROM plans WHERE id = $1", id,
	).Scan(&p.ID, &p.CreatedBy, &notes, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Plan{}, perr.NotFoundf("plan %d", id)
		}
		return domain.Plan{}, perr.FromPostgres(err, "get plan")
	}
	if notes != nil {
		p.Notes = *notes
	}
	return p, nil
}

func (r *queries) ListPlans(ctx context.Context) ([]domain.Plan, error) {
	rows, err := r.q.Query(ctx, "SELECT id, created_by, notes, created_at FROM plans ORDER BY id DESC")
	if err != nil {
		return nil, perr.FromPostgres(err, "list plans")
	}
	defer rows.Close()

	var out []domain.Plan
	for rows.Next() {
		var p domain.Plan
		var notes *string
		if err := rows.Scan(&p.ID, &p.CreatedBy, &notes, &p.CreatedAt); err != nil {
			return nil, err
		}
		if notes != nil {
			p.Notes = *notes
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
