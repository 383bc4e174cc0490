// Package repo provides postgres access for message templates
package repo

import (
	"context"
	"errors"

	"matchmaker/internal/modkit/repokit"
	perr "matchmaker/internal/platform/errors"
	"matchmaker/internal/services/templates/domain"

	"github.com/jackc/pgx/v5"
)

// Repo is the repository contract for templates
type Repo interface {
	Insert(ctx context.Context, t domain.Template) (domain.Template, error)
	Get(ctx context.Context, key string, version int) (domain.Template, error)
	LatestActive(ctx context.Context, key string) (domain.Template, error)
	List(ctx context.Context, activeOnly bool) ([]domain.Template, error)
	Update(ctx context.Context, t domain.Template) error
	MaxVersion(ctx context.Context, key string) (int, error)
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

const cols = `id, key, version, locale, content, is_active, created_at, updated_at`

func scan(row repokit.Row) (domain.Template, error) {
	var t domain.Template
	err := row.Scan(&t.ID, &t.Key, &t.Version, &t.Locale, &t.Content, &t.IsActive, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

func (r *queries) Insert(ctx context.Context, t domain.Template) (domain.Template, error) {
	const sql = `
INSERT INTO templates (key, version, locale, content, is_active)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, created_at`
	err := r.q.QueryRow(ctx, sql, t.Key, t.Version, t.Locale, t.Content, t.IsActive).
		Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return domain.Template{}, perr.FromPostgres(err, "insert template")
	}
	return t, nil
}

func (r *queries) Get(ctx context.Context, key string, version int) (domain.Template, error) {
	sql := "SELECT " + cols + " FROM templates WHERE key = $1 AND version = $2"
	t, err := scan(r.q.QueryRow(ctx, sql, key, version))
	if err != nil {
		return domain.Template{}, classify(err, key)
	}
	return t, nil
}

func (r *queries) LatestActive(ctx context.Context, key string) (domain.Template, error) {
	sql := "SELECT " + cols + " FROM templates WHERE key = $1 AND is_active ORDER BY version DESC LIMIT 1"
	t, err := scan(r.q.QueryRow(ctx, sql, key))
	if err != nil {
		return domain.Template{}, classify(err, key)
	}
	return t, nil
}

func (r *queries) List(ctx context.Context, activeOnly bool) ([]domain.Template, error) {
	sql := "SELECT " + cols + " FROM templates ORDER BY key, version"
	if activeOnly {
		sql = "SELECT " + cols + " FROM templates WHERE is_active ORDER BY key, version"
	}
	rows, err := r.q.Query(ctx, sql)
	if err != nil {
		return nil, perr.FromPostgres(err, "list templates")
	}
	defer rows.Close()

	var out []domain.Template
	for rows.Next() {
		var t domain.Template
		if err := rows.Scan(&t.ID, &t.Key, &t.Version, &t.Locale, &t.Content, &t.IsActive, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *queries) Update(ctx context.Context, t domain.Template) error {
	const sql = `
UPDATE templates SET locale = $3, content = $4, is_active = $5, updated_at = now()
WHERE key = $1 AND version = $2`
	ct, err := r.q.Exec(ctx, sql, t.Key, t.Version, t.Locale, t.Content, t.IsActive)
	if err != nil {
		return perr.FromPostgres(err, "update template")
	}
	if ct.RowsAffected() == 0 {
		return perr.NotFoundf("template %s v%d", t.Key, t.Version)
	}
	return nil
}

func (r *queries) MaxVersion(ctx context.Context, key string) (int, error) {
	var v *int
	err := r.q.QueryRow(ctx, "SELECT MAX(version) FROM templates WHERE key = $1", key).Scan(&v)
	if err != nil {
		return 0, perr.FromPostgres(err, "template max version")
	}
	if v == nil {
		return 0, nil
	}
	return *v, nil
}

func classify(err error, key string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return perr.NotFoundf("template %s", key)
	}
	return perr.FromPostgres(err, "get template")
}
