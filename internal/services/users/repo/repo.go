// Package repo provides postgres access for user profiles
package repo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"matchmaker/internal/modkit/repokit"
	perr "matchmaker/internal/platform/errors"
	pstr "matchmaker/internal/platform/strings"
	"matchmaker/internal/services/users/domain"

	"github.com/jackc/pgx/v5"
)

// Repo is the repository contract for users
type Repo interface {
	Insert(ctx context.Context, p domain.Profile) (domain.Profile, error)
	GetByID(ctx context.Context, id int64) (domain.Profile, error)
	GetByNickname(ctx context.Context, nickname string) (domain.Profile, error)
	ExistsKakaoID(ctx context.Context, kakaoID string) (bool, error)
	ExistsPhone(ctx context.Context, phone string) (bool, error)
	ListActive(ctx context.Context, offset, limit int) ([]domain.Profile, error)
	Search(ctx context.Context, in domain.SearchInput) ([]domain.Profile, error)
	CandidatePool(ctx context.Context, excludeID int64, offset, limit int) ([]domain.Profile, error)
	Update(ctx context.Context, p domain.Profile) error
	Deactivate(ctx context.Context, id int64) (bool, error)
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

const profileCols = `
id, nickname, referrer_info, privacy_consent, confidentiality_consent,
real_name, kakao_id, phone_number,
birth_year, height, residence, education_level, final_education, job_title,
employer, employer_address, religion, smoking_status, mbti, hobbies, additional_info,
preferred_age_min, preferred_age_max, employer_collision_policy,
preferred_smoking, preferred_religion, additional_matching_condition,
is_active, created_at, updated_at`

func scanProfile(row repokit.Row) (domain.Profile, error) {
	var p domain.Profile
	var referrer, mbti, hobbies, info, prefReligion, addCond *string
	var education, religion, smoking, policy, prefSmoking string
	err := row.Scan(
		&p.ID, &p.Nickname, &referrer, &p.PrivacyConsent, &p.ConfidentialityConsent,
		&p.RealName, &p.KakaoID, &p.PhoneNumber,
		&p.BirthYear, &p.Height, &p.Residence, &education, &p.FinalEducation, &p.JobTitle,
		&p.Employer, &p.EmployerAddress, &religion, &smoking, &mbti, &hobbies, &info,
		&p.PreferredAgeMin, &p.PreferredAgeMax, &policy,
		&prefSmoking, &prefReligion, &addCond,
		&p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return domain.Profile{}, err
	}

	p.ReferrerInfo = pstr.Deref(referrer)
	p.MBTI = pstr.Deref(mbti)
	p.Hobbies = pstr.Deref(hobbies)
	p.AdditionalInfo = pstr.Deref(info)
	p.AdditionalCondition = pstr.Deref(addCond)

	// stored vocabularies are validated on intake; a miss here means the row
	// was corrupted outside the API and must fail the query
	if p.EducationLevel, err = domain.ParseEducation(education); err != nil {
		return domain.Profile{}, perr.DataIntegrityf("user %d: education %q", p.ID, education)
	}
	if p.Religion, err = domain.ParseReligion(religion); err != nil {
		return domain.Profile{}, perr.DataIntegrityf("user %d: religion %q", p.ID, religion)
	}
	if p.SmokingStatus, err = domain.ParseSmoking(smoking); err != nil {
		return domain.Profile{}, perr.DataIntegrityf("user %d: smoking %q", p.ID, smoking)
	}
	if p.CollisionPolicy, err = domain.ParseCollisionPolicy(policy); err != nil {
		return domain.Profile{}, perr.DataIntegrityf("user %d: collision policy %q", p.ID, policy)
	}
	if p.PreferredSmoking, err = splitSmoking(prefSmoking); err != nil {
		return domain.Profile{}, perr.DataIntegrityf("user %d: preferred smoking %q", p.ID, prefSmoking)
	}
	if p.PreferredReligion, err = splitReligion(pstr.Deref(prefReligion)); err != nil {
		return domain.Profile{}, perr.DataIntegrityf("user %d: preferred religion %q", p.ID, pstr.Deref(prefReligion))
	}
	return p, nil
}

// preference sets persist as comma-separated vocabulary values

func splitSmoking(csv string) ([]domain.Smoking, error) {
	var out []domain.Smoking
	for _, part := range strings.Split(csv, ",") {
		s := strings.TrimSpace(part)
		if s == "" {
			continue
		}
		v, err := domain.ParseSmoking(s)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func splitReligion(csv string) ([]domain.Religion, error) {
	var out []domain.Religion
	for _, part := range strings.Split(csv, ",") {
		s := strings.TrimSpace(part)
		if s == "" {
			continue
		}
		v, err := domain.ParseReligion(s)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func joinSmoking(set []domain.Smoking) string {
	parts := make([]string, len(set))
	for i, v := range set {
		parts[i] = string(v)
	}
	return strings.Join(parts, ",")
}

func joinReligion(set []domain.Religion) string {
	parts := make([]string, len(set))
	for i, v := range set {
		parts[i] = string(v)
	}
	return strings.Join(parts, ",")
}

func (r *queries) Insert(ctx context.Context, p domain.Profile) (domain.Profile, error) {
	const sql = `
INSERT INTO users (
  nickname, referrer_info, privacy_consent, confidentiality_consent,
  real_name, kakao_id, phone_number,
  birth_year, height, residence, education_level, final_education, job_title,
  employer, employer_address, religion, smoking_status, mbti, hobbies, additional_info,
  preferred_age_min, preferred_age_max, employer_collision_policy,
  preferred_smoking, preferred_religion, additional_matching_condition, is_active
) VALUES (
  $1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,
  $21,$22,$23,$24,$25,$26,TRUE
)
RETURNING id, created_at`
	err := r.q.QueryRow(ctx, sql,
		p.Nickname, pstr.SQLNull(p.ReferrerInfo), p.PrivacyConsent, p.ConfidentialityConsent,
		p.RealName, p.KakaoID, p.PhoneNumber,
		p.BirthYear, p.Height, p.Residence, string(p.EducationLevel), p.FinalEducation, p.JobTitle,
		p.Employer, p.EmployerAddress, string(p.Religion), string(p.SmokingStatus),
		pstr.SQLNull(p.MBTI), pstr.SQLNull(p.Hobbies), pstr.SQLNull(p.AdditionalInfo),
		p.PreferredAgeMin, p.PreferredAgeMax, string(p.CollisionPolicy),
		joinSmoking(p.PreferredSmoking), pstr.SQLNull(joinReligion(p.PreferredReligion)),
		pstr.SQLNull(p.AdditionalCondition),
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return domain.Profile{}, perr.FromPostgres(err, "insert user")
	}
	p.IsActive = true
	return p, nil
}

func (r *queries) GetByID(ctx context.Context, id int64) (domain.Profile, error) {
	sql := "SELECT " + profileCols + " FROM users WHERE id = $1"
	p, err := scanProfile(r.q.QueryRow(ctx, sql, id))
	if err != nil {
		return domain.Profile{}, classifyGet(err, "user %d", id)
	}
	return p, nil
}

func (r *queries) GetByNickname(ctx context.Context, nickname string) (domain.Profile, error) {
	sql := "SELECT " + profileCols + " FROM users WHERE nickname = $1 ORDER BY id LIMIT 1"
	p, err := scanProfile(r.q.QueryRow(ctx, sql, nickname))
	if err != nil {
		return domain.Profile{}, classifyGet(err, "user %q", nickname)
	}
	return p, nil
}

func (r *queries) ExistsKakaoID(ctx context.Context, kakaoID string) (bool, error) {
	return r.exists(ctx, "SELECT 1 FROM users WHERE kakao_id = $1 LIMIT 1", kakaoID)
}

func (r *queries) ExistsPhone(ctx context.Context, phone string) (bool, error) {
	return r.exists(ctx, "SELECT 1 FROM users WHERE phone_number = $1 LIMIT 1", phone)
}

func (r *queries) exists(ctx context.Context, sql string, arg any) (bool, error) {
	rows, err := r.q.Query(ctx, sql, arg)
	if err != nil {
		return false, perr.FromPostgres(err, "exists query")
	}
	defer rows.Close()
	return rows.Next(), rows.Err()
}

func (r *queries) ListActive(ctx context.Context, offset, limit int) ([]domain.Profile, error) {
	sql := "SELECT " + profileCols + ` FROM users WHERE is_active ORDER BY id OFFSET $1 LIMIT $2`
	return r.list(ctx, sql, int64(offset), int64(limit))
}

func (r *queries) CandidatePool(ctx context.Context, excludeID int64, offset, limit int) ([]domain.Profile, error) {
	sql := "SELECT " + profileCols + `
FROM users
WHERE is_active AND privacy_consent AND confidentiality_consent AND id <> $1
ORDER BY id OFFSET $2 LIMIT $3`
	return r.list(ctx, sql, excludeID, int64(offset), int64(limit))
}

func (r *queries) Search(ctx context.Context, in domain.SearchInput) ([]domain.Profile, error) {
	var (
		conds = []string{"is_active", "privacy_consent", "confidentiality_consent"}
		args  []any
	)
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if in.BirthYearMin != nil {
		add("birth_year >= $%d", *in.BirthYearMin)
	}
	if in.BirthYearMax != nil {
		add("birth_year <= $%d", *in.BirthYearMax)
	}
	if in.HeightMin != nil {
		add("height >= $%d", *in.HeightMin)
	}
	if in.HeightMax != nil {
		add("height <= $%d", *in.HeightMax)
	}
	if in.Residence != "" {
		add("residence LIKE '%%' || $%d || '%%'", in.Residence)
	}
	if in.EducationLevel != "" {
		add("education_level = $%d", in.EducationLevel)
	}
	if in.Religion != "" {
		add("religion = $%d", in.Religion)
	}
	if in.SmokingStatus != "" {
		add("smoking_status = $%d", in.SmokingStatus)
	}

	args = append(args, int64(in.Offset))
	offsetPos := len(args)
	args = append(args, int64(in.Limit))
	limitPos := len(args)

	sql := "SELECT " + profileCols + " FROM users WHERE " + strings.Join(conds, " AND ") +
		fmt.Sprintf(" ORDER BY id OFFSET $%d LIMIT $%d", offsetPos, limitPos)
	return r.list(ctx, sql, args...)
}

func (r *queries) list(ctx context.Context, sql string, args ...any) ([]domain.Profile, error) {
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, perr.FromPostgres(err, "list users")
	}
	defer rows.Close()

	var out []domain.Profile
	for rows.Next() {
		p, err := scanProfile(rowAdapter{rows})
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// rowAdapter lets scanProfile read from an open Rows cursor
type rowAdapter struct{ r repokit.Rows }

func (a rowAdapter) Scan(dest ...any) error { return a.r.Scan(dest...) }

func (r *queries) Update(ctx context.Context, p domain.Profile) error {
	const sql = `
UPDATE users SET
  nickname = $2, referrer_info = $3, residence = $4, education_level = $5,
  final_education = $6, job_title = $7, employer = $8, employer_address = $9,
  religion = $10, smoking_status = $11, mbti = $12, hobbies = $13, additional_info = $14,
  preferred_age_min = $15, preferred_age_max = $16, employer_collision_policy = $17,
  preferred_smoking = $18, preferred_religion = $19, additional_matching_condition = $20,
  updated_at = now()
WHERE id = $1`
	ct, err := r.q.Exec(ctx, sql,
		p.ID, p.Nickname, pstr.SQLNull(p.ReferrerInfo), p.Residence, string(p.EducationLevel),
		p.FinalEducation, p.JobTitle, p.Employer, p.EmployerAddress,
		string(p.Religion), string(p.SmokingStatus), pstr.SQLNull(p.MBTI),
		pstr.SQLNull(p.Hobbies), pstr.SQLNull(p.AdditionalInfo),
		p.PreferredAgeMin, p.PreferredAgeMax, string(p.CollisionPolicy),
		joinSmoking(p.PreferredSmoking), pstr.SQLNull(joinReligion(p.PreferredReligion)),
		pstr.SQLNull(p.AdditionalCondition),
	)
	if err != nil {
		return perr.FromPostgres(err, "update user")
	}
	if ct.RowsAffected() == 0 {
		return perr.NotFoundf("user %d", p.ID)
	}
	return nil
}

func (r *queries) Deactivate(ctx context.Context, id int64) (bool, error) {
	ct, err := r.q.Exec(ctx, "UPDATE users SET is_active = FALSE, updated_at = now() WHERE id = $1", id)
	if err != nil {
		return false, perr.FromPostgres(err, "deactivate user")
	}
	return ct.RowsAffected() > 0, nil
}

// classifyGet keeps structured errors intact and maps scan misses to not-found
func classifyGet(err error, format string, a ...any) error {
	if perr.CodeOf(err) != perr.ErrorCodeUnknown {
		return err
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return perr.NotFoundf(format, a...)
	}
	return perr.FromPostgres(err, "get user")
}
