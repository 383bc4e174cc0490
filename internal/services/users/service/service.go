// Package service contains user intake and query workflows
package service

import (
	"context"

	"matchmaker/internal/modkit/repokit"
	perr "matchmaker/internal/platform/errors"
	"matchmaker/internal/services/users/domain"
	"matchmaker/internal/services/users/repo"
)

// Service is the users service contract
type Service interface{ domain.ServicePort }

// Svc implements Service over a bound repo
type Svc struct {
	Repo repo.Repo
	db   repokit.TxRunner
}

// New creates a users service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("users.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("users.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), db: db}
}

const defaultListLimit = 100

// Create validates vocabularies, rejects duplicate contact identifiers,
// and inserts the profile
func (s *Svc) Create(ctx context.Context, in domain.CreateInput) (domain.Profile, error) {
	p, err := profileFromCreate(in)
	if err != nil {
		return domain.Profile{}, err
	}

	if dup, err := s.Repo.ExistsKakaoID(ctx, p.KakaoID); err != nil {
		return domain.Profile{}, err
	} else if dup {
		return domain.Profile{}, perr.DuplicateKeyf("kakao id already registered")
	}
	if dup, err := s.Repo.ExistsPhone(ctx, p.PhoneNumber); err != nil {
		return domain.Profile{}, err
	} else if dup {
		return domain.Profile{}, perr.DuplicateKeyf("phone number already registered")
	}

	return s.Repo.Insert(ctx, p)
}

func profileFromCreate(in domain.CreateInput) (domain.Profile, error) {
	p := domain.Profile{
		Nickname:               in.Nickname,
		ReferrerInfo:           in.ReferrerInfo,
		PrivacyConsent:         in.PrivacyConsent,
		ConfidentialityConsent: in.ConfidentialityConsent,
		RealName:               in.RealName,
		KakaoID:                in.KakaoID,
		PhoneNumber:            in.PhoneNumber,
		BirthYear:              in.BirthYear,
		Height:                 in.Height,
		Residence:              in.Residence,
		FinalEducation:         in.FinalEducation,
		JobTitle:               in.JobTitle,
		Employer:               in.Employer,
		EmployerAddress:        in.EmployerAddress,
		MBTI:                   in.MBTI,
		Hobbies:                in.Hobbies,
		AdditionalInfo:         in.AdditionalInfo,
		PreferredAgeMin:        in.PreferredAgeMin,
		PreferredAgeMax:        in.PreferredAgeMax,
		AdditionalCondition:    in.AdditionalCondition,
		IsActive:               true,
	}

	var err error
	if p.EducationLevel, err = domain.ParseEducation(in.EducationLevel); err != nil {
		return domain.Profile{}, perr.WithField(err, "education_level")
	}
	if p.Religion, err = domain.ParseReligion(in.Religion); err != nil {
		return domain.Profile{}, perr.WithField(err, "religion")
	}
	if p.SmokingStatus, err = domain.ParseSmoking(in.SmokingStatus); err != nil {
		return domain.Profile{}, perr.WithField(err, "smoking_status")
	}
	if p.CollisionPolicy, err = domain.ParseCollisionPolicy(in.CollisionPolicy); err != nil {
		return domain.Profile{}, perr.WithField(err, "employer_collision_policy")
	}
	if p.PreferredSmoking, err = parseSmokingSet(in.PreferredSmoking); err != nil {
		return domain.Profile{}, perr.WithField(err, "preferred_smoking")
	}
	if len(p.PreferredSmoking) == 0 {
		return domain.Profile{}, perr.WithField(
			perr.InvalidArgf("preferred smoking set must not be empty"), "preferred_smoking")
	}
	if p.PreferredReligion, err = parseReligionSet(in.PreferredReligion); err != nil {
		return domain.Profile{}, perr.WithField(err, "preferred_religion")
	}
	return p, nil
}

func parseSmokingSet(raw []string) ([]domain.Smoking, error) {
	var out []domain.Smoking
	for _, s := range raw {
		v, err := domain.ParseSmoking(s)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func parseReligionSet(raw []string) ([]domain.Religion, error) {
	var out []domain.Religion
	for _, s := range raw {
		v, err := domain.ParseReligion(s)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Get returns a profile by id
func (s *Svc) Get(ctx context.Context, id int64) (domain.Profile, error) {
	return s.Repo.GetByID(ctx, id)
}

// GetByNickname returns a profile by nickname
func (s *Svc) GetByNickname(ctx context.Context, nickname string) (domain.Profile, error) {
	return s.Repo.GetByNickname(ctx, nickname)
}

// List returns active profiles ordered by id
func (s *Svc) List(ctx context.Context, offset, limit int) ([]domain.Profile, error) {
	return s.Repo.ListActive(ctx, offset, clampLimit(limit))
}

// Update applies a partial patch and persists the result
func (s *Svc) Update(ctx context.Context, id int64, in domain.UpdateInput) (domain.Profile, error) {
	p, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return domain.Profile{}, err
	}
	if err := applyUpdate(&p, in); err != nil {
		return domain.Profile{}, err
	}
	if err := s.Repo.Update(ctx, p); err != nil {
		return domain.Profile{}, err
	}
	return s.Repo.GetByID(ctx, id)
}

func applyUpdate(p *domain.Profile, in domain.UpdateInput) error {
	setStr := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	setStr(&p.Nickname, in.Nickname)
	setStr(&p.ReferrerInfo, in.ReferrerInfo)
	setStr(&p.Residence, in.Residence)
	setStr(&p.FinalEducation, in.FinalEducation)
	setStr(&p.JobTitle, in.JobTitle)
	setStr(&p.Employer, in.Employer)
	setStr(&p.EmployerAddress, in.EmployerAddress)
	setStr(&p.MBTI, in.MBTI)
	setStr(&p.Hobbies, in.Hobbies)
	setStr(&p.AdditionalInfo, in.AdditionalInfo)
	setStr(&p.AdditionalCondition, in.AdditionalCondition)

	if in.PreferredAgeMin != nil {
		p.PreferredAgeMin = in.PreferredAgeMin
	}
	if in.PreferredAgeMax != nil {
		p.PreferredAgeMax = in.PreferredAgeMax
	}

	var err error
	if in.EducationLevel != nil {
		if p.EducationLevel, err = domain.ParseEducation(*in.EducationLevel); err != nil {
			return perr.WithField(err, "education_level")
		}
	}
	if in.Religion != nil {
		if p.Religion, err = domain.ParseReligion(*in.Religion); err != nil {
			return perr.WithField(err, "religion")
		}
	}
	if in.SmokingStatus != nil {
		if p.SmokingStatus, err = domain.ParseSmoking(*in.SmokingStatus); err != nil {
			return perr.WithField(err, "smoking_status")
		}
	}
	if in.CollisionPolicy != nil {
		if p.CollisionPolicy, err = domain.ParseCollisionPolicy(*in.CollisionPolicy); err != nil {
			return perr.WithField(err, "employer_collision_policy")
		}
	}
	if in.PreferredSmoking != nil {
		set, err := parseSmokingSet(*in.PreferredSmoking)
		if err != nil {
			return perr.WithField(err, "preferred_smoking")
		}
		if len(set) == 0 {
			return perr.WithField(
				perr.InvalidArgf("preferred smoking set must not be empty"), "preferred_smoking")
		}
		p.PreferredSmoking = set
	}
	if in.PreferredReligion != nil {
		set, err := parseReligionSet(*in.PreferredReligion)
		if err != nil {
			return perr.WithField(err, "preferred_religion")
		}
		p.PreferredReligion = set
	}
	return nil
}

// Deactivate soft-deletes a profile
func (s *Svc) Deactivate(ctx context.Context, id int64) error {
	ok, err := s.Repo.Deactivate(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return perr.NotFoundf("user %d", id)
	}
	return nil
}

// Search filters the active consented pool by public criteria
func (s *Svc) Search(ctx context.Context, in domain.SearchInput) ([]domain.Profile, error) {
	if in.EducationLevel != "" {
		if _, err := domain.ParseEducation(in.EducationLevel); err != nil {
			return nil, perr.WithField(err, "education_level")
		}
	}
	if in.Religion != "" {
		if _, err := domain.ParseReligion(in.Religion); err != nil {
			return nil, perr.WithField(err, "religion")
		}
	}
	if in.SmokingStatus != "" {
		if _, err := domain.ParseSmoking(in.SmokingStatus); err != nil {
			return nil, perr.WithField(err, "smoking_status")
		}
	}
	in.Limit = clampLimit(in.Limit)
	return s.Repo.Search(ctx, in)
}

// CandidatePool returns active consented profiles excluding the given id
func (s *Svc) CandidatePool(ctx context.Context, excludeID int64, offset, limit int) ([]domain.Profile, error) {
	if limit <= 0 {
		limit = 10_000
	}
	return s.Repo.CandidatePool(ctx, excludeID, offset, limit)
}

func clampLimit(limit int) int {
	if limit <= 0 || limit > 200 {
		return defaultListLimit
	}
	return limit
}
