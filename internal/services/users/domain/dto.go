package domain

import "time"

// CreateInput is the intake payload for registering a user
type CreateInput struct {
	Nickname     string `json:"nickname" validate:"required,min=1,max=100"`
	ReferrerInfo string `json:"referrer_info,omitempty"`

	PrivacyConsent         bool `json:"privacy_consent"`
	ConfidentialityConsent bool `json:"confidentiality_consent"`

	RealName    string `json:"real_name" validate:"required,max=100"`
	KakaoID     string `json:"kakao_id" validate:"required,max=100"`
	PhoneNumber string `json:"phone_number" validate:"required,max=20"`

	BirthYear       int    `json:"birth_year" validate:"required,min=1900,max=2100"`
	Height          int    `json:"height" validate:"required,min=100,max=250"`
	Residence       string `json:"residence" validate:"required,max=200"`
	EducationLevel  string `json:"education_level" validate:"required"`
	FinalEducation  string `json:"final_education" validate:"required,max=200"`
	JobTitle        string `json:"job_title" validate:"required,max=200"`
	Employer        string `json:"employer" validate:"required"`
	EmployerAddress string `json:"employer_address" validate:"required,max=200"`
	Religion        string `json:"religion" validate:"required"`
	SmokingStatus   string `json:"smoking_status" validate:"required"`
	MBTI            string `json:"mbti,omitempty" validate:"omitempty,len=4"`
	Hobbies         string `json:"hobbies,omitempty"`
	AdditionalInfo  string `json:"additional_info,omitempty"`

	PreferredAgeMin     *int     `json:"preferred_age_min,omitempty"`
	PreferredAgeMax     *int     `json:"preferred_age_max,omitempty"`
	CollisionPolicy     string   `json:"employer_collision_policy" validate:"required"`
	PreferredSmoking    []string `json:"preferred_smoking" validate:"required,min=1"`
	PreferredReligion   []string `json:"preferred_religion,omitempty"`
	AdditionalCondition string   `json:"additional_matching_condition,omitempty"`
}

// UpdateInput is a partial update; nil fields are left untouched
type UpdateInput struct {
	Nickname     *string `json:"nickname,omitempty" validate:"omitempty,min=1,max=100"`
	ReferrerInfo *string `json:"referrer_info,omitempty"`

	Residence       *string `json:"residence,omitempty" validate:"omitempty,max=200"`
	EducationLevel  *string `json:"education_level,omitempty"`
	FinalEducation  *string `json:"final_education,omitempty" validate:"omitempty,max=200"`
	JobTitle        *string `json:"job_title,omitempty" validate:"omitempty,max=200"`
	Employer        *string `json:"employer,omitempty"`
	EmployerAddress *string `json:"employer_address,omitempty" validate:"omitempty,max=200"`
	Religion        *string `json:"religion,omitempty"`
	SmokingStatus   *string `json:"smoking_status,omitempty"`
	MBTI            *string `json:"mbti,omitempty" validate:"omitempty,len=4"`
	Hobbies         *string `json:"hobbies,omitempty"`
	AdditionalInfo  *string `json:"additional_info,omitempty"`

	PreferredAgeMin     *int      `json:"preferred_age_min,omitempty"`
	PreferredAgeMax     *int      `json:"preferred_age_max,omitempty"`
	CollisionPolicy     *string   `json:"employer_collision_policy,omitempty"`
	PreferredSmoking    *[]string `json:"preferred_smoking,omitempty" validate:"omitempty,min=1"`
	PreferredReligion   *[]string `json:"preferred_religion,omitempty"`
	AdditionalCondition *string   `json:"additional_matching_condition,omitempty"`
}

// SearchInput narrows the active pool by public criteria
type SearchInput struct {
	BirthYearMin   *int   `json:"birth_year_min,omitempty"`
	BirthYearMax   *int   `json:"birth_year_max,omitempty"`
	HeightMin      *int   `json:"height_min,omitempty"`
	HeightMax      *int   `json:"height_max,omitempty"`
	Residence      string `json:"residence,omitempty"`
	EducationLevel string `json:"education_level,omitempty"`
	Religion       string `json:"religion,omitempty"`
	SmokingStatus  string `json:"smoking_status,omitempty"`
	Offset         int    `json:"offset,omitempty" validate:"omitempty,min=0"`
	Limit          int    `json:"limit,omitempty" validate:"omitempty,min=1,max=200"`
}

// Out is the public projection returned by the API.
// Contact fields (real name, kakao id, phone) stay private
type Out struct {
	ID             int64      `json:"id"`
	Nickname       string     `json:"nickname"`
	BirthYear      int        `json:"birth_year"`
	Height         int        `json:"height"`
	Residence      string     `json:"residence"`
	EducationLevel Education  `json:"education_level"`
	JobTitle       string     `json:"job_title"`
	Religion       Religion   `json:"religion"`
	SmokingStatus  Smoking    `json:"smoking_status"`
	MBTI           string     `json:"mbti,omitempty"`
	IsActive       bool       `json:"is_active"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}

// ToOut projects a Profile to its public form
func ToOut(p Profile) Out {
	return Out{
		ID:             p.ID,
		Nickname:       p.Nickname,
		BirthYear:      p.BirthYear,
		Height:         p.Height,
		Residence:      p.Residence,
		EducationLevel: p.EducationLevel,
		JobTitle:       p.JobTitle,
		Religion:       p.Religion,
		SmokingStatus:  p.SmokingStatus,
		MBTI:           p.MBTI,
		IsActive:       p.IsActive,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
