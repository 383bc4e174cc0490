// Package domain holds user types, closed vocabularies, and DTOs
package domain

import (
	"time"

	perr "matchmaker/internal/platform/errors"
)

// Smoking is the closed smoking-status vocabulary
type Smoking string

// Smoking values
const (
	SmokingSmoker     Smoking = "흡연"
	SmokingNonSmoker  Smoking = "비흡연"
	SmokingOccasional Smoking = "가끔"
)

// ParseSmoking validates membership in the smoking vocabulary
func ParseSmoking(s string) (Smoking, error) {
	switch Smoking(s) {
	case SmokingSmoker, SmokingNonSmoker, SmokingOccasional:
		return Smoking(s), nil
	}
	return "", perr.InvalidArgf("unknown smoking status %q", s)
}

// Religion is the closed religion vocabulary
type Religion string

// Religion values
const (
	ReligionNone      Religion = "무교"
	ReligionChristian Religion = "기독교"
	ReligionCatholic  Religion = "천주교"
	ReligionBuddhist  Religion = "불교"
	ReligionOther     Religion = "기타"
)

// ParseReligion validates membership in the religion vocabulary
func ParseReligion(s string) (Religion, error) {
	switch Religion(s) {
	case ReligionNone, ReligionChristian, ReligionCatholic, ReligionBuddhist, ReligionOther:
		return Religion(s), nil
	}
	return "", perr.InvalidArgf("unknown religion %q", s)
}

// Education is the closed education-level vocabulary
type Education string

// Education values
const (
	EducationHighSchool Education = "고등학교"
	EducationCollege    Education = "전문대"
	EducationUniversity Education = "대학교"
	EducationGraduate   Education = "대학원"
)

// ParseEducation validates membership in the education vocabulary
func ParseEducation(s string) (Education, error) {
	switch Education(s) {
	case EducationHighSchool, EducationCollege, EducationUniversity, EducationGraduate:
		return Education(s), nil
	}
	return "", perr.InvalidArgf("unknown education level %q", s)
}

// CollisionPolicy says whether a user accepts matches from the same employer
type CollisionPolicy string

// CollisionPolicy values
const (
	CollisionAllow  CollisionPolicy = "같은 직장 가능"
	CollisionForbid CollisionPolicy = "같은 직장 불가능"
)

// ParseCollisionPolicy validates membership in the collision-policy vocabulary
func ParseCollisionPolicy(s string) (CollisionPolicy, error) {
	switch CollisionPolicy(s) {
	case CollisionAllow, CollisionForbid:
		return CollisionPolicy(s), nil
	}
	return "", perr.InvalidArgf("unknown collision policy %q", s)
}

// Profile is the full user record.
// Matching reads a subset; the rest is intake bookkeeping
type Profile struct {
	ID int64

	Nickname     string
	ReferrerInfo string

	PrivacyConsent         bool
	ConfidentialityConsent bool

	RealName    string
	KakaoID     string
	PhoneNumber string

	BirthYear       int
	Height          int
	Residence       string
	EducationLevel  Education
	FinalEducation  string
	JobTitle        string
	Employer        string
	EmployerAddress string
	Religion        Religion
	SmokingStatus   Smoking
	MBTI            string
	Hobbies         string
	AdditionalInfo  string

	PreferredAgeMin     *int
	PreferredAgeMax     *int
	CollisionPolicy     CollisionPolicy
	PreferredSmoking    []Smoking
	PreferredReligion   []Religion
	AdditionalCondition string

	IsActive  bool
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// AgeBounds returns the preferred birth-year bounds with inverted bounds
// swapped, never an error
func (p Profile) AgeBounds() (lo, hi *int) {
	lo, hi = p.PreferredAgeMin, p.PreferredAgeMax
	if lo != nil && hi != nil && *lo > *hi {
		lo, hi = hi, lo
	}
	return lo, hi
}

// AllowsSmoking reports whether s is in the preferred smoking set
func (p Profile) AllowsSmoking(s Smoking) bool {
	for _, v := range p.PreferredSmoking {
		if v == s {
			return true
		}
	}
	return false
}

// AllowsReligion reports whether r is acceptable; an empty preferred set
// means no constraint
func (p Profile) AllowsReligion(r Religion) bool {
	if len(p.PreferredReligion) == 0 {
		return true
	}
	for _, v := range p.PreferredReligion {
		if v == r {
			return true
		}
	}
	return false
}
