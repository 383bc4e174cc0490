package service

import (
	"strings"

	"matchmaker/internal/services/matching/domain"
	users "matchmaker/internal/services/users/domain"
)

// Evaluator applies one user's stated preferences to another profile
type Evaluator struct {
	Matcher domain.EmployerMatcher
}

// NewEvaluator builds an evaluator with the heuristic employer matcher
func NewEvaluator() Evaluator {
	return Evaluator{Matcher: HeuristicMatcher{}}
}

// Satisfies reports whether subject meets every hard gate observer declares,
// plus any informational reasons gathered along the way. Every gate is
// evaluated even after one fails so reasons stay complete
func (e Evaluator) Satisfies(observer, subject users.Profile) (bool, []string) {
	ok := true
	var reasons []string

	// birth-year containment, inverted bounds already swapped by AgeBounds
	lo, hi := observer.AgeBounds()
	if lo != nil && subject.BirthYear < *lo {
		ok = false
	}
	if hi != nil && subject.BirthYear > *hi {
		ok = false
	}

	if observer.Residence != "" && subject.Residence != "" {
		if strings.Contains(observer.Residence, subject.Residence) ||
			strings.Contains(subject.Residence, observer.Residence) {
			reasons = append(reasons, domain.ReasonResidenceProximity)
		}
	}

	if !observer.AllowsSmoking(subject.SmokingStatus) {
		ok = false
	}

	if !observer.AllowsReligion(subject.Religion) {
		ok = false
	}

	if observer.CollisionPolicy == users.CollisionForbid {
		if e.Matcher.SameEmployer(observer.Employer, subject.Employer) {
			ok = false
		}
	}

	return ok, reasons
}
