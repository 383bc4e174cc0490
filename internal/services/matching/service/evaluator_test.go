package service

import (
	"testing"

	users "matchmaker/internal/services/users/domain"
)

func intp(v int) *int { return &v }

// baseProfile is compatible with itself in both directions
func baseProfile(id int64) users.Profile {
	return users.Profile{
		ID:               id,
		Nickname:         "user",
		BirthYear:        1990,
		Residence:        "서울 강남구",
		Employer:         "한빛소프트",
		SmokingStatus:    users.SmokingNonSmoker,
		Religion:         users.ReligionNone,
		CollisionPolicy:  users.CollisionAllow,
		PreferredSmoking: []users.Smoking{users.SmokingNonSmoker},
	}
}

func TestSatisfiesAgeGate(t *testing.T) {
	t.Parallel()

	e := NewEvaluator()
	cases := []struct {
		name      string
		lo, hi    *int
		birthYear int
		want      bool
	}{
		{"no bounds", nil, nil, 1950, true},
		{"inside", intp(1985), intp(1995), 1990, true},
		{"lower boundary inclusive", intp(1990), intp(1995), 1990, true},
		{"upper boundary inclusive", intp(1985), intp(1990), 1990, true},
		{"below", intp(1985), intp(1995), 1984, false},
		{"above", intp(1985), intp(1995), 1996, false},
		{"only lower", intp(1985), nil, 1980, false},
		{"only upper", nil, intp(1985), 1990, false},
		{"inverted bounds swapped, inside", intp(1990), intp(1985), 1987, true},
		{"inverted bounds swapped, outside", intp(1990), intp(1985), 1980, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			observer := baseProfile(1)
			observer.PreferredAgeMin, observer.PreferredAgeMax = c.lo, c.hi
			subject := baseProfile(2)
			subject.BirthYear = c.birthYear

			ok, _ := e.Satisfies(observer, subject)
			if ok != c.want {
				t.Fatalf("ok=%v want %v", ok, c.want)
			}
		})
	}
}

func TestSatisfiesResidenceReason(t *testing.T) {
	t.Parallel()

	e := NewEvaluator()
	cases := []struct {
		name       string
		observer   string
		subject    string
		wantReason bool
	}{
		{"observer contains subject", "서울 강남구", "강남구", true},
		{"subject contains observer", "강남구", "서울 강남구", true},
		{"equal", "서울", "서울", true},
		{"disjoint", "서울", "부산", false},
		{"case sensitive", "Seoul", "seoul", false},
		{"observer empty", "", "서울", false},
		{"subject empty", "서울", "", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			observer := baseProfile(1)
			observer.Residence = c.observer
			subject := baseProfile(2)
			subject.Residence = c.subject

			ok, reasons := e.Satisfies(observer, subject)
			if !ok {
				t.Fatalf("residence must never block, got ok=false")
			}
			got := len(reasons) == 1 && reasons[0] == "residence-proximity"
			if got != c.wantReason {
				t.Fatalf("reasons=%v wantReason=%v", reasons, c.wantReason)
			}
		})
	}
}

func TestSatisfiesSmokingAndReligion(t *testing.T) {
	t.Parallel()

	e := NewEvaluator()

	observer := baseProfile(1)
	observer.PreferredSmoking = []users.Smoking{users.SmokingNonSmoker, users.SmokingOccasional}

	subject := baseProfile(2)
	subject.SmokingStatus = users.SmokingSmoker
	if ok, _ := e.Satisfies(observer, subject); ok {
		t.Fatal("smoker outside the allowlist must fail")
	}

	subject.SmokingStatus = users.SmokingOccasional
	if ok, _ := e.Satisfies(observer, subject); !ok {
		t.Fatal("occasional smoker inside the allowlist must pass")
	}

	// empty preferred religion set means no constraint
	observer.PreferredReligion = nil
	subject.Religion = users.ReligionBuddhist
	if ok, _ := e.Satisfies(observer, subject); !ok {
		t.Fatal("empty religion set must not constrain")
	}

	observer.PreferredReligion = []users.Religion{users.ReligionChristian}
	if ok, _ := e.Satisfies(observer, subject); ok {
		t.Fatal("religion outside the set must fail")
	}
}

func TestSatisfiesEmployerPolicy(t *testing.T) {
	t.Parallel()

	e := NewEvaluator()

	observer := baseProfile(1)
	observer.Employer = "주식회사 ABC"
	subject := baseProfile(2)
	subject.Employer = "(주) ABC"

	// allow policy never blocks
	observer.CollisionPolicy = users.CollisionAllow
	if ok, _ := e.Satisfies(observer, subject); !ok {
		t.Fatal("allow policy must not gate on employer")
	}

	observer.CollisionPolicy = users.CollisionForbid
	if ok, _ := e.Satisfies(observer, subject); ok {
		t.Fatal("forbid policy with same employer must fail")
	}

	subject.Employer = "Acme Foods"
	if ok, _ := e.Satisfies(observer, subject); !ok {
		t.Fatal("forbid policy with a different employer must pass")
	}
}

func TestSatisfiesRunsAllChecks(t *testing.T) {
	t.Parallel()

	e := NewEvaluator()

	// age gate fails but the residence reason is still collected
	observer := baseProfile(1)
	observer.PreferredAgeMin = intp(2000)
	subject := baseProfile(2)

	ok, reasons := e.Satisfies(observer, subject)
	if ok {
		t.Fatal("age gate must fail")
	}
	if len(reasons) != 1 || reasons[0] != "residence-proximity" {
		t.Fatalf("reasons must survive a failed gate, got %v", reasons)
	}
}
