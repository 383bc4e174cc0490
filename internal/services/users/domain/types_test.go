package domain

import "testing"

func TestParseVocabularies(t *testing.T) {
	t.Parallel()

	if _, err := ParseSmoking("흡연"); err != nil {
		t.Fatalf("valid smoking rejected: %v", err)
	}
	if _, err := ParseSmoking("자주"); err == nil {
		t.Fatal("out-of-vocabulary smoking accepted")
	}
	if _, err := ParseReligion("천주교"); err != nil {
		t.Fatalf("valid religion rejected: %v", err)
	}
	if _, err := ParseReligion("힌두교"); err == nil {
		t.Fatal("out-of-vocabulary religion accepted")
	}
	if _, err := ParseEducation("대학원"); err != nil {
		t.Fatalf("valid education rejected: %v", err)
	}
	if _, err := ParseEducation("중학교"); err == nil {
		t.Fatal("out-of-vocabulary education accepted")
	}
	if _, err := ParseCollisionPolicy("같은 직장 불가능"); err != nil {
		t.Fatalf("valid policy rejected: %v", err)
	}
	if _, err := ParseCollisionPolicy("상관없음"); err == nil {
		t.Fatal("out-of-vocabulary policy accepted")
	}
}

func TestAgeBounds(t *testing.T) {
	t.Parallel()

	lo, hi := 1990, 1985
	p := Profile{PreferredAgeMin: &lo, PreferredAgeMax: &hi}

	glo, ghi := p.AgeBounds()
	if glo == nil || ghi == nil || *glo != 1985 || *ghi != 1990 {
		t.Fatalf("inverted bounds must swap, got %v %v", glo, ghi)
	}

	// one-sided bounds pass through
	p = Profile{PreferredAgeMin: &lo}
	glo, ghi = p.AgeBounds()
	if glo == nil || *glo != 1990 || ghi != nil {
		t.Fatalf("one-sided bounds mangled: %v %v", glo, ghi)
	}
}

func TestAllowsSmoking(t *testing.T) {
	t.Parallel()

	p := Profile{PreferredSmoking: []Smoking{SmokingNonSmoker, SmokingOccasional}}
	if !p.AllowsSmoking(SmokingOccasional) {
		t.Fatal("member rejected")
	}
	if p.AllowsSmoking(SmokingSmoker) {
		t.Fatal("non-member accepted")
	}
}

func TestAllowsReligion(t *testing.T) {
	t.Parallel()

	// empty set means unconstrained
	var p Profile
	if !p.AllowsReligion(ReligionBuddhist) {
		t.Fatal("empty set must allow everything")
	}

	p.PreferredReligion = []Religion{ReligionNone, ReligionCatholic}
	if !p.AllowsReligion(ReligionCatholic) {
		t.Fatal("member rejected")
	}
	if p.AllowsReligion(ReligionChristian) {
		t.Fatal("non-member accepted")
	}
}
