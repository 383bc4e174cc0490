package service

import "testing"

func TestCanonical(t *testing.T) {
	t.Parallel()

	m := HeuristicMatcher{}
	cases := []struct {
		in   string
		want string
	}{
		{"주식회사 한빛", "한빛"},
		{"(주)한빛", "한빛"},
		{"㈜한빛", "한빛"}, // NFKC folds the compat glyph
		{"한빛 주식회사", "한빛"},
		{"ABC Technologies Co.", "abc technologies"},
		{"Acme, Inc.", "acme"},
		{"  Globex   Robotics ", "globex robotics"},
		{"(주)", ""},
		{"", ""},
	}
	for _, c := range cases {
		if got := m.Canonical(c.in); got != c.want {
			t.Errorf("Canonical(%q)=%q want %q", c.in, got, c.want)
		}
	}

	// canonicalization is idempotent
	for _, c := range cases {
		once := m.Canonical(c.in)
		if twice := m.Canonical(once); twice != once {
			t.Errorf("Canonical not idempotent for %q: %q -> %q", c.in, once, twice)
		}
	}
}

func TestSameEmployer(t *testing.T) {
	t.Parallel()

	m := HeuristicMatcher{}
	cases := []struct {
		a, b string
		want bool
	}{
		{"주식회사 한빛", "(주) 한빛", true},           // markers stripped, equal
		{"한빛소프트", "한빛", true},                 // substring
		{"ABC Technologies Co.", "Technologies ABC Co.", true}, // token overlap
		{"Acme Foods", "Globex Robotics", false},
		{"(주)", "주식회사", false}, // both canonicalize to empty
		{"", "한빛", false},
		{"한빛", "", false},
	}
	for _, c := range cases {
		if got := m.SameEmployer(c.a, c.b); got != c.want {
			t.Errorf("SameEmployer(%q,%q)=%v want %v", c.a, c.b, got, c.want)
		}
		// symmetric
		if got := m.SameEmployer(c.b, c.a); got != c.want {
			t.Errorf("SameEmployer(%q,%q)=%v want %v", c.b, c.a, got, c.want)
		}
	}
}
