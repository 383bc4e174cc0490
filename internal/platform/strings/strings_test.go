package strings

import (
	"testing"

	"matchmaker/internal/platform/testkit"
)

func TestBlank(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"   ", true},
		{"\t\n", true},
		{"x", false},
		{" x ", false},
	}
	for _, c := range cases {
		if got := Blank(c.in); got != c.want {
			t.Errorf("Blank(%q)=%v want %v", c.in, got, c.want)
		}
	}
}

func TestMustString(t *testing.T) {
	t.Parallel()

	if got := MustString("ok", "name"); got != "ok" {
		t.Fatalf("got %q", got)
	}
	testkit.MustPanic(t, func() { _ = MustString("   ", "name") })
}

func TestMustPrefix(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"/users", "/users"},
		{"users", "/users"},
		{" /users/ ", "/users"},
		{"//match", "/match"},
	}
	for _, c := range cases {
		if got := MustPrefix(c.in); got != c.want {
			t.Errorf("MustPrefix(%q)=%q want %q", c.in, got, c.want)
		}
	}

	testkit.MustPanic(t, func() { _ = MustPrefix("/") })
}

func TestPtrDeref(t *testing.T) {
	t.Parallel()

	if Ptr("") != nil {
		t.Fatal("empty string must map to nil")
	}
	p := Ptr("x")
	if p == nil || *p != "x" {
		t.Fatalf("bad pointer: %v", p)
	}
	if Deref(nil) != "" || Deref(p) != "x" {
		t.Fatal("Deref roundtrip failed")
	}
}

func TestSQLNull(t *testing.T) {
	t.Parallel()

	if SQLNull("  ") != nil {
		t.Fatal("blank must store NULL")
	}
	if SQLNull("v") != "v" {
		t.Fatal("value must pass through")
	}
	if SQLNullPtr(nil) != nil {
		t.Fatal("nil pointer must store NULL")
	}
	s := "v"
	if SQLNullPtr(&s) != "v" {
		t.Fatal("pointer value must pass through")
	}
}
