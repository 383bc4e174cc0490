package config

import (
	"testing"
	"time"

	"matchmaker/internal/platform/testkit"
)

func TestPrefixComposition(t *testing.T) {
	t.Setenv("CORE_API_PG_URL", "postgres://x")

	c := New().Prefix("CORE_API_").Prefix("PG_")
	if got := c.MustString("URL"); got != "postgres://x" {
		t.Fatalf("got %q", got)
	}
}

func TestMayAccessors(t *testing.T) {
	t.Setenv("T_STR", "hello")
	t.Setenv("T_INT", "42")
	t.Setenv("T_BOOL", "true")
	t.Setenv("T_DUR", "250ms")
	t.Setenv("T_BAD_INT", "nope")

	c := New().Prefix("T_")
	if got := c.MayString("STR", "def"); got != "hello" {
		t.Fatalf("MayString: %q", got)
	}
	if got := c.MayString("MISSING", "def"); got != "def" {
		t.Fatalf("MayString default: %q", got)
	}
	if got := c.MayInt("INT", 0); got != 42 {
		t.Fatalf("MayInt: %d", got)
	}
	if got := c.MayInt("BAD_INT", 7); got != 7 {
		t.Fatalf("MayInt invalid must default: %d", got)
	}
	if got := c.MayBool("BOOL", false); !got {
		t.Fatal("MayBool: want true")
	}
	if got := c.MayDuration("DUR", 0); got != 250*time.Millisecond {
		t.Fatalf("MayDuration: %v", got)
	}
}

func TestMayPort(t *testing.T) {
	t.Setenv("T_PORT", "8080")

	c := New().Prefix("T_")
	if got := c.MayPort("PORT", ":4000"); got != ":8080" {
		t.Fatalf("MayPort: %q", got)
	}
	if got := c.MayPort("MISSING_PORT", ":4000"); got != ":4000" {
		t.Fatalf("MayPort default: %q", got)
	}
}

func TestMustStringPanics(t *testing.T) {
	testkit.MustPanic(t, func() {
		_ = New().Prefix("T_").MustString("DEFINITELY_MISSING")
	})
}
