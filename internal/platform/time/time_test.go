package time

import (
	"testing"
	stdtime "time"
)

func TestPtr(t *testing.T) {
	t.Parallel()

	if Ptr(stdtime.Time{}) != nil {
		t.Fatal("zero time must map to nil")
	}
	now := stdtime.Now()
	p := Ptr(now)
	if p == nil || !p.Equal(now) {
		t.Fatalf("bad pointer: %v", p)
	}
}

func TestOrEpoch(t *testing.T) {
	t.Parallel()

	epoch := OrEpoch(nil)
	if epoch.Unix() != 0 {
		t.Fatalf("nil must map to epoch, got %v", epoch)
	}

	t0 := stdtime.Date(2026, 1, 2, 3, 4, 5, 0, stdtime.UTC)
	if got := OrEpoch(&t0); !got.Equal(t0) {
		t.Fatalf("got %v want %v", got, t0)
	}

	// nil sorts before any real timestamp
	if !epoch.Before(t0) {
		t.Fatal("epoch must sort before real timestamps")
	}
}
