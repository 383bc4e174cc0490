// Package time contains time related helpers
package time

import "time"

// Ptr returns a pointer to t or nil if t is zero
func Ptr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

// OrEpoch returns *pt, or the Unix epoch when pt is nil.
// Lets nil "never happened" timestamps sort before any real one
func OrEpoch(pt *time.Time) time.Time {
	if pt == nil {
		return time.Unix(0, 0).UTC()
	}
	return *pt
}
