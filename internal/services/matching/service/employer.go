package service

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// koMarkers are legal-entity markers stripped before comparison.
// Order matters: longer, more specific markers first so "주식회사" is not
// mangled by the bare "주식" rule
var koMarkers = []string{"㈜", "(주)", "주식회사", "주)", "주(", "주식", "주."}

// enMarkers are corporate suffix tokens dropped after tokenization
var enMarkers = map[string]struct{}{
	"inc":         {},
	"co":          {},
	"corp":        {},
	"llc":         {},
	"ltd":         {},
	"corporation": {},
	"company":     {},
}

// HeuristicMatcher detects same-employer collisions with normalized string
// comparison. Zero value is ready to use
type HeuristicMatcher struct{}

// Canonical reduces an employer name to a comparable form: NFKC fold,
// lowercase, legal-entity markers removed, punctuation dropped, whitespace
// collapsed
func (HeuristicMatcher) Canonical(raw string) string {
	s := norm.NFKC.String(raw)
	s = strings.ToLower(s)
	for _, m := range koMarkers {
		s = strings.ReplaceAll(s, m, " ")
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		default:
			b.WriteRune(' ')
		}
	}

	tokens := strings.Fields(b.String())
	kept := tokens[:0]
	for _, t := range tokens {
		if _, drop := enMarkers[t]; drop {
			continue
		}
		kept = append(kept, t)
	}
	return strings.Join(kept, " ")
}

// SameEmployer reports whether two raw employer names refer to the same
// organization. An empty canonical form on either side never matches
func (h HeuristicMatcher) SameEmployer(a, b string) bool {
	ca, cb := h.Canonical(a), h.Canonical(b)
	if ca == "" || cb == "" {
		return false
	}
	if ca == cb {
		return true
	}
	if strings.Contains(ca, cb) || strings.Contains(cb, ca) {
		return true
	}
	ta, tb := strings.Fields(ca), strings.Fields(cb)
	set := make(map[string]struct{}, len(ta))
	for _, t := range ta {
		set[t] = struct{}{}
	}
	for _, t := range tb {
		if _, ok := set[t]; ok {
			return true
		}
	}
	return false
}
