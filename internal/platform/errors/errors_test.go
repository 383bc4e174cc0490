package errors

import (
	stderrs "errors"
	"net/http"
	"testing"
)

func TestCodeMapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		code ErrorCode
		want int
	}{
		{ErrorCodeNotFound, http.StatusNotFound},
		{ErrorCodeInvalidArgument, http.StatusUnprocessableEntity},
		{ErrorCodeDuplicateKey, http.StatusConflict},
		{ErrorCodeConflict, http.StatusConflict},
		{ErrorCodeValidation, http.StatusBadRequest},
		{ErrorCodeJSON, http.StatusBadRequest},
		{ErrorCodeUnavailable, http.StatusServiceUnavailable},
		{ErrorCodeDB, http.StatusInternalServerError},
		{ErrorCodeDataIntegrity, http.StatusInternalServerError},
		{ErrorCodeUnknown, http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := HTTPStatusCode(c.code); got != c.want {
			t.Errorf("code %d: status %d want %d", c.code, got, c.want)
		}
	}
}

func TestWrapAndUnwrap(t *testing.T) {
	t.Parallel()

	cause := stderrs.New("boom")
	err := Wrapf(cause, ErrorCodeDB, "query failed")

	if CodeOf(err) != ErrorCodeDB {
		t.Fatalf("wrong code: %d", CodeOf(err))
	}
	if !stderrs.Is(err, cause) {
		t.Fatal("wrapped cause lost")
	}
	if Root(err) != cause {
		t.Fatalf("Root should reach the cause, got %v", Root(err))
	}
}

func TestWithFieldCopies(t *testing.T) {
	t.Parallel()

	orig := InvalidArgf("bad input")
	withField := WithField(orig, "nickname")

	oe, _ := As(orig)
	fe, _ := As(withField)
	if oe.Field() != "" {
		t.Fatal("original mutated")
	}
	if fe.Field() != "nickname" {
		t.Fatalf("field not attached: %q", fe.Field())
	}

	// non-project errors pass through untouched
	plain := stderrs.New("plain")
	if WithField(plain, "x") != plain {
		t.Fatal("foreign error must pass through")
	}
}

func TestWireFrom(t *testing.T) {
	t.Parallel()

	w := WireFrom(WithField(NotFoundf("user 7"), "id"))
	if w.Code != ErrorCodeNotFound || w.Message != "user 7" || w.Field != "id" {
		t.Fatalf("bad wire: %+v", w)
	}

	w = WireFrom(stderrs.New("opaque"))
	if w.Code != ErrorCodeUnknown || w.Message != "opaque" {
		t.Fatalf("bad fallback wire: %+v", w)
	}
}

func TestHTTP(t *testing.T) {
	t.Parallel()

	status, wire := HTTP(DuplicateKeyf("kakao id taken"))
	if status != http.StatusConflict || wire.Code != ErrorCodeDuplicateKey {
		t.Fatalf("got %d %+v", status, wire)
	}

	status, wire = HTTP(nil)
	if status != http.StatusOK || wire.Code != 0 {
		t.Fatalf("nil error must be 200, got %d %+v", status, wire)
	}
}
