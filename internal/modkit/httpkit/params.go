package httpkit

import (
	"net/http"
	"strconv"

	perr "matchmaker/internal/platform/errors"

	"github.com/go-chi/chi/v5"
)

// Param returns a path parameter by name
func Param(r *http.Request, name string) string { return chi.URLParam(r, name) }

// ParamInt64 parses a path parameter as int64
func ParamInt64(r *http.Request, name string) (int64, error) {
	v, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, perr.InvalidArgf("invalid %s", name)
	}
	return v, nil
}

// ParamInt parses a path parameter as int
func ParamInt(r *http.Request, name string) (int, error) {
	v, err := ParamInt64(r, name)
	return int(v), err
}

// QueryInt parses an optional integer query parameter with a default
func QueryInt(r *http.Request, name string, def int) (int, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, perr.InvalidArgf("invalid %s", name)
	}
	return v, nil
}
