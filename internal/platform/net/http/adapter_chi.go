package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// AdaptChi adapts a *chi.Mux to the platform Router
func AdaptChi(m *chi.Mux) Router { return chiRouter{r: m, top: m} }

// chiRouter adapts chi.Router; top keeps the root mux so Mux() stays stable
// when called on sub-routers
type chiRouter struct {
	r   chi.Router
	top *chi.Mux
}

func (c chiRouter) Get(p string, h Handler)    { c.r.Method(http.MethodGet, p, http.HandlerFunc(h)) }
func (c chiRouter) Post(p string, h Handler)   { c.r.Method(http.MethodPost, p, http.HandlerFunc(h)) }
func (c chiRouter) Put(p string, h Handler)    { c.r.Method(http.MethodPut, p, http.HandlerFunc(h)) }
func (c chiRouter) Patch(p string, h Handler)  { c.r.Method(http.MethodPatch, p, http.HandlerFunc(h)) }
func (c chiRouter) Delete(p string, h Handler) { c.r.Method(http.MethodDelete, p, http.HandlerFunc(h)) }

func (c chiRouter) Handle(p string, h http.Handler)           { c.r.Handle(p, h) }
func (c chiRouter) Use(mw ...func(http.Handler) http.Handler) { c.r.Use(mw...) }

func (c chiRouter) Route(pattern string, fn func(Router)) {
	c.r.Route(pattern, func(sub chi.Router) { fn(chiRouter{r: sub, top: c.top}) })
}

func (c chiRouter) Mux() http.Handler { return c.top }
