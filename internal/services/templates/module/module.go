// Package module wires templates into the API using modkit
package module

import (
	"net/http"

	"matchmaker/internal/modkit"
	"matchmaker/internal/modkit/httpkit"
	pstr "matchmaker/internal/platform/strings"
	tplhttp "matchmaker/internal/services/templates/http"
	tplrepo "matchmaker/internal/services/templates/repo"
	tplsvc "matchmaker/internal/services/templates/service"
)

// Module implements modkit.Module for templates
type Module struct {
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler
	ports  any

	svc tplsvc.Service
}

// New constructs the templates module
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("templates"),
		modkit.WithPrefix("/templates"),
	}, opts...)...)

	svc := tplsvc.New(deps.PG, tplrepo.NewPG())

	m := &Module{
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
		svc:    svc,
	}
	m.ports = Ports{Templates: svc}
	return m
}

// MountRoutes mounts template endpoints under the module prefix
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, pstr.MustPrefix(m.prefix), m.mws, func(rr httpkit.Router) {
		tplhttp.Register(rr, m.svc)
	})
}

// Name returns the module name
func (m *Module) Name() string { return pstr.MustString(m.name, "module name") }
