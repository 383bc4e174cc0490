// Package module wires presentations into the API using modkit
package module

import (
	"net/http"

	"matchmaker/internal/modkit"
	"matchmaker/internal/modkit/httpkit"
	pstr "matchmaker/internal/platform/strings"
	preshttp "matchmaker/internal/services/presentations/http"
	presrepo "matchmaker/internal/services/presentations/repo"
	pressvc "matchmaker/internal/services/presentations/service"
)

// Module implements modkit.Module for presentations
type Module struct {
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler
	ports  any

	svc pressvc.Service
}

// New constructs the presentations module. Expects Ports{Users, Templates,
// Matching} injected via modkit.WithPorts
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("presentations"),
		modkit.WithPrefix("/presentations"),
	}, opts...)...)

	in, ok := b.Ports.(Ports)
	if !ok {
		panic("presentations module requires Ports{Users, Templates, Matching}")
	}

	svc := pressvc.New(deps.PG, presrepo.NewPG(), in.Users, in.Templates, in.Matching)

	m := &Module{
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
		svc:    svc,
	}
	m.ports = Out{Presentations: svc}
	return m
}

// MountRoutes mounts the presentations, plans, and per-user routes
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, pstr.MustPrefix(m.prefix), m.mws, func(rr httpkit.Router) {
		preshttp.Register(rr, m.svc)
	})
	httpkit.MountUnder(r, "/plans", m.mws, func(rr httpkit.Router) {
		preshttp.RegisterPlans(rr, m.svc)
	})
	preshttp.RegisterUserRoutes(r, m.svc)
}

// Name returns the module name
func (m *Module) Name() string { return pstr.MustString(m.name, "module name") }
