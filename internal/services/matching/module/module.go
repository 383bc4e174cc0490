// Package module wires matching into the API using modkit
package module

import (
	"net/http"

	"matchmaker/internal/modkit"
	"matchmaker/internal/modkit/httpkit"
	pstr "matchmaker/internal/platform/strings"
	"matchmaker/internal/services/matching/domain"
	matchhttp "matchmaker/internal/services/matching/http"
	matchsvc "matchmaker/internal/services/matching/service"
)

// Module implements modkit.Module for matching
type Module struct {
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler
	ports  any

	svc   matchsvc.Service
	users domain.UserPort
}

// New constructs the matching module. Expects Ports{Users, History} injected
// via modkit.WithPorts
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("match"),
		modkit.WithPrefix("/match"),
	}, opts...)...)

	in, ok := b.Ports.(Ports)
	if !ok {
		panic("matching module requires Ports{Users, History}")
	}

	svc := matchsvc.New(in.Users, in.History)

	m := &Module{
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
		svc:    svc,
		users:  in.Users,
	}
	m.ports = Out{Matching: svc}
	return m
}

// MountRoutes mounts match endpoints plus the per-user candidate query
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, pstr.MustPrefix(m.prefix), m.mws, func(rr httpkit.Router) {
		matchhttp.Register(rr, m.svc)
	})
	matchhttp.RegisterCandidates(r, m.svc, m.users)
}

// Name returns the module name
func (m *Module) Name() string { return pstr.MustString(m.name, "module name") }
