// Package module wires users into the API using modkit
package module

import (
	"net/http"

	"matchmaker/internal/modkit"
	"matchmaker/internal/modkit/httpkit"
	pstr "matchmaker/internal/platform/strings"
	usershttp "matchmaker/internal/services/users/http"
	usersrepo "matchmaker/internal/services/users/repo"
	userssvc "matchmaker/internal/services/users/service"
)

// Module implements modkit.Module for users
type Module struct {
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler
	ports  any

	svc userssvc.Service
}

// New constructs the users module
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("users"),
		modkit.WithPrefix("/users"),
	}, opts...)...)

	svc := userssvc.New(deps.PG, usersrepo.NewPG())

	m := &Module{
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
		svc:    svc,
	}
	m.ports = Ports{Users: svc}
	return m
}

// MountRoutes mounts user endpoints under the module prefix
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, pstr.MustPrefix(m.prefix), m.mws, func(rr httpkit.Router) {
		usershttp.Register(rr, m.svc)
	})
}

// Name returns the module name
func (m *Module) Name() string { return pstr.MustString(m.name, "module name") }
