// Package modkit provides module wiring and shared deps for feature slices
package modkit

import (
	"matchmaker/internal/modkit/httpkit"
	"matchmaker/internal/modkit/repokit"
	"matchmaker/internal/platform/config"
	"matchmaker/internal/platform/logger"
)

// Deps holds core dependencies passed to modules.
// Wiring only, no new abstractions
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
	PG  repokit.TxRunner
}

// Module is the common surface for API modules: mount routes, expose ports.
// Kept tiny so modules stay decoupled
type Module interface {
	MountRoutes(r httpkit.Router)
	Ports() any
	Name() string
}
