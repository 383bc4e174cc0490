// Package api composes the feature modules into the HTTP API
package api

import (
	"matchmaker/internal/platform/config"
	"matchmaker/internal/platform/logger"
	phttp "matchmaker/internal/platform/net/http"
	"matchmaker/internal/platform/store"

	"matchmaker/internal/modkit"
	"matchmaker/internal/modkit/httpkit"
	"matchmaker/internal/modkit/swaggerkit"

	matchmod "matchmaker/internal/services/matching/module"
	presmod "matchmaker/internal/services/presentations/module"
	presrepo "matchmaker/internal/services/presentations/repo"
	tplmod "matchmaker/internal/services/templates/module"
	usersmod "matchmaker/internal/services/users/module"
)

// Options are the API options
type Options struct {
	Config        config.Conf
	Store         *store.Store
	Logger        *logger.Logger
	EnableSwagger bool
}

// Mount wires the feature modules together and mounts them on the router.
// Construction order follows the dependency direction: users first, then
// matching (fed the exposure history straight from the presentations repo),
// then templates, then presentations on top of all three
func Mount(r phttp.Router, opt Options) {
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	users := usersmod.New(deps)
	userPort := users.Ports().(usersmod.Ports).Users

	// the history port reads presentations directly; the presentations
	// service itself depends on matching, so the repo breaks the cycle
	history := presrepo.NewPG().Bind(deps.PG)

	matching := matchmod.New(deps, modkit.WithPorts(matchmod.Ports{
		Users:   userPort,
		History: history,
	}))
	matchPort := matching.Ports().(matchmod.Out).Matching

	templates := tplmod.New(deps)
	tplPort := templates.Ports().(tplmod.Ports).Templates

	presentations := presmod.New(deps, modkit.WithPorts(presmod.Ports{
		Users:     userPort,
		Templates: tplPort,
		Matching:  matchPort,
	}))

	mods := []modkit.Module{users, templates, matching, presentations}

	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		for _, m := range mods {
			m.MountRoutes(api)
			logger.Named("api").Debug().Str("module", m.Name()).Msg("module mounted")
		}
	})
	swaggerkit.Mount(r, opt.EnableSwagger)
}
