// @title         Matchmaker API
// @version       0.1.0
// @description   Profile intake, mutual matching, and presentation tracking

package main

import (
	"context"

	"matchmaker/internal/platform/config"
	"matchmaker/internal/platform/logger"
	phttp "matchmaker/internal/platform/net/http"
	"matchmaker/internal/platform/store"

	"matchmaker/internal/services/api"
)

func main() {
	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	// bring up logging early
	l := logger.Get()

	// open the platform store (postgres, PG_* settings)
	st, err := store.Open(context.Background(), store.ConfigFromEnv(root, "matchmaker"), *l)
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	// http server (reads CORE_API_PORT)
	srv := phttp.NewServer(apiCfg)

	api.Mount(
		srv.Router(),
		api.Options{
			Config:        apiCfg,
			Store:         st,
			Logger:        l,
			EnableSwagger: apiCfg.MayBool("SWAGGER", true),
		},
	)

	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
