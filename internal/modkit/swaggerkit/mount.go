// Package swaggerkit mounts the Swagger UI and its JSON spec
package swaggerkit

import (
	"net/http"

	phttp "matchmaker/internal/platform/net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

const docsBase = "/api/docs"

// Mount attaches the Swagger UI under /api/docs when enabled
func Mount(r phttp.Router, enabled bool) {
	if !enabled {
		return
	}

	// the UI needs the trailing slash to resolve its assets
	r.Get(docsBase, func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, docsBase+"/", http.StatusPermanentRedirect)
	})
	r.Get(docsBase+"/doc.json", serveDocJSON())

	ui := httpSwagger.Handler(
		httpSwagger.InstanceName("api"),
		httpSwagger.URL(docsBase+"/doc.json"),
	)
	r.Handle(docsBase+"/*", ui)
}
