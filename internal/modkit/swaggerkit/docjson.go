package swaggerkit

import "net/http"

// Skeleton spec so the UI loads without a generated doc. Handlers carry
// swagger annotations; regenerate and swap this in when docs tooling runs
var docJSON = `{"openapi":"3.0.3","info":{"title":"Matchmaker API","version":"0.1.0"},"paths":{}}`

func serveDocJSON() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write([]byte(docJSON))
	}
}
