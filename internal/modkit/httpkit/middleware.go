package httpkit

import (
	"net/http"
	"time"

	"matchmaker/internal/platform/net/middleware"
)

// CommonStack returns the baseline middleware slice for the API scope.
// Compose extra middleware in main as needed
func CommonStack() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		middleware.RealIP(),
		middleware.RequestID(),
		middleware.RequestLogger,
		middleware.RecoverJSON,
		middleware.AccessLog,
		middleware.CORS(middleware.CORSOptions{}),
		middleware.Heartbeat("/healthz"),
		middleware.Timeout(30 * time.Second),
	}
}
