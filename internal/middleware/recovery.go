package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/2beens/dawarpower/internal/telemetry/metrics"
	"github.com/2beens/dawarpower/pkg"

	log "github.com/sirupsen/logrus"
)

type panicResponse struct {
	Error string `json:"error"`
}

// PanicRecovery turns a handler panic into a JSON 500; the stack goes to the log.
func PanicRecovery(metricsManager *metrics.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				log.WithFields(log.Fields{
					"method":     r.Method,
					"path":       r.URL.Path,
					"request_id": r.Header.Get("X-Request-Id"),
				}).Errorf("panic while serving request: %v\n%s", rec, debug.Stack())
				if metricsManager != nil {
					metricsManager.CounterHandleRequestPanic.Inc()
				}
				pkg.WriteJSON(w, panicResponse{Error: "internal server error"}, http.StatusInternalServerError)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
