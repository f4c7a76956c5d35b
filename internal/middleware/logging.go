package middleware

import (
	"net/http"

	log "github.com/sirupsen/logrus"
)

func LogRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fields := log.Fields{
				"method": r.Method,
				"path":   r.URL.Path,
				"ua":     r.Header.Get("User-Agent"),
			}
			if requestID := r.Header.Get("X-Request-Id"); requestID != "" {
				fields["request_id"] = requestID
			}
			log.WithFields(fields).Debug("incoming request")
			next.ServeHTTP(w, r)
		})
	}
}
