package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-staffing/internal/logger"
)

func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		lw := newResponseWriter(w)

		next.ServeHTTP(lw, r)

		duration := time.Since(start)

		logger.FromRequest(r).Info().
			Str("uri", uri).
			Str("method", method).
			Str("remote_addr", r.RemoteAddr).
			Int("status", lw.Status()).
			Dur("duration", duration).
			Int("size", lw.size).
			Send()
	})
}
