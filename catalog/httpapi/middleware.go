package httpapi

import (
	"math"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

const (
	logMsgRequestServed = "http request served"
	logAttrMethod       = "method"
	logAttrPath         = "path"
	logAttrStatus       = "status"
	logAttrDurationMS   = "duration_ms"
	logAttrRequestID    = "request_id"
	logAttrError        = "error"

	headerRetryAfter = "Retry-After"
)

func (a *API) logRequests(next http.Handler) http.Handler {
	if a.logger == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		a.logger.Info(
			logMsgRequestServed,
			logAttrMethod, r.Method,
			logAttrPath, r.URL.Path,
			logAttrStatus, ww.Status(),
			logAttrDurationMS, toMilliseconds(time.Since(start)),
			logAttrRequestID, middleware.GetReqID(r.Context()))
	})
}

func (a *API) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !a.limiter.Allow() {
			w.Header().Set(headerRetryAfter, "1")
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded")

			return
		}

		next.ServeHTTP(w, r)
	})
}

// toMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func toMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}
