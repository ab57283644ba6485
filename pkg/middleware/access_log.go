package middleware

import (
	"net/http"
	"time"

	"github.com/covid19-impact/estimator/internal/accesslog"
	"github.com/covid19-impact/estimator/pkg/metrics"
	"github.com/covid19-impact/estimator/pkg/requestid"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// AccessLog starts an access log entry for every request, makes it available
// through accesslog.FromContext and appends it to sink once the handler returns.
// Append failures are logged and counted; they never affect the response.
func AccessLog(sink accesslog.Sink) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			entry := accesslog.Start(r.Method, r.URL.Path, time.Now())
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				status := ww.Status()
				if status == 0 {
					// nothing was written, net/http answers 200
					status = http.StatusOK
				}
				entry.Complete(status, time.Now())
				if err := sink.Append(*entry); err != nil {
					metrics.IncreaseAccessLogWriteErrorsTotalMetric()
					zap.S().Named("access_log").Warnw("failed to write access log entry",
						"request_id", requestid.FromRequest(r), "error", err)
				}
			}()

			next.ServeHTTP(ww, r.WithContext(accesslog.ToContext(r.Context(), entry)))
		})
	}
}
