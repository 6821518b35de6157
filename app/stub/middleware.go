package stub

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/Semior001/newsdigest/pkg/logx"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"golang.org/x/exp/slog"
	"golang.org/x/time/rate"
)

// RequestID copies the id set by chi's middleware.RequestID into the logging
// context and echoes it back in the X-Request-ID header.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := middleware.GetReqID(r.Context())
		if id == "" {
			id = uuid.New().String()
		}

		w.Header().Set(logx.RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(logx.ContextWithRequestID(r.Context(), id)))
	})
}

// Logger logs all requests.
func Logger(lg *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			args := []any{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote", r.RemoteAddr),
			}

			if lg.Handler().Enabled(ctx, slog.LevelDebug) {
				lg.DebugCtx(ctx, "request received", append(args, slog.String("query", r.URL.RawQuery))...)
			}

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)

			lg.InfoCtx(ctx, "request processed", append(args,
				slog.Int("status", ww.Status()),
				slog.Int("bytes", ww.BytesWritten()),
				slog.Duration("took", time.Since(start)),
			)...)
		})
	}
}

// Recover recovers from panics and responds with 500, unless the handler
// has already started the response.
func Recover(lg *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				rvr := recover()
				if rvr == nil {
					return
				}
				if rvr == http.ErrAbortHandler {
					panic(rvr)
				}

				lg.ErrorCtx(r.Context(), "panic recovered",
					slog.Any("panic", rvr), slog.Int("status", ww.Status()))
				if ww.Status() == 0 {
					ww.WriteHeader(http.StatusInternalServerError)
				}
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

// Throttle rejects requests with 429 when the limiter has no tokens left.
// A nil limiter lets everything through.
func Throttle(l *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if l == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if l.Allow() {
				next.ServeHTTP(w, r)
				return
			}

			retryAfter := 1
			if lim := float64(l.Limit()); lim > 0 {
				retryAfter = int(math.Max(1, math.Ceil(1/lim)))
			}

			reqID, _ := logx.RequestIDFromContext(r.Context())
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_ = json.NewEncoder(w).Encode(errorResponse{Detail: "Too many requests", RequestID: reqID})
		})
	}
}
