// Package api implements the noteful REST API using chi.
package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/unrolled/secure"
)

// Request log formats.
const (
	LogFormatTiny   = "tiny"
	LogFormatCommon = "common"
)

var secureHeaders = secure.New(secure.Options{
	ContentTypeNosniff:      true,
	CustomFrameOptionsValue: "SAMEORIGIN",
	BrowserXssFilter:        true,
	CustomBrowserXssValue:   "0",
	ReferrerPolicy:          "no-referrer",
	STSSeconds:              15552000,
	STSIncludeSubdomains:    true,
	ForceSTSHeader:          true,
	ContentSecurityPolicy:   "default-src 'none'; frame-ancestors 'none'",
})

// SecurityHeaders sets conservative response headers for a JSON API.
func SecurityHeaders(next http.Handler) http.Handler {
	return secureHeaders.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-DNS-Prefetch-Control", "off")
		h.Set("X-Download-Options", "noopen")
		next.ServeHTTP(w, r)
	}))
}

// RequestLogger logs one line per request. The tiny format carries method,
// path, status, size and latency; common adds the request id, remote address,
// protocol and user agent.
func RequestLogger(logger *slog.Logger, format string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", status),
				slog.Int("bytes", ww.BytesWritten()),
				slog.Duration("latency", time.Since(start)),
			}
			if format != LogFormatTiny {
				attrs = append(attrs,
					slog.String("request_id", middleware.GetReqID(r.Context())),
					slog.String("remote_addr", r.RemoteAddr),
					slog.String("proto", r.Proto),
					slog.String("user_agent", r.UserAgent()))
			}

			level := slog.LevelInfo
			switch {
			case status >= 500:
				level = slog.LevelError
			case status >= 400:
				level = slog.LevelWarn
			}
			logger.LogAttrs(r.Context(), level, "request completed", attrs...)
		})
	}
}

// Recoverer turns a panic in a handler into a catch-all 500 response.
func Recoverer(errs *ErrorHandler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				errs.logger.Error("panic recovered", slog.String("stack", string(debug.Stack())))
				errs.ServeError(w, r, fmt.Errorf("panic: %v", rec))
			}()
			next.ServeHTTP(w, r)
		})
	}
}
