package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
)

// handlerFunc is an HTTP handler that hands unexpected failures back to the
// caller instead of writing a response for them.
type handlerFunc func(http.ResponseWriter, *http.Request) error

// ErrorHandler is the single catch-all for errors no handler dealt with.
// Every such error becomes a 500; outside production the message and the
// wrapped error chain are included in the body.
type ErrorHandler struct {
	production bool
	logger     *slog.Logger
}

// NewErrorHandler creates the catch-all handler.
func NewErrorHandler(production bool, logger *slog.Logger) *ErrorHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ErrorHandler{production: production, logger: logger}
}

// Handle adapts h to http.HandlerFunc, routing returned errors to ServeError.
func (e *ErrorHandler) Handle(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			e.ServeError(w, r, err)
		}
	}
}

type serverError struct {
	Error string `json:"error"`
}

type errorDetails struct {
	Type  string   `json:"type"`
	Chain []string `json:"chain"`
}

type debugError struct {
	Error   string       `json:"error"`
	Details errorDetails `json:"details"`
}

// ServeError writes the 500 response for err.
func (e *ErrorHandler) ServeError(w http.ResponseWriter, r *http.Request, err error) {
	e.logger.Error("request failed",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.String("error", err.Error()))

	if e.production {
		writeJSON(w, http.StatusInternalServerError, serverError{Error: "server error"})
		return
	}
	writeJSON(w, http.StatusInternalServerError, debugError{
		Error:   err.Error(),
		Details: describe(err),
	})
}

func describe(err error) errorDetails {
	d := errorDetails{Type: fmt.Sprintf("%T", err)}
	for e := err; e != nil; e = errors.Unwrap(e) {
		d.Chain = append(d.Chain, e.Error())
	}
	return d
}
