package web

// errors.go turns handler errors into responses.
//
// Every error is logged with its technical detail and the chi request ID,
// then mapped through core.MapError to a user message. The message is
// rendered as an alert fragment for HTMX requests, JSON for API callers,
// and the full page for form posts.

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/JonMunkholm/fancyfont/internal/core"
	"github.com/JonMunkholm/fancyfont/internal/logging"
	"github.com/JonMunkholm/fancyfont/internal/style"
	"github.com/JonMunkholm/fancyfont/internal/web/templates"
)

// Request errors raised by the handlers.
var (
	errInvalidRequest = errors.New("invalid request")
	errBodyTooLarge   = errors.New("request body too large")
)

// ErrorResponse is the JSON body of an API error.
type ErrorResponse struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	Action    string `json:"action,omitempty"`
	Code      string `json:"code"`
	RequestID string `json:"request_id,omitempty"`
}

// respondError logs err and writes the mapped user message in the format
// the client expects. input is echoed back into the form when the full
// page is rendered.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error, input string) {
	status := statusFor(err)
	userMsg := core.MapError(err)
	requestID := middleware.GetReqID(r.Context())

	logger := logging.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		logger.Error("request error", "path", r.URL.Path, "status", status, "error", err, "code", userMsg.Code)
	} else {
		logger.Warn("request rejected", "path", r.URL.Path, "status", status, "error", err, "code", userMsg.Code)
	}

	switch {
	case isHTMX(r):
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		templates.ErrorAlert(userMsg.Message, userMsg.Action, userMsg.Code).Render(r.Context(), w)
	case wantsJSON(r):
		writeJSON(w, status, ErrorResponse{
			Error:     userMsg.Message,
			Message:   userMsg.Message,
			Action:    userMsg.Action,
			Code:      userMsg.Code,
			RequestID: requestID,
		})
	default:
		s.renderPage(w, r, status, templates.PageData{
			Input:     input,
			Submitted: true,
			Error:     &userMsg,
		})
	}
}

// statusFor picks the HTTP status for err.
func statusFor(err error) int {
	var maxErr *http.MaxBytesError
	switch {
	case errors.As(err, &maxErr), errors.Is(err, errBodyTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, core.ErrEmptyInput),
		errors.Is(err, core.ErrInputTooLong),
		errors.Is(err, errInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, style.ErrUnknownStyle):
		return http.StatusNotFound
	case errors.Is(err, core.ErrTooManyConversions):
		return http.StatusServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// isHTMX checks if the request is an HTMX request.
func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// wantsJSON checks if the client prefers a JSON response.
func wantsJSON(r *http.Request) bool {
	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		return true
	}
	if strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		return true
	}
	// API routes default to JSON
	return strings.HasPrefix(r.URL.Path, "/api/")
}
