package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/JonMunkholm/fancyfont/internal/core"
	"github.com/JonMunkholm/fancyfont/internal/logging"
	"github.com/JonMunkholm/fancyfont/internal/style"
	"github.com/JonMunkholm/fancyfont/internal/web/templates"
)

// handleIndex renders the empty form.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, http.StatusOK, templates.PageData{})
}

// handleConvertForm converts the posted "text" field through every style.
func (s *Server) handleConvertForm(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Server.MaxBodyBytes)
	if err := r.ParseForm(); err != nil {
		s.respondError(w, r, bodyError(err), "")
		return
	}
	text := r.PostForm.Get("text")

	ctx := WithRequestMetadata(r.Context(), r, core.SourceWeb)
	conv, err := s.service.Convert(ctx, text)
	if err != nil {
		s.respondError(w, r, err, text)
		return
	}

	s.renderPage(w, r, http.StatusOK, templates.PageData{
		Input:     conv.Input,
		Results:   conv.Results,
		Submitted: conv.Input != "",
	})
}

// handleListStyles returns every style in display order.
func (s *Server) handleListStyles(w http.ResponseWriter, r *http.Request) {
	styles := s.service.Styles()
	if styles == nil {
		styles = []style.Info{}
	}
	writeJSON(w, http.StatusOK, styles)
}

// convertRequest is the body of POST /api/convert.
type convertRequest struct {
	Text  string `json:"text"`
	Style string `json:"style,omitempty"`
}

// handleAPIConvert converts text through every style, or through one style
// when "style" is set.
func (s *Server) handleAPIConvert(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Server.MaxBodyBytes)

	var req convertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, r, bodyError(err), "")
		return
	}

	ctx := WithRequestMetadata(r.Context(), r, core.SourceAPI)

	if req.Style == "" {
		conv, err := s.service.Convert(ctx, req.Text)
		if err != nil {
			s.respondError(w, r, err, "")
			return
		}
		writeJSON(w, http.StatusOK, conv)
		return
	}

	res, err := s.service.ConvertStyle(ctx, req.Style, req.Text)
	if err != nil {
		s.respondError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, core.Conversion{
		ID:      uuid.New(),
		Input:   strings.TrimSpace(req.Text),
		Results: []core.Result{res},
	})
}

// healthResponse is the body of GET /healthz.
type healthResponse struct {
	Status string `json:"status"`
	Styles int    `json:"styles"`
}

// handleHealth reports liveness and the number of loaded styles.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Styles: len(s.service.Styles())})
}

// renderPage fills in the page-wide fields of data and renders it.
func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, status int, data templates.PageData) {
	data.MaxLength = s.service.MaxInputLength()
	data.StyleCount = len(s.service.Styles())

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := templates.Page(data).Render(r.Context(), w); err != nil {
		logging.FromContext(r.Context()).Error("render page", "error", err)
	}
}

// bodyError classifies a failure to read the request body.
func bodyError(err error) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return fmt.Errorf("%w: limit %d bytes", errBodyTooLarge, maxErr.Limit)
	}
	return fmt.Errorf("%w: %w", errInvalidRequest, err)
}
