package web

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/akeil/journal"
	"github.com/akeil/journal/internal/errors"
	"github.com/akeil/journal/internal/imaging"
	"github.com/akeil/journal/internal/logging"
	"github.com/akeil/journal/pkg/render"
)

const (
	previewLength  = 80
	thumbnailWidth = 160
)

type draftResponse struct {
	State    string             `json:"state"`
	Selected string             `json:"selected,omitempty"`
	Draft    journal.Draft      `json:"draft"`
	Metrics  render.TextMetrics `json:"metrics"`
	Saved    *bool              `json:"saved,omitempty"`
	Fonts    []journal.Font     `json:"fonts,omitempty"`
	Patterns []journal.Pattern  `json:"patterns,omitempty"`
}

type entrySummary struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Date     time.Time       `json:"date"`
	Preview  string          `json:"preview"`
	Pattern  journal.Pattern `json:"pattern"`
	Selected bool            `json:"selected"`
}

type draftRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// configRequest holds the paper settings to change.
// Fields which are not set are left unchanged.
type configRequest struct {
	PaperColor  *journal.Color   `json:"paperColor"`
	Pattern     *journal.Pattern `json:"pattern"`
	LineColor   *journal.Color   `json:"lineColor"`
	LineWidth   *float64         `json:"lineWidth"`
	LineSpacing *int             `json:"lineSpacing"`
	Font        *journal.Font    `json:"font"`
	FontSize    *int             `json:"fontSize"`
	TextColor   *journal.Color   `json:"textColor"`
}

// apply passes each field to the matching setter.
// Stops at the first invalid value; earlier fields stay applied.
func (c configRequest) apply(sh *journal.Shell) error {
	if c.Pattern != nil {
		if err := sh.SetPattern(*c.Pattern); err != nil {
			return err
		}
	}
	if c.LineWidth != nil {
		if err := sh.SetLineWidth(*c.LineWidth); err != nil {
			return err
		}
	}
	if c.LineSpacing != nil {
		if err := sh.SetLineSpacing(*c.LineSpacing); err != nil {
			return err
		}
	}
	if c.Font != nil {
		if err := sh.SetFont(*c.Font); err != nil {
			return err
		}
	}
	if c.FontSize != nil {
		if err := sh.SetFontSize(*c.FontSize); err != nil {
			return err
		}
	}
	if c.PaperColor != nil {
		sh.SetPaperColor(*c.PaperColor)
	}
	if c.LineColor != nil {
		sh.SetLineColor(*c.LineColor)
	}
	if c.TextColor != nil {
		sh.SetTextColor(*c.TextColor)
	}
	return nil
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := struct {
		StylesheetURL string
		Fonts         []journal.Font
		Patterns      []journal.Pattern
		Width         int
		Height        int
	}{
		StylesheetURL: journal.StylesheetURL,
		Fonts:         journal.Fonts,
		Patterns:      journal.Patterns,
		Width:         render.DefaultWidth,
		Height:        render.DefaultHeight,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := indexTemplate.Execute(w, data)
	if err != nil {
		logging.Error("Failed to render index page: %v", err)
	}
}

func (s *Server) handlePaper(w http.ResponseWriter, r *http.Request) {
	s.mx.Lock()
	defer s.mx.Unlock()

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	err := s.canvas.PNG(w)
	if err != nil {
		logging.Warning("Failed to write paper image: %v", err)
	}
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	s.mx.Lock()
	defer s.mx.Unlock()

	img, err := s.rc.Page(s.shell.Draft(), render.DefaultWidth, render.DefaultHeight)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	err = render.WritePNG(img, w)
	if err != nil {
		logging.Warning("Failed to write page image: %v", err)
	}
}

func (s *Server) handleGetDraft(w http.ResponseWriter, r *http.Request) {
	s.mx.Lock()
	defer s.mx.Unlock()

	res := s.draftResponse()
	res.Fonts = journal.Fonts
	res.Patterns = journal.Patterns
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleUpdateDraft(w http.ResponseWriter, r *http.Request) {
	var req draftRequest
	if !readJSON(w, r, &req) {
		return
	}

	s.mx.Lock()
	defer s.mx.Unlock()

	if req.Title != nil {
		s.shell.SetTitle(*req.Title)
	}
	if req.Content != nil {
		s.shell.SetContent(*req.Content)
	}
	writeJSON(w, http.StatusOK, s.draftResponse())
}

func (s *Server) handleUpdateConfig(w http.ResponseWriter, r *http.Request) {
	var req configRequest
	if !readJSON(w, r, &req) {
		return
	}

	s.mx.Lock()
	defer s.mx.Unlock()

	err := req.apply(s.shell)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.draftResponse())
}

func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	s.mx.Lock()
	defer s.mx.Unlock()

	saved, err := s.shell.Save()
	if err != nil {
		writeError(w, err)
		return
	}

	res := s.draftResponse()
	res.Saved = &saved
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleNew(w http.ResponseWriter, r *http.Request) {
	s.mx.Lock()
	defer s.mx.Unlock()

	s.shell.NewEntry()
	writeJSON(w, http.StatusOK, s.draftResponse())
}

func (s *Server) handleListEntries(w http.ResponseWriter, r *http.Request) {
	s.mx.Lock()
	defer s.mx.Unlock()

	selected, _ := s.shell.Selected()
	entries := s.shell.Store().List()
	l := make([]entrySummary, len(entries))
	for i, e := range entries {
		l[i] = entrySummary{
			ID:       e.ID,
			Title:    e.Title,
			Date:     e.Date,
			Preview:  e.Preview(previewLength),
			Pattern:  e.Config.Pattern,
			Selected: e.ID == selected,
		}
	}
	writeJSON(w, http.StatusOK, l)
}

func (s *Server) handleLoadEntry(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.mx.Lock()
	defer s.mx.Unlock()

	err := s.shell.LoadEntry(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.draftResponse())
}

func (s *Server) handleDeleteEntry(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.mx.Lock()
	defer s.mx.Unlock()

	s.shell.DeleteEntry(id)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleThumbnail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.mx.Lock()
	defer s.mx.Unlock()

	e, err := s.shell.Store().Get(id)
	if err != nil {
		writeError(w, err)
		return
	}

	img, err := s.rc.Page(journal.Draft{
		Title:   e.Title,
		Content: e.Content,
		Config:  e.Config,
	}, render.DefaultWidth, render.DefaultHeight)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	err = render.WritePNG(imaging.Thumbnail(img, thumbnailWidth), w)
	if err != nil {
		logging.Warning("Failed to write thumbnail for %q: %v", id, err)
	}
}

// draftResponse describes the current editor state.
// Must be called with the lock held.
func (s *Server) draftResponse() draftResponse {
	selected, _ := s.shell.Selected()
	d := s.shell.Draft()
	return draftResponse{
		State:    s.shell.State().String(),
		Selected: selected,
		Draft:    d,
		Metrics:  render.Metrics(d.Config),
	}
}

func readJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		logging.Warning("Failed to write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.IsNotFound(err):
		status = http.StatusNotFound
	case errors.IsValidationError(err):
		status = http.StatusBadRequest
	default:
		logging.Error("Request failed: %v", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
