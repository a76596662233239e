package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/Atik203/Logs-Dashboard/internal/domain"
	"github.com/Atik203/Logs-Dashboard/internal/service/preference"
)

// preferenceService defines the minimal interface needed by PreferencesHandler.
type preferenceService interface {
	Create(ctx context.Context, input preference.Input) (*domain.FilterPreference, error)
	Get(ctx context.Context, id int64) (*domain.FilterPreference, error)
	List(ctx context.Context) ([]domain.FilterPreference, error)
	Update(ctx context.Context, id int64, input preference.Input) (*domain.FilterPreference, error)
	Delete(ctx context.Context, id int64) error
}

// PreferencesHandler serves the per-user filter preference endpoints.
type PreferencesHandler struct {
	svc preferenceService
	log *slog.Logger
}

// NewPreferencesHandler creates a PreferencesHandler.
func NewPreferencesHandler(svc preferenceService, logger *slog.Logger) *PreferencesHandler {
	return &PreferencesHandler{svc: svc, log: logger.With("handler", "preferences")}
}

const dateOnly = "2006-01-02"

type preferenceRequest struct {
	Name     string  `json:"name"`
	Severity string  `json:"severity"`
	Source   string  `json:"source"`
	DateFrom *string `json:"date_from"`
	DateTo   *string `json:"date_to"`
}

type preferenceResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Severity  string    `json:"severity"`
	Source    string    `json:"source"`
	DateFrom  *string   `json:"date_from"`
	DateTo    *string   `json:"date_to"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toPreferenceResponse(p *domain.FilterPreference) preferenceResponse {
	resp := preferenceResponse{
		ID:        p.ID,
		Name:      p.Name,
		Severity:  p.Severity,
		Source:    p.Source,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if p.DateFrom != nil {
		s := p.DateFrom.Format(dateOnly)
		resp.DateFrom = &s
	}
	if p.DateTo != nil {
		s := p.DateTo.Format(dateOnly)
		resp.DateTo = &s
	}
	return resp
}

// input converts the request body into a service input, validating the
// calendar dates.
func (req preferenceRequest) input() (preference.Input, error) {
	var (
		in   preference.Input
		errs []domain.FieldError
	)
	in.Name = req.Name
	in.Severity = req.Severity
	in.Source = req.Source

	if req.DateFrom != nil && *req.DateFrom != "" {
		t, err := time.Parse(dateOnly, *req.DateFrom)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "date_from", Message: "invalid date, expected YYYY-MM-DD"})
		} else {
			in.DateFrom = &t
		}
	}
	if req.DateTo != nil && *req.DateTo != "" {
		t, err := time.Parse(dateOnly, *req.DateTo)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "date_to", Message: "invalid date, expected YYYY-MM-DD"})
		} else {
			in.DateTo = &t
		}
	}

	if len(errs) > 0 {
		return preference.Input{}, domain.NewValidationErrors(errs)
	}
	return in, nil
}

// List handles GET /filter-preferences/.
func (h *PreferencesHandler) List(w http.ResponseWriter, r *http.Request) {
	prefs, err := h.svc.List(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]preferenceResponse, 0, len(prefs))
	for i := range prefs {
		resp = append(resp, toPreferenceResponse(&prefs[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Create handles POST /filter-preferences/.
func (h *PreferencesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req preferenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	in, err := req.input()
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	pref, err := h.svc.Create(r.Context(), in)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toPreferenceResponse(pref))
}

// Get handles GET /filter-preferences/{id}.
func (h *PreferencesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	pref, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toPreferenceResponse(pref))
}

// Update handles PUT /filter-preferences/{id}.
func (h *PreferencesHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req preferenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	in, err := req.input()
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	pref, err := h.svc.Update(r.Context(), id, in)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toPreferenceResponse(pref))
}

// Delete handles DELETE /filter-preferences/{id}.
func (h *PreferencesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
