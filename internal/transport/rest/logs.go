package rest

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/Atik203/Logs-Dashboard/internal/domain"
	"github.com/Atik203/Logs-Dashboard/internal/service/logs"
)

// logsService defines the minimal interface needed by LogsHandler.
type logsService interface {
	List(ctx context.Context, f domain.LogFilter) (*logs.ListResult, error)
	Get(ctx context.Context, id int64) (*domain.LogRecord, error)
	Create(ctx context.Context, input logs.CreateInput) (*domain.LogRecord, error)
	Update(ctx context.Context, id int64, input logs.CreateInput) (*domain.LogRecord, error)
	Delete(ctx context.Context, id int64) error
	Aggregate(ctx context.Context, input logs.AggregateInput) (*logs.AggregateResult, error)
	ExportCSV(ctx context.Context, f domain.LogFilter, w io.Writer) error
}

// LogsHandler serves the log collection and query endpoints.
type LogsHandler struct {
	svc logsService
	log *slog.Logger
}

// NewLogsHandler creates a LogsHandler.
func NewLogsHandler(svc logsService, logger *slog.Logger) *LogsHandler {
	return &LogsHandler{svc: svc, log: logger.With("handler", "logs")}
}

type logRequest struct {
	Timestamp *time.Time `json:"timestamp,omitempty"`
	Message   string     `json:"message"`
	Severity  string     `json:"severity"`
	Source    string     `json:"source"`
}

type logResponse struct {
	ID        int64     `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
	Severity  string    `json:"severity"`
	Source    string    `json:"source"`
}

type listResponse struct {
	Count   int           `json:"count"`
	Results []logResponse `json:"results"`
}

func toLogResponse(rec *domain.LogRecord) logResponse {
	return logResponse{
		ID:        rec.ID,
		Timestamp: rec.Timestamp.UTC(),
		Message:   rec.Message,
		Severity:  rec.Severity.String(),
		Source:    rec.Source,
	}
}

// Raw handles GET /logs/raw: the filtered, ordered listing.
func (h *LogsHandler) Raw(w http.ResponseWriter, r *http.Request) {
	f, err := parseLogFilter(r.URL.Query())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.svc.List(r.Context(), f)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := listResponse{Count: result.Total, Results: make([]logResponse, 0, len(result.Records))}
	for i := range result.Records {
		resp.Results = append(resp.Results, toLogResponse(&result.Records[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

type dateBucketResponse struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type severityCountResponse struct {
	Severity string `json:"severity"`
	Count    int    `json:"count"`
}

type sourceCountResponse struct {
	Source string `json:"source"`
	Count  int    `json:"count"`
}

// Aggregated handles GET /logs/aggregated.
func (h *LogsHandler) Aggregated(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	f, err := parseLogFilter(q)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.svc.Aggregate(r.Context(), logs.AggregateInput{
		Filter:   f,
		GroupBy:  q.Get("group_by"),
		Interval: q.Get("interval"),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	// The count field's companion is named after the grouping column.
	switch result.GroupBy {
	case domain.GroupByDate:
		rows := make([]dateBucketResponse, 0, len(result.Dates))
		for _, b := range result.Dates {
			rows = append(rows, dateBucketResponse{
				Date:  b.Date.Format("2006-01-02"),
				Count: b.Count,
			})
		}
		writeJSON(w, http.StatusOK, rows)
	case domain.GroupBySeverity:
		rows := make([]severityCountResponse, 0, len(result.Groups))
		for _, g := range result.Groups {
			rows = append(rows, severityCountResponse{Severity: g.Key, Count: g.Count})
		}
		writeJSON(w, http.StatusOK, rows)
	default:
		rows := make([]sourceCountResponse, 0, len(result.Groups))
		for _, g := range result.Groups {
			rows = append(rows, sourceCountResponse{Source: g.Key, Count: g.Count})
		}
		writeJSON(w, http.StatusOK, rows)
	}
}

// ExportCSV handles GET /logs/export_csv. The response streams; errors
// after the first byte can only terminate the stream.
func (h *LogsHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	f, err := parseLogFilter(r.URL.Query())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="logs_export.csv"`)

	fw := &flushingWriter{w: w}
	if err := h.svc.ExportCSV(r.Context(), f, fw); err != nil {
		// Before the first byte the status is still ours to set and a
		// normal error response works. After it the CSV body is committed:
		// terminate the stream and log, unless the client simply went away.
		if !fw.wrote {
			handleError(h.log, w, r, err)
			return
		}
		if r.Context().Err() == nil {
			h.log.ErrorContext(r.Context(), "export stream aborted",
				slog.String("error", err.Error()),
			)
		}
	}
}

// flushingWriter flushes the HTTP response after every write so each
// batch reaches the client immediately, and remembers whether the body
// has been started.
type flushingWriter struct {
	w     http.ResponseWriter
	wrote bool
}

func (fw *flushingWriter) Write(p []byte) (int, error) {
	if len(p) > 0 {
		fw.wrote = true
	}
	n, err := fw.w.Write(p)
	if f, ok := fw.w.(http.Flusher); ok {
		f.Flush()
	}
	return n, err
}

// ListCollection handles GET /logs/.
func (h *LogsHandler) ListCollection(w http.ResponseWriter, r *http.Request) {
	h.Raw(w, r)
}

// Create handles POST /logs/.
func (h *LogsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req logRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rec, err := h.svc.Create(r.Context(), logs.CreateInput{
		Timestamp: req.Timestamp,
		Message:   req.Message,
		Severity:  req.Severity,
		Source:    req.Source,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toLogResponse(rec))
}

// Get handles GET /logs/{id}.
func (h *LogsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	rec, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toLogResponse(rec))
}

// Update handles PUT /logs/{id}.
func (h *LogsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req logRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rec, err := h.svc.Update(r.Context(), id, logs.CreateInput{
		Timestamp: req.Timestamp,
		Message:   req.Message,
		Severity:  req.Severity,
		Source:    req.Source,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toLogResponse(rec))
}

// Delete handles DELETE /logs/{id}.
func (h *LogsHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

// pathID extracts the {id} path value as int64. Writes a 404 and
// returns false when the value is not a valid id.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusNotFound, "not found")
		return 0, false
	}
	return id, true
}
