package handlers

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/startup-scorer/internal/adapters/csvio"
	"github.com/jsamuelsen11/startup-scorer/internal/adapters/http/dto"
	"github.com/jsamuelsen11/startup-scorer/internal/domain"
	"github.com/jsamuelsen11/startup-scorer/internal/domain/report"
	"github.com/jsamuelsen11/startup-scorer/internal/platform/logging"
	"github.com/jsamuelsen11/startup-scorer/internal/ports"
)

// maxCSVBodyBytes caps an uploaded domain list (5 MB).
const maxCSVBodyBytes = 5 << 20

// csvFormField is the multipart field that carries an uploaded CSV file.
const csvFormField = "file"

// ScoreHandler handles single-domain scoring and batch report requests.
type ScoreHandler struct {
	service ports.ScoringService
	topN    int
}

// NewScoreHandler creates a new ScoreHandler. topN bounds the chart series
// included in report responses.
func NewScoreHandler(service ports.ScoringService, topN int) *ScoreHandler {
	return &ScoreHandler{service: service, topN: topN}
}

// GetScore handles GET /api/v1/scores/{domain}.
func (h *ScoreHandler) GetScore(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ScoreDomain(r.Context(), chi.URLParam(r, "domain"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToScoreResponse(result))
}

// CreateReport handles POST /api/v1/reports.
func (h *ScoreHandler) CreateReport(w http.ResponseWriter, r *http.Request) {
	format, ok := parseFormat(w, r)
	if !ok {
		return
	}

	var req dto.CreateReportRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	rep, err := h.service.ScoreBatch(r.Context(), req.Domains)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	h.writeReport(w, r, format, rep, nil)
}

// CreateReportFromCSV handles POST /api/v1/reports/csv. The body is either a
// raw CSV document or a multipart form with the CSV in the "file" field.
func (h *ScoreHandler) CreateReportFromCSV(w http.ResponseWriter, r *http.Request) {
	format, ok := parseFormat(w, r)
	if !ok {
		return
	}

	body, err := csvBody(w, r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	defer body.Close()

	imp, err := csvio.ReadDomains(body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			err = domain.NewValidationError("body", fmt.Sprintf("must not exceed %d bytes", tooLarge.Limit))
		}
		dto.WriteErrorResponse(w, r, err)
		return
	}

	ctx := r.Context()
	logger := logging.FromContext(ctx)
	for _, s := range imp.Skipped {
		logger.WarnContext(ctx, "skipping csv row",
			slog.Int("line", s.Line),
			slog.String("value", s.Value),
			slog.String("reason", s.Reason),
		)
	}

	if len(imp.Domains) == 0 {
		dto.WriteErrorResponse(w, r, domain.NewValidationError(csvFormField, "contains no valid domains"))
		return
	}

	rep, err := h.service.ScoreBatch(ctx, imp.Domains)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	h.writeReport(w, r, format, rep, imp.Skipped)
}

// GetScoringConfig handles GET /api/v1/scoring/config.
func (h *ScoreHandler) GetScoringConfig(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, dto.ToScoringConfigResponse(h.service.ScoringConfig()))
}

func (h *ScoreHandler) writeReport(w http.ResponseWriter, r *http.Request, format string, rep *report.Report, skipped []csvio.SkippedRow) {
	if format != dto.FormatCSV {
		writeJSON(w, http.StatusOK, dto.ToReportResponse(rep, h.topN, skipped))
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", csvio.ExportFilename))
	w.WriteHeader(http.StatusOK)
	if err := csvio.WriteReport(w, rep); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to write csv report",
			slog.Any("error", err),
		)
	}
}

// csvBody returns the uploaded CSV stream, limited to maxCSVBodyBytes.
func csvBody(w http.ResponseWriter, r *http.Request) (io.ReadCloser, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxCSVBodyBytes)

	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "multipart/form-data" {
		return r.Body, nil
	}

	if err := r.ParseMultipartForm(maxCSVBodyBytes); err != nil {
		return nil, domain.NewValidationError("body", "invalid multipart form")
	}
	f, _, err := r.FormFile(csvFormField)
	if err != nil {
		return nil, domain.NewValidationError(csvFormField, domain.MsgRequired)
	}
	return f, nil
}
