// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/startup-scorer/internal/adapters/csvio"
	"github.com/jsamuelsen11/startup-scorer/internal/domain/report"
	"github.com/jsamuelsen11/startup-scorer/internal/domain/scoring"
)

// BreakdownResponse holds the weighted contribution of each signal.
type BreakdownResponse struct {
	Employees       float64 `json:"employees"`
	EmailConfidence float64 `json:"email_confidence"`
	Industry        float64 `json:"industry"`
	EmailsFound     float64 `json:"emails_found"`
	KeyContacts     float64 `json:"key_contacts"`
}

// ScoreResponse represents a single scored domain in HTTP responses.
type ScoreResponse struct {
	Domain       string            `json:"domain"`
	Organization string            `json:"organization,omitempty"`
	Score        float64           `json:"score"`
	Tier         string            `json:"tier"`
	Breakdown    BreakdownResponse `json:"breakdown"`
}

// ToScoreResponse converts a scoring result to an HTTP response DTO.
func ToScoreResponse(r *scoring.Result) ScoreResponse {
	return ScoreResponse{
		Domain:       r.Domain,
		Organization: r.Organization,
		Score:        r.Score,
		Tier:         r.Tier.String(),
		Breakdown: BreakdownResponse{
			Employees:       r.Breakdown.Employees,
			EmailConfidence: r.Breakdown.EmailConfidence,
			Industry:        r.Breakdown.Industry,
			EmailsFound:     r.Breakdown.EmailsFound,
			KeyContacts:     r.Breakdown.KeyContacts,
		},
	}
}

// ReportRowResponse is one row of a report. Score and Tier are omitted for
// unavailable rows, which carry Error instead.
type ReportRowResponse struct {
	Domain       string   `json:"domain"`
	Status       string   `json:"status"`
	Organization string   `json:"organization,omitempty"`
	Score        *float64 `json:"score,omitempty"`
	Tier         string   `json:"tier,omitempty"`
	Error        string   `json:"error,omitempty"`
}

// SummaryResponse aggregates a report.
type SummaryResponse struct {
	Total       int            `json:"total"`
	Scored      int            `json:"scored"`
	Unavailable int            `json:"unavailable"`
	ByTier      map[string]int `json:"by_tier"`
	MeanScore   float64        `json:"mean_score"`
}

// ChartPoint is one bar of the top-N chart series.
type ChartPoint struct {
	Domain string  `json:"domain"`
	Score  float64 `json:"score"`
	Tier   string  `json:"tier"`
}

// SkippedRowResponse describes an uploaded CSV row that was not imported.
type SkippedRowResponse struct {
	Line   int    `json:"line"`
	Value  string `json:"value,omitempty"`
	Reason string `json:"reason"`
}

// ReportResponse represents a batch report in HTTP responses.
type ReportResponse struct {
	GeneratedAt string               `json:"generated_at"`
	Rows        []ReportRowResponse  `json:"rows"`
	Summary     SummaryResponse      `json:"summary"`
	Top         []ChartPoint         `json:"top"`
	Skipped     []SkippedRowResponse `json:"skipped,omitempty"`
}

// ToReportResponse converts a report to an HTTP response DTO. topN bounds the
// chart series; skipped carries CSV import warnings and may be nil.
func ToReportResponse(rep *report.Report, topN int, skipped []csvio.SkippedRow) ReportResponse {
	rows := make([]ReportRowResponse, len(rep.Rows))
	for i, row := range rep.Rows {
		rows[i] = toReportRow(row)
	}

	top := rep.Top(topN)
	points := make([]ChartPoint, len(top))
	for i, row := range top {
		points[i] = ChartPoint{Domain: row.Domain, Score: row.Result.Score, Tier: row.Result.Tier.String()}
	}

	var skippedResp []SkippedRowResponse
	for _, s := range skipped {
		skippedResp = append(skippedResp, SkippedRowResponse{Line: s.Line, Value: s.Value, Reason: s.Reason})
	}

	return ReportResponse{
		GeneratedAt: rep.GeneratedAt.UTC().Format(time.RFC3339),
		Rows:        rows,
		Summary:     toSummary(rep.Summary()),
		Top:         points,
		Skipped:     skippedResp,
	}
}

func toReportRow(row report.Row) ReportRowResponse {
	resp := ReportRowResponse{Domain: row.Domain, Status: row.Status()}
	if row.Unavailable() {
		if row.Err != nil {
			resp.Error = row.Err.Error()
		}
		return resp
	}

	score := row.Result.Score
	resp.Score = &score
	resp.Tier = row.Result.Tier.String()
	resp.Organization = row.Result.Organization
	return resp
}

func toSummary(s report.Summary) SummaryResponse {
	byTier := make(map[string]int, len(scoring.Tiers()))
	for _, t := range scoring.Tiers() {
		byTier[t.String()] = s.ByTier[t]
	}
	return SummaryResponse{
		Total:       s.Total,
		Scored:      s.Scored,
		Unavailable: s.Unavailable,
		ByTier:      byTier,
		MeanScore:   s.MeanScore,
	}
}

// ScoringConfigResponse exposes the active scoring configuration.
type ScoringConfigResponse struct {
	Weights    WeightsResponse    `json:"weights"`
	Thresholds ThresholdsResponse `json:"thresholds"`
	Industries []string           `json:"industries"`
}

// WeightsResponse mirrors scoring.Weights.
type WeightsResponse struct {
	Employees       float64 `json:"employees"`
	EmailConfidence float64 `json:"email_confidence"`
	Industry        float64 `json:"industry"`
	EmailsFound     float64 `json:"emails_found"`
	KeyContacts     float64 `json:"key_contacts"`
}

// ThresholdsResponse mirrors scoring.Thresholds.
type ThresholdsResponse struct {
	Medium float64 `json:"medium"`
	High   float64 `json:"high"`
}

// ToScoringConfigResponse converts a scoring configuration to an HTTP
// response DTO.
func ToScoringConfigResponse(cfg scoring.Config) ScoringConfigResponse {
	industries := cfg.Industries
	if industries == nil {
		industries = []string{}
	}
	return ScoringConfigResponse{
		Weights: WeightsResponse{
			Employees:       cfg.Weights.Employees,
			EmailConfidence: cfg.Weights.EmailConfidence,
			Industry:        cfg.Weights.Industry,
			EmailsFound:     cfg.Weights.EmailsFound,
			KeyContacts:     cfg.Weights.KeyContacts,
		},
		Thresholds: ThresholdsResponse{
			Medium: cfg.Thresholds.Medium,
			High:   cfg.Thresholds.High,
		},
		Industries: industries,
	}
}
