package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/jsamuelsen11/startup-scorer/internal/adapters/csvio"
	"github.com/jsamuelsen11/startup-scorer/internal/adapters/http/dto"
	"github.com/jsamuelsen11/startup-scorer/internal/domain"
	"github.com/jsamuelsen11/startup-scorer/internal/domain/report"
	"github.com/jsamuelsen11/startup-scorer/internal/domain/scoring"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func stripeResult() scoring.Result {
	return scoring.Result{
		Domain:       "stripe.com",
		Organization: "Stripe",
		Score:        82.5,
		Tier:         scoring.TierHigh,
		Breakdown: scoring.Breakdown{
			Employees:       30,
			EmailConfidence: 22.5,
			Industry:        20,
			EmailsFound:     10,
		},
	}
}

func testReport() *report.Report {
	rep := report.New(4, testTime)
	rep.AddScored("stripe.com", stripeResult())
	rep.AddUnavailable("gone.io", domain.ErrNotFound)
	rep.AddScored("tiny.dev", scoring.Result{Domain: "tiny.dev", Score: 12, Tier: scoring.TierLow})
	rep.AddScored("mid.co", scoring.Result{Domain: "mid.co", Score: 45, Tier: scoring.TierMedium})
	return rep
}

func TestToScoreResponse(t *testing.T) {
	t.Parallel()

	r := stripeResult()
	got := dto.ToScoreResponse(&r)

	if got.Domain != "stripe.com" {
		t.Errorf("Domain = %q, want %q", got.Domain, "stripe.com")
	}
	if got.Organization != "Stripe" {
		t.Errorf("Organization = %q, want %q", got.Organization, "Stripe")
	}
	if got.Score != 82.5 {
		t.Errorf("Score = %v, want 82.5", got.Score)
	}
	if got.Tier != "High" {
		t.Errorf("Tier = %q, want %q", got.Tier, "High")
	}
	if got.Breakdown.EmailConfidence != 22.5 {
		t.Errorf("Breakdown.EmailConfidence = %v, want 22.5", got.Breakdown.EmailConfidence)
	}
}

func TestToReportResponse(t *testing.T) {
	t.Parallel()

	skipped := []csvio.SkippedRow{{Line: 3, Value: "not a domain", Reason: "must be a valid host name"}}
	got := dto.ToReportResponse(testReport(), 2, skipped)

	if got.GeneratedAt != "2026-02-12T15:04:05Z" {
		t.Errorf("GeneratedAt = %q, want %q", got.GeneratedAt, "2026-02-12T15:04:05Z")
	}
	if len(got.Rows) != 4 {
		t.Fatalf("len(Rows) = %d, want 4", len(got.Rows))
	}

	wantOrder := []string{"stripe.com", "gone.io", "tiny.dev", "mid.co"}
	for i, want := range wantOrder {
		if got.Rows[i].Domain != want {
			t.Errorf("Rows[%d].Domain = %q, want %q", i, got.Rows[i].Domain, want)
		}
	}

	unavailable := got.Rows[1]
	if unavailable.Status != report.StatusUnavailable {
		t.Errorf("Rows[1].Status = %q, want %q", unavailable.Status, report.StatusUnavailable)
	}
	if unavailable.Score != nil {
		t.Errorf("Rows[1].Score = %v, want nil", *unavailable.Score)
	}
	if unavailable.Error != domain.ErrNotFound.Error() {
		t.Errorf("Rows[1].Error = %q, want %q", unavailable.Error, domain.ErrNotFound.Error())
	}

	if got.Rows[0].Score == nil || *got.Rows[0].Score != 82.5 {
		t.Errorf("Rows[0].Score = %v, want 82.5", got.Rows[0].Score)
	}

	if got.Summary.Total != 4 || got.Summary.Scored != 3 || got.Summary.Unavailable != 1 {
		t.Errorf("Summary = %+v, want total 4 scored 3 unavailable 1", got.Summary)
	}
	if got.Summary.ByTier["High"] != 1 || got.Summary.ByTier["Medium"] != 1 || got.Summary.ByTier["Low"] != 1 {
		t.Errorf("Summary.ByTier = %v, want one per tier", got.Summary.ByTier)
	}

	if len(got.Top) != 2 {
		t.Fatalf("len(Top) = %d, want 2", len(got.Top))
	}
	if got.Top[0].Domain != "stripe.com" || got.Top[1].Domain != "mid.co" {
		t.Errorf("Top = %+v, want stripe.com then mid.co", got.Top)
	}

	if len(got.Skipped) != 1 || got.Skipped[0].Line != 3 {
		t.Errorf("Skipped = %+v, want one row at line 3", got.Skipped)
	}
}

func TestToReportResponse_OmitsSkippedWhenNone(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(dto.ToReportResponse(testReport(), 10, nil))
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if _, ok := raw["skipped"]; ok {
		t.Error("skipped key present, want omitted")
	}
	rows, ok := raw["rows"].([]any)
	if !ok {
		t.Fatalf("rows = %T, want array", raw["rows"])
	}
	row := rows[1].(map[string]any)
	if _, ok := row["score"]; ok {
		t.Error("unavailable row has score key, want omitted")
	}
}

func TestToScoringConfigResponse(t *testing.T) {
	t.Parallel()

	got := dto.ToScoringConfigResponse(scoring.DefaultConfig())

	if got.Thresholds.High != 70 || got.Thresholds.Medium != 40 {
		t.Errorf("Thresholds = %+v, want medium 40 high 70", got.Thresholds)
	}
	total := got.Weights.Employees + got.Weights.EmailConfidence + got.Weights.Industry +
		got.Weights.EmailsFound + got.Weights.KeyContacts
	if total != 100 {
		t.Errorf("weights sum = %v, want 100", total)
	}
	if len(got.Industries) == 0 {
		t.Error("Industries is empty, want default target industries")
	}

	empty := dto.ToScoringConfigResponse(scoring.Config{})
	if empty.Industries == nil {
		t.Error("Industries = nil, want empty slice")
	}
}
