// Package report accumulates per-domain scoring outcomes for display and
// export. A Report keeps one row per input domain in input order; rows whose
// lookup failed carry an error marker instead of a score.
package report

import (
	"cmp"
	"slices"
	"time"

	"github.com/jsamuelsen11/startup-scorer/internal/domain/scoring"
)

// Row status values.
const (
	StatusScored      = "scored"
	StatusUnavailable = "unavailable"
)

// Row is the outcome for one input domain. Exactly one of Result or Err is set.
type Row struct {
	Domain string
	Result *scoring.Result
	Err    error
}

// Unavailable reports whether the row is an error marker.
func (r Row) Unavailable() bool {
	return r.Result == nil
}

// Status returns StatusScored or StatusUnavailable.
func (r Row) Status() string {
	if r.Unavailable() {
		return StatusUnavailable
	}
	return StatusScored
}

// Report is an ordered sequence of rows, one per input domain.
type Report struct {
	Rows        []Row
	GeneratedAt time.Time
}

// New returns an empty report with capacity for n rows.
func New(n int, generatedAt time.Time) *Report {
	return &Report{
		Rows:        make([]Row, 0, n),
		GeneratedAt: generatedAt,
	}
}

// AddScored appends a scored row.
func (r *Report) AddScored(domain string, result scoring.Result) {
	r.Rows = append(r.Rows, Row{Domain: domain, Result: &result})
}

// AddUnavailable appends an error-marked row.
func (r *Report) AddUnavailable(domain string, err error) {
	r.Rows = append(r.Rows, Row{Domain: domain, Err: err})
}

// Len returns the number of rows.
func (r *Report) Len() int {
	return len(r.Rows)
}

// Summary aggregates a report.
type Summary struct {
	Total       int
	Scored      int
	Unavailable int
	ByTier      map[scoring.Tier]int
	MeanScore   float64
}

// Summary counts rows per tier and averages the scores of scored rows.
func (r *Report) Summary() Summary {
	s := Summary{
		Total:  len(r.Rows),
		ByTier: make(map[scoring.Tier]int, len(scoring.Tiers())),
	}
	for _, tier := range scoring.Tiers() {
		s.ByTier[tier] = 0
	}

	var sum float64
	for _, row := range r.Rows {
		if row.Unavailable() {
			s.Unavailable++
			continue
		}
		s.Scored++
		s.ByTier[row.Result.Tier]++
		sum += row.Result.Score
	}
	if s.Scored > 0 {
		s.MeanScore = sum / float64(s.Scored)
	}
	return s
}

// Top returns up to n scored rows ordered by score descending. Rows with
// equal scores keep their input order. The report itself is not reordered.
func (r *Report) Top(n int) []Row {
	scored := make([]Row, 0, len(r.Rows))
	for _, row := range r.Rows {
		if !row.Unavailable() {
			scored = append(scored, row)
		}
	}

	slices.SortStableFunc(scored, func(a, b Row) int {
		return cmp.Compare(b.Result.Score, a.Result.Score)
	})

	if n >= 0 && n < len(scored) {
		scored = scored[:n]
	}
	return scored
}
