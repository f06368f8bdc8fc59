package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/jsamuelsen11/startup-scorer/internal/domain/report"
)

// ExportFilename is the suggested file name for report downloads.
const ExportFilename = "startup_scores.csv"

var reportHeader = []string{"domain", "score", "tier"}

// WriteReport writes rep as CSV with the columns domain, score, tier.
// Scores have one decimal place. Unavailable rows have an empty score and
// the tier "unavailable".
func WriteReport(w io.Writer, rep *report.Report) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(reportHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	for _, row := range rep.Rows {
		record := []string{row.Domain, "", report.StatusUnavailable}
		if !row.Unavailable() {
			record[1] = strconv.FormatFloat(row.Result.Score, 'f', 1, 64)
			record[2] = row.Result.Tier.String()
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing csv row for %s: %w", row.Domain, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}
	return nil
}
