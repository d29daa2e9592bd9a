package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fmuoria/resume-screener/internal/models"
	"github.com/fmuoria/resume-screener/internal/screening"
)

// csvHeader is the fixed column layout consumed by downstream tooling.
var csvHeader = []string{"File", "Classification", "MatchPct", "Reason", "FoundSkills", "Path"}

// WriteCSV writes screening results as CSV. Found skills are joined with
// ';' so the cell stays a single column.
func WriteCSV(w io.Writer, results []models.ScreeningResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, r := range results {
		record := []string{
			r.Name,
			string(r.Classification),
			screening.FormatPercent(r.MatchPct),
			r.Reason,
			strings.Join(r.FoundSkills, ";"),
			r.Path,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record for %s: %w", r.Name, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportCSV writes screening results to a CSV file.
func ExportCSV(results []models.ScreeningResult, outputPath string) error {
	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer f.Close()

	if err := WriteCSV(f, results); err != nil {
		return err
	}
	return f.Close()
}
