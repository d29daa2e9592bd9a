// Package export writes screening results to CSV files and styled Excel
// reports.
package export

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/fmuoria/resume-screener/internal/models"
)

// Row fill colors per classification, matching the green/orange/red coding
// used in the results display.
const (
	fillSuitable = "E6F4EA"
	fillMaybe    = "FFF4E6"
	fillReject   = "FDECEA"
)

// ExportToExcel generates an Excel report with a summary sheet and a
// color-coded results sheet.
func ExportToExcel(results []models.ScreeningResult, outputPath string) error {
	f := excelize.NewFile()
	defer f.Close()

	if !strings.HasSuffix(strings.ToLower(outputPath), ".xlsx") {
		outputPath += ".xlsx"
	}
	outputPath = filepath.Clean(outputPath)

	summarySheet := "Summary"
	resultsSheet := "Screening Results"

	f.SetSheetName("Sheet1", summarySheet)
	if _, err := f.NewSheet(resultsSheet); err != nil {
		return fmt.Errorf("failed to create results sheet: %w", err)
	}

	if err := createSummarySheet(f, summarySheet, results); err != nil {
		return fmt.Errorf("failed to create summary sheet: %w", err)
	}
	if err := createResultsSheet(f, resultsSheet, results); err != nil {
		return fmt.Errorf("failed to create results sheet: %w", err)
	}

	if err := f.SaveAs(outputPath); err != nil {
		return fmt.Errorf("failed to save Excel file: %w", err)
	}
	return nil
}

// createSummarySheet writes report metadata and per-classification counts.
func createSummarySheet(f *excelize.File, sheetName string, results []models.ScreeningResult) error {
	f.SetColWidth(sheetName, "A", "A", 28)
	f.SetColWidth(sheetName, "B", "B", 40)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	})
	if err != nil {
		return err
	}
	labelStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return err
	}

	row := 1
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "Resume Screening Report")
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row), headerStyle)
	f.MergeCell(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row))
	row += 2

	f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "Generated:")
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), labelStyle)
	f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), time.Now().Format("2006-01-02 15:04:05"))
	row++

	f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "Candidates Screened:")
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), labelStyle)
	f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), len(results))
	row += 2

	counts := map[models.Classification]int{}
	for _, r := range results {
		counts[r.Classification]++
	}
	for _, c := range []models.Classification{models.Suitable, models.Maybe, models.Reject, models.Unscreened} {
		if counts[c] == 0 && c == models.Unscreened {
			continue
		}
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), string(c)+":")
		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), labelStyle)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), counts[c])
		row++
	}

	return nil
}

// createResultsSheet writes one row per candidate, filled green, orange or
// red by classification.
func createResultsSheet(f *excelize.File, sheetName string, results []models.ScreeningResult) error {
	f.SetColWidth(sheetName, "A", "A", 32)
	f.SetColWidth(sheetName, "B", "C", 14)
	f.SetColWidth(sheetName, "D", "E", 44)
	f.SetColWidth(sheetName, "F", "F", 48)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}

	rowStyles := make(map[models.Classification]int)
	for c, color := range map[models.Classification]string{
		models.Suitable: fillSuitable,
		models.Maybe:    fillMaybe,
		models.Reject:   fillReject,
	} {
		style, err := f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
		})
		if err != nil {
			return err
		}
		rowStyles[c] = style
	}

	headers := []string{"File", "Classification", "Match %", "Reason", "Found Skills", "Path"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		f.SetCellValue(sheetName, cell, h)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for i, r := range results {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), r.Name)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), string(r.Classification))
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), r.MatchPct)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), r.Reason)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), strings.Join(r.FoundSkills, ", "))
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), r.Path)

		if style, ok := rowStyles[r.Classification]; ok {
			f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("F%d", row), style)
		}
	}

	return nil
}
