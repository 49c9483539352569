// Package excel imports curriculum standards from spreadsheet files so
// districts can extend the builtin catalog. XLSX and CSV are supported.
package excel

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/example/hootacademy/internal/database"
	"github.com/example/hootacademy/pkg/models"
)

// ImportConfig defines the import configuration
type ImportConfig struct {
	FilePath    string // Path to the Excel or CSV file
	SheetName   string // Name of the sheet to import
	StartRow    int    // The row to start importing from (1-based)
	IDColumn    int    // 0-based column indexes
	CodeColumn  int
	CatColumn   int
	DescColumn  int
}

// DefaultImportConfig returns the default import configuration:
// columns id, code, category, description with a header row.
func DefaultImportConfig(filePath string) ImportConfig {
	return ImportConfig{
		FilePath:   filePath,
		SheetName:  "Sheet1",
		StartRow:   2, // Skip header
		IDColumn:   0,
		CodeColumn: 1,
		CatColumn:  2,
		DescColumn: 3,
	}
}

// ImportResult holds the result of an import operation
type ImportResult struct {
	TotalProcessed int
	Imported       int
	Skipped        int
	Errors         []string
}

// ImportStandards imports standards from an Excel or CSV file into the
// curriculum_standards table.
func ImportStandards(config ImportConfig) (*ImportResult, error) {
	ext := strings.ToLower(filepath.Ext(config.FilePath))
	if ext == ".csv" {
		return importFromCSV(config)
	}
	return importFromExcel(config)
}

// importFromExcel imports standards from an XLSX file
func importFromExcel(config ImportConfig) (*ImportResult, error) {
	f, err := excelize.OpenFile(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(config.SheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %v", err)
	}

	result := &ImportResult{Errors: make([]string, 0)}
	repo := database.NewStandardRepository()

	for i, row := range rows {
		if i < config.StartRow-1 {
			continue
		}
		result.TotalProcessed++
		if err := importRow(row, config, repo, result); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", i+1, err))
		}
	}
	return result, nil
}

// importFromCSV imports standards from a CSV file
func importFromCSV(config ImportConfig) (*ImportResult, error) {
	f, err := os.Open(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %v", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	result := &ImportResult{Errors: make([]string, 0)}
	repo := database.NewStandardRepository()

	rowNum := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV: %v", err)
		}
		rowNum++
		if rowNum < config.StartRow {
			continue
		}
		result.TotalProcessed++
		if err := importRow(row, config, repo, result); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", rowNum, err))
		}
	}
	return result, nil
}

// importRow parses and stores a single spreadsheet row
func importRow(row []string, config ImportConfig, repo *database.StandardRepository, result *ImportResult) error {
	cell := func(idx int) string {
		if idx < 0 || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	standard := models.Standard{
		ID:          cell(config.IDColumn),
		Code:        cell(config.CodeColumn),
		Category:    cell(config.CatColumn),
		Description: cell(config.DescColumn),
	}

	if standard.ID == "" {
		result.Skipped++
		return nil
	}
	if standard.Code == "" {
		result.Skipped++
		return fmt.Errorf("standard %q has no display code", standard.ID)
	}

	if err := repo.Upsert(standard); err != nil {
		return err
	}
	result.Imported++
	return nil
}
