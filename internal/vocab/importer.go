package vocab

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/example/wortbot/pkg/models"
)

// ImportConfig defines how a vocabulary file is read.
type ImportConfig struct {
	FilePath   string // Path to the Excel or CSV file
	SheetName  string // Name of the sheet to import (Excel only)
	StartRow   int    // The row to start importing from (1-based index)
	Level      string // Level assigned to rows without a level column
	Category   string // Category assigned to rows without a category column
}

// DefaultImportConfig returns the default import configuration.
func DefaultImportConfig() ImportConfig {
	return ImportConfig{
		SheetName: "Sheet1",
		StartRow:  2, // skip header
		Level:     models.LevelA1,
		Category:  "general",
	}
}

// ImportResult holds the result of an import operation.
type ImportResult struct {
	TotalProcessed int
	Created        int
	Skipped        int
	Errors         []string
}

// ImportWords imports vocabulary from an Excel or CSV file into the
// repository. Rows are expected as:
// german, english, pronunciation, example, example_translation, category,
// level, frequency, word_type — trailing columns may be omitted.
func ImportWords(config ImportConfig) (*ImportResult, error) {
	ext := strings.ToLower(filepath.Ext(config.FilePath))
	if ext == ".csv" {
		return importFromCSV(config)
	}
	return importFromExcel(config)
}

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

	repo := NewRepository()
	result := &ImportResult{Errors: make([]string, 0)}

	for i, row := range rows {
		if i < config.StartRow-1 {
			continue
		}
		result.TotalProcessed++
		if err := processRow(row, config, repo, result); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", i+1, err))
		}
	}
	return result, nil
}

func importFromCSV(config ImportConfig) (*ImportResult, error) {
	file, err := os.Open(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %v", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	repo := NewRepository()
	result := &ImportResult{Errors: make([]string, 0)}

	rowNum := 0
	currentCategory := config.Category
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV: %v", err)
		}
		rowNum++
		if rowNum < config.StartRow {
			continue
		}

		// A row with only the first column filled marks a category section.
		if len(row) >= 2 && strings.TrimSpace(row[0]) != "" && strings.TrimSpace(row[1]) == "" {
			currentCategory = strings.Trim(strings.TrimSpace(row[0]), "\"")
			continue
		}

		result.TotalProcessed++
		cfg := config
		cfg.Category = currentCategory
		if err := processRow(row, cfg, repo, result); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", rowNum, err))
		}
	}
	return result, nil
}

func processRow(row []string, config ImportConfig, repo *Repository, result *ImportResult) error {
	get := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	item := models.VocabularyItem{
		German:             cleanWord(get(0)),
		English:            get(1),
		Pronunciation:      get(2),
		Example:            get(3),
		ExampleTranslation: get(4),
		Category:           get(5),
		Level:              get(6),
		Frequency:          parseIntOrDefault(get(7), 1, 10, 5),
		WordType:           get(8),
	}
	if item.German == "" {
		result.Skipped++
		return fmt.Errorf("word cannot be empty")
	}
	if item.English == "" {
		result.Skipped++
		return fmt.Errorf("translation cannot be empty")
	}
	if item.Category == "" {
		item.Category = config.Category
	}
	if item.Level == "" {
		item.Level = config.Level
	}

	if err := repo.Upsert(item); err != nil {
		return err
	}
	result.Created++
	return nil
}

// cleanWord drops trailing parenthesised notes like "gehen (ging, gegangen)".
func cleanWord(word string) string {
	if i := strings.Index(word, "("); i > 0 {
		return strings.TrimSpace(word[:i])
	}
	return strings.TrimSpace(word)
}

func parseIntOrDefault(s string, min, max, defaultVal int) int {
	var val int
	if _, err := fmt.Sscanf(s, "%d", &val); err != nil {
		return defaultVal
	}
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
