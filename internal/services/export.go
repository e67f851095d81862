package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"gometrics/internal/logger"
	"gometrics/internal/models"
)

// ExportService writes conversion history to flat files. It only formats
// and writes; the caller owns the destination and its lifetime.
type ExportService struct {
	log logger.Logger
}

func NewExportService(log logger.Logger) *ExportService {
	return &ExportService{log: log}
}

var csvHeader = []string{"timestamp", "category", "from_unit", "to_unit", "input", "output"}

// WriteCSV writes records as CSV with a header row.
func (es *ExportService) WriteCSV(w io.Writer, records []models.Record) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, record := range records {
		row := []string{
			record.Timestamp.Format(time.RFC3339),
			string(record.Category),
			string(record.FromUnit),
			string(record.ToUnit),
			FormatValue(record.Input),
			FormatValue(record.Output),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}

	es.log.Info("Export", "history exported as CSV", map[string]interface{}{
		"records": len(records),
	})
	return nil
}

// WriteText writes records as readable plain text, one conversion per line.
func (es *ExportService) WriteText(w io.Writer, records []models.Record) error {
	for _, record := range records {
		line := fmt.Sprintf("%s  %s: %s %s = %s %s\n",
			record.Timestamp.Format("2006-01-02 15:04:05"),
			record.Category,
			FormatValue(record.Input), record.FromUnit,
			FormatValue(record.Output), record.ToUnit,
		)
		if _, err := io.WriteString(w, line); err != nil {
			return fmt.Errorf("write text line: %w", err)
		}
	}

	es.log.Info("Export", "history exported as text", map[string]interface{}{
		"records": len(records),
	})
	return nil
}
