// Package services glues the conversion engine to the GUI: input parsing,
// result formatting, history recording, and flat-file export.
package services

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gometrics/internal/converter"
	"gometrics/internal/logger"
	"gometrics/internal/models"
)

// ConversionService executes conversions on behalf of the GUI and records
// each successful one in history.
type ConversionService struct {
	history *models.HistoryRepository
	log     logger.Logger
}

func NewConversionService(history *models.HistoryRepository, log logger.Logger) *ConversionService {
	return &ConversionService{
		history: history,
		log:     log,
	}
}

// Convert parses rawValue, converts it between the given units, and returns
// the recorded result. Unparseable input is reported as ErrInvalidValue so
// the GUI maps it to the same message as a non-finite number.
func (cs *ConversionService) Convert(category converter.Category, from, to converter.Unit, rawValue string) (models.Record, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(rawValue), 64)
	if err != nil {
		return models.Record{}, fmt.Errorf("%w: %q is not a number", converter.ErrInvalidValue, rawValue)
	}

	output, err := converter.Convert(category, from, to, value)
	if err != nil {
		cs.log.Error("Conversion", err, map[string]interface{}{
			"category": string(category),
			"from":     string(from),
			"to":       string(to),
		})
		return models.Record{}, err
	}

	record := cs.history.Add(models.Record{
		Category: category,
		FromUnit: from,
		ToUnit:   to,
		Input:    value,
		Output:   output,
	})

	cs.log.Debug("Conversion", "value converted", map[string]interface{}{
		"category": string(category),
		"from":     string(from),
		"to":       string(to),
		"input":    value,
		"output":   output,
	})
	return record, nil
}

// FormatValue renders a number for display. Extreme magnitudes switch to
// scientific notation; everything else is fixed-point with six decimals,
// trailing zeros trimmed.
func FormatValue(value float64) string {
	abs := math.Abs(value)
	if abs != 0 && (abs >= 1e10 || abs < 1e-6) {
		return strconv.FormatFloat(value, 'e', 6, 64)
	}

	formatted := strconv.FormatFloat(value, 'f', 6, 64)
	formatted = strings.TrimRight(formatted, "0")
	formatted = strings.TrimRight(formatted, ".")
	// Fixed-point -0 trims back to a bare sign.
	if formatted == "-0" {
		formatted = "0"
	}
	return formatted
}
