package services_test

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gometrics/internal/converter"
	"gometrics/internal/models"
	"gometrics/internal/services"
)

func sampleRecords() []models.Record {
	ts := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	return []models.Record{
		{
			ID:        "a",
			Timestamp: ts,
			Category:  converter.Length,
			FromUnit:  converter.Kilometers,
			ToUnit:    converter.Meters,
			Input:     1,
			Output:    1000,
		},
		{
			ID:        "b",
			Timestamp: ts.Add(time.Minute),
			Category:  converter.Temperature,
			FromUnit:  converter.Celsius,
			ToUnit:    converter.Fahrenheit,
			Input:     0,
			Output:    32,
		},
	}
}

func TestExportService_WriteCSV(t *testing.T) {
	var buf bytes.Buffer
	svc := services.NewExportService(nopLogger{})

	require.NoError(t, svc.WriteCSV(&buf, sampleRecords()))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"timestamp", "category", "from_unit", "to_unit", "input", "output"}, rows[0])
	assert.Equal(t, []string{"2026-03-14T09:26:53Z", "Length", "kilometers", "meters", "1", "1000"}, rows[1])
	assert.Equal(t, "32", rows[2][5])
}

func TestExportService_WriteCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	svc := services.NewExportService(nopLogger{})

	require.NoError(t, svc.WriteCSV(&buf, nil))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 1, "header only")
}

func TestExportService_WriteText(t *testing.T) {
	var buf bytes.Buffer
	svc := services.NewExportService(nopLogger{})

	require.NoError(t, svc.WriteText(&buf, sampleRecords()))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Length: 1 kilometers = 1000 meters")
	assert.Contains(t, lines[1], "Temperature: 0 celsius = 32 fahrenheit")
}
