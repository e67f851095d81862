package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gometrics/internal/converter"
	"gometrics/internal/models"
	"gometrics/internal/services"
)

// nopLogger satisfies logger.Logger for tests.
type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{})   {}
func (nopLogger) Info(string, string, map[string]interface{})    {}
func (nopLogger) Warning(string, string, map[string]interface{}) {}
func (nopLogger) Error(string, error, map[string]interface{})    {}

func TestConversionService_Convert(t *testing.T) {
	history := models.NewHistoryRepository(10)
	svc := services.NewConversionService(history, nopLogger{})

	record, err := svc.Convert(converter.Length, converter.Kilometers, converter.Meters, "1.5")
	require.NoError(t, err)

	assert.Equal(t, 1500.0, record.Output)
	assert.NotEmpty(t, record.ID)
	assert.Equal(t, 1, history.Len())
}

func TestConversionService_TrimsInputWhitespace(t *testing.T) {
	svc := services.NewConversionService(models.NewHistoryRepository(10), nopLogger{})

	record, err := svc.Convert(converter.Temperature, converter.Celsius, converter.Fahrenheit, "  100 ")
	require.NoError(t, err)
	assert.Equal(t, 212.0, record.Output)
}

func TestConversionService_RejectsUnreadableInput(t *testing.T) {
	history := models.NewHistoryRepository(10)
	svc := services.NewConversionService(history, nopLogger{})

	for _, raw := range []string{"", "abc", "1.2.3", "NaN", "Inf"} {
		_, err := svc.Convert(converter.Length, converter.Meters, converter.Meters, raw)
		assert.ErrorIs(t, err, converter.ErrInvalidValue, "input %q", raw)
	}
	assert.Zero(t, history.Len(), "failed conversions must not be recorded")
}

func TestConversionService_PropagatesEngineErrors(t *testing.T) {
	history := models.NewHistoryRepository(10)
	svc := services.NewConversionService(history, nopLogger{})

	_, err := svc.Convert(converter.Length, converter.Meters, converter.Pounds, "1")
	assert.ErrorIs(t, err, converter.ErrInvalidUnit)
	assert.Zero(t, history.Len())
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{0, "0"},
		{32, "32"},
		{1000, "1000"},
		{0.453592, "0.453592"},
		{273.15, "273.15"},
		{1.0 / 3.0, "0.333333"},
		{-40, "-40"},
		{1e10, "1.000000e+10"},
		{-2.5e12, "-2.500000e+12"},
		{1e-7, "1.000000e-07"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, services.FormatValue(tt.value), "value %v", tt.value)
	}
}
