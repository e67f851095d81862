package converter_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gometrics/internal/converter"
)

func TestConvert_KnownValues(t *testing.T) {
	tests := []struct {
		name     string
		category converter.Category
		from     converter.Unit
		to       converter.Unit
		value    float64
		want     float64
	}{
		{"freezing point C to F", converter.Temperature, converter.Celsius, converter.Fahrenheit, 0, 32},
		{"boiling point F to C", converter.Temperature, converter.Fahrenheit, converter.Celsius, 212, 100},
		{"freezing point C to K", converter.Temperature, converter.Celsius, converter.Kelvin, 0, 273.15},
		{"absolute zero K to C", converter.Temperature, converter.Kelvin, converter.Celsius, 0, -273.15},
		{"kilometers to meters", converter.Length, converter.Kilometers, converter.Meters, 1, 1000},
		{"miles to kilometers", converter.Length, converter.Miles, converter.Kilometers, 1, 1.609344},
		{"feet to inches", converter.Length, converter.Feet, converter.Inches, 1, 12},
		{"pounds to kilograms", converter.Weight, converter.Pounds, converter.Kilograms, 1, 0.453592},
		{"metric tons to grams", converter.Weight, converter.MetricTons, converter.Grams, 1, 1e6},
		{"gallons to liters", converter.Volume, converter.Gallons, converter.Liters, 1, 3.78541},
		{"liters to milliliters", converter.Volume, converter.Liters, converter.Milliliters, 2.5, 2500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := converter.Convert(tt.category, tt.from, tt.to, tt.value)
			require.NoError(t, err)
			assert.InEpsilon(t, tt.want, got, 1e-9)
		})
	}
}

func TestConvert_IdentityIsExact(t *testing.T) {
	values := []float64{0, 1, -273.15, 0.1, 1e300, -1e300, 5e-324}

	for _, category := range converter.Categories() {
		units, err := converter.Units(category)
		require.NoError(t, err)

		for _, unit := range units {
			for _, v := range values {
				got, err := converter.Convert(category, unit, unit, v)
				require.NoError(t, err)
				assert.Equal(t, v, got, "%s %s identity for %v", category, unit, v)
			}
		}
	}
}

func TestConvert_RoundTrip(t *testing.T) {
	values := []float64{0, 1, -40, 0.001, 123456.789, 1e12, 1e-9}

	for _, category := range converter.Categories() {
		units, err := converter.Units(category)
		require.NoError(t, err)

		for _, from := range units {
			for _, to := range units {
				for _, v := range values {
					out, err := converter.Convert(category, from, to, v)
					require.NoError(t, err)

					back, err := converter.Convert(category, to, from, out)
					require.NoError(t, err)

					// Temperature offsets leave a small absolute residue at
					// tiny magnitudes, so the tolerance has both an absolute
					// and a relative part.
					delta := 1e-9 + math.Abs(v)*1e-9
					assert.InDelta(t, v, back, delta,
						"%s: %v %s -> %s -> back", category, v, from, to)
				}
			}
		}
	}
}

func TestConvert_PreservesExtremeMagnitudes(t *testing.T) {
	out, err := converter.Convert(converter.Length, converter.Kilometers, converter.Meters, 1e300)
	require.NoError(t, err)
	assert.False(t, math.IsInf(out, 0), "large input must not overflow")

	out, err = converter.Convert(converter.Length, converter.Millimeters, converter.Kilometers, 1e-300)
	require.NoError(t, err)
	assert.NotZero(t, out, "small input must not underflow to zero")
}

func TestConvert_CrossCategoryUnit(t *testing.T) {
	_, err := converter.Convert(converter.Length, converter.Meters, converter.Pounds, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, converter.ErrInvalidUnit)

	_, err = converter.Convert(converter.Temperature, converter.Liters, converter.Celsius, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, converter.ErrInvalidUnit)
}

func TestConvert_UnknownCategory(t *testing.T) {
	_, err := converter.Convert(converter.Category("Pressure"), converter.Meters, converter.Meters, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, converter.ErrInvalidCategory)
}

func TestConvert_NonFiniteValue(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := converter.Convert(converter.Length, converter.Meters, converter.Meters, v)
		require.Error(t, err, "value %v", v)
		assert.ErrorIs(t, err, converter.ErrInvalidValue)
	}
}

func TestUnits_Enumeration(t *testing.T) {
	assert.Len(t, converter.Categories(), 4)

	counts := map[converter.Category]int{
		converter.Length:      8,
		converter.Weight:      6,
		converter.Temperature: 3,
		converter.Volume:      7,
	}
	for category, want := range counts {
		units, err := converter.Units(category)
		require.NoError(t, err)
		assert.Len(t, units, want)
	}

	_, err := converter.Units(converter.Category("Pressure"))
	assert.ErrorIs(t, err, converter.ErrInvalidCategory)
}

func TestBelongs(t *testing.T) {
	assert.True(t, converter.Belongs(converter.Weight, converter.Ounces))
	assert.False(t, converter.Belongs(converter.Weight, converter.Meters))
	assert.False(t, converter.Belongs(converter.Category("Pressure"), converter.Meters))
}
