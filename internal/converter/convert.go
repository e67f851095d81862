package converter

import (
	"fmt"
	"math"
)

// Convert maps value from one unit to another within a category.
//
// Length, weight, and volume conversions go through the category base unit:
// value * factor(from) / factor(to). Temperature goes through Celsius with
// the usual affine formulas. Converting a unit to itself returns value
// unchanged for every category, so round trips at extreme magnitudes stay
// exact.
//
// Convert is a pure function; invalid input is reported as an error wrapping
// ErrInvalidCategory, ErrInvalidUnit, or ErrInvalidValue.
func Convert(category Category, from, to Unit, value float64) (float64, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("%w: not a finite number: %v", ErrInvalidValue, value)
	}

	if category == Temperature {
		return convertTemperature(from, to, value)
	}

	factors, ok := factorTables[category]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCategory, category)
	}

	fromFactor, ok := factors[from]
	if !ok {
		return 0, fmt.Errorf("%w: %q does not belong to %s", ErrInvalidUnit, from, category)
	}
	toFactor, ok := factors[to]
	if !ok {
		return 0, fmt.Errorf("%w: %q does not belong to %s", ErrInvalidUnit, to, category)
	}

	if from == to {
		return value, nil
	}
	return value * fromFactor / toFactor, nil
}

func convertTemperature(from, to Unit, value float64) (float64, error) {
	if !Belongs(Temperature, from) {
		return 0, fmt.Errorf("%w: %q does not belong to %s", ErrInvalidUnit, from, Temperature)
	}
	if !Belongs(Temperature, to) {
		return 0, fmt.Errorf("%w: %q does not belong to %s", ErrInvalidUnit, to, Temperature)
	}

	// Short-circuit before any arithmetic so the identity law holds exactly.
	if from == to {
		return value, nil
	}
	return fromCelsius(to, toCelsius(from, value)), nil
}

func toCelsius(from Unit, value float64) float64 {
	switch from {
	case Fahrenheit:
		return (value - 32) * 5 / 9
	case Kelvin:
		return value - 273.15
	default:
		return value
	}
}

func fromCelsius(to Unit, celsius float64) float64 {
	switch to {
	case Fahrenheit:
		return celsius*9/5 + 32
	case Kelvin:
		return celsius + 273.15
	default:
		return celsius
	}
}
