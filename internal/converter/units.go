// Package converter implements the unit conversion engine: a closed set of
// measurement categories and units with pure conversion arithmetic. All
// tables are initialized at load time and never mutated, so the package is
// safe for concurrent use without synchronization.
package converter

import "fmt"

// Category identifies a dimension of measurement. Units are interchangeable
// only within their own category.
type Category string

const (
	Length      Category = "Length"
	Weight      Category = "Weight"
	Temperature Category = "Temperature"
	Volume      Category = "Volume"
)

// Unit names a scale within a single category.
type Unit string

// Length units.
const (
	Meters      Unit = "meters"
	Kilometers  Unit = "kilometers"
	Centimeters Unit = "centimeters"
	Millimeters Unit = "millimeters"
	Miles       Unit = "miles"
	Yards       Unit = "yards"
	Feet        Unit = "feet"
	Inches      Unit = "inches"
)

// Weight units.
const (
	Kilograms  Unit = "kilograms"
	Grams      Unit = "grams"
	Pounds     Unit = "pounds"
	Ounces     Unit = "ounces"
	Tons       Unit = "tons"
	MetricTons Unit = "metric_tons"
)

// Temperature units.
const (
	Celsius    Unit = "celsius"
	Fahrenheit Unit = "fahrenheit"
	Kelvin     Unit = "kelvin"
)

// Volume units.
const (
	Liters      Unit = "liters"
	Milliliters Unit = "milliliters"
	Gallons     Unit = "gallons"
	Quarts      Unit = "quarts"
	Pints       Unit = "pints"
	Cups        Unit = "cups"
	FluidOunces Unit = "fluid_ounces"
)

// Multiplicative factors anchor each unit to its category base: meters for
// length, kilograms for weight, liters for volume. Temperature has no factor
// table; its units are related by affine formulas in convert.go.
var lengthToMeters = map[Unit]float64{
	Meters:      1.0,
	Kilometers:  1000.0,
	Centimeters: 0.01,
	Millimeters: 0.001,
	Miles:       1609.344,
	Yards:       0.9144,
	Feet:        0.3048,
	Inches:      0.0254,
}

var weightToKilograms = map[Unit]float64{
	Kilograms:  1.0,
	Grams:      0.001,
	Pounds:     0.453592,
	Ounces:     0.0283495,
	Tons:       907.185,
	MetricTons: 1000.0,
}

var volumeToLiters = map[Unit]float64{
	Liters:      1.0,
	Milliliters: 0.001,
	Gallons:     3.78541,
	Quarts:      0.946353,
	Pints:       0.473176,
	Cups:        0.236588,
	FluidOunces: 0.0295735,
}

var factorTables = map[Category]map[Unit]float64{
	Length: lengthToMeters,
	Weight: weightToKilograms,
	Volume: volumeToLiters,
}

// unitOrder fixes the display order of units per category. Maps alone cannot
// give the GUI a stable ordering.
var unitOrder = map[Category][]Unit{
	Length:      {Meters, Kilometers, Centimeters, Millimeters, Miles, Yards, Feet, Inches},
	Weight:      {Kilograms, Grams, Pounds, Ounces, Tons, MetricTons},
	Temperature: {Celsius, Fahrenheit, Kelvin},
	Volume:      {Liters, Milliliters, Gallons, Quarts, Pints, Cups, FluidOunces},
}

var categoryOrder = []Category{Length, Weight, Temperature, Volume}

// Categories returns every supported category in display order.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// Units returns the units belonging to category, in display order.
func Units(category Category) ([]Unit, error) {
	units, ok := unitOrder[category]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, category)
	}
	out := make([]Unit, len(units))
	copy(out, units)
	return out, nil
}

// Belongs reports whether unit is a member of category.
func Belongs(category Category, unit Unit) bool {
	for _, u := range unitOrder[category] {
		if u == unit {
			return true
		}
	}
	return false
}
