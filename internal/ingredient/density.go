// Package ingredient converts volume measures found in free-form ingredient
// text into grams.
package ingredient

// Unit is a volume unit word recognized in ingredient text.
type Unit string

const (
	UnitCup         Unit = "cup"
	UnitCups        Unit = "cups"
	UnitTbsp        Unit = "tbsp"
	UnitTablespoon  Unit = "tablespoon"
	UnitTablespoons Unit = "tablespoons"
	UnitTsp         Unit = "tsp"
	UnitTeaspoon    Unit = "teaspoon"
	UnitTeaspoons   Unit = "teaspoons"
)

// densities maps each unit word to grams per unit. It is never mutated.
var densities = map[Unit]float64{
	UnitCup:         240,
	UnitCups:        240,
	UnitTbsp:        15,
	UnitTablespoon:  15,
	UnitTablespoons: 15,
	UnitTsp:         5,
	UnitTeaspoon:    5,
	UnitTeaspoons:   5,
}

// unitOrder is the order units are tried in at a position. The first unit
// that prefixes the text wins, so "2 cups" matches as "2 cup".
var unitOrder = []Unit{
	UnitCup,
	UnitCups,
	UnitTbsp,
	UnitTablespoon,
	UnitTablespoons,
	UnitTsp,
	UnitTeaspoon,
	UnitTeaspoons,
}

// GramsPerUnit returns the grams in one unit, and false for unknown units.
func GramsPerUnit(unit Unit) (float64, bool) {
	grams, ok := densities[unit]
	return grams, ok
}

// Units returns the recognized unit words in matching order.
func Units() []Unit {
	units := make([]Unit, len(unitOrder))
	copy(units, unitOrder)
	return units
}
