package ingredient

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// NotAvailable is shown in place of any missing value.
const NotAvailable = "N/A"

// Grams is a gram total that may be unavailable. The zero value is
// unavailable and renders as NotAvailable.
type Grams struct {
	value float64
	valid bool
}

// GramsOf returns an available gram amount.
func GramsOf(value float64) Grams {
	return Grams{value: value, valid: true}
}

// Value returns the amount and whether it is available.
func (g Grams) Value() (float64, bool) {
	return g.value, g.valid
}

// Available reports whether g holds an amount.
func (g Grams) Available() bool {
	return g.valid
}

func (g Grams) String() string {
	if !g.valid {
		return NotAvailable
	}
	return FormatAmount(g.value)
}

// MarshalJSON writes a JSON number, or the string "N/A" when unavailable.
func (g Grams) MarshalJSON() ([]byte, error) {
	if !g.valid {
		return json.Marshal(NotAvailable)
	}
	return []byte(FormatAmount(g.value)), nil
}

// UnmarshalJSON reads what MarshalJSON writes.
func (g *Grams) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("json.Unmarshal > %w", err)
	}
	switch v := raw.(type) {
	case float64:
		*g = GramsOf(v)
	case string:
		if v != NotAvailable {
			return fmt.Errorf("invalid grams value %q", v)
		}
		*g = Grams{}
	case nil:
		*g = Grams{}
	default:
		return fmt.Errorf("invalid grams value %s", string(data))
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (g Grams) MarshalYAML() (any, error) {
	if !g.valid {
		return NotAvailable, nil
	}
	return g.value, nil
}

// FormatAmount prints a float with at least one fractional digit, so 240
// prints as "240.0" and 7.5 as "7.5". Very large values use exponent form.
func FormatAmount(v float64) string {
	if math.Abs(v) >= 1e16 {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// round2 rounds half to even on the exact binary value, to 2 decimals.
func round2(v float64) float64 {
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	if err != nil {
		return v
	}
	return rounded
}
