package ingredient

import "fmt"

// ConversionResult holds the gram conversion of one ingredient text.
type ConversionResult struct {
	// ConvertedValues has one "amount unit = Xg" line per match, in the order
	// the phrases appear in the text. Never nil.
	ConvertedValues []string
	// TotalGrams is unavailable when nothing converted to a positive total.
	TotalGrams Grams
}

// Convert finds every volume phrase in text and converts it to grams.
//
// Each term is rounded to 2 decimals before being added to the total, and
// the total is rounded again at the end.
func Convert(text string) ConversionResult {
	result := ConversionResult{
		ConvertedValues: []string{},
	}

	var total float64
	for m := range Scan(text) {
		grams := round2(m.Value * densities[m.Unit])
		total += grams
		result.ConvertedValues = append(result.ConvertedValues,
			fmt.Sprintf("%s %s = %sg", m.Amount, m.Unit, FormatAmount(grams)),
		)
	}

	if total > 0 {
		result.TotalGrams = GramsOf(round2(total))
	}
	return result
}

// ConvertAny converts values of any type by printing them first. nil is
// treated as empty text.
func ConvertAny(v any) ConversionResult {
	switch text := v.(type) {
	case nil:
		return Convert("")
	case string:
		return Convert(text)
	default:
		return Convert(fmt.Sprint(text))
	}
}
