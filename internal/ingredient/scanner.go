package ingredient

import (
	"iter"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Match is one "<number><space><unit>" phrase found in ingredient text.
type Match struct {
	// Amount is the number exactly as written, e.g. "1.5".
	Amount string
	Value  float64
	Unit   Unit
	// Start and End are byte offsets into the lower-cased text.
	Start int
	End   int
}

// Scan lazily yields the quantity phrases in text from left to right.
// Matches never overlap. A number that is not followed by a known unit, or a
// unit without a number in front of it, is skipped.
func Scan(text string) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		s := strings.ToLower(text)
		for i := 0; i < len(s); {
			m, ok := matchAt(s, i)
			if !ok {
				i++
				continue
			}
			if !yield(m) {
				return
			}
			i = m.End
		}
	}
}

// matchAt tries to match a phrase starting exactly at offset i. The decimal
// form of the number is tried before the integer form.
func matchAt(s string, i int) (Match, bool) {
	if !isDigit(s[i]) {
		return Match{}, false
	}
	intEnd := skipDigits(s, i)

	candidates := []int{intEnd}
	if intEnd+1 < len(s) && s[intEnd] == '.' && isDigit(s[intEnd+1]) {
		candidates = []int{skipDigits(s, intEnd+1), intEnd}
	}

	for _, numEnd := range candidates {
		unitStart := skipSpaces(s, numEnd)
		unit, ok := unitAt(s, unitStart)
		if !ok {
			continue
		}
		amount := s[i:numEnd]
		value, err := strconv.ParseFloat(amount, 64)
		if err != nil {
			continue
		}
		return Match{
			Amount: amount,
			Value:  value,
			Unit:   unit,
			Start:  i,
			End:    unitStart + len(unit),
		}, true
	}
	return Match{}, false
}

func unitAt(s string, i int) (Unit, bool) {
	for _, unit := range unitOrder {
		if strings.HasPrefix(s[i:], string(unit)) {
			return unit, true
		}
	}
	return "", false
}

func skipDigits(s string, i int) int {
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	return i
}

func skipSpaces(s string, i int) int {
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !unicode.IsSpace(r) {
			break
		}
		i += size
	}
	return i
}

func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}
