package bytesize

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// In converts the quantity to the given unit by integer division,
// truncating toward zero.
func (q ByteQuantity) In(u Unit) int64 {
	return int64(q) / u.Multiplier()
}

// Format renders the quantity at the given unit through a decimal
// pattern such as "#", "0.00" or "#.######". The quotient is real
// valued, rounded half-up at the pattern's last fraction digit. When
// withSuffix is true the unit's canonical suffix is appended. An
// invalid pattern is a programming error and panics.
func (q ByteQuantity) Format(pattern string, u Unit, withSuffix bool) string {
	minFrac, maxFrac := fracDigits(pattern)
	value := roundHalfUp(float64(q)/float64(u.Multiplier()), maxFrac)

	out := strconv.FormatFloat(value, 'f', maxFrac, 64)
	if maxFrac > minFrac {
		out = strings.TrimRight(out, "0")
		if dot := strings.IndexByte(out, '.'); dot >= 0 {
			if keep := dot + 1 + minFrac; len(out) < keep {
				out += strings.Repeat("0", keep-len(out))
			}
			if minFrac == 0 {
				out = strings.TrimSuffix(out, ".")
			}
		}
	}
	if withSuffix {
		out += u.Suffix()
	}
	return out
}

// FormatAt is the quick human display form: integer pattern, suffix
// always appended.
func (q ByteQuantity) FormatAt(u Unit) string {
	return q.Format("#", u, true)
}

func (q ByteQuantity) String() string {
	return q.FormatAt(One)
}

// half-up, away from zero on ties, the DecimalFormat convention
func roundHalfUp(v float64, digits int) float64 {
	scale := math.Pow(10, float64(digits))
	if v < 0 {
		return math.Ceil(v*scale-0.5) / scale
	}
	return math.Floor(v*scale+0.5) / scale
}

// fracDigits reads the fraction part of a decimal pattern: "0" digits
// are fixed, "#" digits optional, "#" alone means a bare integer.
func fracDigits(pattern string) (minFrac, maxFrac int) {
	intPart, fracPart, hasDot := strings.Cut(pattern, ".")
	if intPart == "" || strings.Trim(intPart, "#0,") != "" {
		panic(fmt.Sprintf("invalid decimal pattern %q", pattern))
	}
	if !hasDot {
		return 0, 0
	}
	i := 0
	for i < len(fracPart) && fracPart[i] == '0' {
		i++
	}
	minFrac = i
	for i < len(fracPart) && fracPart[i] == '#' {
		i++
	}
	maxFrac = i
	if fracPart == "" || i != len(fracPart) {
		panic(fmt.Sprintf("invalid decimal pattern %q", pattern))
	}
	return minFrac, maxFrac
}
