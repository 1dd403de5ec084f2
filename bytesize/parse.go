package bytesize

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// parse errors
var (
	ErrMalformedSize = errors.New("malformed size")
	ErrUnknownUnit   = errors.New("unknown size unit")
)

// ParseOptions controls how a size string is interpreted.
// The zero value is the default behaviour.
type ParseOptions struct {
	// CaseSensitive restricts the unit token to its canonical SI
	// spelling: "k" lowercase, "M" "G" "T" "P" uppercase, "Ki" "Mi"
	// "Gi" "Ti" "Pi" for the binary family. The trailing "b"/"B" is
	// decorative and matched case-free either way.
	CaseSensitive bool
	// DecimalAmbiguous resolves suffixes without the "i" marker
	// ("kb", "MB") to the 1000-based family. Left false they resolve
	// to the 1024-based family, which is what most tooling means by
	// "1MB" of memory.
	DecimalAmbiguous bool
}

// ByteQuantity is a size normalized to a raw byte count. Parsing never
// produces a negative quantity, construction does not forbid one.
type ByteQuantity int64

// Parse converts a human readable size such as "1234", "1234kB" or
// "1234GiB" into a ByteQuantity using default options.
func Parse(input string) (ByteQuantity, error) {
	return ParseWithOptions(input, ParseOptions{})
}

// ParseWithOptions converts a human readable size into a ByteQuantity.
// The whole input must match `digits [unit-token]`, no sign, no decimal
// point, no surrounding whitespace. A shape mismatch or an overflowing
// magnitude returns ErrMalformedSize, an alphabetic suffix outside the
// unit table returns ErrUnknownUnit.
func ParseWithOptions(input string, opts ParseOptions) (ByteQuantity, error) {
	i := 0
	for i < len(input) && input[i] >= '0' && input[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, errors.Wrapf(ErrMalformedSize, "size %q", input)
	}

	count, err := strconv.ParseUint(input[:i], 10, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrMalformedSize, "size %q", input)
	}

	unit, err := resolveUnit(input[i:], opts)
	if err != nil {
		return 0, errors.Wrapf(err, "size %q", input)
	}

	multiplier := uint64(unit.Multiplier())
	if count > math.MaxInt64/multiplier {
		return 0, errors.Wrapf(ErrMalformedSize, "size %q overflows", input)
	}
	return ByteQuantity(count * multiplier), nil
}

// MustParse converts a size string or panics, for tests and literals.
func MustParse(input string) ByteQuantity {
	q, err := Parse(input)
	if err != nil {
		panic(fmt.Errorf("invalid size: %s", input))
	}
	return q
}

// resolveUnit maps the unit token following the digits to a table
// entry. The empty token means the count is already in bytes.
func resolveUnit(token string, opts ParseOptions) (Unit, error) {
	if token == "" {
		return One, nil
	}
	if !isAlpha(token) {
		return One, ErrMalformedSize
	}

	rest := token
	// trailing b/B carries no meaning, strip it case-free always
	if last := rest[len(rest)-1]; last == 'b' || last == 'B' {
		rest = rest[:len(rest)-1]
	}
	if rest == "" {
		return One, nil
	}

	binary := false
	if last := rest[len(rest)-1]; last == 'i' || (!opts.CaseSensitive && last == 'I') {
		binary = true
		rest = rest[:len(rest)-1]
	}
	if len(rest) != 1 {
		return One, ErrUnknownUnit
	}

	rank, err := rankOf(rest[0], binary, opts.CaseSensitive)
	if err != nil {
		return One, err
	}
	if !binary && !opts.DecimalAmbiguous {
		// "kb" style token with no "i" marker is ambiguous, the
		// default reading is binary
		binary = true
	}
	return unitAt(rank, binary), nil
}

func rankOf(letter byte, marked, caseSensitive bool) (int, error) {
	lower := letter | 0x20
	rank := strings.IndexByte("\x00kmgtp", lower)
	if rank <= 0 {
		return 0, ErrUnknownUnit
	}
	if !caseSensitive {
		return rank, nil
	}
	// canonical spelling: lowercase k stands alone, every marked
	// letter and the remaining bare letters are uppercase
	want := lower &^ 0x20
	if !marked && lower == 'k' {
		want = 'k'
	}
	if letter != want {
		return 0, ErrMalformedSize
	}
	return rank, nil
}

func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i] | 0x20
		if c < 'a' || c > 'z' {
			return false
		}
	}
	return true
}

// ParseUnit matches a unit name against the canonical suffixes, case
// insensitively, accepting both families ("KiB", "kB", "mib", "B").
func ParseUnit(name string) (Unit, error) {
	for u := One; u <= Peta; u++ {
		if strings.EqualFold(name, u.Suffix()) {
			return u, nil
		}
	}
	return One, errors.Wrapf(ErrUnknownUnit, "unit %q", name)
}
