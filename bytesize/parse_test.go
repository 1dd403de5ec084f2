package bytesize

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/docker/go-units"
	"github.com/stretchr/testify/assert"
)

func TestParsePlainDigits(t *testing.T) {
	q, err := Parse("1234")
	assert.Nil(t, err)
	assert.EqualValues(t, 1234, q.In(One))

	q, err = Parse("0")
	assert.Nil(t, err)
	assert.EqualValues(t, 0, q)

	q, err = Parse("1234B")
	assert.Nil(t, err)
	assert.EqualValues(t, 1234, q)

	q, err = Parse("1234b")
	assert.Nil(t, err)
	assert.EqualValues(t, 1234, q)
}

func TestParseAmbiguousSuffixDefaultsBinary(t *testing.T) {
	q, err := Parse("1234kB")
	assert.Nil(t, err)
	assert.EqualValues(t, 1234*units.KiB, q.In(One))

	q, err = Parse("1234mb")
	assert.Nil(t, err)
	assert.EqualValues(t, 1234*units.MiB, q.In(One))
	assert.EqualValues(t, 1234*units.KiB, q.In(Kibi))

	q, err = Parse("1G")
	assert.Nil(t, err)
	assert.EqualValues(t, units.GiB, q.In(One))

	q, err = Parse("1T")
	assert.Nil(t, err)
	assert.EqualValues(t, units.TiB, q.In(One))

	q, err = Parse("1p")
	assert.Nil(t, err)
	assert.EqualValues(t, units.PiB, q.In(One))
}

func TestParseAmbiguousSuffixDecimal(t *testing.T) {
	opts := ParseOptions{DecimalAmbiguous: true}

	q, err := ParseWithOptions("1234mb", opts)
	assert.Nil(t, err)
	assert.EqualValues(t, 1234*1000*1000, q.In(One))

	q, err = ParseWithOptions("1234kB", opts)
	assert.Nil(t, err)
	assert.EqualValues(t, 1234*units.KB, q.In(One))

	// the "i" marker is never ambiguous
	q, err = ParseWithOptions("1234KiB", opts)
	assert.Nil(t, err)
	assert.EqualValues(t, 1234*units.KiB, q.In(One))
}

func TestParseBinaryMarker(t *testing.T) {
	q, err := Parse("1234GiB")
	assert.Nil(t, err)
	assert.EqualValues(t, 1234*units.GiB, q.In(One))

	q, err = Parse("1234Mi")
	assert.Nil(t, err)
	assert.EqualValues(t, 1234*units.MiB, q.In(One))

	q, err = Parse("1234kib")
	assert.Nil(t, err)
	assert.EqualValues(t, 1234*units.KiB, q.In(One))
}

func TestParseMalformed(t *testing.T) {
	for _, input := range []string{
		"", "wat?1234", "-1234", "+1234", "12.34kB", " 1234", "1234 ", "1234 kB", "kB",
	} {
		_, err := Parse(input)
		assert.True(t, errors.Is(err, ErrMalformedSize), input)
	}
}

func TestParseUnknownUnit(t *testing.T) {
	for _, input := range []string{"1234u", "1234xB", "1234foo", "1234iB"} {
		_, err := Parse(input)
		assert.True(t, errors.Is(err, ErrUnknownUnit), input)
	}
}

func TestParseCaseSensitive(t *testing.T) {
	opts := ParseOptions{CaseSensitive: true}

	_, err := ParseWithOptions("1234mb", opts)
	assert.True(t, errors.Is(err, ErrMalformedSize))

	_, err = ParseWithOptions("1234KB", opts)
	assert.True(t, errors.Is(err, ErrMalformedSize))

	_, err = ParseWithOptions("1234kiB", opts)
	assert.True(t, errors.Is(err, ErrMalformedSize))

	q, err := ParseWithOptions("1234kB", opts)
	assert.Nil(t, err)
	assert.EqualValues(t, 1234*units.KiB, q.In(One))

	q, err = ParseWithOptions("1234MB", opts)
	assert.Nil(t, err)
	assert.EqualValues(t, 1234*units.MiB, q.In(One))

	q, err = ParseWithOptions("1234GiB", opts)
	assert.Nil(t, err)
	assert.EqualValues(t, 1234*units.GiB, q.In(One))

	// unknown letters still report as unknown, not as a shape error
	_, err = ParseWithOptions("1234u", opts)
	assert.True(t, errors.Is(err, ErrUnknownUnit))
}

func TestParseOverflow(t *testing.T) {
	q, err := Parse("9223372036854775807")
	assert.Nil(t, err)
	assert.EqualValues(t, int64(math.MaxInt64), q)

	_, err = Parse("9223372036854775808")
	assert.True(t, errors.Is(err, ErrMalformedSize))

	// fits in uint64 but not after the multiplier
	_, err = Parse("9007199254740992GiB")
	assert.True(t, errors.Is(err, ErrMalformedSize))

	_, err = Parse("18446744073709551616")
	assert.True(t, errors.Is(err, ErrMalformedSize))
}

func TestMustParse(t *testing.T) {
	assert.EqualValues(t, units.MiB, MustParse("1MiB"))
	assert.Panics(t, func() { MustParse("wat") })
}

func TestParseUnit(t *testing.T) {
	u, err := ParseUnit("GiB")
	assert.Nil(t, err)
	assert.Equal(t, Gibi, u)

	u, err = ParseUnit("kb")
	assert.Nil(t, err)
	assert.Equal(t, Kilo, u)

	u, err = ParseUnit("B")
	assert.Nil(t, err)
	assert.Equal(t, One, u)

	_, err = ParseUnit("flops")
	assert.True(t, errors.Is(err, ErrUnknownUnit))
}
