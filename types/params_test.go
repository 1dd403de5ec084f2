package types

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/docker/go-units"
	"github.com/stretchr/testify/assert"

	"github.com/spring-cloud/spring-cloud-deployer-sub001/bytesize"
)

func TestRawParams(t *testing.T) {
	assert := assert.New(t)

	params := RawParams{
		"str":      "value",
		"int":      int64(42),
		"float":    1.5,
		"floatint": float64(7),
		"bool":     "true",
		"slice":    []string{"a", "b"},
		"anyslice": []any{"c", "d"},
	}

	assert.True(params.IsSet("str"))
	assert.False(params.IsSet("missing"))
	assert.Equal("value", params.String("str"))
	assert.Equal("", params.String("int"))
	assert.Equal("", params.String("missing"))
	assert.EqualValues(42, params.Int64("int"))
	assert.EqualValues(7, params.Int64("floatint"))
	assert.EqualValues(0, params.Int64("missing"))
	assert.Equal(1.5, params.Float64("float"))
	assert.Equal(0.0, params.Float64("missing"))
	assert.True(params.Bool("bool"))
	assert.False(params.Bool("missing"))
	assert.Equal([]string{"a", "b"}, params.StringSlice("slice"))
	assert.Equal([]string{"c", "d"}, params.StringSlice("anyslice"))
	assert.Nil(params.StringSlice("missing"))
}

func TestRawParamsSizeInBytes(t *testing.T) {
	assert := assert.New(t)

	params := RawParams{
		"memory":  "128MiB",
		"disk":    "10GB",
		"raw":     "1048576",
		"rawint":  int64(2048),
		"garbage": "a lot",
	}

	size, err := params.SizeInBytes("memory")
	assert.NoError(err)
	assert.EqualValues(128*units.MiB, size)

	size, err = params.SizeInBytes("disk")
	assert.NoError(err)
	assert.EqualValues(10*units.GiB, size)

	size, err = params.SizeInBytes("raw")
	assert.NoError(err)
	assert.EqualValues(units.MiB, size)

	size, err = params.SizeInBytes("rawint")
	assert.NoError(err)
	assert.EqualValues(2048, size)

	size, err = params.SizeInBytes("missing")
	assert.NoError(err)
	assert.EqualValues(0, size)

	_, err = params.SizeInBytes("garbage")
	assert.True(errors.Is(err, bytesize.ErrMalformedSize))
}
