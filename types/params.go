package types

import (
	"fmt"
	"strconv"

	"github.com/cockroachdb/errors"

	"github.com/spring-cloud/spring-cloud-deployer-sub001/bytesize"
)

// RawParams holds not yet interpreted manifest properties
type RawParams map[string]any

// IsSet .
func (r RawParams) IsSet(key string) bool {
	_, ok := r[key]
	return ok
}

// String .
func (r RawParams) String(key string) string {
	if !r.IsSet(key) {
		return ""
	}
	if str, ok := r[key].(string); ok {
		return str
	}
	return ""
}

// Int64 .
func (r RawParams) Int64(key string) int64 {
	if !r.IsSet(key) {
		return int64(0)
	}
	var str string
	if f, ok := r[key].(float64); ok {
		str = fmt.Sprintf("%.0f", f)
	} else {
		str = fmt.Sprintf("%+v", r[key])
	}
	res, _ := strconv.ParseInt(str, 10, 64)
	return res
}

// Float64 .
func (r RawParams) Float64(key string) float64 {
	if !r.IsSet(key) {
		return float64(0.0)
	}
	res, _ := strconv.ParseFloat(fmt.Sprintf("%+v", r[key]), 64)
	return res
}

// Bool .
func (r RawParams) Bool(key string) bool {
	if !r.IsSet(key) {
		return false
	}
	res, _ := strconv.ParseBool(fmt.Sprintf("%+v", r[key]))
	return res
}

// StringSlice .
func (r RawParams) StringSlice(key string) []string {
	if !r.IsSet(key) {
		return nil
	}
	res, ok := r[key].([]string)
	if !ok {
		if anys, ok := r[key].([]any); ok {
			for _, v := range anys {
				if s, ok := v.(string); ok {
					res = append(res, s)
				}
			}
		}
	}
	return res
}

// SizeInBytes interprets the value under key as a human readable byte
// quantity, an unset key is zero
func (r RawParams) SizeInBytes(key string) (int64, error) {
	return sizeInBytes(fmt.Sprintf("%+v", r[key]))
}

// sizeInBytes turns a human size string into a byte count, the empty
// string is zero and a plain integer is already bytes
func sizeInBytes(size string) (int64, error) {
	if size == "" || size == "<nil>" {
		return 0, nil
	}
	if inBytes, err := strconv.ParseInt(size, 10, 64); err == nil {
		return inBytes, nil
	}
	q, err := bytesize.Parse(size)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	return q.In(bytesize.One), nil
}
