package utils

import (
	"strconv"
	"strings"

	"github.com/spring-cloud/spring-cloud-deployer-sub001/bytesize"
)

// ParseSizeInHuman returns int value in bytes of a human readable string
// e.g. 100KB -> 102400
func ParseSizeInHuman(size string) (int64, error) {
	if size == "" {
		return 0, nil
	}
	sizeInBytes, err := strconv.ParseInt(size, 10, 64)
	if err == nil {
		return sizeInBytes, nil
	}

	flag := int64(1)
	if strings.HasPrefix(size, "-") {
		flag = int64(-1)
		size = strings.TrimLeft(size, "-")
	}
	q, err := bytesize.Parse(size)
	if err != nil {
		return 0, err
	}
	return q.In(bytesize.One) * flag, nil
}
