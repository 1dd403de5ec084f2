package utils

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const shortenLength = 8

// TruncateID truncate long idents for display
func TruncateID(id string) string {
	if len(id) > shortenLength {
		return id[:shortenLength]
	}
	return id
}

// NewDeployIdent idents one deploy of an app, unique per call
func NewDeployIdent(appname string) string {
	return fmt.Sprintf("%s-%s", appname, TruncateID(strings.ReplaceAll(uuid.NewString(), "-", "")))
}
