// Package env reads process environment variables that live outside the
// RESTO_-prefixed config surface, such as LOG_FORMAT.
package env

import (
	"os"
	"strings"
)

// Get returns the trimmed value of the variable, or fallback when the
// variable is unset or blank.
func Get(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}
