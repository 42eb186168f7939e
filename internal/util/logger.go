// Package util provides small shared helpers.
package util

import (
	"log"
)

// Log logs a message if verbose is true.
func Log(verbose bool, format string, args ...any) {
	if verbose {
		log.Printf(format, args...)
	}
}
