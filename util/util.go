// Package util provides a collection of domain-agnostic utility functions and cross-platform helpers.
package util

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/exp/constraints"
)

// SanitizeKey normalizes a string into a stable, URL-safe identifier.
// Non-alphanumeric runs collapse into a single hyphen; the result is lowercase.
func SanitizeKey(s string) string {
	invalid := regexp.MustCompile(`[^a-zA-Z0-9]+`)
	s = invalid.ReplaceAllString(s, "-")

	trim := regexp.MustCompile(`^-+|-+$`)
	s = trim.ReplaceAllString(s, "")

	return strings.ToLower(s)
}

// Quantify returns a pluralized string representation of a count and its associated labels.
func Quantify(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// FileStem extracts the base filename from a path, excluding all file extensions.
func FileStem(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

// Max returns the maximum value among arguments.
func Max[T constraints.Ordered](items ...T) (max T) {
	if len(items) == 0 {
		return
	}
	max = items[0]
	for _, item := range items[1:] {
		if item > max {
			max = item
		}
	}
	return
}

// Min returns the minimum value among arguments.
func Min[T constraints.Ordered](items ...T) (min T) {
	if len(items) == 0 {
		return
	}
	min = items[0]
	for _, item := range items[1:] {
		if item < min {
			min = item
		}
	}
	return
}
