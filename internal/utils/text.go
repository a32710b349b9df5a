package utils

import (
	"regexp"
	"strings"
)

var multipleSpaces = regexp.MustCompile(`\s+`)

// CollapseWhitespace replaces every run of whitespace (newlines and tabs
// included) with a single space and trims both ends.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(multipleSpaces.ReplaceAllString(s, " "))
}
