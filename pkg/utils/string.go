// Package utils provides common utility functions.
package utils

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// StringHelper provides string utility functions.
type StringHelper struct{}

// NewStringHelper creates a new string helper.
func NewStringHelper() *StringHelper {
	return &StringHelper{}
}

// TrimWhitespace removes leading and trailing whitespace.
func (s *StringHelper) TrimWhitespace(str string) string {
	return strings.TrimSpace(str)
}

// NormalizeWhitespace replaces multiple whitespace with single space.
func (s *StringHelper) NormalizeWhitespace(str string) string {
	return strings.Join(strings.Fields(str), " ")
}

// TruncateDisplay truncates a string to the given display width,
// appending "..." when anything was cut. Width is measured in
// terminal columns, so wide (CJK) runes count double.
func (s *StringHelper) TruncateDisplay(str string, maxWidth int) string {
	if runewidth.StringWidth(str) <= maxWidth {
		return str
	}

	return runewidth.Truncate(str, maxWidth, "...")
}

// PadDisplay pads a string with spaces to the given display width.
// Strings already at or past the width are returned unchanged.
func (s *StringHelper) PadDisplay(str string, width int) string {
	padding := width - runewidth.StringWidth(str)
	if padding <= 0 {
		return str
	}

	return str + strings.Repeat(" ", padding)
}
