package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollapseWhitespace(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "single line unchanged",
			input:    "Pair near the bridge",
			expected: "Pair near the bridge",
		},
		{
			name:     "newlines and tabs become spaces",
			input:    "Flew low\n\tover the lake.\r\n",
			expected: "Flew low over the lake.",
		},
		{
			name:     "runs of spaces collapse",
			input:    "  two    birds  ",
			expected: "two birds",
		},
		{
			name:     "whitespace only",
			input:    " \n\t ",
			expected: "",
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CollapseWhitespace(tt.input))
		})
	}
}
