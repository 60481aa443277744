package advisor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFallbackReply(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "react keyword selects frontend reply",
			input: "I want to learn react",
			want:  frontendFallback,
		},
		{
			name:  "frontend keyword selects frontend reply",
			input: "how do I become a FRONTEND developer?",
			want:  frontendFallback,
		},
		{
			name:  "javascript keyword selects frontend reply",
			input: "is javascript still worth learning",
			want:  frontendFallback,
		},
		{
			name:  "data keyword selects data reply",
			input: "thinking about a data career",
			want:  dataFallback,
		},
		{
			name:  "machine keyword selects data reply",
			input: "machine learning roadmap please",
			want:  dataFallback,
		},
		{
			name:  "unmatched input selects generic starter plan",
			input: "help me figure out what to do next",
			want:  genericFallback,
		},
		{
			name:  "empty input selects generic starter plan",
			input: "",
			want:  genericFallback,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FallbackReply(tt.input))
		})
	}
}

func TestFallbackTitle(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "short input kept verbatim",
			input: "learn react",
			want:  "learn react",
		},
		{
			name:  "long input truncated to five words",
			input: "I want to learn react and become a frontend developer",
			want:  "I want to learn react",
		},
		{
			name:  "extra whitespace collapsed",
			input: "  I   want\tto  learn   react  quickly ",
			want:  "I want to learn react",
		},
		{
			name:  "empty input yields empty title",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FallbackTitle(tt.input)
			assert.Equal(t, tt.want, got)
			if got != "" {
				assert.LessOrEqual(t, len(strings.Fields(got)), 5)
			}
		})
	}
}
