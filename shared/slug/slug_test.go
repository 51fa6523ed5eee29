package slug_test

import (
	"testing"

	"aperture/shared/slug"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple title",
			input:    "Hello World",
			expected: "hello-world",
		},
		{
			name:     "punctuation is stripped",
			input:    "My Trip: Paris!!",
			expected: "my-trip-paris",
		},
		{
			name:     "whitespace runs collapse",
			input:    "Shooting   at    dusk",
			expected: "shooting-at-dusk",
		},
		{
			name:     "existing hyphens are kept",
			input:    "Behind-the-scenes",
			expected: "behind-the-scenes",
		},
		{
			name:     "repeated hyphens collapse",
			input:    "one -- two",
			expected: "one-two",
		},
		{
			name:     "leading and trailing separators trim",
			input:    "  - framed -  ",
			expected: "framed",
		},
		{
			name:     "digits survive",
			input:    "35mm at f/1.4",
			expected: "35mm-at-f14",
		},
		{
			name:     "no alphanumerics yields empty",
			input:    "!!! ???",
			expected: "",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, slug.Make(tt.input))
		})
	}
}

func TestMakeIsIdempotent(t *testing.T) {
	inputs := []string{
		"My Trip: Paris!!",
		"Hello World",
		"35mm at f/1.4",
		"one -- two",
	}

	for _, input := range inputs {
		first := slug.Make(input)
		assert.Equal(t, first, slug.Make(first), "slugifying a slug must be a no-op: %q", input)
	}
}

func TestIsValid(t *testing.T) {
	valid := []string{"a", "my-trip-paris", "35mm", "x-1"}
	for _, s := range valid {
		assert.True(t, slug.IsValid(s), "expected %q to be valid", s)
	}

	invalid := []string{"", "-leading", "trailing-", "double--hyphen", "Upper", "with space", "ünicode"}
	for _, s := range invalid {
		assert.False(t, slug.IsValid(s), "expected %q to be invalid", s)
	}
}

func TestMakeProducesValidSlugs(t *testing.T) {
	inputs := []string{"My Trip: Paris!!", "Hello World", "a  b  c", "Rock & Roll Photography"}
	for _, input := range inputs {
		assert.True(t, slug.IsValid(slug.Make(input)), "Make(%q) produced an invalid slug", input)
	}
}
