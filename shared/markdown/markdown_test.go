package markdown_test

import (
	"testing"

	"aperture/shared/markdown"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "heading",
			input:    "## Shooting the Blue Hour",
			expected: "<h2>Shooting the Blue Hour</h2>",
		},
		{
			name:     "bold",
			input:    "a **bold** statement",
			expected: "<p>a <strong>bold</strong> statement</p>",
		},
		{
			name:     "italic",
			input:    "an *italic* aside",
			expected: "<p>an <em>italic</em> aside</p>",
		},
		{
			name:     "bold and italic in one line",
			input:    "**strong** and *soft*",
			expected: "<p><strong>strong</strong> and <em>soft</em></p>",
		},
		{
			name:     "bold markers do not leak into italic",
			input:    "**only bold**",
			expected: "<p><strong>only bold</strong></p>",
		},
		{
			name:     "list items group into one list",
			input:    "- f/1.4\n- f/2.8\n- f/8",
			expected: "<ul><li>f/1.4</li><li>f/2.8</li><li>f/8</li></ul>",
		},
		{
			name:     "paragraph break on blank line",
			input:    "first\n\nsecond",
			expected: "<p>first</p><p>second</p>",
		},
		{
			name:     "single newline becomes line break",
			input:    "first\nsecond",
			expected: "<p>first<br/>second</p>",
		},
		{
			name:     "list terminates paragraph",
			input:    "intro\n- one\n- two\noutro",
			expected: "<p>intro</p><ul><li>one</li><li>two</li></ul><p>outro</p>",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, markdown.Render(tt.input))
		})
	}
}

func TestRenderEscapesHTML(t *testing.T) {
	out := markdown.Render(`<script>alert("x")</script>`)

	assert.NotContains(t, out, "<script>")
}

func TestRenderIsDeterministic(t *testing.T) {
	input := "## Title\n\nbody with **bold** and *italic*\n- item"

	assert.Equal(t, markdown.Render(input), markdown.Render(input))
}
