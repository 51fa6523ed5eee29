// Package markdown renders the small article grammar to sanitized HTML.
//
// The grammar is deliberately tiny: "## " headings, "**bold**", "*italic*",
// "- " list items and blank-line paragraph breaks. Rendering is a line-based
// parse rather than ordered string substitutions, so bold markers can never
// collide with italic markers.
package markdown

import (
	"bytes"
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	reBold   = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reItalic = regexp.MustCompile(`\*([^*]+)\*`)

	policy = bluemonday.UGCPolicy()
)

// Render converts md to sanitized HTML.
func Render(md string) string {
	var buf bytes.Buffer
	render(&buf, md)

	return policy.Sanitize(buf.String())
}

func render(buf *bytes.Buffer, md string) {
	lines := strings.Split(md, "\n")
	inList := false
	inPara := false

	flushList := func() {
		if inList {
			buf.WriteString("</ul>")
			inList = false
		}
	}
	flushPara := func() {
		if inPara {
			buf.WriteString("</p>")
			inPara = false
		}
	}

	for _, raw := range lines {
		line := strings.TrimRight(raw, "\r")

		switch {
		case strings.TrimSpace(line) == "":
			flushList()
			flushPara()
		case strings.HasPrefix(line, "## "):
			flushList()
			flushPara()
			buf.WriteString("<h2>" + inline(line[3:]) + "</h2>")
		case strings.HasPrefix(line, "- "):
			flushPara()

			if !inList {
				buf.WriteString("<ul>")
				inList = true
			}

			buf.WriteString("<li>" + inline(line[2:]) + "</li>")
		default:
			flushList()

			if !inPara {
				buf.WriteString("<p>")
				inPara = true
			} else {
				buf.WriteString("<br/>")
			}

			buf.WriteString(inline(line))
		}
	}

	flushList()
	flushPara()
}

// inline escapes the raw text and then applies the inline markers. Bold is
// parsed before italic; a lone surviving '*' stays literal.
func inline(text string) string {
	escaped := html.EscapeString(text)
	escaped = reBold.ReplaceAllString(escaped, "<strong>$1</strong>")
	escaped = reItalic.ReplaceAllString(escaped, "<em>$1</em>")

	return escaped
}
