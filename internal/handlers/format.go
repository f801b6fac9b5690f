package handlers

import (
	"bytes"
	"html"
	"html/template"
	"log/slog"
	"strings"

	"github.com/yuin/goldmark"
)

var markdown = goldmark.New()

// FormatAnswer renders an answer line by line: a line wrapped in ** becomes a
// heading, a line starting with "- " becomes a list item and any other
// non-blank line becomes a paragraph. Text is escaped.
func FormatAnswer(text string) template.HTML {
	var b strings.Builder
	for _, line := range strings.Split(text, "\n") {
		switch {
		case len(line) >= 4 && strings.HasPrefix(line, "**") && strings.HasSuffix(line, "**"):
			b.WriteString("<h4>" + html.EscapeString(strings.ReplaceAll(line, "**", "")) + "</h4>\n")
		case strings.HasPrefix(line, "- "):
			b.WriteString("<li>" + html.EscapeString(line[2:]) + "</li>\n")
		case strings.TrimSpace(line) != "":
			b.WriteString("<p>" + html.EscapeString(line) + "</p>\n")
		}
	}
	return template.HTML(b.String())
}

// RenderMarkdown converts Markdown to HTML. Raw HTML in the source is
// omitted. On failure the escaped source is returned inside a pre block.
func RenderMarkdown(source string) template.HTML {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(source), &buf); err != nil {
		slog.Error("failed to render markdown", "error", err)
		return template.HTML("<pre>" + html.EscapeString(source) + "</pre>")
	}
	return template.HTML(buf.String())
}
