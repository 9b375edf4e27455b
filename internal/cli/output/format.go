package output

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FormatHeader returns a markdown header; the text is title-cased.
func FormatHeader(level int, text string) string {
	if level < 1 {
		level = 1
	}
	titleCaser := cases.Title(language.English)
	return strings.Repeat("#", level) + " " + titleCaser.String(text)
}

// FormatKeyValue returns a bold markdown key followed by its value.
func FormatKeyValue(key string, value any) string {
	return fmt.Sprintf("**%s:** %v", key, value)
}

// FormatCodeBlock returns a fenced markdown code block.
func FormatCodeBlock(lang, code string) string {
	return "```" + lang + "\n" + strings.TrimRight(code, "\n") + "\n```"
}

// FormatTableRow returns a markdown table row.
func FormatTableRow(cells ...string) string {
	escaped := make([]string, len(cells))
	for i, c := range cells {
		escaped[i] = strings.ReplaceAll(strings.ReplaceAll(c, "|", `\|`), "\n", " ")
	}
	return "| " + strings.Join(escaped, " | ") + " |"
}

// FormatTableSeparator returns the header separator row for n columns.
func FormatTableSeparator(n int) string {
	cells := make([]string, n)
	for i := range cells {
		cells[i] = "---"
	}
	return FormatTableRow(cells...)
}
