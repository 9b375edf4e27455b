package translate

import "strings"

// Placeholder is the no-op statement emitted for a suite that renders empty.
const Placeholder = "pass"

// Indent prefixes every line of text with width spaces, blank lines included.
func Indent(text string, width int) string {
	if width < 0 {
		width = 0
	}
	pad := strings.Repeat(" ", width)
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = pad + line
	}
	return strings.Join(lines, "\n")
}

func withPlaceholder(text string) string {
	if text == "" {
		return Placeholder
	}
	return text
}
