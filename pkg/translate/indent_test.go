package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndent(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  string
	}{
		{"single line", "pass", 4, "    pass"},
		{"blank lines are prefixed", "a\n\nb", 2, "  a\n  \n  b"},
		{"empty text", "", 3, "   "},
		{"zero width", "a\nb", 0, "a\nb"},
		{"nested", Indent("b", 4), 4, "        b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Indent(tt.text, tt.width))
		})
	}
}

func TestWithPlaceholder(t *testing.T) {
	assert.Equal(t, Placeholder, withPlaceholder(""))
	assert.Equal(t, "x", withPlaceholder("x"))
	assert.Equal(t, " ", withPlaceholder(" "))
}

func TestOperatorTables(t *testing.T) {
	_, ok := binaryOperator(0)
	assert.False(t, ok)
	_, ok = assignmentOperator(0)
	assert.False(t, ok)
	_, ok = unaryOperator(0)
	assert.False(t, ok)
}
