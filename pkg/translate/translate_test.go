package translate_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/js2py/pkg/ast"
	"github.com/leapstack-labs/js2py/pkg/jsparse"
	"github.com/leapstack-labs/js2py/pkg/translate"
)

func build(t *testing.T, tr translate.Translator, src string) string {
	t.Helper()
	p, err := jsparse.Parse(src)
	require.NoError(t, err)
	out, err := tr.Build(p)
	require.NoError(t, err)
	return out
}

func TestBuild_Scenarios(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"if without braces", "if (a) b", "if a:\n    b"},
		{"else if nests", "if (a) b; else if (c) d;", "if a:\n    b\nelse:\n    if c:\n        d"},
		{"empty while", "while (true);", "while True:\n    pass"},
		{"empty function", "function foo() {}", "def foo():\n    pass"},
		{"grouping preserved", "(1 + 2) * 3", "(1 + 2) * 3"},
		{"empty if else", "if (true){}else{};", "if True:\n    pass\nelse:\n    pass"},
		{"while without braces", "while (a) b", "while a:\n    b"},
		{"bare return", "function foo() {return}", "def foo():\n    return"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, build(t, translate.New(), tt.input))
		})
	}
}

func TestBuild_Statements(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "function with params",
			input:    "function add(a, b) { return a + b; }",
			expected: "def add(a, b):\n    return a + b",
		},
		{
			name:  "nested suites",
			input: "function f() { while (x) { if (y) { break; } else { continue; } } }",
			expected: `def f():
    while x:
        if y:
            break
        else:
            continue`,
		},
		{
			name:     "declarations",
			input:    "let a = 1; const b = 'two'; var c = null;",
			expected: "a = 1\nb = 'two'\nc = None",
		},
		{
			name:     "multiple declarators",
			input:    "let a = 1, b = a;",
			expected: "a = 1\nb = a",
		},
		{
			name:     "empty statements leave no lines",
			input:    "a;;;\nb;;",
			expected: "a\nb",
		},
		{
			name:     "trailing whitespace trimmed",
			input:    "a;\n\n\n",
			expected: "a",
		},
		{
			name:     "block inside function",
			input:    "function f() { { x = 1; } }",
			expected: "def f():\n    x = 1",
		},
		{
			name:     "empty nested block gets placeholder",
			input:    "if (a) { {} }",
			expected: "if a:\n    pass",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, build(t, translate.New(), tt.input))
		})
	}
}

func TestBuild_Expressions(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"booleans", "x = [true, false]", "x = [True, False]"},
		{"null", "x = null", "x = None"},
		{"numbers pass through", "x = 0x1f + 1.5e3", "x = 0x1f + 1.5e3"},
		{"strings pass through", `x = "a" + 'b'`, `x = "a" + 'b'`},
		{"logical not", "x = !a", "x = (not a)"},
		{"double not", "x = !!a", "x = (not (not a))"},
		{"unary plus", "x = +a", "x = +a"},
		{"bitwise not", "x = ~a", "x = ~a"},
		{"negation literal", "x = -a", "x = 0a"},
		{"strict equality", "a === b", "a is b"},
		{"strict inequality", "a !== null", "a is not None"},
		{"loose equality", "a == b && c != d", "a == b and c != d"},
		{"comparisons", "a < b || a >= c", "a < b or a >= c"},
		{"arithmetic", "a + b - c * d / e % f", "a + b - c * d / e % f"},
		{"bitwise", "a | b ^ c & d << 1 >> 2", "a | b ^ c & d << 1 >> 2"},
		{"no added parentheses", "a * (b + c)", "a * (b + c)"},
		{"length", "n = xs.length", "n = len(xs)"},
		{"nested length", "n = a.b.length", "n = len(a.b)"},
		{"static member", "a.b.c", "a.b.c"},
		{"computed member", "a[i][0]", "a[i][0]"},
		{"array holes", "x = [1, , 3]", "x = [1, None, 3]"},
		{"leading hole", "x = [, 1]", "x = [None, 1]"},
		{"trailing comma", "x = [1, 2,]", "x = [1, 2]"},
		{"console log", `console.log("hi", x)`, `print("hi", x)`},
		{"other log stays", "logger.log(x)", "logger.log(x)"},
		{"push", "xs.push(1, 2)", "xs.append(1, 2)"},
		{"nested push", "a.b.push(x)", "a.b.append(x)"},
		{"parseFloat", "x = parseFloat(s)", "x = float(s)"},
		{"plain call", "f(a, g(b))", "f(a, g(b))"},
		{"object keys", `o = {a: 1, "b": 2, 3: c}`, `o = {"a": 1, "b": 2, 3: c}`},
		{"empty object", "o = {}", "o = {}"},
		{"shorthand and computed", "o = {a, [k]: v}", `o = {"a": a, k: v}`},
		{"object spread", "o = {...base, x: 1}", `o = {**base, "x": 1}`},
		{"array spread", "x = [...a, 1]", "x = [*a, 1]"},
		{"call spread", "f(...args)", "f(*args)"},
		{"member assignment", "a.b = c", "a.b = c"},
		{"computed assignment", "a[i] = b[j]", "a[i] = b[j]"},
		{"compound assignment", "x += 1", "x += 1"},
		{"exponent assignment", "x **= 2", "x **= 2"},
		{"shift assignment", "x <<= 2", "x <<= 2"},
		{"chained assignment", "a = b = 1", "a = b = 1"},
		{"undefined is a name", "x = undefined", "x = undefined"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, build(t, translate.New(), tt.input))
		})
	}
}

func TestBuild_GroupingPreserved(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"(1 + 2) * 3", "(1 + 2) * 3"},
		{"a * (b + c)", "a * (b + c)"},
		{"a - (b - c)", "a - (b - c)"},
		{"((a + b) * c) - d", "((a + b) * c) - d"},
		{"a / ((b - c) * d)", "a / ((b - c) * d)"},
		{"!(a && b)", "(not (a and b))"},
		{"~(a | b)", "~(a | b)"},
		{"(a || b) && c", "(a or b) and c"},
		{"a && (b || c)", "a and (b or c)"},
		{"x = (a + b) % c", "x = (a + b) % c"},
		{"(a < b) === (c < d)", "(a < b) is (c < d)"},
	}

	ungroup := strings.NewReplacer("(", "", ")", "")
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := build(t, translate.New(), tt.input)
			assert.Equal(t, tt.expected, got)

			// Dropping the grouping must change the result, otherwise the
			// case would not exercise precedence.
			flat := build(t, translate.New(), ungroup.Replace(tt.input))
			assert.NotEqual(t, got, flat)
		})
	}
}

func TestBuild_IndentWidth(t *testing.T) {
	tr := translate.New().WithIndent(2)
	assert.Equal(t, 2, tr.IndentWidth())
	assert.Equal(t, "if a:\n  if b:\n    c", build(t, tr, "if (a) { if (b) c; }"))

	assert.Equal(t, translate.DefaultIndent, translate.New().WithIndent(0).IndentWidth())
}

func TestBuild_EmptyBodyIsPlaceholder(t *testing.T) {
	for _, width := range []int{1, 2, 4, 8} {
		tr := translate.New().WithIndent(width)
		want := strings.Repeat(" ", width) + translate.Placeholder
		for _, src := range []string{"while (x) {}", "function f() {}", "if (x) ;"} {
			out := build(t, tr, src)
			lines := strings.Split(out, "\n")
			require.Len(t, lines, 2, src)
			assert.Equal(t, want, lines[1], src)
		}
	}
}

func TestBuild_Deterministic(t *testing.T) {
	src := "function f(a) { if (a === 1) { return [a, , {k: a.length}]; } }"
	p, err := jsparse.Parse(src)
	require.NoError(t, err)

	tr := translate.New()
	first, err := tr.Build(p)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]string, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			out, err := tr.Build(p)
			assert.NoError(t, err)
			results[i] = out
		}(i)
	}
	wg.Wait()

	for _, out := range results {
		assert.Equal(t, first, out)
	}
}

func TestBuild_NilProgram(t *testing.T) {
	out, err := translate.New().Build(nil)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Nil(t, translate.New().Check(nil))
}

func TestTranslate_HandBuiltTree(t *testing.T) {
	src := "x"
	p := &ast.Program{
		SourceText: src,
		Body: []ast.Statement{
			&ast.ExpressionStatement{
				Loc:        ast.Span{Start: 0, End: 1},
				Expression: &ast.Identifier{Loc: ast.Span{Start: 0, End: 1}, Name: "x"},
			},
			&ast.EmptyStatement{Loc: ast.Span{Start: 1, End: 1}},
		},
	}
	out, err := translate.Translate(p)
	require.NoError(t, err)
	assert.Equal(t, "x", out)
}
