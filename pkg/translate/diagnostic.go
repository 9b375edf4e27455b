package translate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/leapstack-labs/js2py/pkg/ast"
)

// Severity indicates the importance of a diagnostic.
type Severity int

// Severity levels for diagnostics.
const (
	// SeverityError marks a construct that prevents translation.
	SeverityError Severity = iota
	// SeverityWarning marks a lowering whose Python meaning differs from the input.
	SeverityWarning
)

// String returns the string representation of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "error":
		*s = SeverityError
	case "warning":
		*s = SeverityWarning
	default:
		return fmt.Errorf("unknown severity %q", b)
	}
	return nil
}

// Diagnostic codes.
const (
	CodeUnsupportedConstruct    = "JP01"
	CodeMissingRequiredOperand  = "JP02"
	CodeInvalidAssignmentTarget = "JP03"
	CodeNegationLiteral         = "JP10"
	CodeIdentityComparison      = "JP11"
)

// Diagnostic is a single finding produced by Translator.Check.
type Diagnostic struct {
	Code     string   `json:"code"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	Span     ast.Span `json:"span"`
	Snippet  string   `json:"snippet"`
	Err      error    `json:"-"` // underlying error for SeverityError diagnostics
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s %s: %s", d.Severity, d.Code, d.Message)
}

// HasErrors reports whether any diagnostic has SeverityError.
func HasErrors(diags []Diagnostic) bool {
	for _, d := range diags {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// collector accumulates diagnostics during a Check walk.
type collector struct {
	source string
	diags  []Diagnostic
}

func (c *collector) error(err error) {
	span, _ := ErrorSpan(err)
	code := CodeUnsupportedConstruct
	switch {
	case errors.Is(err, ErrMissingRequiredOperand):
		code = CodeMissingRequiredOperand
	case errors.Is(err, ErrInvalidAssignmentTarget):
		code = CodeInvalidAssignmentTarget
	}
	c.diags = append(c.diags, Diagnostic{
		Code:     code,
		Severity: SeverityError,
		Message:  err.Error(),
		Span:     span,
		Snippet:  span.Slice(c.source),
		Err:      err,
	})
}

func (c *collector) warn(code string, span ast.Span, msg string) {
	c.diags = append(c.diags, Diagnostic{
		Code:     code,
		Severity: SeverityWarning,
		Message:  msg,
		Span:     span,
		Snippet:  span.Slice(c.source),
	})
}
