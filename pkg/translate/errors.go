package translate

import (
	"errors"
	"fmt"

	"github.com/leapstack-labs/js2py/pkg/ast"
)

// Sentinel errors for errors.Is.
var (
	ErrUnsupportedConstruct    = errors.New("unsupported construct")
	ErrMissingRequiredOperand  = errors.New("missing required operand")
	ErrInvalidAssignmentTarget = errors.New("invalid assignment target")
)

// UnsupportedConstructError reports a node or operator with no Python lowering.
type UnsupportedConstructError struct {
	Kind   string   // node kind or operator description, e.g. "binary operator **"
	Source string   // exact source slice of the offending node
	Span   ast.Span // location of the offending node
}

func (e *UnsupportedConstructError) Error() string {
	return fmt.Sprintf("unsupported %s: %q", e.Kind, e.Source)
}

// Unwrap returns ErrUnsupportedConstruct.
func (e *UnsupportedConstructError) Unwrap() error { return ErrUnsupportedConstruct }

// MissingRequiredOperandError reports a node lacking a part the output needs,
// such as a function name or a variable initializer.
type MissingRequiredOperandError struct {
	Context string
	Span    ast.Span
}

func (e *MissingRequiredOperandError) Error() string {
	return fmt.Sprintf("missing required operand: %s", e.Context)
}

// Unwrap returns ErrMissingRequiredOperand.
func (e *MissingRequiredOperandError) Unwrap() error { return ErrMissingRequiredOperand }

// InvalidAssignmentTargetError reports an assignment whose left side is not an
// identifier or member expression.
type InvalidAssignmentTargetError struct {
	Kind string
	Span ast.Span
}

func (e *InvalidAssignmentTargetError) Error() string {
	return fmt.Sprintf("invalid assignment target: %s", e.Kind)
}

// Unwrap returns ErrInvalidAssignmentTarget.
func (e *InvalidAssignmentTargetError) Unwrap() error { return ErrInvalidAssignmentTarget }

// ErrorSpan extracts the source span from a translation error.
func ErrorSpan(err error) (ast.Span, bool) {
	var (
		unsupported *UnsupportedConstructError
		missing     *MissingRequiredOperandError
		target      *InvalidAssignmentTargetError
	)
	switch {
	case errors.As(err, &unsupported):
		return unsupported.Span, true
	case errors.As(err, &missing):
		return missing.Span, true
	case errors.As(err, &target):
		return target.Span, true
	default:
		return ast.Span{}, false
	}
}
