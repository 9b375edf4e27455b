package translate

import "github.com/leapstack-labs/js2py/pkg/ast"

var binaryOperators = map[ast.BinaryOperator]string{
	ast.BinaryStrictEqual:    "is",
	ast.BinaryStrictNotEqual: "is not",
	ast.BinaryEqual:          "==",
	ast.BinaryNotEqual:       "!=",
	ast.BinaryLess:           "<",
	ast.BinaryGreater:        ">",
	ast.BinaryLessEqual:      "<=",
	ast.BinaryGreaterEqual:   ">=",
	ast.BinaryAdd:            "+",
	ast.BinarySub:            "-",
	ast.BinaryMul:            "*",
	ast.BinaryDiv:            "/",
	ast.BinaryMod:            "%",
	ast.BinaryBitOr:          "|",
	ast.BinaryBitXor:         "^",
	ast.BinaryBitAnd:         "&",
	ast.BinaryShiftLeft:      "<<",
	ast.BinaryShiftRight:     ">>",
}

// binaryOperator maps a JavaScript binary operator to its Python spelling.
func binaryOperator(op ast.BinaryOperator) (string, bool) {
	s, ok := binaryOperators[op]
	return s, ok
}

// logicalOperator maps && and ||; ?? has no single-expression equivalent.
func logicalOperator(op ast.LogicalOperator) (string, bool) {
	switch op {
	case ast.LogicalOr:
		return "or", true
	case ast.LogicalAnd:
		return "and", true
	default:
		return "", false
	}
}

// unaryOperator returns the Python prefix for op.
// Negation maps to the digit "0", so -x renders as 0x.
func unaryOperator(op ast.UnaryOperator) (string, bool) {
	switch op {
	case ast.UnaryNot:
		return "not ", true
	case ast.UnaryPlus:
		return "+", true
	case ast.UnaryMinus:
		return "0", true
	case ast.UnaryBitNot:
		return "~", true
	default:
		return "", false
	}
}

// assignmentOperator passes compound operators through, except the logical
// forms and >>>= which need a temporary in Python.
func assignmentOperator(op ast.AssignmentOperator) (string, bool) {
	switch op {
	case ast.AssignAnd, ast.AssignOr, ast.AssignCoalesce, ast.AssignShiftRightUnsigned:
		return "", false
	}
	s := op.String()
	if s == "?" {
		return "", false
	}
	return s, true
}
