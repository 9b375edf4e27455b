package ast

// UnaryOperator is a prefix operator.
type UnaryOperator int

// UnaryOperator constants.
const (
	UnaryNot UnaryOperator = iota + 1
	UnaryPlus
	UnaryMinus
	UnaryBitNot
	UnaryTypeof
	UnaryVoid
	UnaryDelete
)

var unaryOps = map[UnaryOperator]string{
	UnaryNot:    "!",
	UnaryPlus:   "+",
	UnaryMinus:  "-",
	UnaryBitNot: "~",
	UnaryTypeof: "typeof",
	UnaryVoid:   "void",
	UnaryDelete: "delete",
}

func (op UnaryOperator) String() string {
	if s, ok := unaryOps[op]; ok {
		return s
	}
	return "?"
}

// ParseUnaryOperator maps JavaScript spelling to a UnaryOperator.
func ParseUnaryOperator(s string) (UnaryOperator, bool) {
	for op, spelling := range unaryOps {
		if spelling == s {
			return op, true
		}
	}
	return 0, false
}

// BinaryOperator is an infix non-logical operator.
type BinaryOperator int

// BinaryOperator constants.
const (
	BinaryEqual BinaryOperator = iota + 1
	BinaryNotEqual
	BinaryStrictEqual
	BinaryStrictNotEqual
	BinaryLess
	BinaryLessEqual
	BinaryGreater
	BinaryGreaterEqual
	BinaryAdd
	BinarySub
	BinaryMul
	BinaryDiv
	BinaryMod
	BinaryExp
	BinaryBitOr
	BinaryBitXor
	BinaryBitAnd
	BinaryShiftLeft
	BinaryShiftRight
	BinaryShiftRightUnsigned
	BinaryIn
	BinaryInstanceof
)

var binaryOps = map[BinaryOperator]string{
	BinaryEqual:              "==",
	BinaryNotEqual:           "!=",
	BinaryStrictEqual:        "===",
	BinaryStrictNotEqual:     "!==",
	BinaryLess:               "<",
	BinaryLessEqual:          "<=",
	BinaryGreater:            ">",
	BinaryGreaterEqual:       ">=",
	BinaryAdd:                "+",
	BinarySub:                "-",
	BinaryMul:                "*",
	BinaryDiv:                "/",
	BinaryMod:                "%",
	BinaryExp:                "**",
	BinaryBitOr:              "|",
	BinaryBitXor:             "^",
	BinaryBitAnd:             "&",
	BinaryShiftLeft:          "<<",
	BinaryShiftRight:         ">>",
	BinaryShiftRightUnsigned: ">>>",
	BinaryIn:                 "in",
	BinaryInstanceof:         "instanceof",
}

func (op BinaryOperator) String() string {
	if s, ok := binaryOps[op]; ok {
		return s
	}
	return "?"
}

// ParseBinaryOperator maps JavaScript spelling to a BinaryOperator.
func ParseBinaryOperator(s string) (BinaryOperator, bool) {
	for op, spelling := range binaryOps {
		if spelling == s {
			return op, true
		}
	}
	return 0, false
}

// LogicalOperator is &&, || or ??.
type LogicalOperator int

// LogicalOperator constants.
const (
	LogicalAnd LogicalOperator = iota + 1
	LogicalOr
	LogicalCoalesce
)

func (op LogicalOperator) String() string {
	switch op {
	case LogicalAnd:
		return "&&"
	case LogicalOr:
		return "||"
	case LogicalCoalesce:
		return "??"
	default:
		return "?"
	}
}

// ParseLogicalOperator maps JavaScript spelling to a LogicalOperator.
func ParseLogicalOperator(s string) (LogicalOperator, bool) {
	switch s {
	case "&&":
		return LogicalAnd, true
	case "||":
		return LogicalOr, true
	case "??":
		return LogicalCoalesce, true
	default:
		return 0, false
	}
}

// AssignmentOperator is `=` or a compound assignment.
type AssignmentOperator int

// AssignmentOperator constants.
const (
	Assign AssignmentOperator = iota + 1
	AssignAdd
	AssignSub
	AssignMul
	AssignDiv
	AssignMod
	AssignExp
	AssignShiftLeft
	AssignShiftRight
	AssignShiftRightUnsigned
	AssignBitOr
	AssignBitXor
	AssignBitAnd
	AssignAnd
	AssignOr
	AssignCoalesce
)

var assignOps = map[AssignmentOperator]string{
	Assign:                   "=",
	AssignAdd:                "+=",
	AssignSub:                "-=",
	AssignMul:                "*=",
	AssignDiv:                "/=",
	AssignMod:                "%=",
	AssignExp:                "**=",
	AssignShiftLeft:          "<<=",
	AssignShiftRight:         ">>=",
	AssignShiftRightUnsigned: ">>>=",
	AssignBitOr:              "|=",
	AssignBitXor:             "^=",
	AssignBitAnd:             "&=",
	AssignAnd:                "&&=",
	AssignOr:                 "||=",
	AssignCoalesce:           "??=",
}

func (op AssignmentOperator) String() string {
	if s, ok := assignOps[op]; ok {
		return s
	}
	return "?"
}

// ParseAssignmentOperator maps JavaScript spelling to an AssignmentOperator.
func ParseAssignmentOperator(s string) (AssignmentOperator, bool) {
	for op, spelling := range assignOps {
		if spelling == s {
			return op, true
		}
	}
	return 0, false
}
