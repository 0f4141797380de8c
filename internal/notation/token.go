package notation

import (
	"strings"
	"unicode"
)

// Kind classifies a single character of an expression.
type Kind int

const (
	Other Kind = iota
	Operand
	Operator
	OpenParen
	CloseParen
)

func (k Kind) String() string {
	switch k {
	case Operand:
		return "operand"
	case Operator:
		return "operator"
	case OpenParen:
		return "open-paren"
	case CloseParen:
		return "close-paren"
	default:
		return "other"
	}
}

// precedence ranks the binary operators. All of them are popped on equal
// precedence, which makes every operator left-associative, ^ included.
var precedence = map[rune]int{
	'+': 1,
	'-': 1,
	'*': 2,
	'/': 2,
	'%': 2,
	'^': 3,
}

// Classify returns the kind of r.
func Classify(r rune) Kind {
	switch {
	case IsOperand(r):
		return Operand
	case IsOperator(r):
		return Operator
	case r == '(':
		return OpenParen
	case r == ')':
		return CloseParen
	default:
		return Other
	}
}

// IsOperand reports whether r is an ASCII letter or digit.
func IsOperand(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9')
}

// IsOperator reports whether r is one of + - * / % ^.
func IsOperator(r rune) bool {
	_, ok := precedence[r]
	return ok
}

// Precedence returns the binding strength of op, or 0 if op is not an
// operator.
func Precedence(op rune) int {
	return precedence[op]
}

// Clean removes all whitespace from expr.
func Clean(expr string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, expr)
}
