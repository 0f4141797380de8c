package notation

import (
	"errors"
	"fmt"
)

// Validation findings. The messages are meant for direct display.
var (
	ErrEmptyExpression       = errors.New("Please enter an expression")
	ErrUnmatchedClosingParen = errors.New("Unmatched closing parenthesis")
	ErrUnmatchedOpeningParen = errors.New("Unmatched opening parenthesis")
)

// InvalidCharError reports the first character that is not an operand,
// operator or parenthesis.
type InvalidCharError struct {
	Char rune
}

func (e *InvalidCharError) Error() string {
	return fmt.Sprintf("Invalid character: '%c'", e.Char)
}

// Validate returns nil when expr can be converted, otherwise the first
// finding in this order: empty input, a ')' without a preceding '(' or an
// invalid character (whichever comes first while scanning), then unclosed
// '('.
func Validate(expr string) error {
	cleaned := Clean(expr)
	if cleaned == "" {
		return ErrEmptyExpression
	}

	open := 0
	for _, ch := range cleaned {
		switch Classify(ch) {
		case OpenParen:
			open++
		case CloseParen:
			open--
			if open < 0 {
				return ErrUnmatchedClosingParen
			}
		case Other:
			return &InvalidCharError{Char: ch}
		}
	}

	if open != 0 {
		return ErrUnmatchedOpeningParen
	}

	return nil
}
