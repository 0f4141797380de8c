package notation

import (
	"fmt"
	"strings"
)

// EndOfInput is the scanned character recorded for steps that flush the
// operator stack after the last character.
const EndOfInput = "END"

// Step is a snapshot of the conversion taken right after one operand append,
// push or pop.
type Step struct {
	ScannedChar string   `json:"scannedChar"`
	Stack       []string `json:"stack"` // bottom first
	Postfix     string   `json:"postfix"`
	Action      string   `json:"action"`
}

// Result is the outcome of Convert.
type Result struct {
	Postfix string `json:"postfix"`
	Steps   []Step `json:"steps"`
}

type conversion struct {
	ops     stack[rune]
	postfix strings.Builder
	steps   []Step
}

func (c *conversion) record(scanned, action string) {
	c.steps = append(c.steps, Step{
		ScannedChar: scanned,
		Stack:       snapshot(c.ops),
		Postfix:     c.postfix.String(),
		Action:      action,
	})
}

// popToPostfix moves the top of the operator stack to the output.
func (c *conversion) popToPostfix() rune {
	op := c.ops.Pop()
	c.postfix.WriteRune(op)
	return op
}

// Convert translates expr to postfix. Whitespace is stripped first.
// Characters that are neither operands, operators nor parentheses are skipped
// without a step; callers are expected to run Validate beforehand.
func Convert(expr string) Result {
	c := &conversion{steps: []Step{}}

	for _, ch := range Clean(expr) {
		scanned := string(ch)

		switch Classify(ch) {
		case Operand:
			c.postfix.WriteRune(ch)
			c.record(scanned, fmt.Sprintf("Operand '%c' added to postfix", ch))

		case OpenParen:
			c.ops.Push(ch)
			c.record(scanned, "Push '(' to stack")

		case CloseParen:
			for c.ops.Len() > 0 && c.ops.Peek() != '(' {
				op := c.popToPostfix()
				c.record(scanned, fmt.Sprintf("Pop '%c' from stack and add to postfix", op))
			}
			// An unmatched ')' on an empty stack records nothing.
			if c.ops.Len() > 0 {
				c.ops.Pop()
				c.record(scanned, "Pop '(' from stack (matched with ')')")
			}

		case Operator:
			for c.ops.Len() > 0 && c.ops.Peek() != '(' && Precedence(c.ops.Peek()) >= Precedence(ch) {
				op := c.popToPostfix()
				c.record(scanned, fmt.Sprintf("Pop '%c' (higher/equal precedence) and add to postfix", op))
			}
			c.ops.Push(ch)
			c.record(scanned, fmt.Sprintf("Push '%c' to stack", ch))
		}
	}

	// A leftover '(' from unvalidated input is flushed like an operator.
	for c.ops.Len() > 0 {
		op := c.popToPostfix()
		c.record(EndOfInput, fmt.Sprintf("Pop '%c' from stack and add to postfix", op))
	}

	return Result{
		Postfix: c.postfix.String(),
		Steps:   c.steps,
	}
}
