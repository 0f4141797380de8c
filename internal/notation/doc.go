// Package notation converts infix arithmetic expressions to postfix (Reverse
// Polish Notation) with the shunting-yard algorithm and records a trace of
// every stack operation performed along the way.
//
// Expressions are made of single-character operands (ASCII letters and
// digits), the binary operators + - * / % ^ and parentheses. Whitespace is
// ignored. Validate reports the first problem with an expression; Convert
// assumes a valid expression and silently skips anything it does not
// recognise.
//
// Both functions are pure and safe for concurrent use.
package notation
