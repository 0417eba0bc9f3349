package redcode

import (
	"errors"

	"github.com/ezrec/mars/translate"
)

var f = translate.From

var (
	// Instruction line errors
	ErrFieldMissing    = errors.New(f("field missing"))
	ErrFieldRange      = errors.New(f("field out of range"))
	ErrOperandSyntax   = errors.New(f("operand syntax"))
	ErrParseExpression = errors.New(f("expression invalid"))
)

// ErrSyntax is a skipped instruction line.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrExpression is a $(...) expression that did not evaluate to an integer.
type ErrExpression struct {
	Expr string
	Err  error
}

func (err *ErrExpression) Error() string {
	if err.Err == nil {
		return f("$(%v) is not a valid expression", err.Expr)
	}
	return f("$(%v) %v", err.Expr, err.Err)
}

func (err *ErrExpression) Unwrap() []error {
	if err.Err == nil {
		return []error{ErrParseExpression}
	}
	return []error{ErrParseExpression, err.Err}
}
