package asm

import (
	"errors"

	"github.com/ezrec/ucrom/translate"
)

var f = translate.From

var (
	ErrEquateSyntax     = errors.New(f(".equ syntax"))
	ErrEquateDuplicate  = errors.New(f(".equ duplicated"))
	ErrLabelDuplicate   = errors.New(f("label duplicated"))
	ErrOpcodeExtraArgs  = errors.New(f("excessive arguments"))
	ErrValueMissing     = errors.New(f("value missing"))
	ErrValueUnexpected  = errors.New(f("value not expected"))
	ErrDirectiveInvalid = errors.New(f("directive invalid"))
	ErrImageFull        = errors.New(f("program exceeds image"))
)

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

type ErrValueRange struct {
	Value int64
	Bits  int
}

func (err ErrValueRange) Error() string {
	return f("%d does not fit in %d bits", err.Value, err.Bits)
}
