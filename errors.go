// Copyright 2024 DataStone, Inc. All rights reserved.

package numcmp

import (
	"fmt"
	"runtime"

	"github.com/datastone-inc/numcmp/errors"
)

const (
	ErrInternal errors.Code = "ErrInternal"

	ErrTypeMismatch                           errors.Code = "ErrTypeMismatch"
	ErrTypeIncompatibleWithComparisonOperator errors.Code = "ErrTypeIncompatibleWithComparisonOperator"
	ErrUnknownOperator                        errors.Code = "ErrUnknownOperator"
	ErrInvalidIntegerWidth                    errors.Code = "ErrInvalidIntegerWidth"
)

func NewErrInternal(msg string) error {
	preamble := "internal error"
	_, filename, line, ok := runtime.Caller(1)
	if ok {
		preamble = fmt.Sprintf("internal error (%s:%d)", filename, line)
	}
	return errors.New(
		ErrInternal,
		fmt.Sprintf("%s %s", preamble, msg),
	)
}

func NewErrInternalf(format string, a ...interface{}) error {
	preamble := "internal error"
	_, filename, line, ok := runtime.Caller(1)
	if ok {
		preamble = fmt.Sprintf("internal error (%s:%d)", filename, line)
	}
	errorMessage := fmt.Sprintf(format, a...)
	return errors.New(
		ErrInternal,
		fmt.Sprintf("%s %s", preamble, errorMessage),
	)
}

func NewErrTypeMismatch(type1, type2 string) error {
	return errors.New(
		ErrTypeMismatch,
		fmt.Sprintf("types '%s' and '%s' are not comparable", type1, type2),
	)
}

func NewErrTypeIncompatibleWithComparisonOperator(op string, typ string) error {
	return errors.New(
		ErrTypeIncompatibleWithComparisonOperator,
		fmt.Sprintf("operator '%s' incompatible with type '%s'", op, typ),
	)
}

func NewErrUnknownOperator(op string, left string, right string) error {
	return errors.New(
		ErrUnknownOperator,
		fmt.Sprintf("no operator '%s' registered for types '%s' and '%s'", op, left, right),
	)
}

func NewErrInvalidIntegerWidth(width int) error {
	return errors.New(
		ErrInvalidIntegerWidth,
		fmt.Sprintf("invalid integer width '%d'", width),
	)
}
