// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0

// Package errors wraps pkg/errors and adds error codes so that callers can
// check what kind of error they got back without matching on message text.
package errors

import (
	"github.com/pkg/errors"
)

// Code is an error code which can be used to check against a given error.
// For example, see the Is() method.
type Code string

const (
	ErrUncoded Code = "Uncoded"
)

// New returns a coded error with a stack trace attached at the call site.
func New(code Code, message string) error {
	return errors.WithStack(codedError{
		code:    code,
		message: message,
	})
}

// Newf is like New but formats the message.
func Newf(code Code, format string, args ...interface{}) error {
	return errors.WithStack(codedError{
		code:    code,
		message: errors.Errorf(format, args...).Error(),
	})
}

// Is is a fork of the Is() method from pkg/errors which takes as its target
// an error Code instead of an error.
func Is(err error, target Code) bool {
	return errors.Is(err, codedError{code: target})
}

// CodeOf returns the code of err's cause, or ErrUncoded if err carries no
// code.
func CodeOf(err error) Code {
	if ce, ok := Cause(err).(codedError); ok {
		return ce.code
	}
	return ErrUncoded
}

func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

func Cause(err error) error {
	return errors.Cause(err)
}

func Errorf(format string, args ...interface{}) error {
	return errors.Errorf(format, args...)
}

func Unwrap(err error) error {
	return errors.Unwrap(err)
}

func WithMessage(err error, message string) error {
	return errors.WithMessage(err, message)
}

func WithMessagef(err error, format string, args ...interface{}) error {
	return errors.WithMessagef(err, format, args...)
}

func WithStack(err error) error {
	return errors.WithStack(err)
}

func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

func Wrapf(err error, fmt string, args ...interface{}) error {
	return errors.Wrapf(err, fmt, args...)
}

// codedError is the fundamental type used by this package to provide coded
// errors.
type codedError struct {
	code    Code
	message string
}

func (ce codedError) Error() string {
	return ce.message
}

func (ce codedError) Is(err error) bool {
	e, ok := err.(codedError)
	return ok && ce.code == e.code
}
