// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0

// Package sparsetuple implements a named, immutable record type that stores
// only the fields which are actually set, while still presenting the full
// fixed schema of field names.
//
// A Schema is defined once with an ordered list of field names. Records of
// that schema hold just the supplied values plus the schema positions those
// values occupy, so a record with k set fields costs O(k) storage no matter
// how wide the schema is. Absent fields read back as nil, the package's
// no-value sentinel; absence and an explicit nil are the same observable
// state.
//
// The trade is lookup cost: positional access is a linear scan over the k
// stored positions rather than a direct index. For the intended regime, many
// optional fields with most of them unset, that scan is short.
package sparsetuple

import (
	"fmt"

	"github.com/featurebasedb/sparsetuple/errors"
)

// Error codes returned by this package. Check them with errors.Is, for
// example errors.Is(err, sparsetuple.ErrUnknownField).
const (
	// ErrValidation indicates a bad type or field name at schema
	// definition.
	ErrValidation errors.Code = "Validation"

	// ErrUnknownField indicates a field name that is not part of the
	// schema.
	ErrUnknownField errors.Code = "UnknownField"

	// ErrDuplicateField indicates the same field was supplied twice in one
	// construction call.
	ErrDuplicateField errors.Code = "DuplicateField"

	// ErrIndexOutOfRange indicates positional access outside the schema
	// width, after negative positions have been normalized.
	ErrIndexOutOfRange errors.Code = "IndexOutOfRange"
)

// The following are helper functions for constructing coded errors containing
// relevant information about the specific error.

func NewErrInvalidName(name string, reason string) error {
	return errors.New(
		ErrValidation,
		fmt.Sprintf("type and field names %s: '%s'", reason, name),
	)
}

func NewErrDuplicateFieldName(name string) error {
	return errors.New(
		ErrValidation,
		fmt.Sprintf("encountered duplicate field name: '%s'", name),
	)
}

func NewErrUnknownField(typeName string, field string) error {
	return errors.New(
		ErrUnknownField,
		fmt.Sprintf("schema '%s' has no field '%s'", typeName, field),
	)
}

func NewErrDuplicateField(field string) error {
	return errors.New(
		ErrDuplicateField,
		fmt.Sprintf("field '%s' supplied more than once", field),
	)
}

func NewErrIndexOutOfRange(index int, fieldCount int) error {
	return errors.New(
		ErrIndexOutOfRange,
		fmt.Sprintf("position %d out of range for %d fields", index, fieldCount),
	)
}
