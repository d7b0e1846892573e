// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package sparsetuple

import (
	"fmt"
	"go/token"
	"unicode"

	"github.com/benbjohnson/immutable"

	"github.com/featurebasedb/sparsetuple/errors"
	"github.com/featurebasedb/sparsetuple/logger"
)

// Schema is the fixed, ordered field layout shared by every Record of one
// record type. It is built once by NewSchema and never modified afterward;
// a published Schema is safe for unbounded concurrent reads.
type Schema struct {
	name      string
	fields    []string
	positions *immutable.Map[string, int]
}

// SchemaOption is a functional option type for NewSchema.
type SchemaOption func(so *schemaOptions) error

type schemaOptions struct {
	rename bool
	log    logger.Logger
}

// OptSchemaRenameInvalid replaces invalid, underscore-prefixed, and duplicate
// field names with "_<position>" instead of rejecting them. The type name is
// still validated strictly.
func OptSchemaRenameInvalid() SchemaOption {
	return func(so *schemaOptions) error {
		so.rename = true
		return nil
	}
}

// OptSchemaLogger sets the logger used during schema definition. Field
// renames are reported at debug level.
func OptSchemaLogger(log logger.Logger) SchemaOption {
	return func(so *schemaOptions) error {
		if log == nil {
			return errors.Errorf("nil logger")
		}
		so.log = log
		return nil
	}
}

// NewSchema validates the type name and field names and returns the schema
// they define. Names may contain only alphanumeric characters and
// underscores, must not be empty, start with a digit, or be a Go keyword.
// Field names additionally must not start with an underscore and must be
// unique. Any violation fails with an ErrValidation-coded error unless
// OptSchemaRenameInvalid was given, in which case the offending field names
// are replaced with "_<position>".
func NewSchema(name string, fields []string, opts ...SchemaOption) (*Schema, error) {
	so := schemaOptions{log: logger.NopLogger}
	for _, opt := range opts {
		if err := opt(&so); err != nil {
			return nil, errors.Wrap(err, "applying option")
		}
	}

	// Copy so later validation and the schema itself can't be affected by
	// the caller mutating the slice.
	fields = append([]string(nil), fields...)

	if so.rename {
		seen := make(map[string]struct{}, len(fields))
		for i, field := range fields {
			_, dup := seen[field]
			if dup || validateFieldName(field) != nil {
				seen[field] = struct{}{}
				fields[i] = fmt.Sprintf("_%d", i)
				so.log.Debugf("schema %s: renamed field %d from '%s' to '%s'", name, i, field, fields[i])
				continue
			}
			seen[field] = struct{}{}
		}
	}

	if err := validateName(name); err != nil {
		return nil, err
	}

	b := immutable.NewMapBuilder[string, int](nil)
	for i, field := range fields {
		if err := validateName(field); err != nil {
			return nil, err
		}
		// Renamed fields are the one sanctioned use of a leading
		// underscore.
		if !so.rename && field[0] == '_' {
			return nil, NewErrInvalidName(field, "cannot start with an underscore")
		}
		if _, ok := b.Get(field); ok {
			return nil, NewErrDuplicateFieldName(field)
		}
		b.Set(field, i)
	}

	return &Schema{
		name:      name,
		fields:    fields,
		positions: b.Map(),
	}, nil
}

// MustNewSchema is like NewSchema but panics on validation failure. Intended
// for schemas defined from literals at program start.
func MustNewSchema(name string, fields []string, opts ...SchemaOption) *Schema {
	s, err := NewSchema(name, fields, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// Name returns the record type name.
func (s *Schema) Name() string { return s.name }

// Fields returns a copy of the field names in schema order.
func (s *Schema) Fields() []string {
	return append([]string(nil), s.fields...)
}

// FieldCount returns the number of fields in the schema.
func (s *Schema) FieldCount() int { return len(s.fields) }

// PositionOf resolves a field name to its schema position. It fails with an
// ErrUnknownField-coded error when the name is not part of the schema.
func (s *Schema) PositionOf(name string) (int, error) {
	pos, ok := s.positions.Get(name)
	if !ok {
		return 0, NewErrUnknownField(s.name, name)
	}
	return pos, nil
}

func (s *Schema) String() string {
	return fmt.Sprintf("%s%v", s.name, s.fields)
}

// validateName reports whether a name is usable as a type or field name.
func validateName(name string) error {
	if name == "" {
		return NewErrInvalidName(name, "cannot be empty")
	}
	for _, r := range name {
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return NewErrInvalidName(name, "can only contain alphanumeric characters and underscores")
		}
	}
	if r := []rune(name)[0]; unicode.IsDigit(r) {
		return NewErrInvalidName(name, "cannot start with a number")
	}
	if token.IsKeyword(name) {
		return NewErrInvalidName(name, "cannot be a keyword")
	}
	return nil
}

// validateFieldName applies the stricter field rules, used to decide renames.
func validateFieldName(name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	if name[0] == '_' {
		return NewErrInvalidName(name, "cannot start with an underscore")
	}
	return nil
}
