// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package sparsetuple

import (
	"fmt"
	"reflect"
	"strings"
)

// Assignment is one field/value pair supplied to record construction.
// Callers usually build these with Assign.
type Assignment struct {
	Field string
	Value interface{}
}

// Assign returns an Assignment for the given field and value.
func Assign(field string, value interface{}) Assignment {
	return Assignment{Field: field, Value: value}
}

// Record is an immutable instance of a Schema. It stores the values which
// were actually set, in the order they were supplied, plus the schema
// positions those values occupy. Absent fields read back as nil.
//
// Records are plain immutable values; share them across goroutines freely.
type Record struct {
	schema    *Schema
	values    []interface{}
	positions []int
}

// NewRecord constructs a record from field/value assignments, processed in
// the order given. Assignments with a nil value are treated as absent and
// not stored, but their names are still validated. An unknown field fails
// with ErrUnknownField and a field supplied twice fails with
// ErrDuplicateField; in both cases no record is returned.
func (s *Schema) NewRecord(assigns ...Assignment) (*Record, error) {
	values := make([]interface{}, 0, len(assigns))
	positions := make([]int, 0, len(assigns))
	seen := make(map[int]struct{}, len(assigns))

	for _, a := range assigns {
		pos, err := s.PositionOf(a.Field)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[pos]; ok {
			return nil, NewErrDuplicateField(a.Field)
		}
		seen[pos] = struct{}{}
		if a.Value == nil {
			continue
		}
		values = append(values, a.Value)
		positions = append(positions, pos)
	}

	return &Record{
		schema:    s,
		values:    values,
		positions: positions,
	}, nil
}

// NewRecordFromMap is a convenience constructor taking a field/value map.
// Fields are processed in schema order so construction is deterministic.
// Names not in the schema fail with ErrUnknownField.
func (s *Schema) NewRecordFromMap(m map[string]interface{}) (*Record, error) {
	assigns := make([]Assignment, 0, len(m))
	for _, field := range s.fields {
		if v, ok := m[field]; ok {
			assigns = append(assigns, Assignment{Field: field, Value: v})
		}
	}
	if len(assigns) != len(m) {
		for name := range m {
			if _, ok := s.positions.Get(name); !ok {
				return nil, NewErrUnknownField(s.name, name)
			}
		}
	}
	return s.NewRecord(assigns...)
}

// Schema returns the shared schema this record was built from.
func (r *Record) Schema() *Schema { return r.schema }

// FieldCount returns the schema width.
func (r *Record) FieldCount() int { return r.schema.FieldCount() }

// PresentCount returns the number of fields actually stored.
func (r *Record) PresentCount() int { return len(r.values) }

// Get returns the value at the given schema position. Negative positions
// count from the end, so Get(-1) is the last field. A position outside the
// schema width after that normalization fails with ErrIndexOutOfRange.
// Reading an in-range field that was never set is not an error; it returns
// nil.
//
// The lookup is a linear scan over the stored positions, O(k) for k present
// fields.
func (r *Record) Get(pos int) (interface{}, error) {
	n := pos
	if n < 0 {
		n += r.schema.FieldCount()
	}
	if n < 0 || n >= r.schema.FieldCount() {
		return nil, NewErrIndexOutOfRange(pos, r.schema.FieldCount())
	}
	return r.valueAt(n), nil
}

// GetByName resolves the field name through the schema and then behaves as
// Get. It fails with ErrUnknownField for names outside the schema.
func (r *Record) GetByName(name string) (interface{}, error) {
	pos, err := r.schema.PositionOf(name)
	if err != nil {
		return nil, err
	}
	return r.valueAt(pos), nil
}

// valueAt returns the stored value occupying schema position n, or nil when
// the field is absent. n must already be in range.
func (r *Record) valueAt(n int) interface{} {
	for i, p := range r.positions {
		if p == n {
			return r.values[i]
		}
	}
	return nil
}

// AsDict returns one assignment per schema field, in schema order, with nil
// for absent fields. Feeding the result back to NewRecord reproduces the
// record.
func (r *Record) AsDict() []Assignment {
	out := make([]Assignment, len(r.schema.fields))
	for i, field := range r.schema.fields {
		out[i] = Assignment{Field: field, Value: r.valueAt(i)}
	}
	return out
}

// Dense returns the record as a full fixed-width sequence in schema order,
// with nil in every absent slot. This is the shape a fully-populated record
// of the same schema would have, and the shape Equals compares against.
func (r *Record) Dense() []interface{} {
	out := make([]interface{}, r.schema.FieldCount())
	for i := range out {
		out[i] = r.valueAt(i)
	}
	return out
}

// Compact returns the record's raw storage: the k present values in storage
// order followed by a single trailing element holding their schema positions
// as an []int. This is the memory-compact transport form; it is not
// comparable with Dense output.
func (r *Record) Compact() []interface{} {
	out := make([]interface{}, 0, len(r.values)+1)
	out = append(out, r.values...)
	out = append(out, append([]int(nil), r.positions...))
	return out
}

// Replace returns a new record with the given fields overridden. A nil value
// removes the field; anything else adds or replaces it. The receiver is
// untouched. Unknown field names fail with ErrUnknownField and a field
// overridden twice in one call fails with ErrDuplicateField.
func (r *Record) Replace(assigns ...Assignment) (*Record, error) {
	merged := r.AsDict()
	seen := make(map[int]struct{}, len(assigns))
	for _, a := range assigns {
		pos, err := r.schema.PositionOf(a.Field)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[pos]; ok {
			return nil, NewErrDuplicateField(a.Field)
		}
		seen[pos] = struct{}{}
		merged[pos].Value = a.Value
	}
	return r.schema.NewRecord(merged...)
}

// Equals reports whether other has the same dense content as this record.
// Other may be another *Record (of any schema with the same field count) or
// a full []interface{} of one value per schema field, with nil marking
// absent slots. Elements are compared with reflect.DeepEqual, so an absent
// field equals an explicit nil.
//
// Equality is one-directional by contract: it is defined as a method on
// Record, and comparing a plain slice against a Record with the slice's own
// notion of equality (e.g. reflect.DeepEqual) reports inequality even when
// the content matches. Do not paper over that asymmetry in calling code.
func (r *Record) Equals(other interface{}) bool {
	var dense []interface{}
	switch v := other.(type) {
	case *Record:
		if v == nil || v.FieldCount() != r.FieldCount() {
			return false
		}
		dense = v.Dense()
	case []interface{}:
		if len(v) != r.FieldCount() {
			return false
		}
		dense = v
	default:
		return false
	}
	for i, want := range r.Dense() {
		if !reflect.DeepEqual(want, dense[i]) {
			return false
		}
	}
	return true
}

// String renders the record across all schema fields, absent ones included,
// e.g. Name(first=ann, middle=<nil>, last=lee).
func (r *Record) String() string {
	var sb strings.Builder
	sb.WriteString(r.schema.name)
	sb.WriteByte('(')
	for i, field := range r.schema.fields {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s=%v", field, r.valueAt(i))
	}
	sb.WriteByte(')')
	return sb.String()
}
