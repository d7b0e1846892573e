// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package errors_test

import (
	"fmt"
	"testing"

	"github.com/featurebasedb/sparsetuple/errors"
	"github.com/stretchr/testify/assert"
)

const (
	errFieldNotFound errors.Code = "FieldNotFound"
	errBadName       errors.Code = "BadName"
)

func newErrFieldNotFound(field string) error {
	return errors.New(errFieldNotFound, fmt.Sprintf("field '%s' not found", field))
}

func newErrBadName(name string) error {
	return errors.New(errBadName, fmt.Sprintf("bad name '%s'", name))
}

func TestErrors(t *testing.T) {
	t.Run("Is", func(t *testing.T) {
		uncoded := errors.New(errors.ErrUncoded, "uncoded error")
		fnf := newErrFieldNotFound("fld")
		bad := newErrBadName("9lives")

		tests := []struct {
			err    error
			target errors.Code
			exp    bool
		}{
			{err: uncoded, target: errors.ErrUncoded, exp: true},
			{err: uncoded, target: errFieldNotFound, exp: false},
			{err: fnf, target: errFieldNotFound, exp: true},
			{err: fnf, target: errBadName, exp: false},
			{err: errors.Wrap(bad, "with message"), target: errBadName, exp: true},
			{err: errors.New(errFieldNotFound, "custom field message"), target: errFieldNotFound, exp: true},
		}

		for i, test := range tests {
			t.Run(fmt.Sprintf("test-%d", i), func(t *testing.T) {
				got := errors.Is(test.err, test.target)
				assert.Equal(t, test.exp, got)
			})
		}
	})

	t.Run("CodeOf", func(t *testing.T) {
		assert.Equal(t, errFieldNotFound, errors.CodeOf(newErrFieldNotFound("fld")))
		assert.Equal(t, errFieldNotFound, errors.CodeOf(errors.Wrap(newErrFieldNotFound("fld"), "wrapped")))
		assert.Equal(t, errors.ErrUncoded, errors.CodeOf(errors.Errorf("plain")))
	})
}
