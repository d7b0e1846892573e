// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package logger_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/featurebasedb/sparsetuple/logger"
	"github.com/stretchr/testify/require"
)

func TestStandardLogger(t *testing.T) {
	t.Run("verbosity", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.NewStandardLogger(&buf)
		log.Debugf("quiet")
		log.Infof("loud")
		out := buf.String()
		require.NotContains(t, out, "quiet")
		require.Contains(t, out, "INFO:  loud")
	})

	t.Run("verbose", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.NewVerboseLogger(&buf)
		log.Debugf("chatty")
		require.Contains(t, buf.String(), "DEBUG: chatty")
	})

	t.Run("prefix", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.NewStandardLogger(&buf).WithPrefix("sub: ")
		log.Warnf("watch out")
		line := buf.String()
		require.Contains(t, line, "sub: ")
		require.Contains(t, line, "WARN:  watch out")
	})
}

func TestBufferLogger(t *testing.T) {
	log := logger.NewBufferLogger()
	log.Errorf("boom %d", 7)
	b, err := log.ReadAll()
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(b), "ERROR: boom 7"))
}
