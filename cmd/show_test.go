// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package cmd_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/featurebasedb/sparsetuple/cmd"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rc := cmd.NewRootCommand(strings.NewReader(""), &out, &errOut)
	rc.SetArgs(args)
	err := rc.Execute()
	return out.String(), err
}

func TestShowCommand(t *testing.T) {
	t.Run("basic", func(t *testing.T) {
		out, err := runCommand(t, "show",
			"--schema", "Customer",
			"--fields", "username,first,middle,last,city,state,zip,bday",
			"--set", "username=jdoe",
			"--set", "state=NY",
		)
		require.NoError(t, err)
		require.Contains(t, out, "jdoe")
		require.Contains(t, out, "NULL")
		require.Contains(t, out, "positions [0 5]")
		require.Contains(t, out, "Customer(username=jdoe")
	})

	t.Run("no-fields", func(t *testing.T) {
		_, err := runCommand(t, "show", "--schema", "Customer")
		require.Error(t, err)
	})

	t.Run("duplicate-set", func(t *testing.T) {
		_, err := runCommand(t, "show",
			"--fields", "a,b",
			"--set", "a=1",
			"--set", "a=2",
		)
		require.Error(t, err)
		require.Contains(t, err.Error(), "supplied more than once")
	})

	t.Run("malformed-set", func(t *testing.T) {
		_, err := runCommand(t, "show", "--fields", "a,b", "--set", "a")
		require.Error(t, err)
		require.Contains(t, err.Error(), "malformed")
	})

	t.Run("config-file", func(t *testing.T) {
		conf := filepath.Join(t.TempDir(), "show.toml")
		require.NoError(t, os.WriteFile(conf, []byte(`
schema = "Customer"
fields = ["username", "state"]
`), 0o644))

		out, err := runCommand(t, "show", "-c", conf, "--set", "state=NY")
		require.NoError(t, err)
		require.Contains(t, out, "NY")
		require.Contains(t, out, "positions [1]")
	})

	t.Run("bad-config-key", func(t *testing.T) {
		conf := filepath.Join(t.TempDir(), "show.toml")
		require.NoError(t, os.WriteFile(conf, []byte(`nonsense = true`), 0o644))

		_, err := runCommand(t, "show", "-c", conf, "--fields", "a")
		require.Error(t, err)
		require.Contains(t, err.Error(), "invalid option in configuration file")
	})
}
