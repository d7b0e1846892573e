// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/table"
	"github.com/jedib0t/go-pretty/text"
	"github.com/spf13/cobra"

	"github.com/featurebasedb/sparsetuple"
	"github.com/featurebasedb/sparsetuple/errors"
	"github.com/featurebasedb/sparsetuple/logger"
)

// nullValue is rendered in place of absent fields; go-pretty doesn't expect
// nil values in table rows.
const nullValue = "NULL"

type showConfig struct {
	schemaName string
	fields     []string
	sets       []string
	rename     bool
	verbose    bool
}

func newShowCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	conf := &showConfig{}
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Build one record and print its dense, dict, and compact views.",
		Long: `Build one record and print its dense, dict, and compact views.

Example:

  sparsetuple show --schema Customer \
    --fields username,first,middle,last,city,state,zip,bday \
    --set username=jdoe --set state=NY
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(conf, stdout, stderr)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&conf.schemaName, "schema", "Record", "Name of the record type.")
	flags.StringSliceVar(&conf.fields, "fields", nil, "Ordered, comma separated schema field names.")
	flags.StringSliceVar(&conf.sets, "set", nil, "field=value pair to set; repeatable. An empty value leaves the field absent.")
	flags.BoolVar(&conf.rename, "rename", false, "Rename invalid or duplicate field names to _<position> instead of failing.")
	flags.BoolVar(&conf.verbose, "verbose", false, "Enable verbose logging.")
	return cmd
}

func runShow(conf *showConfig, stdout, stderr io.Writer) error {
	log := logger.NewStandardLogger(stderr)
	if conf.verbose {
		log = logger.NewVerboseLogger(stderr)
	}

	if len(conf.fields) == 0 {
		return errors.Errorf("at least one schema field is required")
	}

	opts := []sparsetuple.SchemaOption{sparsetuple.OptSchemaLogger(log)}
	if conf.rename {
		opts = append(opts, sparsetuple.OptSchemaRenameInvalid())
	}
	schema, err := sparsetuple.NewSchema(conf.schemaName, conf.fields, opts...)
	if err != nil {
		return errors.Wrap(err, "defining schema")
	}

	assigns, err := parseAssignments(conf.sets)
	if err != nil {
		return err
	}
	record, err := schema.NewRecord(assigns...)
	if err != nil {
		return errors.Wrap(err, "building record")
	}
	log.Debugf("schema %s: %d of %d fields set", schema.Name(), record.PresentCount(), record.FieldCount())

	writeRecord(record, stdout)
	return nil
}

// parseAssignments turns "field=value" pairs into assignments. A pair with
// an empty value maps to nil, the no-value sentinel.
func parseAssignments(sets []string) ([]sparsetuple.Assignment, error) {
	assigns := make([]sparsetuple.Assignment, 0, len(sets))
	for _, set := range sets {
		field, value, found := strings.Cut(set, "=")
		if !found {
			return nil, errors.Errorf("malformed --set '%s': want field=value", set)
		}
		if value == "" {
			assigns = append(assigns, sparsetuple.Assign(field, nil))
			continue
		}
		assigns = append(assigns, sparsetuple.Assign(field, value))
	}
	return assigns, nil
}

func writeRecord(record *sparsetuple.Record, out io.Writer) {
	t := table.NewWriter()
	t.SetOutputMirror(out)

	// Don't uppercase the header values.
	t.Style().Format.Header = text.FormatDefault

	schema := record.Schema()
	header := make(table.Row, schema.FieldCount())
	for i, field := range schema.Fields() {
		header[i] = field
	}
	t.AppendHeader(header)

	row := make(table.Row, 0, schema.FieldCount())
	for _, v := range record.Dense() {
		if v == nil {
			v = nullValue
		}
		row = append(row, v)
	}
	t.AppendRow(row)
	t.Render()

	fmt.Fprintf(out, "\n%s\n", record)

	compact := record.Compact()
	positions := compact[len(compact)-1]
	fmt.Fprintf(out, "compact storage: %d values %v, positions %v\n",
		record.PresentCount(), compact[:len(compact)-1], positions)
}
