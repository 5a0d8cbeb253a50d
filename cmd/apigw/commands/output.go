package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/apigw/internal/constants"
)

const defaultJSONIndent = 2

func validateOutputFormat(format string) error {
	switch format {
	case "", constants.FormatTable, constants.FormatJSON, constants.FormatYAML:
		return nil
	default:
		return fmt.Errorf("%w: %q", constants.ErrInvalidOutputFormat, format)
	}
}

// table is a rendered tabular view of a value.
type table struct {
	header []string
	rows   [][]string
}

func newTable(header ...string) *table {
	return &table{header: header}
}

func (t *table) add(cells ...string) {
	t.rows = append(t.rows, cells)
}

// render writes data as JSON or YAML, or writes view as a table.
func render(cmd *cobra.Command, data interface{}, view func() *table) error {
	format := viper.GetString(keyOutput)

	err := validateOutputFormat(format)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	switch format {
	case constants.FormatJSON:
		return writeJSON(out, data)
	case constants.FormatYAML:
		return writeYAML(out, data)
	default:
		return writeTable(out, view())
	}
}

func writeJSON(out io.Writer, data interface{}) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", fmt.Sprintf("%*s", defaultJSONIndent, ""))

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	return nil
}

func writeYAML(out io.Writer, data interface{}) error {
	encoder := yaml.NewEncoder(out)
	defer func() { _ = encoder.Close() }()

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding YAML output: %w", err)
	}

	return nil
}

func writeTable(out io.Writer, view *table) error {
	if view == nil {
		return nil
	}

	if len(view.rows) == 0 {
		_, _ = fmt.Fprintln(out, "No results found")

		return nil
	}

	header := make([]any, 0, len(view.header))
	for _, name := range view.header {
		header = append(header, name)
	}

	tw := tablewriter.NewWriter(out)
	tw.Header(header...)

	for _, row := range view.rows {
		_ = tw.Append(row)
	}

	err := tw.Render()
	if err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}

	return nil
}

// details renders a single object as a two-column property table.
func details(pairs ...string) *table {
	view := newTable("Property", "Value")

	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] == "" {
			continue
		}

		view.add(pairs[i], pairs[i+1])
	}

	return view
}
