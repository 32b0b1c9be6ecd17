package commands

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/datasweep/datasweep/internal/logger"
	"github.com/datasweep/datasweep/internal/output"
	"github.com/datasweep/datasweep/pkg/cleaning"
	"github.com/datasweep/datasweep/pkg/dataset"
	"github.com/datasweep/datasweep/pkg/schema"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Apply cleaning strategies to a CSV dataset",
	Long: `Read a CSV dataset, apply the given cleaning strategies in order and
write the cleaned result.

Strategy options come from the schema file's cleaning block (-s) or from
repeated --set flags. --set values are parsed as YAML, so lists and maps
work: --set 'remove_duplicates_subset_fields=[id, name]'.

Examples:
  datasweep clean -i data.csv -s schema.yaml \
      --strategy remove_duplicates --strategy remove_disabled

  datasweep clean -i data.csv -o cleaned.json --format json \
      --strategy remove_columns --set 'remove_columns=[col1, col2]'`,
	RunE: runClean,
}

func init() {
	rootCmd.AddCommand(cleanCmd)

	flags := cleanCmd.Flags()

	flags.StringP("input", "i", "", "input CSV file (default: stdin)")
	flags.StringP("schema", "s", "", "schema file carrying the cleaning block (JSON or YAML)")
	flags.StringArray("strategy", nil, "strategy to apply, in order (can be repeated)")
	flags.StringArray("set", nil, "option as key=value, value parsed as YAML (can be repeated)")
	flags.StringP("output", "o", "", "output file (default: stdout)")
	flags.String("format", "csv", "output format: csv, json, jsonl, yaml")
	flags.Bool("validate", false, "validate the cleaned dataset against the schema and report violations")

	_ = cleanCmd.MarkFlagRequired("strategy")
}

func runClean(cmd *cobra.Command, args []string) error {
	logger.Init(logger.Options{
		Debug: viper.GetBool("debug"),
		Quiet: viper.GetBool("quiet"),
	})

	// Read the input dataset
	inputPath, _ := cmd.Flags().GetString("input")
	data, err := readInput(inputPath)
	if err != nil {
		logError("failed to read input: %v", err)
		return err
	}
	ds, err := dataset.ReadCSV(bytes.NewReader(data))
	if err != nil {
		logError("failed to parse input: %v", err)
		return err
	}
	logInfo("Read %s rows (%s)", humanize.Comma(int64(ds.Len())), humanize.Bytes(uint64(len(data))))

	// Build the strategy list in the given order
	names, _ := cmd.Flags().GetStringArray("strategy")
	strategies := make([]cleaning.Strategy, 0, len(names))
	for _, name := range names {
		s, err := cleaning.NewStrategy(name)
		if err != nil {
			logError("%v", err)
			return err
		}
		strategies = append(strategies, s)
	}

	// Resolve the configuration source: schema block or --set values
	var src cleaning.Source
	var sch schema.Schema
	schemaPath, _ := cmd.Flags().GetString("schema")
	if schemaPath != "" {
		sch, err = schema.FromFile(schemaPath)
		if err != nil {
			logError("failed to load schema: %v", err)
			return err
		}
		logger.Debug("schema loaded", "name", sch.Name, "fields", len(sch.Fields))
		src = cleaning.SchemaSource{Schema: sch}
	} else {
		pairs, _ := cmd.Flags().GetStringArray("set")
		values, err := parseSetFlags(pairs)
		if err != nil {
			logError("%v", err)
			return err
		}
		src = cleaning.ValuesSource(values)
	}

	rowsBefore, columnsBefore := ds.Len(), len(ds.Columns())
	if _, err := cleaning.Clean(ds, strategies, src); err != nil {
		logError("%v", err)
		return err
	}
	logInfo("Cleaned: %s rows and %d columns removed",
		humanize.Comma(int64(rowsBefore-ds.Len())), columnsBefore-len(ds.Columns()))

	// Optional post-clean schema validation
	if doValidate, _ := cmd.Flags().GetBool("validate"); doValidate && schemaPath != "" {
		violations := sch.Validate(ds)
		for _, v := range violations {
			logger.Warn("schema violation", "field", v.Field, "row", v.Row, "message", v.Message)
		}
		logInfo("Schema validation: %d violation(s)", len(violations))
	}

	return writeOutput(cmd, ds)
}

// readInput reads the whole input file, or stdin when path is empty or "-".
func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

// parseSetFlags turns key=value pairs into an option map. Values are parsed
// as YAML so scalars, lists and maps are all expressible on the command line.
func parseSetFlags(pairs []string) (map[string]any, error) {
	values := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, raw, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid --set %q: expected key=value", pair)
		}
		var value any
		if err := yaml.Unmarshal([]byte(raw), &value); err != nil {
			return nil, fmt.Errorf("invalid --set value for %q: %w", key, err)
		}
		values[key] = value
	}
	return values, nil
}

func writeOutput(cmd *cobra.Command, ds *dataset.Dataset) error {
	outputPath, _ := cmd.Flags().GetString("output")
	format, _ := cmd.Flags().GetString("format")

	var w io.Writer = os.Stdout
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			logError("failed to create output file: %v", err)
			return err
		}
		defer f.Close()
		w = f
	}

	writer, err := output.NewWriter(w, output.Format(format), output.WithColumns(ds.Columns()))
	if err != nil {
		logError("%v", err)
		return err
	}
	for _, record := range ds.Records() {
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	return writer.Flush()
}
