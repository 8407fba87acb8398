package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"record-reindexer/internal/logging"
	"record-reindexer/internal/mapping"
	"record-reindexer/internal/match"
	"record-reindexer/internal/record"
	"record-reindexer/internal/recordio"
	"record-reindexer/internal/reindex"
)

// stdio names standard input or output in place of a file path.
const stdio = "-"

// RunCommand reindexes a record file.
type RunCommand struct {
	Stdin  io.Reader
	Stdout io.Writer

	// MappingFile and Name select a mapping from a YAML mapping file.
	MappingFile string
	Name        string

	// Source, Target and Index give the mapping inline.
	Source []string
	Target []string
	Index  string

	Input       string
	InputFormat string
	Output      string
	Pretty      bool
	Strict      bool
}

func newRunCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	rc := &RunCommand{Stdin: stdin, Stdout: stdout}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Reindex records by a renamed field.",
		Long: `Reads an array of records, renames the mapped fields of each one and
writes a JSON object keyed by the value of the index field.

When two records share an index value the later one wins.
A source field missing from a record yields a null target field.
`,
		Example: `  record-reindexer run --source id,isEnabledForUser --target feature,enabled --index feature --input flags.json
  record-reindexer run --mapping mappings.yaml --name features --input flags.yaml --pretty`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rc.Run(cmd.Context())
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&rc.MappingFile, "mapping", "m", "", "YAML mapping file")
	flags.StringVarP(&rc.Name, "name", "n", "", "mapping to use from the mapping file (optional when it holds one)")
	flags.StringSliceVar(&rc.Source, "source", nil, "source field names, in order")
	flags.StringSliceVar(&rc.Target, "target", nil, "target field names, paired with --source")
	flags.StringVar(&rc.Index, "index", "", "target field whose value keys the output")
	flags.StringVarP(&rc.Input, "input", "i", stdio, "record file, or - for stdin")
	flags.StringVar(&rc.InputFormat, "input-format", "", "json or yaml (default: from the input file extension)")
	flags.StringVarP(&rc.Output, "output", "o", stdio, "output file, or - for stdout")
	flags.BoolVar(&rc.Pretty, "pretty", false, "indent the JSON output")
	flags.BoolVar(&rc.Strict, "strict", false, "reject records holding non-scalar values")

	return cmd
}

// Run executes the command.
func (c *RunCommand) Run(ctx context.Context) error {
	logger := logging.FromContext(ctx)

	spec, err := c.spec(logger)
	if err != nil {
		return err
	}

	var collisions, missing int

	r, err := reindex.New(spec,
		reindex.WithCollisionHook(func(key string, _, _ record.Record) {
			collisions++

			logger.Warn("duplicate index value, keeping the later record", zap.String("key", key))
		}),
		reindex.WithMissingFieldHook(func(pos int, field string) {
			missing++

			logger.Warn("record is missing a source field", zap.Int("record", pos), zap.String("field", field))
		}),
	)
	if err != nil {
		return err
	}

	logger.Debug("resolved mapping", zap.String("spec", spew.Sdump(r.Spec())))

	records, err := c.readRecords()
	if err != nil {
		return err
	}

	if c.Strict {
		for i, rec := range records {
			if err := record.CheckScalars(rec); err != nil {
				return fmt.Errorf("record %d: %w", i, err)
			}
		}
	}

	out := r.Apply(records)

	if err := c.writeMapping(out); err != nil {
		return err
	}

	logger.Info("reindexed records",
		zap.Int("records", len(records)),
		zap.Int("keys", len(out)),
		zap.Int("collisions", collisions),
		zap.Int("missing_fields", missing),
	)

	return nil
}

// spec resolves the mapping from the mapping file or the inline flags.
func (c *RunCommand) spec(logger *zap.Logger) (reindex.Spec, error) {
	inline := len(c.Source) > 0 || len(c.Target) > 0 || c.Index != ""

	switch {
	case c.MappingFile != "" && inline:
		return reindex.Spec{}, errors.New("--mapping cannot be combined with --source, --target or --index")
	case c.MappingFile == "" && !inline:
		return reindex.Spec{}, errors.New("either --mapping or --source, --target and --index is required")
	case inline:
		return reindex.Spec{SourceFields: c.Source, TargetFields: c.Target, IndexField: c.Index}, nil
	}

	mf, err := mapping.LoadFile(c.MappingFile)
	if err != nil {
		return reindex.Spec{}, err
	}

	res := mapping.Validate(mf)
	for _, w := range res.Warnings {
		logger.Warn(w.String(), zap.String("code", w.Code))
	}

	if err := res.Error(); err != nil {
		return reindex.Spec{}, fmt.Errorf("invalid mapping file %s: %w", c.MappingFile, err)
	}

	m, ok := mf.Lookup(c.Name)
	if !ok {
		if c.Name == "" {
			return reindex.Spec{}, fmt.Errorf("mapping file %s holds %d mappings, pick one with --name", c.MappingFile, len(mf.Mappings))
		}

		var hint string
		if best := match.Rank(c.Name, mf.Names()).Best(); best != nil && best.Score >= match.SuggestThreshold {
			hint = fmt.Sprintf(" (did you mean %q?)", best.Name)
		}

		return reindex.Spec{}, fmt.Errorf("mapping %q not found in %s%s", c.Name, c.MappingFile, hint)
	}

	return m.Spec(), nil
}

func (c *RunCommand) readRecords() ([]record.Record, error) {
	format := recordio.FormatFromPath(c.Input)
	if c.InputFormat != "" {
		f, err := recordio.ParseFormat(c.InputFormat)
		if err != nil {
			return nil, err
		}

		format = f
	}

	if c.Input == stdio || c.Input == "" {
		return recordio.ReadRecords(c.Stdin, format)
	}

	f, err := os.Open(c.Input)
	if err != nil {
		return nil, fmt.Errorf("failed to read records: %w", err)
	}
	defer f.Close()

	records, err := recordio.ReadRecords(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c.Input, err)
	}

	return records, nil
}

func (c *RunCommand) writeMapping(out map[string]record.Record) (err error) {
	if c.Output == stdio || c.Output == "" {
		return recordio.WriteMapping(c.Stdout, out, c.Pretty)
	}

	f, err := os.Create(c.Output)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()

	return recordio.WriteMapping(f, out, c.Pretty)
}
