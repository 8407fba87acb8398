package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"record-reindexer/internal/logging"
	"record-reindexer/internal/mapping"
)

// NormalizeCommand rewrites a mapping file with the fields shorthand folded
// into the source and target lists.
type NormalizeCommand struct {
	Stdout      io.Writer
	MappingFile string
	Output      string
	Write       bool
}

func newNormalizeCommand(_ io.Reader, stdout, _ io.Writer) *cobra.Command {
	nc := &NormalizeCommand{Stdout: stdout}
	cmd := &cobra.Command{
		Use:   "normalize",
		Short: "Rewrite a mapping file in its list form.",
		Long: `Loads a YAML mapping file, folds every "fields" shorthand into the
source and target lists and writes the result as YAML. The pairing and
order of fields are kept, so the normalized file reindexes exactly like
the original. A file with validation errors is refused.
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return nc.Run(cmd.Context())
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&nc.MappingFile, "mapping", "m", "", "YAML mapping file")
	flags.StringVarP(&nc.Output, "output", "o", stdio, "output file, or - for stdout")
	flags.BoolVarP(&nc.Write, "write", "w", false, "write the result back to the mapping file")

	return cmd
}

// Run executes the command.
func (c *NormalizeCommand) Run(ctx context.Context) error {
	logger := logging.FromContext(ctx)

	if c.MappingFile == "" {
		return errors.New("--mapping is required")
	}

	if c.Write && c.Output != "" && c.Output != stdio {
		return errors.New("--write cannot be combined with --output")
	}

	mf, err := mapping.LoadFile(c.MappingFile)
	if err != nil {
		return err
	}

	res := mapping.Validate(mf)
	for _, w := range res.Warnings {
		logger.Warn(w.String(), zap.String("code", w.Code))
	}

	if err := res.Error(); err != nil {
		return fmt.Errorf("invalid mapping file %s: %w", c.MappingFile, err)
	}

	mapping.NormalizeMappingFile(mf)

	dest := c.Output
	if c.Write {
		dest = c.MappingFile
	}

	if dest == "" || dest == stdio {
		data, err := mapping.Marshal(mf)
		if err != nil {
			return fmt.Errorf("failed to encode mapping file: %w", err)
		}

		_, err = c.Stdout.Write(data)

		return err
	}

	if err := mapping.WriteFile(mf, dest); err != nil {
		return err
	}

	logger.Info("normalized mapping file", zap.String("path", dest), zap.Int("mappings", len(mf.Mappings)))

	return nil
}
