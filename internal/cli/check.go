package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"record-reindexer/internal/mapping"
)

// CheckCommand validates a mapping file.
type CheckCommand struct {
	Stdout      io.Writer
	MappingFile string
}

func newCheckCommand(_ io.Reader, stdout, _ io.Writer) *cobra.Command {
	cc := &CheckCommand{Stdout: stdout}
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a mapping file.",
		Long: `Loads a YAML mapping file and reports every problem found in it.
Exits non-zero when any error is reported. Warnings alone pass.
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cc.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&cc.MappingFile, "mapping", "m", "", "YAML mapping file")

	return cmd
}

// Run executes the command.
func (c *CheckCommand) Run(_ context.Context) error {
	if c.MappingFile == "" {
		return errors.New("--mapping is required")
	}

	mf, err := mapping.LoadFile(c.MappingFile)
	if err != nil {
		return err
	}

	res := mapping.Validate(mf)
	for _, d := range res.All() {
		fmt.Fprintf(c.Stdout, "%s: %s\n", d.Severity, d)
	}

	if res.HasErrors() {
		return fmt.Errorf("%s: %d error(s) found: %s", c.MappingFile, len(res.Errors), strings.Join(res.Codes(), ", "))
	}

	fmt.Fprintf(c.Stdout, "%s: %d mapping(s) OK: %s\n", c.MappingFile, len(mf.Mappings), strings.Join(mf.Names(), ", "))

	return nil
}
