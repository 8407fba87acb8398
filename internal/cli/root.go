// Package cli wires the reindexer into the record-reindexer command line tool.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"record-reindexer/internal/logging"
)

// EnvPrefix prefixes the environment variables that mirror command line flags,
// e.g. REINDEX_LOG_LEVEL for --log-level.
const EnvPrefix = "REINDEX"

// NewRootCommand builds the record-reindexer command tree.
func NewRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	rc := &cobra.Command{
		Use:   "record-reindexer",
		Short: "Re-key a list of records by one of their fields.",
		Long: `record-reindexer renames the fields of every input record and builds a
mapping keyed by the value of one renamed field.

Records are read as a JSON or YAML array of objects. The result is written
as a single JSON object. Field mappings come from a YAML mapping file or
from the --source, --target and --index flags.

Every flag may also be set through a REINDEX_* environment variable
(REINDEX_LOG_LEVEL for --log-level) or through the file given by --config.
`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v := viper.New()
			if err := setAllConfig(v, cmd.Flags()); err != nil {
				return err
			}

			level, err := cmd.Flags().GetString("log-level")
			if err != nil {
				return fmt.Errorf("problem getting log-level flag: %w", err)
			}

			logger, err := logging.NewLogger(level, stderr)
			if err != nil {
				return err
			}

			cmd.SetContext(logging.WithLogger(cmd.Context(), logger))

			return nil
		},
	}
	rc.PersistentFlags().StringP("config", "c", "", "Configuration file (YAML) to read flag values from.")
	rc.PersistentFlags().String("log-level", logging.DefaultLevel, "Log level: debug, info, warn or error.")

	rc.AddCommand(newRunCommand(stdin, stdout, stderr))
	rc.AddCommand(newCheckCommand(stdin, stdout, stderr))
	rc.AddCommand(newNormalizeCommand(stdin, stdout, stderr))

	rc.SetIn(stdin)
	rc.SetOut(stdout)
	rc.SetErr(stderr)

	return rc
}

// setAllConfig takes a FlagSet to be the definition of all configuration
// options, as well as their defaults. It then reads from the command line, the
// environment, and a config file (if specified), and applies the configuration
// in that priority order. Each flag holds a pointer to where its value is
// stored, so setAllConfig updates the command's settings in place.
//
// Environment variables are the flag names upper-cased, with dashes replaced by
// underscores, prefixed with EnvPrefix and an underscore.
func setAllConfig(v *viper.Viper, flags *pflag.FlagSet) error {
	if err := v.BindPFlags(flags); err != nil {
		return err
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	validTags := make(map[string]bool)
	flags.VisitAll(func(f *pflag.Flag) {
		validTags[f.Name] = true
	})

	if c := v.GetString("config"); c != "" {
		v.SetConfigFile(c)
		v.SetConfigType("yaml")

		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("error reading configuration file '%s': %w", c, err)
		}

		for _, key := range v.AllKeys() {
			if !validTags[key] {
				return fmt.Errorf("invalid option in configuration file: %v", key)
			}
		}
	}

	var flagErr error

	flags.VisitAll(func(f *pflag.Flag) {
		if flagErr != nil || f.Changed {
			// A flag given on the command line wins. Setting it again would
			// also append to slice values instead of replacing them.
			return
		}

		if sv, ok := f.Value.(pflag.SliceValue); ok {
			flagErr = sv.Replace(sliceValue(v, f.Name))
			return
		}

		flagErr = f.Value.Set(v.GetString(f.Name))
	})

	return flagErr
}

// sliceValue reads a list setting. Lists from a config file come through as
// they are. Plain strings, as set from the environment, are split on commas
// with surrounding spaces trimmed. GetStringSlice would split those on
// whitespace instead.
func sliceValue(v *viper.Viper, name string) []string {
	var items []string

	if s, ok := v.Get(name).(string); ok {
		if strings.TrimSpace(s) == "" {
			return nil
		}

		items = strings.Split(s, ",")
	} else {
		items = v.GetStringSlice(name)
	}

	for i := range items {
		items[i] = strings.TrimSpace(items[i])
	}

	return items
}
