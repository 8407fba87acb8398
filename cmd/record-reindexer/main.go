// Package main provides the CLI entrypoint for record-reindexer.
//
// record-reindexer turns a list of records into a mapping keyed by one of
// their fields:
//   - Reads a JSON or YAML array of records
//   - Renames the mapped fields of each record
//   - Keys the result by the value of a renamed field, later records winning
//   - Writes the mapping as JSON
package main

import (
	"context"
	"fmt"
	"os"

	"record-reindexer/internal/cli"
)

func main() {
	rc := cli.NewRootCommand(os.Stdin, os.Stdout, os.Stderr)
	if err := rc.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
