package recordio

import (
	"encoding/json"
	"fmt"
	"io"

	"record-reindexer/internal/record"
)

// WriteMapping encodes m as a JSON object followed by a newline.
// Keys come out sorted; pretty indents by two spaces.
func WriteMapping(w io.Writer, m map[string]record.Record, pretty bool) error {
	if m == nil {
		m = map[string]record.Record{}
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	if pretty {
		enc.SetIndent("", "  ")
	}

	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("failed to write mapping: %w", err)
	}

	return nil
}
