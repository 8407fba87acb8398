package recordio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"record-reindexer/internal/record"
)

// ErrShape is returned when the input is not an array of objects.
var ErrShape = errors.New("expected an array of objects")

// ReadRecords decodes every record from r. Empty input yields no records.
func ReadRecords(r io.Reader, f Format) ([]record.Record, error) {
	var (
		doc any
		err error
	)

	switch f {
	case FormatJSON:
		doc, err = decodeJSON(r)
	case FormatYAML:
		doc, err = decodeYAML(r)
	default:
		return nil, fmt.Errorf("unknown input format %q", f)
	}

	if err != nil {
		return nil, err
	}

	return toRecords(doc)
}

func decodeJSON(r io.Reader) (any, error) {
	dec := json.NewDecoder(r)

	var doc any
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to parse JSON records: %w", err)
	}

	if dec.More() {
		return nil, fmt.Errorf("%w: unexpected data after the record array", ErrShape)
	}

	return doc, nil
}

func decodeYAML(r io.Reader) (any, error) {
	dec := yaml.NewDecoder(r)

	var doc any
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to parse YAML records: %w", err)
	}

	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected document after the record array", ErrShape)
	}

	return doc, nil
}

func toRecords(doc any) ([]record.Record, error) {
	if doc == nil {
		return []record.Record{}, nil
	}

	items, ok := doc.([]any)
	if !ok {
		return nil, fmt.Errorf("%w, got %s", ErrShape, describe(doc))
	}

	out := make([]record.Record, 0, len(items))

	for i, item := range items {
		rec, err := toRecord(item)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}

		out = append(out, rec)
	}

	return out, nil
}

func toRecord(item any) (record.Record, error) {
	switch m := item.(type) {
	case map[string]any:
		return record.Record(m), nil
	case map[any]any:
		rec := make(record.Record, len(m))

		for k, v := range m {
			name, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("%w: field name %v is not a string", ErrShape, k)
			}

			rec[name] = v
		}

		return rec, nil
	default:
		return nil, fmt.Errorf("%w, got %s", ErrShape, describe(item))
	}
}

func describe(v any) string {
	switch v.(type) {
	case []any:
		return "array"
	case map[string]any, map[any]any:
		return "object"
	}

	switch record.KindOf(v) {
	case record.KindNull:
		return "null"
	case record.KindBool:
		return "boolean"
	case record.KindInt, record.KindFloat:
		return "number"
	case record.KindString:
		return "string"
	default:
		return fmt.Sprintf("%T", v)
	}
}
