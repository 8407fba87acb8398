package mapping

import (
	"record-reindexer/internal/reindex"
)

// CurrentVersion is the only schema version this package understands.
const CurrentVersion = "1"

// MappingFile represents the root of a YAML mapping definition file.
type MappingFile struct {
	// Version of the mapping schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Mappings is the list of named reindex transforms.
	Mappings []Mapping `yaml:"mappings"`
}

// Mapping defines one reindex transform.
type Mapping struct {
	// Name identifies the mapping within the file.
	Name string `yaml:"name"`

	// Description is free text for humans.
	Description string `yaml:"description,omitempty"`

	// Source lists the fields read from each input record.
	Source StringOrArray `yaml:"source,omitempty"`

	// Target lists the output field names; Target[i] receives Source[i].
	Target StringOrArray `yaml:"target,omitempty"`

	// Fields is the ordered "source: target" shorthand.
	Fields FieldPairs `yaml:"fields,omitempty"`

	// Index is the target field whose value keys the output.
	Index string `yaml:"index"`
}

// StringOrArray holds one or more strings; YAML accepts a scalar or a sequence.
type StringOrArray []string

// FieldPair renames Source to Target.
type FieldPair struct {
	Source string
	Target string
}

// FieldPairs is an ordered list of renames written as a YAML mapping.
type FieldPairs []FieldPair

// SourceFields returns the source field names including the shorthand pairs.
func (m *Mapping) SourceFields() []string {
	fields := append([]string(nil), m.Source...)
	for _, p := range m.Fields {
		fields = append(fields, p.Source)
	}

	return fields
}

// TargetFields returns the target field names including the shorthand pairs.
func (m *Mapping) TargetFields() []string {
	fields := append([]string(nil), m.Target...)
	for _, p := range m.Fields {
		fields = append(fields, p.Target)
	}

	return fields
}

// Spec converts the mapping into a reindex.Spec. The spec is not validated.
func (m *Mapping) Spec() reindex.Spec {
	return reindex.Spec{
		SourceFields: m.SourceFields(),
		TargetFields: m.TargetFields(),
		IndexField:   m.Index,
	}
}

// Lookup returns the mapping called name. An empty name selects the only
// mapping of a single-mapping file.
func (mf *MappingFile) Lookup(name string) (*Mapping, bool) {
	if name == "" {
		if len(mf.Mappings) == 1 {
			return &mf.Mappings[0], true
		}

		return nil, false
	}

	for i := range mf.Mappings {
		if mf.Mappings[i].Name == name {
			return &mf.Mappings[i], true
		}
	}

	return nil, false
}

// Names returns the mapping names in file order.
func (mf *MappingFile) Names() []string {
	names := make([]string, 0, len(mf.Mappings))
	for i := range mf.Mappings {
		names = append(names, mf.Mappings[i].Name)
	}

	return names
}
