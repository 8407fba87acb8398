package mapping

import (
	"fmt"
	"strings"

	"record-reindexer/internal/common"
	"record-reindexer/internal/diagnostic"
	"record-reindexer/internal/match"
)

// maxSuggestions caps the "did you mean" hints attached to a diagnostic.
const maxSuggestions = 2

// Validate checks a mapping file and reports every problem found.
// A mapping with no errors converts into a reindex.Spec that reindex.New accepts.
func Validate(mf *MappingFile) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if mf == nil {
		res.AddError("mapping_is_nil", "mapping file is nil", "", "")
		return res
	}

	if mf.Version != "" && mf.Version != CurrentVersion {
		res.AddWarning("unsupported_version",
			fmt.Sprintf("schema version %q is not supported, reading it as version %q", mf.Version, CurrentVersion), "", "")
	}

	if len(mf.Mappings) == 0 {
		res.AddError("no_mappings", "mapping file defines no mappings", "", "")
		return res
	}

	seenNames := map[string]struct{}{}

	for i := range mf.Mappings {
		m := &mf.Mappings[i]

		var md diagnostic.Diagnostics

		label := m.Name
		if label == "" {
			label = fmt.Sprintf("#%d", i)
			md.AddError("missing_name", "mapping has no name", label, "")
		} else if _, ok := seenNames[m.Name]; ok {
			md.AddError("duplicate_mapping", fmt.Sprintf("duplicate mapping %q", m.Name), label, "")
		}

		seenNames[m.Name] = struct{}{}

		validateMapping(&md, label, m)

		if !md.HasErrors() {
			md.AddInfo("mapping_summary",
				fmt.Sprintf("maps %d field(s) keyed by %q", len(m.SourceFields()), m.Index), label, "")

			if len(m.Fields) > 0 {
				md.AddInfo("fields_shorthand",
					fmt.Sprintf("%d field pair(s) come from the fields shorthand", len(m.Fields)), label, "")
			}
		}

		res.Merge(md)
	}

	return res
}

// validateMapping validates the fields and index of a single mapping.
func validateMapping(res *diagnostic.Diagnostics, label string, m *Mapping) {
	source, target := m.SourceFields(), m.TargetFields()

	switch {
	case len(source) != len(target):
		res.AddError("length_mismatch",
			fmt.Sprintf("%d source fields but %d target fields", len(source), len(target)), label, "")
	case common.IsEmpty(source):
		res.AddError("empty_fields", "mapping has no fields", label, "")
	}

	validateNames(res, label, "source", source)
	validateNames(res, label, "target", target)

	switch {
	case m.Index == "":
		res.AddError("missing_index", "no index field given", label, "")
	case !common.IsEmpty(target) && common.IndexOf(target, m.Index) < 0:
		res.AddError("index_not_in_target",
			fmt.Sprintf("index %q is not one of the target fields %s", m.Index, strings.Join(target, ", ")),
			label, m.Index, match.Suggest(m.Index, target, maxSuggestions)...)
	}
}

func validateNames(res *diagnostic.Diagnostics, label, side string, names []string) {
	for i, name := range names {
		if name == "" {
			res.AddError("empty_field_name", fmt.Sprintf("%s field %d has an empty name", side, i), label, "")
		}
	}

	for _, dup := range common.Duplicates(names) {
		if dup == "" {
			continue
		}

		res.AddError("duplicate_"+side+"_field", fmt.Sprintf("%s field %q is listed more than once", side, dup), label, dup)
	}
}
