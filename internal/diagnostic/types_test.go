package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_Add(t *testing.T) {
	var d Diagnostics

	assert.True(t, d.IsValid())
	require.NoError(t, d.Error())

	d.AddWarning("unsupported_version", `version "2" is not supported`, "", "")
	d.AddInfo("note", "just saying", "features", "")
	assert.True(t, d.IsValid(), "warnings do not invalidate")

	d.AddError("length_mismatch", "3 source fields, 2 target fields", "features", "")
	d.AddError("index_not_in_target", `index "feture" is not a target field`, "features", "feture", "feature")

	assert.True(t, d.HasErrors())
	assert.False(t, d.IsValid())
	assert.Equal(t, []string{"length_mismatch", "index_not_in_target"}, d.Codes())
	assert.Len(t, d.All(), 4)
	assert.Equal(t, SeverityError, d.All()[0].Severity)
	assert.Equal(t, SeverityInfo, d.All()[3].Severity)

	err := d.Error()
	require.Error(t, err)
	assert.Equal(t,
		`[features]: [length_mismatch] 3 source fields, 2 target fields; `+
			`[features] feture: [index_not_in_target] index "feture" is not a target field (did you mean "feature"?)`,
		err.Error())
}

func TestDiagnostics_Merge(t *testing.T) {
	var a, b Diagnostics

	a.AddError("a", "first", "", "")
	b.AddError("b", "second", "", "")
	b.AddWarning("w", "warned", "", "")
	b.AddInfo("i", "noted", "", "")

	a.Merge(b)

	assert.Equal(t, []string{"a", "b"}, a.Codes())
	assert.Len(t, a.Warnings, 1)
	assert.Len(t, a.Infos, 1)
}

func TestDiagnostic_String(t *testing.T) {
	tests := []struct {
		name     string
		diag     Diagnostic
		expected string
	}{
		{"message only", Diagnostic{Message: "plain"}, "plain"},
		{"with code", Diagnostic{Code: "c", Message: "m"}, "[c] m"},
		{"with field", Diagnostic{Field: "id", Message: "m"}, "id: m"},
		{
			"two suggestions",
			Diagnostic{Mapping: "x", Code: "c", Message: "m", Suggestions: []string{"a", "b"}},
			`[x]: [c] m (did you mean "a" or "b"?)`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.diag.String())
		})
	}
}

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(42).String())
}
