package reindex_test

import (
	"fmt"
	"sort"
	"sync/atomic"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"record-reindexer/internal/record"
	"record-reindexer/internal/reindex"
)

var (
	featureSource = []string{"id", "isEnabledForUser", "isAvailableForOptIn"}
	featureTarget = []string{"feature", "enabled", "optin"}
)

func featureFlags() []record.Record {
	return []record.Record{
		{
			"id":                  "notes",
			"displayName":         "Test Feature",
			"description":         "A really great test feature",
			"isAvailableForOptIn": false,
			"isEnabledForUser":    true,
			"canToggle":           true,
		},
		{
			"id":                  "mentor",
			"displayName":         "Test Feature",
			"description":         "A really great test feature",
			"isAvailableForOptIn": true,
			"isEnabledForUser":    false,
			"canToggle":           true,
		},
	}
}

func TestReindex_FeatureFlags(t *testing.T) {
	t.Parallel()

	got, err := reindex.Reindex(featureFlags(), featureSource, featureTarget, "feature")
	require.NoError(t, err)

	want := map[string]record.Record{
		"notes":  {"feature": "notes", "enabled": true, "optin": false},
		"mentor": {"feature": "mentor", "enabled": false, "optin": true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Reindex() mismatch (-want +got):\n%s\n%s", diff, spew.Sdump(got))
	}
}

func TestReindex_EmptyInput(t *testing.T) {
	t.Parallel()

	for _, records := range [][]record.Record{nil, {}} {
		got, err := reindex.Reindex(records, featureSource, featureTarget, "optin")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Empty(t, got)
	}
}

func TestReindex_Errors(t *testing.T) {
	t.Parallel()

	records := featureFlags()

	tests := []struct {
		name    string
		source  []string
		target  []string
		index   string
		wantErr error
		msg     string
	}{
		{
			name:    "length mismatch",
			source:  []string{"a", "b"},
			target:  []string{"x"},
			index:   "x",
			wantErr: reindex.ErrInvalidMapping,
			msg:     "2 source fields but 1 target fields",
		},
		{
			name:    "index not a target field",
			source:  []string{"a"},
			target:  []string{"x"},
			index:   "y",
			wantErr: reindex.ErrInvalidIndex,
			msg:     `"y" is not a target field`,
		},
		{
			name:    "no fields",
			source:  nil,
			target:  []string{},
			index:   "x",
			wantErr: reindex.ErrInvalidMapping,
			msg:     "no fields to map",
		},
		{
			name:    "duplicate target",
			source:  []string{"id", "isEnabledForUser"},
			target:  []string{"feature", "feature"},
			index:   "feature",
			wantErr: reindex.ErrInvalidMapping,
			msg:     "duplicate target fields feature",
		},
		{
			name:    "duplicate source",
			source:  []string{"id", "id"},
			target:  []string{"feature", "name"},
			index:   "feature",
			wantErr: reindex.ErrInvalidMapping,
			msg:     "duplicate source fields id",
		},
		{
			name:    "empty name",
			source:  []string{"id", ""},
			target:  []string{"feature", "x"},
			index:   "feature",
			wantErr: reindex.ErrInvalidMapping,
			msg:     "source field 1 has an empty name",
		},
		{
			name:    "empty target name",
			source:  []string{"id", "isEnabledForUser"},
			target:  []string{"", "enabled"},
			index:   "enabled",
			wantErr: reindex.ErrInvalidMapping,
			msg:     "target field 0 has an empty name",
		},
		{
			name:    "mapping checked before index",
			source:  []string{"a", "b"},
			target:  []string{"x"},
			index:   "nope",
			wantErr: reindex.ErrInvalidMapping,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := reindex.Reindex(records, tt.source, tt.target, tt.index)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, got)

			if tt.msg != "" {
				assert.Contains(t, err.Error(), tt.msg)
			}
		})
	}
}

func TestReindex_IndexSuggestion(t *testing.T) {
	t.Parallel()

	_, err := reindex.Reindex(featureFlags(), featureSource, featureTarget, "Feature")
	require.ErrorIs(t, err, reindex.ErrInvalidIndex)
	assert.Contains(t, err.Error(), `did you mean "feature"?`)

	_, err = reindex.Reindex(featureFlags(), featureSource, featureTarget, "displayName")
	require.ErrorIs(t, err, reindex.ErrInvalidIndex)
	assert.NotContains(t, err.Error(), "did you mean")
}

func TestReindex_LastWriteWins(t *testing.T) {
	t.Parallel()

	records := []record.Record{
		{"id": "notes", "isEnabledForUser": true, "isAvailableForOptIn": false},
		{"id": "mentor", "isEnabledForUser": false, "isAvailableForOptIn": true},
		{"id": "notes", "isEnabledForUser": false, "isAvailableForOptIn": true},
	}

	got, err := reindex.Reindex(records, featureSource, featureTarget, "feature")
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, record.Record{"feature": "notes", "enabled": false, "optin": true}, got["notes"])
}

func TestReindex_KeyCountAndOrigin(t *testing.T) {
	t.Parallel()

	records := []record.Record{
		{"n": 1, "v": "a"},
		{"n": 2, "v": "b"},
		{"n": 1.0, "v": "c"},
		{"n": "2", "v": "d"},
		{"n": true, "v": "e"},
	}

	got, err := reindex.Reindex(records, []string{"n", "v"}, []string{"key", "value"}, "key")
	require.NoError(t, err)

	assert.LessOrEqual(t, len(got), len(records))

	origins := make(map[string]bool, len(records))
	for _, rec := range records {
		origins[record.Key(rec["n"])] = true
	}

	for key := range got {
		assert.True(t, origins[key], "key %q does not come from any input record", key)
	}

	// 1 and 1.0 share key "1"; 2 and "2" share key "2"
	keys := make([]string, 0, len(got))
	for k := range got {
		keys = append(keys, k)
	}

	sort.Strings(keys)
	assert.Equal(t, []string{"1", "2", "true"}, keys)
	assert.Equal(t, "c", got["1"]["value"])
	assert.Equal(t, "d", got["2"]["value"])
}

func TestReindex_FieldProjection(t *testing.T) {
	t.Parallel()

	got, err := reindex.Reindex(featureFlags(), featureSource, featureTarget, "feature")
	require.NoError(t, err)

	for key, rec := range got {
		assert.ElementsMatch(t, featureTarget, rec.Fields(), "record %q", key)
	}
}

func TestReindex_MissingFieldsPropagateAbsence(t *testing.T) {
	t.Parallel()

	records := []record.Record{
		{"id": "notes", "isEnabledForUser": true},
		{"isEnabledForUser": false, "isAvailableForOptIn": true},
	}

	got, err := reindex.Reindex(records, featureSource, featureTarget, "feature")
	require.NoError(t, err)
	require.Len(t, got, 2)

	notes := got["notes"]
	require.Contains(t, notes, "optin")
	assert.Nil(t, notes["optin"])

	// an absent index value keys the record under ""
	unnamed, ok := got[""]
	require.True(t, ok)
	assert.Nil(t, unnamed["feature"])
	assert.Equal(t, true, unnamed["optin"])
}

func TestReindex_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	records := featureFlags()
	before := featureFlags()

	got, err := reindex.Reindex(records, featureSource, featureTarget, "feature")
	require.NoError(t, err)

	if diff := cmp.Diff(before, records); diff != "" {
		t.Fatalf("input was modified (-before +after):\n%s", diff)
	}

	// the output shares no maps with the input
	got["notes"]["enabled"] = "changed"
	assert.Equal(t, true, records[0]["isEnabledForUser"])
}

func TestNew_CopiesSpec(t *testing.T) {
	t.Parallel()

	spec := reindex.Spec{
		SourceFields: []string{"id", "isEnabledForUser"},
		TargetFields: []string{"feature", "enabled"},
		IndexField:   "feature",
	}

	rx, err := reindex.New(spec)
	require.NoError(t, err)

	spec.TargetFields[1] = "mutated"
	assert.Equal(t, []string{"feature", "enabled"}, rx.Spec().TargetFields)

	out := rx.Apply(featureFlags())
	assert.Contains(t, out["notes"], "enabled")
}

func TestReindexer_Hooks(t *testing.T) {
	t.Parallel()

	type collision struct {
		key        string
		prev, next any
	}

	var (
		collisions []collision
		missing    []string
	)

	rx, err := reindex.New(reindex.Spec{
		SourceFields: featureSource,
		TargetFields: featureTarget,
		IndexField:   "feature",
	},
		reindex.WithCollisionHook(func(key string, prev, next record.Record) {
			collisions = append(collisions, collision{key, prev["enabled"], next["enabled"]})
		}),
		reindex.WithMissingFieldHook(func(pos int, field string) {
			missing = append(missing, fmt.Sprintf("%d:%s", pos, field))
		}),
	)
	require.NoError(t, err)

	rx.Apply([]record.Record{
		{"id": "notes", "isEnabledForUser": true, "isAvailableForOptIn": false},
		{"id": "notes", "isEnabledForUser": false},
		{"id": "mentor"},
	})

	assert.Equal(t, []collision{{"notes", true, false}}, collisions)
	assert.Equal(t, []string{
		"1:isAvailableForOptIn",
		"2:isEnabledForUser",
		"2:isAvailableForOptIn",
	}, missing)
}

func TestReindexer_ConcurrentApply(t *testing.T) {
	t.Parallel()

	var collisions atomic.Int64

	rx, err := reindex.New(reindex.Spec{
		SourceFields: featureSource,
		TargetFields: featureTarget,
		IndexField:   "feature",
	}, reindex.WithCollisionHook(func(string, record.Record, record.Record) {
		collisions.Add(1)
	}))
	require.NoError(t, err)

	records := append(featureFlags(), featureFlags()...)
	want := rx.Apply(records)
	collisions.Store(0)

	const workers = 16

	var g errgroup.Group

	for i := 0; i < workers; i++ {
		g.Go(func() error {
			got := rx.Apply(records)
			if diff := cmp.Diff(want, got); diff != "" {
				return fmt.Errorf("concurrent Apply mismatch (-want +got):\n%s", diff)
			}

			return nil
		})
	}

	require.NoError(t, g.Wait())
	assert.Equal(t, int64(workers*2), collisions.Load())
}
