package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jlview/internal/store"
)

func decode(t *testing.T, text string) []store.Field {
	t.Helper()
	fields, ok := store.DecodeObject(text)
	require.True(t, ok)
	return fields
}

func TestLineFieldsPriorityOrderFirst(t *testing.T) {
	fields := decode(t, `{"msg":"hi","ts":"t1","level":"info"}`)

	visible, total := LineFields(fields, []string{"ts", "level"}, nil, 0)
	require.Equal(t, 3, total)
	require.Len(t, visible, 3)
	assert.Equal(t, "ts", visible[0].Key)
	assert.Equal(t, "level", visible[1].Key)
	assert.Equal(t, "msg", visible[2].Key)
}

func TestLineFieldsSkipsAbsentPriorityKeys(t *testing.T) {
	fields := decode(t, `{"msg":"hi"}`)
	visible, total := LineFields(fields, []string{"ts", "msg"}, nil, 0)
	assert.Equal(t, 1, total)
	require.Len(t, visible, 1)
	assert.Equal(t, "msg", visible[0].Key)
}

func TestLineFieldsSuppression(t *testing.T) {
	fields := decode(t, `{"msg":"hi","noise":1,"level":"info"}`)
	visible, total := LineFields(fields, nil, []string{"noise"}, 0)
	assert.Equal(t, 2, total)
	keys := []string{visible[0].Key, visible[1].Key}
	assert.Equal(t, []string{"msg", "level"}, keys)
}

func TestLineFieldsPriorityWinsOverSuppression(t *testing.T) {
	// A field both prioritized and suppressed is emitted through the
	// priority pass; suppression only prunes the remainder.
	fields := decode(t, `{"msg":"hi","level":"info"}`)
	visible, total := LineFields(fields, []string{"level"}, []string{"level"}, 0)
	assert.Equal(t, 2, total)
	assert.Equal(t, "level", visible[0].Key)
	assert.Equal(t, "msg", visible[1].Key)
}

func TestLineFieldsOffsetDropsButCounts(t *testing.T) {
	fields := decode(t, `{"a":1,"b":2,"c":3}`)

	visible, total := LineFields(fields, nil, nil, 1)
	assert.Equal(t, 3, total, "hidden fields still count toward the total")
	require.Len(t, visible, 2)
	assert.Equal(t, "b", visible[0].Key)

	visible, total = LineFields(fields, nil, nil, 5)
	assert.Equal(t, 3, total)
	assert.Empty(t, visible)
}

func TestLineFieldsValueRendering(t *testing.T) {
	fields := decode(t, `{"s":"hi","o":{"n":1}}`)
	visible, _ := LineFields(fields, nil, nil, 0)
	assert.Equal(t, `"hi"`, visible[0].Value)
	assert.Equal(t, `{"n":1}`, visible[1].Value)
}

func TestDetailEntriesShowSuppressedFields(t *testing.T) {
	fields := decode(t, `{"msg":"hi","noise":1}`)
	entries := DetailEntries(fields, nil)
	require.Len(t, entries, 2, "detail screen always shows the whole object")
}

func TestDetailEntriesPriorityOrder(t *testing.T) {
	fields := decode(t, `{"msg":"hi","ts":"t1","level":"info"}`)
	entries := DetailEntries(fields, []string{"ts"})
	require.Len(t, entries, 3)
	assert.Equal(t, "ts", entries[0].Key)
	assert.Equal(t, "msg", entries[1].Key)
	assert.Equal(t, "level", entries[2].Key)
}

func TestPairEntryText(t *testing.T) {
	p := Pair{Key: "msg", Value: `"hi"`}
	assert.Equal(t, `msg : "hi"`, p.Entry())
}
