package i18n_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	i18n "github.com/lifei6671/i18nproject"
)

func changes(r *i18n.MemoryResource) *[]string {
	var out []string
	r.AddChangeListener(func(ev i18n.ResourceEvent) {
		for _, c := range i18n.FlattenChanges(ev) {
			out = append(out, c.Kind.String()+":"+c.Key)
		}
	})
	return &out
}

func TestMemoryResource(t *testing.T) {
	ctx := context.Background()
	r := mem("en", map[string]string{"a": "A"})
	got := changes(r)

	require.NoError(t, r.UpdateText(ctx, "a", "A", false))
	require.NoError(t, r.UpdateText(ctx, "a", "A2", false))
	require.NoError(t, r.UpdateText(ctx, "b", "B", false))
	require.NoError(t, r.UpdateKey(ctx, "b", "c"))
	require.NoError(t, r.Remove(ctx, "a"))

	assert.Equal(t, []string{"modify:a", "add:b", "remove:b", "add:c", "remove:a"}, *got)
	assert.Equal(t, []string{"c"}, r.Keys())
	assert.True(t, r.Dirty())

	assert.ErrorIs(t, r.Remove(ctx, "a"), i18n.ErrKeyNotFound)
	assert.ErrorIs(t, r.UpdateKey(ctx, "a", "x"), i18n.ErrKeyNotFound)
	require.NoError(t, r.UpdateText(ctx, "d", "D", false))
	assert.ErrorIs(t, r.UpdateKey(ctx, "c", "d"), i18n.ErrKeyExists)
}

func TestMemoryResource_RemoveListener(t *testing.T) {
	r := mem("en", nil)
	calls := 0
	remove := r.AddChangeListener(func(i18n.ResourceEvent) { calls++ })
	require.NoError(t, r.UpdateText(context.Background(), "a", "A", false))
	remove()
	require.NoError(t, r.UpdateText(context.Background(), "b", "B", false))
	assert.Equal(t, 1, calls)
}

func TestMemoryResource_ReadOnly(t *testing.T) {
	ctx := context.Background()
	r := mem("en", map[string]string{"a": "A"}, i18n.WithReadOnly(true))
	assert.True(t, r.ReadOnly())
	assert.ErrorIs(t, r.UpdateText(ctx, "a", "B", false), i18n.ErrReadOnly)
	assert.ErrorIs(t, r.UpdateKey(ctx, "a", "b"), i18n.ErrReadOnly)
	assert.ErrorIs(t, r.Remove(ctx, "a"), i18n.ErrReadOnly)
	assert.Equal(t, map[string]string{"a": "A"}, r.Snapshot())
}

func TestMemoryResource_Commit(t *testing.T) {
	ctx := context.Background()
	var gotDirty []string
	var gotTexts map[string]string
	r := mem("en", map[string]string{"a": "A", "b": "B"}, i18n.WithCommitter(i18n.CommitterFunc(
		func(_ context.Context, _ i18n.Language, texts map[string]string, dirty []string) error {
			gotTexts, gotDirty = texts, dirty
			return nil
		})))

	require.NoError(t, r.CommitChanges(ctx))
	assert.Nil(t, gotDirty, "nothing to commit")

	require.NoError(t, r.UpdateText(ctx, "c", "C", false))
	require.NoError(t, r.Remove(ctx, "a"))
	require.NoError(t, r.CommitChanges(ctx))
	assert.Equal(t, []string{"a", "c"}, gotDirty)
	assert.Equal(t, map[string]string{"b": "B", "c": "C"}, gotTexts)
	assert.False(t, r.Dirty())

	require.NoError(t, r.UpdateText(ctx, "d", "D", true))
	assert.Equal(t, []string{"d"}, gotDirty)
}

func TestMemoryResource_Replace(t *testing.T) {
	r := mem("en", map[string]string{"a": "A", "b": "B"})
	var events []i18n.ResourceEvent
	r.AddChangeListener(func(ev i18n.ResourceEvent) { events = append(events, ev) })

	r.Replace(map[string]string{"b": "B2", "c": "C"})

	require.Len(t, events, 1)
	var got []string
	for _, c := range i18n.FlattenChanges(events[0]) {
		got = append(got, c.Kind.String()+":"+c.Key)
	}
	assert.Equal(t, []string{"remove:a", "modify:b", "add:c"}, got)
	assert.False(t, r.Dirty())

	r.Replace(map[string]string{"b": "B2", "c": "C"})
	assert.Len(t, events, 1)
}

func TestMemoryResource_ReplaceKeepsUncommittedEdits(t *testing.T) {
	ctx := context.Background()
	r := mem("en", map[string]string{"a": "A", "b": "B", "c": "C"})
	require.NoError(t, r.UpdateText(ctx, "a", "A-edited", false))
	require.NoError(t, r.Remove(ctx, "b"))
	require.NoError(t, r.UpdateText(ctx, "n", "N-new", false))

	kept := r.Replace(map[string]string{"a": "A-disk", "b": "B-disk", "c": "C-disk", "d": "D"})
	assert.Equal(t, []string{"a", "b", "n"}, kept)
	assert.Equal(t, map[string]string{
		"a": "A-edited",
		"c": "C-disk",
		"d": "D",
		"n": "N-new",
	}, r.Snapshot())
	assert.Equal(t, []string{"a", "b", "n"}, r.DirtyKeys())

	require.NoError(t, r.CommitChanges(ctx))
	assert.Empty(t, r.Replace(map[string]string{"a": "A-disk"}))
	assert.Equal(t, map[string]string{"a": "A-disk"}, r.Snapshot())
}

func TestMemoryResource_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := mem("en", nil)
	assert.ErrorIs(t, r.UpdateText(ctx, "a", "A", false), context.Canceled)
	assert.Empty(t, r.Keys())
}
