package lexicon

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(filepath.Join(t.TempDir(), "state", "lexicon.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPutGet(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	runID := s.BeginRun()

	require.NoError(t, s.Put(ctx, Entry{Text: "ма́ма", IPA: "ˈmamɐ", Variant: "phrase", CheckAccent: true}))

	e, found, err := s.Get(ctx, "ма́ма", "phrase", true)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "ˈmamɐ", e.IPA)
	assert.Equal(t, runID, e.RunID)
	assert.True(t, e.CheckAccent)
	assert.NotEmpty(t, e.Key)
	assert.WithinDuration(t, time.Now(), e.CreatedAt, time.Minute)

	_, found, err = s.Get(ctx, "ма́ма", "legacy", true)
	require.NoError(t, err)
	assert.False(t, found, "variants are stored separately")

	_, found, err = s.Get(ctx, "ма́ма", "phrase", false)
	require.NoError(t, err)
	assert.False(t, found, "accent settings are stored separately")
}

func TestPutReplaces(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	s.BeginRun()

	require.NoError(t, s.Put(ctx, Entry{Text: "бік", IPA: "old", Variant: "phrase"}))
	require.NoError(t, s.Put(ctx, Entry{Text: "бік", IPA: "bʲik", Variant: "phrase"}))

	all, err := s.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "bʲik", all[0].IPA)
}

func TestRuns(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	first := s.BeginRun()
	_, err := uuid.Parse(first)
	require.NoError(t, err, "run ids are uuids")
	require.NoError(t, s.Put(ctx, Entry{Text: "ма́ма", IPA: "ˈmamɐ", Variant: "phrase"}))

	second := s.BeginRun()
	require.NotEqual(t, first, second)
	assert.Equal(t, second, s.RunID())
	require.NoError(t, s.Put(ctx, Entry{Text: "сестра́", IPA: "seˈstra", Variant: "phrase"}))
	require.NoError(t, s.Put(ctx, Entry{Text: "бік", IPA: "bʲik", Variant: "phrase"}))

	entries, err := s.Run(ctx, first)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "ма́ма", entries[0].Text)

	entries, err = s.Run(ctx, second)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	all, err := s.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestReopenKeepsEntries(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "lexicon.db")

	s, err := Open(path)
	require.NoError(t, err)
	s.BeginRun()
	require.NoError(t, s.Put(ctx, Entry{Text: "мо́ва", IPA: "ˈmɔʋɐ", Variant: "phrase"}))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	e, found, err := s.Get(ctx, "мо́ва", "phrase", false)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "ˈmɔʋɐ", e.IPA)
}
