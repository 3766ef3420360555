package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/slotword/internal/model"
	"github.com/verte-zerg/slotword/internal/wordlist"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "nested", "slotword.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestImportAndLoadPreservesOrder(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	words := []string{"kot", "żółw", "psy", "kot"}
	require.NoError(t, st.ImportWords(ctx, "pl", "pl.txt", words))

	got, err := st.LoadWords(ctx, "pl")
	require.NoError(t, err)
	assert.Equal(t, words, got)
}

func TestImportReplacesPreviousDictionary(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.ImportWords(ctx, "pl", "old.txt", []string{"a", "b", "c"}))
	require.NoError(t, st.ImportWords(ctx, "pl", "new.txt", []string{"kot"}))
	require.NoError(t, st.ImportWords(ctx, "en", "en.txt", []string{"cat", "dog"}))

	got, err := st.LoadWords(ctx, "pl")
	require.NoError(t, err)
	assert.Equal(t, []string{"kot"}, got)

	infos, err := st.ListDictionaries(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, "en", infos[0].Lang)
	assert.Equal(t, "pl", infos[1].Lang)
	assert.Equal(t, "new.txt", infos[1].Source)
	assert.Equal(t, 1, infos[1].Words)
	assert.False(t, infos[1].ImportedAt.IsZero())
}

func TestImportRejectsEmpty(t *testing.T) {
	st := openTestStore(t)
	err := st.ImportWords(context.Background(), "pl", "x", nil)
	assert.True(t, errors.Is(err, wordlist.ErrEmpty))
}

func TestLoadWordsNotImported(t *testing.T) {
	st := openTestStore(t)
	_, err := st.LoadWords(context.Background(), "de")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotImported))
	assert.Contains(t, errors.FlattenHints(err), "slotword import --lang de")
}

func TestLengthCountsUseRunes(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	require.NoError(t, st.ImportWords(ctx, "pl", "pl.txt", []string{"kot", "łódź", "psy", "źdźbło"}))

	counts, err := st.LengthCounts(ctx, "pl")
	require.NoError(t, err)
	assert.Equal(t, []model.LengthCount{
		{Length: 3, Count: 2},
		{Length: 4, Count: 1},
		{Length: 6, Count: 1},
	}, counts)
}

func TestLoaderBuildsDictionary(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	require.NoError(t, st.ImportWords(ctx, "pl", "pl.txt", []string{"kot", "łódź"}))

	d, err := Loader{Store: st, Lang: "pl"}.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, d.Len())
	assert.Equal(t, 4, d.MaxLength())
	assert.Equal(t, "pl", d.Lang())
}
