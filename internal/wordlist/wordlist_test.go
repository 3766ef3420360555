package wordlist

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNormalizes(t *testing.T) {
	in := "  Kot\nPSY\r\n\n kij \nkos\nco-op\n"
	words, err := Parse(strings.NewReader(in), FilterForLang("pl"))
	require.NoError(t, err)
	assert.Equal(t, []string{"kot", "psy", "kij", "kos"}, words)
}

func TestParseEmptyIsError(t *testing.T) {
	_, err := Parse(strings.NewReader("\n  \n"), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmpty))

	_, err = Parse(strings.NewReader("co-op\n123\n"), FilterForLang("en"))
	assert.True(t, errors.Is(err, ErrEmpty))
}

func TestDictionaryIndexesByRuneLength(t *testing.T) {
	d, err := New("pl", []string{"kot", "żółw", "psy", "ćma", "źdźbło"})
	require.NoError(t, err)

	assert.Equal(t, 5, d.Len())
	assert.Equal(t, []string{"kot", "psy", "ćma"}, d.WithLength(3))
	assert.Equal(t, []string{"żółw"}, d.WithLength(4))
	assert.Empty(t, d.WithLength(9))
	assert.Equal(t, 3, d.MinLength())
	assert.Equal(t, 6, d.MaxLength())
	assert.Equal(t, "pl", d.Lang())
}

func TestDictionaryRejectsEmpty(t *testing.T) {
	_, err := New("pl", nil)
	assert.True(t, errors.Is(err, ErrEmpty))

	_, err = New("pl", []string{"kot", ""})
	assert.Error(t, err)
}

func TestFileLoader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pl.txt")
	require.NoError(t, os.WriteFile(path, []byte("Kot\npsy\n"), 0o644))

	d, err := FileLoader{Path: path, Lang: "pl"}.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"kot", "psy"}, d.Words())
}

func TestFileLoaderMissingFile(t *testing.T) {
	d, err := FileLoader{Path: filepath.Join(t.TempDir(), "nope.txt"), Lang: "pl"}.Load(context.Background())
	require.Error(t, err)
	assert.Nil(t, d)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
