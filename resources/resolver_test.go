package resources

import (
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveVocabId_Embedded(t *testing.T) {
	rsrcs, err := ResolveVocabId("demo-vocab", "")
	require.NoError(t, err)
	for _, name := range []string{
		"vocab.json", "merges.txt", "special_config.json",
	} {
		entry, ok := (*rsrcs)[name]
		require.True(t, ok, "missing %s", name)
		assert.NotEmpty(t, *entry.Data)
	}
}

func TestResolveVocabId_LocalDir(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"vocab.json", "merges.txt"} {
		require.NoError(t, os.WriteFile(
			path.Join(dir, name), []byte("{}"), 0644))
	}
	rsrcs, err := ResolveVocabId(dir, "")
	require.NoError(t, err)
	// The optional special_config.json is simply skipped.
	assert.Len(t, *rsrcs, 2)
}

func TestResolveVocabId_Missing(t *testing.T) {
	_, err := ResolveVocabId(path.Join(t.TempDir(), "nonexistent"), "")
	require.Error(t, err)
}

func TestGetEmbeddedResource(t *testing.T) {
	assert.NotNil(t, GetEmbeddedResource("demo-vocab/vocab.json"))
	assert.Nil(t, GetEmbeddedResource("demo-vocab/missing.json"))
}

func TestReadLocal(t *testing.T) {
	filePath := path.Join(t.TempDir(), "corpus.txt")
	require.NoError(t, os.WriteFile(filePath, []byte("tall taller"), 0644))
	data, err := ReadLocal(filePath)
	require.NoError(t, err)
	assert.Equal(t, "tall taller", string(*data))
}
