package upload

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Save(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir, "static/uploads")

	url, err := store.Save("foto mouse.png", strings.NewReader("conteudo"))
	require.NoError(t, err)
	assert.Equal(t, "static/uploads/foto_mouse.png", url)

	data, err := os.ReadFile(filepath.Join(dir, "foto_mouse.png"))
	require.NoError(t, err)
	assert.Equal(t, "conteudo", string(data))
}

func TestStore_SaveRejectsTraversal(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "uploads")
	store := NewStore(dir, "static/uploads")

	url, err := store.Save("../../evil.png", strings.NewReader("x"))
	require.NoError(t, err)
	assert.Equal(t, "static/uploads/evil.png", url)

	_, err = os.Stat(filepath.Join(dir, "evil.png"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(root, "evil.png"))
	assert.True(t, os.IsNotExist(err))
}

func TestStore_SaveUnnamed(t *testing.T) {
	store := NewStore(t.TempDir(), "static/uploads")

	url, err := store.Save("???", strings.NewReader("x"))
	require.NoError(t, err)
	assert.Regexp(t, `^static/uploads/upload_[A-Za-z0-9]{10}$`, url)
}
