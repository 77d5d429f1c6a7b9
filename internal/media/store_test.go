package media

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskStore_Save(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	t.Run("Saved file keeps extension and content", func(t *testing.T) {
		name, err := store.Save("photo.png", strings.NewReader("image-bytes"))
		require.NoError(t, err)
		assert.Equal(t, ".png", filepath.Ext(name))

		data, err := os.ReadFile(filepath.Join(store.dir, name))
		require.NoError(t, err)
		assert.Equal(t, "image-bytes", string(data))
	})

	t.Run("Same upload name does not collide", func(t *testing.T) {
		first, err := store.Save("photo.png", strings.NewReader("first"))
		require.NoError(t, err)
		second, err := store.Save("photo.png", strings.NewReader("second"))
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})
}
