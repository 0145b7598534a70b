package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quirklo/storefront/internal/adapter/storage"
	"github.com/quirklo/storefront/internal/core/domain"
)

func snapshotPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "cart.json")
}

func TestCartFileRoundTrip(t *testing.T) {
	path := snapshotPath(t)
	f := storage.NewCartFile(path)

	lines := []domain.CartLine{
		{
			VariantID: "5_S", ProductID: "5", Name: "Abstract Print Hoodie",
			Price: 65.99, Quantity: 2, Image: "img5", Size: "S",
		},
		{
			VariantID: "1_M", ProductID: "1", Name: "Neon Dream Tee",
			Price: 39.99, Quantity: 1, Image: "img1", Size: "M",
		},
	}
	require.NoError(t, f.Save(lines))

	// A fresh adapter over the same path models a process restart.
	reloaded, err := storage.NewCartFile(path).Load()
	require.NoError(t, err)
	assert.Equal(t, lines, reloaded)
}

func TestCartFileLoad(t *testing.T) {
	t.Run("MissingFileIsEmptyCart", func(t *testing.T) {
		f := storage.NewCartFile(snapshotPath(t))

		lines, err := f.Load()
		require.NoError(t, err)
		assert.Empty(t, lines)
	})

	t.Run("MalformedContentReturnsError", func(t *testing.T) {
		path := snapshotPath(t)
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

		_, err := storage.NewCartFile(path).Load()
		require.Error(t, err)
	})

	t.Run("EmptyArrayIsEmptyCart", func(t *testing.T) {
		path := snapshotPath(t)
		require.NoError(t, os.WriteFile(path, []byte("[]"), 0o644))

		lines, err := storage.NewCartFile(path).Load()
		require.NoError(t, err)
		assert.Empty(t, lines)
	})
}

func TestCartFileSaveCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "cart.json")
	f := storage.NewCartFile(path)

	require.NoError(t, f.Save([]domain.CartLine{
		{VariantID: "1_M", ProductID: "1", Name: "Tee", Price: 1, Quantity: 1, Size: "M"},
	}))

	_, err := os.Stat(path)
	require.NoError(t, err)
}

func TestCartFileClear(t *testing.T) {
	path := snapshotPath(t)
	f := storage.NewCartFile(path)
	require.NoError(t, f.Save([]domain.CartLine{
		{VariantID: "1_M", ProductID: "1", Name: "Tee", Price: 1, Quantity: 1, Size: "M"},
	}))

	require.NoError(t, f.Clear())

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Clearing again is fine.
	require.NoError(t, f.Clear())
}
