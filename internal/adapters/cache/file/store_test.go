package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("creates the directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "cache")

		s, err := New(dir)
		require.NoError(t, err)
		assert.Equal(t, dir, s.Dir())
		assert.DirExists(t, dir)
	})

	t.Run("rejects empty directory", func(t *testing.T) {
		_, err := New("")
		assert.Error(t, err)
	})
}

func TestStore_GetPut(t *testing.T) {
	ctx := context.Background()
	s, err := New(t.TempDir())
	require.NoError(t, err)

	_, ok, err := s.Get(ctx, "conferences")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Put(ctx, "conferences", []byte(`[{"title":"A"}]`)))
	require.NoError(t, s.Put(ctx, "conferences", []byte(`[{"title":"B"}]`)))

	got, ok, err := s.Get(ctx, "conferences")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"title":"B"}]`, string(got))

	onDisk, err := os.ReadFile(filepath.Join(s.Dir(), "conferences.json"))
	require.NoError(t, err)
	assert.Equal(t, got, onDisk)
}

func TestStore_UpdatedAt(t *testing.T) {
	ctx := context.Background()
	s, err := New(t.TempDir())
	require.NoError(t, err)

	_, ok, err := s.UpdatedAt(ctx, "conferences")
	require.NoError(t, err)
	assert.False(t, ok)

	written := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)
	require.NoError(t, s.Put(ctx, "conferences", []byte(`[]`)))
	require.NoError(t, os.Chtimes(filepath.Join(s.Dir(), "conferences.json"), written, written))

	updatedAt, ok, err := s.UpdatedAt(ctx, "conferences")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, updatedAt.Equal(written))

	_, _, err = s.UpdatedAt(ctx, "../escape")
	assert.Error(t, err)
}

func TestStore_InvalidKey(t *testing.T) {
	ctx := context.Background()
	s, err := New(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"", "..", "../escape", `a\b`} {
		assert.Error(t, s.Put(ctx, key, []byte(`[]`)), key)
		_, _, err := s.Get(ctx, key)
		assert.Error(t, err, key)
	}
}
