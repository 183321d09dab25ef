package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	ctx := context.Background()
	s := New()

	_, ok, err := s.Get(ctx, "conferences")
	require.NoError(t, err)
	assert.False(t, ok)

	value := []byte(`[]`)
	require.NoError(t, s.Put(ctx, "conferences", value))
	value[0] = 'x'

	got, ok, err := s.Get(ctx, "conferences")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte(`[]`), got)

	got[0] = 'y'
	again, _, _ := s.Get(ctx, "conferences")
	assert.Equal(t, []byte(`[]`), again)
}
