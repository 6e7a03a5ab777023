package inmemory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_ReadUnprovisioned(t *testing.T) {
	s, err := NewStore(nil)
	require.NoError(t, err)

	_, err = s.Document("users").Read(context.Background())
	assert.Error(t, err)
}

func TestDocument_WriteThenRead(t *testing.T) {
	s, err := NewStore(&Config{DefaultExpiration: 300, CleanupInterval: 600})
	require.NoError(t, err)
	ctx := context.Background()

	doc := s.Document("users")
	require.NoError(t, doc.Write(ctx, []byte(`[]`)))

	data, err := doc.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestDocument_ReadReturnsCopy(t *testing.T) {
	s, err := NewStore(nil)
	require.NoError(t, err)
	ctx := context.Background()

	doc := s.Document("users")
	require.NoError(t, doc.Write(ctx, []byte(`["a"]`)))

	data, err := doc.Read(ctx)
	require.NoError(t, err)
	data[1] = 'X'

	again, err := doc.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, `["a"]`, string(again))
}
