package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rosterhq/rosterd/pkg/common/structs"
	"github.com/rosterhq/rosterd/pkg/document/inmemory"
)

func testUserCollection(t *testing.T, raw string) *collection[structs.User] {
	t.Helper()
	s, err := inmemory.NewStore(nil)
	require.NoError(t, err)

	doc := s.Document("users")
	if raw != "" {
		require.NoError(t, doc.Write(context.Background(), []byte(raw)))
	}
	return newCollection("user", doc, (*structs.User).GetUsername)
}

func TestCollection_LoadAll(t *testing.T) {
	t.Run("unprovisioned document is a storage failure", func(t *testing.T) {
		col := testUserCollection(t, "")
		_, err := col.loadAll(context.Background())
		assert.ErrorIs(t, err, ErrStorageUnavailable)
	})

	t.Run("malformed JSON is a corrupt document", func(t *testing.T) {
		col := testUserCollection(t, `[{"username":`)
		_, err := col.loadAll(context.Background())
		assert.ErrorIs(t, err, ErrCorruptDocument)
	})

	t.Run("non-array JSON is a corrupt document", func(t *testing.T) {
		col := testUserCollection(t, `{"username":"alice"}`)
		_, err := col.loadAll(context.Background())
		assert.ErrorIs(t, err, ErrCorruptDocument)
	})

	t.Run("JSON null is a corrupt document", func(t *testing.T) {
		col := testUserCollection(t, `null`)
		_, err := col.loadAll(context.Background())
		assert.ErrorIs(t, err, ErrCorruptDocument)
	})

	t.Run("wrong field types are a corrupt document", func(t *testing.T) {
		col := testUserCollection(t, `[{"username":42}]`)
		_, err := col.loadAll(context.Background())
		assert.ErrorIs(t, err, ErrCorruptDocument)
	})

	t.Run("empty array loads as empty sequence", func(t *testing.T) {
		col := testUserCollection(t, `[]`)
		records, err := col.loadAll(context.Background())
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("records keep document order", func(t *testing.T) {
		col := testUserCollection(t, `[{"username":"b"},{"username":"a"}]`)
		records, err := col.loadAll(context.Background())
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "b", records[0].Username)
		assert.Equal(t, "a", records[1].Username)
	})
}

func TestCollection_FindByKey(t *testing.T) {
	col := testUserCollection(t, `[]`)
	records := []structs.User{{Username: "alice"}, {Username: "bob"}}

	i, ok := col.findByKey(records, "bob")
	require.True(t, ok)
	assert.Equal(t, 1, i)

	_, ok = col.findByKey(records, "carol")
	assert.False(t, ok)
}

func TestCollection_Insert(t *testing.T) {
	col := testUserCollection(t, `[]`)
	ctx := context.Background()

	rec, err := col.insert(ctx, "alice", structs.User{Username: "alice", Email: "a@x.com"})
	require.NoError(t, err)
	assert.Equal(t, "alice", rec.Username)

	// duplicate key fails and leaves the document unchanged
	_, err = col.insert(ctx, "alice", structs.User{Username: "alice"})
	require.ErrorIs(t, err, ErrAlreadyExists)
	assert.Contains(t, err.Error(), `"alice"`)

	records, err := col.loadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestCollection_RemoveByKey(t *testing.T) {
	col := testUserCollection(t, `[{"username":"alice"},{"username":"bob"}]`)
	ctx := context.Background()

	removed, err := col.removeByKey(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", removed.Username)

	records, err := col.loadAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "bob", records[0].Username)

	_, err = col.removeByKey(ctx, "alice")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCollection_Update(t *testing.T) {
	col := testUserCollection(t, `[{"username":"alice","email":"old@x.com"}]`)
	ctx := context.Background()

	updated, err := col.update(ctx, "alice", func(u *structs.User) {
		u.Email = "new@x.com"
	})
	require.NoError(t, err)
	assert.Equal(t, "new@x.com", updated.Email)

	records, err := col.loadAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "new@x.com", records[0].Email)

	_, err = col.update(ctx, "nonexistent", func(u *structs.User) {})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCollection_RemoveLastRecordKeepsValidDocument(t *testing.T) {
	col := testUserCollection(t, `[{"username":"alice"}]`)
	ctx := context.Background()

	_, err := col.removeByKey(ctx, "alice")
	require.NoError(t, err)

	// the emptied document must still parse as a record sequence
	records, err := col.loadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)
}
