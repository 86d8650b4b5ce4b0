package store

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func TestPutGet_Found(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, Entry{Length: 5, Sum: 19, Found: true, Values: []int{1, 2, 3, 5, 8}}))

	e, ok, err := s.Get(ctx, 5, 19)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, e.Found)
	assert.Equal(t, []int{1, 2, 3, 5, 8}, e.Values)
	assert.NotEmpty(t, e.CreatedAt)
}

func TestPutGet_NotFound(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, Entry{Length: 5, Sum: 30}))

	e, ok, err := s.Get(ctx, 5, 30)
	require.NoError(t, err)
	require.True(t, ok)
	assert.False(t, e.Found)
	assert.Nil(t, e.Values)
}

func TestGet_Miss(t *testing.T) {
	s := newTestStore(t)
	_, ok, err := s.Get(context.Background(), 9, 99)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPut_Replaces(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, Entry{Length: 2, Sum: 3}))
	require.NoError(t, s.Put(ctx, Entry{Length: 2, Sum: 3, Found: true, Values: []int{1, 2}}))

	e, ok, err := s.Get(ctx, 2, 3)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, e.Found)

	all, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestListAndClear(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, Entry{Length: 5, Sum: 31, Found: true, Values: []int{1, 2, 4, 8, 16}}))
	require.NoError(t, s.Put(ctx, Entry{Length: 2, Sum: 3, Found: true, Values: []int{1, 2}}))
	require.NoError(t, s.Put(ctx, Entry{Length: 5, Sum: 14}))

	all, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, [2]int{2, 3}, [2]int{all[0].Length, all[0].Sum})
	assert.Equal(t, [2]int{5, 14}, [2]int{all[1].Length, all[1].Sum})
	assert.Equal(t, [2]int{5, 31}, [2]int{all[2].Length, all[2].Sum})

	n, err := s.Clear(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	all, err = s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestReopenPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")
	ctx := context.Background()

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Put(ctx, Entry{Length: 2, Sum: 3, Found: true, Values: []int{1, 2}}))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()
	e, ok, err := s.Get(ctx, 2, 3)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []int{1, 2}, e.Values)
}

func TestCorruptEntry(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.db.ExecContext(ctx, `INSERT INTO outcomes (target_length, target_sum, found, chain) VALUES (2, 3, 1, '1 x')`)
	require.NoError(t, err)

	_, _, err = s.Get(ctx, 2, 3)
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestOpen_DriverFailure(t *testing.T) {
	boom := errors.New("boom")
	orig := openDB
	openDB = func(string, string) (*sql.DB, error) { return nil, boom }
	defer func() { openDB = orig }()

	_, err := Open(filepath.Join(t.TempDir(), "cache.db"))
	assert.ErrorIs(t, err, boom)
}

func TestEncodeDecode(t *testing.T) {
	assert.Equal(t, "1 2 4", encodeValues([]int{1, 2, 4}))
	assert.Equal(t, "", encodeValues(nil))

	vs, err := decodeValues("1 2 4")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 4}, vs)

	vs, err = decodeValues("")
	require.NoError(t, err)
	assert.Nil(t, vs)
}
