package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLite(t *testing.T, path string) *SQLite {
	t.Helper()
	s, err := NewSQLite(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSQLite_SetAndGet(t *testing.T) {
	ctx := context.Background()
	s := newTestSQLite(t, filepath.Join(t.TempDir(), "cache.db"))

	require.NoError(t, s.Set(ctx, "clima-recife", `{"v":1}`))

	v, ok, err := s.Get(ctx, "clima-recife")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `{"v":1}`, v)
}

func TestSQLite_MissingKey(t *testing.T) {
	s := newTestSQLite(t, filepath.Join(t.TempDir(), "cache.db"))

	_, ok, err := s.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSQLite_Overwrite(t *testing.T) {
	ctx := context.Background()
	s := newTestSQLite(t, filepath.Join(t.TempDir(), "cache.db"))

	require.NoError(t, s.Set(ctx, "k", "first"))
	require.NoError(t, s.Set(ctx, "k", "second"))

	v, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "second", v)
}

func TestSQLite_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cache.db")

	first, err := NewSQLite(path)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "clima-são paulo", "payload"))
	require.NoError(t, first.Close())

	second := newTestSQLite(t, path)
	v, ok, err := second.Get(ctx, "clima-são paulo")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "payload", v)
	assert.NoError(t, second.CheckReadiness(ctx))
}

func TestSQLite_ClosedHandleFails(t *testing.T) {
	ctx := context.Background()
	s, err := NewSQLite(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	assert.Error(t, s.Set(ctx, "k", "v"))
	_, _, err = s.Get(ctx, "k")
	assert.Error(t, err)
}
