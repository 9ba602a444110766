package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRepos(t *testing.T) *Repositories {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "test.db")
	repos, err := NewRepositories(context.Background(), Config{DSN: dsn})
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, repos.Close())
	})
	return repos
}

func TestNewRepositories(t *testing.T) {
	repos := setupTestRepos(t)

	assert.NotNil(t, repos.Model)
	assert.NotNil(t, repos.Content)
	assert.NotNil(t, repos.Setting)
	assert.NotNil(t, repos.DB)

	// schema applied, tables exist
	var count int
	err := repos.DB.Get(&count, "SELECT COUNT(*) FROM model_snapshots")
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestNewRepositories_AppliesSchemaTwice(t *testing.T) {
	dsn := "file:" + filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	first, err := NewRepositories(ctx, Config{DSN: dsn})
	require.NoError(t, err)
	require.NoError(t, first.Close())

	// reopening the same file must not fail on existing tables
	second, err := NewRepositories(ctx, Config{DSN: dsn})
	require.NoError(t, err)
	require.NoError(t, second.Close())
}
