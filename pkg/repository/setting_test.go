package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingRepository_GetSet(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	value, err := repos.Setting.GetSetting(ctx, SettingDeviceID)
	require.NoError(t, err)
	assert.Empty(t, value, "unset key reads as empty")

	require.NoError(t, repos.Setting.SetSetting(ctx, SettingDeviceID, "living-room-tv"))

	value, err = repos.Setting.GetSetting(ctx, SettingDeviceID)
	require.NoError(t, err)
	assert.Equal(t, "living-room-tv", value)
}

func TestSettingRepository_Set_Overwrites(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	require.NoError(t, repos.Setting.SetSetting(ctx, SettingLastSnapshot, "2025-06-01T00:00:00Z"))
	require.NoError(t, repos.Setting.SetSetting(ctx, SettingLastSnapshot, "2025-06-02T00:00:00Z"))

	value, err := repos.Setting.GetSetting(ctx, SettingLastSnapshot)
	require.NoError(t, err)
	assert.Equal(t, "2025-06-02T00:00:00Z", value)
}

func TestSettingRepository_RecordSnapshot(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	at := time.Date(2025, 6, 2, 19, 30, 0, 0, time.UTC)
	require.NoError(t, repos.Setting.RecordSnapshot(ctx, at))

	value, err := repos.Setting.GetSetting(ctx, SettingLastSnapshot)
	require.NoError(t, err)
	assert.Equal(t, "2025-06-02T19:30:00Z", value)
}
