package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Elton0803/Pokemon-Tool/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := New(context.Background(), filepath.Join(t.TempDir(), "data", "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestNewRunsMigrationsIdempotently(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "history.db")
	s, err := New(context.Background(), path)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = New(context.Background(), path)
	require.NoError(t, err)
	require.NoError(t, s.Close())
}

func TestCreateAndListImportLogs(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.CreateImportLog(ctx, model.ImportLog{
		Kind: model.DatasetAttack, Filename: "Att.xlsx", Source: model.SourceLocal,
		FileSize: 1024, FileHash: "abc", Status: ImportStatusLoaded, DataRows: 3, ChartRows: 18,
	})
	require.NoError(t, err)
	id, err := s.CreateImportLog(ctx, model.ImportLog{
		Kind: model.DatasetDefense, Filename: "Def.xlsx", Source: model.SourceUpload,
		Status: ImportStatusError, ErrorMessage: "無法偵測屬性表位置",
	})
	require.NoError(t, err)

	all, err := s.ListImportLogs(ctx, "", 0)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, id, all[0].ID)
	assert.Equal(t, model.DatasetDefense, all[0].Kind)
	assert.Equal(t, model.SourceUpload, all[0].Source)
	assert.Equal(t, "無法偵測屬性表位置", all[0].ErrorMessage)
	assert.False(t, all[0].CreatedAt.IsZero())

	attack, err := s.ListImportLogs(ctx, model.DatasetAttack, 10)
	require.NoError(t, err)
	require.Len(t, attack, 1)
	assert.Equal(t, 18, attack[0].ChartRows)
	assert.Equal(t, int64(1024), attack[0].FileSize)

	limited, err := s.ListImportLogs(ctx, "", 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestListImportLogsEmpty(t *testing.T) {
	t.Parallel()

	logs, err := newTestStore(t).ListImportLogs(context.Background(), model.DatasetDPS, 5)
	require.NoError(t, err)
	assert.NotNil(t, logs)
	assert.Empty(t, logs)
}
