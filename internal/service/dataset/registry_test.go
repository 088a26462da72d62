package dataset

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Elton0803/Pokemon-Tool/internal/model"
	"github.com/Elton0803/Pokemon-Tool/internal/store"
	"github.com/Elton0803/Pokemon-Tool/internal/testutil"
)

type memoryRecorder struct {
	mu      sync.Mutex
	entries []model.ImportLog
}

func (m *memoryRecorder) CreateImportLog(_ context.Context, entry model.ImportLog) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, entry)
	return int64(len(m.entries)), nil
}

func (m *memoryRecorder) all() []model.ImportLog {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]model.ImportLog(nil), m.entries...)
}

func TestLoadAllFromLocalFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	testutil.WriteWorkbook(t, dir, "Att.xlsx", testutil.AttackRows())
	rec := &memoryRecorder{}

	reg := NewRegistry(Options{DataDir: dir, Recorder: rec})
	require.NoError(t, reg.LoadAll(context.Background()))

	attack, err := reg.Status(model.DatasetAttack)
	require.NoError(t, err)
	assert.Equal(t, model.SourceLocal, attack.Source)
	assert.True(t, strings.HasPrefix(attack.Message, "本地檔 ("), attack.Message)
	assert.True(t, strings.HasSuffix(attack.Message, " 更新)"), attack.Message)
	assert.Empty(t, attack.Error)
	assert.Equal(t, 3, attack.DataRows)
	assert.Equal(t, 4, attack.ChartRows)
	assert.NotEmpty(t, attack.DatasetID)
	require.NotNil(t, attack.LoadedAt)

	defense, err := reg.Status(model.DatasetDefense)
	require.NoError(t, err)
	assert.Equal(t, model.SourceNone, defense.Source)
	assert.Equal(t, "找不到 Def.xlsx", defense.Message)
	assert.Equal(t, "未提供檔案", defense.Error)

	_, err = reg.Get(model.DatasetDefense)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotLoaded))
	assert.Equal(t, "未提供檔案", err.Error())

	ds, err := reg.Get(model.DatasetAttack)
	require.NoError(t, err)
	require.Len(t, ds.Attack, 3)
	assert.Equal(t, "水箭龜", ds.Attack[0].Name)
	assert.Len(t, ds.Hash, 64)

	// 缺失的数据集不写加载记录
	entries := rec.all()
	require.Len(t, entries, 1)
	assert.Equal(t, store.ImportStatusLoaded, entries[0].Status)
	assert.Equal(t, ds.Hash, entries[0].FileHash)
}

func TestUploadWinsOverLocalFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	testutil.WriteWorkbook(t, dir, "DPS.xlsx", testutil.DPSRows())

	reg := NewRegistry(Options{DataDir: dir})
	require.NoError(t, reg.LoadAll(context.Background()))
	local, err := reg.Get(model.DatasetDPS)
	require.NoError(t, err)

	rows := testutil.DPSRows()
	rows = append(rows[:2], rows[3:]...)
	status, err := reg.Upload(context.Background(), model.DatasetDPS, "我的DPS.xlsx", testutil.WorkbookBytes(t, rows))
	require.NoError(t, err)
	assert.Equal(t, model.SourceUpload, status.Source)
	assert.Equal(t, "使用上傳的 我的DPS.xlsx", status.Message)
	assert.Equal(t, 1, status.DataRows)

	uploaded, err := reg.Get(model.DatasetDPS)
	require.NoError(t, err)
	assert.NotEqual(t, local.ID, uploaded.ID)
	// 旧句柄不受影响
	assert.Len(t, local.DPS, 2)
	assert.Len(t, uploaded.DPS, 1)

	require.NoError(t, reg.Reload(context.Background()))
	reloaded, err := reg.Status(model.DatasetDPS)
	require.NoError(t, err)
	assert.Equal(t, model.SourceLocal, reloaded.Source)
	assert.Equal(t, 2, reloaded.DataRows)
}

func TestUploadStructuralErrors(t *testing.T) {
	t.Parallel()

	reg := NewRegistry(Options{DataDir: t.TempDir()})
	ctx := context.Background()

	status, err := reg.Upload(ctx, model.DatasetAttack, "Att.xlsx", testutil.WorkbookBytes(t, [][]interface{}{
		{"寶可夢", "屬性", "基礎攻擊"},
		{"水箭龜", "水", 100},
	}))
	require.NoError(t, err)
	assert.Equal(t, "無法偵測屬性表位置", status.Error)

	status, err = reg.Upload(ctx, model.DatasetDefense, "Def.xlsx", []byte("not a workbook"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(status.Error, "讀取錯誤: "), status.Error)

	_, err = reg.Get(model.DatasetAttack)
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, model.DatasetAttack, loadErr.Kind)
	assert.Equal(t, "無法偵測屬性表位置", loadErr.Message)

	_, err = reg.Upload(ctx, model.DatasetDPS, "DPS.xlsx", nil)
	assert.ErrorIs(t, err, ErrNoFile)
}

func TestUnknownKind(t *testing.T) {
	t.Parallel()

	reg := NewRegistry(Options{DataDir: t.TempDir()})
	_, err := reg.Get("pvp")
	assert.ErrorIs(t, err, ErrUnknownKind)
	_, err = reg.Upload(context.Background(), "pvp", "x.xlsx", []byte{1})
	assert.ErrorIs(t, err, ErrUnknownKind)
	_, err = reg.Status("pvp")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestLoadRecordsToSQLite(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	ctx := context.Background()
	db, err := store.New(ctx, filepath.Join(dir, "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	testutil.WriteWorkbook(t, dir, "Def.xlsx", testutil.DefenseRows())
	reg := NewRegistry(Options{DataDir: dir, Recorder: db})
	require.NoError(t, reg.LoadAll(ctx))
	_, err = reg.Upload(ctx, model.DatasetAttack, "bad.xlsx", []byte("garbage"))
	require.NoError(t, err)

	logs, err := db.ListImportLogs(ctx, "", 10)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, model.DatasetAttack, logs[0].Kind)
	assert.Equal(t, store.ImportStatusError, logs[0].Status)
	assert.Equal(t, model.SourceUpload, logs[0].Source)
	assert.Equal(t, model.DatasetDefense, logs[1].Kind)
	assert.Equal(t, 3, logs[1].DataRows)
	assert.Equal(t, 4, logs[1].ChartRows)
}

func TestStatusesOrderAndChartImage(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	reg := NewRegistry(Options{DataDir: dir})

	statuses := reg.Statuses()
	require.Len(t, statuses, 3)
	for i, kind := range model.DatasetKinds {
		assert.Equal(t, kind, statuses[i].Kind)
	}

	_, ok := reg.ChartImagePath()
	assert.False(t, ok)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "chart.jpg"), []byte{0xff, 0xd8}, 0644))
	p, ok := reg.ChartImagePath()
	require.True(t, ok)
	assert.Equal(t, "chart.jpg", filepath.Base(p))
}
