package matchup

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Elton0803/Pokemon-Tool/internal/calculator"
	"github.com/Elton0803/Pokemon-Tool/internal/model"
	"github.com/Elton0803/Pokemon-Tool/internal/service/dataset"
	"github.com/Elton0803/Pokemon-Tool/internal/testutil"
)

func newLoadedService(t *testing.T) *Service {
	t.Helper()

	dir := t.TempDir()
	testutil.WriteWorkbook(t, dir, "Att.xlsx", testutil.AttackRows())
	testutil.WriteWorkbook(t, dir, "Def.xlsx", testutil.DefenseRows())
	testutil.WriteWorkbook(t, dir, "DPS.xlsx", testutil.DPSRows())

	reg := dataset.NewRegistry(dataset.Options{DataDir: dir})
	require.NoError(t, reg.LoadAll(context.Background()))
	return NewService(reg, calculator.NewCalculator(calculator.DefenseDivide))
}

func TestAttackRanking(t *testing.T) {
	t.Parallel()

	rows, err := newLoadedService(t).AttackRanking(model.Selection{Type1: "火", Type2: "無"})
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "水箭龜", rows[0].Name)
	assert.Equal(t, 67200.0, rows[0].Score)
	assert.Equal(t, 100.0, rows[0].StrengthPercent)
	assert.Equal(t, "噴火龍", rows[1].Name)
	assert.Equal(t, 40500.0, rows[1].Score)
	assert.Equal(t, 19687.0, rows[2].Score)
}

func TestDefenseRanking(t *testing.T) {
	t.Parallel()

	rows, err := newLoadedService(t).DefenseRanking("火")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	// 草/毒：毒不在列中按 1.0 计，150 / 1.6
	byName := map[string]model.ResultRow{}
	for _, r := range rows {
		byName[r.Name] = r
	}
	assert.InDelta(t, 93.75, byName["妙蛙花"].Score, 1e-9)
	assert.Equal(t, "草/毒", byName["妙蛙花"].TypeLabel)
	assert.InDelta(t, 171/0.625, byName["水箭龜"].Score, 1e-9)
	assert.Equal(t, "水", byName["水箭龜"].TypeLabel)
	assert.Equal(t, "水箭龜", rows[0].Name)
}

func TestDPSRankingAndWeakness(t *testing.T) {
	t.Parallel()

	svc := newLoadedService(t)
	rows, err := svc.DPSRanking(model.Selection{Type1: "草"})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "噴火龍", rows[0].Name)
	assert.Equal(t, "29.60", rows[0].Display)

	weak, err := svc.Weakness(model.Selection{Type1: "草", Type2: "無"})
	require.NoError(t, err)
	require.Len(t, weak, 4)
	assert.Equal(t, "火", weak[0].Name)
	assert.Equal(t, "×1.6", weak[0].MultiplierLabel)
}

func TestOptionsAndMissingDataset(t *testing.T) {
	t.Parallel()

	svc := newLoadedService(t)
	opts, err := svc.Options(model.DatasetDefense)
	require.NoError(t, err)
	assert.Equal(t, []string{"火", "水", "草"}, opts.Defending)
	assert.Equal(t, []string{"一般", "火", "水", "草"}, opts.Attacking)

	empty := NewService(dataset.NewRegistry(dataset.Options{DataDir: t.TempDir()}), calculator.NewCalculator(calculator.DefenseDivide))
	_, err = empty.AttackRanking(model.Selection{Type1: "火"})
	assert.ErrorIs(t, err, dataset.ErrNotLoaded)
}
