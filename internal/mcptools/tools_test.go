package mcptools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Elton0803/Pokemon-Tool/internal/calculator"
	"github.com/Elton0803/Pokemon-Tool/internal/service/dataset"
	"github.com/Elton0803/Pokemon-Tool/internal/service/matchup"
	"github.com/Elton0803/Pokemon-Tool/internal/testutil"
)

func newService(t *testing.T) *matchup.Service {
	t.Helper()

	dir := t.TempDir()
	testutil.WriteWorkbook(t, dir, "Att.xlsx", testutil.AttackRows())
	testutil.WriteWorkbook(t, dir, "DPS.xlsx", testutil.DPSRows())

	reg := dataset.NewRegistry(dataset.Options{DataDir: dir})
	require.NoError(t, reg.LoadAll(context.Background()))
	return matchup.NewService(reg, calculator.NewCalculator(calculator.DefenseDivide))
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestNewServerRegistersTools(t *testing.T) {
	t.Parallel()

	_, tools := NewServer(newService(t), "test")
	names := make([]string, 0, len(tools))
	for _, tool := range tools {
		names = append(names, tool.Name)
	}
	assert.Equal(t, []string{"list_types", "attack_ranking", "defense_ranking", "dps_ranking", "type_weakness"}, names)
}

func TestAttackRankingTool(t *testing.T) {
	t.Parallel()

	res, _, err := attackRankingHandler(newService(t))(context.Background(), nil, SelectionArgs{Type1: "火", Limit: 2})
	require.NoError(t, err)
	require.False(t, res.IsError)

	var rows []rankedRow
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, 1, rows[0].Rank)
	assert.Equal(t, "水箭龜", rows[0].Name)
	assert.Equal(t, "67200", rows[0].Value)
	assert.Equal(t, "100.0%", rows[0].Strength)
	assert.Equal(t, "60.3%", rows[1].Strength)
}

func TestToolErrors(t *testing.T) {
	t.Parallel()

	svc := newService(t)
	ctx := context.Background()

	res, _, err := attackRankingHandler(svc)(ctx, nil, SelectionArgs{})
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Equal(t, "error: type1 is required", resultText(t, res))

	// 防御数据集不存在
	res, _, err = defenseRankingHandler(svc)(ctx, nil, DefenseArgs{Attacker: "火"})
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Equal(t, "error: 未提供檔案", resultText(t, res))

	res, _, err = listTypesHandler(svc)(ctx, nil, ListTypesArgs{Kind: "pvp"})
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestWeaknessAndDPSTools(t *testing.T) {
	t.Parallel()

	svc := newService(t)
	ctx := context.Background()

	res, _, err := weaknessHandler(svc)(ctx, nil, WeaknessArgs{Type1: "水"})
	require.NoError(t, err)
	var weak []rankedRow
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &weak))
	require.Len(t, weak, 4)
	assert.Equal(t, "草", weak[0].Name)
	assert.Equal(t, "×1.6", weak[0].Multiplier)

	res, _, err = dpsRankingHandler(svc)(ctx, nil, SelectionArgs{Type1: "水", Type2: "無"})
	require.NoError(t, err)
	var dps []rankedRow
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &dps))
	require.Len(t, dps, 2)
	assert.Equal(t, "噴火龍", dps[0].Name)
	assert.Empty(t, dps[0].Strength)
}
