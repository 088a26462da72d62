package calculator

import (
	"strings"

	"github.com/Elton0803/Pokemon-Tool/internal/model"
)

// weaknessExcluded 克制表首列中不是属性的杂项
var weaknessExcluded = map[string]struct{}{
	"":          {},
	"nan":       {},
	"攻/守":       {},
	NoTypeLabel: {},
	"DPS":       {},
	"寶可夢":       {},
}

// WeaknessTable 属性弱点计算：每种攻击属性对指定防守属性组合的倍率
func (c *Calculator) WeaknessTable(chart *model.TypeChart, sel model.Selection) []model.ResultRow {
	if chart == nil {
		return []model.ResultRow{}
	}

	keys := chart.RowKeys()
	rows := make([]model.ResultRow, 0, len(keys))
	for _, atk := range keys {
		atk = strings.TrimSpace(atk)
		if _, skip := weaknessExcluded[atk]; skip {
			continue
		}
		mult := Resolve(chart, atk, sel.Type1, sel.Type2)
		label := FormatMultiplier(mult, 3)
		rows = append(rows, model.ResultRow{
			Name:            atk,
			TypeLabel:       atk,
			Multiplier:      mult,
			MultiplierLabel: label,
			Score:           mult,
			Display:         label,
		})
	}
	return rank(rows)
}
