package calculator

import (
	"strings"

	"github.com/Elton0803/Pokemon-Tool/internal/model"
)

// NeutralMultiplier 查不到时的中性倍率
const NeutralMultiplier = 1.0

// NoTypeLabel 属性 2 下拉框中的 "無"
const NoTypeLabel = "無"

// noSecondType 视为 "没有第二属性" 的写法
var noSecondType = map[string]struct{}{
	"":          {},
	"nan":       {},
	"None":      {},
	NoTypeLabel: {},
}

// IsNoType 是否表示没有属性
func IsNoType(s string) bool {
	_, ok := noSecondType[strings.TrimSpace(s)]
	return ok
}

// Resolve 查询攻击方属性对防守方属性组合的倍率
// 任何查不到或单元格异常的情况都返回 1.0，不会报错
func Resolve(chart *model.TypeChart, attacking, defending1, defending2 string) float64 {
	if chart == nil {
		return NeutralMultiplier
	}

	atk := strings.TrimSpace(attacking)
	d1 := strings.TrimSpace(defending1)
	if isBlankType(atk) || isBlankType(d1) {
		return NeutralMultiplier
	}
	if !chart.HasRow(atk) {
		return NeutralMultiplier
	}

	mult1 := NeutralMultiplier
	if chart.HasColumn(d1) {
		v, ok := chartValue(chart, atk, d1)
		if !ok {
			return NeutralMultiplier
		}
		mult1 = v
	}

	mult2 := NeutralMultiplier
	if d2 := strings.TrimSpace(defending2); !IsNoType(d2) && chart.HasColumn(d2) {
		v, ok := chartValue(chart, atk, d2)
		if !ok {
			return NeutralMultiplier
		}
		mult2 = v
	}

	return mult1 * mult2
}

func chartValue(chart *model.TypeChart, row, col string) (float64, bool) {
	cell, ok := chart.Cell(row, col)
	if !ok {
		return 0, false
	}
	return cell.Float()
}

func isBlankType(s string) bool {
	return s == "" || s == "nan"
}
