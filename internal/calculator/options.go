package calculator

import (
	"math"
	"strconv"
	"strings"

	"github.com/Elton0803/Pokemon-Tool/internal/model"
)

// TypeOptions 下拉框选项
type TypeOptions struct {
	Defending []string `json:"defending"` // 对手(防守方)属性 1
	Secondary []string `json:"secondary"` // 对手(防守方)属性 2，首项为 "無"
	Attacking []string `json:"attacking"` // 对手(攻击方)属性
}

// attackingExcluded 攻击方下拉框中排除的行
var attackingExcluded = map[string]struct{}{
	"":    {},
	"nan": {},
	"攻/守": {},
}

// Options 根据克制表生成下拉框选项
func Options(chart *model.TypeChart) TypeOptions {
	if chart == nil {
		chart = model.EmptyTypeChart()
	}
	cols := chart.Columns()

	attacking := make([]string, 0, chart.Len())
	for _, k := range chart.RowKeys() {
		if _, skip := attackingExcluded[strings.TrimSpace(k)]; skip {
			continue
		}
		attacking = append(attacking, k)
	}

	return TypeOptions{
		Defending: cols,
		Secondary: append([]string{NoTypeLabel}, cols...),
		Attacking: attacking,
	}
}

// FormatMultiplier 倍率文本，如 "×2.56"、"×1.0"
// 按 places 位小数四舍六入五成双，整数补 ".0"
func FormatMultiplier(m float64, places int) string {
	p := math.Pow(10, float64(places))
	r := math.RoundToEven(m*p) / p
	s := strconv.FormatFloat(r, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return "×" + s
}
