package calculator

import (
	"strconv"

	"github.com/Elton0803/Pokemon-Tool/internal/model"
)

const (
	// ImmuneBulk 免疫时的坦度
	ImmuneBulk = 999.9
	// ImmuneLabel 免疫时的倍率文本
	ImmuneLabel = "免疫 (×0)"
)

// DefenseRanking 极巨对战防御排名
// attacker 为对手（攻击方）属性，防守方为每条记录自身的属性
func (c *Calculator) DefenseRanking(chart *model.TypeChart, records []model.DefenseRecord, attacker string) []model.ResultRow {
	rows := make([]model.ResultRow, 0, len(records))
	for _, rec := range records {
		mult := Resolve(chart, attacker, rec.Type1, rec.Type2)

		row := model.ResultRow{
			Name:       rec.Name,
			TypeLabel:  DefenseTypeLabel(rec.Type1, rec.Type2),
			Multiplier: mult,
		}
		if mult == 0 {
			row.Score = ImmuneBulk
			row.MultiplierLabel = ImmuneLabel
			row.Immune = true
		} else {
			row.Score = c.bulk(rec.BaseDefense, mult)
			row.MultiplierLabel = FormatMultiplier(mult, 2)
		}
		row.Display = strconv.FormatFloat(row.Score, 'f', 1, 64)

		rows = append(rows, row)
	}
	return rank(rows)
}

func (c *Calculator) bulk(base, mult float64) float64 {
	if c.defenseFormula == DefenseMultiply {
		return base * mult
	}
	return base / mult
}

// DefenseTypeLabel 自身属性文本，如 "草/毒"
func DefenseTypeLabel(type1, type2 string) string {
	if IsNoType(type2) {
		return type1
	}
	return type1 + "/" + type2
}
