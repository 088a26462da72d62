package calculator

import (
	"math"
	"strconv"
	"strings"

	"github.com/Elton0803/Pokemon-Tool/internal/model"
)

const (
	// STABBonus 屬修加成
	STABBonus = 1.2
	// GMaxMovePower 超級巨招式威力
	GMaxMovePower = 450.0
	// DMaxMovePower 極巨招式威力
	DMaxMovePower = 350.0
)

// AttackRanking 极巨攻击输出排名
// 输出 = 基礎攻擊 × 屬修 × 招式威力 × 倍率，取整后排序
func (c *Calculator) AttackRanking(chart *model.TypeChart, records []model.AttackRecord, sel model.Selection) []model.ResultRow {
	rows := make([]model.ResultRow, 0, len(records))
	for _, rec := range records {
		stab := 1.0
		if strings.Contains(strings.ToUpper(rec.STABFlag), "Y") {
			stab = STABBonus
		}
		power := DMaxMovePower
		if strings.Contains(strings.ToUpper(rec.TierFlag), "G") {
			power = GMaxMovePower
		}

		mult := Resolve(chart, rec.AttackType, sel.Type1, sel.Type2)
		output := math.Trunc(rec.BaseAttack * stab * power * mult)

		rows = append(rows, model.ResultRow{
			Name:            rec.Name,
			TypeLabel:       rec.AttackType,
			Multiplier:      mult,
			MultiplierLabel: FormatMultiplier(mult, 2),
			Score:           output,
			Display:         strconv.FormatFloat(output, 'f', 0, 64),
		})
	}

	rows = rank(rows)
	fillStrengthPercent(rows)
	return rows
}

// fillStrengthPercent 强度% = 输出 / 最高输出 × 100；最高输出不大于 0 时为 0
func fillStrengthPercent(rows []model.ResultRow) {
	maxScore := 0.0
	for _, r := range rows {
		if r.Score > maxScore {
			maxScore = r.Score
		}
	}
	for i := range rows {
		if maxScore > 0 {
			rows[i].StrengthPercent = rows[i].Score / maxScore * 100
		} else {
			rows[i].StrengthPercent = 0
		}
	}
}
