package calculator

import (
	"strconv"

	"github.com/Elton0803/Pokemon-Tool/internal/model"
)

// DPSRanking DPS 排名：DPS × 倍率，不取整
func (c *Calculator) DPSRanking(chart *model.TypeChart, records []model.DPSRecord, sel model.Selection) []model.ResultRow {
	rows := make([]model.ResultRow, 0, len(records))
	for _, rec := range records {
		mult := Resolve(chart, rec.MoveType, sel.Type1, sel.Type2)
		dps := rec.BaseDPS * mult

		rows = append(rows, model.ResultRow{
			Name:            rec.Name,
			TypeLabel:       rec.MoveType,
			Multiplier:      mult,
			MultiplierLabel: FormatMultiplier(mult, 2),
			Score:           dps,
			Display:         strconv.FormatFloat(dps, 'f', 2, 64),
		})
	}
	return rank(rows)
}
