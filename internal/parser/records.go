package parser

import (
	"github.com/Elton0803/Pokemon-Tool/internal/model"
)

// ExtractAttackRecords 解析攻击数据；缺少基础攻击的行直接跳过
func (m *FieldMapper) ExtractAttackRecords(block *model.DataBlock) []model.AttackRecord {
	out := make([]model.AttackRecord, 0, block.Len())
	for i := 0; i < block.Len(); i++ {
		rec := block.Record(i)
		base, ok := m.Float(rec, FieldBaseAttack)
		if !ok {
			continue
		}
		out = append(out, model.AttackRecord{
			Name:       m.Name(rec),
			AttackType: m.Text(rec, FieldAttackType),
			STABFlag:   m.Text(rec, FieldSTAB),
			BaseAttack: base,
			TierFlag:   m.Text(rec, FieldMoveTier),
		})
	}
	return out
}

// ExtractDefenseRecords 解析防御数据；缺少基础防御的行直接跳过
func (m *FieldMapper) ExtractDefenseRecords(block *model.DataBlock) []model.DefenseRecord {
	out := make([]model.DefenseRecord, 0, block.Len())
	for i := 0; i < block.Len(); i++ {
		rec := block.Record(i)
		base, ok := m.Float(rec, FieldBaseDefense)
		if !ok {
			continue
		}
		out = append(out, model.DefenseRecord{
			Name:        m.Name(rec),
			Type1:       m.Text(rec, FieldType1),
			Type2:       m.Text(rec, FieldType2),
			BaseDefense: base,
		})
	}
	return out
}

// ExtractDPSRecords 解析 DPS 数据
// 没有招式属性列时，取该行中第一个属于克制表攻击方属性的值
func (m *FieldMapper) ExtractDPSRecords(block *model.DataBlock, chart *model.TypeChart) []model.DPSRecord {
	out := make([]model.DPSRecord, 0, block.Len())
	for i := 0; i < block.Len(); i++ {
		rec := block.Record(i)

		moveType := m.Text(rec, FieldMoveType)
		if moveType == "" && chart != nil {
			for _, cell := range rec.Cells() {
				if v := cell.String(); v != "" && chart.HasRow(v) {
					moveType = v
					break
				}
			}
		}

		base, ok := m.Float(rec, FieldBaseDPS)
		if !ok || moveType == "" {
			continue
		}
		out = append(out, model.DPSRecord{
			Name:     m.Name(rec),
			MoveType: moveType,
			BaseDPS:  base,
		})
	}
	return out
}
