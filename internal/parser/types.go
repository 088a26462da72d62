package parser

import (
	"errors"

	"github.com/Elton0803/Pokemon-Tool/internal/model"
)

const (
	// SplitMarker 克制表左上角的标记单元格
	SplitMarker = "攻/守"
	// GenericTypeLabel 克制表的第一个属性列（一般）
	GenericTypeLabel = "一般"
	// SplitScanRows 寻找分割点时扫描的行数
	SplitScanRows = 5
	// genericMinColumn 以 "一般" 判定分割点时要求的最小列号（不含）
	genericMinColumn = 2
)

// ErrNoSplitPoint 前几行内找不到克制表位置，整份文件不可用
var ErrNoSplitPoint = errors.New("無法偵測屬性表位置")

// SplitResult 分割结果
type SplitResult struct {
	HeaderRow   int              `json:"headerRow"`   // 表头所在行（0 起）
	SplitColumn int              `json:"splitColumn"` // 克制表起始列（0 起）
	Data        *model.DataBlock `json:"-"`
	Chart       *model.TypeChart `json:"-"`
}

// Field 逻辑字段
type Field string

const (
	FieldName        Field = "name"         // 寶可夢
	FieldAttackType  Field = "attack_type"  // 屬性
	FieldSTAB        Field = "stab"         // 屬修
	FieldBaseAttack  Field = "base_attack"  // 基礎攻擊
	FieldMoveTier    Field = "move_tier"    // 超級巨/極巨
	FieldType1       Field = "type1"        // 屬性1
	FieldType2       Field = "type2"        // 屬性2
	FieldBaseDefense Field = "base_defense" // 基礎防禦
	FieldMoveType    Field = "move_type"    // 招式屬性
	FieldBaseDPS     Field = "base_dps"     // DPS
)
