package model

import "strings"

// DataBlock 数据区：表头 + 数据行
type DataBlock struct {
	Headers []string
	Rows    [][]Cell
}

// Len 数据行数
func (b *DataBlock) Len() int {
	if b == nil {
		return 0
	}
	return len(b.Rows)
}

// Record 返回第 i 行
func (b *DataBlock) Record(i int) Record {
	return Record{headers: b.Headers, cells: b.Rows[i]}
}

// Record 数据区中的一行，按表头取值
type Record struct {
	headers []string
	cells   []Cell
}

// Get 按列名取值；重复列名取第一个，缺失返回空白
func (r Record) Get(header string) (Cell, bool) {
	header = strings.TrimSpace(header)
	for i, h := range r.headers {
		if h != header {
			continue
		}
		if i < len(r.cells) {
			return r.cells[i], true
		}
		return BlankCell(), true
	}
	return BlankCell(), false
}

// First 首列的值
func (r Record) First() Cell {
	if len(r.cells) == 0 {
		return BlankCell()
	}
	return r.cells[0]
}

// Cells 按列顺序返回所有单元格
func (r Record) Cells() []Cell {
	return r.cells
}

// AttackRecord 攻击数据
type AttackRecord struct {
	Name       string
	AttackType string
	STABFlag   string // 屬修
	BaseAttack float64
	TierFlag   string // 超級巨/極巨
}

// DefenseRecord 防御数据
type DefenseRecord struct {
	Name        string
	Type1       string
	Type2       string
	BaseDefense float64
}

// DPSRecord DPS 数据
type DPSRecord struct {
	Name     string
	MoveType string
	BaseDPS  float64
}
