package model

import "strings"

// TypeChart 属性克制表：行为攻击方属性，列为防守方属性
// 构建完成后只读，可被多个查询并发读取
type TypeChart struct {
	indexName string
	rowKeys   []string
	columns   []string
	colIndex  map[string]int
	rows      map[string][]Cell
}

// TypeChartBuilder 克制表构建器
type TypeChartBuilder struct {
	chart *TypeChart
	// 原始列位置 -> 去重后的列序号，-1 表示该列被丢弃
	slot []int
}

// NewTypeChartBuilder 以表头创建构建器
// headers 为克制表区域除首列外的列名；空白列名和重复列名（保留首个）会被丢弃
func NewTypeChartBuilder(indexName string, headers []string) *TypeChartBuilder {
	chart := &TypeChart{
		indexName: strings.TrimSpace(indexName),
		colIndex:  make(map[string]int, len(headers)),
		rows:      make(map[string][]Cell),
	}
	slot := make([]int, len(headers))
	for i, h := range headers {
		h = strings.TrimSpace(h)
		if h == "" {
			slot[i] = -1
			continue
		}
		if _, dup := chart.colIndex[h]; dup {
			slot[i] = -1
			continue
		}
		chart.colIndex[h] = len(chart.columns)
		slot[i] = len(chart.columns)
		chart.columns = append(chart.columns, h)
	}
	return &TypeChartBuilder{chart: chart, slot: slot}
}

// Add 追加一行；key 已存在时保持首次出现的行并返回 false
func (b *TypeChartBuilder) Add(key string, values []Cell) bool {
	key = strings.TrimSpace(key)
	if key == "" {
		return false
	}
	if _, exists := b.chart.rows[key]; exists {
		return false
	}
	row := make([]Cell, len(b.chart.columns))
	for i, v := range values {
		if i >= len(b.slot) || b.slot[i] < 0 {
			continue
		}
		row[b.slot[i]] = v
	}
	b.chart.rows[key] = row
	b.chart.rowKeys = append(b.chart.rowKeys, key)
	return true
}

// Build 返回构建好的克制表，之后不应再调用 Add
func (b *TypeChartBuilder) Build() *TypeChart {
	return b.chart
}

// EmptyTypeChart 空克制表，所有查询都得到中性倍率
func EmptyTypeChart() *TypeChart {
	return NewTypeChartBuilder("", nil).Build()
}

// IndexName 首列表头（通常为 "攻/守"）
func (t *TypeChart) IndexName() string {
	return t.indexName
}

// RowKeys 攻击方属性（按原始顺序）
func (t *TypeChart) RowKeys() []string {
	return append([]string(nil), t.rowKeys...)
}

// Columns 防守方属性（按原始顺序）
func (t *TypeChart) Columns() []string {
	return append([]string(nil), t.columns...)
}

// HasRow 是否存在该攻击方属性
func (t *TypeChart) HasRow(key string) bool {
	_, ok := t.rows[key]
	return ok
}

// HasColumn 是否存在该防守方属性
func (t *TypeChart) HasColumn(key string) bool {
	_, ok := t.colIndex[key]
	return ok
}

// Cell 读取 (攻击方, 防守方) 单元格
func (t *TypeChart) Cell(row, col string) (Cell, bool) {
	values, ok := t.rows[row]
	if !ok {
		return Cell{}, false
	}
	idx, ok := t.colIndex[col]
	if !ok {
		return Cell{}, false
	}
	return values[idx], true
}

// Len 行数
func (t *TypeChart) Len() int {
	return len(t.rowKeys)
}

// Empty 是否为空表
func (t *TypeChart) Empty() bool {
	return len(t.rowKeys) == 0
}
