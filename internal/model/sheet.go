package model

import (
	"math"
	"strconv"
	"strings"
)

// CellKind 单元格类型
type CellKind int

const (
	CellBlank  CellKind = iota // 空白
	CellText                   // 文本
	CellNumber                 // 数值
)

// Cell 原始表格单元格（Blank / Text / Number 三选一）
type Cell struct {
	Kind CellKind
	Text string
	Num  float64
}

// BlankCell 空白单元格
func BlankCell() Cell {
	return Cell{Kind: CellBlank}
}

// TextCell 文本单元格
func TextCell(s string) Cell {
	return Cell{Kind: CellText, Text: s}
}

// NumberCell 数值单元格
func NumberCell(v float64) Cell {
	return Cell{Kind: CellNumber, Num: v}
}

// ParseCell 将读取到的原始字符串归类为单元格
// 空白（含纯空格）视为 Blank，可解析为有限浮点数的视为 Number，其余为 Text
func ParseCell(raw string) Cell {
	s := strings.TrimSpace(raw)
	if s == "" {
		return BlankCell()
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(v) && !math.IsInf(v, 0) {
		return NumberCell(v)
	}
	return TextCell(raw)
}

// IsBlank 是否为空白
func (c Cell) IsBlank() bool {
	return c.Kind == CellBlank
}

// String 单元格的文本形式（已去除首尾空白）
func (c Cell) String() string {
	switch c.Kind {
	case CellText:
		return strings.TrimSpace(c.Text)
	case CellNumber:
		return strconv.FormatFloat(c.Num, 'f', -1, 64)
	default:
		return ""
	}
}

// Float 取数值；文本单元格尝试按数字解析（兼容千分位）
func (c Cell) Float() (float64, bool) {
	switch c.Kind {
	case CellNumber:
		return c.Num, true
	case CellText:
		s := strings.ReplaceAll(strings.TrimSpace(c.Text), ",", "")
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return v, true
	default:
		return 0, false
	}
}

// RawSheet 无表头的原始单元格网格
type RawSheet struct {
	Name  string
	Cells [][]Cell
}

// NewRawSheet 由字符串行构建原始网格（各行长度可以不同）
func NewRawSheet(name string, rows [][]string) *RawSheet {
	cells := make([][]Cell, len(rows))
	for r, row := range rows {
		cells[r] = make([]Cell, len(row))
		for c, v := range row {
			cells[r][c] = ParseCell(v)
		}
	}
	return &RawSheet{Name: name, Cells: cells}
}

// Rows 行数
func (s *RawSheet) Rows() int {
	return len(s.Cells)
}

// Width 最大列数
func (s *RawSheet) Width() int {
	w := 0
	for _, row := range s.Cells {
		if len(row) > w {
			w = len(row)
		}
	}
	return w
}

// At 读取单元格，越界返回空白
func (s *RawSheet) At(r, c int) Cell {
	if r < 0 || r >= len(s.Cells) || c < 0 || c >= len(s.Cells[r]) {
		return BlankCell()
	}
	return s.Cells[r][c]
}
