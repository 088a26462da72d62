package parser

import (
	"fmt"

	"github.com/Elton0803/Pokemon-Tool/internal/model"
)

// Split 定位数据区与克制表并分别建表
//
// 在前 SplitScanRows 行内逐行从左到右扫描，第一个等于 "攻/守"，
// 或在第 3 列之后等于 "一般" 的单元格即为分割点，所在行作为两部分共同的表头行。
func Split(sheet *model.RawSheet) (*SplitResult, error) {
	if sheet == nil {
		return nil, ErrNoSplitPoint
	}

	headerRow, splitCol, ok := FindSplitPoint(sheet)
	if !ok {
		if sheet.Name != "" {
			return nil, fmt.Errorf("sheet %s: %w", sheet.Name, ErrNoSplitPoint)
		}
		return nil, ErrNoSplitPoint
	}

	return &SplitResult{
		HeaderRow:   headerRow,
		SplitColumn: splitCol,
		Data:        buildDataBlock(sheet, headerRow, splitCol),
		Chart:       buildTypeChart(sheet, headerRow, splitCol),
	}, nil
}

// FindSplitPoint 返回分割点所在的行与列
func FindSplitPoint(sheet *model.RawSheet) (row, col int, ok bool) {
	rows := sheet.Rows()
	if rows > SplitScanRows {
		rows = SplitScanRows
	}
	width := sheet.Width()

	for r := 0; r < rows; r++ {
		for c := 0; c < width; c++ {
			if isSplitMarker(sheet.At(r, c), c) {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

func isSplitMarker(cell model.Cell, col int) bool {
	if cell.Kind != model.CellText {
		return false
	}
	v := cell.String()
	if v == SplitMarker {
		return true
	}
	// 避免数据区里零星出现的 "一般" 被误判
	return v == GenericTypeLabel && col > genericMinColumn
}

// buildDataBlock 列 [0, splitCol)，去掉整行空白
func buildDataBlock(sheet *model.RawSheet, headerRow, splitCol int) *model.DataBlock {
	block := &model.DataBlock{
		Headers: normalizeHeaders(headerTexts(sheet, headerRow, 0, splitCol)),
		Rows:    [][]model.Cell{},
	}

	for r := headerRow + 1; r < sheet.Rows(); r++ {
		row := sliceRow(sheet, r, 0, splitCol)
		if allBlank(row) {
			continue
		}
		block.Rows = append(block.Rows, row)
	}
	return block
}

// buildTypeChart 列 [splitCol, width)，首列作为攻击方属性
func buildTypeChart(sheet *model.RawSheet, headerRow, splitCol int) *model.TypeChart {
	width := sheet.Width()
	if splitCol >= width {
		return model.EmptyTypeChart()
	}

	indexName := sheet.At(headerRow, splitCol).String()
	builder := model.NewTypeChartBuilder(indexName, headerTexts(sheet, headerRow, splitCol+1, width))

	for r := headerRow + 1; r < sheet.Rows(); r++ {
		values := sliceRow(sheet, r, splitCol+1, width)
		if allBlank(values) {
			continue
		}
		// 重复的攻击方属性只保留第一次出现的行
		builder.Add(sheet.At(r, splitCol).String(), values)
	}
	return builder.Build()
}

func headerTexts(sheet *model.RawSheet, row, from, to int) []string {
	if to < from {
		return []string{}
	}
	out := make([]string, 0, to-from)
	for c := from; c < to; c++ {
		out = append(out, sheet.At(row, c).String())
	}
	return out
}

func sliceRow(sheet *model.RawSheet, row, from, to int) []model.Cell {
	if to < from {
		return []model.Cell{}
	}
	out := make([]model.Cell, 0, to-from)
	for c := from; c < to; c++ {
		out = append(out, sheet.At(row, c))
	}
	return out
}

func allBlank(cells []model.Cell) bool {
	for _, c := range cells {
		if !c.IsBlank() {
			return false
		}
	}
	return true
}
