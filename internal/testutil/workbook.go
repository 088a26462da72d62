// Package testutil 测试用的工作簿构建工具
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// AttackRows 攻击数据表：左侧数据，右侧克制表
func AttackRows() [][]interface{} {
	return [][]interface{}{
		{"寶可夢", "屬性", "屬修", "基礎攻擊", "超級巨/極巨", "攻/守", "火", "水", "草"},
		{"水箭龜", "水", "Y", 100, "D", "一般", 1, 1, 1},
		{"噴火龍", "火", "Y", 120, "G", "火", 0.625, 0.625, 1.6},
		{"妙蛙花", "草", "N", 90, "D", "水", 1.6, 0.625, 0.625},
		{"", "", "", "", "", "草", 0.625, 1.6, 0.625},
	}
}

// DefenseRows 防御数据表
func DefenseRows() [][]interface{} {
	return [][]interface{}{
		{"寶可夢", "屬性1", "屬性2", "基礎防禦", "攻/守", "火", "水", "草"},
		{"妙蛙花", "草", "毒", 150, "一般", 1, 1, 1},
		{"水箭龜", "水", "", 171, "火", 0.625, 0.625, 1.6},
		{"噴火龍", "火", "飛行", 152, "水", 1.6, 0.625, 0.625},
		{"", "", "", "", "草", 0.625, 1.6, 0.625},
	}
}

// DPSRows DPS 数据表，使用 "招式屬性" 列
func DPSRows() [][]interface{} {
	return [][]interface{}{
		{"寶可夢", "招式屬性", "DPS", "攻/守", "火", "水", "草"},
		{"噴火龍", "火", 18.5, "一般", 1, 1, 1},
		{"暴鯉龍", "水", 16.2, "火", 0.625, 0.625, 1.6},
		{"", "", "", "水", 1.6, 0.625, 0.625},
		{"", "", "", "草", 0.625, 1.6, 0.625},
	}
}

// Workbook 以第一个工作表写入 rows
func Workbook(t *testing.T, rows [][]interface{}) *excelize.File {
	t.Helper()

	wb := excelize.NewFile()
	sheet := wb.GetSheetName(wb.GetActiveSheetIndex())
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("CoordinatesToCellName failed: %v", err)
		}
		if err := wb.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("SetSheetRow row %d failed: %v", i+1, err)
		}
	}
	return wb
}

// WorkbookBytes 工作簿序列化后的字节
func WorkbookBytes(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()

	buf, err := Workbook(t, rows).WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer failed: %v", err)
	}
	return buf.Bytes()
}

// WriteWorkbook 把工作簿写到 dir/name
func WriteWorkbook(t *testing.T, dir, name string, rows [][]interface{}) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, WorkbookBytes(t, rows), 0644); err != nil {
		t.Fatalf("write %s failed: %v", path, err)
	}
	return path
}
