package excel_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/Elton0803/Pokemon-Tool/internal/calculator"
	"github.com/Elton0803/Pokemon-Tool/internal/parser"
	"github.com/Elton0803/Pokemon-Tool/internal/service/excel"
)

func TestReadRawSheetSplitsAttackWorkbook(t *testing.T) {
	t.Parallel()

	wb := buildAttackWorkbook(t)
	buf, err := wb.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer failed: %v", err)
	}

	sheet, err := excel.ReadRawSheet(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("ReadRawSheet failed: %v", err)
	}
	if got, want := sheet.Name, "Sheet1"; got != want {
		t.Fatalf("sheet name=%q, want %q", got, want)
	}

	res, err := parser.Split(sheet)
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}
	if res.HeaderRow != 0 || res.SplitColumn != 5 {
		t.Fatalf("split point=(%d,%d), want (0,5)", res.HeaderRow, res.SplitColumn)
	}
	if got, want := res.Data.Len(), 2; got != want {
		t.Fatalf("data rows=%d, want %d", got, want)
	}
	if got, want := strings.Join(res.Chart.RowKeys(), ","), "一般,火,水"; got != want {
		t.Fatalf("chart rows=%q, want %q", got, want)
	}

	// 百分比格式的单元格按原始值读取
	if got := calculator.Resolve(res.Chart, "水", "火", "無"); got != 2.56 {
		t.Fatalf("Resolve(水→火)=%v, want 2.56", got)
	}

	records := parser.NewFieldMapper().ExtractAttackRecords(res.Data)
	if len(records) != 2 {
		t.Fatalf("attack records=%d, want 2", len(records))
	}
	if records[0].Name != "暴鯉龍" || records[0].BaseAttack != 186 || records[0].TierFlag != "D" {
		t.Fatalf("unexpected first record: %+v", records[0])
	}
}

func TestReadRawSheetChartRoundTrip(t *testing.T) {
	t.Parallel()

	values := map[string]map[string]float64{
		"一般": {"火": 1, "水": 1, "幽靈": 0.390625},
		"火":  {"火": 0.625, "水": 0.625, "幽靈": 1},
		"水":  {"火": 1.6, "水": 0.625, "幽靈": 1},
	}
	cols := []string{"火", "水", "幽靈"}
	keys := []string{"一般", "火", "水"}

	wb := excelize.NewFile()
	header := []interface{}{"寶可夢", "攻/守"}
	for _, c := range cols {
		header = append(header, c)
	}
	if err := wb.SetSheetRow("Sheet1", "A1", &header); err != nil {
		t.Fatalf("SetSheetRow header failed: %v", err)
	}
	for i, k := range keys {
		row := []interface{}{"", k}
		for _, c := range cols {
			row = append(row, values[k][c])
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := wb.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatalf("SetSheetRow %s failed: %v", k, err)
		}
	}

	path := filepath.Join(t.TempDir(), "Def.xlsx")
	if err := wb.SaveAs(path); err != nil {
		t.Fatalf("SaveAs failed: %v", err)
	}

	sheet, err := excel.ReadRawSheetFile(path)
	if err != nil {
		t.Fatalf("ReadRawSheetFile failed: %v", err)
	}
	res, err := parser.Split(sheet)
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}

	for _, k := range keys {
		for _, c := range cols {
			if got, want := calculator.Resolve(res.Chart, k, c, ""), values[k][c]; got != want {
				t.Fatalf("Resolve(%s→%s)=%v, want %v", k, c, got, want)
			}
		}
	}
}

func TestReadRawSheetRejectsGarbage(t *testing.T) {
	t.Parallel()

	if _, err := excel.ReadRawSheet(strings.NewReader("not a workbook")); err == nil {
		t.Fatalf("expected error for non-xlsx input")
	}
	if _, err := excel.ReadRawSheetFile(filepath.Join(t.TempDir(), "missing.xlsx")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func buildAttackWorkbook(t *testing.T) *excelize.File {
	t.Helper()

	wb := excelize.NewFile()
	rows := [][]interface{}{
		{"寶可夢", "屬性", "屬修", "基礎攻擊", "超級巨/極巨", "攻/守", "火", "水"},
		{"暴鯉龍", "水", "Y", 186, "D", "一般", 1, 1},
		{"噴火龍", "火", "Y", 223, "G", "火", 0.625, 0.625},
		{"", "", "", "", "", "水", 2.56, 0.625},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := wb.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatalf("SetSheetRow row %d failed: %v", i+1, err)
		}
	}

	style, err := wb.NewStyle(&excelize.Style{NumFmt: 10})
	if err != nil {
		t.Fatalf("NewStyle failed: %v", err)
	}
	if err := wb.SetCellStyle("Sheet1", "G4", "H4", style); err != nil {
		t.Fatalf("SetCellStyle failed: %v", err)
	}
	return wb
}
