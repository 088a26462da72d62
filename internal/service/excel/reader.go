package excel

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/Elton0803/Pokemon-Tool/internal/model"
)

// ErrNoSheet 工作簿内没有任何工作表
var ErrNoSheet = errors.New("workbook has no sheets")

// ReadRawSheet 从字节流读取工作簿的第一个工作表，不假设表头
func ReadRawSheet(reader io.Reader) (*model.RawSheet, error) {
	file, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to open excel: %w", err)
	}
	defer func() { _ = file.Close() }()

	return firstSheet(file)
}

// ReadRawSheetFile 从本地路径读取工作簿的第一个工作表
func ReadRawSheetFile(path string) (*model.RawSheet, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open excel %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	return firstSheet(file)
}

func firstSheet(file *excelize.File) (*model.RawSheet, error) {
	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoSheet
	}
	name := sheets[0]

	// 读原始值，避免数字格式（百分比、小数位）改变倍率
	rows, err := file.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", name, err)
	}
	return model.NewRawSheet(name, rows), nil
}
