package calculator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Elton0803/Pokemon-Tool/internal/model"
)

// DefenseFormula 坦度公式
type DefenseFormula string

const (
	// DefenseDivide 坦度 = 基礎防禦 / 承受倍率
	DefenseDivide DefenseFormula = "divide"
	// DefenseMultiply 坦度 = 基礎防禦 × 承受倍率（后期版本试算表的写法）
	DefenseMultiply DefenseFormula = "multiply"
)

// ParseDefenseFormula 解析配置中的坦度公式名称，空串为默认的 divide
func ParseDefenseFormula(s string) (DefenseFormula, error) {
	switch DefenseFormula(strings.ToLower(strings.TrimSpace(s))) {
	case "", DefenseDivide:
		return DefenseDivide, nil
	case DefenseMultiply:
		return DefenseMultiply, nil
	}
	return "", fmt.Errorf("unknown defense formula %q", s)
}

// Calculator 排名计算器
type Calculator struct {
	defenseFormula DefenseFormula
}

// NewCalculator 创建计算器
func NewCalculator(formula DefenseFormula) *Calculator {
	if formula == "" {
		formula = DefenseDivide
	}
	return &Calculator{defenseFormula: formula}
}

// DefenseFormula 当前使用的坦度公式
func (c *Calculator) DefenseFormula() DefenseFormula {
	return c.defenseFormula
}

// rank 按分数降序排列，分数相同保持输入顺序
func rank(rows []model.ResultRow) []model.ResultRow {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Score > rows[j].Score
	})
	return rows
}
