package parser

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Elton0803/Pokemon-Tool/internal/model"
)

// FieldResolver 单个逻辑字段的候选列名（按优先级）
type FieldResolver struct {
	Field      Field
	Candidates []string
}

// Resolve 依次尝试候选列，返回第一个非空白的值
func (r FieldResolver) Resolve(rec model.Record) (model.Cell, bool) {
	for _, name := range r.Candidates {
		cell, ok := rec.Get(name)
		if !ok || cell.IsBlank() {
			continue
		}
		return cell, true
	}
	return model.BlankCell(), false
}

// FieldMapper 字段映射器：逻辑字段 -> 候选列名
// 各版本试算表的表头写法不一致，所以每个字段都是一个有序候选列表
type FieldMapper struct {
	resolvers map[Field]FieldResolver
}

// defaultCandidates 内置候选列名
var defaultCandidates = map[Field][]string{
	FieldName:        {"寶可夢"},
	FieldAttackType:  {"屬性"},
	FieldSTAB:        {"屬修"},
	FieldBaseAttack:  {"基礎攻擊"},
	FieldMoveTier:    {"超級巨/極巨"},
	FieldType1:       {"屬性1", "屬性", "屬性一"},
	FieldType2:       {"屬性2", "屬性二"},
	FieldBaseDefense: {"基礎防禦", "防禦"},
	FieldMoveType:    {"屬性", "招式屬性"},
	FieldBaseDPS:     {"DPS", "基礎DPS"},
}

// NewFieldMapper 使用内置候选列名创建映射器
func NewFieldMapper() *FieldMapper {
	m := &FieldMapper{resolvers: make(map[Field]FieldResolver, len(defaultCandidates))}
	for field, candidates := range defaultCandidates {
		m.Set(field, candidates)
	}
	return m
}

// Set 覆盖某字段的候选列名
func (m *FieldMapper) Set(field Field, candidates []string) {
	cleaned := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if c = NormalizeHeader(c); c != "" {
			cleaned = append(cleaned, c)
		}
	}
	m.resolvers[field] = FieldResolver{Field: field, Candidates: cleaned}
}

// Resolver 取字段解析器
func (m *FieldMapper) Resolver(field Field) FieldResolver {
	return m.resolvers[field]
}

// Text 字段文本值，缺失为空串
func (m *FieldMapper) Text(rec model.Record, field Field) string {
	cell, ok := m.resolvers[field].Resolve(rec)
	if !ok {
		return ""
	}
	return cell.String()
}

// Float 字段数值，缺失或无法解析时 ok=false
func (m *FieldMapper) Float(rec model.Record, field Field) (float64, bool) {
	cell, ok := m.resolvers[field].Resolve(rec)
	if !ok {
		return 0, false
	}
	return cell.Float()
}

// Name 名称字段，缺失时回退到首列
func (m *FieldMapper) Name(rec model.Record) string {
	if name := m.Text(rec, FieldName); name != "" {
		return name
	}
	return rec.First().String()
}

// fieldAliasFile field_aliases.yaml 结构
type fieldAliasFile struct {
	Fields map[string][]string `yaml:"fields"`
}

// LoadFieldAliases 读取字段别名文件并覆盖内置候选列名
// 文件不存在时返回内置映射器
func LoadFieldAliases(path string) (*FieldMapper, error) {
	m := NewFieldMapper()
	if path == "" {
		return m, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return m, nil
		}
		return nil, fmt.Errorf("read field aliases %s: %w", path, err)
	}

	var file fieldAliasFile
	if err := yaml.Unmarshal(b, &file); err != nil {
		return nil, fmt.Errorf("parse field aliases %s: %w", path, err)
	}

	for name, candidates := range file.Fields {
		field := Field(strings.TrimSpace(name))
		if _, known := defaultCandidates[field]; !known {
			return nil, fmt.Errorf("field aliases %s: unknown field %q", path, name)
		}
		if len(candidates) == 0 {
			continue
		}
		m.Set(field, candidates)
	}
	return m, nil
}
