package matchup

import (
	"github.com/Elton0803/Pokemon-Tool/internal/calculator"
	"github.com/Elton0803/Pokemon-Tool/internal/model"
	"github.com/Elton0803/Pokemon-Tool/internal/service/dataset"
)

// Service 各分页的查询入口，HTTP 与 MCP 共用
type Service struct {
	registry *dataset.Registry
	calc     *calculator.Calculator
}

// NewService 创建查询服务
func NewService(registry *dataset.Registry, calc *calculator.Calculator) *Service {
	return &Service{registry: registry, calc: calc}
}

// Registry 底层数据集注册表
func (s *Service) Registry() *dataset.Registry {
	return s.registry
}

// DefenseFormula 当前防御坦度公式
func (s *Service) DefenseFormula() calculator.DefenseFormula {
	return s.calc.DefenseFormula()
}

// Options 某个数据集克制表的下拉框选项
func (s *Service) Options(kind model.DatasetKind) (calculator.TypeOptions, error) {
	ds, err := s.registry.Get(kind)
	if err != nil {
		return calculator.TypeOptions{}, err
	}
	return calculator.Options(ds.Chart), nil
}

// AttackRanking 极巨攻击输出排名
func (s *Service) AttackRanking(sel model.Selection) ([]model.ResultRow, error) {
	ds, err := s.registry.Get(model.DatasetAttack)
	if err != nil {
		return nil, err
	}
	return s.calc.AttackRanking(ds.Chart, ds.Attack, sel), nil
}

// DefenseRanking 极巨对战防御排名
func (s *Service) DefenseRanking(attacker string) ([]model.ResultRow, error) {
	ds, err := s.registry.Get(model.DatasetDefense)
	if err != nil {
		return nil, err
	}
	return s.calc.DefenseRanking(ds.Chart, ds.Defense, attacker), nil
}

// DPSRanking DPS 排名
func (s *Service) DPSRanking(sel model.Selection) ([]model.ResultRow, error) {
	ds, err := s.registry.Get(model.DatasetDPS)
	if err != nil {
		return nil, err
	}
	return s.calc.DPSRanking(ds.Chart, ds.DPS, sel), nil
}

// Weakness 属性弱点表，使用 DPS 数据集的克制表
func (s *Service) Weakness(sel model.Selection) ([]model.ResultRow, error) {
	ds, err := s.registry.Get(model.DatasetDPS)
	if err != nil {
		return nil, err
	}
	return s.calc.WeaknessTable(ds.Chart, sel), nil
}
