package model

// ResultRow 排名结果行，每次查询重新生成
type ResultRow struct {
	Name            string  `json:"name"`
	TypeLabel       string  `json:"typeLabel"`
	Multiplier      float64 `json:"multiplier"`
	MultiplierLabel string  `json:"multiplierLabel"`
	Score           float64 `json:"score"`
	Display         string  `json:"display"`                   // 展示用分数文本
	StrengthPercent float64 `json:"strengthPercent,omitempty"` // 仅攻击排名
	Immune          bool    `json:"immune,omitempty"`          // 仅防御排名
}

// Selection 用户选择的对手属性组合
type Selection struct {
	Type1 string `json:"type1"`
	Type2 string `json:"type2"`
}
