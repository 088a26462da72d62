package model

import "time"

// DatasetKind 数据集类型
type DatasetKind string

const (
	DatasetAttack  DatasetKind = "attack"  // Att.xlsx 极巨攻击输出
	DatasetDefense DatasetKind = "defense" // Def.xlsx 极巨对战防御
	DatasetDPS     DatasetKind = "dps"     // DPS.xlsx DPS 计算
)

// DatasetKinds 全部数据集类型（界面分页顺序）
var DatasetKinds = []DatasetKind{DatasetAttack, DatasetDefense, DatasetDPS}

// Valid 是否为已知类型
func (k DatasetKind) Valid() bool {
	switch k {
	case DatasetAttack, DatasetDefense, DatasetDPS:
		return true
	}
	return false
}

// SourceKind 数据来源
type SourceKind string

const (
	SourceNone   SourceKind = "none"
	SourceUpload SourceKind = "upload"
	SourceLocal  SourceKind = "local"
)

// DatasetStatus 数据集状态（侧边栏展示）
type DatasetStatus struct {
	Kind      DatasetKind `json:"kind"`
	Filename  string      `json:"filename"`
	Source    SourceKind  `json:"source"`
	Message   string      `json:"message"`
	Error     string      `json:"error,omitempty"`
	DatasetID string      `json:"datasetId,omitempty"`
	DataRows  int         `json:"dataRows"`
	ChartRows int         `json:"chartRows"`
	LoadedAt  *time.Time  `json:"loadedAt,omitempty"`
}

// ImportLog 数据集加载记录
type ImportLog struct {
	ID           int64       `json:"id"`
	Kind         DatasetKind `json:"kind"`
	Filename     string      `json:"filename"`
	Source       SourceKind  `json:"source"`
	FileSize     int64       `json:"fileSize"`
	FileHash     string      `json:"fileHash"`
	Status       string      `json:"status"` // loaded/error
	ErrorMessage string      `json:"errorMessage,omitempty"`
	DataRows     int         `json:"dataRows"`
	ChartRows    int         `json:"chartRows"`
	CreatedAt    time.Time   `json:"createdAt"`
}
