package migrations

import "embed"

// FS 内嵌的 goose 迁移脚本
//
//go:embed *.sql
var FS embed.FS
