package parser

import "strings"

// NormalizeHeader 规范化数据区列名，去除所有空白（含换行）
// 试算表里常见 "基礎\n攻擊" 这类手动换行的表头
func NormalizeHeader(name string) string {
	return strings.Join(strings.Fields(name), "")
}

func normalizeHeaders(headers []string) []string {
	out := make([]string, len(headers))
	for i, h := range headers {
		out[i] = NormalizeHeader(h)
	}
	return out
}
