package store

import (
	"context"
	"fmt"
	"time"

	"github.com/Elton0803/Pokemon-Tool/internal/model"
)

// 导入日志状态
const (
	ImportStatusLoaded = "loaded"
	ImportStatusError  = "error"
)

// DefaultImportLogLimit 查询导入日志的默认条数
const DefaultImportLogLimit = 50

// CreateImportLog 写入一条数据集加载记录，返回 id
func (s *Store) CreateImportLog(ctx context.Context, entry model.ImportLog) (int64, error) {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO import_logs (kind, filename, source, file_size, file_hash, status, error_message, data_rows, chart_rows, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, string(entry.Kind), entry.Filename, string(entry.Source), entry.FileSize, entry.FileHash,
		entry.Status, entry.ErrorMessage, entry.DataRows, entry.ChartRows, entry.CreatedAt.UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to create import log: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get import log id: %w", err)
	}
	return id, nil
}

// ListImportLogs 按时间倒序列出加载记录；kind 为空表示全部类型
func (s *Store) ListImportLogs(ctx context.Context, kind model.DatasetKind, limit int) ([]model.ImportLog, error) {
	if limit <= 0 {
		limit = DefaultImportLogLimit
	}

	query := `
		SELECT id, kind, filename, source, file_size, file_hash, status, error_message, data_rows, chart_rows, created_at
		FROM import_logs`
	args := []interface{}{}
	if kind != "" {
		query += ` WHERE kind = ?`
		args = append(args, string(kind))
	}
	query += ` ORDER BY id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list import logs: %w", err)
	}
	defer rows.Close()

	logs := make([]model.ImportLog, 0)
	for rows.Next() {
		var (
			entry      model.ImportLog
			kindText   string
			sourceText string
		)
		if err := rows.Scan(&entry.ID, &kindText, &entry.Filename, &sourceText, &entry.FileSize, &entry.FileHash,
			&entry.Status, &entry.ErrorMessage, &entry.DataRows, &entry.ChartRows, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan import log: %w", err)
		}
		entry.Kind = model.DatasetKind(kindText)
		entry.Source = model.SourceKind(sourceText)
		logs = append(logs, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate import logs: %w", err)
	}
	return logs, nil
}
