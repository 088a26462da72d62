package dataset

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Elton0803/Pokemon-Tool/internal/model"
	"github.com/Elton0803/Pokemon-Tool/internal/parser"
	"github.com/Elton0803/Pokemon-Tool/internal/store"
)

// ImportRecorder 加载记录的写入端（通常是 *store.Store）
type ImportRecorder interface {
	CreateImportLog(ctx context.Context, entry model.ImportLog) (int64, error)
}

// Options 注册表配置
type Options struct {
	DataDir  string
	Files    map[model.DatasetKind]string // 各数据集的本地文件名
	Mapper   *parser.FieldMapper
	Recorder ImportRecorder
	Now      func() time.Time
}

// DefaultFiles 默认本地文件名
func DefaultFiles() map[model.DatasetKind]string {
	return map[model.DatasetKind]string{
		model.DatasetAttack:  "Att.xlsx",
		model.DatasetDefense: "Def.xlsx",
		model.DatasetDPS:     "DPS.xlsx",
	}
}

// chartImageNames 克制表图片的候选文件名
var chartImageNames = []string{"chart.png", "chart.jpg"}

type upload struct {
	filename string
	content  []byte
}

type entry struct {
	status  model.DatasetStatus
	dataset *Dataset
	upload  *upload
}

// Registry 数据集注册表
// 每个数据集以不可变的 *Dataset 发布，读取方拿到的句柄不会被后续加载修改
type Registry struct {
	opts    Options
	mu      sync.RWMutex
	entries map[model.DatasetKind]*entry
}

// NewRegistry 创建注册表；此时不读取任何文件
func NewRegistry(opts Options) *Registry {
	if opts.Files == nil {
		opts.Files = DefaultFiles()
	}
	if opts.Mapper == nil {
		opts.Mapper = parser.NewFieldMapper()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	entries := make(map[model.DatasetKind]*entry, len(model.DatasetKinds))
	for _, kind := range model.DatasetKinds {
		entries[kind] = &entry{status: model.DatasetStatus{
			Kind:     kind,
			Filename: opts.Files[kind],
			Source:   model.SourceNone,
			Error:    ErrNoFile.Error(),
		}}
	}
	return &Registry{opts: opts, entries: entries}
}

// LoadAll 并行加载全部数据集
// 单个数据集的错误记录在状态里，不会中断其他数据集
func (r *Registry) LoadAll(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, kind := range model.DatasetKinds {
		g.Go(func() error {
			_, err := r.Load(gctx, kind)
			return err
		})
	}
	return g.Wait()
}

// Load 按来源优先级加载一个数据集：上传 > 本地文件 > 缺失
// 返回的 error 只表示调用本身无效（未知类型、ctx 取消），结构性错误体现在状态中
func (r *Registry) Load(ctx context.Context, kind model.DatasetKind) (model.DatasetStatus, error) {
	if !kind.Valid() {
		return model.DatasetStatus{}, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	if err := ctx.Err(); err != nil {
		return model.DatasetStatus{}, err
	}

	r.mu.RLock()
	up := r.entries[kind].upload
	r.mu.RUnlock()

	src, status := r.resolveSource(kind, up)
	var (
		ds  *Dataset
		err error
	)
	if src != nil {
		ds, err = parse(*src, r.opts.Mapper)
	} else {
		err = ErrNoFile
	}

	if err != nil {
		status.Error = userMessage(err)
		log.Printf("[dataset] %s 加载失败: %v", kind, err)
	} else {
		status.DatasetID = ds.ID
		status.DataRows = ds.RecordCount()
		status.ChartRows = ds.Chart.Len()
		loadedAt := ds.LoadedAt
		status.LoadedAt = &loadedAt
		log.Printf("[dataset] %s 已加载 %s: %d 条记录, %d 个属性", kind, ds.Filename, status.DataRows, status.ChartRows)
	}

	r.mu.Lock()
	e := r.entries[kind]
	// 加载期间上传了新文件时，以更新的那次为准
	if e.upload != up {
		r.mu.Unlock()
		return r.Status(kind)
	}
	e.status = status
	e.dataset = ds
	r.mu.Unlock()

	if src != nil {
		r.record(ctx, *src, status, ds)
	}
	return status, nil
}

// Upload 用上传的文件替换某个数据集
func (r *Registry) Upload(ctx context.Context, kind model.DatasetKind, filename string, content []byte) (model.DatasetStatus, error) {
	if !kind.Valid() {
		return model.DatasetStatus{}, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	if len(content) == 0 {
		return model.DatasetStatus{}, ErrNoFile
	}
	if filename == "" {
		filename = r.opts.Files[kind]
	}

	r.mu.Lock()
	r.entries[kind].upload = &upload{filename: filepath.Base(filename), content: content}
	r.mu.Unlock()

	return r.Load(ctx, kind)
}

// Reload 丢弃所有上传，重新读取本地文件
func (r *Registry) Reload(ctx context.Context) error {
	r.mu.Lock()
	for _, e := range r.entries {
		e.upload = nil
	}
	r.mu.Unlock()

	return r.LoadAll(ctx)
}

// Get 获取已加载的数据集
func (r *Registry) Get(kind model.DatasetKind) (*Dataset, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	e := r.entries[kind]
	if e.dataset == nil {
		return nil, &LoadError{Kind: kind, Message: e.status.Error}
	}
	return e.dataset, nil
}

// Status 单个数据集状态
func (r *Registry) Status(kind model.DatasetKind) (model.DatasetStatus, error) {
	if !kind.Valid() {
		return model.DatasetStatus{}, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.entries[kind].status, nil
}

// Statuses 全部数据集状态（界面分页顺序）
func (r *Registry) Statuses() []model.DatasetStatus {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.DatasetStatus, 0, len(model.DatasetKinds))
	for _, kind := range model.DatasetKinds {
		out = append(out, r.entries[kind].status)
	}
	return out
}

// ChartImagePath 数据目录中的克制表图片路径
func (r *Registry) ChartImagePath() (string, bool) {
	for _, name := range chartImageNames {
		p := filepath.Join(r.opts.DataDir, name)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, true
		}
	}
	return "", false
}

// resolveSource 决定数据来源并生成侧边栏提示
func (r *Registry) resolveSource(kind model.DatasetKind, up *upload) (*source, model.DatasetStatus) {
	status := model.DatasetStatus{Kind: kind, Filename: r.opts.Files[kind], Source: model.SourceNone}

	if up != nil {
		status.Filename = up.filename
		status.Source = model.SourceUpload
		status.Message = "使用上傳的 " + up.filename
		return &source{
			kind:     kind,
			filename: up.filename,
			origin:   model.SourceUpload,
			content:  up.content,
			loadedAt: r.opts.Now(),
		}, status
	}

	path := filepath.Join(r.opts.DataDir, status.Filename)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			log.Printf("[dataset] stat %s: %v", path, err)
		}
		status.Message = "找不到 " + status.Filename
		return nil, status
	}

	status.Source = model.SourceLocal
	status.Message = fmt.Sprintf("本地檔 (%s 更新)", info.ModTime().Format("15:04:05"))

	content, err := os.ReadFile(path)
	return &source{
		kind:     kind,
		filename: status.Filename,
		origin:   model.SourceLocal,
		content:  content,
		readErr:  err,
		loadedAt: r.opts.Now(),
	}, status
}

// record 写入加载记录；失败只打日志
func (r *Registry) record(ctx context.Context, src source, status model.DatasetStatus, ds *Dataset) {
	if r.opts.Recorder == nil {
		return
	}

	entry := model.ImportLog{
		Kind:      src.kind,
		Filename:  src.filename,
		Source:    src.origin,
		FileSize:  int64(len(src.content)),
		Status:    store.ImportStatusLoaded,
		DataRows:  status.DataRows,
		ChartRows: status.ChartRows,
		CreatedAt: src.loadedAt,
	}
	if status.Error != "" {
		entry.Status = store.ImportStatusError
		entry.ErrorMessage = status.Error
	}
	if ds != nil {
		entry.FileHash = ds.Hash
	}

	if _, err := r.opts.Recorder.CreateImportLog(ctx, entry); err != nil {
		log.Printf("[dataset] 写入加载记录失败: %v", err)
	}
}
