package dataset

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"

	"github.com/Elton0803/Pokemon-Tool/internal/model"
	"github.com/Elton0803/Pokemon-Tool/internal/parser"
	"github.com/Elton0803/Pokemon-Tool/internal/service/excel"
)

var (
	// ErrNoFile 既没有上传也找不到本地文件
	ErrNoFile = errors.New("未提供檔案")
	// ErrUnknownKind 未知的数据集类型
	ErrUnknownKind = errors.New("unknown dataset kind")
	// ErrNotLoaded 数据集尚未成功加载
	ErrNotLoaded = errors.New("dataset not loaded")
)

// readErrorPrefix 非结构性读取失败的提示前缀
const readErrorPrefix = "讀取錯誤: "

// LoadError 数据集不可用的原因，Message 直接展示给用户
type LoadError struct {
	Kind    model.DatasetKind
	Message string
}

func (e *LoadError) Error() string {
	return e.Message
}

// Unwrap 使 errors.Is(err, ErrNotLoaded) 成立
func (e *LoadError) Unwrap() error {
	return ErrNotLoaded
}

// Dataset 一次加载的结果，创建后只读
type Dataset struct {
	ID       string
	Kind     model.DatasetKind
	Filename string
	Source   model.SourceKind
	Size     int64
	Hash     string
	LoadedAt time.Time

	Data  *model.DataBlock
	Chart *model.TypeChart

	Attack  []model.AttackRecord
	Defense []model.DefenseRecord
	DPS     []model.DPSRecord
}

// RecordCount 解析出的有效记录数
func (d *Dataset) RecordCount() int {
	switch d.Kind {
	case model.DatasetAttack:
		return len(d.Attack)
	case model.DatasetDefense:
		return len(d.Defense)
	case model.DatasetDPS:
		return len(d.DPS)
	}
	return 0
}

// source 待解析的工作簿内容
type source struct {
	kind     model.DatasetKind
	filename string
	origin   model.SourceKind
	content  []byte
	readErr  error
	loadedAt time.Time
}

// parse 读取第一个工作表、拆分并抽取记录
func parse(src source, mapper *parser.FieldMapper) (*Dataset, error) {
	if src.readErr != nil {
		return nil, src.readErr
	}
	if len(src.content) == 0 {
		return nil, ErrNoFile
	}

	sheet, err := excel.ReadRawSheet(bytes.NewReader(src.content))
	if err != nil {
		return nil, err
	}
	split, err := parser.Split(sheet)
	if err != nil {
		return nil, err
	}

	sum := blake2b.Sum256(src.content)
	ds := &Dataset{
		ID:       uuid.New().String(),
		Kind:     src.kind,
		Filename: src.filename,
		Source:   src.origin,
		Size:     int64(len(src.content)),
		Hash:     hex.EncodeToString(sum[:]),
		LoadedAt: src.loadedAt,
		Data:     split.Data,
		Chart:    split.Chart,
	}

	switch src.kind {
	case model.DatasetAttack:
		ds.Attack = mapper.ExtractAttackRecords(split.Data)
	case model.DatasetDefense:
		ds.Defense = mapper.ExtractDefenseRecords(split.Data)
	case model.DatasetDPS:
		ds.DPS = mapper.ExtractDPSRecords(split.Data, split.Chart)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, src.kind)
	}
	return ds, nil
}

// userMessage 加载失败时展示给用户的文本
func userMessage(err error) string {
	switch {
	case errors.Is(err, ErrNoFile):
		return ErrNoFile.Error()
	case errors.Is(err, parser.ErrNoSplitPoint):
		return parser.ErrNoSplitPoint.Error()
	}
	return readErrorPrefix + err.Error()
}
