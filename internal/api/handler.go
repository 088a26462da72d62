package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Elton0803/Pokemon-Tool/internal/model"
	"github.com/Elton0803/Pokemon-Tool/internal/service/dataset"
	"github.com/Elton0803/Pokemon-Tool/internal/service/matchup"
)

// ImportHistory 加载记录查询端（通常是 *store.Store）
type ImportHistory interface {
	ListImportLogs(ctx context.Context, kind model.DatasetKind, limit int) ([]model.ImportLog, error)
}

// Handler API 处理器
type Handler struct {
	svc     *matchup.Service
	history ImportHistory
}

// NewHandler 创建 API 处理器；history 可以为 nil
func NewHandler(svc *matchup.Service, history ImportHistory) *Handler {
	return &Handler{svc: svc, history: history}
}

// RegisterRoutes 注册 API 路由
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// 数据集状态与来源
	router.GET("/status", h.GetStatus)
	router.GET("/types/:kind", h.GetTypeOptions)
	router.POST("/datasets/:kind", h.UploadDataset)
	router.POST("/reload", h.Reload)

	// 四个分页的计算
	router.GET("/rankings/attack", h.AttackRanking)
	router.GET("/rankings/defense", h.DefenseRanking)
	router.GET("/rankings/dps", h.DPSRanking)
	router.GET("/weakness", h.Weakness)

	// 加载记录
	router.GET("/imports", h.ListImports)
	router.GET("/chart-image", h.ChartImage)
}

// respondError 按错误类型映射状态码
func respondError(c *gin.Context, err error) {
	var loadErr *dataset.LoadError
	switch {
	case errors.Is(err, dataset.ErrUnknownKind):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &loadErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": loadErr.Message, "kind": loadErr.Kind})
	case errors.Is(err, dataset.ErrNoFile):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
