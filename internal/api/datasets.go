package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Elton0803/Pokemon-Tool/internal/model"
)

// maxUploadSize 上传工作簿大小上限
const maxUploadSize = 32 << 20

// UploadDataset 上传工作簿替换数据集
// POST /api/datasets/:kind  (multipart: file)
func (h *Handler) UploadDataset(c *gin.Context) {
	kind := model.DatasetKind(c.Param("kind"))
	if !kind.Valid() {
		c.JSON(http.StatusNotFound, gin.H{"error": "未知的数据集: " + string(kind)})
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "未提供檔案"})
		return
	}
	if header.Size > maxUploadSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "文件过大"})
		return
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "读取上传文件失败"})
		return
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, maxUploadSize))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "读取上传文件失败"})
		return
	}

	status, err := h.svc.Registry().Upload(c.Request.Context(), kind, header.Filename, content)
	if err != nil {
		respondError(c, err)
		return
	}
	if status.Error != "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": status.Error, "status": status})
		return
	}
	c.JSON(http.StatusOK, status)
}

// Reload 丢弃上传并重新读取本地文件
// POST /api/reload
func (h *Handler) Reload(c *gin.Context) {
	if err := h.svc.Registry().Reload(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"datasets": h.svc.Registry().Statuses()})
}

// ChartImage 克制表图片
// GET /api/chart-image
func (h *Handler) ChartImage(c *gin.Context) {
	path, ok := h.svc.Registry().ChartImagePath()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "找不到 chart.png"})
		return
	}
	c.File(path)
}
