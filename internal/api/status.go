package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Elton0803/Pokemon-Tool/internal/model"
)

// StatusResponse 系统状态响应
type StatusResponse struct {
	Ready          bool                  `json:"ready"` // 三个数据集都已加载
	Datasets       []model.DatasetStatus `json:"datasets"`
	DefenseFormula string                `json:"defenseFormula"`
	HasChartImage  bool                  `json:"hasChartImage"`
}

// GetStatus 获取数据集状态
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	reg := h.svc.Registry()
	statuses := reg.Statuses()

	ready := true
	for _, st := range statuses {
		if st.DatasetID == "" {
			ready = false
		}
	}
	_, hasImage := reg.ChartImagePath()

	c.JSON(http.StatusOK, StatusResponse{
		Ready:          ready,
		Datasets:       statuses,
		DefenseFormula: string(h.svc.DefenseFormula()),
		HasChartImage:  hasImage,
	})
}

// GetTypeOptions 获取下拉框选项
// GET /api/types/:kind
func (h *Handler) GetTypeOptions(c *gin.Context) {
	opts, err := h.svc.Options(model.DatasetKind(c.Param("kind")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, opts)
}
