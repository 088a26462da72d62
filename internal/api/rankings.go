package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Elton0803/Pokemon-Tool/internal/model"
	"github.com/Elton0803/Pokemon-Tool/internal/store"
)

// RankingResponse 排名响应
type RankingResponse struct {
	Selection model.Selection   `json:"selection"`
	Attacker  string            `json:"attacker,omitempty"`
	Rows      []model.ResultRow `json:"rows"`
}

func selectionFromQuery(c *gin.Context) model.Selection {
	return model.Selection{
		Type1: c.Query("t1"),
		Type2: c.DefaultQuery("t2", "無"),
	}
}

// AttackRanking 极巨攻击输出
// GET /api/rankings/attack?t1=&t2=
func (h *Handler) AttackRanking(c *gin.Context) {
	sel := selectionFromQuery(c)
	rows, err := h.svc.AttackRanking(sel)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, RankingResponse{Selection: sel, Rows: rows})
}

// DefenseRanking 极巨对战防御
// GET /api/rankings/defense?atk=
func (h *Handler) DefenseRanking(c *gin.Context) {
	atk := c.Query("atk")
	rows, err := h.svc.DefenseRanking(atk)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, RankingResponse{Attacker: atk, Rows: rows})
}

// DPSRanking DPS 计算
// GET /api/rankings/dps?t1=&t2=
func (h *Handler) DPSRanking(c *gin.Context) {
	sel := selectionFromQuery(c)
	rows, err := h.svc.DPSRanking(sel)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, RankingResponse{Selection: sel, Rows: rows})
}

// Weakness 属性弱点
// GET /api/weakness?t1=&t2=
func (h *Handler) Weakness(c *gin.Context) {
	sel := selectionFromQuery(c)
	rows, err := h.svc.Weakness(sel)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, RankingResponse{Selection: sel, Rows: rows})
}

// ListImports 最近的加载记录
// GET /api/imports?kind=&limit=
func (h *Handler) ListImports(c *gin.Context) {
	if h.history == nil {
		c.JSON(http.StatusOK, gin.H{"items": []model.ImportLog{}})
		return
	}

	limit := store.DefaultImportLogLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit 必须为正整数"})
			return
		}
		limit = n
	}

	kind := model.DatasetKind(c.Query("kind"))
	if kind != "" && !kind.Valid() {
		c.JSON(http.StatusNotFound, gin.H{"error": "未知的数据集: " + string(kind)})
		return
	}

	items, err := h.history.ListImportLogs(c.Request.Context(), kind, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}
