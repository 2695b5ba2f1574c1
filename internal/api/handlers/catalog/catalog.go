package catalog

import (
	"net/http"
	"strconv"
	"strings"

	corecatalog "recipe-ingest/internal/core/catalog"
	"recipe-ingest/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const defaultSearchLimit = 20

// Handler 食材目錄處理程序
type Handler struct {
	cat *corecatalog.Catalog
}

// NewHandler 創建目錄處理程序
func NewHandler(cat *corecatalog.Catalog) *Handler {
	return &Handler{cat: cat}
}

// HandleSearch 搜尋目錄食材：精確命中排在前綴命中之前
func (h *Handler) HandleSearch(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter q is required"})
		return
	}

	limit := defaultSearchLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit parameter"})
			return
		}
		limit = parsed
	}

	results := h.cat.Search(query, limit)
	common.LogDebug("目錄搜尋",
		zap.String("query", query),
		zap.Int("results", len(results)),
	)

	c.JSON(http.StatusOK, gin.H{
		"query":   query,
		"results": results,
	})
}

// AddCustomRequest 新增自訂食材請求
type AddCustomRequest struct {
	Name     string `json:"name" binding:"required"`
	Plural   string `json:"plural,omitempty"`
	Category string `json:"category,omitempty"`
}

// HandleAddCustom 新增自訂食材並即時更新索引
func (h *Handler) HandleAddCustom(c *gin.Context) {
	var req AddCustomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	ing := h.cat.AddCustom(corecatalog.CatalogIngredient{
		Name:     strings.TrimSpace(req.Name),
		Plural:   strings.TrimSpace(req.Plural),
		Category: strings.TrimSpace(req.Category),
	})

	common.LogInfo("已新增自訂食材",
		zap.String("id", ing.ID),
		zap.String("name", ing.Name),
	)
	c.JSON(http.StatusOK, ing)
}
