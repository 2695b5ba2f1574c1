package recipe

import (
	"net/http"

	"recipe-ingest/internal/core/parse"
	"recipe-ingest/internal/core/pipeline"
	"recipe-ingest/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// IngestRequest 自由文字食譜攝取請求
type IngestRequest struct {
	Title           string `json:"title"`
	StepsText       string `json:"steps_text"`       // 多行步驟文字
	IngredientsText string `json:"ingredients_text"` // 每行一個食材
	Servings        int    `json:"servings,omitempty"`
}

// ReparseRequest 單一食材重新解析請求
type ReparseRequest struct {
	NewText    string                    `json:"new_text" binding:"required"`
	Ingredient pipeline.RecipeIngredient `json:"ingredient" binding:"required"`
}

// CorrectionRequest 使用者修正回饋請求
type CorrectionRequest struct {
	OriginalText string                 `json:"original_text" binding:"required"`
	Corrected    parse.ParsedIngredient `json:"corrected" binding:"required"`
}

// Handler 食譜攝取處理程序
type Handler struct {
	pipeline *pipeline.Service
}

// NewHandler 創建新的食譜攝取處理程序
func NewHandler(svc *pipeline.Service) *Handler {
	return &Handler{pipeline: svc}
}

// HandleIngest 攝取自由文字食譜
func (h *Handler) HandleIngest(c *gin.Context) {
	requestID := ensureRequestID(c)

	common.LogInfo("開始處理食譜攝取請求",
		zap.String("request_id", requestID),
		zap.String("client_ip", c.ClientIP()),
	)

	var req IngestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	recipe, err := h.pipeline.IngestRecipe(c.Request.Context(), req.Title, req.StepsText, req.IngredientsText, req.Servings)
	if err != nil {
		common.LogError("食譜攝取失敗",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, recipe)
}

// HandleReparse 重新解析單一食材（使用者編輯文字後）
func (h *Handler) HandleReparse(c *gin.Context) {
	requestID := ensureRequestID(c)

	var req ReparseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	updated := h.pipeline.ReparseIngredient(req.NewText, &req.Ingredient)
	c.JSON(http.StatusOK, updated)
}

// HandleCorrection 記錄使用者對解析結果的修正
func (h *Handler) HandleCorrection(c *gin.Context) {
	requestID := ensureRequestID(c)

	var req CorrectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.pipeline.RecordCorrection(c.Request.Context(), req.OriginalText, req.Corrected); err != nil {
		common.LogError("記錄修正失敗",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		respondError(c, err)
		return
	}

	common.LogInfo("修正已記錄",
		zap.String("request_id", requestID),
		zap.String("original_text", req.OriginalText),
	)
	c.JSON(http.StatusOK, gin.H{"status": "recorded"})
}

// respondError 依自定義錯誤型別決定狀態碼與回應內容
func respondError(c *gin.Context, err error) {
	if ce, ok := err.(*common.CustomError); ok {
		c.JSON(ce.Status, gin.H{
			"error": ce.Message,
			"code":  ce.Code,
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "Internal server error",
		"code":  common.ErrCodeInternalError,
	})
}

func ensureRequestID(c *gin.Context) string {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.New().String()
		c.Header("X-Request-ID", requestID)
	}
	return requestID
}
