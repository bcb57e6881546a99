package controllers

import (
	"net/http"

	"github.com/LegendsFan/legendsfan_backend/internal/apperrors"
	"github.com/LegendsFan/legendsfan_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// GeminiController AIコンテンツ生成に関するコントローラー
type GeminiController struct {
	geminiService services.GeminiService
}

// NewGeminiController GeminiControllerを作成
func NewGeminiController(geminiService services.GeminiService) *GeminiController {
	return &GeminiController{
		geminiService: geminiService,
	}
}

// GenerateRequest コンテンツ生成リクエスト
type GenerateRequest struct {
	Prompt string `json:"prompt"`
	Model  string `json:"model"`
}

// Generate プロンプトからAIコンテンツを生成
func (c *GeminiController) Generate(ctx *gin.Context) {
	var req GenerateRequest
	if err := bindJSON(ctx, &req); err != nil {
		_ = ctx.Error(err)
		ctx.Abort()
		return
	}

	if req.Prompt == "" {
		_ = ctx.Error(apperrors.NewBadRequest("Prompt is required"))
		ctx.Abort()
		return
	}

	text, err := c.geminiService.GenerateContent(ctx.Request.Context(), req.Prompt, req.Model)
	if err != nil {
		_ = ctx.Error(err)
		ctx.Abort()
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Content generated successfully",
		"data":    text,
	})
}
