package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/quybuiquang/skill-quest-cafe/internal/aigen"
	"github.com/quybuiquang/skill-quest-cafe/pkg/model"
	"github.com/quybuiquang/skill-quest-cafe/pkg/response"
)

// GenerateQuestions runs one AI generation call for the admin generator UI.
func (h *Handler) GenerateQuestions(c *gin.Context) {
	var req aigen.GenerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	ctx := c.Request.Context()
	if h.GenerateTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.GenerateTimeout)
		defer cancel()
	}

	result, err := h.Orchestrator.Generate(ctx, req)
	if err != nil {
		h.Logger.Warn("generate_questions: generation failed",
			zap.String("topic", req.Topic),
			zap.String("kind", string(aigen.KindOf(err))),
			zap.Error(err),
		)
		writeGenerationError(c, err)
		return
	}

	h.Logger.Info("generate_questions: batch generated",
		zap.String("topic", req.Topic),
		zap.Int("count", len(result.Questions)),
		zap.String("provider", string(result.Metadata.Provider)),
		zap.Bool("fallback_used", result.Metadata.FallbackUsed),
	)

	response.OK(c, result)
}

// TestProvider verifies one provider's credentials and connectivity with a
// minimal one-question call.
func (h *Handler) TestProvider(c *gin.Context) {
	var req struct {
		Provider aigen.Provider `json:"provider" binding:"required,oneof=openai gemini"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "provider must be one of: openai, gemini")
		return
	}

	ctx := c.Request.Context()
	if h.GenerateTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.GenerateTimeout)
		defer cancel()
	}

	result := h.Orchestrator.TestProvider(ctx, req.Provider)
	response.OK(c, result)
}

// GetAISetting returns the admin default-provider preference.
func (h *Handler) GetAISetting(c *gin.Context) {
	setting, err := h.Repository.Setting.Get(c.Request.Context())
	if err != nil {
		// no row yet: report the effective default instead of an error
		providers := h.Orchestrator.Providers()
		if len(providers) > 0 {
			response.OK(c, model.AISetting{DefaultProvider: string(providers[0])})
			return
		}
		response.NotFound(c, "no AI provider configured")
		return
	}
	response.OK(c, setting)
}

// UpdateAISetting stores the admin default-provider preference.
func (h *Handler) UpdateAISetting(c *gin.Context) {
	var req model.UpdateAISettingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "default_provider must be one of: openai, gemini")
		return
	}

	if err := h.Repository.Setting.Upsert(c.Request.Context(), req.DefaultProvider); err != nil {
		h.Logger.Error("update_ai_setting: upsert failed", zap.Error(err))
		response.InternalError(c, "failed to update setting")
		return
	}

	h.Logger.Info("update_ai_setting: default provider changed", zap.String("provider", req.DefaultProvider))
	response.Message(c, "setting updated successfully")
}

// ListGenerationLogs pages through the generation log for the admin
// dashboard.
func (h *Handler) ListGenerationLogs(c *gin.Context) {
	var query struct {
		Page     int `form:"page,default=1"`
		PageSize int `form:"page_size,default=20"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}

	logs, total, err := h.Repository.GenerationLog.List(c.Request.Context(), query.Page, query.PageSize)
	if err != nil {
		h.Logger.Error("list_generation_logs: query failed", zap.Error(err))
		response.InternalError(c, "failed to fetch generation logs")
		return
	}

	response.OKWithMeta(c, logs, &response.Meta{
		Page:     query.Page,
		PageSize: query.PageSize,
		Total:    total,
		HasNext:  query.Page*query.PageSize < total,
	})
}

// writeGenerationError maps the orchestration error taxonomy onto HTTP
// responses, surfacing kind and originating provider so the UI can pick a
// per-kind message.
func writeGenerationError(c *gin.Context, err error) {
	kind := aigen.KindOf(err)
	provider := string(aigen.ProviderOf(err))

	switch kind {
	case aigen.KindInvalidRequest:
		response.BadRequest(c, err.Error())
	case aigen.KindRateLimit:
		response.ProviderError(c, http.StatusTooManyRequests, "AI_RATE_LIMIT", "provider rate limit exceeded, try again later or switch provider", provider)
	case aigen.KindAuth:
		response.ProviderError(c, http.StatusBadGateway, "AI_AUTH_ERROR", "provider rejected the configured credentials", provider)
	case aigen.KindParse, aigen.KindValidation:
		response.ProviderError(c, http.StatusBadGateway, "AI_BAD_OUTPUT", "the model returned output we could not use, try again or switch provider", provider)
	case aigen.KindServer:
		response.ProviderError(c, http.StatusBadGateway, "AI_PROVIDER_DOWN", "provider reported a server error", provider)
	default:
		response.ProviderError(c, http.StatusBadGateway, "AI_PROVIDER_ERROR", "provider request failed", provider)
	}
}
