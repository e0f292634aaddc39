package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/quybuiquang/skill-quest-cafe/pkg"
	"github.com/quybuiquang/skill-quest-cafe/pkg/model"
	"github.com/quybuiquang/skill-quest-cafe/pkg/response"
)

// Login verifies credentials and returns a JWT
func (h *Handler) Login(c *gin.Context) {
	var req model.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	ctx := c.Request.Context()
	user, err := h.Repository.User.GetByEmail(ctx, req.Email)
	if err != nil {
		h.Logger.Warn("login: user not found", zap.String("email", req.Email))
		response.Unauthorized(c, "invalid credentials")
		return
	}

	if err := pkg.ComparePassword(user.PasswordHash, req.Password); err != nil {
		h.Logger.Warn("login: password mismatch", zap.String("email", req.Email))
		response.Unauthorized(c, "invalid credentials")
		return
	}

	accessToken, claims, err := h.TokenMaker.GenerateToken(user.UserID, user.Email, user.IsAdmin, h.JwtTTL)
	if err != nil {
		h.Logger.Error("login: token generation failed", zap.Error(err))
		response.InternalError(c, "could not generate token")
		return
	}

	response.OK(c, model.TokenRes{
		AccessToken: accessToken,
		ExpiresAt:   claims.ExpiresAt.Unix(),
	})
}
