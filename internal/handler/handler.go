package handler

import (
	"time"

	"go.uber.org/zap"

	"github.com/quybuiquang/skill-quest-cafe/internal/aigen"
	"github.com/quybuiquang/skill-quest-cafe/internal/auth"
	"github.com/quybuiquang/skill-quest-cafe/internal/repository"
)

type Handler struct {
	Logger       *zap.Logger
	Repository   *repository.Repository
	TokenMaker   *auth.JWTMaker
	JwtTTL       time.Duration
	Orchestrator *aigen.Orchestrator

	// GenerateTimeout is the overall deadline for one generation call,
	// primary plus fallback including retries.
	GenerateTimeout time.Duration
}
