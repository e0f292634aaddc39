package model

import "time"

// AISetting is the single-row admin preference for the default generation
// provider. When no row exists the environment preference applies.
type AISetting struct {
	DefaultProvider string    `json:"default_provider" db:"default_provider"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

type UpdateAISettingReq struct {
	DefaultProvider string `json:"default_provider" binding:"required,oneof=openai gemini"`
}
