package repository

import "github.com/jackc/pgx/v5/pgxpool"

type Repository struct {
	User          UserRepository
	Question      QuestionRepository
	Setting       SettingRepository
	GenerationLog GenerationLogRepository
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{
		User:          UserRepository{db: db},
		Question:      QuestionRepository{db: db},
		Setting:       SettingRepository{db: db},
		GenerationLog: GenerationLogRepository{db: db},
	}
}
