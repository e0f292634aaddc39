package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quybuiquang/skill-quest-cafe/pkg/model"
)

var ErrQuestionNotFound = errors.New("question not found")

type QuestionRepository struct {
	db *pgxpool.Pool
}

// CreateBatch inserts approved questions with their linked solutions in one
// transaction so a partially approved batch never becomes visible.
func (r *QuestionRepository) CreateBatch(ctx context.Context, items []model.QuestionWithSolution) ([]int64, error) {
	if len(items) == 0 {
		return nil, nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin approve batch: %w", err)
	}
	defer tx.Rollback(ctx)

	const insertQuestion = `
INSERT INTO questions (title, content, category, difficulty, level, provider)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING question_id
`
	const insertSolution = `INSERT INTO solutions (question_id, content) VALUES ($1, $2)`

	ids := make([]int64, 0, len(items))
	for i, item := range items {
		var id int64
		err := tx.QueryRow(ctx, insertQuestion,
			item.Title, item.Content, item.Category, item.Difficulty, item.Level, item.Provider,
		).Scan(&id)
		if err != nil {
			return nil, fmt.Errorf("insert question %d: %w", i, err)
		}
		if _, err := tx.Exec(ctx, insertSolution, id, item.Solution); err != nil {
			return nil, fmt.Errorf("insert solution %d: %w", i, err)
		}
		ids = append(ids, id)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit approve batch: %w", err)
	}
	return ids, nil
}

func (r *QuestionRepository) List(ctx context.Context, query model.ListQuestionsQuery) ([]model.Question, int, error) {
	const q = `
SELECT question_id, title, content, category, difficulty, level, provider, created_at,
       count(*) OVER() AS total
FROM questions
WHERE ($1 = '' OR category = $1)
  AND ($2 = '' OR difficulty = $2)
ORDER BY created_at DESC
LIMIT $3 OFFSET $4
`
	offset := (query.Page - 1) * query.PageSize
	rows, err := r.db.Query(ctx, q, query.Category, query.Difficulty, query.PageSize, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("query questions: %w", err)
	}
	defer rows.Close()

	var out []model.Question
	var total int
	for rows.Next() {
		var qs model.Question
		if err := rows.Scan(&qs.QuestionID, &qs.Title, &qs.Content, &qs.Category, &qs.Difficulty, &qs.Level, &qs.Provider, &qs.CreatedAt, &total); err != nil {
			return nil, 0, fmt.Errorf("scan question: %w", err)
		}
		out = append(out, qs)
	}
	return out, total, rows.Err()
}

func (r *QuestionRepository) Get(ctx context.Context, questionID int64) (*model.QuestionWithSolution, error) {
	const q = `
SELECT q.question_id, q.title, q.content, q.category, q.difficulty, q.level, q.provider, q.created_at,
       COALESCE(s.content, '')
FROM questions q
LEFT JOIN solutions s ON s.question_id = q.question_id
WHERE q.question_id = $1
`
	var qs model.QuestionWithSolution
	row := r.db.QueryRow(ctx, q, questionID)
	err := row.Scan(&qs.QuestionID, &qs.Title, &qs.Content, &qs.Category, &qs.Difficulty, &qs.Level, &qs.Provider, &qs.CreatedAt, &qs.Solution)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrQuestionNotFound
		}
		return nil, fmt.Errorf("get question: %w", err)
	}
	return &qs, nil
}

func (r *QuestionRepository) Delete(ctx context.Context, questionID int64) error {
	// solutions row goes with it via ON DELETE CASCADE
	tag, err := r.db.Exec(ctx, `DELETE FROM questions WHERE question_id = $1`, questionID)
	if err != nil {
		return fmt.Errorf("delete question: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrQuestionNotFound
	}
	return nil
}
