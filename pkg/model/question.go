package model

import "time"

// Question is a published interview question. Its solution lives in a
// linked row so the two can be moderated and versioned independently.
type Question struct {
	QuestionID int64     `json:"question_id" db:"question_id"`
	Title      string    `json:"title" db:"title"`
	Content    string    `json:"content" db:"content"`
	Category   string    `json:"category" db:"category"`
	Difficulty string    `json:"difficulty" db:"difficulty"`
	Level      string    `json:"level" db:"level"`
	Provider   string    `json:"provider,omitempty" db:"provider"` // AI provider the question came from, empty for manual submissions
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

type Solution struct {
	SolutionID int64     `json:"solution_id" db:"solution_id"`
	QuestionID int64     `json:"question_id" db:"question_id"`
	Content    string    `json:"content" db:"content"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

type QuestionWithSolution struct {
	Question
	Solution string `json:"solution"`
}

// ApproveQuestionItem mirrors one generated question a reviewer accepted.
type ApproveQuestionItem struct {
	Title      string `json:"title" binding:"required"`
	Content    string `json:"content" binding:"required"`
	Solution   string `json:"solution" binding:"required"`
	Category   string `json:"category" binding:"required"`
	Difficulty string `json:"difficulty" binding:"required,oneof=easy medium hard"`
	Level      string `json:"level" binding:"required,oneof=fresher junior senior"`
}

type ApproveQuestionsReq struct {
	Provider  string                `json:"provider"`
	Questions []ApproveQuestionItem `json:"questions" binding:"required,min=1,dive"`
}

type ListQuestionsQuery struct {
	Page       int    `form:"page,default=1"`
	PageSize   int    `form:"page_size,default=20"`
	Category   string `form:"category"`
	Difficulty string `form:"difficulty"`
}
