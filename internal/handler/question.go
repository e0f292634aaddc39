package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/quybuiquang/skill-quest-cafe/internal/markup"
	"github.com/quybuiquang/skill-quest-cafe/internal/repository"
	"github.com/quybuiquang/skill-quest-cafe/pkg/model"
	"github.com/quybuiquang/skill-quest-cafe/pkg/response"
)

// ApproveQuestions publishes reviewer-accepted generated questions. Each
// item's content and solution pass through the markup sanitizer before the
// question row and its linked solution row are inserted.
func (h *Handler) ApproveQuestions(c *gin.Context) {
	var req model.ApproveQuestionsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	items := make([]model.QuestionWithSolution, 0, len(req.Questions))
	for i, q := range req.Questions {
		content, err := markup.Sanitize(q.Content)
		if err != nil || content == "" {
			response.ValidationError(c, "question "+strconv.Itoa(i)+": content is empty after sanitizing")
			return
		}
		solution, err := markup.Sanitize(q.Solution)
		if err != nil || solution == "" {
			response.ValidationError(c, "question "+strconv.Itoa(i)+": solution is empty after sanitizing")
			return
		}

		items = append(items, model.QuestionWithSolution{
			Question: model.Question{
				Title:      q.Title,
				Content:    content,
				Category:   q.Category,
				Difficulty: q.Difficulty,
				Level:      q.Level,
				Provider:   req.Provider,
			},
			Solution: solution,
		})
	}

	ids, err := h.Repository.Question.CreateBatch(c.Request.Context(), items)
	if err != nil {
		h.Logger.Error("approve_questions: insert failed",
			zap.Int("count", len(items)),
			zap.Error(err),
		)
		response.InternalError(c, "failed to save questions")
		return
	}

	h.Logger.Info("approve_questions: batch published",
		zap.Int("count", len(ids)),
		zap.String("provider", req.Provider),
	)

	response.Created(c, gin.H{"question_ids": ids})
}

// ListQuestions returns published questions with pagination and optional
// category/difficulty filters.
func (h *Handler) ListQuestions(c *gin.Context) {
	var query model.ListQuestionsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}
	if query.Page < 1 {
		query.Page = 1
	}
	if query.PageSize < 1 || query.PageSize > 100 {
		query.PageSize = 20
	}

	questions, total, err := h.Repository.Question.List(c.Request.Context(), query)
	if err != nil {
		h.Logger.Error("list_questions: query failed", zap.Error(err))
		response.InternalError(c, "failed to fetch questions")
		return
	}

	response.OKWithMeta(c, questions, &response.Meta{
		Page:     query.Page,
		PageSize: query.PageSize,
		Total:    total,
		HasNext:  query.Page*query.PageSize < total,
	})
}

// GetQuestion returns one question together with its solution.
func (h *Handler) GetQuestion(c *gin.Context) {
	questionID, err := strconv.ParseInt(c.Param("question_id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid question_id format")
		return
	}

	question, err := h.Repository.Question.Get(c.Request.Context(), questionID)
	if err != nil {
		if errors.Is(err, repository.ErrQuestionNotFound) {
			response.NotFound(c, "")
			return
		}
		h.Logger.Error("get_question: query failed",
			zap.Int64("question_id", questionID),
			zap.Error(err),
		)
		response.InternalError(c, "failed to fetch question")
		return
	}

	response.OK(c, question)
}

// DeleteQuestion removes a question and its solution.
func (h *Handler) DeleteQuestion(c *gin.Context) {
	questionID, err := strconv.ParseInt(c.Param("question_id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid question_id format")
		return
	}

	if err := h.Repository.Question.Delete(c.Request.Context(), questionID); err != nil {
		if errors.Is(err, repository.ErrQuestionNotFound) {
			response.NotFound(c, "")
			return
		}
		h.Logger.Error("delete_question: delete failed",
			zap.Int64("question_id", questionID),
			zap.Error(err),
		)
		response.InternalError(c, "failed to delete question")
		return
	}

	h.Logger.Info("delete_question: question deleted", zap.Int64("question_id", questionID))
	response.Message(c, "question deleted successfully")
}
