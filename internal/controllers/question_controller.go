package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pubquiz-admin/internal/models"
	"pubquiz-admin/internal/services"
)

// QuestionController handles HTTP requests for questions and their
// answer options
type QuestionController interface {
	GetAllQuestions(c *gin.Context)
	GetQuestionByID(c *gin.Context)
	CreateQuestion(c *gin.Context)
	UpdateQuestion(c *gin.Context)
	DeleteQuestion(c *gin.Context)
	ActivateQuestion(c *gin.Context)
	DeactivateQuestion(c *gin.Context)

	GetQuestionOptions(c *gin.Context)
	ReplaceQuestionOptions(c *gin.Context)
}

type questionController struct {
	service services.QuestionService
}

// NewQuestionController creates a new instance of QuestionController
func NewQuestionController(service services.QuestionService) *questionController {
	return &questionController{service: service}
}

// GetAllQuestions godoc
// @Summary List questions
// @Description Get all questions, optionally filtered by room
// @Tags questions
// @Produce json
// @Param room_id query string false "Filter by room ID"
// @Success 200 {array} models.Question
// @Failure 500 {object} models.APIError
// @Router /questions [get]
func (c *questionController) GetAllQuestions(ctx *gin.Context) {
	questions, err := c.service.ListQuestions(ctx.Query("room_id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

// GetQuestionByID godoc
// @Summary Get question by ID
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} models.Question
// @Failure 404 {object} models.APIError
// @Router /questions/{id} [get]
func (c *questionController) GetQuestionByID(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	question, err := c.service.GetQuestion(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, question)
}

// CreateQuestion godoc
// @Summary Create a question
// @Tags questions
// @Accept json
// @Produce json
// @Param question body models.Question true "Question object"
// @Success 201 {object} models.Question
// @Failure 400 {object} models.APIError
// @Router /questions [post]
func (c *questionController) CreateQuestion(ctx *gin.Context) {
	var question models.Question
	if err := ctx.ShouldBindJSON(&question); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError("invalid request body"))
		return
	}
	created, err := c.service.CreateQuestion(question)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// UpdateQuestion godoc
// @Summary Update a question
// @Tags questions
// @Accept json
// @Produce json
// @Param id path int true "Question ID"
// @Param question body models.Question true "Question object"
// @Success 200 {object} models.Question
// @Failure 404 {object} models.APIError
// @Router /questions/{id} [put]
func (c *questionController) UpdateQuestion(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var question models.Question
	if err := ctx.ShouldBindJSON(&question); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError("invalid request body"))
		return
	}
	question.ID = id
	updated, err := c.service.UpdateQuestion(question)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// DeleteQuestion godoc
// @Summary Delete a question
// @Description Delete a question together with its options
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 204
// @Failure 404 {object} models.APIError
// @Router /questions/{id} [delete]
func (c *questionController) DeleteQuestion(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	if err := c.service.DeleteQuestion(id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// ActivateQuestion godoc
// @Summary Activate a question
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} models.Question
// @Failure 404 {object} models.APIError
// @Router /questions/{id}/activate [patch]
func (c *questionController) ActivateQuestion(ctx *gin.Context) {
	c.setActive(ctx, true)
}

// DeactivateQuestion godoc
// @Summary Deactivate a question
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} models.Question
// @Failure 404 {object} models.APIError
// @Router /questions/{id}/deactivate [patch]
func (c *questionController) DeactivateQuestion(ctx *gin.Context) {
	c.setActive(ctx, false)
}

func (c *questionController) setActive(ctx *gin.Context, active bool) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	question, err := c.service.SetQuestionActive(id, active)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, question)
}

// GetQuestionOptions godoc
// @Summary List question options
// @Description Get all question options, optionally filtered by question
// @Tags question-options
// @Produce json
// @Param question_id query int false "Filter by question ID"
// @Success 200 {array} models.QuestionOption
// @Failure 500 {object} models.APIError
// @Router /options [get]
func (c *questionController) GetQuestionOptions(ctx *gin.Context) {
	questionID, ok := queryID(ctx, "question_id")
	if !ok {
		return
	}
	options, err := c.service.ListQuestionOptions(questionID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, options)
}

type bulkOptionsRequest struct {
	Options []models.QuestionOption `json:"options"`
}

// ReplaceQuestionOptions godoc
// @Summary Replace the options of a question
// @Description Swap the full option set of a multiple choice question in one transaction
// @Tags question-options
// @Accept json
// @Produce json
// @Param question_id path int true "Question ID"
// @Param options body bulkOptionsRequest true "Replacement option set"
// @Success 200 {array} models.QuestionOption
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /options/bulk/{question_id} [post]
func (c *questionController) ReplaceQuestionOptions(ctx *gin.Context) {
	questionID, ok := pathID(ctx, "question_id")
	if !ok {
		return
	}
	var req bulkOptionsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError("invalid request body"))
		return
	}
	options, err := c.service.ReplaceQuestionOptions(questionID, req.Options)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, options)
}
