package handler

import (
	"mathdrill/internal/domain"
	"mathdrill/internal/dto"
	"mathdrill/internal/logger"
	"mathdrill/internal/service"
	"mathdrill/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// QuestionHandler handles practice question HTTP requests
type QuestionHandler struct {
	service   service.QuestionService
	validator *validation.Validator
}

// NewQuestionHandler creates a new QuestionHandler instance
func NewQuestionHandler(service service.QuestionService) *QuestionHandler {
	return &QuestionHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// ListQuestions godoc
// @Summary List generated questions
// @Description Returns stored questions newest first, optionally for one topic
// @Tags questions
// @Produce json
// @Param topicId query string false "Topic ID (ULID)"
// @Success 200 {array} dto.QuestionResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /questions [get]
func (h *QuestionHandler) ListQuestions(c *fiber.Ctx) error {
	questions, err := h.service.ListQuestions(c.Context(), c.Query("topicId"))
	if err != nil {
		return err
	}
	return c.JSON(questions)
}

// GenerateQuestion godoc
// @Summary Generate a practice question
// @Description Asks the selected AI provider for one question and answer about the topic and stores it
// @Tags questions
// @Accept json
// @Produce json
// @Param request body dto.GenerateQuestionRequest true "Generation request"
// @Success 201 {object} dto.QuestionResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 408 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Router /questions/generate [post]
func (h *QuestionHandler) GenerateQuestion(c *fiber.Ctx) error {
	var req dto.GenerateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if err := h.validator.ValidateStruct(&req); err != nil {
		return err
	}

	question, err := h.service.GenerateQuestion(c.Context(), &req)
	if err != nil {
		logger.Get().Warn("Question generation failed",
			zap.String("topic_id", req.TopicID),
			zap.String("provider", req.AIProvider),
			zap.Error(err),
		)
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(question)
}

// ListProviders godoc
// @Summary List AI providers
// @Description Returns the default provider and whether each provider has a credential
// @Tags ai
// @Produce json
// @Success 200 {object} dto.ProvidersResponse
// @Router /ai/providers [get]
func (h *QuestionHandler) ListProviders(c *fiber.Ctx) error {
	return c.JSON(h.service.Providers())
}
