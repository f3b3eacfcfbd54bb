package handler

import (
	"mathdrill/internal/domain"
	"mathdrill/internal/dto"
	"mathdrill/internal/service"
	"mathdrill/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// TopicHandler handles topic-related HTTP requests
type TopicHandler struct {
	service   service.TopicService
	validator *validation.Validator
}

// NewTopicHandler creates a new TopicHandler instance
func NewTopicHandler(service service.TopicService) *TopicHandler {
	return &TopicHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// ListTopics godoc
// @Summary List topics
// @Description Returns all topics ordered by their display order
// @Tags topics
// @Produce json
// @Success 200 {array} dto.TopicResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /topics [get]
func (h *TopicHandler) ListTopics(c *fiber.Ctx) error {
	topics, err := h.service.ListTopics(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(topics)
}

// GetTopic godoc
// @Summary Get a topic
// @Tags topics
// @Produce json
// @Param id path string true "Topic ID (ULID)"
// @Success 200 {object} dto.TopicResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /topics/{id} [get]
func (h *TopicHandler) GetTopic(c *fiber.Ctx) error {
	topic, err := h.service.GetTopic(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(topic)
}

// CreateTopic godoc
// @Summary Create a topic
// @Tags topics
// @Accept json
// @Produce json
// @Param request body dto.CreateTopicRequest true "Topic"
// @Success 201 {object} dto.TopicResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /topics [post]
func (h *TopicHandler) CreateTopic(c *fiber.Ctx) error {
	var req dto.CreateTopicRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if err := h.validator.ValidateStruct(&req); err != nil {
		return err
	}

	topic, err := h.service.CreateTopic(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(topic)
}

// UpdateTopic godoc
// @Summary Update a topic
// @Description Partially updates a topic; omitted fields are left unchanged
// @Tags topics
// @Accept json
// @Produce json
// @Param id path string true "Topic ID (ULID)"
// @Param request body dto.UpdateTopicRequest true "Fields to change"
// @Success 200 {object} dto.TopicResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /topics/{id} [patch]
func (h *TopicHandler) UpdateTopic(c *fiber.Ctx) error {
	var req dto.UpdateTopicRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if err := h.validator.ValidateStruct(&req); err != nil {
		return err
	}

	topic, err := h.service.UpdateTopic(c.Context(), c.Params("id"), &req)
	if err != nil {
		return err
	}
	return c.JSON(topic)
}

// DeleteTopic godoc
// @Summary Delete a topic
// @Description Deletes a topic together with its generated questions
// @Tags topics
// @Param id path string true "Topic ID (ULID)"
// @Success 204
// @Failure 404 {object} middleware.ErrorResponse
// @Router /topics/{id} [delete]
func (h *TopicHandler) DeleteTopic(c *fiber.Ctx) error {
	if err := h.service.DeleteTopic(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
