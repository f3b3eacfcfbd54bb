package handler

import (
	"mathdrill/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the topic, question and provider routes on the /api group
func RegisterRoutes(api fiber.Router, topics *TopicHandler, questions *QuestionHandler) {
	vm := middleware.NewValidationMiddleware()

	api.Get("/topics", topics.ListTopics)
	api.Post("/topics", topics.CreateTopic)
	api.Get("/topics/:id", vm.ValidateIDParam(), topics.GetTopic)
	api.Patch("/topics/:id", vm.ValidateIDParam(), topics.UpdateTopic)
	api.Delete("/topics/:id", vm.ValidateIDParam(), topics.DeleteTopic)

	api.Get("/questions", vm.ValidateTopicQuery(), questions.ListQuestions)
	api.Post("/questions/generate", questions.GenerateQuestion)

	api.Get("/ai/providers", questions.ListProviders)
}
