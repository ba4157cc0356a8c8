package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/travigo/planner/pkg/agent"
)

func AgentRouter(router fiber.Router, handler *agent.Handler) {
	router.Post("/message", postMessage(handler))
}

func postMessage(handler *agent.Handler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var message agent.Message
		if err := c.BodyParser(&message); err != nil {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": "Body must be an agent message",
			})
		}

		return c.JSON(handler.HandleMessage(c.UserContext(), message))
	}
}
