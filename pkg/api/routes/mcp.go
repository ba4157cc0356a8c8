package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/travigo/planner/pkg/agent"
)

func MCPRouter(router fiber.Router, handler *agent.Handler) {
	router.Post("/tools/list", func(c *fiber.Ctx) error {
		return c.JSON(handler.ToolsList())
	})
	router.Post("/tools/call", callTool(handler))
}

func callTool(handler *agent.Handler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var call agent.ToolCall
		if err := c.BodyParser(&call); err != nil {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": "Body must be a tool call",
			})
		}

		return c.JSON(handler.CallTool(c.UserContext(), call))
	}
}
