package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/travigo/planner/pkg/agent"
)

func Health(handler *agent.Handler, mbtaConfigured bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var provider interface{}
		if p := handler.LLMProvider(); p != "" {
			provider = p
		}

		return c.JSON(fiber.Map{
			"ok":                       true,
			"service":                  agent.Name,
			"version":                  agent.Version,
			"mbta_api_configured":      mbtaConfigured,
			"llm_extraction_available": provider != nil,
			"llm_provider":             provider,
		})
	}
}
