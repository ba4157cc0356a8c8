package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/travigo/planner/pkg/agent"
)

func APIVersion(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"version": agent.Version,
	})
}
