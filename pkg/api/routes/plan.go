package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/travigo/planner/pkg/ctdf"
	"github.com/travigo/planner/pkg/planner"
)

func PlanRouter(router fiber.Router, tripPlanner *planner.Planner) {
	router.Get("/", getPlan(tripPlanner))
}

func getPlan(tripPlanner *planner.Planner) fiber.Handler {
	return func(c *fiber.Ctx) error {
		origin := c.Query("origin")
		destination := c.Query("destination")

		if origin == "" || destination == "" {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": "Parameters origin and destination are required",
			})
		}

		result := tripPlanner.Plan(c.UserContext(), origin, destination)

		planReduced, err := planner.NewResponse(result).Reduce(c.Query("view", planner.ViewDetailed))
		if err != nil {
			c.SendStatus(fiber.StatusInternalServerError)
			return c.JSON(fiber.Map{
				"error": "Sherrif could not reduce plan",
			})
		}

		switch result.Outcome {
		case ctdf.PlanOutcomeUpstreamFailure:
			c.Status(fiber.StatusServiceUnavailable)
		case ctdf.PlanOutcomeUnexpectedFailure:
			c.Status(fiber.StatusInternalServerError)
		}

		return c.JSON(planReduced)
	}
}
