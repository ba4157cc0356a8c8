package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/travigo/planner/pkg/agent"
	"github.com/travigo/planner/pkg/api/routes"
)

func NewApp(handler *agent.Handler, mbtaConfigured bool) *fiber.App {
	webApp := fiber.New(fiber.Config{
		AppName:               agent.Name,
		DisableStartupMessage: true,
	})
	webApp.Use(NewLogger())
	webApp.Use(recover.New())

	webApp.Get("version", routes.APIVersion)
	webApp.Get("health", routes.Health(handler, mbtaConfigured))

	routes.PlanRouter(webApp.Group("/plan"), handler.Planner)
	routes.AgentRouter(webApp.Group("/a2a"), handler)
	routes.MCPRouter(webApp.Group("/mcp"), handler)

	return webApp
}

func SetupServer(listen string, handler *agent.Handler, mbtaConfigured bool) error {
	return NewApp(handler, mbtaConfigured).Listen(listen)
}
