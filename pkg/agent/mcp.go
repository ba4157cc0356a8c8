package agent

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/travigo/planner/pkg/planner"
)

const ToolPlanTrip = "plan_mbta_trip"

type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

type ToolsList struct {
	Tools []Tool `json:"tools"`
}

type ToolCall struct {
	Name      string                 `json:"name"`
	Arguments map[string]interface{} `json:"arguments"`
}

type ToolContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type ToolResult struct {
	Content []ToolContent `json:"content,omitempty"`
	Error   string        `json:"error,omitempty"`
}

func (h *Handler) ToolsList() ToolsList {
	return ToolsList{
		Tools: []Tool{
			{
				Name:        ToolPlanTrip,
				Description: "Plan a trip between two MBTA stops, including transfers if needed.",
				InputSchema: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"origin":      map[string]interface{}{"type": "string", "description": "Origin stop name"},
						"destination": map[string]interface{}{"type": "string", "description": "Destination stop name"},
					},
					"required": []string{"origin", "destination"},
				},
			},
		},
	}
}

func (h *Handler) CallTool(ctx context.Context, call ToolCall) ToolResult {
	log.Info().Str("tool", call.Name).Msg("Tool call")

	if call.Name != ToolPlanTrip {
		return ToolResult{Error: fmt.Sprintf("Unknown tool: %s", call.Name)}
	}

	origin, _ := call.Arguments["origin"].(string)
	destination, _ := call.Arguments["destination"].(string)

	result := h.Planner.Plan(ctx, origin, destination)

	return ToolResult{
		Content: []ToolContent{
			{Type: "text", Text: planner.Text(result)},
		},
	}
}
