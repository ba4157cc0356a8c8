package agent

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/travigo/planner/pkg/extraction"
	"github.com/travigo/planner/pkg/planner"
	"github.com/travigo/planner/pkg/util"
)

const (
	Name    = "mbta-planner-agent"
	Version = "1.0.0"
)

const (
	MessageTypeRequest  = "request"
	MessageTypeResponse = "response"
	MessageTypeError    = "error"

	StatusSuccess = "success"
	StatusPartial = "partial"
	StatusError   = "error"
)

// Message is the agent-to-agent envelope used over HTTP and the queue.
type Message struct {
	Type     string                 `json:"type"`
	Payload  map[string]interface{} `json:"payload"`
	Metadata map[string]interface{} `json:"metadata"`
}

func (m Message) MessageID() string {
	id, _ := m.Metadata["message_id"].(string)
	return id
}

type Handler struct {
	Planner   *planner.Planner
	Extractor *extraction.Extractor

	now func() time.Time
}

func NewHandler(p *planner.Planner, extractor *extraction.Extractor) *Handler {
	return &Handler{
		Planner:   p,
		Extractor: extractor,
		now:       time.Now,
	}
}

func (h *Handler) LLMProvider() string {
	if h.Extractor == nil {
		return ""
	}

	return h.Extractor.Provider()
}

// HandleMessage answers a request envelope. Every other message type gets an
// error envelope back.
func (h *Handler) HandleMessage(ctx context.Context, message Message) Message {
	log.Info().Str("type", message.Type).Msg("Received agent message")

	if message.Type != MessageTypeRequest {
		return Message{
			Type: MessageTypeError,
			Payload: map[string]interface{}{
				"text": fmt.Sprintf("Unsupported message type: %s", message.Type),
			},
			Metadata: map[string]interface{}{
				"status": StatusError,
			},
		}
	}

	query, _ := message.Payload["message"].(string)
	log.Info().Str("query", util.TrimString(query, 200)).Msg("Processing trip planning query")

	locations := h.extract(ctx, query)

	if locations.Destination == "" {
		return Message{
			Type: MessageTypeResponse,
			Payload: map[string]interface{}{
				"ok":   false,
				"text": "I couldn't understand where you want to go. Please specify your destination. For example: 'How do I get to Harvard?' or 'Take me from Park Street to Kenmore.'",
			},
			Metadata: map[string]interface{}{
				"status": StatusError,
				"agent":  Name,
			},
		}
	}

	if locations.Origin == "" {
		return Message{
			Type: MessageTypeResponse,
			Payload: map[string]interface{}{
				"ok":   false,
				"text": fmt.Sprintf("I can help you get to %s! Where are you starting from? For example: 'From Park Street to %s'", locations.Destination, locations.Destination),
			},
			Metadata: map[string]interface{}{
				"status": StatusPartial,
				"agent":  Name,
			},
		}
	}

	result := h.Planner.Plan(ctx, locations.Origin, locations.Destination)

	payload, err := responsePayload(planner.NewResponse(result), planner.ViewDetailed)
	if err != nil {
		log.Error().Err(err).Msg("Failed to render plan")
		return errorMessage()
	}

	provider := h.LLMProvider()
	if provider == "" {
		provider = "none"
	}

	return Message{
		Type:    MessageTypeResponse,
		Payload: payload,
		Metadata: map[string]interface{}{
			"status":             StatusSuccess,
			"agent":              Name,
			"origin_parsed":      locations.Origin,
			"destination_parsed": locations.Destination,
			"extraction_source":  locations.Source,
			"llm_provider":       provider,
			"timestamp":          h.clock().Format(time.RFC3339),
			"message_id":         uuid.NewString(),
		},
	}
}

func (h *Handler) extract(ctx context.Context, query string) extraction.Locations {
	if h.Extractor == nil {
		origin, destination := extraction.ExtractBasic(query)
		return extraction.Locations{Origin: origin, Destination: destination, Source: extraction.SourceHeuristic}
	}

	return h.Extractor.Extract(ctx, query)
}

func (h *Handler) clock() time.Time {
	if h.now == nil {
		return time.Now()
	}

	return h.now()
}

func errorMessage() Message {
	return Message{
		Type: MessageTypeError,
		Payload: map[string]interface{}{
			"text": "An error occurred while processing your request.",
		},
		Metadata: map[string]interface{}{
			"status": StatusError,
		},
	}
}

func responsePayload(response *planner.Response, view string) (map[string]interface{}, error) {
	reduced, err := response.Reduce(view)
	if err != nil {
		return nil, err
	}

	payload, ok := reduced.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("unexpected plan rendering %T", reduced)
	}

	return payload, nil
}
