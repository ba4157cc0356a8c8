package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/adjust/rmq/v5"
	"github.com/rs/zerolog/log"
	"github.com/travigo/planner/pkg/agent"
)

const DefaultRequestTimeout = 30 * time.Second

// Publisher is the part of rmq.Queue used to send replies.
type Publisher interface {
	PublishBytes(payload ...[]byte) error
}

// MessageBatchConsumer answers agent messages read from the request queue and
// publishes each reply to the response queue.
type MessageBatchConsumer struct {
	Handler   *agent.Handler
	Responses Publisher

	RequestTimeout time.Duration
}

func NewMessageBatchConsumer(handler *agent.Handler, responses Publisher) *MessageBatchConsumer {
	return &MessageBatchConsumer{
		Handler:        handler,
		Responses:      responses,
		RequestTimeout: DefaultRequestTimeout,
	}
}

func (c *MessageBatchConsumer) Consume(batch rmq.Deliveries) {
	for _, delivery := range batch {
		if err := c.process(context.Background(), delivery.Payload()); err != nil {
			log.Error().Err(err).Msg("Failed to process agent message")

			if rejectErr := delivery.Reject(); rejectErr != nil {
				log.Error().Err(rejectErr).Msg("Failed to reject delivery")
			}
			continue
		}

		if err := delivery.Ack(); err != nil {
			log.Error().Err(err).Msg("Failed to ack delivery")
		}
	}
}

func (c *MessageBatchConsumer) process(ctx context.Context, payload string) error {
	reply, err := c.handlePayload(ctx, payload)
	if err != nil {
		return err
	}

	return c.Responses.PublishBytes(reply)
}

func (c *MessageBatchConsumer) handlePayload(ctx context.Context, payload string) ([]byte, error) {
	var message agent.Message
	if err := json.Unmarshal([]byte(payload), &message); err != nil {
		return nil, fmt.Errorf("decoding agent message: %w", err)
	}

	if c.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.RequestTimeout)
		defer cancel()
	}

	reply := c.Handler.HandleMessage(ctx, message)

	if requestID := message.MessageID(); requestID != "" {
		if reply.Metadata == nil {
			reply.Metadata = map[string]interface{}{}
		}
		reply.Metadata["reply_to"] = requestID
	}

	return json.Marshal(reply)
}
