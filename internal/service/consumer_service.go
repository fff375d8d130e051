package service

import (
	"context"
	"encoding/json"
	"log"

	"migratemate-retention-be/internal/dto"
	"migratemate-retention-be/internal/pkg/mailer"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the cancellation-event topic and sends the
// corresponding confirmation emails off the request path, so a slow SMTP
// server never delays the wizard.
type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	mailer    mailer.IEmailService
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	emailService mailer.IEmailService,
) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		mailer:    emailService,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	var payload dto.CancellationEventMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal cancellation event: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	switch payload.Type {
	case dto.EventReasonRecorded:
		if err := cs.mailer.SendCancellationConfirmed(payload.Email); err != nil {
			log.Printf("[ERROR] Failed to send cancellation confirmation to %s: %v", payload.Email, err)
			msg.Nack() // Retriable: SMTP may come back
			return
		}
	case dto.EventDownsellAccepted:
		if err := cs.mailer.SendDiscountApplied(payload.Email); err != nil {
			log.Printf("[ERROR] Failed to send discount confirmation to %s: %v", payload.Email, err)
			msg.Nack()
			return
		}
	default:
		log.Printf("[WARN] Unknown cancellation event type: %s", payload.Type)
	}

	msg.Ack()
}
