package service

import (
	"context"
	"encoding/json"

	"ai-tireshop-be/internal/dto"
	"ai-tireshop-be/internal/pkg/logger"
	"ai-tireshop-be/internal/pkg/mailer"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the lead-alert topic and emails the sales inbox.
// Alerts are best effort: a failed send is logged and acked, never retried
// into a hot loop.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	alertEmail string
	mailer     mailer.IEmailService
	logger     logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	alertEmail string,
	emailService mailer.IEmailService,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		alertEmail: alertEmail,
		mailer:     emailService,
		logger:     log,
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
	var payload dto.LeadAlertMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("Consumer", "failed to unmarshal lead alert", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // malformed payloads would never succeed on retry
		return
	}

	if cs.alertEmail == "" || cs.mailer == nil {
		cs.logger.Warn("Consumer", "lead alert dropped, no alert email configured", map[string]interface{}{
			"lead_id": payload.LeadId.String(),
		})
		msg.Ack()
		return
	}

	alert := mailer.LeadAlert{
		LeadId:    payload.LeadId.String(),
		LeadType:  payload.LeadType,
		SessionId: payload.SessionId,
		Email:     payload.Email,
		Phone:     payload.Phone,
		TireSize:  payload.TireSize,
		Notes:     payload.Notes,
	}

	if err := cs.mailer.SendLeadAlert(cs.alertEmail, alert); err != nil {
		cs.logger.Error("Consumer", "failed to send lead alert email", map[string]interface{}{
			"lead_id": payload.LeadId.String(),
			"error":   err.Error(),
		})
		msg.Ack() // the lead itself is persisted; losing the email is acceptable
		return
	}

	cs.logger.Info("Consumer", "lead alert email sent", map[string]interface{}{
		"lead_id":   payload.LeadId.String(),
		"lead_type": payload.LeadType,
	})
	msg.Ack()
}
