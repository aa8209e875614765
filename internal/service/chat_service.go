package service

import (
	"context"
	"fmt"
	"time"

	"ai-tireshop-be/internal/constant"
	"ai-tireshop-be/internal/dto"
	"ai-tireshop-be/internal/entity"
	"ai-tireshop-be/internal/pkg/logger"
	"ai-tireshop-be/internal/repository/specification"
	"ai-tireshop-be/internal/repository/unitofwork"
	"ai-tireshop-be/pkg/chat/chaterr"
	"ai-tireshop-be/pkg/chat/extract"
	"ai-tireshop-be/pkg/chat/grounding"
	"ai-tireshop-be/pkg/chat/prompt"
	"ai-tireshop-be/pkg/chat/ratelimit"
	"ai-tireshop-be/pkg/chat/recommend"
	"ai-tireshop-be/pkg/chat/sanitize"
	"ai-tireshop-be/pkg/chat/validate"
	"ai-tireshop-be/pkg/events"
	"ai-tireshop-be/pkg/llm"
)

// EventPublisher is the outbound domain-event bus (NATS in production).
// A nil publisher disables events without changing the pipeline.
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// IChatService defines the conversational pipeline entrypoints
type IChatService interface {
	SendMessage(ctx context.Context, body map[string]interface{}) (*dto.ChatMessageResponse, error)
	GetHistory(ctx context.Context, sessionId string) (*dto.ChatHistoryResponse, error)
}

type chatService struct {
	uowFactory  unitofwork.RepositoryFactory
	llmProvider llm.LLMProvider
	limiter     ratelimit.Limiter
	assembler   *grounding.Assembler
	alerts      IPublisherService
	eventBus    EventPublisher
	logger      logger.ILogger
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	llmProvider llm.LLMProvider,
	limiter ratelimit.Limiter,
	assembler *grounding.Assembler,
	alerts IPublisherService,
	eventBus EventPublisher,
	log logger.ILogger,
) IChatService {
	return &chatService{
		uowFactory:  uowFactory,
		llmProvider: llmProvider,
		limiter:     limiter,
		assembler:   assembler,
		alerts:      alerts,
		eventBus:    eventBus,
		logger:      log,
	}
}

// SendMessage runs the five pipeline stages in order: validate, rate-limit,
// assemble grounding, ask the provider, extract entities and persist.
// Validation and rate-limit failures are terminal with no side effects.
// Provider failure degrades to a static apology; persistence failures are
// logged and never alter the reply the customer sees.
func (cs *chatService) SendMessage(ctx context.Context, body map[string]interface{}) (*dto.ChatMessageResponse, error) {
	if cs.llmProvider == nil {
		return nil, chaterr.New(chaterr.KindMisconfiguredServer, "no LLM provider configured")
	}

	req, verr := validate.Validate(body)
	if verr != nil {
		return nil, verr
	}

	decision, err := cs.limiter.Allow(ctx, req.SessionId)
	if err != nil {
		// A broken limiter backend should not take the assistant down.
		cs.logger.Warn("Chat", "rate limiter unavailable, allowing request", map[string]interface{}{
			"session_id": req.SessionId,
			"error":      err.Error(),
		})
	} else if !decision.Allowed {
		return nil, chaterr.RateLimited(decision.RetryAfterSeconds)
	}

	ctx, cancel := context.WithTimeout(ctx, constant.PipelineTimeoutSeconds*time.Second)
	defer cancel()

	bundle := cs.assembler.Assemble(ctx, req.Message)
	extraction := extract.FromMessage(req.Message)

	reply, providerOk := cs.askProvider(ctx, req, bundle)

	var recommended []*entity.Product
	if providerOk {
		recommended = recommend.FromReply(reply, bundle.Products)
	}

	conversation := cs.persistExchange(ctx, req, reply, extraction.Intent, recommended)

	leadCreated := false
	var leadId *string
	if extraction.ShouldCaptureLead() && conversation != nil {
		leadCreated, leadId = cs.recordLead(ctx, req, conversation, extraction)
	}

	return &dto.ChatMessageResponse{
		Message:                   reply,
		Intent:                    extraction.Intent,
		RecommendedProducts:       recommend.Ids(recommended),
		RecommendedProductDetails: toProductDetails(recommended),
		LeadCreated:               leadCreated,
		LeadId:                    leadId,
	}, nil
}

// askProvider builds the system prompt from the grounding bundle, replays the
// client-supplied history and sends the new turn. Exactly one provider call
// is made; on failure the customer gets the static fallback with the shop's
// phone number instead of an error response.
func (cs *chatService) askProvider(ctx context.Context, req *validate.Request, bundle *grounding.Bundle) (string, bool) {
	history := make([]llm.Message, 0, len(req.History)+2)
	history = append(history, llm.Message{
		Role:    constant.ChatMessageRoleSystem,
		Content: prompt.NewSystemBuilder(bundle, req.CurrentContext).Build(),
	})
	for _, h := range req.History {
		history = append(history, llm.Message{Role: h.Role, Content: h.Content})
	}
	history = append(history, llm.Message{
		Role:    constant.ChatMessageRoleUser,
		Content: req.Message,
	})

	reply, err := cs.llmProvider.Chat(ctx, history, llm.WithTemperature(0.4))
	if err != nil {
		cs.logger.Error("Chat", "provider call failed, using fallback reply", map[string]interface{}{
			"session_id": req.SessionId,
			"error":      err.Error(),
		})
		return fmt.Sprintf(constant.FallbackReplyTemplate, bundle.CompanyPhone()), false
	}

	return reply, true
}

// persistExchange appends the user/assistant pair to the conversation,
// creating the row on the session's first message. Returns nil when nothing
// could be persisted; the reply is still served.
func (cs *chatService) persistExchange(
	ctx context.Context,
	req *validate.Request,
	reply string,
	intent string,
	recommended []*entity.Product,
) *entity.Conversation {
	uow := cs.uowFactory.NewUnitOfWork(ctx)
	convRepo := uow.ConversationRepository()

	now := time.Now()
	newMessages := []entity.ChatMessage{
		{Role: constant.ChatMessageRoleUser, Content: req.Message, CreatedAt: now},
		{Role: constant.ChatMessageRoleAssistant, Content: reply, CreatedAt: now},
	}
	recommendedIds := recommend.Ids(recommended)

	conversation, err := convRepo.FindOne(ctx, specification.BySessionID{SessionID: req.SessionId})
	if err != nil {
		cs.logger.Error("Chat", "conversation lookup failed", map[string]interface{}{
			"session_id": req.SessionId,
			"error":      err.Error(),
		})
		return nil
	}

	if conversation == nil {
		conversation = &entity.Conversation{
			SessionId:           req.SessionId,
			Channel:             req.Channel,
			Intent:              intent,
			Messages:            newMessages,
			RecommendedProducts: recommendedIds,
		}
		if err := convRepo.Create(ctx, conversation); err != nil {
			// Two first messages can race on the session_id unique index;
			// the loser falls back to appending to the winner's row.
			existing, findErr := convRepo.FindOne(ctx, specification.BySessionID{SessionID: req.SessionId})
			if findErr != nil || existing == nil {
				cs.logger.Error("Chat", "conversation create failed", map[string]interface{}{
					"session_id": req.SessionId,
					"error":      err.Error(),
				})
				return nil
			}
			conversation = existing
			if appendErr := convRepo.AppendMessages(ctx, conversation.Id, newMessages, intent, recommendedIds); appendErr != nil {
				cs.logger.Error("Chat", "conversation append failed", map[string]interface{}{
					"session_id": req.SessionId,
					"error":      appendErr.Error(),
				})
				return nil
			}
		}
	} else {
		if err := convRepo.AppendMessages(ctx, conversation.Id, newMessages, intent, recommendedIds); err != nil {
			cs.logger.Error("Chat", "conversation append failed", map[string]interface{}{
				"session_id": req.SessionId,
				"error":      err.Error(),
			})
			return conversation
		}
		conversation.Messages = append(conversation.Messages, newMessages...)
	}

	cs.publishEvent(events.NewConversationUpdated(
		conversation.Id.String(), req.SessionId, intent, len(conversation.Messages),
	))

	return conversation
}

// recordLead upserts at most one lead per conversation and, for a brand new
// lead carrying contact info, fires the staff alert. Everything in here is
// best effort.
func (cs *chatService) recordLead(
	ctx context.Context,
	req *validate.Request,
	conversation *entity.Conversation,
	extraction extract.Extraction,
) (bool, *string) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	lead := &entity.Lead{
		ConversationId: conversation.Id,
		SessionId:      req.SessionId,
		LeadType:       extraction.Intent,
		Email:          extraction.Email,
		Phone:          extraction.Phone,
		TireSize:       extraction.TireSize,
		Notes:          sanitize.CleanAndTruncate(req.Message, constant.MaxLeadNoteLength),
		Status:         constant.LeadStatusNew,
	}

	created, err := uow.LeadRepository().Upsert(ctx, lead)
	if err != nil {
		cs.logger.Error("Chat", "lead upsert failed", map[string]interface{}{
			"session_id": req.SessionId,
			"error":      err.Error(),
		})
		return false, nil
	}

	id := lead.Id.String()

	if created {
		cs.publishEvent(events.NewLeadCreated(
			id, conversation.Id.String(), lead.LeadType, lead.Email, lead.Phone,
		))

		if lead.Email != "" || lead.Phone != "" {
			cs.notifyStaff(lead)
		}
	}

	return created, &id
}

// notifyStaff hands the alert to the in-process topic; the notification
// worker delivers the email. Never blocks or surfaces to the customer.
func (cs *chatService) notifyStaff(lead *entity.Lead) {
	if cs.alerts == nil {
		return
	}
	alert := &dto.LeadAlertMessage{
		LeadId:    lead.Id,
		SessionId: lead.SessionId,
		LeadType:  lead.LeadType,
		Email:     lead.Email,
		Phone:     lead.Phone,
		TireSize:  lead.TireSize,
		Notes:     lead.Notes,
	}
	if err := cs.alerts.PublishLeadAlert(alert); err != nil {
		cs.logger.Warn("Chat", "lead alert publish failed", map[string]interface{}{
			"lead_id": lead.Id.String(),
			"error":   err.Error(),
		})
	}
}

func (cs *chatService) publishEvent(event events.Event) {
	if cs.eventBus == nil {
		return
	}
	// Detached context: the request may already be done and events are
	// best effort anyway.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := cs.eventBus.Publish(ctx, event); err != nil {
		cs.logger.Warn("Chat", "event publish failed", map[string]interface{}{
			"event": event.EventType(),
			"error": err.Error(),
		})
	}
}

// GetHistory returns the stored transcript for a session. Unknown sessions
// yield an empty transcript so the widget can always rehydrate.
func (cs *chatService) GetHistory(ctx context.Context, sessionId string) (*dto.ChatHistoryResponse, error) {
	sessionId = sanitize.CleanAndTruncate(sessionId, constant.MaxSessionIdLength)
	if sessionId == "" {
		return nil, chaterr.New(chaterr.KindInvalidSession, "sessionId must not be empty")
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	conversation, err := uow.ConversationRepository().FindOne(ctx, specification.BySessionID{SessionID: sessionId})
	if err != nil {
		return nil, err
	}

	resp := &dto.ChatHistoryResponse{
		SessionId: sessionId,
		Messages:  []dto.ChatHistoryMessage{},
	}
	if conversation == nil {
		return resp, nil
	}

	resp.Channel = conversation.Channel
	resp.Intent = conversation.Intent
	for _, m := range conversation.Messages {
		resp.Messages = append(resp.Messages, dto.ChatHistoryMessage{
			Role:      m.Role,
			Content:   m.Content,
			CreatedAt: m.CreatedAt,
		})
	}

	return resp, nil
}

func toProductDetails(products []*entity.Product) []dto.ProductDetailDTO {
	details := make([]dto.ProductDetailDTO, len(products))
	for i, p := range products {
		details[i] = dto.ProductDetailDTO{
			Id:           p.Id,
			Size:         p.Size,
			Vendor:       p.Vendor,
			Type:         p.Type,
			Price:        p.Price,
			Availability: p.Availability,
			Description:  p.Description,
		}
	}
	return details
}
