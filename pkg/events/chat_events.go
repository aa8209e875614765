package events

import "time"

const (
	TypeLeadCreated         = "LEAD_CREATED"
	TypeConversationUpdated = "CONVERSATION_UPDATED"
)

// NewLeadCreated announces a freshly captured sales lead to downstream
// consumers (dashboards, CRM sync).
func NewLeadCreated(leadId, conversationId, leadType, email, phone string) Event {
	return BaseEvent{
		Type: TypeLeadCreated,
		Data: map[string]interface{}{
			"lead_id":         leadId,
			"conversation_id": conversationId,
			"lead_type":       leadType,
			"email":           email,
			"phone":           phone,
		},
		OccurredAt: time.Now(),
	}
}

// NewConversationUpdated announces that a transcript grew by one exchange.
func NewConversationUpdated(conversationId, sessionId, intent string, messageCount int) Event {
	return BaseEvent{
		Type: TypeConversationUpdated,
		Data: map[string]interface{}{
			"conversation_id": conversationId,
			"session_id":      sessionId,
			"intent":          intent,
			"message_count":   messageCount,
		},
		OccurredAt: time.Now(),
	}
}
