package dto

import (
	"time"

	"github.com/google/uuid"
)

// ProductDetailDTO is one recommended product as returned to the widget.
type ProductDetailDTO struct {
	Id           uuid.UUID `json:"id"`
	Size         string    `json:"size"`
	Vendor       string    `json:"vendor"`
	Type         string    `json:"type,omitempty"`
	Price        float64   `json:"price"`
	Availability string    `json:"availability"`
	Description  string    `json:"description,omitempty"`
}

// ChatMessageResponse is the success envelope of POST /chat/v1/message.
type ChatMessageResponse struct {
	Message                   string             `json:"message"`
	Intent                    string             `json:"intent"`
	RecommendedProducts       []string           `json:"recommendedProducts"`
	RecommendedProductDetails []ProductDetailDTO `json:"recommendedProductDetails"`
	LeadCreated               bool               `json:"leadCreated"`
	LeadId                    *string            `json:"leadId"`
}

type ChatHistoryMessage struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// ChatHistoryResponse rehydrates the storefront widget after a reload.
// An unknown session yields an empty transcript, not an error.
type ChatHistoryResponse struct {
	SessionId string               `json:"sessionId"`
	Channel   string               `json:"channel,omitempty"`
	Intent    string               `json:"intent,omitempty"`
	Messages  []ChatHistoryMessage `json:"messages"`
}

// LeadAlertMessage is the payload published on the lead-alert topic and
// consumed by the notification worker.
type LeadAlertMessage struct {
	LeadId    uuid.UUID `json:"lead_id"`
	SessionId string    `json:"session_id"`
	LeadType  string    `json:"lead_type"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	TireSize  string    `json:"tire_size,omitempty"`
	Notes     string    `json:"notes,omitempty"`
}
