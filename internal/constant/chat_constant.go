package constant

const (
	ChatMessageRoleUser      = "user"
	ChatMessageRoleAssistant = "assistant"
	ChatMessageRoleSystem    = "system"

	ChatChannelWeb      = "web"
	ChatChannelWhatsapp = "whatsapp"
	ChatChannelVoice    = "voice"

	// Validation limits
	MaxMessageLength   = 2000
	MaxSessionIdLength = 100
	MaxContextLength   = 500
	MaxHistoryEntries  = 20

	// Fixed-window rate limit defaults (per session)
	RateLimitWindowSeconds = 60
	RateLimitMaxRequests   = 20

	// End-to-end budget for one pipeline run
	PipelineTimeoutSeconds = 25

	// Catalog fetch cap, applied with or without a size filter
	MaxCatalogRows = 100

	// Max length of the raw message copied into lead notes
	MaxLeadNoteLength = 500
)

// Intent labels, in classification priority order.
const (
	IntentDealerInquiry   = "dealer_inquiry"
	IntentFleetInquiry    = "fleet_inquiry"
	IntentBookingRequest  = "booking_request"
	IntentQuoteRequest    = "quote_request"
	IntentCallbackRequest = "callback_request"
	IntentTireSearch      = "tire_search"
	IntentGeneralInquiry  = "general_inquiry"
)

const (
	LeadStatusNew = "new"

	NotificationTypeChatLead = "chat_lead"
)

// FallbackReplyTemplate is returned when the LLM provider fails.
// The %s placeholder receives the company phone number.
const FallbackReplyTemplate = "I apologize, but I'm having trouble responding right now. Please call us at %s and our team will be happy to help you."

// DefaultCompanyPhone is used when the company_info table has no phone row.
const DefaultCompanyPhone = "our store"
