package contract

import (
	"context"

	"ai-tireshop-be/internal/entity"
	"ai-tireshop-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ConversationRepository interface {
	Create(ctx context.Context, conversation *entity.Conversation) error
	// AppendMessages atomically appends the given turns to the transcript and
	// overwrites intent and recommended products. Prior entries are never
	// rewritten; concurrent appends in one session both land.
	AppendMessages(ctx context.Context, id uuid.UUID, messages []entity.ChatMessage, intent string, recommendedProducts []string) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Conversation, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Conversation, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
