package controller

import (
	"ai-tireshop-be/internal/service"
	"ai-tireshop-be/pkg/chat/chaterr"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	SendMessage(ctx *fiber.Ctx) error
	GetHistory(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
}

func NewChatController(chatService service.IChatService) IChatController {
	return &chatController{
		chatService: chatService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat/v1")
	h.Post("message", c.SendMessage)
	h.Get("history/:sessionId", c.GetHistory)
}

// SendMessage accepts the raw JSON body as-is; field validation lives in the
// pipeline so that malformed and invalid requests produce the same error
// shape.
func (c *chatController) SendMessage(ctx *fiber.Ctx) error {
	var body map[string]interface{}
	if err := ctx.BodyParser(&body); err != nil {
		return chaterr.Wrap(chaterr.KindMalformedRequest, "request body must be a JSON object", err)
	}

	res, err := c.chatService.SendMessage(ctx.Context(), body)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *chatController) GetHistory(ctx *fiber.Ctx) error {
	res, err := c.chatService.GetHistory(ctx.Context(), ctx.Params("sessionId"))
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
