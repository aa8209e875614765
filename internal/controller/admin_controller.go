package controller

import (
	"ai-tireshop-be/internal/dto"
	"ai-tireshop-be/internal/pkg/serverutils"
	"ai-tireshop-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
	ListLeads(ctx *fiber.Ctx) error
	ListConversations(ctx *fiber.Ctx) error
}

type adminController struct {
	adminService service.IAdminService
}

func NewAdminController(adminService service.IAdminService) IAdminController {
	return &adminController{
		adminService: adminService,
	}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("leads", c.ListLeads)
	h.Get("conversations", c.ListConversations)
}

func (c *adminController) ListLeads(ctx *fiber.Ctx) error {
	var q dto.AdminListQuery
	if err := ctx.QueryParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid query parameters")
	}
	if err := serverutils.ValidateRequest(q); err != nil {
		return err
	}

	res, err := c.adminService.GetLeads(ctx.Context(), q.Limit, q.Offset)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get leads", res))
}

func (c *adminController) ListConversations(ctx *fiber.Ctx) error {
	var q dto.AdminListQuery
	if err := ctx.QueryParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid query parameters")
	}
	if err := serverutils.ValidateRequest(q); err != nil {
		return err
	}

	res, err := c.adminService.GetConversations(ctx.Context(), q.Limit, q.Offset)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get conversations", res))
}
