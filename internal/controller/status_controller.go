package controller

import (
	"migratemate-retention-be/internal/dto"
	"migratemate-retention-be/internal/pkg/serverutils"
	"migratemate-retention-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IStatusController interface {
	RegisterRoutes(r fiber.Router)
	UpsertMigrateStatus(ctx *fiber.Ctx) error
	SaveImprovement(ctx *fiber.Ctx) error
	UpsertUserStatus(ctx *fiber.Ctx) error
}

type statusController struct {
	service service.IStatusService
}

func NewStatusController(service service.IStatusService) IStatusController {
	return &statusController{service: service}
}

func (c *statusController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/status")
	h.Post("/migrate", c.UpsertMigrateStatus)
	h.Post("/migrate/improvement", c.SaveImprovement)
	h.Post("/user", c.UpsertUserStatus)
}

func (c *statusController) UpsertMigrateStatus(ctx *fiber.Ctx) error {
	var req dto.MigrateStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid JSON body")
	}
	req.Email = normalizeEmail(req.Email)
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.service.UpsertMigrateStatus(ctx.Context(), &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Survey saved", nil))
}

func (c *statusController) SaveImprovement(ctx *fiber.Ctx) error {
	var req dto.ImprovementRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid JSON body")
	}
	req.Email = normalizeEmail(req.Email)
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.service.SaveImprovement(ctx.Context(), &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Improvement saved", nil))
}

func (c *statusController) UpsertUserStatus(ctx *fiber.Ctx) error {
	var req dto.UserStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid JSON body")
	}
	req.Email = normalizeEmail(req.Email)
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.UpsertUserStatus(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("User status", res))
}
