// FILE: internal/controller/cancellation_controller.go
package controller

import (
	"strings"

	"migratemate-retention-be/internal/dto"
	"migratemate-retention-be/internal/pkg/serverutils"
	"migratemate-retention-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICancellationController interface {
	RegisterRoutes(r fiber.Router)
	Init(ctx *fiber.Ctx) error
	Accept(ctx *fiber.Ctx) error
	Reason(ctx *fiber.Ctx) error
	Cancel(ctx *fiber.Ctx) error
	NextStep(ctx *fiber.Ctx) error
	UpdateSession(ctx *fiber.Ctx) error
}

type cancellationController struct {
	service service.ICancellationService
}

func NewCancellationController(service service.ICancellationService) ICancellationController {
	return &cancellationController{service: service}
}

func (c *cancellationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/cancellation")
	// GET is what the client uses; POST kept for older clients.
	h.Get("/init", c.Init)
	h.Post("/init", c.Init)
	h.Post("/accept", c.Accept)
	h.Post("/reason", c.Reason)
	h.Post("/cancel", c.Cancel)
	h.Get("/next-step", c.NextStep)
	h.Put("/session", c.UpdateSession)
}

func (c *cancellationController) Init(ctx *fiber.Ctx) error {
	email, err := emailFromQueryOrBody(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.AssignOrGetVariant(ctx.Context(), email)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Variant assigned", res))
}

func (c *cancellationController) Accept(ctx *fiber.Ctx) error {
	var req dto.AcceptDownsellRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid JSON body")
	}
	req.Email = normalizeEmail(req.Email)
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.AcceptDownsell(ctx.Context(), req.Email)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Downsell accepted", res))
}

func (c *cancellationController) Reason(ctx *fiber.Ctx) error {
	var req dto.SubmitReasonRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid JSON body")
	}
	req.Email = normalizeEmail(req.Email)
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.service.SubmitReason(ctx.Context(), &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Reason recorded", nil))
}

func (c *cancellationController) Cancel(ctx *fiber.Ctx) error {
	var req dto.MarkPendingCancellationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid JSON body")
	}
	req.Email = normalizeEmail(req.Email)
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.MarkPendingCancellation(ctx.Context(), req.Email)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Subscription pending cancellation", res))
}

func (c *cancellationController) NextStep(ctx *fiber.Ctx) error {
	email := normalizeEmail(ctx.Query("email"))
	if err := serverutils.ValidateRequest(dto.InitCancellationRequest{Email: email}); err != nil {
		return err
	}

	res, err := c.service.NextStep(ctx.Context(), email)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Next step", res))
}

func (c *cancellationController) UpdateSession(ctx *fiber.Ctx) error {
	var req dto.UpdateFlowSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid JSON body")
	}
	req.Email = normalizeEmail(req.Email)
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.service.UpdateSession(ctx.Context(), &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Session updated", nil))
}

func emailFromQueryOrBody(ctx *fiber.Ctx) (string, error) {
	email := ctx.Query("email")
	if email == "" {
		var req dto.InitCancellationRequest
		if err := ctx.BodyParser(&req); err == nil {
			email = req.Email
		}
	}
	email = normalizeEmail(email)
	if err := serverutils.ValidateRequest(dto.InitCancellationRequest{Email: email}); err != nil {
		return "", err
	}
	return email, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
