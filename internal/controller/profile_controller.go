package controller

import (
	"strconv"

	"migratemate-retention-be/internal/dto"
	"migratemate-retention-be/internal/pkg/serverutils"
	"migratemate-retention-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IProfileController interface {
	RegisterRoutes(r fiber.Router)
	GetProfile(ctx *fiber.Ctx) error
	GetOffer(ctx *fiber.Ctx) error
}

type profileController struct {
	service service.IProfileService
}

func NewProfileController(service service.IProfileService) IProfileController {
	return &profileController{service: service}
}

func (c *profileController) RegisterRoutes(r fiber.Router) {
	r.Get("/profile", c.GetProfile)
	r.Get("/offer", c.GetOffer)
}

func (c *profileController) GetProfile(ctx *fiber.Ctx) error {
	email := normalizeEmail(ctx.Query("email"))
	if err := serverutils.ValidateRequest(dto.InitCancellationRequest{Email: email}); err != nil {
		return err
	}

	res, err := c.service.GetProfile(ctx.Context(), email)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("User profile", res))
}

// GetOffer prices the downsell either from an explicit plan price or from
// the user's latest subscription.
func (c *profileController) GetOffer(ctx *fiber.Ctx) error {
	if planStr := ctx.Query("plan_cents"); planStr != "" {
		planCents, err := strconv.Atoi(planStr)
		if err != nil || planCents < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "plan_cents must be a non-negative integer")
		}
		return ctx.JSON(serverutils.SuccessResponse("Offer", c.service.GetOfferForPlan(planCents)))
	}

	email := normalizeEmail(ctx.Query("email"))
	if err := serverutils.ValidateRequest(dto.InitCancellationRequest{Email: email}); err != nil {
		return err
	}

	res, err := c.service.GetOffer(ctx.Context(), email)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Offer", res))
}
