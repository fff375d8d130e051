package controller

import (
	"migratemate-retention-be/internal/pkg/serverutils"
	"migratemate-retention-be/internal/repository/unitofwork"

	"github.com/gofiber/fiber/v2"
)

type IHealthController interface {
	RegisterRoutes(r fiber.Router)
	HealthDB(ctx *fiber.Ctx) error
}

type healthController struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewHealthController(uowFactory unitofwork.RepositoryFactory) IHealthController {
	return &healthController{uowFactory: uowFactory}
}

func (c *healthController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/health")
	h.Get("/db", c.HealthDB)
}

// HealthDB pulls a few user rows; a successful read proves connectivity and
// that the schema is reachable.
func (c *healthController) HealthDB(ctx *fiber.Ctx) error {
	uow := c.uowFactory.NewUnitOfWork(ctx.Context())

	sample, err := uow.UserRepository().Sample(ctx.Context(), 5)
	if err != nil {
		return err
	}

	type row struct {
		Id    string `json:"id"`
		Email string `json:"email"`
	}
	rows := make([]row, 0, len(sample))
	for _, u := range sample {
		rows = append(rows, row{Id: u.Id.String(), Email: u.Email})
	}

	return ctx.JSON(serverutils.SuccessResponse("Database reachable", rows))
}
