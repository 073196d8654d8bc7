package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ucentric_backend/internals/features/finance/withdrawals/controller"
	"ucentric_backend/internals/features/finance/withdrawals/repository"
	"ucentric_backend/internals/features/finance/withdrawals/service"
)

func WithdrawalRoutes(api fiber.Router, db *gorm.DB, guard fiber.Handler) {
	ctrl := controller.NewWithdrawalController(service.NewWithdrawalService(repository.NewWithdrawalRepository(db)))

	g := api.Group("/withdrawals", guard)
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.Get)
	g.Put("/:id/status", ctrl.UpdateStatus)
}
