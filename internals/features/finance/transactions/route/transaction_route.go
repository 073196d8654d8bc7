package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ucentric_backend/internals/features/finance/transactions/controller"
	"ucentric_backend/internals/features/finance/transactions/repository"
	"ucentric_backend/internals/features/finance/transactions/service"
)

func TransactionRoutes(api fiber.Router, db *gorm.DB, gateway service.Gateway, guard fiber.Handler) {
	svc := service.NewTransactionService(repository.NewTransactionRepository(db), gateway)
	ctrl := controller.NewTransactionController(svc)

	g := api.Group("/transactions", guard)
	g.Get("/", ctrl.List)
	g.Get("/:orderId/gateway-status", ctrl.GatewayStatus)
}
