package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ucentric_backend/internals/features/mitra/controller"
	"ucentric_backend/internals/features/mitra/repository"
)

func MitraRoutes(api fiber.Router, db *gorm.DB, guard fiber.Handler) {
	ctrl := controller.NewMitraController(repository.NewMitraRepository(db))

	g := api.Group("/mitra", guard)
	g.Get("/", ctrl.List)
	g.Get("/:token", ctrl.Get)
}
