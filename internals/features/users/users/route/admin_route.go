package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ucentric_backend/internals/features/users/users/controller"
	"ucentric_backend/internals/features/users/users/repository"
	"ucentric_backend/internals/features/users/users/service"
)

// UserAdminRoutes: semua verb butuh admin/superadmin (dijaga policy "users").
func UserAdminRoutes(api fiber.Router, db *gorm.DB, guard fiber.Handler) {
	ctrl := controller.NewUserController(service.NewUserService(repository.NewUserRepository(db)))
	MountUserRoutes(api, ctrl, guard)
}

func MountUserRoutes(api fiber.Router, ctrl *controller.UserController, guard fiber.Handler) {
	g := api.Group("/users", guard)
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.Get)
	g.Post("/", ctrl.Create)
	g.Put("/", ctrl.Update)
	g.Put("/:id", ctrl.Update)
	g.Delete("/", ctrl.Delete)
	g.Delete("/:id", ctrl.Delete)
}
