package route

import (
	"github.com/gofiber/fiber/v2"

	"ucentric_backend/internals/features/hr/roles/controller"
	"ucentric_backend/internals/features/hr/roles/service"
)

// RoleDashboardRoutes: /roles di bawah /api/d, guard = authz.Require("roles").
func RoleDashboardRoutes(api fiber.Router, svc *service.RoleService, guard fiber.Handler) {
	ctrl := controller.NewRoleController(svc)

	g := api.Group("/roles", guard)
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.Get)
	g.Post("/", ctrl.Create)
	g.Put("/", ctrl.Update)
	g.Put("/:id", ctrl.Update)
	g.Delete("/", ctrl.Delete)
	g.Delete("/:id", ctrl.Delete)
}

// CareerPublicRoutes: halaman karir publik, hanya role aktif.
func CareerPublicRoutes(public fiber.Router, svc *service.RoleService) {
	ctrl := controller.NewRoleController(svc)

	g := public.Group("/careers")
	g.Get("/", ctrl.Careers)
	g.Get("/:slug", ctrl.CareerBySlug)
}
