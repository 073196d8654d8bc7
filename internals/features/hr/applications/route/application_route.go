package route

import (
	"github.com/gofiber/fiber/v2"

	"ucentric_backend/internals/features/hr/applications/controller"
	"ucentric_backend/internals/features/hr/applications/service"
)

// ApplicationDashboardRoutes: /applications di bawah /api/d.
func ApplicationDashboardRoutes(api fiber.Router, svc *service.ApplicationService, guard fiber.Handler) {
	ctrl := controller.NewApplicationController(svc)

	g := api.Group("/applications", guard)
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.Get)
	g.Post("/", ctrl.Submit)
	g.Put("/", ctrl.UpdateStatus)
	g.Put("/:id", ctrl.UpdateStatus)
	g.Delete("/", ctrl.Delete)
	g.Delete("/:id", ctrl.Delete)
}

// ApplicationPublicRoutes: form lamaran publik, dibatasi per IP.
func ApplicationPublicRoutes(public fiber.Router, svc *service.ApplicationService, limiter fiber.Handler) {
	ctrl := controller.NewApplicationController(svc)
	public.Post("/applications", limiter, ctrl.Submit)
}
