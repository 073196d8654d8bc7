package route

import (
	"github.com/gofiber/fiber/v2"

	"ucentric_backend/internals/features/users/auth/controller"
	"ucentric_backend/internals/features/users/auth/service"
)

// AuthRoutes: login publik (rate limited), me/logout butuh token.
func AuthRoutes(api fiber.Router, svc *service.AuthService, protect, loginLimiter fiber.Handler, secureCookie bool) {
	ctrl := controller.NewAuthController(svc, secureCookie)

	g := api.Group("/auth")
	g.Post("/login", loginLimiter, ctrl.Login)
	g.Get("/me", protect, ctrl.Me)
	g.Post("/logout", protect, ctrl.Logout)
}
