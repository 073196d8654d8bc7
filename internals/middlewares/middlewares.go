package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"

	"ucentric_backend/internals/configs"
	"ucentric_backend/internals/middlewares/logger"
	"ucentric_backend/internals/middlewares/metrics"
)

const requestTimeout = 15 * time.Second

// SetupMiddlewares: urutan penting, request id dulu supaya log & panic punya id.
func SetupMiddlewares(app *fiber.App, cfg configs.Config) {
	app.Use(RequestID())
	app.Use(RequestContext(requestTimeout))
	app.Use(RecoveryMiddleware())
	app.Use(metrics.Middleware())
	app.Use(logger.LoggerMiddleware(cfg.Timezone))
	app.Use(CorsMiddleware(cfg.CORSOrigins))
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())
	app.Use(GlobalRateLimiter())
}
