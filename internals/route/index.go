package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ucentric_backend/internals/configs"
	transactionRoute "ucentric_backend/internals/features/finance/transactions/route"
	txService "ucentric_backend/internals/features/finance/transactions/service"
	withdrawalRoute "ucentric_backend/internals/features/finance/withdrawals/route"
	applicationRepo "ucentric_backend/internals/features/hr/applications/repository"
	applicationRoute "ucentric_backend/internals/features/hr/applications/route"
	applicationService "ucentric_backend/internals/features/hr/applications/service"
	masterRepo "ucentric_backend/internals/features/hr/masterdata/repository"
	masterRoute "ucentric_backend/internals/features/hr/masterdata/route"
	masterService "ucentric_backend/internals/features/hr/masterdata/service"
	roleRepo "ucentric_backend/internals/features/hr/roles/repository"
	roleRoute "ucentric_backend/internals/features/hr/roles/route"
	roleService "ucentric_backend/internals/features/hr/roles/service"
	mitraRoute "ucentric_backend/internals/features/mitra/route"
	authRepo "ucentric_backend/internals/features/users/auth/repository"
	authRoute "ucentric_backend/internals/features/users/auth/route"
	authService "ucentric_backend/internals/features/users/auth/service"
	userRepo "ucentric_backend/internals/features/users/users/repository"
	userRoute "ucentric_backend/internals/features/users/users/route"
	"ucentric_backend/internals/helpers/applog"
	"ucentric_backend/internals/helpers/cache"
	"ucentric_backend/internals/infra/queue"
	"ucentric_backend/internals/middlewares"
	authMiddleware "ucentric_backend/internals/middlewares/auth"
	"ucentric_backend/internals/middlewares/authz"
)

var startTime time.Time

// Deps: semua yang dibangun di main lalu dibagikan ke route.
type Deps struct {
	DB         *gorm.DB
	Config     configs.Config
	Cache      *cache.Cache
	Events     queue.Publisher
	Gateway    txService.Gateway
	Authorizer *authz.Authorizer
}

func SetupRoutes(app *fiber.App, d Deps) {
	startTime = time.Now()
	cfg := d.Config
	db := d.DB

	BaseRoutes(app, db)

	// ===================== SERVICES =====================
	users := userRepo.NewUserRepository(db)
	tokens := authService.NewTokenService(cfg.JWTSecret, cfg.JWTTTL)
	auth := authService.NewAuthService(users, authRepo.NewBlacklistRepository(db, cfg.JWTSecret), tokens)

	roles := roleRepo.NewRoleRepository(db)
	master := masterRepo.NewMasterDataRepository(db)
	roleSvc := roleService.NewRoleService(roles, d.Cache, cfg.CareersTTL)
	masterSvc := masterService.NewMasterDataService(master, roles, d.Cache, cfg.MasterDataTTL)
	appSvc := applicationService.NewApplicationService(
		applicationRepo.NewApplicationRepository(db), roles, master, d.Cache, d.Events,
	)

	protect := authMiddleware.AuthMiddleware(auth)

	// ===================== PUBLIC =====================
	applog.Log.Info("[INFO] Mounting public routes...")
	public := app.Group("/api/public")
	roleRoute.CareerPublicRoutes(public, roleSvc)
	masterRoute.MasterDataPublicRoutes(public, masterSvc)
	applicationRoute.ApplicationPublicRoutes(public, appSvc, middlewares.ApplicationSubmitRateLimiter())

	// ===================== AUTH =====================
	applog.Log.Info("[INFO] Mounting auth routes...")
	authRoute.AuthRoutes(app.Group("/api"), auth, protect, middlewares.LoginRateLimiter(), cfg.IsProduction())

	// ===================== DASHBOARD =====================
	applog.Log.Info("[INFO] Mounting dashboard routes...")
	dash := app.Group("/api/d", protect)
	az := d.Authorizer

	applicationRoute.ApplicationDashboardRoutes(dash, appSvc, az.Require("applications"))
	roleRoute.RoleDashboardRoutes(dash, roleSvc, az.Require("roles"))
	withdrawalRoute.WithdrawalRoutes(dash, db, az.Require("withdrawals"))
	transactionRoute.TransactionRoutes(dash, db, d.Gateway, az.Require("transactions"))
	mitraRoute.MitraRoutes(dash, db, az.Require("mitra"))
	userRoute.UserAdminRoutes(dash, db, az.Require("users"))
}
