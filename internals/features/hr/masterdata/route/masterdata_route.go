package route

import (
	"github.com/gofiber/fiber/v2"

	"ucentric_backend/internals/features/hr/masterdata/controller"
	"ucentric_backend/internals/features/hr/masterdata/service"
)

func MasterDataPublicRoutes(public fiber.Router, svc *service.MasterDataService) {
	ctrl := controller.NewMasterDataController(svc)
	public.Get("/master-data", ctrl.Get)
}
