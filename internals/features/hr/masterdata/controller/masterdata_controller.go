package controller

import (
	"github.com/gofiber/fiber/v2"

	"ucentric_backend/internals/features/hr/masterdata/service"
	helper "ucentric_backend/internals/helpers"
)

type MasterDataController struct {
	svc *service.MasterDataService
}

func NewMasterDataController(svc *service.MasterDataService) *MasterDataController {
	return &MasterDataController{svc: svc}
}

// GET /public/master-data → {roles, universities, majors}
func (ctrl *MasterDataController) Get(c *fiber.Ctx) error {
	data, err := ctrl.svc.Get(c.UserContext())
	if err != nil {
		return helper.JsonInternal(c, err, "Failed to fetch master data")
	}
	return c.JSON(data)
}
