package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"ucentric_backend/internals/features/mitra/repository"
	helper "ucentric_backend/internals/helpers"
	"ucentric_backend/internals/helpers/dbtime"
	"ucentric_backend/internals/helpers/listquery"
)

type MitraController struct {
	repo repository.MitraRepository
}

func NewMitraController(repo repository.MitraRepository) *MitraController {
	return &MitraController{repo: repo}
}

// GET /mitra?page&search&status=active|inactive|unknown&startDate&endDate&includeStats
func (ctrl *MitraController) List(c *fiber.Ctx) error {
	p, err := listquery.ParseParams(c, helper.DefaultOpts, dbtime.GetLocation(c))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	return helper.JsonList(c, ctrl.repo.List(c.UserContext(), p))
}

// GET /mitra/:token
func (ctrl *MitraController) Get(c *fiber.Ctx) error {
	token := strings.TrimSpace(c.Params("token"))
	m, err := ctrl.repo.FindByToken(c.UserContext(), token)
	switch {
	case err == nil:
		return helper.JsonOK(c, "", m)
	case errors.Is(err, repository.ErrNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Mitra not found")
	default:
		return helper.JsonInternal(c, err, "Failed to fetch mitra")
	}
}
