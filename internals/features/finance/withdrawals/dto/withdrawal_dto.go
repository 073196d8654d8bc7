package dto

import helper "ucentric_backend/internals/helpers"

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

var Messages = helper.Messages{
	"status.required": "Status is required",
}
