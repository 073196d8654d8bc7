package dto

import (
	"strings"

	helper "ucentric_backend/internals/helpers"
)

// RoleRequest dipakai POST dan PUT. Slug hanya dibaca saat create.
type RoleRequest struct {
	ID               string   `json:"id" validate:"omitempty,uuid"`
	Title            string   `json:"title" validate:"required,max=255"`
	Slug             string   `json:"slug" validate:"omitempty,max=255"`
	Department       string   `json:"department" validate:"required,max=255"`
	Type             string   `json:"type" validate:"required,max=255"`
	Location         string   `json:"location" validate:"required,max=255"`
	IsActive         *bool    `json:"isActive"`
	Requirements     []string `json:"requirements"`
	Responsibilities []string `json:"responsibilities"`
}

func (r *RoleRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Slug = strings.TrimSpace(r.Slug)
	r.Department = strings.TrimSpace(r.Department)
	r.Type = strings.TrimSpace(r.Type)
	r.Location = strings.TrimSpace(r.Location)
	r.Requirements = cleanList(r.Requirements)
	r.Responsibilities = cleanList(r.Responsibilities)
}

// cleanList drops blank entries, keeps order.
func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

var Messages = helper.Messages{
	"title.required":      "Title is required",
	"department.required": "Department is required",
	"type.required":       "Type is required",
	"location.required":   "Location is required",
	"id.uuid":             "Invalid role ID",
}
