package dto

import (
	"strings"

	helper "ucentric_backend/internals/helpers"
)

type CreateApplicationRequest struct {
	FirstName      string `json:"firstName" validate:"required,max=255"`
	LastName       string `json:"lastName" validate:"required,max=255"`
	Email          string `json:"email" validate:"required,email,max=255"`
	UniversityName string `json:"universityName" validate:"required,max=255"`
	MajorName      string `json:"majorName" validate:"required,max=255"`
	Semester       string `json:"semester" validate:"required,max=20"`
	RoleID         string `json:"roleId" validate:"required,uuid"`
	Motivation     string `json:"motivation" validate:"required"`
	PortfolioURL   string `json:"portfolioUrl" validate:"omitempty,url"`
	CVURL          string `json:"cvUrl" validate:"omitempty,url"`
}

func (r *CreateApplicationRequest) Normalize() {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Email = strings.TrimSpace(r.Email)
	r.UniversityName = strings.TrimSpace(r.UniversityName)
	r.MajorName = strings.TrimSpace(r.MajorName)
	r.Semester = strings.TrimSpace(r.Semester)
	r.RoleID = strings.TrimSpace(r.RoleID)
	r.Motivation = strings.TrimSpace(r.Motivation)
	r.PortfolioURL = strings.TrimSpace(r.PortfolioURL)
	r.CVURL = strings.TrimSpace(r.CVURL)
}

// UpdateStatusRequest: PUT /applications {id, status}. Status dicek persis (case-sensitive) di service.
type UpdateStatusRequest struct {
	ID     string `json:"id" validate:"required,uuid"`
	Status string `json:"status" validate:"required"`
}

// SubmitResponse mengikuti kontrak form publik.
type SubmitResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	ApplicationID string `json:"applicationId"`
}

var Messages = helper.Messages{
	"firstName.required":      "First name is required",
	"lastName.required":       "Last name is required",
	"email.required":          "Invalid email",
	"email.email":             "Invalid email",
	"universityName.required": "University is required",
	"majorName.required":      "Major is required",
	"semester.required":       "Semester is required",
	"roleId.required":         "Role is required",
	"roleId.uuid":             "Invalid role",
	"motivation.required":     "Motivation is required",
	"portfolioUrl.url":        "Portfolio URL must be a valid URL",
	"cvUrl.url":               "CV URL must be a valid URL",
	"id.required":             "ID and Status are required",
	"id.uuid":                 "Invalid application ID",
	"status.required":         "ID and Status are required",
}
