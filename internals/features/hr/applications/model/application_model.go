package model

import (
	"time"

	"github.com/google/uuid"

	mdModel "ucentric_backend/internals/features/hr/masterdata/model"
	roleModel "ucentric_backend/internals/features/hr/roles/model"
)

const (
	StatusPending   = "PENDING"
	StatusReviewing = "REVIEWING"
	StatusAccepted  = "ACCEPTED"
	StatusRejected  = "REJECTED"
)

// Statuses: urutan dipakai untuk stats dan dropdown.
var Statuses = []string{StatusPending, StatusReviewing, StatusAccepted, StatusRejected}

// IsValidStatus is an exact, case-sensitive match.
func IsValidStatus(s string) bool {
	for _, v := range Statuses {
		if v == s {
			return true
		}
	}
	return false
}

type InternshipApplicationModel struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	FirstName    string    `gorm:"column:first_name;size:255;not null" json:"firstName"`
	LastName     string    `gorm:"column:last_name;size:255;not null" json:"lastName"`
	Email        string    `gorm:"column:email;size:255;not null" json:"email"`
	UniversityID uuid.UUID `gorm:"column:university_id;type:uuid;not null" json:"universityId"`
	MajorID      uuid.UUID `gorm:"column:major_id;type:uuid;not null" json:"majorId"`
	Semester     string    `gorm:"column:semester;size:20;not null" json:"semester"`
	RoleID       uuid.UUID `gorm:"column:role_id;type:uuid;not null" json:"roleId"`
	Motivation   string    `gorm:"column:motivation;not null" json:"motivation"`
	PortfolioURL *string   `gorm:"column:portfolio_url" json:"portfolioUrl"`
	CVURL        *string   `gorm:"column:cv_url" json:"cvUrl"`
	Status       string    `gorm:"column:status;size:20;not null;default:'PENDING'" json:"status"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`

	Role       *roleModel.InternshipRoleModel `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	University *mdModel.UniversityModel       `gorm:"foreignKey:UniversityID" json:"university,omitempty"`
	Major      *mdModel.MajorModel            `gorm:"foreignKey:MajorID" json:"major,omitempty"`
}

func (InternshipApplicationModel) TableName() string {
	return "internship_applications"
}
