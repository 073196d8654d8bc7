package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// InternshipRoleModel: slug dibuat sekali saat create dan tidak pernah diubah.
type InternshipRoleModel struct {
	ID               uuid.UUID      `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Title            string         `gorm:"column:title;size:255;not null" json:"title"`
	Slug             string         `gorm:"column:slug;size:255;not null;uniqueIndex" json:"slug"`
	Department       string         `gorm:"column:department;size:255;not null" json:"department"`
	Type             string         `gorm:"column:type;size:255;not null" json:"type"`
	Location         string         `gorm:"column:location;size:255;not null" json:"location"`
	IsActive         bool           `gorm:"column:is_active;not null;default:true" json:"isActive"`
	Requirements     pq.StringArray `gorm:"column:requirements;type:text[];not null;default:'{}'" json:"requirements"`
	Responsibilities pq.StringArray `gorm:"column:responsibilities;type:text[];not null;default:'{}'" json:"responsibilities"`

	// read-only, diisi subquery count aplikasi
	ApplicationCount int64 `gorm:"column:application_count;->;-:migration" json:"applicationCount"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (InternshipRoleModel) TableName() string {
	return "internship_roles"
}

// RoleOption is the minimal projection served to form selectors and the career pages.
type RoleOption struct {
	ID               uuid.UUID      `json:"id"`
	Title            string         `json:"title"`
	Slug             string         `json:"slug"`
	Department       string         `json:"department"`
	Type             string         `json:"type"`
	Location         string         `json:"location"`
	Requirements     pq.StringArray `gorm:"type:text[]" json:"requirements"`
	Responsibilities pq.StringArray `gorm:"type:text[]" json:"responsibilities"`
}
