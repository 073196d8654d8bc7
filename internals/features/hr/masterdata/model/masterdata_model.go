package model

import (
	"time"

	"github.com/google/uuid"

	roleModel "ucentric_backend/internals/features/hr/roles/model"
)

type UniversityModel struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"column:name;size:255;not null" json:"name"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`
}

func (UniversityModel) TableName() string { return "universities" }

type MajorModel struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"column:name;size:255;not null" json:"name"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`
}

func (MajorModel) TableName() string { return "majors" }

// MasterData isi dropdown form lamaran.
type MasterData struct {
	Roles        []roleModel.RoleOption `json:"roles"`
	Universities []UniversityModel      `json:"universities"`
	Majors       []MajorModel           `json:"majors"`
}
