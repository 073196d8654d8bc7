package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel merepresentasikan tabel users. Password tidak pernah ikut JSON.
type UserModel struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"column:name;size:100;not null" json:"name"`
	Email     string    `gorm:"column:email;size:255;not null" json:"email"`
	Password  string    `gorm:"column:password;not null" json:"-"`
	Role      string    `gorm:"column:role;type:varchar(20);not null;default:'user'" json:"role"`
	Image     *string   `gorm:"column:image" json:"image,omitempty"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (UserModel) TableName() string {
	return "users"
}
