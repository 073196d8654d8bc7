package model

import (
	"time"

	"github.com/google/uuid"
)

type TokenBlacklist struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Token     string    `gorm:"column:token;type:text;not null;unique" json:"-"`
	ExpiredAt time.Time `gorm:"column:expired_at;not null" json:"expired_at"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (TokenBlacklist) TableName() string {
	return "token_blacklist"
}
