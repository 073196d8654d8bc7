package model

import (
	"strings"
	"time"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusUnknown  = "unknown"
)

var Statuses = []string{StatusActive, StatusInactive, StatusUnknown}

// MitraTokenModel: token perangkat kasir mitra. Hanya dibaca dari dashboard.
type MitraTokenModel struct {
	TokenNumber  string     `gorm:"column:token_number;primaryKey" json:"token_number"`
	OrderID      *string    `gorm:"column:order_id" json:"order_id"`
	Name         *string    `gorm:"column:name" json:"name"`
	Email        *string    `gorm:"column:email" json:"email"`
	Phone        *string    `gorm:"column:phone" json:"phone"`
	StatusActive *bool      `gorm:"column:status_active" json:"status_active"`
	RegisterDate *time.Time `gorm:"column:register_date" json:"register_date"`
	DeviceType   *string    `gorm:"column:device_type" json:"device_type"`
	DeviceName   *string    `gorm:"column:device_name" json:"device_name"`
	DeviceID     *string    `gorm:"column:device_id" json:"device_id"`
	ReferralCode *string    `gorm:"column:referral_code" json:"referral_code"`
}

func (MitraTokenModel) TableName() string {
	return "ukasir_token"
}

// Status maps the nullable flag onto active/inactive/unknown.
func (m MitraTokenModel) Status() string {
	switch {
	case m.StatusActive == nil:
		return StatusUnknown
	case *m.StatusActive:
		return StatusActive
	default:
		return StatusInactive
	}
}

// NormalizeStatus also accepts the raw flag spelling (true/false/null).
func NormalizeStatus(s string) string {
	switch v := strings.ToLower(strings.TrimSpace(s)); v {
	case "true", "1":
		return StatusActive
	case "false", "0":
		return StatusInactive
	case "null", "none":
		return StatusUnknown
	default:
		return v
	}
}
