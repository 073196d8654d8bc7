package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending  = "pending"
	StatusProcess  = "process"
	StatusApproved = "approved"
	StatusSuccess  = "success"
	StatusRejected = "rejected"
)

var Statuses = []string{StatusPending, StatusProcess, StatusApproved, StatusSuccess, StatusRejected}

// NormalizeStatus lower-cases; the stored form is always lower-case.
func NormalizeStatus(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// IsValidStatus compares case-insensitively.
func IsValidStatus(s string) bool {
	s = NormalizeStatus(s)
	for _, v := range Statuses {
		if v == s {
			return true
		}
	}
	return false
}

// WithdrawalModel: permintaan pencairan komisi afiliasi.
type WithdrawalModel struct {
	ID            uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	UserEmail     string    `gorm:"column:user_email;size:255;not null" json:"user_email"`
	Amount        float64   `gorm:"column:amount;type:numeric(18,2);not null" json:"amount"`
	BankName      string    `gorm:"column:bank_name;size:100;not null" json:"bank_name"`
	AccountName   string    `gorm:"column:account_name;size:255;not null" json:"account_name"`
	AccountNumber string    `gorm:"column:account_number;size:64;not null" json:"account_number"`
	Status        string    `gorm:"column:status;size:20;not null;default:'pending'" json:"status"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (WithdrawalModel) TableName() string {
	return "withdrawals"
}
