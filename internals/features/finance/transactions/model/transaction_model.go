package model

import (
	"time"

	"github.com/google/uuid"
)

// TransactionModel membaca tabel payments (read-only dari dashboard).
type TransactionModel struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	OrderID   string    `gorm:"column:order_id;size:100;not null" json:"order_id"`
	Name      *string   `gorm:"column:name" json:"name"`
	Email     *string   `gorm:"column:email" json:"email"`
	Phone     *string   `gorm:"column:phone" json:"phone"`
	Amount    float64   `gorm:"column:amount;type:numeric(18,2)" json:"amount"`
	Status    *string   `gorm:"column:status" json:"status"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (TransactionModel) TableName() string {
	return "payments"
}

// GatewayStatus is the live view of an order at the payment gateway.
type GatewayStatus struct {
	OrderID           string `json:"order_id"`
	TransactionID     string `json:"transaction_id"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status,omitempty"`
	PaymentType       string `json:"payment_type"`
	GrossAmount       string `json:"gross_amount"`
	TransactionTime   string `json:"transaction_time"`
	StatusCode        string `json:"status_code"`
	StatusMessage     string `json:"status_message"`
}
