package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type PixPayment struct {
	ID      string `gorm:"primaryKey;size:36;not null"`
	OrderID string `gorm:"size:64;index;not null"`
	// asaas charge id, reconciliation lookups key on this
	PaymentID      string          `gorm:"size:64;uniqueIndex;not null"`
	Status         string          `gorm:"size:32;index;not null"` // PENDING, RECEIVED, CONFIRMED, OVERDUE, ...
	Amount         decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	QrCode         string          `gorm:"type:text"` // pix copy-paste payload
	QrCodeImage    string          `gorm:"type:text"` // base64 png
	CopyPasteKey   string          `gorm:"type:text"`
	ExpirationDate string          `gorm:"size:64"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (PixPayment) TableName() string {
	return "asaas_payments"
}

// Order is owned by the checkout side; this service only touches
// asaas_payment_id, status and updated_at.
type Order struct {
	ID             string `gorm:"primaryKey;size:64;not null"`
	Status         string `gorm:"size:32;index"`
	AsaasPaymentID string `gorm:"size:64;index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// EmailConfig is a single-row toggle that redirects outgoing customer
// emails to a fixed address, used for non-production testing.
type EmailConfig struct {
	ID           uint   `gorm:"primaryKey"`
	UseTempEmail bool   `gorm:"not null;default:false"`
	TempEmail    string `gorm:"size:255"`
	UpdatedAt    time.Time
}

func (EmailConfig) TableName() string {
	return "asaas_email_config"
}
