package models

import (
	"time"

	"hms/src/types"
)

type Payment struct {
	ID            uint   `gorm:"primarykey" json:"id"`
	PaymentNumber string `gorm:"uniqueIndex" json:"payment_number,omitempty"`

	InvoiceID     *uint `gorm:"index" json:"invoice_id,omitempty"`
	ReservationID *uint `json:"reservation_id,omitempty"`
	GuestID       uint  `gorm:"index" json:"guest_id,omitempty"`

	Amount        float64             `json:"amount,omitempty"`
	PaymentMethod types.PaymentMethod `json:"payment_method,omitempty"`
	PaymentDate   time.Time           `json:"payment_date,omitempty"`

	TransactionID   string `json:"transaction_id,omitempty"`
	ReferenceNumber string `json:"reference_number,omitempty"`

	Status types.PaymentStatus `gorm:"default:'pending';index" json:"status,omitempty"`

	Notes         string `json:"notes,omitempty"`
	ProcessedByID *uint  `json:"processed_by,omitempty"`

	Guest       Guest        `gorm:"foreignKey:guest_id" json:"guest,omitempty"`
	Invoice     *Invoice     `gorm:"foreignKey:invoice_id" json:"-"`
	Reservation *Reservation `gorm:"foreignKey:reservation_id" json:"-"`
	Refunds     []Refund     `gorm:"foreignKey:original_payment_id" json:"refunds,omitempty"`

	types.Timestamps
}

type Refund struct {
	ID           uint   `gorm:"primarykey" json:"id"`
	RefundNumber string `gorm:"uniqueIndex" json:"refund_number,omitempty"`

	OriginalPaymentID uint `gorm:"index" json:"original_payment_id,omitempty"`
	GuestID           uint `json:"guest_id,omitempty"`

	Amount float64            `json:"amount,omitempty"`
	Reason string             `json:"reason,omitempty"`
	Status types.RefundStatus `gorm:"default:'pending'" json:"status,omitempty"`

	RequestedByID *uint      `json:"requested_by,omitempty"`
	ApprovedByID  *uint      `json:"approved_by,omitempty"`
	ProcessedByID *uint      `json:"processed_by,omitempty"`
	ApprovedAt    *time.Time `json:"approved_at,omitempty"`
	ProcessedAt   *time.Time `json:"processed_at,omitempty"`

	Notes string `json:"notes,omitempty"`

	OriginalPayment Payment `gorm:"foreignKey:original_payment_id" json:"-"`

	types.Timestamps
}
