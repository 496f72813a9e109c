package models

import (
	"time"

	"hms/src/types"

	"gorm.io/gorm"
)

type Invoice struct {
	ID            uint   `gorm:"primarykey" json:"id"`
	InvoiceNumber string `gorm:"uniqueIndex" json:"invoice_number,omitempty"`

	GuestID       uint  `gorm:"index" json:"guest_id,omitempty"`
	ReservationID *uint `json:"reservation_id,omitempty"`

	IssueDate time.Time `gorm:"type:date" json:"issue_date,omitempty"`
	DueDate   time.Time `gorm:"type:date" json:"due_date,omitempty"`

	Subtotal       float64 `json:"subtotal,omitempty"`
	TaxAmount      float64 `json:"tax_amount,omitempty"`
	DiscountAmount float64 `json:"discount_amount,omitempty"`
	TotalAmount    float64 `json:"total_amount,omitempty"`

	Status     types.InvoiceStatus `gorm:"default:'draft';index" json:"status,omitempty"`
	PaidAmount float64             `json:"paid_amount,omitempty"`
	PaidDate   *time.Time          `gorm:"type:date" json:"paid_date,omitempty"`

	Notes         string `json:"notes,omitempty"`
	InternalNotes string `json:"internal_notes,omitempty"`

	Guest       Guest             `gorm:"foreignKey:guest_id" json:"guest,omitempty"`
	Reservation *Reservation      `gorm:"foreignKey:reservation_id" json:"reservation,omitempty"`
	LineItems   []InvoiceLineItem `gorm:"foreignKey:invoice_id" json:"line_items,omitempty"`
	Payments    []Payment         `gorm:"foreignKey:invoice_id" json:"payments,omitempty"`

	types.Timestamps
}

func (i *Invoice) BalanceDue() float64 {
	return roundCents(i.TotalAmount - i.PaidAmount)
}

func (i *Invoice) IsOverdue(today time.Time) bool {
	return (i.Status == types.INVOICE_PENDING || i.Status == types.INVOICE_OVERDUE) &&
		i.DueDate.Before(today)
}

func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.IssueDate.IsZero() {
		i.IssueDate = time.Now()
	}
	if i.DueDate.IsZero() {
		i.DueDate = i.IssueDate.AddDate(0, 0, 30)
	}
	return nil
}

type InvoiceLineItem struct {
	ID          uint       `gorm:"primarykey" json:"id"`
	InvoiceID   uint       `gorm:"index" json:"invoice_id,omitempty"`
	Description string     `json:"description,omitempty"`
	Quantity    float64    `gorm:"default:1" json:"quantity,omitempty"`
	UnitPrice   float64    `json:"unit_price,omitempty"`
	TotalAmount float64    `json:"total_amount,omitempty"`
	ServiceDate *time.Time `gorm:"type:date" json:"service_date,omitempty"`

	types.Timestamps
}

func (li *InvoiceLineItem) BeforeSave(tx *gorm.DB) error {
	li.TotalAmount = roundCents(li.Quantity * li.UnitPrice)
	return nil
}
