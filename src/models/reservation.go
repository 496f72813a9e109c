package models

import (
	"math"
	"time"

	"hms/src/types"

	"gorm.io/gorm"
)

type Reservation struct {
	ID                uint   `gorm:"primarykey" json:"id"`
	ReservationNumber string `gorm:"uniqueIndex" json:"reservation_number,omitempty"`

	GuestID    uint  `gorm:"index" json:"guest_id,omitempty"`
	RoomID     *uint `gorm:"index" json:"room_id,omitempty"`
	RoomTypeID uint  `json:"room_type_id,omitempty"`

	CheckInDate  time.Time `gorm:"type:date;index" json:"check_in_date,omitempty"`
	CheckOutDate time.Time `gorm:"type:date;index" json:"check_out_date,omitempty"`
	Adults       uint      `gorm:"default:1" json:"adults,omitempty"`
	Children     uint      `json:"children,omitempty"`
	Infants      uint      `json:"infants,omitempty"`

	RoomRate    float64 `json:"room_rate,omitempty"`
	TotalNights uint    `json:"total_nights,omitempty"`
	Subtotal    float64 `json:"subtotal,omitempty"`
	TaxAmount   float64 `json:"tax_amount,omitempty"`
	TotalAmount float64 `json:"total_amount,omitempty"`

	BookingSource    types.BookingSource `gorm:"default:'direct'" json:"booking_source,omitempty"`
	BookingReference string              `json:"booking_reference,omitempty"`
	CommissionRate   float64             `json:"commission_rate,omitempty"`
	CommissionAmount float64             `json:"commission_amount,omitempty"`

	Status             types.ReservationStatus `gorm:"default:'pending';index" json:"status,omitempty"`
	ConfirmedAt        *time.Time              `json:"confirmed_at,omitempty"`
	CheckedInAt        *time.Time              `json:"checked_in_at,omitempty"`
	CheckedOutAt       *time.Time              `json:"checked_out_at,omitempty"`
	CancelledAt        *time.Time              `json:"cancelled_at,omitempty"`
	CancellationReason string                  `json:"cancellation_reason,omitempty"`

	SpecialRequests string `json:"special_requests,omitempty"`
	InternalNotes   string `json:"internal_notes,omitempty"`
	Notes           string `json:"notes,omitempty"`

	DepositRequired float64 `json:"deposit_required,omitempty"`
	DepositPaid     float64 `json:"deposit_paid,omitempty"`

	Guest    Guest                `gorm:"foreignKey:guest_id" json:"guest,omitempty"`
	Room     *Room                `gorm:"foreignKey:room_id" json:"room,omitempty"`
	RoomType RoomType             `gorm:"foreignKey:room_type_id" json:"room_type,omitempty"`
	Services []ReservationService `gorm:"foreignKey:reservation_id" json:"services,omitempty"`

	types.Timestamps
}

// ComputeTotals derives total_nights, subtotal and total_amount from the
// dates, rate and tax amount. Derived fields are never authoritative: this
// runs on every save.
func (r *Reservation) ComputeTotals() {
	if !r.CheckInDate.IsZero() && !r.CheckOutDate.IsZero() {
		// Count calendar days, not elapsed hours: local-midnight dates from
		// the database shift across DST boundaries.
		in := time.Date(r.CheckInDate.Year(), r.CheckInDate.Month(), r.CheckInDate.Day(), 0, 0, 0, 0, time.UTC)
		out := time.Date(r.CheckOutDate.Year(), r.CheckOutDate.Month(), r.CheckOutDate.Day(), 0, 0, 0, 0, time.UTC)
		nights := int(out.Sub(in).Hours() / 24)
		if nights < 0 {
			nights = 0
		}
		r.TotalNights = uint(nights)
	}
	r.Subtotal = roundCents(r.RoomRate * float64(r.TotalNights))
	r.TotalAmount = roundCents(r.Subtotal + r.TaxAmount)
}

func (r *Reservation) BeforeSave(tx *gorm.DB) error {
	r.ComputeTotals()
	return nil
}

func (r *Reservation) TotalGuests() uint {
	return r.Adults + r.Children + r.Infants
}

func (r *Reservation) IsActive() bool {
	return r.Status == types.RESERVATION_CONFIRMED || r.Status == types.RESERVATION_CHECKED_IN
}

// CanCheckIn requires a confirmed reservation with an assigned room whose
// check-in date has arrived.
func (r *Reservation) CanCheckIn(today time.Time) bool {
	return r.Status == types.RESERVATION_CONFIRMED &&
		r.RoomID != nil &&
		!r.CheckInDate.After(today)
}

func (r *Reservation) CanCheckOut() bool {
	return r.Status == types.RESERVATION_CHECKED_IN
}

func (r *Reservation) CanCancel() bool {
	return !r.Status.Terminal()
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

type ReservationService struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	ReservationID uint      `gorm:"index" json:"reservation_id,omitempty"`
	ServiceName   string    `json:"service_name,omitempty"`
	Description   string    `json:"service_description,omitempty"`
	Quantity      uint      `gorm:"default:1" json:"quantity,omitempty"`
	UnitPrice     float64   `json:"unit_price,omitempty"`
	TotalPrice    float64   `json:"total_price,omitempty"`
	ServiceDate   time.Time `gorm:"type:date" json:"service_date,omitempty"`

	types.Timestamps
}

func (s *ReservationService) BeforeSave(tx *gorm.DB) error {
	s.TotalPrice = roundCents(float64(s.Quantity) * s.UnitPrice)
	return nil
}
