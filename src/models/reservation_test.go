package models

import (
	"testing"
	"time"

	"hms/src/types"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestComputeTotals(t *testing.T) {
	r := Reservation{
		CheckInDate:  date(2026, 6, 1),
		CheckOutDate: date(2026, 6, 3),
		RoomRate:     100,
		TaxAmount:    17.5,
	}
	r.ComputeTotals()
	assert.Equal(t, uint(2), r.TotalNights)
	assert.Equal(t, 200.0, r.Subtotal)
	assert.Equal(t, 217.5, r.TotalAmount)
}

func TestComputeTotalsSingleNight(t *testing.T) {
	r := Reservation{
		CheckInDate:  date(2026, 6, 1),
		CheckOutDate: date(2026, 6, 2),
		RoomRate:     149.99,
	}
	r.ComputeTotals()
	assert.Equal(t, uint(1), r.TotalNights)
	assert.Equal(t, 149.99, r.Subtotal)
	assert.Equal(t, 149.99, r.TotalAmount)
}

func TestComputeTotalsAcrossDSTBoundary(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("zoneinfo unavailable")
	}

	// Spring-forward weekend: local midnights are only 47 hours apart.
	r := Reservation{
		CheckInDate:  time.Date(2026, 3, 7, 0, 0, 0, 0, loc),
		CheckOutDate: time.Date(2026, 3, 9, 0, 0, 0, 0, loc),
		RoomRate:     100,
	}
	r.ComputeTotals()
	assert.Equal(t, uint(2), r.TotalNights)
	assert.Equal(t, 200.0, r.Subtotal)
}

func TestComputeTotalsRecomputesOnChange(t *testing.T) {
	r := Reservation{
		CheckInDate:  date(2026, 6, 1),
		CheckOutDate: date(2026, 6, 3),
		RoomRate:     100,
	}
	r.ComputeTotals()
	assert.Equal(t, 200.0, r.Subtotal)

	r.CheckOutDate = date(2026, 6, 5)
	r.ComputeTotals()
	assert.Equal(t, uint(4), r.TotalNights)
	assert.Equal(t, 400.0, r.Subtotal)
}

func TestCanCheckIn(t *testing.T) {
	roomId := uint(5)
	today := date(2026, 6, 1)

	r := Reservation{
		Status:      types.RESERVATION_CONFIRMED,
		RoomID:      &roomId,
		CheckInDate: date(2026, 6, 1),
	}
	assert.True(t, r.CanCheckIn(today))

	r.CheckInDate = date(2026, 6, 2)
	assert.False(t, r.CanCheckIn(today), "arrival date not reached")

	r.CheckInDate = date(2026, 5, 30)
	assert.True(t, r.CanCheckIn(today), "late arrival still allowed")

	r.RoomID = nil
	assert.False(t, r.CanCheckIn(today), "no room assigned")

	r.RoomID = &roomId
	r.Status = types.RESERVATION_PENDING
	assert.False(t, r.CanCheckIn(today), "unconfirmed")
}

func TestCanCheckOut(t *testing.T) {
	r := Reservation{Status: types.RESERVATION_CHECKED_IN}
	assert.True(t, r.CanCheckOut())

	for _, status := range []types.ReservationStatus{
		types.RESERVATION_PENDING,
		types.RESERVATION_CONFIRMED,
		types.RESERVATION_CHECKED_OUT,
		types.RESERVATION_CANCELLED,
		types.RESERVATION_NO_SHOW,
	} {
		r.Status = status
		assert.False(t, r.CanCheckOut())
	}
}

func TestCanCancel(t *testing.T) {
	r := Reservation{Status: types.RESERVATION_PENDING}
	assert.True(t, r.CanCancel())
	r.Status = types.RESERVATION_CONFIRMED
	assert.True(t, r.CanCancel())
	r.Status = types.RESERVATION_CHECKED_IN
	assert.True(t, r.CanCancel())

	r.Status = types.RESERVATION_CHECKED_OUT
	assert.False(t, r.CanCancel())
	r.Status = types.RESERVATION_CANCELLED
	assert.False(t, r.CanCancel())
	r.Status = types.RESERVATION_NO_SHOW
	assert.False(t, r.CanCancel())
}

func TestTotalGuests(t *testing.T) {
	r := Reservation{Adults: 2, Children: 1, Infants: 1}
	assert.Equal(t, uint(4), r.TotalGuests())
}

func TestReservationServiceTotal(t *testing.T) {
	s := ReservationService{Quantity: 3, UnitPrice: 12.5}
	assert.Nil(t, s.BeforeSave(nil))
	assert.Equal(t, 37.5, s.TotalPrice)
}

func TestLineItemTotal(t *testing.T) {
	li := InvoiceLineItem{Quantity: 2.5, UnitPrice: 19.99}
	assert.Nil(t, li.BeforeSave(nil))
	assert.Equal(t, 49.98, li.TotalAmount)
}

func TestInvoiceBalanceDue(t *testing.T) {
	i := Invoice{TotalAmount: 300, PaidAmount: 120.5}
	assert.Equal(t, 179.5, i.BalanceDue())
}

func TestInvoiceIsOverdue(t *testing.T) {
	today := date(2026, 6, 15)
	i := Invoice{Status: types.INVOICE_PENDING, DueDate: date(2026, 6, 10)}
	assert.True(t, i.IsOverdue(today))

	i.DueDate = date(2026, 6, 20)
	assert.False(t, i.IsOverdue(today))

	i.DueDate = date(2026, 6, 10)
	i.Status = types.INVOICE_PAID
	assert.False(t, i.IsOverdue(today))
}
