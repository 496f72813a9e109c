package common

import (
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"hms/src/config"
	"hms/src/db"
	"hms/src/lib"
	"hms/src/models"
	"hms/src/types"
	"hms/src/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrRoomUnavailable     = errors.New("room is not available for the selected dates")
	ErrInvalidDateRange    = errors.New("check-out date must be after check-in date")
	ErrCannotCheckIn       = errors.New("reservation cannot be checked in")
	ErrCannotCheckOut      = errors.New("reservation cannot be checked out")
	ErrReservationTerminal = errors.New("reservation is in a terminal state")
)

func ParseDate(s string) (time.Time, error) {
	return time.Parse(config.DATE_PARSE_FORMAT, s)
}

// Today returns the current calendar date in the server's local zone,
// normalized to UTC midnight so it compares cleanly with parsed dates.
func Today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// Overlaps reports whether two half-open [checkIn, checkOut) intervals
// intersect.
func Overlaps(aIn, aOut, bIn, bOut time.Time) bool {
	return aIn.Before(bOut) && bIn.Before(aOut)
}

// countConflicts counts reservations in a blocking status whose interval
// overlaps [checkIn, checkOut) on the given room. excludeID skips the record
// being edited so a no-op edit never conflicts with itself.
func countConflicts(tx *gorm.DB, roomId uint, checkIn, checkOut time.Time, excludeID uint) (int64, error) {
	var count int64
	q := tx.
		Model(&models.Reservation{}).
		Where("room_id = ?", roomId).
		Where("status IN (?)", []types.ReservationStatus{
			types.RESERVATION_CONFIRMED,
			types.RESERVATION_CHECKED_IN,
		}).
		Where("check_in_date < ? AND check_out_date > ?", checkOut, checkIn)
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func taxFor(cfg config.Hotel, subtotal float64) float64 {
	return math.Round(subtotal*cfg.TaxRate*100) / 100
}

// CreateReservation validates dates and room availability and persists a new
// reservation. The availability check and the insert share one transaction
// with the room row locked, so two concurrent bookings for the same room
// serialize instead of double-booking.
func CreateReservation(cfg config.Hotel, body *types.CreateReservationRequestBody) (*models.Reservation, error) {
	checkIn, err := ParseDate(body.CheckInDate)
	if err != nil {
		return nil, err
	}
	checkOut, err := ParseDate(body.CheckOutDate)
	if err != nil {
		return nil, err
	}
	if !checkOut.After(checkIn) {
		return nil, ErrInvalidDateRange
	}

	source := body.BookingSource
	if source == "" {
		source = types.SOURCE_DIRECT
	}
	nights := checkOut.Sub(checkIn).Hours() / 24
	reservation := models.Reservation{
		GuestID:          body.GuestID,
		RoomID:           body.RoomID,
		RoomTypeID:       body.RoomTypeID,
		CheckInDate:      checkIn,
		CheckOutDate:     checkOut,
		Adults:           body.Adults,
		Children:         body.Children,
		Infants:          body.Infants,
		RoomRate:         body.RoomRate,
		TaxAmount:        taxFor(cfg, body.RoomRate*nights),
		BookingSource:    source,
		BookingReference: body.BookingRef,
		SpecialRequests:  body.SpecialRequests,
		Notes:            body.Notes,
		Status:           types.RESERVATION_PENDING,
	}

	db := db.GetDb()
	err = db.Transaction(func(tx *gorm.DB) error {
		var guest models.Guest
		if err := tx.First(&guest, body.GuestID).Error; err != nil {
			return err
		}
		if guest.IsBlacklisted {
			return fmt.Errorf("guest %s is blacklisted", guest.DisplayName())
		}
		if body.RoomID != nil {
			var room models.Room
			if err := tx.
				Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&room, *body.RoomID).
				Error; err != nil {
				return err
			}
			conflicts, err := countConflicts(tx, *body.RoomID, checkIn, checkOut, 0)
			if err != nil {
				return err
			}
			if conflicts > 0 {
				return ErrRoomUnavailable
			}
		}
		reservation.ReservationNumber = utils.GenerateReservationNumber(tx, &models.Reservation{})
		if err := tx.Create(&reservation).Error; err != nil {
			return err
		}
		utils.RecordAudit(tx, nil, types.AUDIT_CREATE, "Reservation", reservation.ID, reservation.ReservationNumber, types.JSONB{
			"status": string(reservation.Status),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	go sendReservationConfirmation(cfg, &reservation)
	return &reservation, nil
}

// UpdateReservation re-validates dates and availability for an edit. The
// conflict query excludes the reservation itself.
func UpdateReservation(cfg config.Hotel, id uint, body *types.UpdateReservationRequestBody) (*models.Reservation, error) {
	checkIn, err := ParseDate(body.CheckInDate)
	if err != nil {
		return nil, err
	}
	checkOut, err := ParseDate(body.CheckOutDate)
	if err != nil {
		return nil, err
	}
	if !checkOut.After(checkIn) {
		return nil, ErrInvalidDateRange
	}

	var reservation models.Reservation
	db := db.GetDb()
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&reservation, id).Error; err != nil {
			return err
		}
		if reservation.Status.Terminal() {
			return ErrReservationTerminal
		}
		roomId := body.RoomID
		if roomId == nil {
			roomId = reservation.RoomID
		}
		if roomId != nil {
			var room models.Room
			if err := tx.
				Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&room, *roomId).
				Error; err != nil {
				return err
			}
			conflicts, err := countConflicts(tx, *roomId, checkIn, checkOut, reservation.ID)
			if err != nil {
				return err
			}
			if conflicts > 0 {
				return ErrRoomUnavailable
			}
		}
		reservation.RoomID = roomId
		reservation.CheckInDate = checkIn
		reservation.CheckOutDate = checkOut
		reservation.Adults = body.Adults
		reservation.Children = body.Children
		reservation.Infants = body.Infants
		reservation.RoomRate = body.RoomRate
		nights := checkOut.Sub(checkIn).Hours() / 24
		reservation.TaxAmount = taxFor(cfg, body.RoomRate*nights)
		reservation.SpecialRequests = body.SpecialRequests
		reservation.Notes = body.Notes
		if err := tx.Save(&reservation).Error; err != nil {
			return err
		}
		utils.RecordAudit(tx, nil, types.AUDIT_UPDATE, "Reservation", reservation.ID, reservation.ReservationNumber, nil)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

// ConfirmReservation moves a pending reservation to confirmed. Pending
// reservations do not block availability, so the room is re-checked under
// lock here: another booking may have been confirmed since creation.
func ConfirmReservation(id uint) (*models.Reservation, error) {
	var reservation models.Reservation
	db := db.GetDb()
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&reservation, id).Error; err != nil {
			return err
		}
		if reservation.Status != types.RESERVATION_PENDING {
			return fmt.Errorf("cannot confirm reservation in status %s", reservation.Status)
		}
		if reservation.RoomID != nil {
			var room models.Room
			if err := tx.
				Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&room, *reservation.RoomID).
				Error; err != nil {
				return err
			}
			conflicts, err := countConflicts(tx, *reservation.RoomID, reservation.CheckInDate, reservation.CheckOutDate, reservation.ID)
			if err != nil {
				return err
			}
			if conflicts > 0 {
				return ErrRoomUnavailable
			}
		}
		now := time.Now()
		reservation.Status = types.RESERVATION_CONFIRMED
		reservation.ConfirmedAt = &now
		return tx.Save(&reservation).Error
	})
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

// CheckInReservation stamps the arrival and flips the room to occupied.
// Both writes commit in one transaction.
func CheckInReservation(userId *uint, id uint, notes string) (*models.Reservation, error) {
	var reservation models.Reservation
	db := db.GetDb()
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&reservation, id).Error; err != nil {
			return err
		}
		today := Today()
		if !reservation.CanCheckIn(today) {
			return ErrCannotCheckIn
		}
		now := time.Now()
		reservation.Status = types.RESERVATION_CHECKED_IN
		reservation.CheckedInAt = &now
		if notes != "" {
			reservation.Notes = notes
		}
		if err := tx.Save(&reservation).Error; err != nil {
			return err
		}
		if err := tx.
			Model(&models.Room{}).
			Where("id = ?", *reservation.RoomID).
			Update("status", types.ROOM_OCCUPIED).
			Error; err != nil {
			return err
		}
		utils.RecordAudit(tx, userId, types.AUDIT_CHECKIN, "Reservation", reservation.ID, reservation.ReservationNumber, types.JSONB{
			"room_id": *reservation.RoomID,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

// CheckOutReservation stamps the departure, sends the room to cleaning and
// creates the cleaning task, all in one transaction.
func CheckOutReservation(userId *uint, id uint, notes string) (*models.Reservation, error) {
	var reservation models.Reservation
	db := db.GetDb()
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&reservation, id).Error; err != nil {
			return err
		}
		if !reservation.CanCheckOut() {
			return ErrCannotCheckOut
		}
		now := time.Now()
		reservation.Status = types.RESERVATION_CHECKED_OUT
		reservation.CheckedOutAt = &now
		if notes != "" {
			reservation.Notes = notes
		}
		if err := tx.Save(&reservation).Error; err != nil {
			return err
		}
		if reservation.RoomID != nil {
			var room models.Room
			if err := tx.First(&room, *reservation.RoomID).Error; err != nil {
				return err
			}
			if err := tx.
				Model(&models.Room{}).
				Where("id = ?", room.ID).
				Update("status", types.ROOM_CLEANING).
				Error; err != nil {
				return err
			}
			task := models.HousekeepingTask{
				RoomID:        room.ID,
				TaskType:      types.TASK_CLEANING,
				Title:         fmt.Sprintf("Clean room %s", room.Number),
				Description:   fmt.Sprintf("Clean room %s after checkout", room.Number),
				Priority:      types.PRIORITY_NORMAL,
				Status:        types.TASK_PENDING,
				ScheduledDate: now,
			}
			if err := tx.Create(&task).Error; err != nil {
				return err
			}
		}
		utils.RecordAudit(tx, userId, types.AUDIT_CHECKOUT, "Reservation", reservation.ID, reservation.ReservationNumber, nil)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

// CancelReservation is allowed from any pre-checkout state and frees the
// assigned room.
func CancelReservation(id uint, reason string) (*models.Reservation, error) {
	var reservation models.Reservation
	db := db.GetDb()
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&reservation, id).Error; err != nil {
			return err
		}
		if !reservation.CanCancel() {
			return ErrReservationTerminal
		}
		now := time.Now()
		reservation.Status = types.RESERVATION_CANCELLED
		reservation.CancelledAt = &now
		reservation.CancellationReason = reason
		if err := tx.Save(&reservation).Error; err != nil {
			return err
		}
		if reservation.RoomID != nil {
			if err := tx.
				Model(&models.Room{}).
				Where("id = ?", *reservation.RoomID).
				Update("status", types.ROOM_AVAILABLE).
				Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

// MarkNoShow is a manual, administrative transition with no side effects.
func MarkNoShow(id uint) (*models.Reservation, error) {
	var reservation models.Reservation
	db := db.GetDb()
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&reservation, id).Error; err != nil {
			return err
		}
		if reservation.Status.Terminal() {
			return ErrReservationTerminal
		}
		reservation.Status = types.RESERVATION_NO_SHOW
		return tx.Save(&reservation).Error
	})
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

// RoomOccupiedOn reports whether any blocking reservation covers the date
// on the given room, half-open rule: check-in day counts, check-out day
// does not.
func RoomOccupiedOn(roomId uint, date time.Time) (bool, error) {
	db := db.GetDb()
	count, err := countConflicts(db, roomId, date, date.AddDate(0, 0, 1), 0)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindAvailableRooms returns active rooms of the given type with no
// conflicting reservation in [checkIn, checkOut).
func FindAvailableRooms(roomTypeId uint, checkIn, checkOut time.Time) ([]models.Room, error) {
	db := db.GetDb()
	rooms := make([]models.Room, 0)
	q := db.
		Model(&models.Room{}).
		Where("is_active = ?", true).
		Where("status <> ?", types.ROOM_OUT_OF_ORDER).
		Where(`id NOT IN (
			SELECT room_id FROM reservations
			WHERE room_id IS NOT NULL
			AND status IN (?)
			AND check_in_date < ? AND check_out_date > ?
			AND deleted_at IS NULL
		)`, []types.ReservationStatus{
			types.RESERVATION_CONFIRMED,
			types.RESERVATION_CHECKED_IN,
		}, checkOut, checkIn).
		Order("number asc")
	if roomTypeId > 0 {
		q = q.Where("room_type_id = ?", roomTypeId)
	}
	if err := q.Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func sendReservationConfirmation(cfg config.Hotel, reservation *models.Reservation) {
	db := db.GetDb()
	var guest models.Guest
	if err := db.First(&guest, reservation.GuestID).Error; err != nil {
		log.Printf("Error loading guest for confirmation email: %s\n", err.Error())
		return
	}
	if guest.Email == "" {
		return
	}
	body := fmt.Sprintf(
		"Dear %s,\n\nYour reservation %s at %s is received.\nCheck-in: %s from %s\nCheck-out: %s until %s\nTotal: %.2f %s\n",
		guest.DisplayName(),
		reservation.ReservationNumber,
		cfg.Name,
		reservation.CheckInDate.Format(config.DATE_PARSE_FORMAT), cfg.CheckInTime,
		reservation.CheckOutDate.Format(config.DATE_PARSE_FORMAT), cfg.CheckOutTime,
		reservation.TotalAmount, cfg.Currency,
	)
	err := lib.SendMail(&lib.SendMailInput{
		From:     cfg.Email,
		FromName: cfg.Name,
		To:       []string{guest.Email},
		Subject:  fmt.Sprintf("Reservation %s confirmed", reservation.ReservationNumber),
		Body:     body,
	})
	if err != nil {
		log.Printf("Error sending confirmation email for %s: %s\n", reservation.ReservationNumber, err.Error())
	}
}
