package common

import (
	"math/rand"
	"testing"
	"time"

	"hms/src/config"
	"hms/src/db"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	d, err := time.Parse(config.DATE_PARSE_FORMAT, s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-06-01")
	assert.Nil(t, err)
	assert.Equal(t, 2026, d.Year())
	assert.Equal(t, time.June, d.Month())

	_, err = ParseDate("06/01/2026")
	assert.NotNil(t, err)
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                 string
		aIn, aOut, bIn, bOut string
		want                 bool
	}{
		{"identical stays", "2026-06-01", "2026-06-05", "2026-06-01", "2026-06-05", true},
		{"contained stay", "2026-06-01", "2026-06-10", "2026-06-03", "2026-06-05", true},
		{"partial overlap front", "2026-06-01", "2026-06-05", "2026-06-04", "2026-06-08", true},
		{"partial overlap back", "2026-06-04", "2026-06-08", "2026-06-01", "2026-06-05", true},
		{"back to back, checkout equals checkin", "2026-06-01", "2026-06-05", "2026-06-05", "2026-06-08", false},
		{"back to back, reversed", "2026-06-05", "2026-06-08", "2026-06-01", "2026-06-05", false},
		{"disjoint", "2026-06-01", "2026-06-03", "2026-06-10", "2026-06-12", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Overlaps(day(c.aIn), day(c.aOut), day(c.bIn), day(c.bOut))
			assert.Equal(t, c.want, got)
		})
	}
}

func TestOverlapsSymmetry(t *testing.T) {
	base := day("2026-01-01")
	rnd := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		aIn := base.AddDate(0, 0, rnd.Intn(60))
		aOut := aIn.AddDate(0, 0, 1+rnd.Intn(14))
		bIn := base.AddDate(0, 0, rnd.Intn(60))
		bOut := bIn.AddDate(0, 0, 1+rnd.Intn(14))
		assert.Equal(t, Overlaps(aIn, aOut, bIn, bOut), Overlaps(bIn, bOut, aIn, aOut))
	}
}

func TestTaxFor(t *testing.T) {
	cfg := config.Hotel{TaxRate: 0.0875}
	assert.Equal(t, 17.5, taxFor(cfg, 200))
	assert.Equal(t, 8.75, taxFor(cfg, 100))
	assert.Equal(t, 0.0, taxFor(cfg, 0))
	// rounds to cents
	assert.Equal(t, 8.71, taxFor(cfg, 99.55))
}

func TestConfirmReservationRejectsNewConflict(t *testing.T) {
	_, mock := db.GetMockDB()

	roomId := 7
	checkIn := day("2026-06-01")
	checkOut := day("2026-06-03")

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "reservations" WHERE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "reservation_number", "status", "room_id", "check_in_date", "check_out_date", "room_rate"}).
			AddRow(1, "AB12CD34", "pending", roomId, checkIn, checkOut, 100.0))
	mock.ExpectQuery(`SELECT (.+) FROM "rooms" (.+) FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "number", "status"}).
			AddRow(roomId, "101", "available"))
	// another booking on the room was confirmed in the meantime
	mock.ExpectQuery(`SELECT count\(\*\) FROM "reservations"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	_, err := ConfirmReservation(1)
	assert.ErrorIs(t, err, ErrRoomUnavailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTodayHasNoClock(t *testing.T) {
	today := Today()
	assert.Equal(t, 0, today.Hour())
	assert.Equal(t, 0, today.Minute())
	assert.Equal(t, time.UTC, today.Location())
	assert.Equal(t, time.Now().Day(), today.Day())
}
