package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"hms/src/config"
	"hms/src/db"
	"hms/src/middlewares"
	"hms/src/types"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"github.com/tidwall/gjson"
)

type TestSuite struct {
	suite.Suite
}

func (s *TestSuite) SetupSuite() {
	registerValidators()
}

func (s *TestSuite) TestPingRoute() {
	router := setupRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/", nil)
	router.ServeHTTP(w, req)

	assert.Equal(s.T(), 200, w.Code)
}

func (s *TestSuite) TestSecureHeaders() {
	router := setupRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/", nil)
	router.ServeHTTP(w, req)

	assert.Equal(s.T(), "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(s.T(), "DENY", w.Header().Get("X-Frame-Options"))
}

func (s *TestSuite) TestMaintenanceMode() {
	os.Setenv("MAINTENANCE_MODE", "true")
	defer os.Unsetenv("MAINTENANCE_MODE")

	router := setupRouter()
	router = maintenanceModeMiddleware(router)
	apiv1Group(router)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(s.T(), 503, w.Code)
}

func (s *TestSuite) TestUnauthorized() {
	router := setupRouter()
	apiv1 := apiv1Group(router)
	apiv1.Use(middlewares.AuthMiddleware)
	reservationHandlers(apiv1)

	s.Run("Should reject requests without a token", func() {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/reservations", nil)
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 401, w.Code)
	})

	s.Run("Should reject malformed tokens", func() {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/reservations", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 401, w.Code)
	})

	s.Run("Should reject a bearer header without a token", func() {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/reservations", nil)
		req.Header.Set("Authorization", "Bearer")
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 401, w.Code)
	})
}

func (s *TestSuite) TestReservationListDateToFilter() {
	_, mock := db.GetMockDB()
	router := setupRouter()
	apiv1 := apiv1Group(router)
	reservationHandlers(apiv1)

	// date_to means "departed by", so it filters on the check-out column
	mock.ExpectQuery(`SELECT (.+) FROM "reservations" WHERE check_out_date <= (.+)`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/reservations?date_to=2026-06-01", nil)
	router.ServeHTTP(w, req)

	assert.Equal(s.T(), 200, w.Code)
	assert.NoError(s.T(), mock.ExpectationsWereMet())
}

func (s *TestSuite) TestAuthBindings() {
	router := setupRouter()
	staffAuthRoutes(router)

	s.Run("Should reject login without a password", func() {
		w := httptest.NewRecorder()
		body := map[string]any{"email": "someone@example.com"}
		sbody, _ := json.Marshal(&body)
		req, _ := http.NewRequest("POST", "/api/v1/auth/login", strings.NewReader(string(sbody)))
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 400, w.Code)
	})

	s.Run("Should reject registration with a short password", func() {
		w := httptest.NewRecorder()
		body := map[string]any{
			"name":     "Test Staff",
			"email":    "staff@example.com",
			"password": "short",
		}
		sbody, _ := json.Marshal(&body)
		req, _ := http.NewRequest("POST", "/api/v1/auth/register", strings.NewReader(string(sbody)))
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 400, w.Code)
	})
}

func (s *TestSuite) TestReservationValidation() {
	router := setupRouter()
	apiv1 := apiv1Group(router)
	reservationHandlers(apiv1)

	post := func(body types.CreateReservationRequestBody) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		rbytes, err := json.Marshal(&body)
		assert.Nil(s.T(), err)
		req, _ := http.NewRequest("POST", "/api/v1/reservations", strings.NewReader(string(rbytes)))
		router.ServeHTTP(w, req)
		return w
	}

	future := func(days int) string {
		return time.Now().AddDate(0, 0, days).Format(config.DATE_PARSE_FORMAT)
	}

	s.Run("Should reject an empty body", func() {
		w := post(types.CreateReservationRequestBody{})
		assert.Equal(s.T(), 400, w.Code)

		rbytes, err := io.ReadAll(w.Body)
		assert.Nil(s.T(), err)
		errMsg := gjson.Get(string(rbytes), "error").String()
		assert.NotEmpty(s.T(), errMsg)
	})

	s.Run("Should reject a check-in date in the past", func() {
		w := post(types.CreateReservationRequestBody{
			GuestID:      1,
			RoomTypeID:   1,
			CheckInDate:  "2020-01-01",
			CheckOutDate: "2020-01-05",
			Adults:       2,
			RoomRate:     100,
		})
		assert.Equal(s.T(), 400, w.Code)
	})

	s.Run("Should reject check-out on or before check-in", func() {
		w := post(types.CreateReservationRequestBody{
			GuestID:      1,
			RoomTypeID:   1,
			CheckInDate:  future(5),
			CheckOutDate: future(5),
			Adults:       2,
			RoomRate:     100,
		})
		assert.Equal(s.T(), 400, w.Code)

		w = post(types.CreateReservationRequestBody{
			GuestID:      1,
			RoomTypeID:   1,
			CheckInDate:  future(5),
			CheckOutDate: future(3),
			Adults:       2,
			RoomRate:     100,
		})
		assert.Equal(s.T(), 400, w.Code)
	})

	s.Run("Should reject a zero room rate", func() {
		w := post(types.CreateReservationRequestBody{
			GuestID:      1,
			RoomTypeID:   1,
			CheckInDate:  future(5),
			CheckOutDate: future(7),
			Adults:       2,
		})
		assert.Equal(s.T(), 400, w.Code)
	})
}

func (s *TestSuite) TestGuestValidation() {
	router := setupRouter()
	apiv1 := apiv1Group(router)
	guestHandlers(apiv1)

	s.Run("Should reject a guest without an email", func() {
		w := httptest.NewRecorder()
		body := types.CreateGuestRequestBody{
			FirstName: "John",
			LastName:  "Smith",
			Phone:     "+15550100",
		}
		rbytes, _ := json.Marshal(&body)
		req, _ := http.NewRequest("POST", "/api/v1/guests", strings.NewReader(string(rbytes)))
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 400, w.Code)
	})

	s.Run("Should reject an invalid email", func() {
		w := httptest.NewRecorder()
		body := types.CreateGuestRequestBody{
			FirstName: "John",
			LastName:  "Smith",
			Email:     "not-an-email",
			Phone:     "+15550100",
		}
		rbytes, _ := json.Marshal(&body)
		req, _ := http.NewRequest("POST", "/api/v1/guests", strings.NewReader(string(rbytes)))
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 400, w.Code)
	})
}

func (s *TestSuite) TestReportRangeValidation() {
	router := setupRouter()
	apiv1 := apiv1Group(router)
	reportHandlers(apiv1)

	w := httptest.NewRecorder()
	url := fmt.Sprintf("/api/v1/reports/occupancy?start_date=%s&end_date=%s", "2026-06-10", "2026-06-01")
	req, _ := http.NewRequest("GET", url, nil)
	router.ServeHTTP(w, req)

	assert.Equal(s.T(), 400, w.Code)
}

func TestRunner(t *testing.T) {
	suite.Run(t, new(TestSuite))
}
