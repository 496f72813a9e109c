package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"hms/src/common"
	"hms/src/config"
	"hms/src/db"
	"hms/src/models"
	"hms/src/types"
	"hms/src/utils"

	"github.com/gin-gonic/gin"
)

func staffId(ctx *gin.Context) *uint {
	id := ctx.GetUint("id")
	if id == 0 {
		return nil
	}
	return &id
}

func reservationHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/reservations", func(ctx *gin.Context) {
			var filters types.ReservationQueryFilters
			if err := ctx.BindQuery(&filters); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			db := db.GetDb()
			q := db.
				Model(&models.Reservation{}).
				Preload("Guest").
				Preload("Room").
				Preload("RoomType").
				Order("check_in_date desc")
			if filters.Status != "" {
				q = q.Where("status = ?", filters.Status)
			}
			if filters.DateFrom != "" {
				from, err := common.ParseDate(filters.DateFrom)
				if err != nil {
					ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
					return
				}
				q = q.Where("check_in_date >= ?", from)
			}
			if filters.DateTo != "" {
				to, err := common.ParseDate(filters.DateTo)
				if err != nil {
					ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
					return
				}
				q = q.Where("check_out_date <= ?", to)
			}
			if filters.Search != "" {
				term := fmt.Sprintf("%%%s%%", filters.Search)
				q = q.
					Joins("LEFT JOIN guests ON guests.id = reservations.guest_id").
					Where("reservation_number ILIKE ? OR guests.first_name ILIKE ? OR guests.last_name ILIKE ?", term, term, term)
			}
			reservations := make([]models.Reservation, 0)
			if err := q.Scopes(utils.Paginate(filters.Page)).Find(&reservations).Error; err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": reservations, "count": len(reservations)})
		}).
		POST("/reservations", func(ctx *gin.Context) {
			var body types.CreateReservationRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			reservation, err := common.CreateReservation(hotelConfig, &body)
			if err != nil {
				log.Printf("Error creating reservation: %s\n", err.Error())
				status := http.StatusBadRequest
				if errors.Is(err, common.ErrRoomUnavailable) {
					status = http.StatusConflict
				}
				ctx.JSON(status, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": reservation})
		}).
		GET("/reservations/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var reservation models.Reservation
			db := db.GetDb()
			err := db.
				Preload("Guest").
				Preload("Room").
				Preload("RoomType").
				Preload("Services").
				First(&reservation, params.ID).
				Error
			if err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "reservation not found"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": reservation})
		}).
		PUT("/reservations/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var body types.UpdateReservationRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			reservation, err := common.UpdateReservation(hotelConfig, params.ID, &body)
			if err != nil {
				status := http.StatusBadRequest
				if errors.Is(err, common.ErrRoomUnavailable) {
					status = http.StatusConflict
				}
				ctx.JSON(status, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": reservation})
		}).
		POST("/reservations/:id/confirm", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			reservation, err := common.ConfirmReservation(params.ID)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": reservation})
		}).
		POST("/reservations/:id/checkin", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var body types.CheckInRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			reservation, err := common.CheckInReservation(staffId(ctx), params.ID, body.Notes)
			if err != nil {
				log.Printf("Error on check-in for reservation [%d]: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": reservation})
		}).
		POST("/reservations/:id/checkout", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var body types.CheckOutRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			reservation, err := common.CheckOutReservation(staffId(ctx), params.ID, body.Notes)
			if err != nil {
				log.Printf("Error on check-out for reservation [%d]: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": reservation})
		}).
		POST("/reservations/:id/cancel", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var body types.CancelReservationRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			reservation, err := common.CancelReservation(params.ID, body.Reason)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": reservation})
		}).
		POST("/reservations/:id/no-show", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			reservation, err := common.MarkNoShow(params.ID)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": reservation})
		}).
		POST("/reservations/:id/services", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var body types.AddReservationServiceRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			db := db.GetDb()
			var reservation models.Reservation
			if err := db.First(&reservation, params.ID).Error; err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "reservation not found"})
				return
			}
			if reservation.Status.Terminal() {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": common.ErrReservationTerminal.Error()})
				return
			}
			service := models.ReservationService{
				ReservationID: reservation.ID,
				ServiceName:   body.ServiceName,
				Description:   body.Description,
				Quantity:      body.Quantity,
				UnitPrice:     body.UnitPrice,
				ServiceDate:   time.Now(),
			}
			if body.ServiceDate != "" {
				serviceDate, err := time.Parse(config.DATE_PARSE_FORMAT, body.ServiceDate)
				if err != nil {
					ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
					return
				}
				service.ServiceDate = serviceDate
			}
			if err := db.Create(&service).Error; err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": service})
		})
	return g
}
