package main

import (
	"net/http"

	"hms/src/common"
	"hms/src/config"
	"hms/src/db"
	"hms/src/models"
	"hms/src/types"

	"github.com/gin-gonic/gin"
)

func frontDeskHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/frontdesk/dashboard", func(ctx *gin.Context) {
			snapshot, err := common.GetDashboardSnapshot()
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": snapshot})
		}).
		GET("/frontdesk/arrivals", func(ctx *gin.Context) {
			date := common.Today()
			if dateParam := ctx.Query("date"); dateParam != "" {
				parsed, err := common.ParseDate(dateParam)
				if err != nil {
					ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
					return
				}
				date = parsed
			}
			db := db.GetDb()
			arrivals := make([]models.Reservation, 0)
			err := db.
				Preload("Guest").
				Preload("Room").
				Preload("RoomType").
				Where("status = ? AND check_in_date = ?", types.RESERVATION_CONFIRMED, date).
				Order("created_at asc").
				Find(&arrivals).
				Error
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": arrivals, "count": len(arrivals)})
		}).
		GET("/frontdesk/departures", func(ctx *gin.Context) {
			date := common.Today()
			if dateParam := ctx.Query("date"); dateParam != "" {
				parsed, err := common.ParseDate(dateParam)
				if err != nil {
					ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
					return
				}
				date = parsed
			}
			db := db.GetDb()
			departures := make([]models.Reservation, 0)
			err := db.
				Preload("Guest").
				Preload("Room").
				Where("status = ? AND check_out_date = ?", types.RESERVATION_CHECKED_IN, date).
				Order("created_at asc").
				Find(&departures).
				Error
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": departures, "count": len(departures)})
		}).
		GET("/frontdesk/calendar", func(ctx *gin.Context) {
			start := common.Today()
			if startParam := ctx.Query("start_date"); startParam != "" {
				parsed, err := common.ParseDate(startParam)
				if err != nil {
					ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
					return
				}
				start = parsed
			}
			end := start.AddDate(0, 0, 30)
			db := db.GetDb()
			reservations := make([]models.Reservation, 0)
			err := db.
				Preload("Guest").
				Preload("Room").
				Where("status IN (?)", []types.ReservationStatus{
					types.RESERVATION_CONFIRMED,
					types.RESERVATION_CHECKED_IN,
				}).
				Where("check_in_date < ? AND check_out_date > ?", end, start).
				Order("check_in_date asc").
				Find(&reservations).
				Error
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{
				"start": start.Format(config.DATE_PARSE_FORMAT),
				"end":   end.Format(config.DATE_PARSE_FORMAT),
				"data":  reservations,
				"count": len(reservations),
			})
		}).
		GET("/frontdesk/rooms", func(ctx *gin.Context) {
			db := db.GetDb()
			rooms := make([]models.Room, 0)
			err := db.
				Preload("RoomType").
				Where("is_active = ?", true).
				Order("floor asc, number asc").
				Find(&rooms).
				Error
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			board := make(map[uint][]models.Room)
			for _, room := range rooms {
				board[room.Floor] = append(board[room.Floor], room)
			}
			ctx.JSON(http.StatusOK, gin.H{"data": board, "count": len(rooms)})
		})
	return g
}
