package main

import (
	"log"
	"net/http"
	"time"

	"hms/src/common"
	"hms/src/config"
	"hms/src/db"
	"hms/src/models"
	"hms/src/types"

	"github.com/gin-gonic/gin"
)

func roomHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/room-types", func(ctx *gin.Context) {
			db := db.GetDb()
			roomTypes := make([]models.RoomType, 0)
			err := db.
				Where("is_active = ?", true).
				Order("base_price asc").
				Find(&roomTypes).
				Error
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": roomTypes, "count": len(roomTypes)})
		}).
		POST("/room-types", func(ctx *gin.Context) {
			var body types.CreateRoomTypeRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			roomType := models.RoomType{
				Name:         body.Name,
				Description:  body.Description,
				BasePrice:    body.BasePrice,
				MaxOccupancy: body.MaxOccupancy,
				SizeSqft:     body.SizeSqft,
				HasWifi:      true,
				HasTV:        true,
				HasAC:        true,
				HasMinibar:   body.HasMinibar,
				HasBalcony:   body.HasBalcony,
				HasKitchen:   body.HasKitchen,
				IsActive:     true,
			}
			if body.HasWifi != nil {
				roomType.HasWifi = *body.HasWifi
			}
			if body.HasTV != nil {
				roomType.HasTV = *body.HasTV
			}
			if body.HasAC != nil {
				roomType.HasAC = *body.HasAC
			}
			db := db.GetDb()
			if err := db.Create(&roomType).Error; err != nil {
				log.Printf("Error creating room type: %s\n", err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": roomType})
		}).
		GET("/room-types/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var roomType models.RoomType
			db := db.GetDb()
			if err := db.Preload("Rooms").First(&roomType, params.ID).Error; err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "room type not found"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": roomType})
		}).
		PUT("/room-types/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var body types.CreateRoomTypeRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var roomType models.RoomType
			db := db.GetDb()
			if err := db.First(&roomType, params.ID).Error; err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "room type not found"})
				return
			}
			roomType.Name = body.Name
			roomType.Description = body.Description
			roomType.BasePrice = body.BasePrice
			roomType.MaxOccupancy = body.MaxOccupancy
			roomType.SizeSqft = body.SizeSqft
			if body.HasWifi != nil {
				roomType.HasWifi = *body.HasWifi
			}
			if body.HasTV != nil {
				roomType.HasTV = *body.HasTV
			}
			if body.HasAC != nil {
				roomType.HasAC = *body.HasAC
			}
			roomType.HasMinibar = body.HasMinibar
			roomType.HasBalcony = body.HasBalcony
			roomType.HasKitchen = body.HasKitchen
			if err := db.Save(&roomType).Error; err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": roomType})
		}).
		GET("/rooms", func(ctx *gin.Context) {
			var query struct {
				Status     string `form:"status"`
				RoomTypeID uint   `form:"room_type"`
				Floor      *uint  `form:"floor"`
			}
			if err := ctx.BindQuery(&query); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			db := db.GetDb()
			q := db.
				Model(&models.Room{}).
				Preload("RoomType").
				Where("is_active = ?", true).
				Order("number asc")
			if query.Status != "" {
				q = q.Where("status = ?", query.Status)
			}
			if query.RoomTypeID > 0 {
				q = q.Where("room_type_id = ?", query.RoomTypeID)
			}
			if query.Floor != nil {
				q = q.Where("floor = ?", *query.Floor)
			}
			rooms := make([]models.Room, 0)
			if err := q.Find(&rooms).Error; err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": rooms, "count": len(rooms)})
		}).
		POST("/rooms", func(ctx *gin.Context) {
			var body types.CreateRoomRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			db := db.GetDb()
			var count int64
			if err := db.Model(&models.RoomType{}).Where("id = ?", body.RoomTypeID).Count(&count).Error; err != nil || count == 0 {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "room type not found"})
				return
			}
			room := models.Room{
				Number:     body.Number,
				RoomTypeID: body.RoomTypeID,
				Floor:      body.Floor,
				Status:     types.ROOM_AVAILABLE,
				Notes:      body.Notes,
				IsActive:   true,
			}
			if err := db.Create(&room).Error; err != nil {
				log.Printf("Error creating room: %s\n", err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": room})
		}).
		GET("/rooms/availability", func(ctx *gin.Context) {
			var query types.AvailabilityQuery
			if err := ctx.BindQuery(&query); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			checkIn, err := common.ParseDate(query.CheckInDate)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			checkOut, err := common.ParseDate(query.CheckOutDate)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if !checkOut.After(checkIn) {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": common.ErrInvalidDateRange.Error()})
				return
			}
			rooms, err := common.FindAvailableRooms(query.RoomTypeID, checkIn, checkOut)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": rooms, "count": len(rooms)})
		}).
		GET("/rooms/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var room models.Room
			db := db.GetDb()
			if err := db.Preload("RoomType").First(&room, params.ID).Error; err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": room})
		}).
		PUT("/rooms/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var body types.CreateRoomRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var room models.Room
			db := db.GetDb()
			if err := db.First(&room, params.ID).Error; err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
				return
			}
			room.Number = body.Number
			room.RoomTypeID = body.RoomTypeID
			room.Floor = body.Floor
			room.Notes = body.Notes
			if err := db.Save(&room).Error; err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": room})
		}).
		GET("/rooms/:id/occupied", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			dateParam := ctx.Query("date")
			date := common.Today()
			if dateParam != "" {
				parsed, err := common.ParseDate(dateParam)
				if err != nil {
					ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
					return
				}
				date = parsed
			}
			occupied, err := common.RoomOccupiedOn(params.ID, date)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{
				"date":     date.Format(config.DATE_PARSE_FORMAT),
				"occupied": occupied,
			})
		}).
		PATCH("/rooms/:id/status", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var body types.UpdateRoomStatusRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var room models.Room
			db := db.GetDb()
			if err := db.First(&room, params.ID).Error; err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
				return
			}
			newStatus := *body.NewStatus
			updates := map[string]any{"status": newStatus}
			if newStatus == types.ROOM_MAINTENANCE {
				updates["last_maintenance"] = time.Now()
			}
			if err := db.Model(&room).Updates(updates).Error; err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": room})
		})
	return g
}
