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
	"hms/src/utils"

	"github.com/gin-gonic/gin"
)

func housekeepingHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/housekeeping/tasks", func(ctx *gin.Context) {
			var query struct {
				Status   string `form:"status"`
				TaskType string `form:"task_type"`
				RoomID   uint   `form:"room"`
				Page     int    `form:"page,default=1"`
			}
			if err := ctx.BindQuery(&query); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			db := db.GetDb()
			q := db.
				Model(&models.HousekeepingTask{}).
				Preload("Room").
				Order("scheduled_date asc, priority desc")
			if query.Status != "" {
				q = q.Where("status = ?", query.Status)
			}
			if query.TaskType != "" {
				q = q.Where("task_type = ?", query.TaskType)
			}
			if query.RoomID > 0 {
				q = q.Where("room_id = ?", query.RoomID)
			}
			tasks := make([]models.HousekeepingTask, 0)
			if err := q.Scopes(utils.Paginate(query.Page)).Find(&tasks).Error; err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": tasks, "count": len(tasks)})
		}).
		POST("/housekeeping/tasks", func(ctx *gin.Context) {
			var body types.CreateTaskRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			db := db.GetDb()
			var count int64
			if err := db.Model(&models.Room{}).Where("id = ?", body.RoomID).Count(&count).Error; err != nil || count == 0 {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "room not found"})
				return
			}
			priority := body.Priority
			if priority == "" {
				priority = types.PRIORITY_NORMAL
			}
			task := models.HousekeepingTask{
				RoomID:        body.RoomID,
				TaskType:      body.TaskType,
				Title:         body.Title,
				Description:   body.Description,
				Priority:      priority,
				Status:        types.TASK_PENDING,
				ScheduledDate: time.Now(),
			}
			if body.ScheduledDate != "" {
				scheduled, err := time.Parse(config.DATE_PARSE_FORMAT, body.ScheduledDate)
				if err != nil {
					ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
					return
				}
				task.ScheduledDate = scheduled
			}
			if err := db.Create(&task).Error; err != nil {
				log.Printf("Error creating task: %s\n", err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": task})
		}).
		GET("/housekeeping/tasks/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var task models.HousekeepingTask
			db := db.GetDb()
			if err := db.Preload("Room").First(&task, params.ID).Error; err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": task})
		}).
		POST("/housekeeping/tasks/:id/assign", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var body struct {
				AssignedTo uint `json:"assigned_to" binding:"required"`
			}
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			db := db.GetDb()
			var task models.HousekeepingTask
			if err := db.First(&task, params.ID).Error; err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
				return
			}
			if !task.IsOpen() {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "task is closed"})
				return
			}
			if err := db.Model(&task).Update("assigned_to_id", body.AssignedTo).Error; err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": task})
		}).
		POST("/housekeeping/tasks/:id/start", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			db := db.GetDb()
			var task models.HousekeepingTask
			if err := db.First(&task, params.ID).Error; err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
				return
			}
			if task.Status != types.TASK_PENDING && task.Status != types.TASK_ON_HOLD {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "task cannot be started"})
				return
			}
			now := time.Now()
			task.Status = types.TASK_IN_PROGRESS
			task.StartedAt = &now
			if err := db.Save(&task).Error; err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": task})
		}).
		POST("/housekeeping/tasks/:id/complete", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var body types.CompleteTaskRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			task, err := common.CompleteHousekeepingTask(params.ID, &body)
			if err != nil {
				log.Printf("Error completing task [%d]: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": task})
		}).
		POST("/housekeeping/tasks/:id/cancel", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			db := db.GetDb()
			var task models.HousekeepingTask
			if err := db.First(&task, params.ID).Error; err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
				return
			}
			if !task.IsOpen() {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "task is closed"})
				return
			}
			if err := db.Model(&task).Update("status", types.TASK_CANCELLED).Error; err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": task})
		}).
		GET("/housekeeping/supplies", func(ctx *gin.Context) {
			db := db.GetDb()
			supplies := make([]models.HousekeepingSupply, 0)
			q := db.Where("is_active = ?", true).Order("category asc, name asc")
			if category := ctx.Query("category"); category != "" {
				q = q.Where("category = ?", category)
			}
			if err := q.Find(&supplies).Error; err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": supplies, "count": len(supplies)})
		}).
		POST("/housekeeping/supplies", func(ctx *gin.Context) {
			var body struct {
				Name            string  `json:"name" binding:"required"`
				Category        string  `json:"category" binding:"required"`
				Description     string  `json:"description,omitempty"`
				CurrentStock    uint    `json:"current_stock,omitempty"`
				MinimumStock    uint    `json:"minimum_stock,omitempty"`
				MaximumStock    uint    `json:"maximum_stock,omitempty"`
				Unit            string  `json:"unit,omitempty"`
				UnitCost        float64 `json:"unit_cost,omitempty"`
				Supplier        string  `json:"supplier,omitempty"`
				SupplierContact string  `json:"supplier_contact,omitempty"`
			}
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			supply := models.HousekeepingSupply{
				Name:            body.Name,
				Category:        body.Category,
				Description:     body.Description,
				CurrentStock:    body.CurrentStock,
				MinimumStock:    body.MinimumStock,
				MaximumStock:    body.MaximumStock,
				Unit:            body.Unit,
				UnitCost:        body.UnitCost,
				Supplier:        body.Supplier,
				SupplierContact: body.SupplierContact,
				IsActive:        true,
			}
			db := db.GetDb()
			if err := db.Create(&supply).Error; err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": supply})
		}).
		GET("/housekeeping/supplies/low-stock", func(ctx *gin.Context) {
			db := db.GetDb()
			supplies := make([]models.HousekeepingSupply, 0)
			err := db.
				Where("is_active = ?", true).
				Where("current_stock <= minimum_stock").
				Order("current_stock asc").
				Find(&supplies).
				Error
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": supplies, "count": len(supplies)})
		}).
		PATCH("/housekeeping/supplies/:id/stock", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var body struct {
				CurrentStock *uint `json:"current_stock" binding:"required"`
			}
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			db := db.GetDb()
			var supply models.HousekeepingSupply
			if err := db.First(&supply, params.ID).Error; err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "supply not found"})
				return
			}
			if err := db.Model(&supply).Update("current_stock", *body.CurrentStock).Error; err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": supply})
		})
	return g
}
