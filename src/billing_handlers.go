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

func billingHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/invoices", func(ctx *gin.Context) {
			var query struct {
				Status  string `form:"status"`
				GuestID uint   `form:"guest"`
				Page    int    `form:"page,default=1"`
			}
			if err := ctx.BindQuery(&query); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			db := db.GetDb()
			q := db.
				Model(&models.Invoice{}).
				Preload("Guest").
				Order("issue_date desc")
			if query.Status != "" {
				q = q.Where("status = ?", query.Status)
			}
			if query.GuestID > 0 {
				q = q.Where("guest_id = ?", query.GuestID)
			}
			invoices := make([]models.Invoice, 0)
			if err := q.Scopes(utils.Paginate(query.Page)).Find(&invoices).Error; err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": invoices, "count": len(invoices)})
		}).
		POST("/invoices", func(ctx *gin.Context) {
			var body types.CreateInvoiceRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			invoice, err := common.CreateInvoice(&body)
			if err != nil {
				log.Printf("Error creating invoice: %s\n", err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": invoice})
		}).
		GET("/invoices/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var invoice models.Invoice
			db := db.GetDb()
			err := db.
				Preload("Guest").
				Preload("LineItems").
				Preload("Payments").
				First(&invoice, params.ID).
				Error
			if err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "invoice not found"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{
				"data":        invoice,
				"balance_due": invoice.BalanceDue(),
			})
		}).
		POST("/invoices/:id/items", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var body types.AddLineItemRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			db := db.GetDb()
			var invoice models.Invoice
			if err := db.First(&invoice, params.ID).Error; err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "invoice not found"})
				return
			}
			item := models.InvoiceLineItem{
				InvoiceID:   invoice.ID,
				Description: body.Description,
				Quantity:    body.Quantity,
				UnitPrice:   body.UnitPrice,
			}
			if body.ServiceDate != "" {
				serviceDate, err := time.Parse(config.DATE_PARSE_FORMAT, body.ServiceDate)
				if err != nil {
					ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
					return
				}
				item.ServiceDate = &serviceDate
			}
			if err := db.Create(&item).Error; err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			updated, err := common.RecalculateInvoiceTotals(hotelConfig, invoice.ID)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": item, "invoice": updated})
		}).
		POST("/invoices/:id/recalculate", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			invoice, err := common.RecalculateInvoiceTotals(hotelConfig, params.ID)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": invoice})
		}).
		POST("/invoices/:id/finalize", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			db := db.GetDb()
			var invoice models.Invoice
			if err := db.First(&invoice, params.ID).Error; err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "invoice not found"})
				return
			}
			if invoice.Status != types.INVOICE_DRAFT {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "only draft invoices can be finalized"})
				return
			}
			if err := db.Model(&invoice).Update("status", types.INVOICE_PENDING).Error; err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": invoice})
		}).
		GET("/payments", func(ctx *gin.Context) {
			var query struct {
				Status  string `form:"status"`
				GuestID uint   `form:"guest"`
				Page    int    `form:"page,default=1"`
			}
			if err := ctx.BindQuery(&query); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			db := db.GetDb()
			q := db.
				Model(&models.Payment{}).
				Preload("Guest").
				Order("payment_date desc")
			if query.Status != "" {
				q = q.Where("status = ?", query.Status)
			}
			if query.GuestID > 0 {
				q = q.Where("guest_id = ?", query.GuestID)
			}
			payments := make([]models.Payment, 0)
			if err := q.Scopes(utils.Paginate(query.Page)).Find(&payments).Error; err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": payments, "count": len(payments)})
		}).
		POST("/payments", func(ctx *gin.Context) {
			var body types.RecordPaymentRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			payment, err := common.RecordPayment(hotelConfig, staffId(ctx), &body)
			if err != nil {
				log.Printf("Error recording payment: %s\n", err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": payment})
		}).
		GET("/payments/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var payment models.Payment
			db := db.GetDb()
			err := db.
				Preload("Guest").
				Preload("Refunds").
				First(&payment, params.ID).
				Error
			if err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "payment not found"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": payment})
		}).
		POST("/refunds", func(ctx *gin.Context) {
			var body types.RecordRefundRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			refund, err := common.RecordRefund(staffId(ctx), &body)
			if err != nil {
				log.Printf("Error recording refund: %s\n", err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": refund})
		}).
		POST("/refunds/:id/status", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var body struct {
				NewStatus *types.RefundStatus `json:"new_status" binding:"required"`
			}
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			refund, err := common.TransitionRefund(staffId(ctx), params.ID, *body.NewStatus)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": refund})
		})
	return g
}
