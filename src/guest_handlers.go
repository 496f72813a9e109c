package main

import (
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

func guestHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/guests", func(ctx *gin.Context) {
			var query struct {
				Search string `form:"search"`
				VIP    *bool  `form:"vip"`
				Page   int    `form:"page,default=1"`
			}
			if err := ctx.BindQuery(&query); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			db := db.GetDb()
			q := db.Model(&models.Guest{}).Order("last_name asc, first_name asc")
			if query.Search != "" {
				term := fmt.Sprintf("%%%s%%", query.Search)
				q = q.Where("first_name ILIKE ? OR last_name ILIKE ? OR email ILIKE ? OR phone ILIKE ?", term, term, term, term)
			}
			if query.VIP != nil {
				q = q.Where("is_vip = ?", *query.VIP)
			}
			guests := make([]models.Guest, 0)
			if err := q.Scopes(utils.Paginate(query.Page)).Find(&guests).Error; err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": guests, "count": len(guests)})
		}).
		POST("/guests", func(ctx *gin.Context) {
			var body types.CreateGuestRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			guest := models.Guest{
				Title:                  body.Title,
				FirstName:              body.FirstName,
				LastName:               body.LastName,
				MiddleName:             body.MiddleName,
				Email:                  body.Email,
				Phone:                  body.Phone,
				AlternatePhone:         body.AlternatePhone,
				Gender:                 body.Gender,
				Nationality:            body.Nationality,
				AddressLine1:           body.AddressLine1,
				AddressLine2:           body.AddressLine2,
				City:                   body.City,
				StateProvince:          body.StateProvince,
				PostalCode:             body.PostalCode,
				Country:                body.Country,
				IDType:                 body.IDType,
				IDNumber:               body.IDNumber,
				PreferredRoomType:      body.PreferredRoomType,
				DietaryRestrictions:    body.DietaryRestrictions,
				SpecialRequests:        body.SpecialRequests,
				EmergencyContactName:   body.EmergencyContactName,
				EmergencyContactPhone:  body.EmergencyContactPhone,
				MarketingConsent:       body.MarketingConsent,
				NewsletterSubscription: body.NewsletterSubscribed,
				IsVIP:                  body.IsVIP,
				Notes:                  body.Notes,
			}
			if body.DateOfBirth != "" {
				dob, err := time.Parse(config.DATE_PARSE_FORMAT, body.DateOfBirth)
				if err != nil {
					ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
					return
				}
				guest.DateOfBirth = &dob
			}
			if body.IDExpiryDate != "" {
				exp, err := time.Parse(config.DATE_PARSE_FORMAT, body.IDExpiryDate)
				if err != nil {
					ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
					return
				}
				guest.IDExpiryDate = &exp
			}
			db := db.GetDb()
			if err := db.Create(&guest).Error; err != nil {
				log.Printf("Error creating guest: %s\n", err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": guest})
		}).
		GET("/guests/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var guest models.Guest
			db := db.GetDb()
			err := db.
				Preload("Documents").
				First(&guest, params.ID).
				Error
			if err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "guest not found"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": guest})
		}).
		PUT("/guests/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var body types.CreateGuestRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var guest models.Guest
			db := db.GetDb()
			if err := db.First(&guest, params.ID).Error; err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "guest not found"})
				return
			}
			guest.Title = body.Title
			guest.FirstName = body.FirstName
			guest.LastName = body.LastName
			guest.MiddleName = body.MiddleName
			guest.Email = body.Email
			guest.Phone = body.Phone
			guest.AlternatePhone = body.AlternatePhone
			guest.Gender = body.Gender
			guest.Nationality = body.Nationality
			guest.AddressLine1 = body.AddressLine1
			guest.AddressLine2 = body.AddressLine2
			guest.City = body.City
			guest.StateProvince = body.StateProvince
			guest.PostalCode = body.PostalCode
			guest.Country = body.Country
			guest.IDType = body.IDType
			guest.IDNumber = body.IDNumber
			guest.PreferredRoomType = body.PreferredRoomType
			guest.DietaryRestrictions = body.DietaryRestrictions
			guest.SpecialRequests = body.SpecialRequests
			guest.EmergencyContactName = body.EmergencyContactName
			guest.EmergencyContactPhone = body.EmergencyContactPhone
			guest.MarketingConsent = body.MarketingConsent
			guest.NewsletterSubscription = body.NewsletterSubscribed
			guest.IsVIP = body.IsVIP
			guest.Notes = body.Notes
			if err := db.Save(&guest).Error; err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": guest})
		}).
		GET("/guests/:id/stats", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			stats, err := common.GetGuestStats(params.ID)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": stats})
		}).
		POST("/guests/:id/documents", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var body types.CreateGuestDocumentRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			doc := models.GuestDocument{
				GuestID:          params.ID,
				DocumentType:     body.DocumentType,
				DocumentNumber:   body.DocumentNumber,
				IssuingAuthority: body.IssuingAuthority,
				Notes:            body.Notes,
			}
			if body.IssueDate != "" {
				issued, err := time.Parse(config.DATE_PARSE_FORMAT, body.IssueDate)
				if err != nil {
					ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
					return
				}
				doc.IssueDate = &issued
			}
			if body.ExpiryDate != "" {
				expires, err := time.Parse(config.DATE_PARSE_FORMAT, body.ExpiryDate)
				if err != nil {
					ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
					return
				}
				doc.ExpiryDate = &expires
			}
			db := db.GetDb()
			var count int64
			if err := db.Model(&models.Guest{}).Where("id = ?", params.ID).Count(&count).Error; err != nil || count == 0 {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "guest not found"})
				return
			}
			if err := db.Create(&doc).Error; err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": doc})
		})
	return g
}
