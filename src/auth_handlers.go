package main

import (
	"log"
	"net/http"

	"hms/src/db"
	"hms/src/models"
	"hms/src/types"
	"hms/src/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func staffAuthRoutes(g *gin.Engine) *gin.RouterGroup {
	apiv1 := apiv1Group(g)
	auth := apiv1.Group("/auth")
	auth.
		POST("/register", func(ctx *gin.Context) {
			var body struct {
				Name     string `json:"name" binding:"required"`
				Email    string `json:"email" binding:"required,email"`
				Password string `json:"password" binding:"required,min=8"`
				Role     string `json:"role,omitempty"`
			}
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
			if err != nil {
				log.Printf("Error hashing password: %s\n", err.Error())
				ctx.Status(http.StatusInternalServerError)
				return
			}
			role := body.Role
			if role == "" {
				role = "frontdesk"
			}
			user := models.User{
				Name:         body.Name,
				Email:        body.Email,
				PasswordHash: string(hash),
				Role:         role,
			}
			db := db.GetDb()
			if err := db.Create(&user).Error; err != nil {
				log.Printf("Error creating user: %s\n", err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "could not create account"})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": user})
		}).
		POST("/login", func(ctx *gin.Context) {
			var body types.LoginRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			db := db.GetDb()
			var user models.User
			if err := db.Where(&models.User{Email: body.Email}).First(&user).Error; err != nil {
				ctx.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
				return
			}
			if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(body.Password)); err != nil {
				ctx.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
				return
			}
			token, err := utils.GenerateJWT(user.Email, user.ID, user.Role)
			if err != nil {
				log.Printf("Error generating token: %s\n", err.Error())
				ctx.Status(http.StatusInternalServerError)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"token": token, "user": user})
		})
	return apiv1
}
