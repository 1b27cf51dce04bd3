package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes registers the REST routes. None of them requires
// authentication.
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.POST("/login", h.Login)

	router.GET("/clients", h.GetClients)
	router.POST("/clients", h.CreateClient)
	router.DELETE("/clients/:id", h.DeleteClient)

	router.GET("/licenses", h.GetLicenses)
	router.POST("/licenses", h.CreateLicense)
	router.POST("/payment", h.UpdatePayment)
	router.GET("/search", h.SearchLicenses)

	router.GET("/users", h.GetUsers)
	router.POST("/users", h.CreateUser)
	router.DELETE("/users/:id", h.DeleteUser)

	router.GET("/ping", h.Ping)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// Ping reports that the process is up
// @Summary Liveness check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /ping [get]
func (h *Handler) Ping(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "pong"})
}
