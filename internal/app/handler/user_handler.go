package handler

import (
	"net/http"

	"seeds-backend/internal/app/ds"
	"seeds-backend/internal/app/dto"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// GetUsers lists every user, passwords included
// @Summary List users
// @Tags Users
// @Produce json
// @Success 200 {array} ds.User
// @Router /users [get]
func (h *Handler) GetUsers(ctx *gin.Context) {
	respondData(ctx, "list users", h.Store.ListUsers(ctx.Request.Context()))
}

// CreateUser inserts a user as sent
// @Summary Create user
// @Tags Users
// @Accept json
// @Produce json
// @Param request body dto.CreateUserRequest true "User"
// @Success 200 {object} dto.SuccessResponse
// @Router /users [post]
func (h *Handler) CreateUser(ctx *gin.Context) {
	var request dto.CreateUserRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		logrus.Warnf("create user: undecodable body: %v", err)
	}

	ignore(ctx, "create user", h.Store.InsertUsers(ctx.Request.Context(), ds.User{
		Username: request.Username,
		Password: request.Password,
		Role:     request.Role,
	}))
	ctx.JSON(http.StatusOK, successResponse)
}

// DeleteUser removes a user by id, existing or not
// @Summary Delete user
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} dto.SuccessResponse
// @Router /users/{id} [delete]
func (h *Handler) DeleteUser(ctx *gin.Context) {
	ignore(ctx, "delete user", h.Store.DeleteUser(ctx.Request.Context(), ctx.Param("id")))
	ctx.JSON(http.StatusOK, successResponse)
}
