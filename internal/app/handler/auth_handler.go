package handler

import (
	"net/http"

	"seeds-backend/internal/app/dto"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const invalidUserMessage = "Usuário inválido"

// Login checks the credentials against the users table
// @Summary Login
// @Description Compares user and password with the stored row and returns the user's role. Unknown user, wrong password and backend errors all give the same 401.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /login [post]
func (h *Handler) Login(ctx *gin.Context) {
	var request dto.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: invalidUserMessage})
		return
	}

	res := h.Store.FindUserByCredentials(ctx.Request.Context(), request.User, request.Password)
	ignore(ctx, "login", res)
	if res.Data == nil {
		logrus.Infof("login rejected for %q", request.User)
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: invalidUserMessage})
		return
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		User: res.Data.Username,
		Role: res.Data.Role,
	})
}
