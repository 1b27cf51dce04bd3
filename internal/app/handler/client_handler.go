package handler

import (
	"net/http"

	"seeds-backend/internal/app/ds"
	"seeds-backend/internal/app/dto"
	"seeds-backend/internal/app/repository"

	"github.com/gin-gonic/gin"
)

// GetClients lists every client
// @Summary List clients
// @Tags Clients
// @Produce json
// @Success 200 {array} ds.Client
// @Router /clients [get]
func (h *Handler) GetClients(ctx *gin.Context) {
	respondData(ctx, "list clients", h.Store.ListClients(ctx.Request.Context()))
}

// CreateClient inserts a client. This is the only write whose backend error
// reaches the caller.
// @Summary Create client
// @Tags Clients
// @Accept json
// @Produce json
// @Param request body dto.CreateClientRequest true "Client"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.BackendErrorResponse
// @Router /clients [post]
func (h *Handler) CreateClient(ctx *gin.Context) {
	var request dto.CreateClientRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.BackendErrorResponse{Error: repository.ToBackendError(err)})
		return
	}

	res := h.Store.InsertClients(ctx.Request.Context(), ds.Client{
		Name:  request.Name,
		Value: request.Value,
		Phone: request.Phone,
	})
	if res.Error != nil {
		ctx.JSON(http.StatusBadRequest, dto.BackendErrorResponse{Error: repository.ToBackendError(res.Error)})
		return
	}

	ctx.JSON(http.StatusOK, successResponse)
}

// DeleteClient removes a client by id, existing or not
// @Summary Delete client
// @Tags Clients
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {object} dto.SuccessResponse
// @Router /clients/{id} [delete]
func (h *Handler) DeleteClient(ctx *gin.Context) {
	ignore(ctx, "delete client", h.Store.DeleteClient(ctx.Request.Context(), ctx.Param("id")))
	ctx.JSON(http.StatusOK, successResponse)
}
