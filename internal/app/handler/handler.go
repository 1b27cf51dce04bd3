package handler

import (
	"context"
	"net/http"
	"time"

	"seeds-backend/internal/app/ds"
	"seeds-backend/internal/app/dto"
	"seeds-backend/internal/app/middleware"
	"seeds-backend/internal/app/repository"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Store is the data store the handlers pass every request through to.
type Store interface {
	FindUserByCredentials(ctx context.Context, username, password string) repository.Result[*ds.User]
	ListUsers(ctx context.Context) repository.Result[[]ds.User]
	InsertUsers(ctx context.Context, users ...ds.User) repository.Result[[]ds.User]
	DeleteUser(ctx context.Context, id string) repository.Result[int64]

	ListClients(ctx context.Context) repository.Result[[]ds.Client]
	InsertClients(ctx context.Context, clients ...ds.Client) repository.Result[[]ds.Client]
	DeleteClient(ctx context.Context, id string) repository.Result[int64]

	ListLicenses(ctx context.Context) repository.Result[[]ds.License]
	InsertLicenses(ctx context.Context, licenses ...ds.License) repository.Result[[]ds.License]
	UpdateLicensePayment(ctx context.Context, id, status string) repository.Result[int64]
	SearchLicensesByClient(ctx context.Context, q string) repository.Result[[]ds.License]
}

// SeedStorage is the object store holding seed images.
type SeedStorage interface {
	Upload(ctx context.Context, name string, data []byte, contentType string) (string, error)
	PublicURL(path string) string
}

type Handler struct {
	Store Store
	// Seeds may be nil, uploads are then treated as failed.
	Seeds SeedStorage
	Now   func() time.Time
}

func NewHandler(store Store, seeds SeedStorage) *Handler {
	return &Handler{
		Store: store,
		Seeds: seeds,
		Now:   time.Now,
	}
}

var successResponse = dto.SuccessResponse{Success: true}

// ignore drops the error channel of a backend call. The caller still gets its
// normal response; the error only reaches the log.
func ignore[T any](c *gin.Context, op string, res repository.Result[T]) {
	if res.Error == nil {
		return
	}
	logrus.WithFields(logrus.Fields{
		"op":         op,
		"request_id": middleware.RequestID(c),
	}).WithError(res.Error).Warn("backend error ignored")
}

// respondData writes whatever data the backend produced with status 200, which
// is null when the call failed.
func respondData[T any](c *gin.Context, op string, res repository.Result[T]) {
	ignore(c, op, res)
	c.JSON(http.StatusOK, res.Data)
}
