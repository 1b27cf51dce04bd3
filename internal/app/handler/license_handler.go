package handler

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"seeds-backend/internal/app/ds"
	"seeds-backend/internal/app/dto"
	"seeds-backend/internal/app/middleware"
	"seeds-backend/internal/app/repository"
	"seeds-backend/internal/app/storage"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const seedImageField = "image"

// GetLicenses lists every license
// @Summary List licenses
// @Tags Licenses
// @Produce json
// @Success 200 {array} ds.License
// @Router /licenses [get]
func (h *Handler) GetLicenses(ctx *gin.Context) {
	respondData(ctx, "list licenses", h.Store.ListLicenses(ctx.Request.Context()))
}

// CreateLicense uploads the optional seed image and then inserts the license.
// The two calls are independent: a failed upload leaves image null, a failed
// insert leaves the uploaded object orphaned. The response is always success.
// @Summary Create license
// @Tags Licenses
// @Accept multipart/form-data
// @Produce json
// @Param client formData string false "Client name"
// @Param seed formData string false "Seed"
// @Param license formData string false "License key"
// @Param value formData number false "Value"
// @Param image formData file false "Seed image"
// @Success 200 {object} dto.SuccessResponse
// @Router /licenses [post]
func (h *Handler) CreateLicense(ctx *gin.Context) {
	var form dto.CreateLicenseForm
	if err := ctx.ShouldBind(&form); err != nil {
		logrus.Warnf("create license: undecodable form: %v", err)
	}

	image := h.uploadSeedImage(ctx)

	var res repository.Result[[]ds.License]
	value, err := parseValue(form.Value)
	if err != nil {
		res.Error = err
	} else {
		res = h.Store.InsertLicenses(ctx.Request.Context(), ds.License{
			Client:    form.Client,
			Seed:      form.Seed,
			License:   form.License,
			Value:     value,
			Image:     image,
			CreatedAt: h.Now().UTC(),
		})
	}
	ignore(ctx, "create license", res)

	ctx.JSON(http.StatusOK, successResponse)
}

// UpdatePayment sets the payment status of a license, existing or not
// @Summary Update payment status
// @Tags Licenses
// @Accept json
// @Produce json
// @Param request body dto.PaymentRequest true "License id and status"
// @Success 200 {object} dto.SuccessResponse
// @Router /payment [post]
func (h *Handler) UpdatePayment(ctx *gin.Context) {
	var request dto.PaymentRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		logrus.Warnf("update payment: undecodable body: %v", err)
	}

	ignore(ctx, "update payment", h.Store.UpdateLicensePayment(ctx.Request.Context(), string(request.ID), request.Status))
	ctx.JSON(http.StatusOK, successResponse)
}

// SearchLicenses finds licenses by client name
// @Summary Search licenses by client
// @Description Case-insensitive substring match on the client field. An empty q returns every license.
// @Tags Licenses
// @Produce json
// @Param q query string false "Part of the client name"
// @Success 200 {array} ds.License
// @Router /search [get]
func (h *Handler) SearchLicenses(ctx *gin.Context) {
	respondData(ctx, "search licenses", h.Store.SearchLicensesByClient(ctx.Request.Context(), ctx.Query("q")))
}

// uploadSeedImage stores the "image" file part, if any, and returns its public
// URL. Every failure is logged and reported as nil.
func (h *Handler) uploadSeedImage(ctx *gin.Context) *string {
	file, err := ctx.FormFile(seedImageField)
	if err != nil {
		return nil
	}

	log := logrus.WithField("request_id", middleware.RequestID(ctx))

	data, err := readFormFile(file)
	if err != nil {
		log.Warnf("failed to read seed image: %v", err)
		return nil
	}

	if h.Seeds == nil {
		log.Warn("seed storage is not configured, image dropped")
		return nil
	}

	path, err := h.Seeds.Upload(ctx.Request.Context(), storage.SeedObjectName(h.Now()), data, storage.SeedContentType)
	if err != nil {
		log.Warnf("seed image upload failed: %v", err)
		return nil
	}

	url := h.Seeds.PublicURL(path)
	return &url
}

func readFormFile(file *multipart.FileHeader) ([]byte, error) {
	f, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}

// parseValue reads the multipart value field. An empty field stores null.
func parseValue(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid value %q: %w", s, err)
	}
	return &v, nil
}
