package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elsur/driving-school-api/internal/dto"
	"github.com/elsur/driving-school-api/internal/service"
	appErrors "github.com/elsur/driving-school-api/pkg/errors"
	"github.com/elsur/driving-school-api/pkg/response"
)

type exportService interface {
	Generate(ctx context.Context, req dto.ExportStudentRequest) (*service.ExportResult, error)
}

// ExportHandler exposes enrollment PDF generation.
type ExportHandler struct {
	exports exportService
	metrics *service.MetricsService
}

// NewExportHandler constructs ExportHandler.
func NewExportHandler(exports exportService, metrics *service.MetricsService) *ExportHandler {
	return &ExportHandler{exports: exports, metrics: metrics}
}

// Export godoc
// @Summary Generate a filled enrollment PDF for one student record
// @Tags Export
// @Accept json
// @Produce application/pdf
// @Param payload body dto.ExportStudentRequest true "Student record"
// @Success 200
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /export [post]
func (h *ExportHandler) Export(c *gin.Context) {
	var req dto.ExportStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}

	result, err := h.exports.Generate(c.Request.Context(), req)
	if err != nil {
		h.metrics.ObserveExport(exportOutcome(err))
		response.Error(c, err)
		return
	}

	h.metrics.ObserveExport("success")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Data(http.StatusOK, "application/pdf", result.Content)
}

// bindError sorts decode failures: a body that parses but carries a
// wrong-typed field is a shape problem and names the field, anything
// else is malformed JSON.
func bindError(err error) *appErrors.Error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		details := map[string][]string{
			typeErr.Field: {fmt.Sprintf("must be of type %s", typeErr.Type)},
		}
		return appErrors.WithDetails(appErrors.ErrValidation, details)
	}
	return appErrors.Wrap(err, appErrors.ErrInvalidJSON.Code, appErrors.ErrInvalidJSON.Status, appErrors.ErrInvalidJSON.Message)
}

// exportOutcome separates caller mistakes from generation failures in
// the export counter.
func exportOutcome(err error) string {
	if appErrors.FromError(err).Status < http.StatusInternalServerError {
		return "invalid"
	}
	return "error"
}
