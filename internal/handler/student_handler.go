package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elsur/driving-school-api/internal/models"
	"github.com/elsur/driving-school-api/internal/service"
	"github.com/elsur/driving-school-api/pkg/response"
)

type rosterService interface {
	Students(ctx context.Context) ([]models.Student, error)
	ExportRoster(ctx context.Context, format string) (*service.RosterFile, error)
}

// StudentHandler exposes roster endpoints.
type StudentHandler struct {
	roster rosterService
}

// NewStudentHandler constructs StudentHandler.
func NewStudentHandler(roster rosterService) *StudentHandler {
	return &StudentHandler{roster: roster}
}

// List godoc
// @Summary Fetch the student roster
// @Tags Students
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /students [get]
func (h *StudentHandler) List(c *gin.Context) {
	students, err := h.roster.Students(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"students": students})
}

// Download godoc
// @Summary Download the roster as a csv or pdf table
// @Tags Students
// @Produce octet-stream
// @Param format query string false "csv or pdf" default(csv)
// @Success 200
// @Router /students/export [get]
func (h *StudentHandler) Download(c *gin.Context) {
	file, err := h.roster.ExportRoster(c.Request.Context(), c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Data(http.StatusOK, file.ContentType, file.Content)
}
