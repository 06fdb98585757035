package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shiftdesk/internal/dto"
	"shiftdesk/internal/middleware"
	"shiftdesk/internal/service"
)

type SchedulesHandler struct{ svc service.ScheduleService }

func NewSchedulesHandler(svc service.ScheduleService) *SchedulesHandler {
	return &SchedulesHandler{svc: svc}
}

// Create godoc
// @Summary Create a schedule assignment
// @Tags schedules
// @Accept json
// @Produce json
// @Param body body dto.CreateScheduleRequest true "Assignment"
// @Success 201 {object} dto.ScheduleResponse
// @Failure 409 {object} apierror.APIError "PTO conflict or duplicate assignment"
// @Router /api/schedules [post]
func (h *SchedulesHandler) Create(c *gin.Context) {
	var req dto.CreateScheduleRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), middleware.GetIdentity(c), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List returns the assignments the caller may see: admins see everything,
// employees only their own records.
func (h *SchedulesHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context(), middleware.GetIdentity(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SchedulesHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), middleware.GetIdentity(c), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SchedulesHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.UpdateScheduleRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), middleware.GetIdentity(c), id, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SchedulesHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), middleware.GetIdentity(c), id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
