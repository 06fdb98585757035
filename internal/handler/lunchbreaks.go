package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shiftdesk/internal/dto"
	"shiftdesk/internal/middleware"
	"shiftdesk/internal/service"
)

type LunchBreaksHandler struct{ svc service.LunchBreakService }

func NewLunchBreaksHandler(svc service.LunchBreakService) *LunchBreaksHandler {
	return &LunchBreaksHandler{svc: svc}
}

func (h *LunchBreaksHandler) Create(c *gin.Context) {
	var req dto.CreateLunchBreakRequest
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

func (h *LunchBreaksHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context(), middleware.GetIdentity(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *LunchBreaksHandler) Get(c *gin.Context) {
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

func (h *LunchBreaksHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.UpdateLunchBreakRequest
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

func (h *LunchBreaksHandler) Delete(c *gin.Context) {
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
