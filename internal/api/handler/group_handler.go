package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"educrm/backend/internal/dto"
	"educrm/backend/internal/service"
	"educrm/backend/pkg/response"
)

// GroupHandler serves the group module endpoints.
type GroupHandler struct {
	groupSvc service.GroupService
}

// NewGroupHandler creates a GroupHandler.
func NewGroupHandler(groupSvc service.GroupService) *GroupHandler {
	return &GroupHandler{groupSvc: groupSvc}
}

// ListGroups handles GET /api/v1/groups
func (h *GroupHandler) ListGroups(c *gin.Context) {
	groups, err := h.groupSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": groups})
}

// GetGroup handles GET /api/v1/groups/:id
func (h *GroupHandler) GetGroup(c *gin.Context) {
	id, ok := MustGetID(c)
	if !ok {
		return
	}

	group, err := h.groupSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleGroupError(c, err)
		return
	}

	response.OK(c, group)
}

// CreateGroup handles POST /api/v1/groups
func (h *GroupHandler) CreateGroup(c *gin.Context) {
	var req dto.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	group, err := h.groupSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleGroupError(c, err)
		return
	}

	response.Created(c, group)
}

// UpdateGroup handles PUT /api/v1/groups/:id
func (h *GroupHandler) UpdateGroup(c *gin.Context) {
	id, ok := MustGetID(c)
	if !ok {
		return
	}

	var req dto.UpdateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	group, err := h.groupSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleGroupError(c, err)
		return
	}

	response.OK(c, group)
}

// DeleteGroup handles DELETE /api/v1/groups/:id
func (h *GroupHandler) DeleteGroup(c *gin.Context) {
	id, ok := MustGetID(c)
	if !ok {
		return
	}

	if err := h.groupSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleGroupError(c, err)
		return
	}

	response.OK(c, nil)
}

// GetGroupCalendar handles GET /api/v1/groups/:id/calendar
// Returns the group's weekly schedule as a text/calendar feed.
func (h *GroupHandler) GetGroupCalendar(c *gin.Context) {
	id, ok := MustGetID(c)
	if !ok {
		return
	}

	ics, err := h.groupSvc.Calendar(c.Request.Context(), id)
	if err != nil {
		h.handleGroupError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="group.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(ics))
}

// handleGroupError maps group business errors to API replies.
func (h *GroupHandler) handleGroupError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrGroupNotFound):
		response.NotFound(c, 11001, "group not found")
	case errors.Is(err, service.ErrGroupNameExists):
		response.BadRequest(c, 11002, "group name already exists")
	case errors.Is(err, service.ErrGroupNoSchedule):
		response.BadRequest(c, 11003, "group has no parseable schedule")
	default:
		response.InternalError(c)
	}
}
