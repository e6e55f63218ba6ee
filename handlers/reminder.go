package handlers

import (
	"net/http"

	"remindly/services/reminder"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReminderHandler exposes owner-facing reminder CRUD endpoints.
type ReminderHandler struct {
	Service reminder.ReminderService
}

// NewReminderHandler creates a ReminderHandler.
func NewReminderHandler(svc reminder.ReminderService) *ReminderHandler {
	return &ReminderHandler{Service: svc}
}

// ListRemindersHandler handles GET /api/reminders.
func (h *ReminderHandler) ListRemindersHandler(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	reminders, err := h.Service.ListReminders(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reminders)
}

// CreateReminderHandler handles POST /api/reminders.
func (h *ReminderHandler) CreateReminderHandler(c *gin.Context) {
	logger := getLogger(c)
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req reminder.CreateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid create reminder request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	rem, err := h.Service.CreateReminder(userID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rem)
}

// GetReminderHandler handles GET /api/reminders/:id.
func (h *ReminderHandler) GetReminderHandler(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	rem, err := h.Service.GetReminder(userID, c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rem)
}

// UpdateReminderHandler handles PUT /api/reminders/:id.
func (h *ReminderHandler) UpdateReminderHandler(c *gin.Context) {
	logger := getLogger(c)
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req reminder.UpdateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid update reminder request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	rem, err := h.Service.UpdateReminder(userID, c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rem)
}

// DeleteReminderHandler handles DELETE /api/reminders/:id.
func (h *ReminderHandler) DeleteReminderHandler(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	if err := h.Service.DeleteReminder(userID, c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reminder deleted successfully"})
}
