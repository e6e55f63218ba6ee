package handlers

import (
	"net/http"

	"remindly/services/reminder"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ShareHandler exposes the share-link issuer: per-reminder links and the
// permanent personal contact link, plus the anonymous token endpoints.
type ShareHandler struct {
	Service reminder.ReminderService
}

// NewShareHandler creates a ShareHandler.
func NewShareHandler(svc reminder.ReminderService) *ShareHandler {
	return &ShareHandler{Service: svc}
}

// GenerateShareLinkHandler handles POST /api/share/generate-link/:reminderId.
func (h *ShareHandler) GenerateShareLinkHandler(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	link, err := h.Service.IssueShareLink(userID, c.Param("reminderId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, link)
}

// ShareDetailsHandler handles GET /api/share/details/:shareToken. Public.
func (h *ShareHandler) ShareDetailsHandler(c *gin.Context) {
	details, err := h.Service.ShareDetails(c.Param("shareToken"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

// SubmitContactHandler handles POST /api/share/submit-contact/:shareToken. Public.
func (h *ShareHandler) SubmitContactHandler(c *gin.Context) {
	logger := getLogger(c)

	var sub reminder.ContactSubmission
	if err := c.ShouldBindJSON(&sub); err != nil {
		logger.Error("Invalid contact submission", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	rem, err := h.Service.SubmitContact(c.Param("shareToken"), sub)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":       "Contact information saved successfully!",
		"reminderTitle": rem.Title,
	})
}

// GeneratePersonalLinkHandler handles POST /api/share/generate-personal-link.
func (h *ShareHandler) GeneratePersonalLinkHandler(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	link, err := h.Service.IssuePersonalLink(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"personalContactLink": link.PersonalContactLink,
		"personalToken":       link.PersonalToken,
		"message":             "This is your permanent contact collection link",
	})
}

// PersonalDetailsHandler handles GET /api/share/personal-details/:personalToken. Public.
func (h *ShareHandler) PersonalDetailsHandler(c *gin.Context) {
	details, err := h.Service.PersonalDetails(c.Param("personalToken"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

// SubmitPersonalContactHandler handles POST /api/share/submit-personal-contact/:personalToken. Public.
func (h *ShareHandler) SubmitPersonalContactHandler(c *gin.Context) {
	logger := getLogger(c)

	var sub reminder.PersonalContactSubmission
	if err := c.ShouldBindJSON(&sub); err != nil {
		logger.Error("Invalid personal contact submission", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	rem, err := h.Service.SubmitPersonalContact(c.Param("personalToken"), sub)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":     "Contact information saved successfully!",
		"contactName": rem.Contact.Name,
	})
}
