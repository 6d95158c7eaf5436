package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/geoportal/internal/assistant"
)

// @Summary Check user location
// @Description Find the nearest emergency zone and medical center for a user, record the check and raise a zone alert when inside a high-risk zone. Requires API key.
// @Tags Location
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param location body LocationCheckRequest true "Location check request"
// @Success 200 {object} LocationCheckResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /location/check [post]
func (h *Handler) checkLocation(c *gin.Context) {
	log := h.logger.WithField("method", "checkLocation")

	var input LocationCheckRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	report, err := h.geoportalService.CheckLocation(c.Request.Context(), input.UserID, input.ToUserLocation())
	if err != nil {
		respondError(c, log, err, "location check failed")
		return
	}

	c.JSON(http.StatusOK, LocationReportToResponse(report))
}

// @Summary Ask the map assistant
// @Description Rule-based answer to a free-text question about centers, emergencies, routes and coverage. Requires API key.
// @Tags Assistant
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param message body AssistantMessageRequest true "User message"
// @Success 200 {object} AssistantReplyResponse
// @Failure 400 {object} map[string]string "Empty or invalid message"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /assistant/messages [post]
func (h *Handler) assistantMessage(c *gin.Context) {
	log := h.logger.WithField("method", "assistantMessage")

	var input AssistantMessageRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	reply, err := h.assistant.Reply(input.Message)
	if errors.Is(err, assistant.ErrEmptyMessage) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is empty"})
		return
	}
	if err != nil {
		log.WithError(err).Error("Assistant failed to reply")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	log.WithField("rule", reply.Rule).Debug("Assistant replied")
	c.JSON(http.StatusOK, AssistantReplyResponse{Rule: reply.Rule, Reply: reply.Text})
}
