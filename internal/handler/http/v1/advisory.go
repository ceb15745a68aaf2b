package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/usher_checkin/internal/advisory"
	"github.com/shenikar/usher_checkin/internal/models"
	"github.com/shenikar/usher_checkin/internal/service"
	"github.com/sirupsen/logrus"
)

// conflictErrors - действия, недопустимые в текущем состоянии предупреждения
var conflictErrors = []error{
	advisory.ErrNotShown,
	advisory.ErrForceDismissible,
	advisory.ErrNotDismissible,
	advisory.ErrNotStarted,
}

func (h *Handler) advisoryError(c *gin.Context, log *logrus.Entry, err error) {
	if errors.Is(err, service.ErrSessionNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "advisory session not found"})
		return
	}
	for _, target := range conflictErrors {
		if errors.Is(err, target) {
			c.JSON(http.StatusConflict, gin.H{"error": target.Error()})
			return
		}
	}
	log.WithError(err).Error("Advisory operation failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

func (h *Handler) sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session ID"})
		return uuid.Nil, false
	}
	return id, true
}

// @Summary Start an advisory session
// @Description Run the entry check once for a fresh browser session: location mismatch and device mismatch. Requires API key.
// @Tags Advisory
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param session body StartSessionRequest true "Session start request"
// @Success 201 {object} AdvisorySessionResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /advisory/sessions [post]
func (h *Handler) startSession(c *gin.Context) {
	var input StartSessionRequest
	log := h.logger.WithField("method", "startSession")

	if !h.bind(c, log, &input) {
		return
	}

	// Без координат входная проверка просто не предупреждает
	src, _ := input.PositionSource()

	snap, err := h.advisoryService.StartSession(c.Request.Context(), input.UserID, input.ClientKey, input.ExpectedDeviceID, src)
	if err != nil {
		h.advisoryError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToAdvisorySessionResponse(snap))
}

// @Summary Get an advisory session
// @Description Get the current state of both warnings. Requires API key.
// @Tags Advisory
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Success 200 {object} AdvisorySessionResponse
// @Failure 400 {object} map[string]string "Invalid session ID"
// @Failure 404 {object} map[string]string "Session not found"
// @Router /advisory/sessions/{id} [get]
func (h *Handler) getSession(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getSession").WithField("id", id)

	snap, err := h.advisoryService.GetSession(c.Request.Context(), id)
	if err != nil {
		h.advisoryError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToAdvisorySessionResponse(snap))
}

// @Summary End an advisory session
// @Description Drop the session and its counters, as a full page reload does. Requires API key.
// @Tags Advisory
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid session ID"
// @Failure 404 {object} map[string]string "Session not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /advisory/sessions/{id} [delete]
func (h *Handler) endSession(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "endSession").WithField("id", id)

	if err := h.advisoryService.EndSession(c.Request.Context(), id); err != nil {
		h.advisoryError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Re-check location
// @Description Re-query the position after the user acknowledged the location warning. A failed or unavailable position consumes an attempt. Requires API key.
// @Tags Advisory
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Param position body RecheckLocationRequest true "Position report"
// @Success 200 {object} AdvisorySessionResponse
// @Failure 400 {object} map[string]string "Invalid session ID or request body"
// @Failure 404 {object} map[string]string "Session not found"
// @Failure 409 {object} map[string]string "Warning is not actionable"
// @Router /advisory/sessions/{id}/location/recheck [post]
func (h *Handler) recheckLocation(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "recheckLocation").WithField("id", id)

	var input RecheckLocationRequest
	if !h.bind(c, log, &input) {
		return
	}
	src, err := input.PositionSource()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snap, err := h.advisoryService.RecheckLocation(c.Request.Context(), id, src)
	if err != nil {
		h.advisoryError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToAdvisorySessionResponse(snap))
}

// @Summary Acknowledge the device warning
// @Description Count one acknowledgement of the device mismatch warning. The warning hides after the last attempt. Requires API key.
// @Tags Advisory
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Success 200 {object} AdvisorySessionResponse
// @Failure 400 {object} map[string]string "Invalid session ID"
// @Failure 404 {object} map[string]string "Session not found"
// @Failure 409 {object} map[string]string "Warning is not actionable"
// @Router /advisory/sessions/{id}/device/acknowledge [post]
func (h *Handler) acknowledgeDevice(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "acknowledgeDevice").WithField("id", id)

	snap, err := h.advisoryService.AcknowledgeDevice(c.Request.Context(), id)
	if err != nil {
		h.advisoryError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToAdvisorySessionResponse(snap))
}

// @Summary Dismiss a warning
// @Description Dismiss a warning whose attempts are exhausted. Requires API key.
// @Tags Advisory
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Success 200 {object} AdvisorySessionResponse
// @Failure 400 {object} map[string]string "Invalid session ID"
// @Failure 404 {object} map[string]string "Session not found"
// @Failure 409 {object} map[string]string "Warning is not dismissible"
// @Router /advisory/sessions/{id}/location/dismiss [post]
// @Router /advisory/sessions/{id}/device/dismiss [post]
func (h *Handler) dismiss(kind models.AdvisoryKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := h.sessionID(c)
		if !ok {
			return
		}
		log := h.logger.WithFields(logrus.Fields{"method": "dismiss", "id": id, "kind": kind})

		snap, err := h.advisoryService.Dismiss(c.Request.Context(), id, kind)
		if err != nil {
			h.advisoryError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, ModelToAdvisorySessionResponse(snap))
	}
}

// @Summary Get the device id
// @Description Get the device id of a client, creating it on first use. Requires API key.
// @Tags Devices
// @Produce json
// @Security ApiKeyAuth
// @Param client_key path string true "Client key"
// @Success 200 {object} DeviceResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /devices/{client_key} [get]
func (h *Handler) getDevice(c *gin.Context) {
	clientKey := c.Param("client_key")
	log := h.logger.WithField("method", "getDevice").WithField("client_key", clientKey)

	deviceID, err := h.advisoryService.DeviceID(c.Request.Context(), clientKey)
	if err != nil {
		log.WithError(err).Error("Failed to get device id from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, DeviceResponse{ClientKey: clientKey, DeviceID: deviceID})
}

// @Summary Reset the device id
// @Description Administrator reset of a client's device id. A new id is created on next use. Requires API key.
// @Tags Devices
// @Security ApiKeyAuth
// @Param client_key path string true "Client key"
// @Success 204 "No Content"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /devices/{client_key} [delete]
func (h *Handler) resetDevice(c *gin.Context) {
	clientKey := c.Param("client_key")
	log := h.logger.WithField("method", "resetDevice").WithField("client_key", clientKey)

	if err := h.advisoryService.ResetDevice(c.Request.Context(), clientKey); err != nil {
		log.WithError(err).Error("Failed to reset device id in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reset device id"})
		return
	}
	c.Status(http.StatusNoContent)
}
