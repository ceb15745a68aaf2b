package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/usher_checkin/internal/config"
	"github.com/shenikar/usher_checkin/internal/models"
	"github.com/shenikar/usher_checkin/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	checkInService  service.CheckInService
	advisoryService service.AdvisoryService
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(checkInService service.CheckInService, advisoryService service.AdvisoryService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		checkInService:  checkInService,
		advisoryService: advisoryService,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

// bind разбирает и валидирует тело запроса; при ошибке ответ уже отправлен
func (h *Handler) bind(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// @Summary List venues
// @Description Get the configured venues. Requires API key.
// @Tags Venues
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} VenueResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /venues [get]
func (h *Handler) listVenues(c *gin.Context) {
	c.JSON(http.StatusOK, ModelsToVenueResponses(h.checkInService.Venues()))
}

// @Summary Find the nearest venue
// @Description Resolve the nearest venue for a coordinate pair and whether it lies inside the perimeter. Requires API key.
// @Tags Venues
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param position body NearestVenueRequest true "Coordinates"
// @Success 200 {object} NearestVenueResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /venues/nearest [post]
func (h *Handler) nearestVenue(c *gin.Context) {
	var input NearestVenueRequest
	log := h.logger.WithField("method", "nearestVenue")

	if !h.bind(c, log, &input) {
		return
	}

	res := h.checkInService.NearestVenue(*input.Latitude, *input.Longitude)
	c.JSON(http.StatusOK, ModelToNearestVenueResponse(res))
}

// @Summary Check in
// @Description Record an attendance check-in. The client reports either coordinates or the geolocation error it got. Requires API key.
// @Tags CheckIns
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param checkin body CheckInRequest true "Check-in request"
// @Success 201 {object} CheckInResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 422 {object} CheckInFailureResponse "Outside perimeter or position unavailable"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /checkins [post]
func (h *Handler) createCheckIn(c *gin.Context) {
	var input CheckInRequest
	log := h.logger.WithField("method", "createCheckIn")

	if !h.bind(c, log, &input) {
		return
	}

	src, err := input.PositionSource()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	check, err := h.checkInService.CheckIn(c.Request.Context(), input.UserID, src)
	if err != nil {
		var perr *models.PositionError
		switch {
		case errors.As(err, &perr):
			c.JSON(http.StatusUnprocessableEntity, CheckInFailureResponse{
				Error:  "position unavailable",
				Notice: perr.Message(),
			})
		case errors.Is(err, service.ErrOutsidePerimeter) && check != nil:
			c.JSON(http.StatusUnprocessableEntity, CheckInFailureResponse{
				Error:   "outside venue perimeter",
				Notice:  "You are " + strconv.Itoa(check.DistanceMeters) + "m away from " + check.VenueName + ". Move closer to check in.",
				CheckIn: ModelToCheckInResponse(check),
			})
		default:
			log.WithError(err).Error("Failed to check in")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, ModelToCheckInResponse(check))
}

// @Summary Get a list of check-ins
// @Description Get a paginated list of check-in attempts, newest first. Requires API key.
// @Tags CheckIns
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Success 200 {array} CheckInResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /checkins [get]
func (h *Handler) listCheckIns(c *gin.Context) {
	log := h.logger.WithField("method", "listCheckIns")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	checks, err := h.checkInService.ListCheckIns(c.Request.Context(), page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list check-ins from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToCheckInResponses(checks))
}

// @Summary Get check-in statistics
// @Description Get the number of distinct users checked in within the stats window. Requires API key.
// @Tags CheckIns
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /checkins/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	userCount, err := h.checkInService.GetStats(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get stats from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, StatsResponse{UserCount: userCount})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
