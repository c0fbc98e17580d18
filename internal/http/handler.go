package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dztransit/logistics-api/internal/service"
)

type Handler struct {
	users     *service.UserService
	clients   *service.ClientService
	drivers   *service.DriverService
	fleet     *service.FleetService
	rates     *service.RateService
	shipments *service.ShipmentService
	invoices  *service.InvoiceService
	claims    *service.ClaimService
	log       zerolog.Logger
}

func NewHandler(
	users *service.UserService,
	clients *service.ClientService,
	drivers *service.DriverService,
	fleet *service.FleetService,
	rates *service.RateService,
	shipments *service.ShipmentService,
	invoices *service.InvoiceService,
	claims *service.ClaimService,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		users:     users,
		clients:   clients,
		drivers:   drivers,
		fleet:     fleet,
		rates:     rates,
		shipments: shipments,
		invoices:  invoices,
		claims:    claims,
		log:       log,
	}
}

func (h *Handler) Register(router *gin.Engine, authMiddleware gin.HandlerFunc) {
	// Public surface: login, parcel tracking, the claim form.
	router.POST("/auth/login", h.login)
	router.GET("/track/:trackingNumber", h.trackShipment)
	router.POST("/claims/public", h.submitPublicClaim)

	protected := router.Group("/")
	protected.Use(authMiddleware)

	h.registerAuthRoutes(protected)
	h.registerUserRoutes(protected)
	h.registerClientRoutes(protected)
	h.registerDriverRoutes(protected)
	h.registerFleetRoutes(protected)
	h.registerRateRoutes(protected)
	h.registerShipmentRoutes(protected)
	h.registerInvoiceRoutes(protected)
	h.registerClaimRoutes(protected)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNoRateCard):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		h.log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSpace(c.Param(name)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return uuid.Nil, false
	}
	return id, true
}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, service.ErrInvalidInput
	}
	layouts := []string{
		time.RFC3339,
		"2006-01-02",
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, service.ErrInvalidInput
}
