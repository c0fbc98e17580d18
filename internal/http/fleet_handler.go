package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dztransit/logistics-api/internal/auth"
	"github.com/dztransit/logistics-api/internal/http/middleware"
	"github.com/dztransit/logistics-api/internal/model"
	"github.com/dztransit/logistics-api/internal/service"
)

func (h *Handler) registerFleetRoutes(g *gin.RouterGroup) {
	vehicleRead := middleware.Require(auth.ActionRead, auth.ResourceVehicles)
	vehicleWrite := middleware.Require(auth.ActionWrite, auth.ResourceVehicles)
	vehicleDelete := middleware.Require(auth.ActionDelete, auth.ResourceVehicles)

	g.GET("/vehicles", vehicleRead, h.listVehicles)
	g.GET("/vehicles/:id", vehicleRead, h.getVehicle)
	g.POST("/vehicles", vehicleWrite, h.createVehicle)
	g.PUT("/vehicles/:id", vehicleWrite, h.updateVehicle)
	g.DELETE("/vehicles/:id", vehicleDelete, h.deleteVehicle)
	g.POST("/vehicles/refresh-status", vehicleWrite, h.refreshVehicleStatuses)

	tourRead := middleware.Require(auth.ActionRead, auth.ResourceTours)
	tourWrite := middleware.Require(auth.ActionWrite, auth.ResourceTours)
	tourDelete := middleware.Require(auth.ActionDelete, auth.ResourceTours)

	g.GET("/tours", tourRead, h.listTours)
	g.GET("/tours/:id", tourRead, h.getTour)
	g.POST("/tours", tourWrite, h.createTour)
	g.PUT("/tours/:id", tourWrite, h.updateTour)
	g.DELETE("/tours/:id", tourDelete, h.deleteTour)
}

type createVehicleRequest struct {
	LicensePlate string          `json:"license_plate" binding:"required"`
	VehicleType  string          `json:"vehicle_type" binding:"required"`
	Capacity     decimal.Decimal `json:"capacity" binding:"required"`
}

func (h *Handler) createVehicle(c *gin.Context) {
	var req createVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vehicle, err := h.fleet.CreateVehicle(c.Request.Context(), service.CreateVehicleInput{
		LicensePlate: req.LicensePlate,
		VehicleType:  req.VehicleType,
		Capacity:     req.Capacity,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, vehicle)
}

type updateVehicleRequest struct {
	LicensePlate *string          `json:"license_plate"`
	VehicleType  *string          `json:"vehicle_type"`
	Capacity     *decimal.Decimal `json:"capacity"`
	Status       *string          `json:"status"`
}

func (h *Handler) updateVehicle(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req updateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := service.UpdateVehicleInput{
		LicensePlate: req.LicensePlate,
		VehicleType:  req.VehicleType,
		Capacity:     req.Capacity,
	}
	if req.Status != nil {
		status := model.VehicleStatus(strings.ToUpper(*req.Status))
		input.Status = &status
	}

	vehicle, err := h.fleet.UpdateVehicle(c.Request.Context(), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, vehicle)
}

func (h *Handler) getVehicle(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	vehicle, err := h.fleet.GetVehicle(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, vehicle)
}

func (h *Handler) listVehicles(c *gin.Context) {
	vehicles, err := h.fleet.ListVehicles(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

func (h *Handler) deleteVehicle(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.fleet.DeleteVehicle(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) refreshVehicleStatuses(c *gin.Context) {
	updated, err := h.fleet.RefreshVehicleStatuses(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": updated})
}

type tourRequest struct {
	DriverID    string   `json:"driver_id" binding:"required"`
	VehicleID   string   `json:"vehicle_id" binding:"required"`
	Date        string   `json:"date" binding:"required"`
	ShipmentIDs []string `json:"shipment_ids"`
}

func (req tourRequest) toInput(c *gin.Context) (service.TourInput, bool) {
	driverID, err := uuid.Parse(strings.TrimSpace(req.DriverID))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid driver_id"})
		return service.TourInput{}, false
	}
	vehicleID, err := uuid.Parse(strings.TrimSpace(req.VehicleID))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vehicle_id"})
		return service.TourInput{}, false
	}
	date, err := parseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return service.TourInput{}, false
	}

	shipmentIDs := make([]uuid.UUID, 0, len(req.ShipmentIDs))
	for _, raw := range req.ShipmentIDs {
		id, err := uuid.Parse(strings.TrimSpace(raw))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid shipment id " + raw})
			return service.TourInput{}, false
		}
		shipmentIDs = append(shipmentIDs, id)
	}

	return service.TourInput{
		DriverID:    driverID,
		VehicleID:   vehicleID,
		Date:        date,
		ShipmentIDs: shipmentIDs,
	}, true
}

func (h *Handler) createTour(c *gin.Context) {
	var req tourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input, ok := req.toInput(c)
	if !ok {
		return
	}

	tour, err := h.fleet.CreateTour(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tour)
}

func (h *Handler) updateTour(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req tourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input, ok := req.toInput(c)
	if !ok {
		return
	}

	tour, err := h.fleet.UpdateTour(c.Request.Context(), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, tour)
}

func (h *Handler) getTour(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	tour, err := h.fleet.GetTour(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, tour)
}

func (h *Handler) listTours(c *gin.Context) {
	tours, err := h.fleet.ListTours(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, tours)
}

func (h *Handler) deleteTour(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.fleet.DeleteTour(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
