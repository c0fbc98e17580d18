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

const (
	pdfContentType  = "application/pdf"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

func (h *Handler) registerShipmentRoutes(g *gin.RouterGroup) {
	read := middleware.Require(auth.ActionRead, auth.ResourceShipments)
	write := middleware.Require(auth.ActionWrite, auth.ResourceShipments)
	updateStatus := middleware.Require(auth.ActionUpdateStatus, auth.ResourceShipments)
	remove := middleware.Require(auth.ActionDelete, auth.ResourceShipments)

	g.GET("/shipments", read, h.listShipments)
	g.GET("/shipments/:id", read, h.getShipment)
	g.POST("/shipments", write, h.createShipment)
	g.PUT("/shipments/:id", write, h.updateShipment)
	g.PATCH("/shipments/:id/status", updateStatus, h.updateShipmentStatus)
	g.DELETE("/shipments/:id", remove, h.deleteShipment)

	g.POST("/shipments/:id/recalculate-cost", write, h.recalculateShipmentCost)
	g.GET("/shipments/:id/delivery-slip", read, h.downloadDeliverySlip)
	g.GET("/reports/shipments-journal", read, h.exportShipmentsJournal)
}

type createShipmentRequest struct {
	ClientID                 string          `json:"client_id" binding:"required"`
	DestinationID            string          `json:"destination_id" binding:"required"`
	ServiceTypeID            string          `json:"service_type_id" binding:"required"`
	Weight                   decimal.Decimal `json:"weight" binding:"required"`
	Volume                   decimal.Decimal `json:"volume" binding:"required"`
	Description              string          `json:"description"`
	IsInternational          bool            `json:"is_international"`
	RequiresCustomsClearance bool            `json:"requires_customs_clearance"`
	CustomsValue             decimal.Decimal `json:"customs_value"`
}

func (h *Handler) createShipment(c *gin.Context) {
	var req createShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	clientID, err := uuid.Parse(strings.TrimSpace(req.ClientID))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid client_id"})
		return
	}
	destinationID, err := uuid.Parse(strings.TrimSpace(req.DestinationID))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid destination_id"})
		return
	}
	serviceTypeID, err := uuid.Parse(strings.TrimSpace(req.ServiceTypeID))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid service_type_id"})
		return
	}

	shipment, err := h.shipments.Create(c.Request.Context(), service.CreateShipmentInput{
		ClientID:                 clientID,
		DestinationID:            destinationID,
		ServiceTypeID:            serviceTypeID,
		Weight:                   req.Weight,
		Volume:                   req.Volume,
		Description:              req.Description,
		IsInternational:          req.IsInternational,
		RequiresCustomsClearance: req.RequiresCustomsClearance,
		CustomsValue:             req.CustomsValue,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, shipment)
}

type updateShipmentRequest struct {
	DestinationID            *string          `json:"destination_id"`
	ServiceTypeID            *string          `json:"service_type_id"`
	Weight                   *decimal.Decimal `json:"weight"`
	Volume                   *decimal.Decimal `json:"volume"`
	Description              *string          `json:"description"`
	IsInternational          *bool            `json:"is_international"`
	RequiresCustomsClearance *bool            `json:"requires_customs_clearance"`
	CustomsValue             *decimal.Decimal `json:"customs_value"`
	Status                   *string          `json:"status"`
}

func (h *Handler) updateShipment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req updateShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := service.UpdateShipmentInput{
		Weight:                   req.Weight,
		Volume:                   req.Volume,
		Description:              req.Description,
		IsInternational:          req.IsInternational,
		RequiresCustomsClearance: req.RequiresCustomsClearance,
		CustomsValue:             req.CustomsValue,
	}
	if req.DestinationID != nil {
		destinationID, err := uuid.Parse(strings.TrimSpace(*req.DestinationID))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid destination_id"})
			return
		}
		input.DestinationID = &destinationID
	}
	if req.ServiceTypeID != nil {
		serviceTypeID, err := uuid.Parse(strings.TrimSpace(*req.ServiceTypeID))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid service_type_id"})
			return
		}
		input.ServiceTypeID = &serviceTypeID
	}
	if req.Status != nil {
		status := model.ShipmentStatus(strings.ToUpper(strings.TrimSpace(*req.Status)))
		input.Status = &status
	}

	shipment, err := h.shipments.Update(c.Request.Context(), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, shipment)
}

type shipmentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// updateShipmentStatus changes nothing but the status. Drivers only get
// this route; the full-field update stays behind the write action.
func (h *Handler) updateShipmentStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req shipmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := model.ShipmentStatus(strings.ToUpper(strings.TrimSpace(req.Status)))
	shipment, err := h.shipments.Update(c.Request.Context(), id, service.UpdateShipmentInput{Status: &status})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, shipment)
}

func (h *Handler) getShipment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	shipment, err := h.shipments.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, shipment)
}

func (h *Handler) listShipments(c *gin.Context) {
	shipments, err := h.shipments.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, shipments)
}

func (h *Handler) deleteShipment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.shipments.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) recalculateShipmentCost(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	shipment, err := h.shipments.RecalculateCost(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, shipment)
}

func (h *Handler) trackShipment(c *gin.Context) {
	shipment, err := h.shipments.Track(c.Request.Context(), strings.TrimSpace(c.Param("trackingNumber")))
	if err != nil {
		h.handleError(c, err)
		return
	}

	// Public view: only what the recipient needs.
	c.JSON(http.StatusOK, gin.H{
		"tracking_number": shipment.TrackingNumber,
		"status":          shipment.Status,
		"destination":     shipment.Destination,
		"service_type":    shipment.ServiceType,
		"status_history":  shipment.StatusHistory,
	})
}

func (h *Handler) downloadDeliverySlip(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.shipments.GenerateDeliverySlip(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, pdfContentType, result.Content)
}

func (h *Handler) exportShipmentsJournal(c *gin.Context) {
	start, err := parseDate(c.Query("period_start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid period_start"})
		return
	}
	end, err := parseDate(c.Query("period_end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid period_end"})
		return
	}

	result, err := h.shipments.ExportJournal(c.Request.Context(), start, end)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, xlsxContentType, result.Content)
}
