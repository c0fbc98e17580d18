package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dztransit/logistics-api/internal/auth"
	"github.com/dztransit/logistics-api/internal/http/middleware"
	"github.com/dztransit/logistics-api/internal/model"
	"github.com/dztransit/logistics-api/internal/service"
)

func (h *Handler) registerClaimRoutes(g *gin.RouterGroup) {
	incidentRead := middleware.Require(auth.ActionRead, auth.ResourceIncidents)
	incidentWrite := middleware.Require(auth.ActionWrite, auth.ResourceIncidents)
	incidentDelete := middleware.Require(auth.ActionDelete, auth.ResourceIncidents)

	g.GET("/incidents", incidentRead, h.listIncidents)
	g.GET("/incidents/:id", incidentRead, h.getIncident)
	g.POST("/incidents", incidentWrite, h.createIncident)
	g.PUT("/incidents/:id", incidentWrite, h.updateIncident)
	g.DELETE("/incidents/:id", incidentDelete, h.deleteIncident)

	claimRead := middleware.Require(auth.ActionRead, auth.ResourceClaims)
	claimWrite := middleware.Require(auth.ActionWrite, auth.ResourceClaims)
	claimDelete := middleware.Require(auth.ActionDelete, auth.ResourceClaims)

	g.GET("/claims", claimRead, h.listClaims)
	g.GET("/claims/:id", claimRead, h.getClaim)
	g.POST("/claims", claimWrite, h.createClaim)
	g.PATCH("/claims/:id/status", claimWrite, h.updateClaimStatus)
	g.DELETE("/claims/:id", claimDelete, h.deleteClaim)
}

type incidentRequest struct {
	ShipmentID  string `json:"shipment_id" binding:"required"`
	Description string `json:"description" binding:"required"`
}

func (h *Handler) createIncident(c *gin.Context) {
	var req incidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	shipmentID, err := uuid.Parse(strings.TrimSpace(req.ShipmentID))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid shipment_id"})
		return
	}

	incident, err := h.claims.CreateIncident(c.Request.Context(), service.IncidentInput{
		ShipmentID:  shipmentID,
		Description: req.Description,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, incident)
}

type updateIncidentRequest struct {
	Description string  `json:"description"`
	Status      *string `json:"status"`
}

func (h *Handler) updateIncident(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req updateIncidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := service.IncidentInput{Description: req.Description}
	if req.Status != nil {
		status := model.IncidentStatus(strings.ToUpper(strings.TrimSpace(*req.Status)))
		input.Status = &status
	}

	incident, err := h.claims.UpdateIncident(c.Request.Context(), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, incident)
}

func (h *Handler) getIncident(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	incident, err := h.claims.GetIncident(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, incident)
}

func (h *Handler) listIncidents(c *gin.Context) {
	incidents, err := h.claims.ListIncidents(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, incidents)
}

func (h *Handler) deleteIncident(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.claims.DeleteIncident(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type claimRequest struct {
	ClientID    *string `json:"client_id"`
	ShipmentID  *string `json:"shipment_id"`
	ClaimType   string  `json:"claim_type" binding:"required"`
	Description string  `json:"description" binding:"required"`
}

func (h *Handler) createClaim(c *gin.Context) {
	var req claimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := service.ClaimInput{
		ClaimType:   model.ClaimType(strings.ToUpper(strings.TrimSpace(req.ClaimType))),
		Description: req.Description,
	}
	if req.ClientID != nil {
		clientID, err := uuid.Parse(strings.TrimSpace(*req.ClientID))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid client_id"})
			return
		}
		input.ClientID = &clientID
	}
	if req.ShipmentID != nil {
		shipmentID, err := uuid.Parse(strings.TrimSpace(*req.ShipmentID))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid shipment_id"})
			return
		}
		input.ShipmentID = &shipmentID
	}

	claim, err := h.claims.CreateClaim(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, claim)
}

type publicClaimRequest struct {
	TrackingNumber string `json:"tracking_number"`
	ClaimType      string `json:"claim_type" binding:"required"`
	Description    string `json:"description" binding:"required"`
	ContactEmail   string `json:"contact_email" binding:"required,email"`
}

func (h *Handler) submitPublicClaim(c *gin.Context) {
	var req publicClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	claim, err := h.claims.SubmitPublicClaim(c.Request.Context(), service.PublicClaimInput{
		TrackingNumber: strings.TrimSpace(req.TrackingNumber),
		ClaimType:      model.ClaimType(strings.ToUpper(strings.TrimSpace(req.ClaimType))),
		Description:    req.Description,
		ContactEmail:   req.ContactEmail,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, claim)
}

type claimStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *Handler) updateClaimStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req claimStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	claim, err := h.claims.UpdateClaimStatus(c.Request.Context(), id,
		model.ClaimStatus(strings.ToUpper(strings.TrimSpace(req.Status))))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, claim)
}

func (h *Handler) getClaim(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	claim, err := h.claims.GetClaim(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, claim)
}

func (h *Handler) listClaims(c *gin.Context) {
	claims, err := h.claims.ListClaims(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, claims)
}

func (h *Handler) deleteClaim(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.claims.DeleteClaim(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
