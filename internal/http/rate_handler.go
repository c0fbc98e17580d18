package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dztransit/logistics-api/internal/auth"
	"github.com/dztransit/logistics-api/internal/http/middleware"
	"github.com/dztransit/logistics-api/internal/service"
)

func (h *Handler) registerRateRoutes(g *gin.RouterGroup) {
	destRead := middleware.Require(auth.ActionRead, auth.ResourceDestinations)
	destWrite := middleware.Require(auth.ActionWrite, auth.ResourceDestinations)
	destDelete := middleware.Require(auth.ActionDelete, auth.ResourceDestinations)

	g.GET("/destinations", destRead, h.listDestinations)
	g.POST("/destinations", destWrite, h.createDestination)
	g.PUT("/destinations/:id", destWrite, h.updateDestination)
	g.DELETE("/destinations/:id", destDelete, h.deleteDestination)

	typeRead := middleware.Require(auth.ActionRead, auth.ResourceServiceTypes)
	typeWrite := middleware.Require(auth.ActionWrite, auth.ResourceServiceTypes)
	typeDelete := middleware.Require(auth.ActionDelete, auth.ResourceServiceTypes)

	g.GET("/service-types", typeRead, h.listServiceTypes)
	g.POST("/service-types", typeWrite, h.createServiceType)
	g.PUT("/service-types/:id", typeWrite, h.updateServiceType)
	g.DELETE("/service-types/:id", typeDelete, h.deleteServiceType)

	ruleRead := middleware.Require(auth.ActionRead, auth.ResourcePricingRules)
	ruleWrite := middleware.Require(auth.ActionWrite, auth.ResourcePricingRules)
	ruleDelete := middleware.Require(auth.ActionDelete, auth.ResourcePricingRules)

	g.GET("/pricing-rules", ruleRead, h.listPricingRules)
	g.GET("/pricing-rules/:id", ruleRead, h.getPricingRule)
	g.POST("/pricing-rules", ruleWrite, h.createPricingRule)
	g.PUT("/pricing-rules/:id", ruleWrite, h.updatePricingRule)
	g.DELETE("/pricing-rules/:id", ruleDelete, h.deletePricingRule)
}

type destinationRequest struct {
	Name string  `json:"name" binding:"required"`
	Zone *string `json:"zone"`
}

func (h *Handler) createDestination(c *gin.Context) {
	var req destinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	destination, err := h.rates.CreateDestination(c.Request.Context(), req.Name, req.Zone)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, destination)
}

func (h *Handler) updateDestination(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req destinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	destination, err := h.rates.UpdateDestination(c.Request.Context(), id, req.Name, req.Zone)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, destination)
}

func (h *Handler) listDestinations(c *gin.Context) {
	destinations, err := h.rates.ListDestinations(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, destinations)
}

func (h *Handler) deleteDestination(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.rates.DeleteDestination(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type serviceTypeRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *Handler) createServiceType(c *gin.Context) {
	var req serviceTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	serviceType, err := h.rates.CreateServiceType(c.Request.Context(), req.Name)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, serviceType)
}

func (h *Handler) updateServiceType(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req serviceTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	serviceType, err := h.rates.UpdateServiceType(c.Request.Context(), id, req.Name)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, serviceType)
}

func (h *Handler) listServiceTypes(c *gin.Context) {
	serviceTypes, err := h.rates.ListServiceTypes(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, serviceTypes)
}

func (h *Handler) deleteServiceType(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.rates.DeleteServiceType(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type pricingRuleRequest struct {
	DestinationID string          `json:"destination_id" binding:"required"`
	ServiceTypeID string          `json:"service_type_id" binding:"required"`
	BaseTariff    decimal.Decimal `json:"base_tariff"`
	WeightRate    decimal.Decimal `json:"weight_rate"`
	VolumeRate    decimal.Decimal `json:"volume_rate"`
}

func (req pricingRuleRequest) toInput(c *gin.Context) (service.PricingRuleInput, bool) {
	destinationID, err := uuid.Parse(strings.TrimSpace(req.DestinationID))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid destination_id"})
		return service.PricingRuleInput{}, false
	}
	serviceTypeID, err := uuid.Parse(strings.TrimSpace(req.ServiceTypeID))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid service_type_id"})
		return service.PricingRuleInput{}, false
	}
	return service.PricingRuleInput{
		DestinationID: destinationID,
		ServiceTypeID: serviceTypeID,
		BaseTariff:    req.BaseTariff,
		WeightRate:    req.WeightRate,
		VolumeRate:    req.VolumeRate,
	}, true
}

func (h *Handler) createPricingRule(c *gin.Context) {
	var req pricingRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input, ok := req.toInput(c)
	if !ok {
		return
	}

	rule, err := h.rates.CreateRule(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rule)
}

func (h *Handler) updatePricingRule(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req pricingRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input, ok := req.toInput(c)
	if !ok {
		return
	}

	rule, err := h.rates.UpdateRule(c.Request.Context(), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, rule)
}

func (h *Handler) getPricingRule(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	rule, err := h.rates.GetRule(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, rule)
}

func (h *Handler) listPricingRules(c *gin.Context) {
	rules, err := h.rates.ListRules(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, rules)
}

func (h *Handler) deletePricingRule(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.rates.DeleteRule(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
