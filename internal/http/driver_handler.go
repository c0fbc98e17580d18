package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dztransit/logistics-api/internal/auth"
	"github.com/dztransit/logistics-api/internal/http/middleware"
	"github.com/dztransit/logistics-api/internal/service"
)

func (h *Handler) registerDriverRoutes(g *gin.RouterGroup) {
	read := middleware.Require(auth.ActionRead, auth.ResourceDrivers)
	write := middleware.Require(auth.ActionWrite, auth.ResourceDrivers)
	remove := middleware.Require(auth.ActionDelete, auth.ResourceDrivers)

	g.GET("/drivers", read, h.listDrivers)
	g.GET("/drivers/:id", read, h.getDriver)
	g.POST("/drivers", write, h.createDriver)
	g.PUT("/drivers/:id", write, h.updateDriver)
	g.DELETE("/drivers/:id", remove, h.deleteDriver)
}

type driverRequest struct {
	Name          string `json:"name" binding:"required"`
	LicenseNumber string `json:"license_number" binding:"required"`
	Phone         string `json:"phone"`
}

func (h *Handler) createDriver(c *gin.Context) {
	var req driverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	driver, err := h.drivers.Create(c.Request.Context(), service.DriverInput{
		Name:          req.Name,
		LicenseNumber: req.LicenseNumber,
		Phone:         req.Phone,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, driver)
}

func (h *Handler) updateDriver(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req driverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	driver, err := h.drivers.Update(c.Request.Context(), id, service.DriverInput{
		Name:          req.Name,
		LicenseNumber: req.LicenseNumber,
		Phone:         req.Phone,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, driver)
}

func (h *Handler) getDriver(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	driver, err := h.drivers.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, driver)
}

func (h *Handler) listDrivers(c *gin.Context) {
	drivers, err := h.drivers.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, drivers)
}

func (h *Handler) deleteDriver(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.drivers.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
