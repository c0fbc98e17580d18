package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dztransit/logistics-api/internal/auth"
	"github.com/dztransit/logistics-api/internal/http/middleware"
	"github.com/dztransit/logistics-api/internal/service"
)

func (h *Handler) registerClientRoutes(g *gin.RouterGroup) {
	read := middleware.Require(auth.ActionRead, auth.ResourceClients)
	write := middleware.Require(auth.ActionWrite, auth.ResourceClients)
	remove := middleware.Require(auth.ActionDelete, auth.ResourceClients)

	g.GET("/clients", read, h.listClients)
	g.GET("/clients/:id", read, h.getClient)
	g.POST("/clients", write, h.createClient)
	g.PUT("/clients/:id", write, h.updateClient)
	g.DELETE("/clients/:id", remove, h.deleteClient)
}

type clientRequest struct {
	Name        string `json:"name" binding:"required"`
	Address     string `json:"address"`
	ContactInfo string `json:"contact_info"`
}

func (h *Handler) createClient(c *gin.Context) {
	var req clientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	client, err := h.clients.Create(c.Request.Context(), service.ClientInput{
		Name:        req.Name,
		Address:     req.Address,
		ContactInfo: req.ContactInfo,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, client)
}

func (h *Handler) updateClient(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req clientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	client, err := h.clients.Update(c.Request.Context(), id, service.ClientInput{
		Name:        req.Name,
		Address:     req.Address,
		ContactInfo: req.ContactInfo,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *Handler) getClient(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	client, err := h.clients.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *Handler) listClients(c *gin.Context) {
	clients, err := h.clients.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, clients)
}

func (h *Handler) deleteClient(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.clients.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
