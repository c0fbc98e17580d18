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

func (h *Handler) registerInvoiceRoutes(g *gin.RouterGroup) {
	read := middleware.Require(auth.ActionRead, auth.ResourceInvoices)
	write := middleware.Require(auth.ActionWrite, auth.ResourceInvoices)
	remove := middleware.Require(auth.ActionDelete, auth.ResourceInvoices)

	g.GET("/invoices", read, h.listInvoices)
	g.GET("/invoices/:id", read, h.getInvoice)
	g.POST("/invoices", write, h.createInvoice)
	g.PUT("/invoices/:id", write, h.updateInvoice)
	g.DELETE("/invoices/:id", remove, h.deleteInvoice)

	g.POST("/invoices/:id/payments", write, h.recordInvoicePayment)
	g.POST("/invoices/:id/recompute-totals", write, h.recomputeInvoiceTotals)
	g.GET("/invoices/:id/pdf", read, h.downloadInvoicePDF)
}

func parseShipmentIDs(c *gin.Context, raw []string) ([]uuid.UUID, bool) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, item := range raw {
		id, err := uuid.Parse(strings.TrimSpace(item))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid shipment id " + item})
			return nil, false
		}
		ids = append(ids, id)
	}
	return ids, true
}

type createInvoiceRequest struct {
	ClientID    string   `json:"client_id" binding:"required"`
	ShipmentIDs []string `json:"shipment_ids"`
}

func (h *Handler) createInvoice(c *gin.Context) {
	var req createInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	clientID, err := uuid.Parse(strings.TrimSpace(req.ClientID))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid client_id"})
		return
	}
	shipmentIDs, ok := parseShipmentIDs(c, req.ShipmentIDs)
	if !ok {
		return
	}

	invoice, err := h.invoices.Create(c.Request.Context(), service.CreateInvoiceInput{
		ClientID:    clientID,
		ShipmentIDs: shipmentIDs,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, invoice)
}

type updateInvoiceRequest struct {
	ClientID    *string          `json:"client_id"`
	PaidAmount  *decimal.Decimal `json:"paid_amount"`
	ShipmentIDs *[]string        `json:"shipment_ids"`
}

func (h *Handler) updateInvoice(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req updateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := service.UpdateInvoiceInput{PaidAmount: req.PaidAmount}
	if req.ClientID != nil {
		clientID, err := uuid.Parse(strings.TrimSpace(*req.ClientID))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid client_id"})
			return
		}
		input.ClientID = &clientID
	}
	if req.ShipmentIDs != nil {
		shipmentIDs, ok := parseShipmentIDs(c, *req.ShipmentIDs)
		if !ok {
			return
		}
		input.ShipmentIDs = &shipmentIDs
	}

	invoice, err := h.invoices.Update(c.Request.Context(), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}

func (h *Handler) getInvoice(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	invoice, err := h.invoices.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}

func (h *Handler) listInvoices(c *gin.Context) {
	invoices, err := h.invoices.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoices)
}

func (h *Handler) deleteInvoice(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.invoices.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type paymentRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

func (h *Handler) recordInvoicePayment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req paymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	invoice, err := h.invoices.RecordPayment(c.Request.Context(), id, req.Amount)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}

func (h *Handler) recomputeInvoiceTotals(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	invoice, err := h.invoices.RecomputeTotals(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}

func (h *Handler) downloadInvoicePDF(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.invoices.GeneratePDF(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, pdfContentType, result.Content)
}
