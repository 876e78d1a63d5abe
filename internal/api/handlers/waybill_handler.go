package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"carrier-booking-api-server/config"
	"carrier-booking-api-server/internal/models"
	"carrier-booking-api-server/internal/store"
	"carrier-booking-api-server/internal/waybill"

	"github.com/gin-gonic/gin"
)

type WaybillHandler struct {
	Waybills     store.WaybillStore
	Messages     store.MessageStore
	Reconciler   *waybill.Reconciler
	Consignments *waybill.Consignments
	Cfg          config.Config
}

// CreateWaybill opens a new draft waybill document.
func (h *WaybillHandler) CreateWaybill(c *gin.Context) {
	doc := &models.Waybill{
		Title:       "Waybill",
		Status:      "draft",
		RequestData: models.RequestData{},
	}
	id, err := h.Waybills.CreateWaybill(c.Request.Context(), doc)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create waybill"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "id": id})
}

// GetWaybill returns the waybill document with its consignments grouped
// per canonical customer number, the inactive numbers and the per-group
// errors and waybill confirmations.
func (h *WaybillHandler) GetWaybill(c *gin.Context) {
	doc, err := h.Waybills.GetWaybill(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Waybill not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve waybill"})
		return
	}

	consignments, err := h.Consignments.ForRequestData(c.Request.Context(), doc.RequestData)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve consignments"})
		return
	}
	consignments = waybill.Fold(consignments)

	inactive := []string{}
	groupErrors := map[string][]string{}
	waybills := map[string]*models.WaybillData{}
	for customerNumber, record := range doc.RequestData {
		waybills[customerNumber] = record.Waybill
		if len(record.Errors) > 0 {
			groupErrors[customerNumber] = record.Errors
		}
		for _, number := range record.InactiveConsignmentNumbers {
			inactive = append(inactive, number)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"waybill":                    doc,
		"consignments":               consignments,
		"inactiveConsignmentNumbers": inactive,
		"errors":                     groupErrors,
		"waybills":                   waybills,
	})
}

type BookWaybillRequest struct {
	// Consignments maps customer number to {labelID: consignmentNumber}.
	Consignments map[string]map[string]string `json:"consignments" binding:"required"`
	// Retry re-runs reconciliation over a waybill that already has
	// request data.
	Retry bool `json:"retry"`
}

// BookWaybill runs the reconciliation pass over the submitted
// consignment numbers.
func (h *WaybillHandler) BookWaybill(c *gin.Context) {
	var req BookWaybillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	data, err := h.Reconciler.Reconcile(c.Request.Context(), c.Param("id"), req.Consignments, req.Retry)
	if err != nil {
		switch {
		case errors.Is(err, waybill.ErrNoSubmission):
			c.JSON(http.StatusBadRequest, gin.H{"error": "No consignment numbers submitted"})
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Waybill not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to book waybill", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "requestData": data})
}

// UnbookedConsignments lists the labels not yet attached to a waybill,
// grouped by canonical customer number.
func (h *WaybillHandler) UnbookedConsignments(c *gin.Context) {
	consignments, err := h.Consignments.Unbooked(c.Request.Context(), h.Cfg.Carrier.TestMode)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list unbooked consignments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"consignments": waybill.Fold(consignments)})
}

// AdminMessages returns the accumulated operator messages, newest last.
func (h *WaybillHandler) AdminMessages(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
		limit = parsed
	}

	messages, err := h.Messages.Messages(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch messages"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages})
}
