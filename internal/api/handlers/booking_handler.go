package handlers

import (
	"errors"
	"net/http"
	"time"

	"carrier-booking-api-server/config"
	"carrier-booking-api-server/internal/booking"
	"carrier-booking-api-server/internal/carrier"
	"carrier-booking-api-server/internal/models"
	"carrier-booking-api-server/internal/store"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	Orders  store.OrderStore
	Labels  store.LabelStore
	Builder *booking.Builder
	Carrier *carrier.Client
	Cfg     config.Config
}

type BookOrderRequest struct {
	CustomerNumber string `json:"customerNumber" binding:"required"`
	// ItemID selects a shipping line; empty means the order's first
	// recognized line.
	ItemID           string `json:"itemID"`
	AdditionalInfo   string `json:"additionalInfo"`
	CorrelationID    string `json:"correlationId"`
	ShippingDateTime string `json:"shippingDateTime"` // RFC 3339, optional
}

// BookOrder assembles the consignment request for one of the order's
// shipping lines and books it with the carrier. Each confirmed
// consignment becomes a draft label, ready for a waybill.
func (h *BookingHandler) BookOrder(c *gin.Context) {
	order, err := h.Orders.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve order"})
		return
	}

	var req BookOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := selectShippingItem(order, req.ItemID)
	if item == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Order has no shipping line for this integration"})
		return
	}

	opts := booking.BuildOptions{
		CustomerNumber: req.CustomerNumber,
		AdditionalInfo: req.AdditionalInfo,
		CorrelationID:  req.CorrelationID,
	}
	if req.ShippingDateTime != "" {
		shippingTime, err := time.Parse(time.RFC3339, req.ShippingDateTime)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "shippingDateTime must be RFC 3339"})
			return
		}
		opts.ShippingTime = shippingTime
	}

	payload, err := h.Builder.Build(c.Request.Context(), order, item, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build booking payload", "details": err.Error()})
		return
	}

	response, bookingErrors := h.Carrier.BookConsignment(c.Request.Context(), payload)
	if bookingErrors != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Carrier booking failed", "errors": bookingErrors})
		return
	}

	labels := make([]models.Label, 0, len(response.Consignments))
	for _, consignment := range response.Consignments {
		if consignment.Confirmation == nil {
			continue
		}
		label := models.Label{
			OrderID:           order.OrderID,
			ConsignmentNumber: consignment.Confirmation.ConsignmentNumber,
			CustomerNumber:    req.CustomerNumber,
			TestMode:          h.Cfg.Carrier.TestMode,
			Status:            "draft",
		}
		if _, err := h.Labels.CreateLabel(c.Request.Context(), &label); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store label", "details": err.Error()})
			return
		}
		labels = append(labels, label)
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":       "success",
		"orderID":      order.OrderID,
		"consignments": response.Consignments,
		"labels":       labels,
	})
}

func selectShippingItem(order *models.Order, itemID string) *models.ShippingItem {
	for i := range order.ShippingItems {
		item := &order.ShippingItems[i]
		if itemID != "" {
			if item.ItemID == itemID {
				return item
			}
			continue
		}
		if booking.ParseMethodID(item.MethodID).Recognized() {
			return item
		}
	}
	return nil
}
