package handlers

import (
	"errors"
	"net/http"

	"carrier-booking-api-server/internal/models"
	"carrier-booking-api-server/internal/store"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	Orders store.OrderStore
}

type CreateOrderRequest struct {
	OrderID       string                 `json:"orderID" binding:"required"`
	Shipping      models.ShippingAddress `json:"shipping" binding:"required"`
	CustomerNote  string                 `json:"customerNote"`
	BillingEmail  string                 `json:"billingEmail"`
	BillingPhone  string                 `json:"billingPhone"`
	Items         []models.OrderItem     `json:"items"`
	ShippingItems []models.ShippingItem  `json:"shippingItems" binding:"required"`
}

// CreateOrder takes an order pushed by the storefront.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order := &models.Order{
		OrderID:       req.OrderID,
		Shipping:      req.Shipping,
		CustomerNote:  req.CustomerNote,
		BillingEmail:  req.BillingEmail,
		BillingPhone:  req.BillingPhone,
		Items:         req.Items,
		ShippingItems: req.ShippingItems,
	}

	if err := h.Orders.CreateOrder(c.Request.Context(), order); err != nil {
		if errors.Is(err, store.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": "Order with this ID already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		return
	}

	c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.Orders.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve order"})
		return
	}

	c.JSON(http.StatusOK, order)
}
