package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/rafaslide/carddz/cart"
	"github.com/rafaslide/carddz/config"
	"github.com/rafaslide/carddz/middleware"
	"github.com/rafaslide/carddz/models"
	"github.com/rafaslide/carddz/whatsapp"
)

type CheckoutRequest struct {
	ContactPhone    string `json:"contact_phone" binding:"required"`
	Notes           string `json:"notes"`
	DeliveryAddress string `json:"delivery_address"`
}

// Checkout assembles the caller's cart into an order, persists it and then
// clears the cart. A failed save leaves the cart untouched so the customer
// can retry.
func (a *CartAPI) Checkout(c *gin.Context) {
	customerID := middleware.GetUserID(c)

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	current, err := a.Carts.Get(customerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
		return
	}

	draft, err := cart.BuildOrderDraft(current, customerID, req.ContactPhone, req.Notes, req.DeliveryAddress)
	if err != nil {
		switch {
		case errors.Is(err, cart.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is empty"})
		case errors.Is(err, cart.ErrMissingContact):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please provide a contact phone"})
		case errors.Is(err, cart.ErrNoRestaurant):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart has no restaurant"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build order"})
		}
		return
	}

	order := draft.ToOrder()
	if err := config.DB.Create(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		return
	}

	history := models.OrderStatusHistory{
		OrderID:   order.ID,
		ToStatus:  models.StatusPending,
		ChangedBy: customerID,
		Note:      "Order placed by customer",
	}
	config.DB.Create(&history)

	// The order is durable now; clearing the cart is the caller's job per
	// the assembler contract. A failure here only means a stale snapshot.
	if err := a.Carts.Clear(customerID); err != nil {
		logrus.WithError(err).WithField("order_id", order.ID).
			Warn("order placed but cart clear failed")
	}

	config.DB.Preload("Items").Preload("Restaurant").First(&order, "id = ?", order.ID)

	restaurantName := ""
	if order.Restaurant != nil {
		restaurantName = order.Restaurant.Name
	}
	message := whatsapp.OrderMessage(order, restaurantName, customerNameFor(customerID))

	c.JSON(http.StatusCreated, gin.H{
		"message":       "Order placed successfully",
		"order":         order,
		"whatsapp_link": whatsapp.ShareLink(message),
	})
}

// GetMyOrders returns all orders for the logged-in customer
func GetMyOrders(c *gin.Context) {
	customerID := middleware.GetUserID(c)
	var orders []models.Order
	config.DB.Preload("Items").Preload("Restaurant").
		Where("customer_id = ?", customerID).
		Order("created_at desc").
		Find(&orders)
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// GetOrderDetail returns a single order's full detail with history
func GetOrderDetail(c *gin.Context) {
	customerID := middleware.GetUserID(c)

	var order models.Order
	if err := config.DB.
		Preload("Items").
		Preload("Restaurant").
		Preload("StatusHistory").
		First(&order, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if order.CustomerID != customerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "This order does not belong to you"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": order})
}

// GetOrderWhatsAppLink rebuilds the share message for an existing order
func GetOrderWhatsAppLink(c *gin.Context) {
	customerID := middleware.GetUserID(c)

	var order models.Order
	if err := config.DB.Preload("Items").Preload("Restaurant").
		First(&order, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if order.CustomerID != customerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "This order does not belong to you"})
		return
	}

	restaurantName := ""
	if order.Restaurant != nil {
		restaurantName = order.Restaurant.Name
	}
	message := whatsapp.OrderMessage(order, restaurantName, customerNameFor(customerID))

	c.JSON(http.StatusOK, gin.H{
		"message":       message,
		"whatsapp_link": whatsapp.ShareLink(message),
	})
}

func customerNameFor(customerID uuid.UUID) string {
	var user models.User
	if err := config.DB.First(&user, "id = ?", customerID).Error; err != nil {
		return "Cliente"
	}
	return user.Name
}
