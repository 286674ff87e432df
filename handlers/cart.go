package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rafaslide/carddz/cart"
	"github.com/rafaslide/carddz/config"
	"github.com/rafaslide/carddz/middleware"
	"github.com/rafaslide/carddz/models"
)

// CartAPI exposes the customer's cart over HTTP. The cart manager is passed
// in explicitly rather than reached through a package global.
type CartAPI struct {
	Carts *cart.Manager
}

func NewCartAPI(carts *cart.Manager) *CartAPI {
	return &CartAPI{Carts: carts}
}

type AddToCartRequest struct {
	ProductID      uuid.UUID          `json:"product_id" binding:"required"`
	Quantity       int                `json:"quantity" binding:"required,min=1"`
	Customizations []models.Selection `json:"customizations"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// GetCart returns the caller's cart with fresh aggregates
func (a *CartAPI) GetCart(c *gin.Context) {
	customerID := middleware.GetUserID(c)
	current, err := a.Carts.Get(customerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
		return
	}
	respondCart(c, http.StatusOK, "", current)
}

// AddItem adds a configured product to the cart
func (a *CartAPI) AddItem(c *gin.Context) {
	customerID := middleware.GetUserID(c)

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var product models.Product
	if err := config.DB.Preload("CustomizationOptions.Items").
		First(&product, "id = ?", req.ProductID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if !product.IsAvailable {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Product '" + product.Name + "' is not available"})
		return
	}

	updated, err := a.Carts.AddToCart(customerID, product, req.Quantity, req.Customizations)
	if err != nil {
		switch {
		case errors.Is(err, cart.ErrCrossTenantCart):
			c.JSON(http.StatusConflict, gin.H{
				"error": "You can only order from one restaurant at a time. Clear your cart to order from another place.",
			})
		case errors.Is(err, cart.ErrRequiredOption), errors.Is(err, cart.ErrInvalidQuantity):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
		}
		return
	}

	respondCart(c, http.StatusOK, "Item added to cart", updated)
}

// UpdateItemQuantity sets a new quantity for a product; zero removes it
func (a *CartAPI) UpdateItemQuantity(c *gin.Context) {
	customerID := middleware.GetUserID(c)

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := a.Carts.UpdateQuantity(customerID, productID, req.Quantity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
		return
	}
	respondCart(c, http.StatusOK, "Cart updated", updated)
}

// RemoveItem removes every customization variant of a product
func (a *CartAPI) RemoveItem(c *gin.Context) {
	customerID := middleware.GetUserID(c)

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	updated, err := a.Carts.RemoveFromCart(customerID, productID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
		return
	}
	respondCart(c, http.StatusOK, "Item removed from cart", updated)
}

// ClearCart empties the cart
func (a *CartAPI) ClearCart(c *gin.Context) {
	customerID := middleware.GetUserID(c)
	if err := a.Carts.Clear(customerID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}

func respondCart(c *gin.Context, status int, message string, current *cart.Cart) {
	body := gin.H{
		"cart":        current,
		"total_items": current.TotalItems(),
		"total_price": current.TotalPrice(),
	}
	if message != "" {
		body["message"] = message
	}
	c.JSON(status, body)
}
