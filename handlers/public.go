package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafaslide/carddz/config"
	"github.com/rafaslide/carddz/models"
	"github.com/rafaslide/carddz/statemachine"
)

// ListRestaurants returns all restaurants (public)
func ListRestaurants(c *gin.Context) {
	var restaurants []models.Restaurant
	query := config.DB

	if search := c.Query("search"); search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}

	query.Find(&restaurants)
	c.JSON(http.StatusOK, gin.H{
		"count":       len(restaurants),
		"restaurants": restaurants,
	})
}

// GetRestaurant returns a single restaurant with its catalog
func GetRestaurant(c *gin.Context) {
	var restaurant models.Restaurant
	if err := config.DB.
		Preload("Categories").
		Preload("Products.CustomizationOptions.Items").
		First(&restaurant, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurant": restaurant})
}

// ListCategories returns the categories of a restaurant, ordered by name
func ListCategories(c *gin.Context) {
	restaurantID := c.Param("id")
	var categories []models.Category
	config.DB.Where("restaurant_id = ?", restaurantID).Order("name").Find(&categories)
	c.JSON(http.StatusOK, gin.H{"count": len(categories), "categories": categories})
}

// ListProducts returns a restaurant's products, with customization options
// preloaded so clients can render the configuration dialog. Optional filters:
// category and availability.
func ListProducts(c *gin.Context) {
	restaurantID := c.Param("id")

	var restaurant models.Restaurant
	if err := config.DB.First(&restaurant, "id = ?", restaurantID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	query := config.DB.Preload("CustomizationOptions.Items").
		Where("restaurant_id = ?", restaurantID)

	if categoryID := c.Query("category_id"); categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}
	if c.Query("available") == "true" {
		query = query.Where("is_available = ?", true)
	}

	var products []models.Product
	query.Order("name").Find(&products)
	c.JSON(http.StatusOK, gin.H{"count": len(products), "products": products})
}

// GetOrderStatuses documents the order status enumeration (handy for
// clients and Postman)
func GetOrderStatuses(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"statuses": statemachine.AllStatuses(),
		"note":     "any status may move to any other; re-applying the current status is rejected",
	})
}
