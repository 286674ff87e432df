package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/rafaslide/carddz/config"
	"github.com/rafaslide/carddz/models"
)

// ── Customization options ───────────────────────────────────────────────────

type CustomizationOptionRequest struct {
	Name        string `json:"name" binding:"required"`
	Required    bool   `json:"required"`
	MultiSelect bool   `json:"multi_select"`
}

// ownProduct loads a product of the caller's restaurant or aborts.
func ownProduct(c *gin.Context, productID string) (*models.Product, bool) {
	restaurant, ok := ownRestaurant(c)
	if !ok {
		return nil, false
	}
	var product models.Product
	if err := config.DB.First(&product, "id = ? AND restaurant_id = ?", productID, restaurant.ID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return nil, false
	}
	return &product, true
}

// ownOption loads a customization option belonging to one of the caller's
// products or aborts.
func ownOption(c *gin.Context, optionID string) (*models.CustomizationOption, bool) {
	restaurant, ok := ownRestaurant(c)
	if !ok {
		return nil, false
	}
	var option models.CustomizationOption
	err := config.DB.
		Joins("JOIN products ON products.id = customization_options.product_id").
		Where("customization_options.id = ? AND products.restaurant_id = ?", optionID, restaurant.ID).
		First(&option).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Customization option not found"})
		return nil, false
	}
	return &option, true
}

// CreateCustomizationOption adds a choice group to a product
func CreateCustomizationOption(c *gin.Context) {
	product, ok := ownProduct(c, c.Param("productId"))
	if !ok {
		return
	}

	var req CustomizationOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	option := models.CustomizationOption{
		ProductID:   product.ID,
		Name:        req.Name,
		Required:    req.Required,
		MultiSelect: req.MultiSelect,
	}
	if err := config.DB.Create(&option).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create customization option"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Customization option created", "option": option})
}

// UpdateCustomizationOption edits a choice group
func UpdateCustomizationOption(c *gin.Context) {
	option, ok := ownOption(c, c.Param("optionId"))
	if !ok {
		return
	}

	var req CustomizationOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	config.DB.Model(option).Updates(map[string]interface{}{
		"name":         req.Name,
		"required":     req.Required,
		"multi_select": req.MultiSelect,
	})
	c.JSON(http.StatusOK, gin.H{"message": "Customization option updated", "option": option})
}

// DeleteCustomizationOption removes a choice group. Cart lines already
// referencing it keep pricing cleanly: stale selections contribute zero.
func DeleteCustomizationOption(c *gin.Context) {
	option, ok := ownOption(c, c.Param("optionId"))
	if !ok {
		return
	}
	config.DB.Delete(&models.CustomizationItem{}, "option_id = ?", option.ID)
	config.DB.Delete(option)
	c.JSON(http.StatusOK, gin.H{"message": "Customization option deleted"})
}

// ── Customization items ─────────────────────────────────────────────────────

type CustomizationItemRequest struct {
	Name  string          `json:"name" binding:"required"`
	Price decimal.Decimal `json:"price"`
}

// CreateCustomizationItem adds a selectable value to an option
func CreateCustomizationItem(c *gin.Context) {
	option, ok := ownOption(c, c.Param("optionId"))
	if !ok {
		return
	}

	var req CustomizationItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Price.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price must not be negative"})
		return
	}

	item := models.CustomizationItem{
		OptionID: option.ID,
		Name:     req.Name,
		Price:    req.Price,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create customization item"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Customization item created", "item": item})
}

// UpdateCustomizationItem edits a selectable value
func UpdateCustomizationItem(c *gin.Context) {
	restaurant, ok := ownRestaurant(c)
	if !ok {
		return
	}

	var item models.CustomizationItem
	err := config.DB.
		Joins("JOIN customization_options ON customization_options.id = customization_items.option_id").
		Joins("JOIN products ON products.id = customization_options.product_id").
		Where("customization_items.id = ? AND products.restaurant_id = ?", c.Param("itemId"), restaurant.ID).
		First(&item).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Customization item not found"})
		return
	}

	var req CustomizationItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Price.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price must not be negative"})
		return
	}
	config.DB.Model(&item).Updates(map[string]interface{}{
		"name":  req.Name,
		"price": req.Price,
	})
	c.JSON(http.StatusOK, gin.H{"message": "Customization item updated", "item": item})
}

// DeleteCustomizationItem removes a selectable value
func DeleteCustomizationItem(c *gin.Context) {
	restaurant, ok := ownRestaurant(c)
	if !ok {
		return
	}

	var item models.CustomizationItem
	err := config.DB.
		Joins("JOIN customization_options ON customization_options.id = customization_items.option_id").
		Joins("JOIN products ON products.id = customization_options.product_id").
		Where("customization_items.id = ? AND products.restaurant_id = ?", c.Param("itemId"), restaurant.ID).
		First(&item).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Customization item not found"})
		return
	}
	config.DB.Delete(&item)
	c.JSON(http.StatusOK, gin.H{"message": "Customization item deleted"})
}
