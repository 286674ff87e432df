package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/rafaslide/carddz/config"
	"github.com/rafaslide/carddz/middleware"
	"github.com/rafaslide/carddz/models"
)

// ownRestaurant resolves the caller's restaurant from the token claims and
// aborts with an error response when there is none. Tokens issued before the
// restaurant record existed carry no tenant id, so the claim falls back to an
// owner lookup instead of forcing a re-login.
func ownRestaurant(c *gin.Context) (*models.Restaurant, bool) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No restaurant found for your account"})
		return nil, false
	}
	var restaurant models.Restaurant
	var err error
	if claims.RestaurantID != nil {
		err = config.DB.First(&restaurant, "id = ?", *claims.RestaurantID).Error
	} else {
		err = config.DB.First(&restaurant, "owner_id = ?", claims.UserID).Error
	}
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No restaurant found for your account"})
		return nil, false
	}
	return &restaurant, true
}

// ── Restaurant profile ──────────────────────────────────────────────────────

// GetMyRestaurant fetches the restaurant owned by the logged-in user
func GetMyRestaurant(c *gin.Context) {
	restaurant, ok := ownRestaurant(c)
	if !ok {
		return
	}
	config.DB.Preload("Categories").Preload("Products.CustomizationOptions.Items").
		First(restaurant, "id = ?", restaurant.ID)
	c.JSON(http.StatusOK, gin.H{"restaurant": restaurant})
}

// UpdateMyRestaurant updates profile fields of the owner's restaurant
func UpdateMyRestaurant(c *gin.Context) {
	restaurant, ok := ownRestaurant(c)
	if !ok {
		return
	}

	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	allowed := map[string]bool{
		"name": true, "description": true, "logo": true,
		"cover_image": true, "address": true, "phone": true,
	}
	update := map[string]interface{}{}
	for k, v := range req {
		if allowed[k] {
			update[k] = v
		}
	}
	config.DB.Model(restaurant).Updates(update)
	c.JSON(http.StatusOK, gin.H{"message": "Restaurant updated", "restaurant": restaurant})
}

// ── Categories ──────────────────────────────────────────────────────────────

type CategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// CreateCategory adds a category to the owner's restaurant
func CreateCategory(c *gin.Context) {
	restaurant, ok := ownRestaurant(c)
	if !ok {
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category := models.Category{
		RestaurantID: restaurant.ID,
		Name:         req.Name,
		Description:  req.Description,
	}
	if err := config.DB.Create(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Category created", "category": category})
}

// UpdateCategory renames a category of the owner's restaurant
func UpdateCategory(c *gin.Context) {
	restaurant, ok := ownRestaurant(c)
	if !ok {
		return
	}

	var category models.Category
	if err := config.DB.First(&category, "id = ? AND restaurant_id = ?", c.Param("categoryId"), restaurant.ID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	config.DB.Model(&category).Updates(map[string]interface{}{
		"name":        req.Name,
		"description": req.Description,
	})
	c.JSON(http.StatusOK, gin.H{"message": "Category updated", "category": category})
}

// DeleteCategory removes a category
func DeleteCategory(c *gin.Context) {
	restaurant, ok := ownRestaurant(c)
	if !ok {
		return
	}

	var category models.Category
	if err := config.DB.First(&category, "id = ? AND restaurant_id = ?", c.Param("categoryId"), restaurant.ID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}
	config.DB.Delete(&category)
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}

// ── Products ────────────────────────────────────────────────────────────────

type ProductRequest struct {
	Name           string           `json:"name" binding:"required"`
	Description    string           `json:"description"`
	Price          decimal.Decimal  `json:"price" binding:"required"`
	Image          string           `json:"image"`
	CategoryID     string           `json:"category_id" binding:"required,uuid"`
	IsPromotion    bool             `json:"is_promotion"`
	PromotionPrice *decimal.Decimal `json:"promotion_price"`
	IsAvailable    *bool            `json:"is_available"`
}

// CreateProduct adds a product to the owner's restaurant
func CreateProduct(c *gin.Context) {
	restaurant, ok := ownRestaurant(c)
	if !ok {
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Price.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price must not be negative"})
		return
	}

	var category models.Category
	if err := config.DB.First(&category, "id = ? AND restaurant_id = ?", req.CategoryID, restaurant.ID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not belong to your restaurant"})
		return
	}

	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}
	product := models.Product{
		RestaurantID:   restaurant.ID,
		CategoryID:     category.ID,
		Name:           req.Name,
		Description:    req.Description,
		Price:          req.Price,
		Image:          req.Image,
		IsPromotion:    req.IsPromotion,
		PromotionPrice: req.PromotionPrice,
		IsAvailable:    available,
	}
	if err := config.DB.Create(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Product created", "product": product})
}

// UpdateProduct updates a product of the owner's restaurant
func UpdateProduct(c *gin.Context) {
	restaurant, ok := ownRestaurant(c)
	if !ok {
		return
	}

	var product models.Product
	if err := config.DB.First(&product, "id = ? AND restaurant_id = ?", c.Param("productId"), restaurant.ID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	allowed := map[string]bool{
		"name": true, "description": true, "price": true, "image": true,
		"category_id": true, "is_promotion": true, "promotion_price": true,
		"is_available": true,
	}
	update := map[string]interface{}{}
	for k, v := range req {
		if allowed[k] {
			update[k] = v
		}
	}
	config.DB.Model(&product).Updates(update)
	c.JSON(http.StatusOK, gin.H{"message": "Product updated", "product": product})
}

// DeleteProduct removes a product
func DeleteProduct(c *gin.Context) {
	restaurant, ok := ownRestaurant(c)
	if !ok {
		return
	}

	var product models.Product
	if err := config.DB.First(&product, "id = ? AND restaurant_id = ?", c.Param("productId"), restaurant.ID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	config.DB.Delete(&product)
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}
