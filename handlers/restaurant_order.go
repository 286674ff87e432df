package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafaslide/carddz/config"
	"github.com/rafaslide/carddz/middleware"
	"github.com/rafaslide/carddz/models"
	"github.com/rafaslide/carddz/statemachine"
)

// GetRestaurantOrders returns the order board for the owner's restaurant,
// with an optional status filter and a per-status summary.
func GetRestaurantOrders(c *gin.Context) {
	restaurant, ok := ownRestaurant(c)
	if !ok {
		return
	}

	var orders []models.Order
	query := config.DB.Preload("Items").Preload("Customer").
		Where("restaurant_id = ?", restaurant.ID)

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	query.Order("created_at desc").Find(&orders)

	summary := map[string]int{}
	for _, o := range orders {
		summary[string(o.Status)]++
	}

	c.JSON(http.StatusOK, gin.H{
		"restaurant":    restaurant.Name,
		"order_summary": summary,
		"count":         len(orders),
		"orders":        orders,
	})
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
	Note   string             `json:"note"`
}

// UpdateOrderStatus transitions an order of the owner's restaurant. The
// order in the response reflects the persisted row; a failed update changes
// nothing.
func UpdateOrderStatus(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	restaurant, ok := ownRestaurant(c)
	if !ok {
		return
	}

	var order models.Order
	if err := config.DB.First(&order, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if order.RestaurantID != restaurant.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "This order does not belong to your restaurant"})
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := statemachine.CanTransition(order.Status, req.Status); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":             "Invalid state transition",
			"current_status":    order.Status,
			"requested":         req.Status,
			"reason":            err.Error(),
			"valid_next_states": statemachine.NextStatuses(order.Status),
		})
		return
	}

	prevStatus := order.Status
	if err := config.DB.Model(&order).Update("status", req.Status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
		return
	}

	history := models.OrderStatusHistory{
		OrderID:    order.ID,
		FromStatus: prevStatus,
		ToStatus:   req.Status,
		ChangedBy:  ownerID,
		Note:       req.Note,
	}
	config.DB.Create(&history)

	c.JSON(http.StatusOK, gin.H{
		"message":         "Order status updated",
		"order_id":        order.ID,
		"previous_status": string(prevStatus),
		"current_status":  string(req.Status),
	})
}
