package cart

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rafaslide/carddz/models"
)

// OrderDraft is an order payload assembled from the cart but not yet
// persisted. The persistence layer assigns id and created_at.
type OrderDraft struct {
	RestaurantID    uuid.UUID
	CustomerID      uuid.UUID
	Items           []LineItem
	TotalPrice      decimal.Decimal
	Status          models.OrderStatus
	Notes           string
	DeliveryAddress string
	ContactPhone    string
}

// BuildOrderDraft turns the cart plus delivery details into an immutable
// draft. It never touches the cart itself; the caller clears the cart only
// after the draft has been persisted, so a failed submission can be retried.
func BuildOrderDraft(c *Cart, customerID uuid.UUID, contactPhone, notes, deliveryAddress string) (*OrderDraft, error) {
	if len(c.Items) == 0 {
		return nil, ErrEmptyCart
	}
	if strings.TrimSpace(contactPhone) == "" {
		return nil, ErrMissingContact
	}
	if c.RestaurantID == nil {
		return nil, ErrNoRestaurant
	}

	snapshot := c.Clone()
	return &OrderDraft{
		RestaurantID:    *c.RestaurantID,
		CustomerID:      customerID,
		Items:           snapshot.Items,
		TotalPrice:      snapshot.TotalPrice(),
		Status:          models.StatusPending,
		Notes:           notes,
		DeliveryAddress: deliveryAddress,
		ContactPhone:    contactPhone,
	}, nil
}

// ToOrder maps the draft onto the persistence entity, snapshotting product
// name and active unit price into each order item.
func (d *OrderDraft) ToOrder() models.Order {
	items := make([]models.OrderItem, len(d.Items))
	for i, line := range d.Items {
		items[i] = models.OrderItem{
			ProductID:            line.Product.ID,
			ProductName:          line.Product.Name,
			UnitPrice:            line.Product.ActivePrice(),
			Quantity:             line.Quantity,
			Customizations:       line.Customizations,
			CustomizationDetails: resolveCustomizations(line.Product, line.Customizations),
			TotalPrice:           line.TotalPrice,
		}
	}
	return models.Order{
		RestaurantID:    d.RestaurantID,
		CustomerID:      d.CustomerID,
		Status:          d.Status,
		TotalPrice:      d.TotalPrice,
		Notes:           d.Notes,
		DeliveryAddress: d.DeliveryAddress,
		ContactPhone:    d.ContactPhone,
		Items:           items,
	}
}

// resolveCustomizations maps selection ids to the option and item names
// declared by the line's product snapshot. Selections pointing at options or
// items the snapshot does not declare are skipped, mirroring the lenient
// pricing policy for stale references.
func resolveCustomizations(product models.Product, selections []models.Selection) []models.CustomizationDetail {
	var details []models.CustomizationDetail
	for _, sel := range selections {
		option := findOption(product.CustomizationOptions, sel.OptionID)
		if option == nil {
			continue
		}
		var names []string
		for _, itemID := range sel.SelectedItems {
			if item := findItem(option.Items, itemID); item != nil {
				names = append(names, item.Name)
			}
		}
		if len(names) > 0 {
			details = append(details, models.CustomizationDetail{
				OptionName: option.Name,
				ItemNames:  names,
			})
		}
	}
	return details
}
