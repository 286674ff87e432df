package cart

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rafaslide/carddz/models"
)

// LineItem is one configured product in the cart. The product is a snapshot
// copy, not a live catalog reference, so later catalog edits do not change
// pricing of lines already in the cart. TotalPrice is a cached derived value,
// refreshed on every mutation.
type LineItem struct {
	Product        models.Product     `json:"product"`
	Quantity       int                `json:"quantity"`
	Customizations []models.Selection `json:"customizations"`
	TotalPrice     decimal.Decimal    `json:"totalPrice"`
}

// Cart holds one customer's pending selection. All items belong to the same
// restaurant: RestaurantID is set by the first add and cleared when the cart
// empties. The type is plain single-writer state with no internal locking;
// Manager serializes access to it.
type Cart struct {
	RestaurantID *uuid.UUID `json:"restaurantId"`
	Items        []LineItem `json:"items"`
}

// CanAddFromRestaurant reports whether a product of the given restaurant may
// enter the cart: always true for an empty cart, otherwise only for the
// restaurant the cart is locked to.
func (c *Cart) CanAddFromRestaurant(restaurantID uuid.UUID) bool {
	return len(c.Items) == 0 || (c.RestaurantID != nil && *c.RestaurantID == restaurantID)
}

// Add puts a configured product into the cart. Adding the same product with
// a structurally identical selection list merges into the existing line
// (quantity and total summed); any difference in the selections creates a
// separate line. Rejections leave the cart unchanged.
func (c *Cart) Add(product models.Product, quantity int, selections []models.Selection) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	if err := validateSelections(product, selections); err != nil {
		return err
	}
	if !c.CanAddFromRestaurant(product.RestaurantID) {
		return ErrCrossTenantCart
	}

	if len(c.Items) == 0 {
		id := product.RestaurantID
		c.RestaurantID = &id
	}

	total := ComputeLineTotal(product, quantity, selections)
	key := lineKey(product.ID, selections)
	for i := range c.Items {
		if lineKey(c.Items[i].Product.ID, c.Items[i].Customizations) == key {
			c.Items[i].Quantity += quantity
			c.Items[i].TotalPrice = c.Items[i].TotalPrice.Add(total)
			return nil
		}
	}

	c.Items = append(c.Items, LineItem{
		Product:        snapshotProduct(product),
		Quantity:       quantity,
		Customizations: copySelections(selections),
		TotalPrice:     total,
	})
	return nil
}

// Remove deletes every line of the given product, regardless of its
// customization variant. The restaurant lock is cleared when the cart
// becomes empty.
func (c *Cart) Remove(productID uuid.UUID) {
	kept := c.Items[:0]
	for _, item := range c.Items {
		if item.Product.ID != productID {
			kept = append(kept, item)
		}
	}
	c.Items = kept
	if len(c.Items) == 0 {
		c.Items = nil
		c.RestaurantID = nil
	}
}

// UpdateQuantity sets a new quantity on the first line matching the product
// and reprices it from scratch. A quantity of zero or less removes the
// product entirely. When several customization variants of one product
// exist, only the first line is touched; Remove is the only per-product-id
// bulk operation.
func (c *Cart) UpdateQuantity(productID uuid.UUID, quantity int) {
	if quantity <= 0 {
		c.Remove(productID)
		return
	}
	for i := range c.Items {
		if c.Items[i].Product.ID == productID {
			c.Items[i].Quantity = quantity
			c.Items[i].TotalPrice = ComputeLineTotal(c.Items[i].Product, quantity, c.Items[i].Customizations)
			return
		}
	}
}

// Clear empties the cart and releases the restaurant lock.
func (c *Cart) Clear() {
	c.Items = nil
	c.RestaurantID = nil
}

// TotalItems is the sum of line quantities, recomputed from the line list.
func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// TotalPrice is the sum of line totals, recomputed from the line list. No
// counter is kept alongside the items, so the aggregate can never drift.
func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.TotalPrice)
	}
	return total
}

// Clone returns an independent deep copy.
func (c *Cart) Clone() *Cart {
	out := &Cart{}
	if c.RestaurantID != nil {
		id := *c.RestaurantID
		out.RestaurantID = &id
	}
	if len(c.Items) > 0 {
		out.Items = make([]LineItem, len(c.Items))
		for i, item := range c.Items {
			out.Items[i] = LineItem{
				Product:        snapshotProduct(item.Product),
				Quantity:       item.Quantity,
				Customizations: copySelections(item.Customizations),
				TotalPrice:     item.TotalPrice,
			}
		}
	}
	return out
}

// lineKey is the merge identity of a line: product id plus the literal JSON
// serialization of the selection list. Selection order is part of the
// identity; two orderings of the same picks do not merge.
func lineKey(productID uuid.UUID, selections []models.Selection) string {
	if len(selections) == 0 {
		return productID.String() + "|[]"
	}
	raw, err := json.Marshal(selections)
	if err != nil {
		return productID.String()
	}
	return productID.String() + "|" + string(raw)
}

// validateSelections checks the picks against the product's declared
// options: a required single-select option needs exactly one item, a
// required multi-select at least one. Non-required options may be absent,
// and selections for options the product no longer declares are tolerated
// (they price as zero).
func validateSelections(product models.Product, selections []models.Selection) error {
	for _, option := range product.CustomizationOptions {
		if !option.Required {
			continue
		}
		count := 0
		for _, sel := range selections {
			if sel.OptionID == option.ID {
				count += len(sel.SelectedItems)
			}
		}
		if option.MultiSelect {
			if count < 1 {
				return ErrRequiredOption
			}
		} else if count != 1 {
			return ErrRequiredOption
		}
	}
	return nil
}

func snapshotProduct(p models.Product) models.Product {
	out := p
	if p.PromotionPrice != nil {
		v := *p.PromotionPrice
		out.PromotionPrice = &v
	}
	if len(p.CustomizationOptions) > 0 {
		out.CustomizationOptions = make([]models.CustomizationOption, len(p.CustomizationOptions))
		for i, opt := range p.CustomizationOptions {
			copied := opt
			copied.Items = append([]models.CustomizationItem(nil), opt.Items...)
			out.CustomizationOptions[i] = copied
		}
	}
	return out
}

func copySelections(selections []models.Selection) []models.Selection {
	if len(selections) == 0 {
		return nil
	}
	out := make([]models.Selection, len(selections))
	for i, sel := range selections {
		out[i] = models.Selection{
			OptionID:      sel.OptionID,
			SelectedItems: append([]uuid.UUID(nil), sel.SelectedItems...),
		}
	}
	return out
}
