package cart

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rafaslide/carddz/models"
)

// ComputeLineTotal prices one configured line: the product's active unit
// price plus the price deltas of every selected customization item, times
// the quantity. Quantity must be >= 1; callers enforce that, the function
// does not clamp.
//
// Selections referencing an option or item the product no longer declares
// contribute zero. Old cart lines may carry ids of customizations that were
// deleted from the catalog since, and those lines must still price cleanly.
func ComputeLineTotal(product models.Product, quantity int, selections []models.Selection) decimal.Decimal {
	unit := product.ActivePrice()

	for _, sel := range selections {
		option := findOption(product.CustomizationOptions, sel.OptionID)
		if option == nil {
			continue
		}
		for _, itemID := range sel.SelectedItems {
			if item := findItem(option.Items, itemID); item != nil {
				unit = unit.Add(item.Price)
			}
		}
	}

	return unit.Mul(decimal.NewFromInt(int64(quantity)))
}

func findOption(options []models.CustomizationOption, id uuid.UUID) *models.CustomizationOption {
	for i := range options {
		if options[i].ID == id {
			return &options[i]
		}
	}
	return nil
}

func findItem(items []models.CustomizationItem, id uuid.UUID) *models.CustomizationItem {
	for i := range items {
		if items[i].ID == id {
			return &items[i]
		}
	}
	return nil
}
