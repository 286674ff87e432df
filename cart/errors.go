package cart

import "errors"

var (
	// ErrCrossTenantCart is returned when an add would mix products from two
	// restaurants. The cart is left untouched; the caller prompts the user to
	// clear it first.
	ErrCrossTenantCart = errors.New("cart is locked to another restaurant")

	// ErrEmptyCart rejects checkout of an empty cart.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrMissingContact rejects checkout without a contact phone.
	ErrMissingContact = errors.New("contact phone is required")

	// ErrNoRestaurant rejects checkout when the cart has items but no
	// restaurant lock. Unreachable while the single-tenant invariant holds.
	ErrNoRestaurant = errors.New("cart has no restaurant")

	// ErrRequiredOption rejects an add whose selections do not satisfy a
	// required customization option of the product.
	ErrRequiredOption = errors.New("required customization option not satisfied")

	// ErrInvalidQuantity rejects an add with a quantity below one.
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)
