package cart

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafaslide/carddz/models"
)

func checkAggregates(t *testing.T, c *Cart) {
	t.Helper()
	items := 0
	total := decimal.Zero
	for _, line := range c.Items {
		items += line.Quantity
		total = total.Add(line.TotalPrice)
	}
	assert.Equal(t, items, c.TotalItems())
	assert.True(t, total.Equal(c.TotalPrice()), "aggregate drift: %s vs %s", total, c.TotalPrice())
}

func TestAddLocksCartToRestaurant(t *testing.T) {
	c := &Cart{}
	p := testProduct("10.00")

	require.NoError(t, c.Add(p, 1, nil))
	require.NotNil(t, c.RestaurantID)
	assert.Equal(t, p.RestaurantID, *c.RestaurantID)
	checkAggregates(t, c)
}

func TestAddRejectsOtherRestaurant(t *testing.T) {
	c := &Cart{}
	a := testProduct("10.00")
	b := testProduct("12.00") // different restaurant id

	require.NoError(t, c.Add(a, 2, nil))
	before := c.Clone()

	err := c.Add(b, 1, nil)
	assert.ErrorIs(t, err, ErrCrossTenantCart)

	// rejection must not mutate anything
	assert.Equal(t, len(before.Items), len(c.Items))
	assert.Equal(t, before.Items[0].Quantity, c.Items[0].Quantity)
	assert.Equal(t, *before.RestaurantID, *c.RestaurantID)
}

func TestAddMergesIdenticalSelections(t *testing.T) {
	c := &Cart{}
	p := withOption(testProduct("10.00"), "Extras", false, true, "2.00")
	sel := selectItems(p.CustomizationOptions[0], 0)

	require.NoError(t, c.Add(p, 2, []models.Selection{sel}))
	require.NoError(t, c.Add(p, 3, []models.Selection{sel}))

	require.Len(t, c.Items, 1)
	assert.Equal(t, 5, c.Items[0].Quantity)
	// totals are summed, not recomputed: (10+2)*2 + (10+2)*3
	assert.True(t, c.Items[0].TotalPrice.Equal(money("60.00")), "got %s", c.Items[0].TotalPrice)
	checkAggregates(t, c)
}

func TestAddKeepsDifferentSelectionsApart(t *testing.T) {
	c := &Cart{}
	p := withOption(testProduct("10.00"), "Extras", false, true, "2.00", "3.00")

	require.NoError(t, c.Add(p, 1, []models.Selection{selectItems(p.CustomizationOptions[0], 0)}))
	require.NoError(t, c.Add(p, 1, []models.Selection{selectItems(p.CustomizationOptions[0], 1)}))

	assert.Len(t, c.Items, 2)
	checkAggregates(t, c)
}

func TestAddMergesNoSelectionLines(t *testing.T) {
	c := &Cart{}
	p := testProduct("10.00")

	require.NoError(t, c.Add(p, 1, nil))
	require.NoError(t, c.Add(p, 1, []models.Selection{}))

	assert.Len(t, c.Items, 1)
	assert.Equal(t, 2, c.Items[0].Quantity)
}

func TestAddRejectsZeroQuantity(t *testing.T) {
	c := &Cart{}
	assert.ErrorIs(t, c.Add(testProduct("10.00"), 0, nil), ErrInvalidQuantity)
	assert.Empty(t, c.Items)
}

func TestAddEnforcesRequiredOptions(t *testing.T) {
	single := withOption(testProduct("10.00"), "Size", true, false, "0.00", "5.00")
	multi := withOption(testProduct("10.00"), "Toppings", true, true, "1.00", "2.00")

	c := &Cart{}
	assert.ErrorIs(t, c.Add(single, 1, nil), ErrRequiredOption)
	assert.ErrorIs(t, c.Add(single, 1, []models.Selection{selectItems(single.CustomizationOptions[0], 0, 1)}), ErrRequiredOption)
	assert.NoError(t, c.Add(single, 1, []models.Selection{selectItems(single.CustomizationOptions[0], 0)}))

	c2 := &Cart{}
	assert.ErrorIs(t, c2.Add(multi, 1, nil), ErrRequiredOption)
	assert.NoError(t, c2.Add(multi, 1, []models.Selection{selectItems(multi.CustomizationOptions[0], 0, 1)}))
}

func TestRemoveDropsEveryVariant(t *testing.T) {
	c := &Cart{}
	p := withOption(testProduct("10.00"), "Extras", false, true, "2.00", "3.00")
	other := testProduct("8.00")
	other.RestaurantID = p.RestaurantID

	require.NoError(t, c.Add(p, 1, []models.Selection{selectItems(p.CustomizationOptions[0], 0)}))
	require.NoError(t, c.Add(p, 1, []models.Selection{selectItems(p.CustomizationOptions[0], 1)}))
	require.NoError(t, c.Add(other, 1, nil))

	c.Remove(p.ID)
	require.Len(t, c.Items, 1)
	assert.Equal(t, other.ID, c.Items[0].Product.ID)
	checkAggregates(t, c)
}

func TestRemoveLastItemClearsRestaurantLock(t *testing.T) {
	c := &Cart{}
	p := testProduct("10.00")
	require.NoError(t, c.Add(p, 1, nil))

	c.Remove(p.ID)
	assert.Empty(t, c.Items)
	assert.Nil(t, c.RestaurantID)
	assert.True(t, c.CanAddFromRestaurant(uuid.New()))
}

func TestUpdateQuantityRecomputesTotal(t *testing.T) {
	c := &Cart{}
	p := withOption(testProduct("10.00"), "Extras", false, true, "2.50")
	sel := selectItems(p.CustomizationOptions[0], 0)

	require.NoError(t, c.Add(p, 1, []models.Selection{sel}))
	c.UpdateQuantity(p.ID, 4)

	assert.Equal(t, 4, c.Items[0].Quantity)
	assert.True(t, c.Items[0].TotalPrice.Equal(money("50.00")), "got %s", c.Items[0].TotalPrice)
	checkAggregates(t, c)
}

func TestUpdateQuantityZeroRemoves(t *testing.T) {
	c := &Cart{}
	p := testProduct("10.00")
	require.NoError(t, c.Add(p, 2, nil))

	c.UpdateQuantity(p.ID, 0)
	assert.Empty(t, c.Items)
	assert.Nil(t, c.RestaurantID)
}

func TestUpdateQuantityTouchesFirstVariantOnly(t *testing.T) {
	c := &Cart{}
	p := withOption(testProduct("10.00"), "Extras", false, true, "2.00", "3.00")

	require.NoError(t, c.Add(p, 1, []models.Selection{selectItems(p.CustomizationOptions[0], 0)}))
	require.NoError(t, c.Add(p, 1, []models.Selection{selectItems(p.CustomizationOptions[0], 1)}))

	c.UpdateQuantity(p.ID, 5)
	assert.Equal(t, 5, c.Items[0].Quantity)
	assert.Equal(t, 1, c.Items[1].Quantity)
	checkAggregates(t, c)
}

func TestClear(t *testing.T) {
	c := &Cart{}
	require.NoError(t, c.Add(testProduct("10.00"), 3, nil))

	c.Clear()
	assert.Empty(t, c.Items)
	assert.Nil(t, c.RestaurantID)
	assert.Equal(t, 0, c.TotalItems())
	assert.True(t, c.TotalPrice().IsZero())
}

func TestCanAddFromRestaurant(t *testing.T) {
	c := &Cart{}
	p := testProduct("10.00")

	assert.True(t, c.CanAddFromRestaurant(p.RestaurantID))
	require.NoError(t, c.Add(p, 1, nil))
	assert.True(t, c.CanAddFromRestaurant(p.RestaurantID))
	assert.False(t, c.CanAddFromRestaurant(uuid.New()))
}

func TestCartSnapshotIsolation(t *testing.T) {
	c := &Cart{}
	p := testProduct("10.00")
	promo := money("8.00")
	p.IsPromotion = true
	p.PromotionPrice = &promo

	require.NoError(t, c.Add(p, 1, nil))

	// catalog edits after the add must not change the stored line
	p.Price = money("99.00")
	*p.PromotionPrice = money("99.00")

	line := c.Items[0]
	assert.True(t, line.Product.Price.Equal(money("10.00")))
	assert.True(t, line.Product.PromotionPrice.Equal(money("8.00")))
}
