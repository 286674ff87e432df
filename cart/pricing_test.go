package cart

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/rafaslide/carddz/models"
)

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testProduct(price string) models.Product {
	return models.Product{
		ID:           uuid.New(),
		RestaurantID: uuid.New(),
		Name:         "X-Burger",
		Price:        money(price),
		IsAvailable:  true,
	}
}

func withOption(p models.Product, name string, required, multi bool, itemPrices ...string) models.Product {
	option := models.CustomizationOption{
		ID:          uuid.New(),
		ProductID:   p.ID,
		Name:        name,
		Required:    required,
		MultiSelect: multi,
	}
	for i, price := range itemPrices {
		option.Items = append(option.Items, models.CustomizationItem{
			ID:       uuid.New(),
			OptionID: option.ID,
			Name:     name + "-" + string(rune('a'+i)),
			Price:    money(price),
		})
	}
	p.CustomizationOptions = append(p.CustomizationOptions, option)
	return p
}

func selectItems(option models.CustomizationOption, indexes ...int) models.Selection {
	sel := models.Selection{OptionID: option.ID}
	for _, i := range indexes {
		sel.SelectedItems = append(sel.SelectedItems, option.Items[i].ID)
	}
	return sel
}

func TestComputeLineTotalBasePrice(t *testing.T) {
	p := testProduct("45.90")
	total := ComputeLineTotal(p, 1, nil)
	assert.True(t, total.Equal(money("45.90")), "got %s", total)
}

func TestComputeLineTotalPromotionPrice(t *testing.T) {
	p := testProduct("45.90")
	promo := money("39.90")
	p.IsPromotion = true
	p.PromotionPrice = &promo

	total := ComputeLineTotal(p, 1, nil)
	assert.True(t, total.Equal(promo), "got %s", total)
}

func TestComputeLineTotalPromotionFlagWithoutPrice(t *testing.T) {
	p := testProduct("45.90")
	p.IsPromotion = true

	total := ComputeLineTotal(p, 1, nil)
	assert.True(t, total.Equal(money("45.90")), "got %s", total)
}

func TestComputeLineTotalScalesWithQuantity(t *testing.T) {
	p := withOption(testProduct("10.00"), "Extras", false, true, "2.50", "1.25")
	sel := selectItems(p.CustomizationOptions[0], 0, 1)

	one := ComputeLineTotal(p, 1, []models.Selection{sel})
	for _, q := range []int{1, 2, 3, 7} {
		got := ComputeLineTotal(p, q, []models.Selection{sel})
		want := one.Mul(decimal.NewFromInt(int64(q)))
		assert.True(t, got.Equal(want), "quantity %d: got %s want %s", q, got, want)
	}
}

func TestComputeLineTotalAddsSelectedDeltas(t *testing.T) {
	p := withOption(testProduct("20.00"), "Size", true, false, "0.00", "5.00")
	p = withOption(p, "Extras", false, true, "3.50", "2.00")

	sels := []models.Selection{
		selectItems(p.CustomizationOptions[0], 1),
		selectItems(p.CustomizationOptions[1], 0, 1),
	}
	total := ComputeLineTotal(p, 2, sels)
	// (20.00 + 5.00 + 3.50 + 2.00) * 2
	assert.True(t, total.Equal(money("61.00")), "got %s", total)
}

func TestComputeLineTotalIgnoresUnknownIDs(t *testing.T) {
	p := withOption(testProduct("15.00"), "Extras", false, true, "4.00")

	base := ComputeLineTotal(p, 1, nil)

	staleOption := []models.Selection{{
		OptionID:      uuid.New(),
		SelectedItems: []uuid.UUID{uuid.New()},
	}}
	assert.True(t, ComputeLineTotal(p, 1, staleOption).Equal(base))

	staleItem := []models.Selection{{
		OptionID:      p.CustomizationOptions[0].ID,
		SelectedItems: []uuid.UUID{uuid.New()},
	}}
	assert.True(t, ComputeLineTotal(p, 1, staleItem).Equal(base))
}
