package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute_BaseCostOnly(t *testing.T) {
	q, err := Compute(500, nil, "")
	require.NoError(t, err)

	assert.Equal(t, 500, q.Subtotal)
	assert.Equal(t, 0, q.Discount)
	assert.Equal(t, 500, q.Total)
	assert.Empty(t, q.Addons)
}

func TestCompute_AddonsAreRegistryPriced(t *testing.T) {
	q, err := Compute(1000, []string{"Premium Lighting Setup", "Drone Photography"}, "")
	require.NoError(t, err)

	assert.Equal(t, 1350, q.Subtotal)
	assert.Equal(t, 1350, q.Total)
	require.Len(t, q.Addons, 2)
	assert.Equal(t, "Premium Lighting Setup", q.Addons[0].Name)
	assert.Equal(t, 150, q.Addons[0].Price)
}

func TestCompute_UnknownAddonRejected(t *testing.T) {
	_, err := Compute(1000, []string{"Fireworks Display"}, "")
	assert.ErrorIs(t, err, ErrUnknownAddon)
}

func TestCompute_CouponDiscounts(t *testing.T) {
	tests := []struct {
		name         string
		coupon       string
		wantDiscount int
	}{
		{"percent coupon SAVE10", "SAVE10", 100},
		{"percent coupon STYLE20", "STYLE20", 200},
		{"percent coupon Z4CODE", "Z4CODE", 100},
		{"flat coupon FIRST50", "FIRST50", 50},
		{"lowercase code accepted", "save10", 100},
		{"unknown code means no discount", "NOPE99", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := Compute(1000, nil, tt.coupon)
			require.NoError(t, err)

			assert.Equal(t, tt.wantDiscount, q.Discount)
			assert.Equal(t, 1000-tt.wantDiscount, q.Total)
		})
	}
}

func TestCompute_FlatDiscountFloorsAtZero(t *testing.T) {
	q, err := Compute(30, nil, "FIRST50")
	require.NoError(t, err)

	assert.Equal(t, 30, q.Discount)
	assert.Equal(t, 0, q.Total)
}

func TestCompute_DiscountAppliesToAddonsToo(t *testing.T) {
	// 1000 base + 300 DJ = 1300, SAVE10 takes 130.
	q, err := Compute(1000, []string{"Live Music / DJ"}, "SAVE10")
	require.NoError(t, err)

	assert.Equal(t, 1300, q.Subtotal)
	assert.Equal(t, 130, q.Discount)
	assert.Equal(t, 1170, q.Total)
}

func TestLookupCoupon_TrimsAndUppercases(t *testing.T) {
	c, ok := LookupCoupon("  style20 ")
	require.True(t, ok)
	assert.Equal(t, "STYLE20", c.Code)
	assert.Equal(t, 20, c.Percent)
}

func TestAddons_ReturnsFixedCatalog(t *testing.T) {
	addons := Addons()
	require.Len(t, addons, 4)

	_, ok := LookupAddon("Extra Floral Arrangements")
	assert.True(t, ok)
}
