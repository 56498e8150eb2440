// Package pricing is the single authority for booking amounts. Both booking
// creation and checkout-session creation quote through here, so the stored
// price and the charged amount cannot drift apart.
package pricing

import (
	"strings"

	"eventora_backend/internal/models"
)

// Addon is a fixed-price enhancement selectable at booking time.
type Addon struct {
	Name  string
	Price int
}

// Coupon applies either a percentage or a flat discount, never both.
type Coupon struct {
	Code    string
	Percent int
	Flat    int
}

// The add-on catalog is fixed; prices are whole currency units.
var addonRegistry = []Addon{
	{Name: "Extra Floral Arrangements", Price: 100},
	{Name: "Premium Lighting Setup", Price: 150},
	{Name: "Live Music / DJ", Price: 300},
	{Name: "Drone Photography", Price: 200},
}

var couponRegistry = map[string]Coupon{
	"SAVE10":  {Code: "SAVE10", Percent: 10},
	"STYLE20": {Code: "STYLE20", Percent: 20},
	"FIRST50": {Code: "FIRST50", Flat: 50},
	"Z4CODE":  {Code: "Z4CODE", Percent: 10},
}

// Quote is a server-computed price breakdown.
type Quote struct {
	Subtotal int
	Discount int
	Total    int
	Addons   []models.BookingAddon
	Coupon   string
}

// Addons returns the fixed add-on catalog.
func Addons() []Addon {
	out := make([]Addon, len(addonRegistry))
	copy(out, addonRegistry)
	return out
}

// LookupAddon finds an add-on by name. Matching is exact.
func LookupAddon(name string) (Addon, bool) {
	for _, a := range addonRegistry {
		if a.Name == name {
			return a, true
		}
	}
	return Addon{}, false
}

// LookupCoupon resolves a coupon code. Codes are case-insensitive; an
// unrecognized code is reported via ok=false and yields zero discount.
func LookupCoupon(code string) (Coupon, bool) {
	c, ok := couponRegistry[strings.ToUpper(strings.TrimSpace(code))]
	return c, ok
}

// Compute builds the authoritative quote for a booking: the service's stored
// base cost plus the registry prices of the selected add-ons, minus the coupon
// discount. Add-on names outside the registry are rejected. Unknown coupon
// codes are treated as no coupon. A flat discount never pushes the total
// below zero.
func Compute(baseCost int, addonNames []string, couponCode string) (*Quote, error) {
	q := &Quote{Subtotal: baseCost}

	for _, name := range addonNames {
		addon, ok := LookupAddon(name)
		if !ok {
			return nil, ErrUnknownAddon
		}
		q.Subtotal += addon.Price
		q.Addons = append(q.Addons, models.BookingAddon{Name: addon.Name, Price: addon.Price})
	}

	if couponCode != "" {
		if coupon, ok := LookupCoupon(couponCode); ok {
			q.Coupon = coupon.Code
			if coupon.Percent > 0 {
				q.Discount = q.Subtotal * coupon.Percent / 100
			} else {
				q.Discount = coupon.Flat
			}
			if q.Discount > q.Subtotal {
				q.Discount = q.Subtotal
			}
		}
	}

	q.Total = q.Subtotal - q.Discount
	return q, nil
}
