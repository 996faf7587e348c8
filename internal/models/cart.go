package models

import "sort"

// PriceLookup resolves a dish ID to its current catalog price. The second
// return value is false when the dish is no longer in the catalog.
type PriceLookup func(dishID string) (float64, bool)

// CartItem is the projection of one cart entry for order creation
type CartItem struct {
	DishID   string `json:"dish_id"`
	Quantity int    `json:"quantity"`
}

// Cart maps dish IDs to requested quantities. Quantities are always
// positive: an Add that would bring an entry to zero or below removes it.
type Cart map[string]int

// Add increments the quantity for dishID by delta. Delta may be negative.
func (c Cart) Add(dishID string, delta int) {
	qty := c[dishID] + delta
	if qty <= 0 {
		delete(c, dishID)
		return
	}
	c[dishID] = qty
}

// LineTotal returns quantity times the live catalog price. Dishes missing
// from the catalog contribute 0.
func (c Cart) LineTotal(dishID string, prices PriceLookup) float64 {
	qty, ok := c[dishID]
	if !ok {
		return 0
	}
	price, ok := prices(dishID)
	if !ok {
		return 0
	}
	return float64(qty) * price
}

// GrandTotal sums the line totals over all cart entries
func (c Cart) GrandTotal(prices PriceLookup) float64 {
	total := 0.0
	for dishID := range c {
		total += c.LineTotal(dishID, prices)
	}
	return total
}

// Items projects the cart into order-item pairs, sorted by dish ID so the
// output is deterministic.
func (c Cart) Items() []CartItem {
	items := make([]CartItem, 0, len(c))
	for dishID, qty := range c {
		items = append(items, CartItem{DishID: dishID, Quantity: qty})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].DishID < items[j].DishID })
	return items
}
