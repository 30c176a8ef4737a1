// Package menu provides the fixed thali catalog and the order payloads of the
// menu service.
package menu

import "github.com/thalikart/food-order-backend/internal/money"

// Catalog is the read-only menu. It is built once and never written, so
// concurrent readers need no locking.
type Catalog struct {
	items []MenuItem
}

// NewCatalog copies items into a new catalog.
func NewCatalog(items ...MenuItem) *Catalog {
	return &Catalog{items: append([]MenuItem(nil), items...)}
}

// Default is the catalog served by the menu service.
func Default() *Catalog {
	return NewCatalog(
		MenuItem{ID: "1", Name: "Normal Thali", Price: money.New(129), Image: "thaali1.jpg"},
		MenuItem{ID: "2", Name: "Veg Thali", Price: money.New(149), Image: "thaali2.jpg"},
		MenuItem{ID: "3", Name: "Special Thali", Price: money.New(199), Image: "thaali3.jpg"},
		MenuItem{ID: "4", Name: "Special Desi Ghee Desi Thath", Price: money.New(289), Image: "thaali4.jpg"},
	)
}

// Items returns a copy of the catalog rows in their fixed order.
func (c *Catalog) Items() []MenuItem {
	return append(make([]MenuItem, 0, len(c.items)), c.items...)
}
