package cart

import (
	"github.com/encuotas/storefront-backend/pkg/db/models"
	"github.com/shopspring/decimal"
)

// SchemaVersion tags persisted cart snapshots. Snapshots carrying a
// different version are discarded and replaced by an empty cart.
const SchemaVersion = 1

// Item is one cart line. Product fields are snapshotted at add time so the
// cart stays renderable even if the catalog row changes underneath it.
type Item struct {
	ProductID    string              `json:"product_id"`
	Name         string              `json:"name"`
	Price        decimal.Decimal     `json:"price"`
	Brand        string              `json:"brand"`
	Seller       string              `json:"seller"`
	Image        string              `json:"image,omitempty"`
	Installments models.Installments `json:"installments"`
	Quantity     int                 `json:"quantity"`
}

// Cart holds the session's lines plus derived aggregates. Aggregates are
// never read back from storage; they are recomputed on every transition and
// on load.
type Cart struct {
	Items       []Item          `json:"items"`
	TotalItems  int             `json:"total_items"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// Empty returns a cart with no lines and zeroed aggregates.
func Empty() Cart {
	return Cart{Items: []Item{}, TotalAmount: decimal.Zero}
}

func recompute(c Cart) Cart {
	totalItems := 0
	total := decimal.Zero
	for _, item := range c.Items {
		totalItems += item.Quantity
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	c.TotalItems = totalItems
	c.TotalAmount = total
	return c
}

// AddItem increments the quantity of an existing line or appends a new line
// with quantity 1. Stock is not checked here; the catalog stays authoritative
// for availability messaging only.
func AddItem(c Cart, item Item) Cart {
	next := cloneItems(c)
	found := false
	for i := range next.Items {
		if next.Items[i].ProductID == item.ProductID {
			next.Items[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		item.Quantity = 1
		next.Items = append(next.Items, item)
	}
	return recompute(next)
}

// RemoveItem drops the line for productID. Removing an absent product is a
// no-op.
func RemoveItem(c Cart, productID string) Cart {
	next := cloneItems(c)
	filtered := next.Items[:0]
	for _, item := range next.Items {
		if item.ProductID != productID {
			filtered = append(filtered, item)
		}
	}
	next.Items = filtered
	return recompute(next)
}

// UpdateQuantity sets the quantity for productID. Values below one remove the
// line; updating an absent product is a no-op.
func UpdateQuantity(c Cart, productID string, quantity int) Cart {
	if quantity < 1 {
		return RemoveItem(c, productID)
	}
	next := cloneItems(c)
	for i := range next.Items {
		if next.Items[i].ProductID == productID {
			next.Items[i].Quantity = quantity
			break
		}
	}
	return recompute(next)
}

// Clear empties the cart.
func Clear(Cart) Cart {
	return Empty()
}

// Load rebuilds a cart from restored lines, dropping non-positive quantities
// and recomputing the aggregates from scratch.
func Load(items []Item) Cart {
	kept := make([]Item, 0, len(items))
	for _, item := range items {
		if item.Quantity > 0 {
			kept = append(kept, item)
		}
	}
	return recompute(Cart{Items: kept})
}

func cloneItems(c Cart) Cart {
	items := make([]Item, len(c.Items))
	copy(items, c.Items)
	c.Items = items
	return c
}
