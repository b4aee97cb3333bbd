package domain

// ListPlacement records where on the page an item was added from. It is
// captured on the first add only and kept as-is on repeat adds.
type ListPlacement struct {
	ItemListID   string `json:"item_list_id"`
	ItemListName string `json:"item_list_name"`
	Index        int    `json:"index"`
}

// CartLineItem is one product's entry in a cart: a by-value snapshot of the
// product at the moment it was first added, plus quantity. The list placement
// fields are flat so the item serializes in the dataLayer item shape. At most
// one line item per item_id exists in a cart.
type CartLineItem struct {
	Product
	ItemListID   string `json:"item_list_id,omitempty"`
	ItemListName string `json:"item_list_name,omitempty"`
	Index        *int   `json:"index,omitempty"`
	Quantity     int    `json:"quantity"`
}

// Cart is an ordered sequence of line items, insertion order preserved.
type Cart struct {
	Items []CartLineItem `json:"items"`
}

// CartMutation carries what the page needs to resync after a cart change:
// the affected line item and the new total for the nav counter.
type CartMutation struct {
	Mutated       bool         `json:"mutated"`
	Item          CartLineItem `json:"item"`
	TotalQuantity int          `json:"total_quantity"`
}

// Find returns a pointer into Items for the given item id, or nil.
func (c *Cart) Find(itemID string) *CartLineItem {
	for i := range c.Items {
		if c.Items[i].ItemID == itemID {
			return &c.Items[i]
		}
	}
	return nil
}

// TotalQuantity sums line item quantities. Empty or nil carts count as 0.
func (c *Cart) TotalQuantity() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}
