package domain

// CartItem is one line in a shopping cart. Name and Price mirror the product
// at the time of the first add; quantity accumulates on repeated adds.
type CartItem struct {
	ProductID int     `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Qty       int     `json:"qty"`
}

func (i CartItem) Subtotal() float64 { return i.Price * float64(i.Qty) }

// ShoppingCart lives only in memory for the duration of a shopping session.
// It is consumed into an Order at checkout and never persisted itself.
type ShoppingCart struct {
	Items []CartItem `json:"items"`
}

// AddItem merges qty into an existing line for the product or appends a new
// line, keyed by product ID.
func (c *ShoppingCart) AddItem(p Product, qty int) {
	for i := range c.Items {
		if c.Items[i].ProductID == p.ID {
			c.Items[i].Qty += qty
			return
		}
	}
	c.Items = append(c.Items, CartItem{ProductID: p.ID, Name: p.Name, Price: p.Price, Qty: qty})
}

func (c *ShoppingCart) RemoveItem(productID int) {
	kept := c.Items[:0]
	for _, it := range c.Items {
		if it.ProductID != productID {
			kept = append(kept, it)
		}
	}
	c.Items = kept
}

func (c *ShoppingCart) Total() float64 {
	total := 0.0
	for _, it := range c.Items {
		total += it.Subtotal()
	}
	return total
}

func (c *ShoppingCart) ItemCount() int {
	n := 0
	for _, it := range c.Items {
		n += it.Qty
	}
	return n
}

func (c *ShoppingCart) Empty() bool { return len(c.Items) == 0 }

func (c *ShoppingCart) Clear() { c.Items = nil }
