package domain

// DefaultLowStockThreshold is the stock level below which a product counts as
// low stock unless the caller passes its own threshold.
const DefaultLowStockThreshold = 10

const (
	StockOut      = "OUT_OF_STOCK"
	StockLow      = "LOW_STOCK"
	StockAdequate = "ADEQUATE"
)

type Product struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

func (p *Product) InStock() bool    { return p.Quantity > 0 }
func (p *Product) OutOfStock() bool { return p.Quantity == 0 }

func (p *Product) LowStock(threshold int) bool {
	return p.Quantity > 0 && p.Quantity < threshold
}

// StockStatus classifies quantity against the threshold. It is derived on
// demand and never persisted.
func (p *Product) StockStatus(threshold int) string {
	switch {
	case p.OutOfStock():
		return StockOut
	case p.LowStock(threshold):
		return StockLow
	default:
		return StockAdequate
	}
}

// Restock adds qty units. Non-positive quantities are rejected.
func (p *Product) Restock(qty int) bool {
	if qty <= 0 {
		return false
	}
	p.Quantity += qty
	return true
}

// ReduceStock subtracts qty units if available stock covers them. On a
// shortfall the quantity is left untouched and false is returned; stock is
// never clamped to zero silently.
func (p *Product) ReduceStock(qty int) bool {
	if qty > p.Quantity {
		return false
	}
	p.Quantity -= qty
	return true
}

func (p *Product) InventoryValue() float64 {
	return float64(p.Quantity) * p.Price
}
