package services

import (
	"sort"

	"grocerhub/internal/domain"
	"grocerhub/internal/repos"
)

// InventoryService covers stock maintenance and the read-only analytics over
// products and orders: status classification, value, turnover and forecast.
type InventoryService struct {
	Prods     *repos.ProductRepo
	Orders    *repos.OrderRepo
	Threshold int
}

func NewInventoryService(prods *repos.ProductRepo, orders *repos.OrderRepo, threshold int) *InventoryService {
	if threshold <= 0 {
		threshold = domain.DefaultLowStockThreshold
	}
	return &InventoryService{Prods: prods, Orders: orders, Threshold: threshold}
}

type StockReport struct {
	OutOfStock []domain.Product `json:"out_of_stock"`
	LowStock   []domain.Product `json:"low_stock"`
	Adequate   []domain.Product `json:"adequate"`
}

// StockStatusReport buckets every product by its stock status. A threshold
// of zero or less falls back to the service default.
func (s *InventoryService) StockStatusReport(threshold int) StockReport {
	if threshold <= 0 {
		threshold = s.Threshold
	}
	var rep StockReport
	for _, p := range s.Prods.LoadAll() {
		switch p.StockStatus(threshold) {
		case domain.StockOut:
			rep.OutOfStock = append(rep.OutOfStock, p)
		case domain.StockLow:
			rep.LowStock = append(rep.LowStock, p)
		default:
			rep.Adequate = append(rep.Adequate, p)
		}
	}
	return rep
}

// Restock adds qty units to a product and persists the new level.
func (s *InventoryService) Restock(productID, qty int) (domain.Product, error) {
	p, ok := s.Prods.FindByID(productID)
	if !ok {
		return domain.Product{}, ErrNotFound
	}
	if !p.Restock(qty) {
		return domain.Product{}, ErrInvalidPurchase
	}
	if _, err := s.Prods.Update(p); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

// BulkRestock applies multiple restocks in one load-save cycle. Unknown IDs
// and non-positive quantities are skipped; the number of applied restocks is
// returned.
func (s *InventoryService) BulkRestock(quantities map[int]int) (int, error) {
	products := s.Prods.LoadAll()
	applied := 0
	for i := range products {
		if qty, ok := quantities[products[i].ID]; ok && products[i].Restock(qty) {
			applied++
		}
	}
	if applied == 0 {
		return 0, nil
	}
	return applied, s.Prods.SaveAll(products)
}

type ProductValue struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type ValueStats struct {
	PerProduct []ProductValue `json:"per_product"`
	Total      float64        `json:"total"`
	Mean       float64        `json:"mean"`
	Min        float64        `json:"min"`
	Max        float64        `json:"max"`
}

// InventoryValue computes quantity*price per product plus aggregate stats.
func (s *InventoryService) InventoryValue() ValueStats {
	products := s.Prods.LoadAll()
	var stats ValueStats
	for i, p := range products {
		v := p.InventoryValue()
		stats.PerProduct = append(stats.PerProduct, ProductValue{Name: p.Name, Value: v})
		stats.Total += v
		if i == 0 || v < stats.Min {
			stats.Min = v
		}
		if v > stats.Max {
			stats.Max = v
		}
	}
	if n := len(products); n > 0 {
		stats.Mean = stats.Total / float64(n)
	}
	return stats
}

type Turnover struct {
	ProductID int     `json:"product_id"`
	Name      string  `json:"name"`
	Sold      int     `json:"sold"`
	Stock     int     `json:"stock"`
	Rate      float64 `json:"rate"`
}

// TurnoverReport computes units sold (from revenue-countable orders) over
// current stock for every product, fastest movers first. With zero stock the
// rate is the raw units sold; with no sales and no stock it is zero.
func (s *InventoryService) TurnoverReport() []Turnover {
	sold := s.unitsSold()
	var out []Turnover
	for _, p := range s.Prods.LoadAll() {
		t := Turnover{ProductID: p.ID, Name: p.Name, Sold: sold[p.ID], Stock: p.Quantity}
		if p.Quantity > 0 {
			t.Rate = float64(t.Sold) / float64(p.Quantity)
		} else {
			t.Rate = float64(t.Sold)
		}
		out = append(out, t)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Rate > out[j].Rate })
	return out
}

type Forecast struct {
	ProductID   int     `json:"product_id"`
	Name        string  `json:"name"`
	Stock       int     `json:"stock"`
	AvgPerOrder float64 `json:"avg_per_order"`
	// Days until stockout at the historical rate. Only meaningful when
	// Known is true; a product with no sales history has no forecast,
	// which is not the same as zero days.
	Days  float64 `json:"days"`
	Known bool    `json:"known"`
}

// StockForecast estimates days until stockout as current stock over the mean
// per-order quantity sold historically, most urgent first.
func (s *InventoryService) StockForecast() []Forecast {
	perOrder := make(map[int][]int)
	for _, o := range s.Orders.LoadAll() {
		if !o.Completed() {
			continue
		}
		for _, it := range o.Items {
			perOrder[it.ProductID] = append(perOrder[it.ProductID], it.Quantity)
		}
	}

	var out []Forecast
	for _, p := range s.Prods.LoadAll() {
		f := Forecast{ProductID: p.ID, Name: p.Name, Stock: p.Quantity}
		if qs := perOrder[p.ID]; len(qs) > 0 {
			sum := 0
			for _, q := range qs {
				sum += q
			}
			f.AvgPerOrder = float64(sum) / float64(len(qs))
			f.Known = true
			if f.AvgPerOrder > 0 && p.Quantity > 0 {
				f.Days = float64(p.Quantity) / f.AvgPerOrder
			}
		}
		out = append(out, f)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Known != out[j].Known {
			return out[i].Known
		}
		return out[i].Days < out[j].Days
	})
	return out
}

func (s *InventoryService) unitsSold() map[int]int {
	sold := make(map[int]int)
	for _, o := range s.Orders.LoadAll() {
		if !o.Completed() {
			continue
		}
		for _, it := range o.Items {
			sold[it.ProductID] += it.Quantity
		}
	}
	return sold
}
