package services

import (
	"sort"

	"grocerhub/internal/domain"
	"grocerhub/internal/repos"
)

// ReportingService is pure read-only aggregation over already-stored
// collections. Nothing in here persists anything.
type ReportingService struct {
	Orders *repos.OrderRepo
	Prods  *repos.ProductRepo
	Sups   *repos.SupplierRepo
}

func NewReportingService(orders *repos.OrderRepo, prods *repos.ProductRepo, sups *repos.SupplierRepo) *ReportingService {
	return &ReportingService{Orders: orders, Prods: prods, Sups: sups}
}

type SalesSummary struct {
	TotalOrders int     `json:"total_orders"`
	Completed   int     `json:"completed"`
	Pending     int     `json:"pending"`
	Cancelled   int     `json:"cancelled"`
	Revenue     float64 `json:"revenue"`
	Average     float64 `json:"average"`
	Median      float64 `json:"median"`
	Min         float64 `json:"min"`
	Max         float64 `json:"max"`
}

func (s *ReportingService) SalesSummary() SalesSummary {
	orders := s.Orders.LoadAll()
	sum := SalesSummary{TotalOrders: len(orders)}

	var values []float64
	for _, o := range orders {
		switch {
		case o.Completed():
			sum.Completed++
			values = append(values, o.CalculateTotal())
		case o.Status == domain.StatusPending:
			sum.Pending++
		case o.Status == domain.StatusCancelled:
			sum.Cancelled++
		}
	}
	if len(values) == 0 {
		return sum
	}

	sort.Float64s(values)
	for _, v := range values {
		sum.Revenue += v
	}
	n := len(values)
	sum.Average = sum.Revenue / float64(n)
	sum.Min = values[0]
	sum.Max = values[n-1]
	if n%2 == 1 {
		sum.Median = values[n/2]
	} else {
		sum.Median = (values[n/2-1] + values[n/2]) / 2
	}
	return sum
}

type ProductSales struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

// ProductSalesReport aggregates sold quantity and revenue per product name
// snapshot over revenue-countable orders, best sellers first.
func (s *ReportingService) ProductSalesReport() []ProductSales {
	byName := make(map[string]*ProductSales)
	for _, o := range s.Orders.LoadAll() {
		if !o.Completed() {
			continue
		}
		for _, it := range o.Items {
			ps, ok := byName[it.ProductName]
			if !ok {
				ps = &ProductSales{Name: it.ProductName}
				byName[it.ProductName] = ps
			}
			ps.Quantity += it.Quantity
			ps.Revenue += it.Subtotal()
		}
	}
	out := make([]ProductSales, 0, len(byName))
	for _, ps := range byName {
		out = append(out, *ps)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Quantity > out[j].Quantity })
	return out
}

// RevenueByCategory raises item revenue to the live product's category. An
// item whose product no longer exists lands under "Unknown"; orphaned
// references are tolerated, not fatal.
func (s *ReportingService) RevenueByCategory() map[string]float64 {
	categories := make(map[int]string)
	for _, p := range s.Prods.LoadAll() {
		categories[p.ID] = p.Category
	}

	out := make(map[string]float64)
	for _, o := range s.Orders.LoadAll() {
		if !o.Completed() {
			continue
		}
		for _, it := range o.Items {
			cat, ok := categories[it.ProductID]
			if !ok {
				cat = "Unknown"
			}
			out[cat] += it.Subtotal()
		}
	}
	return out
}

type CustomerStats struct {
	Name       string  `json:"name"`
	Phone      string  `json:"phone"`
	Orders     int     `json:"orders"`
	TotalSpent float64 `json:"total_spent"`
}

// CustomerAnalysis aggregates completed spend per customer phone, biggest
// spenders first.
func (s *ReportingService) CustomerAnalysis() []CustomerStats {
	byPhone := make(map[string]*CustomerStats)
	for _, o := range s.Orders.LoadAll() {
		if !o.Completed() {
			continue
		}
		cs, ok := byPhone[o.CustomerPhone]
		if !ok {
			cs = &CustomerStats{Phone: o.CustomerPhone}
			byPhone[o.CustomerPhone] = cs
		}
		cs.Name = o.CustomerName
		cs.Orders++
		cs.TotalSpent += o.CalculateTotal()
	}
	out := make([]CustomerStats, 0, len(byPhone))
	for _, cs := range byPhone {
		out = append(out, *cs)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].TotalSpent > out[j].TotalSpent })
	return out
}

type SupplierPerformance struct {
	Total    int               `json:"total"`
	Active   int               `json:"active"`
	Inactive int               `json:"inactive"`
	Ranked   []domain.Supplier `json:"ranked"`
}

// SupplierPerformanceReport ranks suppliers by purchase volume.
func (s *ReportingService) SupplierPerformanceReport() SupplierPerformance {
	suppliers := s.Sups.LoadAll()
	rep := SupplierPerformance{Total: len(suppliers), Ranked: suppliers}
	for _, sup := range suppliers {
		if sup.Active() {
			rep.Active++
		} else {
			rep.Inactive++
		}
	}
	sort.SliceStable(rep.Ranked, func(i, j int) bool {
		return rep.Ranked[i].TotalAmount > rep.Ranked[j].TotalAmount
	})
	return rep
}
