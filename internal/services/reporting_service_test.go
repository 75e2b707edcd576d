package services_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"grocerhub/internal/domain"
	"grocerhub/internal/repos"
	"grocerhub/internal/services"
)

func newReporting(t *testing.T) (*services.ReportingService, *repos.OrderRepo, *repos.ProductRepo, *repos.SupplierRepo) {
	t.Helper()
	store := newStore(t)
	orders := repos.NewOrderRepo(store)
	prods := repos.NewProductRepo(store)
	sups := repos.NewSupplierRepo(store)
	return services.NewReportingService(orders, prods, sups), orders, prods, sups
}

func addOrder(t *testing.T, orders *repos.OrderRepo, id int, phone, name, status string, items ...domain.OrderItem) {
	t.Helper()
	o := domain.NewOrder(id, name, phone)
	o.Status = status
	for _, it := range items {
		o.AddItem(it)
	}
	require.NoError(t, orders.Add(*o))
}

func TestReportingService_SalesSummary(t *testing.T) {
	svc, orders, _, _ := newReporting(t)

	addOrder(t, orders, 1, "9876543210", "Asha", domain.StatusCompleted,
		domain.OrderItem{ProductID: 1, ProductName: "Milk", Quantity: 4, Price: 25}) // 100
	addOrder(t, orders, 2, "9812345670", "Ravi", domain.StatusDelivered,
		domain.OrderItem{ProductID: 2, ProductName: "Bread", Quantity: 5, Price: 40}) // 200
	addOrder(t, orders, 3, "9812345670", "Ravi", domain.StatusCompleted,
		domain.OrderItem{ProductID: 3, ProductName: "Rice", Quantity: 5, Price: 60}) // 300
	addOrder(t, orders, 4, "9876543210", "Asha", domain.StatusPending,
		domain.OrderItem{ProductID: 1, ProductName: "Milk", Quantity: 1, Price: 25})
	addOrder(t, orders, 5, "9876543210", "Asha", domain.StatusCancelled)

	sum := svc.SalesSummary()
	require.Equal(t, 5, sum.TotalOrders)
	require.Equal(t, 3, sum.Completed)
	require.Equal(t, 1, sum.Pending)
	require.Equal(t, 1, sum.Cancelled)
	require.Equal(t, 600.0, sum.Revenue)
	require.Equal(t, 200.0, sum.Average)
	require.Equal(t, 200.0, sum.Median)
	require.Equal(t, 100.0, sum.Min)
	require.Equal(t, 300.0, sum.Max)
}

func TestReportingService_ProductSalesReport(t *testing.T) {
	svc, orders, _, _ := newReporting(t)

	addOrder(t, orders, 1, "9876543210", "Asha", domain.StatusCompleted,
		domain.OrderItem{ProductID: 1, ProductName: "Milk", Quantity: 2, Price: 25},
		domain.OrderItem{ProductID: 2, ProductName: "Bread", Quantity: 5, Price: 40})
	addOrder(t, orders, 2, "9812345670", "Ravi", domain.StatusCompleted,
		domain.OrderItem{ProductID: 1, ProductName: "Milk", Quantity: 1, Price: 25})

	rep := svc.ProductSalesReport()
	require.Len(t, rep, 2)
	require.Equal(t, "Bread", rep[0].Name)
	require.Equal(t, 5, rep[0].Quantity)
	require.Equal(t, "Milk", rep[1].Name)
	require.Equal(t, 3, rep[1].Quantity)
	require.Equal(t, 75.0, rep[1].Revenue)
}

func TestReportingService_RevenueByCategory(t *testing.T) {
	svc, orders, prods, _ := newReporting(t)
	seedProducts(t, prods, domain.Product{ID: 1, Name: "Milk", Category: "Dairy", Quantity: 10, Price: 25})

	addOrder(t, orders, 1, "9876543210", "Asha", domain.StatusCompleted,
		domain.OrderItem{ProductID: 1, ProductName: "Milk", Quantity: 2, Price: 25},
		// product 7 has since been deleted from the catalog
		domain.OrderItem{ProductID: 7, ProductName: "Ghee", Quantity: 1, Price: 90})

	rep := svc.RevenueByCategory()
	require.Equal(t, 50.0, rep["Dairy"])
	require.Equal(t, 90.0, rep["Unknown"])
}

func TestReportingService_CustomerAnalysis(t *testing.T) {
	svc, orders, _, _ := newReporting(t)

	addOrder(t, orders, 1, "9876543210", "Asha", domain.StatusCompleted,
		domain.OrderItem{ProductID: 1, ProductName: "Milk", Quantity: 2, Price: 25})
	addOrder(t, orders, 2, "9812345670", "Ravi", domain.StatusCompleted,
		domain.OrderItem{ProductID: 2, ProductName: "Bread", Quantity: 5, Price: 40})
	addOrder(t, orders, 3, "9876543210", "Asha", domain.StatusPending,
		domain.OrderItem{ProductID: 1, ProductName: "Milk", Quantity: 9, Price: 25})

	rep := svc.CustomerAnalysis()
	require.Len(t, rep, 2)
	require.Equal(t, "Ravi", rep[0].Name)
	require.Equal(t, 200.0, rep[0].TotalSpent)
	require.Equal(t, "Asha", rep[1].Name)
	require.Equal(t, 1, rep[1].Orders)
}

func TestReportingService_SupplierPerformance(t *testing.T) {
	svc, _, _, sups := newReporting(t)

	a := domain.NewSupplier(1, "FreshFarm", "Ravi", "9812345670", "r@f.in", "Pune", nil)
	a.RecordPurchase(500)
	b := domain.NewSupplier(2, "GreenGrocer", "Meera", "9900112233", "m@g.in", "Delhi", nil)
	b.Status = domain.SupplierInactive
	b.RecordPurchase(900)
	for _, s := range []*domain.Supplier{a, b} {
		require.NoError(t, sups.Add(*s))
	}

	rep := svc.SupplierPerformanceReport()
	require.Equal(t, 2, rep.Total)
	require.Equal(t, 1, rep.Active)
	require.Equal(t, 1, rep.Inactive)
	require.Equal(t, "GreenGrocer", rep.Ranked[0].Name)
}
