package services_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"grocerhub/internal/domain"
	"grocerhub/internal/repos"
	"grocerhub/internal/services"
)

func TestInventoryService_StockStatusReport(t *testing.T) {
	store := newStore(t)
	prods := repos.NewProductRepo(store)
	seedProducts(t, prods,
		domain.Product{ID: 1, Name: "Milk", Quantity: 0, Price: 25},
		domain.Product{ID: 2, Name: "Bread", Quantity: 4, Price: 40},
		domain.Product{ID: 3, Name: "Rice", Quantity: 50, Price: 60},
	)
	svc := services.NewInventoryService(prods, repos.NewOrderRepo(store), 10)

	rep := svc.StockStatusReport(0)
	require.Len(t, rep.OutOfStock, 1)
	require.Len(t, rep.LowStock, 1)
	require.Len(t, rep.Adequate, 1)
	require.Equal(t, "Milk", rep.OutOfStock[0].Name)
	require.Equal(t, "Bread", rep.LowStock[0].Name)

	// a caller-supplied threshold reclassifies
	rep = svc.StockStatusReport(60)
	require.Len(t, rep.LowStock, 2)
	require.Empty(t, rep.Adequate)
}

func TestInventoryService_RestockPersists(t *testing.T) {
	store := newStore(t)
	prods := repos.NewProductRepo(store)
	seedProducts(t, prods, domain.Product{ID: 1, Name: "Milk", Quantity: 2, Price: 25})
	svc := services.NewInventoryService(prods, repos.NewOrderRepo(store), 10)

	p, err := svc.Restock(1, 8)
	require.NoError(t, err)
	require.Equal(t, 10, p.Quantity)

	stored, _ := prods.FindByID(1)
	require.Equal(t, 10, stored.Quantity)

	_, err = svc.Restock(1, 0)
	require.ErrorIs(t, err, services.ErrInvalidPurchase)
	_, err = svc.Restock(99, 5)
	require.ErrorIs(t, err, services.ErrNotFound)
}

func TestInventoryService_BulkRestock(t *testing.T) {
	store := newStore(t)
	prods := repos.NewProductRepo(store)
	seedProducts(t, prods,
		domain.Product{ID: 1, Name: "Milk", Quantity: 2},
		domain.Product{ID: 2, Name: "Bread", Quantity: 3},
	)
	svc := services.NewInventoryService(prods, repos.NewOrderRepo(store), 10)

	applied, err := svc.BulkRestock(map[int]int{1: 5, 2: -1, 99: 4})
	require.NoError(t, err)
	require.Equal(t, 1, applied)

	milk, _ := prods.FindByID(1)
	bread, _ := prods.FindByID(2)
	require.Equal(t, 7, milk.Quantity)
	require.Equal(t, 3, bread.Quantity)
}

func TestInventoryService_InventoryValue(t *testing.T) {
	store := newStore(t)
	prods := repos.NewProductRepo(store)
	seedProducts(t, prods,
		domain.Product{ID: 1, Name: "Milk", Quantity: 4, Price: 25},  // 100
		domain.Product{ID: 2, Name: "Bread", Quantity: 5, Price: 40}, // 200
	)
	svc := services.NewInventoryService(prods, repos.NewOrderRepo(store), 10)

	stats := svc.InventoryValue()
	require.Equal(t, 300.0, stats.Total)
	require.Equal(t, 150.0, stats.Mean)
	require.Equal(t, 100.0, stats.Min)
	require.Equal(t, 200.0, stats.Max)
	require.Len(t, stats.PerProduct, 2)
}

func TestInventoryService_TurnoverReport(t *testing.T) {
	store := newStore(t)
	prods := repos.NewProductRepo(store)
	orders := repos.NewOrderRepo(store)
	seedProducts(t, prods,
		domain.Product{ID: 1, Name: "Milk", Quantity: 10},
		domain.Product{ID: 2, Name: "Bread", Quantity: 0},
		domain.Product{ID: 3, Name: "Rice", Quantity: 5},
	)

	o := domain.NewOrder(1, "Asha", "9876543210")
	o.Status = domain.StatusCompleted
	o.AddItem(domain.OrderItem{ProductID: 1, ProductName: "Milk", Quantity: 5, Price: 25})
	o.AddItem(domain.OrderItem{ProductID: 2, ProductName: "Bread", Quantity: 3, Price: 40})
	require.NoError(t, orders.Add(*o))

	// pending orders never count as sales
	p := domain.NewOrder(2, "Ravi", "9812345670")
	p.AddItem(domain.OrderItem{ProductID: 3, ProductName: "Rice", Quantity: 4, Price: 60})
	require.NoError(t, orders.Add(*p))

	svc := services.NewInventoryService(prods, orders, 10)
	rep := svc.TurnoverReport()
	require.Len(t, rep, 3)

	// bread: sold 3 with zero stock, rate is the raw sold count
	require.Equal(t, "Bread", rep[0].Name)
	require.Equal(t, 3.0, rep[0].Rate)
	// milk: 5 sold / 10 in stock
	require.Equal(t, "Milk", rep[1].Name)
	require.Equal(t, 0.5, rep[1].Rate)
	// rice: no countable sales
	require.Equal(t, "Rice", rep[2].Name)
	require.Zero(t, rep[2].Rate)
}

func TestInventoryService_StockForecast(t *testing.T) {
	store := newStore(t)
	prods := repos.NewProductRepo(store)
	orders := repos.NewOrderRepo(store)
	seedProducts(t, prods,
		domain.Product{ID: 1, Name: "Milk", Quantity: 10},
		domain.Product{ID: 2, Name: "Bread", Quantity: 7},
	)

	for i, qty := range []int{2, 3} {
		o := domain.NewOrder(i+1, "Asha", "9876543210")
		o.Status = domain.StatusCompleted
		o.AddItem(domain.OrderItem{ProductID: 1, ProductName: "Milk", Quantity: qty, Price: 25})
		require.NoError(t, orders.Add(*o))
	}

	svc := services.NewInventoryService(prods, orders, 10)
	fc := svc.StockForecast()
	require.Len(t, fc, 2)

	// milk averages 2.5 per order, 10 in stock -> 4 days, most urgent first
	require.Equal(t, "Milk", fc[0].Name)
	require.True(t, fc[0].Known)
	require.Equal(t, 2.5, fc[0].AvgPerOrder)
	require.Equal(t, 4.0, fc[0].Days)

	// bread has no history: no forecast, which is distinct from zero days
	require.Equal(t, "Bread", fc[1].Name)
	require.False(t, fc[1].Known)
}
