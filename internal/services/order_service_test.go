package services_test

import (
	"errors"
	"testing"

	"grocerhub/internal/domain"
	"grocerhub/internal/repos"
	"grocerhub/internal/services"
)

func seedOrder(t *testing.T, orders *repos.OrderRepo, id int, status string, total float64) {
	t.Helper()
	o := domain.NewOrder(id, "Asha", "9876543210")
	o.Status = status
	o.AddItem(domain.OrderItem{ProductID: 1, ProductName: "Milk", Quantity: 1, Price: total})
	if err := orders.Add(*o); err != nil {
		t.Fatal(err)
	}
}

func TestOrderService_RevenueCountsCompletedOnly(t *testing.T) {
	store := newStore(t)
	orders := repos.NewOrderRepo(store)
	svc := services.NewOrderService(orders)

	seedOrder(t, orders, 1, domain.StatusCompleted, 100)
	seedOrder(t, orders, 2, domain.StatusDelivered, 300)
	seedOrder(t, orders, 3, domain.StatusPending, 500)
	seedOrder(t, orders, 4, domain.StatusCancelled, 700)

	rev := svc.Revenue()
	if rev.Orders != 2 {
		t.Fatalf("want 2 revenue orders, got %d", rev.Orders)
	}
	if rev.Total != 400 || rev.Average != 200 {
		t.Fatalf("want total=400 average=200, got %+v", rev)
	}
}

func TestOrderService_UpdateStatus(t *testing.T) {
	store := newStore(t)
	orders := repos.NewOrderRepo(store)
	svc := services.NewOrderService(orders)
	seedOrder(t, orders, 1, domain.StatusPending, 50)

	if err := svc.UpdateStatus(1, domain.StatusShipped); err != nil {
		t.Fatal(err)
	}
	if o, _ := orders.FindByID(1); o.Status != domain.StatusShipped {
		t.Fatalf("status not persisted: %q", o.Status)
	}

	if err := svc.UpdateStatus(1, "Lost"); !errors.Is(err, services.ErrInvalidStatus) {
		t.Fatalf("want ErrInvalidStatus, got %v", err)
	}
	if o, _ := orders.FindByID(1); o.Status != domain.StatusShipped {
		t.Fatalf("prior status not retained: %q", o.Status)
	}

	if err := svc.UpdateStatus(99, domain.StatusShipped); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestOrderService_FilterByStatus(t *testing.T) {
	store := newStore(t)
	orders := repos.NewOrderRepo(store)
	svc := services.NewOrderService(orders)
	seedOrder(t, orders, 1, domain.StatusPending, 50)
	seedOrder(t, orders, 2, domain.StatusCompleted, 80)

	got, err := svc.OrdersByStatus(domain.StatusPending)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].OrderID != 1 {
		t.Fatalf("bad filter result: %+v", got)
	}

	if _, err := svc.OrdersByStatus("Imaginary"); !errors.Is(err, services.ErrInvalidStatus) {
		t.Fatalf("want ErrInvalidStatus, got %v", err)
	}
}

func TestOrderService_DeleteOrder(t *testing.T) {
	store := newStore(t)
	orders := repos.NewOrderRepo(store)
	svc := services.NewOrderService(orders)
	seedOrder(t, orders, 1, domain.StatusPending, 50)

	if err := svc.DeleteOrder(1); err != nil {
		t.Fatal(err)
	}
	if err := svc.DeleteOrder(1); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("want ErrNotFound on second delete, got %v", err)
	}
}
