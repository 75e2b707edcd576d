package domain_test

import (
	"encoding/json"
	"strings"
	"testing"

	"grocerhub/internal/domain"
)

func TestOrder_CalculateTotal(t *testing.T) {
	o := domain.NewOrder(1, "Asha", "9876543210")
	o.AddItem(domain.OrderItem{ProductID: 1, ProductName: "Milk", Quantity: 2, Price: 25})
	o.AddItem(domain.OrderItem{ProductID: 2, ProductName: "Bread", Quantity: 1, Price: 40})

	if got := o.CalculateTotal(); got != 90 {
		t.Fatalf("want total=90, got %v", got)
	}
}

func TestOrder_MarshalIncludesDerived(t *testing.T) {
	o := domain.NewOrder(7, "Asha", "9876543210")
	o.AddItem(domain.OrderItem{ProductID: 1, ProductName: "Milk", Quantity: 3, Price: 10})

	b, err := json.Marshal(o)
	if err != nil {
		t.Fatal(err)
	}
	s := string(b)
	if !strings.Contains(s, `"total_amount":30`) {
		t.Fatalf("total_amount missing from %s", s)
	}
	if !strings.Contains(s, `"subtotal":30`) {
		t.Fatalf("item subtotal missing from %s", s)
	}
}

func TestOrder_StoredTotalNeverTrusted(t *testing.T) {
	// A doctored total_amount on disk must not survive a reload; the total
	// is always recomputed from the items.
	raw := `{"order_id":3,"customer_name":"Asha","customer_phone":"9876543210",
		"items":[{"product_id":1,"product_name":"Milk","quantity":2,"price":25}],
		"order_date":"2024-01-01 10:00:00","status":"Completed","total_amount":9999}`

	var o domain.Order
	if err := json.Unmarshal([]byte(raw), &o); err != nil {
		t.Fatal(err)
	}
	if got := o.CalculateTotal(); got != 50 {
		t.Fatalf("want recomputed total=50, got %v", got)
	}
}

func TestOrder_DecodeDefaultsStatus(t *testing.T) {
	raw := `{"order_id":4,"customer_name":"Asha","customer_phone":"9876543210","items":[]}`
	var o domain.Order
	if err := json.Unmarshal([]byte(raw), &o); err != nil {
		t.Fatal(err)
	}
	if o.Status != domain.StatusPending {
		t.Fatalf("want default status Pending, got %q", o.Status)
	}
}

func TestOrder_UpdateStatusRejectsUnknown(t *testing.T) {
	o := domain.NewOrder(1, "Asha", "9876543210")
	if !o.UpdateStatus(domain.StatusShipped) {
		t.Fatal("valid status rejected")
	}
	if o.UpdateStatus("Teleported") {
		t.Fatal("unknown status accepted")
	}
	if o.Status != domain.StatusShipped {
		t.Fatalf("prior status not retained, got %q", o.Status)
	}
}

func TestOrder_CompletedCoversDelivered(t *testing.T) {
	o := domain.NewOrder(1, "Asha", "9876543210")
	for status, want := range map[string]bool{
		domain.StatusPending:    false,
		domain.StatusProcessing: false,
		domain.StatusShipped:    false,
		domain.StatusCancelled:  false,
		domain.StatusDelivered:  true,
		domain.StatusCompleted:  true,
	} {
		o.Status = status
		if o.Completed() != want {
			t.Fatalf("status %q: want Completed()=%v", status, want)
		}
	}
}
