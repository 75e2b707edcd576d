package domain_test

import (
	"encoding/json"
	"testing"

	"grocerhub/internal/domain"
)

func TestSupplier_UpdateRatingBounds(t *testing.T) {
	s := domain.NewSupplier(1, "FreshFarm", "Ravi", "9812345670", "ravi@freshfarm.in", "Pune", nil)
	if s.Rating != 5.0 {
		t.Fatalf("want default rating 5.0, got %v", s.Rating)
	}
	if !s.UpdateRating(3.5) {
		t.Fatal("in-range rating rejected")
	}
	if s.UpdateRating(5.1) || s.UpdateRating(-0.1) {
		t.Fatal("out-of-range rating accepted")
	}
	if s.Rating != 3.5 {
		t.Fatalf("prior rating not retained, got %v", s.Rating)
	}
}

func TestSupplier_RecordPurchase(t *testing.T) {
	s := domain.NewSupplier(1, "FreshFarm", "Ravi", "9812345670", "ravi@freshfarm.in", "Pune", nil)
	s.RecordPurchase(250)
	s.RecordPurchase(100)
	if s.TotalOrders != 2 || s.TotalAmount != 350 {
		t.Fatalf("want 2 orders / 350 total, got %d / %v", s.TotalOrders, s.TotalAmount)
	}
}

func TestSupplier_DecodeDefaults(t *testing.T) {
	raw := `{"id":2,"name":"GreenGrocer","contact_person":"Meera","phone":"9900112233"}`
	var s domain.Supplier
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		t.Fatal(err)
	}
	if s.Rating != 5.0 {
		t.Fatalf("want default rating 5.0, got %v", s.Rating)
	}
	if s.Status != domain.SupplierActive {
		t.Fatalf("want default status Active, got %q", s.Status)
	}
	if s.ProductsSupplied == nil {
		t.Fatal("ProductsSupplied should decode to an empty slice, not nil")
	}
}

func TestUser_DecodeDefaultsRole(t *testing.T) {
	raw := `{"name":"Asha","phone":"9876543210","password":"pass123"}`
	var u domain.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		t.Fatal(err)
	}
	if u.Role != domain.RoleUser {
		t.Fatalf("want default role user, got %q", u.Role)
	}
	if u.IsAdmin() {
		t.Fatal("defaulted user must not be admin")
	}
}

func TestUser_UpdateProfileSkipsEmpty(t *testing.T) {
	u := domain.User{Name: "Asha", DOB: "01-02-1990", Phone: "9876543210", Location: "Delhi", Password: "pass123"}
	u.UpdateProfile("", "", "Mumbai", "")
	if u.Name != "Asha" || u.DOB != "01-02-1990" || u.Password != "pass123" {
		t.Fatalf("empty fields overwrote values: %+v", u)
	}
	if u.Location != "Mumbai" {
		t.Fatalf("want location Mumbai, got %q", u.Location)
	}
}
