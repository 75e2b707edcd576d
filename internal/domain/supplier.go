package domain

import (
	"encoding/json"
	"time"
)

const (
	SupplierActive   = "Active"
	SupplierInactive = "Inactive"
)

type Supplier struct {
	ID               int      `json:"id"`
	Name             string   `json:"name"`
	ContactPerson    string   `json:"contact_person"`
	Phone            string   `json:"phone"`
	Email            string   `json:"email"`
	Address          string   `json:"address"`
	ProductsSupplied []string `json:"products_supplied"`
	TotalOrders      int      `json:"total_orders"`
	TotalAmount      float64  `json:"total_amount"`
	Rating           float64  `json:"rating"`
	Status           string   `json:"status"`
	AddedDate        string   `json:"added_date"`
}

func NewSupplier(id int, name, contactPerson, phone, email, address string, products []string) *Supplier {
	if products == nil {
		products = []string{}
	}
	return &Supplier{
		ID:               id,
		Name:             name,
		ContactPerson:    contactPerson,
		Phone:            phone,
		Email:            email,
		Address:          address,
		ProductsSupplied: products,
		Rating:           5.0,
		Status:           SupplierActive,
		AddedDate:        time.Now().Format(OrderDateLayout),
	}
}

func (s *Supplier) Active() bool { return s.Status == SupplierActive }

// UpdateRating applies the new rating if it lies within [0, 5]. Out-of-range
// values are rejected and the prior rating retained.
func (s *Supplier) UpdateRating(rating float64) bool {
	if rating < 0 || rating > 5 {
		return false
	}
	s.Rating = rating
	return true
}

// RecordPurchase folds one purchase order into the running totals.
func (s *Supplier) RecordPurchase(amount float64) {
	s.TotalOrders++
	s.TotalAmount += amount
}

func (s *Supplier) UnmarshalJSON(b []byte) error {
	type alias Supplier
	a := alias{Rating: 5.0, Status: SupplierActive}
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	*s = Supplier(a)
	if s.Status == "" {
		s.Status = SupplierActive
	}
	if s.ProductsSupplied == nil {
		s.ProductsSupplied = []string{}
	}
	return nil
}
