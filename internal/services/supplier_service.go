package services

import (
	"grocerhub/internal/domain"
	"grocerhub/internal/repos"
)

type SupplierService struct {
	Sups  *repos.SupplierRepo
	Prods *repos.ProductRepo
}

func NewSupplierService(sups *repos.SupplierRepo, prods *repos.ProductRepo) *SupplierService {
	return &SupplierService{Sups: sups, Prods: prods}
}

// AddSupplier registers a supplier. Phone numbers must be unique across
// suppliers; a duplicate leaves the collection unchanged.
func (s *SupplierService) AddSupplier(name, contactPerson, phone, email, address string, products []string) (domain.Supplier, error) {
	if _, ok := s.Sups.FindByPhone(phone); ok {
		return domain.Supplier{}, ErrDuplicatePhone
	}
	sup := domain.NewSupplier(s.Sups.NextID(), name, contactPerson, phone, email, address, products)
	if err := s.Sups.Add(*sup); err != nil {
		return domain.Supplier{}, err
	}
	return *sup, nil
}

func (s *SupplierService) ListSuppliers() []domain.Supplier {
	return s.Sups.LoadAll()
}

func (s *SupplierService) GetSupplier(id int) (domain.Supplier, error) {
	sup, ok := s.Sups.FindByID(id)
	if !ok {
		return domain.Supplier{}, ErrNotFound
	}
	return sup, nil
}

// UpdateInfo replaces the contact fields of a supplier. The phone-uniqueness
// check skips the supplier's own record.
func (s *SupplierService) UpdateInfo(sup domain.Supplier) error {
	for _, existing := range s.Sups.LoadAll() {
		if existing.ID != sup.ID && existing.Phone == sup.Phone {
			return ErrDuplicatePhone
		}
	}
	found, err := s.Sups.Update(sup)
	if err != nil {
		return err
	}
	if !found {
		return ErrNotFound
	}
	return nil
}

// UpdateRating sets a supplier rating. Out-of-range values are rejected and
// the stored rating keeps its prior value.
func (s *SupplierService) UpdateRating(id int, rating float64) error {
	sup, ok := s.Sups.FindByID(id)
	if !ok {
		return ErrNotFound
	}
	if !sup.UpdateRating(rating) {
		return ErrInvalidRating
	}
	_, err := s.Sups.Update(sup)
	return err
}

func (s *SupplierService) SetStatus(id int, status string) error {
	if status != domain.SupplierActive && status != domain.SupplierInactive {
		return ErrInvalidStatus
	}
	sup, ok := s.Sups.FindByID(id)
	if !ok {
		return ErrNotFound
	}
	sup.Status = status
	_, err := s.Sups.Update(sup)
	return err
}

func (s *SupplierService) DeleteSupplier(id int) error {
	found, err := s.Sups.DeleteByID(id)
	if err != nil {
		return err
	}
	if !found {
		return ErrNotFound
	}
	return nil
}

type PurchaseSummary struct {
	Supplier  string  `json:"supplier"`
	Product   string  `json:"product"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`
	NewStock  int     `json:"new_stock"`
}

// RecordPurchaseOrder restocks a product from a supplier and folds the spend
// into the supplier's running totals. The two writes are one logical
// transaction over two files: the restock lands first, and a restock failure
// leaves the supplier stats untouched.
func (s *SupplierService) RecordPurchaseOrder(supplierID, productID, qty int, unitPrice float64) (PurchaseSummary, error) {
	sup, ok := s.Sups.FindByID(supplierID)
	if !ok {
		return PurchaseSummary{}, ErrNotFound
	}
	p, ok := s.Prods.FindByID(productID)
	if !ok {
		return PurchaseSummary{}, ErrNotFound
	}
	if qty <= 0 || unitPrice <= 0 {
		return PurchaseSummary{}, ErrInvalidPurchase
	}

	total := float64(qty) * unitPrice

	p.Restock(qty)
	if found, err := s.Prods.Update(p); err != nil {
		return PurchaseSummary{}, err
	} else if !found {
		return PurchaseSummary{}, ErrNotFound
	}

	sup.RecordPurchase(total)
	if _, err := s.Sups.Update(sup); err != nil {
		return PurchaseSummary{}, err
	}

	return PurchaseSummary{
		Supplier:  sup.Name,
		Product:   p.Name,
		Quantity:  qty,
		UnitPrice: unitPrice,
		Total:     total,
		NewStock:  p.Quantity,
	}, nil
}
