package repos

import "grocerhub/internal/domain"

type SupplierRepo struct{ store *Store }

func NewSupplierRepo(s *Store) *SupplierRepo { return &SupplierRepo{store: s} }

func (r *SupplierRepo) LoadAll() []domain.Supplier {
	return loadAll[domain.Supplier](r.store, suppliersFile)
}

func (r *SupplierRepo) SaveAll(suppliers []domain.Supplier) error {
	return saveAll(r.store, suppliersFile, suppliers)
}

func (r *SupplierRepo) FindByID(id int) (domain.Supplier, bool) {
	for _, s := range r.LoadAll() {
		if s.ID == id {
			return s, true
		}
	}
	return domain.Supplier{}, false
}

func (r *SupplierRepo) FindByPhone(phone string) (domain.Supplier, bool) {
	for _, s := range r.LoadAll() {
		if s.Phone == phone {
			return s, true
		}
	}
	return domain.Supplier{}, false
}

func (r *SupplierRepo) Add(s domain.Supplier) error {
	suppliers := r.LoadAll()
	suppliers = append(suppliers, s)
	return r.SaveAll(suppliers)
}

func (r *SupplierRepo) Update(s domain.Supplier) (bool, error) {
	suppliers := r.LoadAll()
	for i := range suppliers {
		if suppliers[i].ID == s.ID {
			suppliers[i] = s
			return true, r.SaveAll(suppliers)
		}
	}
	return false, nil
}

func (r *SupplierRepo) DeleteByID(id int) (bool, error) {
	suppliers := r.LoadAll()
	kept := suppliers[:0]
	found := false
	for _, s := range suppliers {
		if s.ID == id {
			found = true
			continue
		}
		kept = append(kept, s)
	}
	if !found {
		return false, nil
	}
	return true, r.SaveAll(kept)
}

func (r *SupplierRepo) NextID() int {
	return nextID(r.LoadAll(), func(s domain.Supplier) int { return s.ID })
}
