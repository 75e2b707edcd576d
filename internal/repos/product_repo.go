package repos

import (
	"strings"

	"grocerhub/internal/domain"
)

type ProductRepo struct{ store *Store }

func NewProductRepo(s *Store) *ProductRepo { return &ProductRepo{store: s} }

func (r *ProductRepo) LoadAll() []domain.Product {
	return loadAll[domain.Product](r.store, productsFile)
}

func (r *ProductRepo) SaveAll(products []domain.Product) error {
	return saveAll(r.store, productsFile, products)
}

func (r *ProductRepo) FindByID(id int) (domain.Product, bool) {
	for _, p := range r.LoadAll() {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// FindByName matches case-insensitively.
func (r *ProductRepo) FindByName(name string) (domain.Product, bool) {
	for _, p := range r.LoadAll() {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return domain.Product{}, false
}

func (r *ProductRepo) Add(p domain.Product) error {
	products := r.LoadAll()
	products = append(products, p)
	return r.SaveAll(products)
}

// Update replaces the product with the same ID and reports whether a match
// was found. Nothing is written when the ID is unknown.
func (r *ProductRepo) Update(p domain.Product) (bool, error) {
	products := r.LoadAll()
	for i := range products {
		if products[i].ID == p.ID {
			products[i] = p
			return true, r.SaveAll(products)
		}
	}
	return false, nil
}

func (r *ProductRepo) DeleteByID(id int) (bool, error) {
	products := r.LoadAll()
	kept := products[:0]
	found := false
	for _, p := range products {
		if p.ID == id {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		return false, nil
	}
	return true, r.SaveAll(kept)
}

func (r *ProductRepo) NextID() int {
	return nextID(r.LoadAll(), func(p domain.Product) int { return p.ID })
}
