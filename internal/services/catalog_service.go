package services

import (
	"strings"

	"grocerhub/internal/domain"
	"grocerhub/internal/repos"
)

type CatalogService struct {
	Prods *repos.ProductRepo
}

func NewCatalogService(prods *repos.ProductRepo) *CatalogService {
	return &CatalogService{Prods: prods}
}

// AddProduct creates a product with a freshly allocated ID. Names are unique
// case-insensitively; a conflict leaves the collection untouched.
func (s *CatalogService) AddProduct(name, category string, quantity int, price float64) (domain.Product, error) {
	if _, ok := s.Prods.FindByName(name); ok {
		return domain.Product{}, ErrDuplicateName
	}
	p := domain.Product{
		ID:       s.Prods.NextID(),
		Name:     name,
		Category: category,
		Quantity: quantity,
		Price:    price,
	}
	if err := s.Prods.Add(p); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

// UpdateProduct replaces the stored product. The duplicate-name check skips
// the product's own ID so renaming to the same name (different case) works.
func (s *CatalogService) UpdateProduct(p domain.Product) error {
	for _, existing := range s.Prods.LoadAll() {
		if existing.ID != p.ID && strings.EqualFold(existing.Name, p.Name) {
			return ErrDuplicateName
		}
	}
	found, err := s.Prods.Update(p)
	if err != nil {
		return err
	}
	if !found {
		return ErrNotFound
	}
	return nil
}

func (s *CatalogService) DeleteProduct(id int) error {
	found, err := s.Prods.DeleteByID(id)
	if err != nil {
		return err
	}
	if !found {
		return ErrNotFound
	}
	return nil
}

func (s *CatalogService) ListProducts() []domain.Product {
	return s.Prods.LoadAll()
}

func (s *CatalogService) GetProduct(id int) (domain.Product, error) {
	p, ok := s.Prods.FindByID(id)
	if !ok {
		return domain.Product{}, ErrNotFound
	}
	return p, nil
}

// SearchByName returns products whose name contains q, case-insensitively.
func (s *CatalogService) SearchByName(q string) []domain.Product {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return nil
	}
	var out []domain.Product
	for _, p := range s.Prods.LoadAll() {
		if strings.Contains(strings.ToLower(p.Name), q) {
			out = append(out, p)
		}
	}
	return out
}
