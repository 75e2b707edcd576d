package services_test

import (
	"testing"

	"grocerhub/internal/domain"
	"grocerhub/internal/repos"
)

func newStore(t *testing.T) *repos.Store {
	t.Helper()
	s := repos.NewStore(t.TempDir())
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}
	return s
}

func seedProducts(t *testing.T, prods *repos.ProductRepo, items ...domain.Product) {
	t.Helper()
	if err := prods.SaveAll(items); err != nil {
		t.Fatal(err)
	}
}
