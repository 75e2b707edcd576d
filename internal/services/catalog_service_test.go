package services_test

import (
	"errors"
	"testing"

	"grocerhub/internal/repos"
	"grocerhub/internal/services"
)

func TestCatalogService_DuplicateNameCaseInsensitive(t *testing.T) {
	store := newStore(t)
	svc := services.NewCatalogService(repos.NewProductRepo(store))

	if _, err := svc.AddProduct("Milk", "Dairy", 10, 25); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.AddProduct("MILK", "Dairy", 5, 30); !errors.Is(err, services.ErrDuplicateName) {
		t.Fatalf("want ErrDuplicateName, got %v", err)
	}
	if got := len(svc.ListProducts()); got != 1 {
		t.Fatalf("duplicate add changed the collection: %d products", got)
	}
}

func TestCatalogService_UpdateSkipsOwnName(t *testing.T) {
	store := newStore(t)
	prods := repos.NewProductRepo(store)
	svc := services.NewCatalogService(prods)

	milk, err := svc.AddProduct("Milk", "Dairy", 10, 25)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.AddProduct("Bread", "Bakery", 5, 40); err != nil {
		t.Fatal(err)
	}

	// recasing its own name is fine
	milk.Name = "MILK"
	milk.Price = 27
	if err := svc.UpdateProduct(milk); err != nil {
		t.Fatal(err)
	}

	// taking another product's name is not
	milk.Name = "bread"
	if err := svc.UpdateProduct(milk); !errors.Is(err, services.ErrDuplicateName) {
		t.Fatalf("want ErrDuplicateName, got %v", err)
	}

	got, _ := prods.FindByID(milk.ID)
	if got.Name != "MILK" || got.Price != 27 {
		t.Fatalf("update not persisted: %+v", got)
	}
}

func TestCatalogService_SearchByName(t *testing.T) {
	store := newStore(t)
	svc := services.NewCatalogService(repos.NewProductRepo(store))

	for _, name := range []string{"Whole Milk", "Milk Powder", "Bread"} {
		if _, err := svc.AddProduct(name, "Grocery", 5, 10); err != nil {
			t.Fatal(err)
		}
	}

	if got := svc.SearchByName("milk"); len(got) != 2 {
		t.Fatalf("want 2 matches for milk, got %+v", got)
	}
	if got := svc.SearchByName("  "); got != nil {
		t.Fatalf("blank query should match nothing, got %+v", got)
	}
}

func TestCatalogService_DeleteUnknown(t *testing.T) {
	store := newStore(t)
	svc := services.NewCatalogService(repos.NewProductRepo(store))
	if err := svc.DeleteProduct(42); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}
