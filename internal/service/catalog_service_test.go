package service

import (
	"context"
	"testing"
)

func TestListActiveProductsFiltersInactive(t *testing.T) {
	productRepo := newStubProductRepo(
		milkProduct(1, 6.50, true),
		milkProduct(2, 4.50, true),
		milkProduct(3, 3.50, false),
	)
	svc := NewCatalogService(productRepo, 60)

	products, err := svc.ListActiveProducts(context.Background())
	if err != nil {
		t.Fatalf("list active products failed: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("want 2 active products got %d", len(products))
	}
	for _, product := range products {
		if !product.IsActive {
			t.Fatalf("inactive product %d leaked into the catalog", product.ID)
		}
	}
}
