package repository

import (
	"testing"

	"github.com/fresh-dairy/backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupProductRepositoryTest(t *testing.T) (*GormProductRepository, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}); err != nil {
		t.Fatalf("migrate product failed: %v", err)
	}
	return NewProductRepository(db), db
}

func createProduct(t *testing.T, repo *GormProductRepository, category, name, size string, price float64, active bool) *models.Product {
	t.Helper()
	product := &models.Product{
		Category: category,
		Name:     name,
		Size:     size,
		Price:    models.NewMoneyFromDecimal(decimal.NewFromFloat(price)),
		IsActive: active,
	}
	if err := repo.Create(product); err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func TestProductListOnlyActive(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)
	createProduct(t, repo, "milk", "Whole Milk", "1 Gallon", 6.50, true)
	createProduct(t, repo, "milk", "Whole Milk", "Half Gallon", 4.50, true)
	createProduct(t, repo, "seasonal", "Buttermilk", "Half Gallon", 3.50, false)

	products, total, err := repo.List(ProductListFilter{Page: 1, PageSize: 50, OnlyActive: true})
	if err != nil {
		t.Fatalf("list active products failed: %v", err)
	}
	if total != 2 || len(products) != 2 {
		t.Fatalf("active products want 2 got total=%d len=%d", total, len(products))
	}
	for _, p := range products {
		if !p.IsActive {
			t.Fatalf("inactive product %s leaked into active listing", p.Name)
		}
	}

	products, total, err = repo.List(ProductListFilter{Page: 1, PageSize: 50})
	if err != nil {
		t.Fatalf("list all products failed: %v", err)
	}
	if total != 3 || len(products) != 3 {
		t.Fatalf("all products want 3 got total=%d len=%d", total, len(products))
	}
}

func TestProductListCategoryFilter(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)
	createProduct(t, repo, "milk", "Whole Milk", "1 Gallon", 6.50, true)
	createProduct(t, repo, "yogurt", "Plain Yogurt", "32 oz", 5.50, true)

	products, total, err := repo.List(ProductListFilter{Page: 1, PageSize: 50, Category: "yogurt"})
	if err != nil {
		t.Fatalf("list by category failed: %v", err)
	}
	if total != 1 || len(products) != 1 {
		t.Fatalf("yogurt products want 1 got total=%d len=%d", total, len(products))
	}
	if products[0].Name != "Plain Yogurt" {
		t.Fatalf("product name want Plain Yogurt got %s", products[0].Name)
	}
}

func TestProductGetByIDNotFound(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)

	product, err := repo.GetByID(9999)
	if err != nil {
		t.Fatalf("get missing product should not error, got %v", err)
	}
	if product != nil {
		t.Fatalf("missing product should be nil")
	}
}

func TestProductListByIDs(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)
	first := createProduct(t, repo, "milk", "Whole Milk", "1 Gallon", 6.50, true)
	second := createProduct(t, repo, "ghee", "Pure Ghee", "16 oz", 14.50, true)
	createProduct(t, repo, "cream", "Heavy Cream", "16 oz", 4.25, true)

	products, err := repo.ListByIDs([]uint{first.ID, second.ID})
	if err != nil {
		t.Fatalf("list by ids failed: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("products want 2 got %d", len(products))
	}

	products, err = repo.ListByIDs(nil)
	if err != nil {
		t.Fatalf("list by empty ids failed: %v", err)
	}
	if len(products) != 0 {
		t.Fatalf("empty ids should return no products, got %d", len(products))
	}
}
