package main

import (
	"fmt"

	"github.com/fresh-dairy/backend/internal/config"
	"github.com/fresh-dairy/backend/internal/logger"
	"github.com/fresh-dairy/backend/internal/models"

	"github.com/shopspring/decimal"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 添加门店
	store := models.Store{
		Name:     "Fresh Dairy Cerritos",
		Address:  "19922 Pioneer Blvd",
		City:     "Cerritos",
		State:    "CA",
		Zip:      "90703",
		Phone:    "(562) 555-0199",
		IsActive: true,
	}
	var existingStore models.Store
	if err := models.DB.Where("name = ?", store.Name).First(&existingStore).Error; err != nil {
		if err := models.DB.Create(&store).Error; err != nil {
			stdLog.Printf("Failed to create store %s: %v", store.Name, err)
		} else {
			stdLog.Printf("Created store: %s", store.Name)
		}
	} else {
		stdLog.Printf("Store already exists: %s", store.Name)
	}

	// 添加商品
	products := []models.Product{
		{
			Category:  "milk",
			Name:      "Whole Milk",
			Size:      "1 Gallon",
			Price:     models.NewMoneyFromDecimal(decimal.NewFromFloat(6.50)),
			ImageURL:  "/images/products/whole-milk-gallon.jpg",
			SortOrder: 100,
			IsActive:  true,
		},
		{
			Category:  "milk",
			Name:      "Whole Milk",
			Size:      "Half Gallon",
			Price:     models.NewMoneyFromDecimal(decimal.NewFromFloat(4.50)),
			ImageURL:  "/images/products/whole-milk-half.jpg",
			SortOrder: 90,
			IsActive:  true,
		},
		{
			Category:  "milk",
			Name:      "Low-Fat Milk",
			Size:      "1 Gallon",
			Price:     models.NewMoneyFromDecimal(decimal.NewFromFloat(6.00)),
			ImageURL:  "/images/products/lowfat-milk-gallon.jpg",
			SortOrder: 80,
			IsActive:  true,
		},
		{
			Category:  "yogurt",
			Name:      "Plain Yogurt",
			Size:      "32 oz",
			Price:     models.NewMoneyFromDecimal(decimal.NewFromFloat(5.50)),
			ImageURL:  "/images/products/plain-yogurt.jpg",
			SortOrder: 70,
			IsActive:  true,
		},
		{
			Category:  "yogurt",
			Name:      "Mango Lassi",
			Size:      "16 oz",
			Price:     models.NewMoneyFromDecimal(decimal.NewFromFloat(3.75)),
			ImageURL:  "/images/products/mango-lassi.jpg",
			SortOrder: 60,
			IsActive:  true,
		},
		{
			Category:  "butter",
			Name:      "Cultured Butter",
			Size:      "8 oz",
			Price:     models.NewMoneyFromDecimal(decimal.NewFromFloat(7.25)),
			ImageURL:  "/images/products/cultured-butter.jpg",
			SortOrder: 50,
			IsActive:  true,
		},
		{
			Category:  "cheese",
			Name:      "Paneer",
			Size:      "14 oz",
			Price:     models.NewMoneyFromDecimal(decimal.NewFromFloat(8.00)),
			ImageURL:  "/images/products/paneer.jpg",
			SortOrder: 40,
			IsActive:  true,
		},
		{
			Category:  "ghee",
			Name:      "Pure Ghee",
			Size:      "16 oz",
			Price:     models.NewMoneyFromDecimal(decimal.NewFromFloat(14.50)),
			ImageURL:  "/images/products/pure-ghee.jpg",
			SortOrder: 30,
			IsActive:  true,
		},
		{
			Category:  "cream",
			Name:      "Heavy Cream",
			Size:      "16 oz",
			Price:     models.NewMoneyFromDecimal(decimal.NewFromFloat(4.25)),
			ImageURL:  "/images/products/heavy-cream.jpg",
			SortOrder: 20,
			IsActive:  true,
		},
		{
			Category:  "seasonal",
			Name:      "Buttermilk",
			Size:      "Half Gallon",
			Price:     models.NewMoneyFromDecimal(decimal.NewFromFloat(3.50)),
			ImageURL:  "/images/products/buttermilk.jpg",
			SortOrder: 10,
			IsActive:  false,
		},
	}

	for _, prod := range products {
		var existing models.Product
		if err := models.DB.Where("name = ? AND size = ?", prod.Name, prod.Size).First(&existing).Error; err != nil {
			if err := models.DB.Create(&prod).Error; err != nil {
				stdLog.Printf("Failed to create product %s (%s): %v", prod.Name, prod.Size, err)
			} else {
				stdLog.Printf("Created product: %s (%s)", prod.Name, prod.Size)
			}
		} else {
			existing.Category = prod.Category
			existing.Price = prod.Price
			existing.ImageURL = prod.ImageURL
			existing.SortOrder = prod.SortOrder
			existing.IsActive = prod.IsActive
			if err := models.DB.Save(&existing).Error; err != nil {
				stdLog.Printf("Failed to update product %s (%s): %v", prod.Name, prod.Size, err)
			} else {
				stdLog.Printf("Updated product: %s (%s)", prod.Name, prod.Size)
			}
		}
	}

	fmt.Println("\nSeed data created successfully!")
	fmt.Println("Summary:")
	fmt.Println("- 1 Store (Cerritos)")
	fmt.Println("- 10 Products (milk, yogurt, butter, cheese, ghee, cream, seasonal)")
}
