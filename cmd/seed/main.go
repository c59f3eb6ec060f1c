package main

import (
	"fmt"

	"github.com/shoplite/internal/config"
	"github.com/shoplite/internal/logger"
	"github.com/shoplite/internal/models"

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

	// 初始化内置角色与默认管理员
	if err := models.SeedDefaultData("", ""); err != nil {
		stdLog.Fatalf("Failed to seed default data: %v", err)
	}

	// 添加演示商品
	products := []models.Product{
		{
			Name:        "Wireless Bluetooth Earphones",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(99.99)),
			Category:    "electronics",
			Description: strPtr("High quality sound, long battery life, comfortable to wear"),
		},
		{
			Name:        "Smart Watch",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(199.99)),
			Category:    "electronics",
			Description: strPtr("Health monitoring, fitness tracking, message notifications"),
		},
		{
			Name:        "Portable Power Bank",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(49.99)),
			Category:    "accessories",
			Description: strPtr("High capacity, fast charging, multi-device compatible"),
		},
		{
			Name:        "USB-C Charging Cable",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(9.99)),
			Category:    "accessories",
			Description: strPtr("Braided nylon cable, 2 meters, supports fast charging"),
		},
		{
			Name:        "Multi-function Backpack",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(79.99)),
			Category:    "lifestyle",
			Description: strPtr("Large capacity, waterproof and anti-theft, USB charging port"),
		},
		{
			Name:        "Stainless Steel Water Bottle",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(24.99)),
			Category:    "lifestyle",
			Description: strPtr("Keeps drinks cold for 24 hours or hot for 12 hours"),
		},
	}

	for _, prod := range products {
		var existing models.Product
		if err := models.DB.Where("name = ?", prod.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&prod).Error; err != nil {
				stdLog.Printf("Failed to create product %s: %v", prod.Name, err)
			} else {
				stdLog.Printf("Created product: %s", prod.Name)
			}
		} else {
			existing.Price = prod.Price
			existing.Category = prod.Category
			existing.Description = prod.Description
			if err := models.DB.Save(&existing).Error; err != nil {
				stdLog.Printf("Failed to update product %s: %v", prod.Name, err)
			} else {
				stdLog.Printf("Updated product: %s", prod.Name)
			}
		}
	}

	fmt.Println("\n✅ Seed data created successfully!")
	fmt.Println("Summary:")
	fmt.Println("- 2 Roles (user, admin)")
	fmt.Println("- 1 Default admin account")
	fmt.Println("- 6 Demo products")
}

func strPtr(s string) *string {
	return &s
}
