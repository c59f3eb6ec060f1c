package service

import (
	"errors"
	"testing"

	"github.com/shoplite/internal/constants"
	"github.com/shoplite/internal/models"
	"github.com/shoplite/internal/repository"
)

func setupProductServiceTest(t *testing.T) *ProductService {
	t.Helper()
	db := openServiceTestDB(t)
	return NewProductService(repository.NewProductRepository(db))
}

func strp(s string) *string {
	return &s
}

func moneyPtr(t *testing.T, raw string) *models.Money {
	t.Helper()
	m, err := models.NewMoneyFromString(raw)
	if err != nil {
		t.Fatalf("parse money %s failed: %v", raw, err)
	}
	return &m
}

func createTestProduct(t *testing.T, svc *ProductService, name, price, category string) *models.Product {
	t.Helper()
	product, err := svc.Create(ProductCreateInput{
		Name:     name,
		Price:    price,
		Category: category,
	})
	if err != nil {
		t.Fatalf("create product %s failed: %v", name, err)
	}
	return product
}

func TestProductCreateInvalidPrice(t *testing.T) {
	svc := setupProductServiceTest(t)

	_, err := svc.Create(ProductCreateInput{Name: "widget", Price: "abc", Category: "misc"})
	if !errors.Is(err, ErrInvalidPrice) {
		t.Fatalf("want ErrInvalidPrice got %v", err)
	}
}

func TestProductCreateWithImageSlots(t *testing.T) {
	svc := setupProductServiceTest(t)

	product, err := svc.Create(ProductCreateInput{
		Name:     "widget",
		Price:    "19.90",
		Category: "misc",
		Images: map[string]*string{
			constants.ImageSlotThumbnail: strp("/api/v1/products/images/thumb.png"),
		},
	})
	if err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	if product.Image == nil {
		t.Fatalf("product should carry its image group")
	}
	if got := product.Image.Slot(constants.ImageSlotThumbnail); got == nil || *got != "/api/v1/products/images/thumb.png" {
		t.Fatalf("thumbnail slot not persisted, got %v", got)
	}
	if got := product.Image.Slot(constants.ImageSlotDesktop); got != nil {
		t.Fatalf("desktop slot should stay empty, got %v", *got)
	}
	if product.Price.String() != "19.90" {
		t.Fatalf("price want 19.90 got %s", product.Price.String())
	}
}

func TestProductListPriceFilterPrecedence(t *testing.T) {
	svc := setupProductServiceTest(t)
	createTestProduct(t, svc, "cheap", "5.00", "misc")
	createTestProduct(t, svc, "mid", "10.00", "misc")
	createTestProduct(t, svc, "dear", "20.00", "misc")

	names := func(filter repository.ProductListFilter) map[string]bool {
		products, _, err := svc.List(filter)
		if err != nil {
			t.Fatalf("list products failed: %v", err)
		}
		got := make(map[string]bool, len(products))
		for _, p := range products {
			got[p.Name] = true
		}
		return got
	}

	got := names(repository.ProductListFilter{MaxPrice: moneyPtr(t, "10.00")})
	if !got["cheap"] || got["mid"] || got["dear"] {
		t.Fatalf("max_price filter is strict less-than, got %v", got)
	}

	got = names(repository.ProductListFilter{EqualPrice: moneyPtr(t, "10.00")})
	if got["cheap"] || !got["mid"] || got["dear"] {
		t.Fatalf("equal_price filter want only mid, got %v", got)
	}

	got = names(repository.ProductListFilter{MinPrice: moneyPtr(t, "10.00")})
	if got["cheap"] || !got["mid"] || !got["dear"] {
		t.Fatalf("min_price filter is inclusive, got %v", got)
	}

	// 同时提供时 max 优先于 equal 与 min
	got = names(repository.ProductListFilter{
		MaxPrice: moneyPtr(t, "10.00"),
		MinPrice: moneyPtr(t, "10.00"),
	})
	if !got["cheap"] || got["mid"] || got["dear"] {
		t.Fatalf("max_price should win over min_price, got %v", got)
	}
}

func TestProductListNameAndCategoryFilter(t *testing.T) {
	svc := setupProductServiceTest(t)
	createTestProduct(t, svc, "widget", "5.00", "tools")
	createTestProduct(t, svc, "blue widget", "6.00", "tools")
	createTestProduct(t, svc, "green gadget", "7.00", "toys")

	// 名称为精确匹配，不做子串匹配
	products, total, err := svc.List(repository.ProductListFilter{Name: "widget"})
	if err != nil {
		t.Fatalf("list by name failed: %v", err)
	}
	if total != 1 || len(products) != 1 || products[0].Name != "widget" {
		t.Fatalf("name filter is exact match, want only widget got total=%d len=%d", total, len(products))
	}

	products, total, err = svc.List(repository.ProductListFilter{Name: "idget"})
	if err != nil {
		t.Fatalf("list by partial name failed: %v", err)
	}
	if total != 0 || len(products) != 0 {
		t.Fatalf("partial name must not match, got total=%d len=%d", total, len(products))
	}

	products, total, err = svc.List(repository.ProductListFilter{Category: "toys"})
	if err != nil {
		t.Fatalf("list by category failed: %v", err)
	}
	if total != 1 || products[0].Name != "green gadget" {
		t.Fatalf("category filter want green gadget got total=%d", total)
	}
}

func TestProductPartialUpdate(t *testing.T) {
	svc := setupProductServiceTest(t)
	product := createTestProduct(t, svc, "widget", "19.90", "misc")

	updated, err := svc.Update(product.ID, ProductUpdateInput{Price: strp("29.90")})
	if err != nil {
		t.Fatalf("update product failed: %v", err)
	}
	if updated.Name != "widget" {
		t.Fatalf("name should be unchanged, got %s", updated.Name)
	}
	if updated.Category != "misc" {
		t.Fatalf("category should be unchanged, got %s", updated.Category)
	}
	if updated.Price.String() != "29.90" {
		t.Fatalf("price want 29.90 got %s", updated.Price.String())
	}

	if _, err := svc.Update(product.ID, ProductUpdateInput{Price: strp("oops")}); !errors.Is(err, ErrInvalidPrice) {
		t.Fatalf("invalid price on update want ErrInvalidPrice got %v", err)
	}
}

func TestProductUpdateImageSlotReplacement(t *testing.T) {
	svc := setupProductServiceTest(t)
	product, err := svc.Create(ProductCreateInput{
		Name:     "widget",
		Price:    "19.90",
		Category: "misc",
		Images: map[string]*string{
			constants.ImageSlotThumbnail: strp("/api/v1/products/images/old-thumb.png"),
			constants.ImageSlotMobile:    strp("/api/v1/products/images/old-mobile.png"),
		},
	})
	if err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	updated, err := svc.Update(product.ID, ProductUpdateInput{
		Images: map[string]*string{
			constants.ImageSlotThumbnail: strp("/api/v1/products/images/new-thumb.png"),
		},
	})
	if err != nil {
		t.Fatalf("update product failed: %v", err)
	}
	if got := updated.Image.Slot(constants.ImageSlotThumbnail); got == nil || *got != "/api/v1/products/images/new-thumb.png" {
		t.Fatalf("thumbnail slot should be replaced, got %v", got)
	}
	if got := updated.Image.Slot(constants.ImageSlotMobile); got == nil || *got != "/api/v1/products/images/old-mobile.png" {
		t.Fatalf("untouched slot should keep its value, got %v", got)
	}
}

func TestProductDelete(t *testing.T) {
	svc := setupProductServiceTest(t)
	product := createTestProduct(t, svc, "widget", "19.90", "misc")

	if err := svc.Delete(product.ID); err != nil {
		t.Fatalf("delete product failed: %v", err)
	}
	if _, err := svc.Get(product.ID); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("deleted product want ErrProductNotFound got %v", err)
	}
	if err := svc.Delete(product.ID); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("double delete want ErrProductNotFound got %v", err)
	}
}
