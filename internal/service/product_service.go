package service

import (
	"strings"

	"github.com/shoplite/internal/models"
	"github.com/shoplite/internal/repository"

	"gorm.io/gorm"
)

// ProductService 商品服务
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService 创建商品服务实例
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// ProductCreateInput 商品创建参数
type ProductCreateInput struct {
	Name        string
	Price       string
	Category    string
	Description *string
	Images      map[string]*string // 槽位名 -> 图片路径
}

// ProductUpdateInput 商品更新参数。nil 字段表示保持原值。
type ProductUpdateInput struct {
	Name        *string
	Price       *string
	Category    *string
	Description *string
	Images      map[string]*string // 仅包含本次上传的槽位
}

// List 商品列表
func (s *ProductService) List(filter repository.ProductListFilter) ([]models.Product, int64, error) {
	return s.productRepo.List(filter)
}

// Get 获取商品
func (s *ProductService) Get(id uint) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// Create 创建商品。图片组先落库，商品行引用其 ID。
func (s *ProductService) Create(input ProductCreateInput) (*models.Product, error) {
	price, err := models.NewMoneyFromString(input.Price)
	if err != nil {
		return nil, ErrInvalidPrice
	}

	var created *models.Product
	err = s.productRepo.Transaction(func(tx *gorm.DB) error {
		repo := s.productRepo.WithTx(tx)

		image := &models.ProductImage{}
		for slot, path := range input.Images {
			image.SetSlot(slot, path)
		}
		if err := repo.CreateImage(image); err != nil {
			return err
		}

		product := &models.Product{
			Name:        strings.TrimSpace(input.Name),
			Price:       price,
			Category:    strings.TrimSpace(input.Category),
			Description: input.Description,
			ImageID:     &image.ID,
		}
		if err := repo.Create(product); err != nil {
			return err
		}
		created = product
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.productRepo.GetByID(created.ID)
}

// Update 更新商品。标量字段与图片槽位均为按需覆盖。
func (s *ProductService) Update(id uint, input ProductUpdateInput) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	if input.Name != nil {
		product.Name = strings.TrimSpace(*input.Name)
	}
	if input.Price != nil {
		price, err := models.NewMoneyFromString(*input.Price)
		if err != nil {
			return nil, ErrInvalidPrice
		}
		product.Price = price
	}
	if input.Category != nil {
		product.Category = strings.TrimSpace(*input.Category)
	}
	if input.Description != nil {
		product.Description = input.Description
	}

	err = s.productRepo.Transaction(func(tx *gorm.DB) error {
		repo := s.productRepo.WithTx(tx)

		if len(input.Images) > 0 {
			image := product.Image
			if image == nil {
				image = &models.ProductImage{}
				if err := repo.CreateImage(image); err != nil {
					return err
				}
				product.ImageID = &image.ID
			}
			for slot, path := range input.Images {
				image.SetSlot(slot, path)
			}
			if err := repo.UpdateImage(image); err != nil {
				return err
			}
		}

		product.Image = nil // 避免 Save 级联写关联
		return repo.Update(product)
	})
	if err != nil {
		return nil, err
	}
	return s.productRepo.GetByID(id)
}

// Delete 删除商品。引用该商品的购物车项由外键置空。
func (s *ProductService) Delete(id uint) error {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}
	return s.productRepo.Delete(id)
}
