package service

import (
	"github.com/shoplite/internal/logger"
	"github.com/shoplite/internal/models"
	"github.com/shoplite/internal/repository"
)

// CartService 购物车服务
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartService 创建购物车服务实例
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// ListByUser 获取用户购物车。商品已被删除的残留项会被顺手清理掉。
func (s *CartService) ListByUser(userID uint) ([]models.CartItem, error) {
	items, err := s.cartRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	valid := make([]models.CartItem, 0, len(items))
	for _, item := range items {
		if item.ProductID == nil || item.Product == nil {
			if err := s.cartRepo.DeleteByID(item.ID); err != nil {
				logger.Warnw("cart_orphan_cleanup_failed", "cart_item_id", item.ID, "error", err)
			}
			continue
		}
		valid = append(valid, item)
	}
	return valid, nil
}

// AddItem 加入购物车。已存在同商品项时数量累加。
func (s *CartService) AddItem(userID, productID uint, quantity int) (*models.CartItem, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	existing, err := s.cartRepo.GetByUserAndProduct(userID, productID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if err := s.cartRepo.UpdateQuantity(existing.ID, existing.Quantity+quantity); err != nil {
			return nil, err
		}
		return s.cartRepo.GetByID(existing.ID)
	}

	item := &models.CartItem{
		UserID:    userID,
		ProductID: &productID,
		Quantity:  quantity,
	}
	if err := s.cartRepo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateQuantity 更新购物车项数量。只能操作自己的购物车项。
func (s *CartService) UpdateQuantity(userID, itemID uint, quantity int) (*models.CartItem, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	item, err := s.cartRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrCartItemNotFound
	}
	if item.UserID != userID {
		return nil, ErrCartItemForbidden
	}

	if err := s.cartRepo.UpdateQuantity(item.ID, quantity); err != nil {
		return nil, err
	}
	return s.cartRepo.GetByID(item.ID)
}

// Clear 清空用户购物车
func (s *CartService) Clear(userID uint) error {
	return s.cartRepo.ClearByUser(userID)
}

// RemoveItem 按商品从购物车移除
func (s *CartService) RemoveItem(userID, productID uint) error {
	existing, err := s.cartRepo.GetByUserAndProduct(userID, productID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrCartItemNotFound
	}
	return s.cartRepo.DeleteByUserAndProduct(userID, productID)
}
