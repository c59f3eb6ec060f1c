package repository

import "github.com/shoplite/internal/models"

// ProductListFilter 商品列表筛选参数
type ProductListFilter struct {
	Name       string        // 名称精确匹配
	Category   string        // 分类精确匹配
	MaxPrice   *models.Money // 价格上限（严格小于）
	EqualPrice *models.Money // 价格等值匹配
	MinPrice   *models.Money // 价格下限（大于等于）
	Page       int
	PageSize   int
}

// UserListFilter 用户列表筛选参数
type UserListFilter struct {
	Page     int
	PageSize int
}
