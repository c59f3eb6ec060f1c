package models

import "time"

// CartItem 购物车项
type CartItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`                                                // 主键
	UserID    uint      `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"user_id"`           // 用户ID
	ProductID *uint     `gorm:"uniqueIndex:idx_cart_user_product" json:"product_id"`                 // 商品ID（商品删除后置空）
	Quantity  int       `gorm:"not null" json:"quantity"`                                            // 数量
	CreatedAt time.Time `gorm:"index" json:"created_at"`                                             // 创建时间

	User    *User    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`                       // 关联用户
	Product *Product `gorm:"foreignKey:ProductID;constraint:OnDelete:SET NULL" json:"product,omitempty"` // 关联商品
}

// TableName 指定表名
func (CartItem) TableName() string {
	return "cart_items"
}
