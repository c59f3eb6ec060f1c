package models

import "time"

// Product 商品表
type Product struct {
	ID          uint      `gorm:"primarykey" json:"id"`                     // 主键
	Name        string    `gorm:"not null;index" json:"name"`               // 商品名
	Price       Money     `gorm:"type:decimal(12,2);not null" json:"price"` // 价格
	Category    string    `gorm:"not null;index" json:"category"`           // 分类
	Description *string   `json:"description"`                              // 描述
	ImageID     *uint     `gorm:"index" json:"-"`                           // 图片组ID
	CreatedAt   time.Time `gorm:"index" json:"created_at"`                  // 创建时间

	Image *ProductImage `gorm:"foreignKey:ImageID;constraint:OnDelete:SET NULL" json:"image,omitempty"` // 关联图片组
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}
