package models

import "time"

// ProductImage 商品图片组（四个可选尺寸槽位）
type ProductImage struct {
	ID        uint      `gorm:"primarykey" json:"id"`    // 主键
	Thumbnail *string   `json:"thumbnail"`               // 缩略图路径
	Mobile    *string   `json:"mobile"`                  // 移动端图路径
	Tablet    *string   `json:"tablet"`                  // 平板图路径
	Desktop   *string   `json:"desktop"`                 // 桌面端图路径
	CreatedAt time.Time `gorm:"index" json:"created_at"` // 创建时间
}

// TableName 指定表名
func (ProductImage) TableName() string {
	return "product_images"
}

// Slot 按槽位名读取图片路径
func (p *ProductImage) Slot(name string) *string {
	if p == nil {
		return nil
	}
	switch name {
	case "thumbnail":
		return p.Thumbnail
	case "mobile":
		return p.Mobile
	case "tablet":
		return p.Tablet
	case "desktop":
		return p.Desktop
	}
	return nil
}

// SetSlot 按槽位名写入图片路径
func (p *ProductImage) SetSlot(name string, path *string) {
	if p == nil {
		return
	}
	switch name {
	case "thumbnail":
		p.Thumbnail = path
	case "mobile":
		p.Mobile = path
	case "tablet":
		p.Tablet = path
	case "desktop":
		p.Desktop = path
	}
}
