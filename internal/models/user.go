package models

import "time"

// User 用户表
type User struct {
	ID           uint      `gorm:"primarykey" json:"id"`              // 主键
	Email        string    `gorm:"uniqueIndex;not null" json:"email"` // 邮箱（登录标识）
	Name         string    `gorm:"not null" json:"name"`              // 昵称
	PasswordHash string    `gorm:"not null" json:"-"`                 // 密码哈希（不返回给前端）
	RoleID       uint      `gorm:"not null;index" json:"role_id"`     // 角色ID
	CreatedAt    time.Time `gorm:"index" json:"created_at"`           // 创建时间

	Role *Role `gorm:"foreignKey:RoleID" json:"role,omitempty"` // 关联角色
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}
