package service

import "errors"

// 业务哨兵错误，由 handler 层通过 errors.Is 映射为响应码。
var (
	ErrNotFound           = errors.New("记录不存在")
	ErrInvalidCredentials = errors.New("邮箱或密码错误")
	ErrInvalidPassword    = errors.New("密码错误")
	ErrSamePassword       = errors.New("新密码不能与旧密码相同")
	ErrPasswordMismatch   = errors.New("两次输入的密码不一致")
	ErrEmailExists        = errors.New("邮箱已被注册")
	ErrRoleNotFound       = errors.New("角色不存在")
	ErrProductNotFound    = errors.New("商品不存在")
	ErrInvalidPrice       = errors.New("价格格式无效")
	ErrCartItemNotFound   = errors.New("购物车项不存在")
	ErrCartItemForbidden  = errors.New("无权操作该购物车项")
	ErrInvalidQuantity    = errors.New("数量必须大于 0")
	ErrFileTooLarge       = errors.New("文件大小超过限制")
	ErrFileTypeInvalid    = errors.New("文件类型不被允许")
)
