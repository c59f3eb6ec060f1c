package public

import (
	"errors"

	"github.com/shoplite/internal/http/response"
	"github.com/shoplite/internal/service"

	"github.com/gin-gonic/gin"
)

// AddCartItemRequest 加入购物车请求
type AddCartItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

// UpdateCartItemRequest 更新购物车项请求
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

// GetCart 获取购物车
func (h *Handler) GetCart(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	items, err := h.CartService.ListByUser(uid)
	if err != nil {
		respondError(c, response.CodeInternal, "获取购物车失败", err)
		return
	}

	response.Success(c, gin.H{"items": items})
}

// AddCartItem 加入购物车（同商品累加数量）
func (h *Handler) AddCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数无效", err)
		return
	}

	item, err := h.CartService.AddItem(uid, req.ProductID, req.Quantity)
	if err != nil {
		h.respondCartError(c, err, "加入购物车失败")
		return
	}

	response.Success(c, gin.H{"item": item})
}

// UpdateCartItem 更新购物车项数量
func (h *Handler) UpdateCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	itemID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数无效", err)
		return
	}

	item, err := h.CartService.UpdateQuantity(uid, itemID, req.Quantity)
	if err != nil {
		h.respondCartError(c, err, "更新购物车失败")
		return
	}

	response.Success(c, gin.H{"item": item})
}

// DeleteCartItem 按商品移除购物车项
func (h *Handler) DeleteCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	productID, ok := parseIDParam(c, "product_id")
	if !ok {
		return
	}

	if err := h.CartService.RemoveItem(uid, productID); err != nil {
		h.respondCartError(c, err, "移除购物车失败")
		return
	}

	response.Success(c, gin.H{"deleted": true})
}

// ClearCart 清空购物车
func (h *Handler) ClearCart(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	if err := h.CartService.Clear(uid); err != nil {
		respondError(c, response.CodeInternal, "清空购物车失败", err)
		return
	}

	response.SuccessWithMsg(c, "购物车已清空", gin.H{"cleared": true})
}

func (h *Handler) respondCartError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrInvalidQuantity):
		respondError(c, response.CodeBadRequest, "数量必须大于 0", nil)
	case errors.Is(err, service.ErrProductNotFound):
		response.NotFound(c, "商品不存在")
	case errors.Is(err, service.ErrCartItemNotFound):
		response.NotFound(c, "购物车项不存在")
	case errors.Is(err, service.ErrCartItemForbidden):
		respondError(c, response.CodeForbidden, "无权操作该购物车项", nil)
	default:
		respondError(c, response.CodeInternal, fallback, err)
	}
}
