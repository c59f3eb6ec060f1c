package public

import (
	"errors"
	"strconv"

	"github.com/shoplite/internal/http/response"
	"github.com/shoplite/internal/models"
	"github.com/shoplite/internal/repository"
	"github.com/shoplite/internal/service"

	"github.com/gin-gonic/gin"
)

// GetProducts 商品列表（支持名称/分类/价格筛选）
func (h *Handler) GetProducts(c *gin.Context) {
	filter := repository.ProductListFilter{
		Name:     c.Query("name"),
		Category: c.Query("category"),
		Page:     parseIntQuery(c, "page", 1),
		PageSize: parseIntQuery(c, "page_size", 0),
	}

	for _, q := range []struct {
		key  string
		dest **models.Money
	}{
		{"max_price", &filter.MaxPrice},
		{"equal_price", &filter.EqualPrice},
		{"min_price", &filter.MinPrice},
	} {
		raw := c.Query(q.key)
		if raw == "" {
			continue
		}
		price, err := models.NewMoneyFromString(raw)
		if err != nil {
			respondError(c, response.CodeBadRequest, "价格参数无效", nil)
			return
		}
		*q.dest = &price
	}

	products, total, err := h.ProductService.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "获取商品列表失败", err)
		return
	}

	response.SuccessWithPage(c, gin.H{"items": products}, response.Pagination{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		Total:    total,
	})
}

// GetProduct 获取商品详情
func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	product, err := h.ProductService.Get(id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound):
			response.NotFound(c, "商品不存在")
		default:
			respondError(c, response.CodeInternal, "获取商品失败", err)
		}
		return
	}

	response.Success(c, gin.H{"product": product})
}

// GetProductImage 获取商品图片文件
func (h *Handler) GetProductImage(c *gin.Context) {
	filename := c.Param("filename")
	path, err := h.UploadService.ResolvePath(filename)
	if err != nil {
		response.NotFound(c, "图片不存在")
		return
	}
	c.File(path)
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "ID 参数无效", nil)
		return 0, false
	}
	return uint(id), true
}

func parseIntQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return fallback
	}
	return value
}
