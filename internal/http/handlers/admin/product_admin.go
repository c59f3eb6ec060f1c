package admin

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/shoplite/internal/constants"
	"github.com/shoplite/internal/http/response"
	"github.com/shoplite/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateProduct 创建商品（multipart 表单，图片槽位可选）
func (h *Handler) CreateProduct(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	price := strings.TrimSpace(c.PostForm("price"))
	category := strings.TrimSpace(c.PostForm("category"))
	if name == "" || price == "" || category == "" {
		respondError(c, response.CodeBadRequest, "name、price、category 为必填项", nil)
		return
	}

	images, ok := h.saveImageSlots(c)
	if !ok {
		return
	}

	input := service.ProductCreateInput{
		Name:        name,
		Price:       price,
		Category:    category,
		Description: formValue(c, "description"),
		Images:      images,
	}

	product, err := h.ProductService.Create(input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidPrice):
			respondError(c, response.CodeBadRequest, "价格格式无效", nil)
		default:
			respondError(c, response.CodeInternal, "创建商品失败", err)
		}
		return
	}

	response.Success(c, gin.H{"product": product})
}

// UpdateProduct 更新商品。未提交的标量字段与图片槽位保持原值。
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	images, ok := h.saveImageSlots(c)
	if !ok {
		return
	}

	input := service.ProductUpdateInput{
		Name:        formValue(c, "name"),
		Price:       formValue(c, "price"),
		Category:    formValue(c, "category"),
		Description: formValue(c, "description"),
		Images:      images,
	}

	product, err := h.ProductService.Update(id, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound):
			response.NotFound(c, "商品不存在")
		case errors.Is(err, service.ErrInvalidPrice):
			respondError(c, response.CodeBadRequest, "价格格式无效", nil)
		default:
			respondError(c, response.CodeInternal, "更新商品失败", err)
		}
		return
	}

	response.Success(c, gin.H{"product": product})
}

// DeleteProduct 删除商品
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.ProductService.Delete(id); err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound):
			response.NotFound(c, "商品不存在")
		default:
			respondError(c, response.CodeInternal, "删除商品失败", err)
		}
		return
	}

	response.Success(c, gin.H{"deleted": true})
}

// saveImageSlots 保存本次请求上传的图片槽位，返回槽位到访问路径的映射。
func (h *Handler) saveImageSlots(c *gin.Context) (map[string]*string, bool) {
	images := make(map[string]*string)
	for _, slot := range constants.ImageSlots {
		file, err := c.FormFile(slot)
		if err != nil {
			if errors.Is(err, http.ErrMissingFile) {
				continue
			}
			respondError(c, response.CodeBadRequest, "图片上传数据无效", err)
			return nil, false
		}

		filename, err := h.UploadService.SaveImage(file)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrFileTooLarge):
				respondError(c, response.CodeBadRequest, "图片大小超过限制", nil)
			case errors.Is(err, service.ErrFileTypeInvalid):
				respondError(c, response.CodeBadRequest, "图片类型不被允许", nil)
			default:
				respondError(c, response.CodeInternal, "保存图片失败", err)
			}
			return nil, false
		}

		path := service.PublicImagePath(filename)
		images[slot] = &path
	}
	return images, true
}

func formValue(c *gin.Context, key string) *string {
	if value, ok := c.GetPostForm(key); ok {
		trimmed := strings.TrimSpace(value)
		return &trimmed
	}
	return nil
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
