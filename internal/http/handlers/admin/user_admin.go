package admin

import (
	"strconv"

	"github.com/shoplite/internal/http/response"
	"github.com/shoplite/internal/repository"

	"github.com/gin-gonic/gin"
)

// GetUsers 用户列表
func (h *Handler) GetUsers(c *gin.Context) {
	filter := repository.UserListFilter{
		Page:     parseIntQuery(c, "page", 1),
		PageSize: parseIntQuery(c, "page_size", 0),
	}

	users, total, err := h.UserService.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "获取用户列表失败", err)
		return
	}

	response.SuccessWithPage(c, gin.H{"items": users}, response.Pagination{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		Total:    total,
	})
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
