package admin

import (
	"github.com/shoplite/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetRoles 角色列表
func (h *Handler) GetRoles(c *gin.Context) {
	roles, err := h.RoleService.List(c.Request.Context())
	if err != nil {
		respondError(c, response.CodeInternal, "获取角色列表失败", err)
		return
	}

	response.Success(c, gin.H{"items": roles})
}
