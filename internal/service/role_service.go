package service

import (
	"context"
	"time"

	"github.com/shoplite/internal/cache"
	"github.com/shoplite/internal/logger"
	"github.com/shoplite/internal/models"
	"github.com/shoplite/internal/repository"
)

const roleListCacheKey = "roles:list"
const roleListCacheTTL = 10 * time.Minute

// RoleService 角色服务
type RoleService struct {
	roleRepo repository.RoleRepository
}

// NewRoleService 创建角色服务实例
func NewRoleService(roleRepo repository.RoleRepository) *RoleService {
	return &RoleService{roleRepo: roleRepo}
}

// List 角色列表。角色集合几乎不变，启用 Redis 时走短期缓存。
func (s *RoleService) List(ctx context.Context) ([]models.Role, error) {
	var cached []models.Role
	if hit, err := cache.GetJSON(ctx, roleListCacheKey, &cached); err == nil && hit {
		return cached, nil
	}

	roles, err := s.roleRepo.List()
	if err != nil {
		return nil, err
	}
	if err := cache.SetJSON(ctx, roleListCacheKey, roles, roleListCacheTTL); err != nil {
		logger.Warnw("role_cache_write_failed", "error", err)
	}
	return roles, nil
}
