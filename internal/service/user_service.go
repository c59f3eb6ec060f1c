package service

import (
	"strings"

	"github.com/shoplite/internal/constants"
	"github.com/shoplite/internal/models"
	"github.com/shoplite/internal/repository"
)

// UserService 用户服务
type UserService struct {
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
	auth     *AuthService
}

// NewUserService 创建用户服务实例
func NewUserService(userRepo repository.UserRepository, roleRepo repository.RoleRepository, auth *AuthService) *UserService {
	return &UserService{
		userRepo: userRepo,
		roleRepo: roleRepo,
		auth:     auth,
	}
}

// RegisterInput 注册参数
type RegisterInput struct {
	Email           string
	Name            string
	Password        string
	ConfirmPassword string
}

// Register 用户注册。新用户固定使用 user 角色。
func (s *UserService) Register(input RegisterInput) (*models.User, error) {
	if input.Password != input.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}

	email := strings.TrimSpace(input.Email)
	existing, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailExists
	}

	role, err := s.roleRepo.GetByName(constants.RoleUser)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, ErrRoleNotFound
	}

	hash, err := s.auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        email,
		Name:         strings.TrimSpace(input.Name),
		PasswordHash: hash,
		RoleID:       role.ID,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	// 重新加载以带出角色关联
	return s.userRepo.GetByID(user.ID)
}

// List 用户列表
func (s *UserService) List(filter repository.UserListFilter) ([]models.User, int64, error) {
	return s.userRepo.List(filter)
}

// GetByID 获取用户
func (s *UserService) GetByID(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}
