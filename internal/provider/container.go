package provider

import (
	"github.com/shoplite/internal/cache"
	"github.com/shoplite/internal/config"
	"github.com/shoplite/internal/logger"
	"github.com/shoplite/internal/models"
	"github.com/shoplite/internal/repository"
	"github.com/shoplite/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config *config.Config

	// Repositories
	UserRepo    repository.UserRepository
	RoleRepo    repository.RoleRepository
	ProductRepo repository.ProductRepository
	CartRepo    repository.CartRepository

	// Services
	AuthService    *service.AuthService
	UserService    *service.UserService
	RoleService    *service.RoleService
	ProductService *service.ProductService
	CartService    *service.CartService
	UploadService  *service.UploadService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}
	if cache.Enabled() {
		logger.Infow("provider_redis_enabled")
	}

	c := &Container{Config: cfg}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.UserRepo = repository.NewUserRepository(db)
	c.RoleRepo = repository.NewRoleRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
}

func (c *Container) initServices() {
	c.AuthService = service.NewAuthService(c.Config, c.UserRepo)
	c.UserService = service.NewUserService(c.UserRepo, c.RoleRepo, c.AuthService)
	c.RoleService = service.NewRoleService(c.RoleRepo)
	c.ProductService = service.NewProductService(c.ProductRepo)
	c.CartService = service.NewCartService(c.CartRepo, c.ProductRepo)
	c.UploadService = service.NewUploadService(c.Config)
}
