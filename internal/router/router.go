package router

import (
	"fmt"
	"strings"

	"github.com/shoplite/internal/cache"
	"github.com/shoplite/internal/config"
	"github.com/shoplite/internal/constants"
	adminhandlers "github.com/shoplite/internal/http/handlers/admin"
	publichandlers "github.com/shoplite/internal/http/handlers/public"
	"github.com/shoplite/internal/logger"
	"github.com/shoplite/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)

	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "sl"
	}
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	authn := JWTAuthMiddleware(cfg.JWT.SecretKey)
	authenticated := RequireRoles(constants.RoleAdmin, constants.RoleUser)
	adminOnly := RequireRoles(constants.RoleAdmin)

	apiV1 := r.Group("/api/v1")
	{
		// 认证接口
		auth := apiV1.Group("/auth")
		{
			auth.POST("/login", RateLimitMiddleware(cache.Client(), loginRule, KeyByIPAndJSONField("email")), publicHandler.Login)
			auth.POST("/password-change", authn, authenticated, publicHandler.ChangePassword)
		}

		// 用户接口
		users := apiV1.Group("/users")
		{
			users.POST("", publicHandler.Register)
			users.GET("", authn, adminOnly, adminHandler.GetUsers)
			users.GET("/profile", authn, authenticated, publicHandler.GetProfile)
		}

		// 商品接口
		products := apiV1.Group("/products")
		{
			products.GET("", authn, authenticated, publicHandler.GetProducts)
			products.GET("/images/:filename", authn, authenticated, publicHandler.GetProductImage)
			products.GET("/:id", authn, authenticated, publicHandler.GetProduct)
			products.POST("", authn, adminOnly, adminHandler.CreateProduct)
			products.PUT("/:id", authn, adminOnly, adminHandler.UpdateProduct)
			products.DELETE("/:id", authn, adminOnly, adminHandler.DeleteProduct)
		}

		// 购物车接口
		cart := apiV1.Group("/cart")
		cart.Use(authn, authenticated)
		{
			cart.GET("", publicHandler.GetCart)
			cart.POST("", publicHandler.AddCartItem)
			cart.PUT("/:id", publicHandler.UpdateCartItem)
			cart.DELETE("", publicHandler.ClearCart)
			cart.DELETE("/:product_id", publicHandler.DeleteCartItem)
		}

		// 角色接口
		apiV1.GET("/role", authn, adminOnly, adminHandler.GetRoles)
	}

	return r
}
