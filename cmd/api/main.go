package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	appcart "github.com/xiebiao/storefront/internal/application/cart"
	appcatalog "github.com/xiebiao/storefront/internal/application/catalog"
	appsession "github.com/xiebiao/storefront/internal/application/session"
	"github.com/xiebiao/storefront/internal/domain/cart"
	"github.com/xiebiao/storefront/internal/domain/session"
	"github.com/xiebiao/storefront/internal/infrastructure/config"
	"github.com/xiebiao/storefront/internal/infrastructure/identity"
	"github.com/xiebiao/storefront/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/storefront/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/storefront/internal/interface/http/handler"
	"github.com/xiebiao/storefront/internal/interface/http/middleware"
	"github.com/xiebiao/storefront/pkg/jwt"
	"github.com/xiebiao/storefront/pkg/metrics"
	"github.com/xiebiao/storefront/pkg/response"
)

// main 主程序入口
// 说明：手动依赖注入（wire.go中有等价的Wire配置）
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	fmt.Printf("✓ 配置加载成功\n")
	fmt.Printf("  - 服务端口: %d\n", cfg.Server.Port)
	fmt.Printf("  - 运行模式: %s\n", cfg.Server.Mode)
	fmt.Printf("  - 数据库: %s:%d/%s\n", cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
	fmt.Printf("  - Redis: %s\n", cfg.Redis.Addr())

	// 2. 初始化指标
	metrics.InitMetrics()

	// 3. 初始化数据库连接
	db, err := mysql.NewDB(cfg)
	if err != nil {
		log.Fatalf("初始化数据库失败: %v", err)
	}

	// 4. 初始化Redis连接
	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		log.Fatalf("初始化Redis失败: %v", err)
	}

	// 5. 依赖注入（手动组装）
	// 依赖链：Repository ← Gateway/Storage ← Store ← UseCase ← Handler

	// 基础设施层
	bookRepo := mysql.NewBookRepository(db)
	accountRepo := mysql.NewAccountRepository(db)
	profileRepo := mysql.NewProfileRepository(db)
	tokenStore := redis.NewTokenStore(redisClient, cfg.JWT.RefreshTokenExpire)
	cartStorage := redis.NewCartStateStore(redisClient)
	sessionStorage := redis.NewSessionStateStore(redisClient)
	jwtManager := jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)
	identityService := identity.NewService(
		accountRepo, profileRepo, tokenStore, jwtManager, cfg.JWT.AccessTokenExpire)

	// 领域层：两个状态Store,启动时从持久化记录恢复
	ctx := context.Background()
	cartStore := cart.NewStore(ctx, cartStorage)
	sessionStore := session.NewStore(ctx, identityService, sessionStorage)

	// 应用层
	browseBooksUseCase := appcatalog.NewBrowseBooksUseCase(bookRepo)
	getBookUseCase := appcatalog.NewGetBookUseCase(bookRepo)
	listCategoriesUseCase := appcatalog.NewListCategoriesUseCase(bookRepo)

	viewCartUseCase := appcart.NewViewCartUseCase(cartStore)
	addItemUseCase := appcart.NewAddItemUseCase(bookRepo, cartStore)
	updateItemUseCase := appcart.NewUpdateItemUseCase(cartStore)
	removeItemUseCase := appcart.NewRemoveItemUseCase(cartStore)
	clearCartUseCase := appcart.NewClearCartUseCase(cartStore)

	checkAuthUseCase := appsession.NewCheckAuthUseCase(sessionStore)
	currentSessionUseCase := appsession.NewCurrentSessionUseCase(sessionStore)
	signInUseCase := appsession.NewSignInUseCase(sessionStore)
	signUpUseCase := appsession.NewSignUpUseCase(sessionStore)
	signOutUseCase := appsession.NewSignOutUseCase(sessionStore)

	// 启动会话检查：向身份服务确认恢复的会话是否仍然有效
	if view := checkAuthUseCase.Execute(ctx); view.User != nil {
		fmt.Printf("✓ 恢复会话: %s\n", view.User.Email)
	} else {
		fmt.Println("✓ 无有效会话，以匿名态启动")
	}

	// 接口层
	catalogHandler := handler.NewCatalogHandler(
		browseBooksUseCase, getBookUseCase, listCategoriesUseCase)
	cartHandler := handler.NewCartHandler(
		viewCartUseCase, addItemUseCase, updateItemUseCase, removeItemUseCase, clearCartUseCase)
	sessionHandler := handler.NewSessionHandler(
		signInUseCase, signUpUseCase, signOutUseCase, currentSessionUseCase)
	authMiddleware := middleware.NewAuthMiddleware(sessionStore)

	// 6. 初始化Gin引擎
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	r.Use(middleware.Metrics())

	// 7. 注册路由
	registerRoutes(r, catalogHandler, cartHandler, sessionHandler, authMiddleware)

	// 8. 启动服务
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	fmt.Printf("\n🚀 服务启动成功！\n")
	fmt.Printf("   访问地址: http://localhost%s\n", addr)
	fmt.Printf("   健康检查: http://localhost%s/ping\n", addr)
	fmt.Printf("   图书目录: GET http://localhost%s/api/v1/books\n", addr)
	fmt.Printf("   购物车:   GET http://localhost%s/api/v1/cart\n", addr)
	fmt.Printf("   登录:     POST http://localhost%s/api/v1/auth/signin\n", addr)
	fmt.Printf("\n按Ctrl+C停止服务\n\n")

	if err := r.Run(addr); err != nil {
		log.Fatalf("启动服务失败: %v", err)
	}
}

// registerRoutes 注册路由
func registerRoutes(
	r *gin.Engine,
	catalogHandler *handler.CatalogHandler,
	cartHandler *handler.CartHandler,
	sessionHandler *handler.SessionHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// Prometheus指标
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger文档
	// 访问 http://localhost:8080/swagger/index.html 查看API文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API路由组
	v1 := r.Group("/api/v1")
	{
		// 目录模块（公开接口）
		books := v1.Group("/books")
		{
			books.GET("", catalogHandler.ListBooks)
			books.GET("/categories", catalogHandler.ListCategories)
			books.GET("/:id", catalogHandler.GetBook)
		}

		// 购物车模块（匿名也可使用）
		cartGroup := v1.Group("/cart")
		{
			cartGroup.GET("", cartHandler.ViewCart)
			cartGroup.DELETE("", cartHandler.ClearCart)
			cartGroup.POST("/items", cartHandler.AddItem)
			cartGroup.PUT("/items/:book_id", cartHandler.UpdateItem)
			cartGroup.DELETE("/items/:book_id", cartHandler.RemoveItem)
		}

		// 会话模块
		auth := v1.Group("/auth")
		{
			auth.POST("/signin", sessionHandler.SignIn)
			auth.POST("/signup", sessionHandler.SignUp)
			auth.POST("/signout", sessionHandler.SignOut)
			auth.GET("/session", sessionHandler.CurrentSession)
		}

		// 需要登录的路由
		authorized := v1.Group("")
		authorized.Use(authMiddleware.RequireAuth())
		{
			authorized.GET("/profile", sessionHandler.Profile)
		}
	}
}
