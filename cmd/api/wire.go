//go:build wireinject
// +build wireinject

// Wire依赖注入配置文件
//
// 说明：
// 1. Wire在编译期生成依赖组装代码，零运行时开销
// 2. 运行 `wire gen ./cmd/api` 生成wire_gen.go
// 3. main.go中的手动组装与这里的依赖图保持一致

package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	goredis "github.com/redis/go-redis/v9"

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
)

// ========================================
// Wire Provider Sets (依赖分组)
// ========================================

// infrastructureSet 基础设施层依赖
var infrastructureSet = wire.NewSet(
	config.Load,     // 加载配置文件
	mysql.NewDB,     // 创建MySQL连接
	redis.NewClient, // 创建Redis连接
)

// repositorySet 仓储层依赖
var repositorySet = wire.NewSet(
	mysql.NewBookRepository,    // 目录仓储
	mysql.NewAccountRepository, // 账号仓储
	mysql.NewProfileRepository, // 档案仓储
)

// storeSet 状态Store依赖
// 说明：Store的构造需要context(启动时恢复持久化状态)
var storeSet = wire.NewSet(
	provideJWTManager,
	provideTokenStore,
	provideIdentityService,
	redis.NewCartStateStore,
	redis.NewSessionStateStore,
	provideCartStore,
	provideSessionStore,
)

// applicationSet 应用层依赖
var applicationSet = wire.NewSet(
	appcatalog.NewBrowseBooksUseCase,
	appcatalog.NewGetBookUseCase,
	appcatalog.NewListCategoriesUseCase,
	appcart.NewViewCartUseCase,
	appcart.NewAddItemUseCase,
	appcart.NewUpdateItemUseCase,
	appcart.NewRemoveItemUseCase,
	appcart.NewClearCartUseCase,
	appsession.NewSignInUseCase,
	appsession.NewSignUpUseCase,
	appsession.NewSignOutUseCase,
	appsession.NewCurrentSessionUseCase,
)

// handlerSet HTTP处理器依赖
var handlerSet = wire.NewSet(
	handler.NewCatalogHandler,
	handler.NewCartHandler,
	handler.NewSessionHandler,
	middleware.NewAuthMiddleware,
)

// ========================================
// Custom Providers (自定义Provider)
// ========================================

// provideJWTManager 从配置创建JWT管理器
func provideJWTManager(cfg *config.Config) *jwt.Manager {
	return jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)
}

// provideTokenStore 从配置创建令牌存储(TTL与Refresh Token一致)
func provideTokenStore(client *goredis.Client, cfg *config.Config) *redis.TokenStore {
	return redis.NewTokenStore(client, cfg.JWT.RefreshTokenExpire)
}

// provideIdentityService 创建身份服务
func provideIdentityService(
	cfg *config.Config,
	accounts identity.AccountRepository,
	profiles identity.ProfileRepository,
	tokens *redis.TokenStore,
	jwtManager *jwt.Manager,
) *identity.Service {
	return identity.NewService(accounts, profiles, tokens, jwtManager, cfg.JWT.AccessTokenExpire)
}

// provideCartStore 创建购物车Store(启动时恢复持久化状态)
func provideCartStore(storage *redis.CartStateStore) *cart.Store {
	return cart.NewStore(context.Background(), storage)
}

// provideSessionStore 创建会话Store
func provideSessionStore(gateway *identity.Service, storage *redis.SessionStateStore) *session.Store {
	return session.NewStore(context.Background(), gateway, storage)
}

// provideGinEngine 创建并配置Gin引擎
func provideGinEngine(
	cfg *config.Config,
	catalogHandler *handler.CatalogHandler,
	cartHandler *handler.CartHandler,
	sessionHandler *handler.SessionHandler,
	authMiddleware *middleware.AuthMiddleware,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.Metrics())
	registerRoutes(r, catalogHandler, cartHandler, sessionHandler, authMiddleware)
	return r
}

// ========================================
// Wire Injector (依赖注入器)
// ========================================

// InitializeApp 初始化整个应用
func InitializeApp() (*gin.Engine, error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		storeSet,
		applicationSet,
		handlerSet,
		provideGinEngine,
	)
	return nil, nil
}
