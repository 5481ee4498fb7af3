package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/xiebiao/storefront/internal/domain/session"
	"github.com/xiebiao/storefront/pkg/response"
)

// AuthMiddleware 会话路由守卫
// 设计说明：
// 1. 登录态的唯一事实来源是session.Store,中间件不自己解析凭证
// 2. 令牌的签发、续期、黑名单都收在身份服务里,这一层只看"当前是否已登录"
// 3. 将用户信息注入Context,供后续Handler使用
type AuthMiddleware struct {
	sessions *session.Store
}

// NewAuthMiddleware 创建路由守卫
func NewAuthMiddleware(sessions *session.Store) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions}
}

// RequireAuth 要求登录
// 使用方式：
//
//	authorized := r.Group("/api/v1")
//	authorized.Use(authMiddleware.RequireAuth())
//	authorized.GET("/profile", handler.Profile)
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := m.sessions.User()
		if !ok {
			response.ErrorWithCode(c, 40100, "请先登录")
			c.Abort()
			return
		}

		// 将用户信息注入到Context（后续Handler可以使用）
		c.Set("user_id", user.ID)
		c.Set("email", user.Email)

		c.Next()
	}
}

// =========================================
// Context辅助函数（供Handler使用）
// =========================================

// GetUserID 从Context获取当前登录用户ID
func GetUserID(c *gin.Context) string {
	if userID, exists := c.Get("user_id"); exists {
		if uid, ok := userID.(string); ok {
			return uid
		}
	}
	return ""
}

// GetEmail 从Context获取当前登录用户邮箱
func GetEmail(c *gin.Context) string {
	if email, exists := c.Get("email"); exists {
		if e, ok := email.(string); ok {
			return e
		}
	}
	return ""
}

// MustGetUserID 从Context获取用户ID（如果不存在则panic）
// 说明：用于已经通过RequireAuth中间件的Handler
func MustGetUserID(c *gin.Context) string {
	userID := GetUserID(c)
	if userID == "" {
		panic("user_id not found in context")
	}
	return userID
}
