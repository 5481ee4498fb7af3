package identity

import (
	"context"
	"time"

	"github.com/xiebiao/storefront/internal/domain/session"
)

// Account 身份服务的账号记录(凭证主体)
// 与领域层的UserIdentity区分开:账号只承载认证信息,
// 展示用的档案信息由ProfileRecord承载
type Account struct {
	ID        string
	Email     string
	Password  string // bcrypt哈希
	CreatedAt time.Time
}

// ProfileRecord 用户档案记录
type ProfileRecord struct {
	UserID    string
	Email     string
	FullName  string
	Role      session.Role
	CreatedAt time.Time
}

// AccountRepository 账号仓储接口
type AccountRepository interface {
	// Create 创建账号(邮箱重复返回ErrEmailDuplicate)
	Create(ctx context.Context, account *Account) error

	// FindByEmail 根据邮箱查找账号
	FindByEmail(ctx context.Context, email string) (*Account, error)

	// FindByID 根据ID查找账号
	FindByID(ctx context.Context, id string) (*Account, error)
}

// ProfileRepository 档案仓储接口
type ProfileRepository interface {
	// Create 创建档案
	Create(ctx context.Context, profile *ProfileRecord) error

	// FindByUserID 根据用户ID查找档案
	FindByUserID(ctx context.Context, userID string) (*ProfileRecord, error)
}

// TokenStore 令牌存储接口(Redis实现)
// 设计说明:
// 1. Save/Load/Clear维护当前会话的令牌对,是"记住登录状态"的依据
// 2. Blacklist/IsBlacklisted支持登出后令牌立即失效
type TokenStore interface {
	Save(ctx context.Context, accessToken, refreshToken string) error
	Load(ctx context.Context) (accessToken, refreshToken string, ok bool, err error)
	Clear(ctx context.Context) error
	Blacklist(ctx context.Context, token string, ttl time.Duration) error
	IsBlacklisted(ctx context.Context, token string) (bool, error)
}
