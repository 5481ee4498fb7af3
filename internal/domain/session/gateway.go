package session

import (
	"context"
	"time"
)

// Credentials 身份服务返回的账号凭证
type Credentials struct {
	UserID string
	Email  string
}

// Profile 用户资料记录
type Profile struct {
	FullName  string
	Role      Role
	CreatedAt time.Time
}

// NewProfile 创建用户资料的请求
type NewProfile struct {
	UserID   string
	Email    string
	FullName string
	Role     Role
}

// Gateway 远程身份/资料服务接口(消费方视角)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层提供实现(依赖倒置原则)
// 2. 账号与资料是两条记录:认证只证明账号存在,资料缺失视为认证失败
// 3. 所有方法都可能因网络或服务故障失败,Store负责决定哪些错误向上传递
type Gateway interface {
	// Authenticate 邮箱密码认证
	// 凭证错误返回ErrInvalidPassword,服务不可用返回ErrRemoteUnavailable
	Authenticate(ctx context.Context, email, password string) (Credentials, error)

	// Register 创建账号
	// 邮箱已存在返回ErrEmailDuplicate
	Register(ctx context.Context, email, password string) (Credentials, error)

	// CurrentSession 查询当前有效会话
	// ok=false表示没有会话(不是错误)
	CurrentSession(ctx context.Context) (creds Credentials, ok bool, err error)

	// EndSession 结束当前会话
	// 调用方(Store.SignOut)会忽略返回的错误
	EndSession(ctx context.Context) error

	// Profile 查询用户资料
	// 资料不存在返回ErrProfileNotFound
	Profile(ctx context.Context, userID string) (Profile, error)

	// CreateProfile 创建用户资料
	CreateProfile(ctx context.Context, p NewProfile) error
}

// Storage 会话状态的持久化边界
// 说明:只持久化已解析的用户身份(或其缺失),loading标志永不落盘
type Storage interface {
	// Save 保存会话状态
	Save(ctx context.Context, state State) error

	// Load 加载会话状态
	// ok=false表示没有可用的持久化记录
	Load(ctx context.Context) (State, bool, error)
}

// State 会话状态的持久化快照
type State struct {
	User *UserIdentity `json:"user"`
}
