package session

import (
	"context"

	"github.com/xiebiao/storefront/internal/domain/session"
	"github.com/xiebiao/storefront/pkg/metrics"
)

// UserInfo 用户信息DTO
type UserInfo struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FullName  string `json:"full_name"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

// SessionView 会话视图DTO
// User为null表示匿名态;Loading表示启动会话检查尚未完成
type SessionView struct {
	User    *UserInfo `json:"user"`
	Loading bool      `json:"loading"`
}

// newSessionView 从Store构建会话视图
func newSessionView(store *session.Store) *SessionView {
	view := &SessionView{
		Loading: store.Loading(),
	}
	if user, ok := store.User(); ok {
		view.User = &UserInfo{
			ID:        user.ID,
			Email:     user.Email,
			FullName:  user.FullName,
			Role:      string(user.Role),
			CreatedAt: user.CreatedAt.Format("2006-01-02 15:04:05"),
		}
	}
	return view
}

// CheckAuthUseCase 启动会话检查用例
// 进程启动时执行一次:向身份服务确认会话有效性并解析用户资料
type CheckAuthUseCase struct {
	sessionStore *session.Store
}

// NewCheckAuthUseCase 创建启动会话检查用例
func NewCheckAuthUseCase(sessionStore *session.Store) *CheckAuthUseCase {
	return &CheckAuthUseCase{sessionStore: sessionStore}
}

// Execute 执行会话检查
// 不论远程成败都会正常返回,结束后loading一定为false
func (uc *CheckAuthUseCase) Execute(ctx context.Context) *SessionView {
	uc.sessionStore.CheckAuth(ctx)

	view := newSessionView(uc.sessionStore)
	metrics.RecordAuthAttempt("check_auth", view.User != nil)
	return view
}

// CurrentSessionUseCase 当前会话查询用例(只读,不触发远程调用)
type CurrentSessionUseCase struct {
	sessionStore *session.Store
}

// NewCurrentSessionUseCase 创建当前会话查询用例
func NewCurrentSessionUseCase(sessionStore *session.Store) *CurrentSessionUseCase {
	return &CurrentSessionUseCase{sessionStore: sessionStore}
}

// Execute 返回当前会话视图
func (uc *CurrentSessionUseCase) Execute(ctx context.Context) *SessionView {
	return newSessionView(uc.sessionStore)
}
