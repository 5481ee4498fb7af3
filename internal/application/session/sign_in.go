package session

import (
	"context"

	"github.com/xiebiao/storefront/internal/domain/session"
	"github.com/xiebiao/storefront/pkg/metrics"
)

// SignInUseCase 登录用例
// 设计说明:
// 1. 认证与资料解析都委托给会话服务,用例只做DTO转换与指标记录
// 2. 失败时返回带业务错误码的AppError,本地会话状态保持不变
type SignInUseCase struct {
	sessionStore *session.Store
}

// NewSignInUseCase 创建登录用例
func NewSignInUseCase(sessionStore *session.Store) *SignInUseCase {
	return &SignInUseCase{sessionStore: sessionStore}
}

// SignInRequest 登录请求DTO
type SignInRequest struct {
	Email    string
	Password string
}

// Execute 执行登录用例
func (uc *SignInUseCase) Execute(ctx context.Context, req SignInRequest) (*SessionView, error) {
	if err := uc.sessionStore.SignIn(ctx, req.Email, req.Password); err != nil {
		metrics.RecordAuthAttempt("sign_in", false)
		return nil, err
	}

	metrics.RecordAuthAttempt("sign_in", true)
	return newSessionView(uc.sessionStore), nil
}

// SignOutUseCase 登出用例
// 对调用方而言登出总是成功:远程登出失败只记录日志,本地会话必定清除
type SignOutUseCase struct {
	sessionStore *session.Store
}

// NewSignOutUseCase 创建登出用例
func NewSignOutUseCase(sessionStore *session.Store) *SignOutUseCase {
	return &SignOutUseCase{sessionStore: sessionStore}
}

// Execute 执行登出用例
func (uc *SignOutUseCase) Execute(ctx context.Context) *SessionView {
	uc.sessionStore.SignOut(ctx)
	metrics.RecordAuthAttempt("sign_out", true)
	return newSessionView(uc.sessionStore)
}
