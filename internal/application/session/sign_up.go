package session

import (
	"context"

	"github.com/xiebiao/storefront/internal/domain/session"
	"github.com/xiebiao/storefront/pkg/metrics"
)

// SignUpUseCase 注册用例
// 注意:注册成功不会建立本地会话,前端需要引导用户随后显式登录
type SignUpUseCase struct {
	sessionStore *session.Store
}

// NewSignUpUseCase 创建注册用例
func NewSignUpUseCase(sessionStore *session.Store) *SignUpUseCase {
	return &SignUpUseCase{sessionStore: sessionStore}
}

// SignUpRequest 注册请求DTO
type SignUpRequest struct {
	Email    string
	Password string
	FullName string
}

// Execute 执行注册用例
// 创建账号与资料记录(角色默认customer);失败返回带业务错误码的AppError
func (uc *SignUpUseCase) Execute(ctx context.Context, req SignUpRequest) error {
	if err := uc.sessionStore.SignUp(ctx, req.Email, req.Password, req.FullName); err != nil {
		metrics.RecordAuthAttempt("sign_up", false)
		return err
	}

	metrics.RecordAuthAttempt("sign_up", true)
	return nil
}
