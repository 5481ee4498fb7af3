package identity

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/xiebiao/storefront/internal/domain/session"
	apperrors "github.com/xiebiao/storefront/pkg/errors"
	"github.com/xiebiao/storefront/pkg/jwt"
)

// Service 身份服务(实现session.Gateway)
// 设计说明：
// 1. 领域层只看到Gateway接口，认证机制(JWT、bcrypt、令牌存储)全部收敛在这里
// 2. 登录状态以令牌对的形式保存在TokenStore中，CurrentSession以此恢复会话
// 3. Access Token过期但Refresh Token有效时静默续期，对上层透明
type Service struct {
	accounts   AccountRepository
	profiles   ProfileRepository
	tokens     TokenStore
	jwtManager *jwt.Manager
	accessTTL  time.Duration
}

// NewService 创建身份服务
func NewService(
	accounts AccountRepository,
	profiles ProfileRepository,
	tokens TokenStore,
	jwtManager *jwt.Manager,
	accessTTL time.Duration,
) *Service {
	return &Service{
		accounts:   accounts,
		profiles:   profiles,
		tokens:     tokens,
		jwtManager: jwtManager,
		accessTTL:  accessTTL,
	}
}

var _ session.Gateway = (*Service)(nil)

// Authenticate 邮箱密码认证
// 业务规则：
// 1. 账号不存在与密码错误返回同一个错误，不暴露邮箱是否注册
// 2. 基础设施故障(数据库、缓存)与认证失败区分开，上层提示不同
func (s *Service) Authenticate(ctx context.Context, email, password string) (session.Credentials, error) {
	account, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return session.Credentials{}, apperrors.ErrInvalidPassword
		}
		return session.Credentials{}, apperrors.New(
			apperrors.ErrCodeRemoteUnavailable, "身份服务暂时不可用，请稍后重试")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return session.Credentials{}, apperrors.ErrInvalidPassword
		}
		return session.Credentials{}, apperrors.Wrap(err, "密码验证失败")
	}

	// 签发令牌对并保存，作为"已登录"的凭据
	profile, err := s.profiles.FindByUserID(ctx, account.ID)
	fullName := ""
	if err == nil {
		fullName = profile.FullName
	}
	pair, err := s.jwtManager.GenerateToken(account.ID, account.Email, fullName)
	if err != nil {
		return session.Credentials{}, apperrors.Wrap(err, "生成会话凭证失败")
	}
	if err := s.tokens.Save(ctx, pair.AccessToken, pair.RefreshToken); err != nil {
		return session.Credentials{}, err
	}

	return session.Credentials{UserID: account.ID, Email: account.Email}, nil
}

// Register 注册新账号
// 业务规则：
// 1. 邮箱格式校验
// 2. 密码强度校验（8-20位，包含字母和数字）
// 3. 密码bcrypt加密（cost=12）
// 4. 邮箱唯一性由数据库UNIQUE索引保证
// 注意：注册成功不等于登录成功，这里不签发令牌
func (s *Service) Register(ctx context.Context, email, password string) (session.Credentials, error) {
	if !isValidEmail(email) {
		return session.Credentials{}, apperrors.New(apperrors.ErrCodeInvalidParams, "邮箱格式不正确")
	}
	if err := validatePasswordStrength(password); err != nil {
		return session.Credentials{}, err
	}

	// bcrypt自动加盐，cost=12平衡安全性与性能
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return session.Credentials{}, apperrors.Wrap(err, "密码加密失败")
	}

	account := &Account{
		ID:        uuid.NewString(),
		Email:     email,
		Password:  string(hashedPassword),
		CreatedAt: time.Now(),
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		return session.Credentials{}, err // Repository已转换为业务错误
	}

	return session.Credentials{UserID: account.ID, Email: account.Email}, nil
}

// CurrentSession 恢复当前会话
// 恢复流程：
// 1. 从TokenStore加载令牌对，没有记录就是未登录
// 2. 解析Access Token；已过期则用Refresh Token静默续期
// 3. 黑名单中的令牌视为已登出
// 任何一步失败都按"没有有效会话"处理，不向上抛认证错误
func (s *Service) CurrentSession(ctx context.Context) (session.Credentials, bool, error) {
	accessToken, refreshToken, ok, err := s.tokens.Load(ctx)
	if err != nil {
		return session.Credentials{}, false, err
	}
	if !ok {
		return session.Credentials{}, false, nil
	}

	claims, err := s.jwtManager.ParseToken(accessToken)
	if err != nil {
		appErr := apperrors.GetAppError(err)
		if appErr.Code != apperrors.ErrCodeTokenExpired || refreshToken == "" {
			return session.Credentials{}, false, nil
		}
		// Access Token过期，尝试静默续期
		newAccess, refreshErr := s.jwtManager.RefreshAccessToken(refreshToken)
		if refreshErr != nil {
			return session.Credentials{}, false, nil
		}
		if saveErr := s.tokens.Save(ctx, newAccess, refreshToken); saveErr != nil {
			return session.Credentials{}, false, saveErr
		}
		accessToken = newAccess
		claims, err = s.jwtManager.ParseToken(accessToken)
		if err != nil {
			return session.Credentials{}, false, nil
		}
	}

	blacklisted, err := s.tokens.IsBlacklisted(ctx, accessToken)
	if err != nil {
		return session.Credentials{}, false, err
	}
	if blacklisted {
		return session.Credentials{}, false, nil
	}

	return session.Credentials{UserID: claims.UserID, Email: claims.Email}, true, nil
}

// EndSession 结束当前会话
// 把Access Token拉黑(TTL与令牌有效期一致)，再清除令牌记录
func (s *Service) EndSession(ctx context.Context) error {
	accessToken, _, ok, err := s.tokens.Load(ctx)
	if err != nil {
		return err
	}
	if ok {
		if err := s.tokens.Blacklist(ctx, accessToken, s.accessTTL); err != nil {
			return err
		}
	}
	return s.tokens.Clear(ctx)
}

// Profile 查询用户档案
func (s *Service) Profile(ctx context.Context, userID string) (session.Profile, error) {
	record, err := s.profiles.FindByUserID(ctx, userID)
	if err != nil {
		return session.Profile{}, err // Repository已转换为ErrProfileNotFound
	}
	return session.Profile{
		FullName:  record.FullName,
		Role:      record.Role,
		CreatedAt: record.CreatedAt,
	}, nil
}

// CreateProfile 创建用户档案
func (s *Service) CreateProfile(ctx context.Context, profile session.NewProfile) error {
	if len(profile.FullName) < 2 || len(profile.FullName) > 50 {
		return apperrors.New(apperrors.ErrCodeInvalidParams, "姓名长度应为2-50个字符")
	}
	return s.profiles.Create(ctx, &ProfileRecord{
		UserID:    profile.UserID,
		Email:     profile.Email,
		FullName:  profile.FullName,
		Role:      profile.Role,
		CreatedAt: time.Now(),
	})
}

// =========================================
// 辅助函数：业务规则校验
// =========================================

// isValidEmail 邮箱格式校验
// 简单的正则校验，生产环境可使用更严格的RFC 5322标准
func isValidEmail(email string) bool {
	pattern := `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
	matched, _ := regexp.MatchString(pattern, email)
	return matched
}

// validatePasswordStrength 密码强度校验
// 规则：8-20位，必须包含字母和数字
func validatePasswordStrength(password string) error {
	if len(password) < 8 || len(password) > 20 {
		return apperrors.ErrWeakPassword
	}

	hasLetter := regexp.MustCompile(`[a-zA-Z]`).MatchString(password)
	hasDigit := regexp.MustCompile(`[0-9]`).MatchString(password)

	if !hasLetter || !hasDigit {
		return apperrors.ErrWeakPassword
	}

	return nil
}
