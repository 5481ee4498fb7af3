package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/xiebiao/storefront/internal/infrastructure/identity"
	apperrors "github.com/xiebiao/storefront/pkg/errors"
)

// TokenStore 令牌存储(实现identity.TokenStore)
// 设计说明：
// 1. 当前会话的令牌对整体存为一条JSON记录，TTL与Refresh Token一致
// 2. 登出时把Access Token写入黑名单，TTL与Access Token一致
// 3. Key设计：auth:session、blacklist:{token}
type TokenStore struct {
	client     *redis.Client
	refreshTTL time.Duration
}

// NewTokenStore 创建令牌存储
func NewTokenStore(client *redis.Client, refreshTTL time.Duration) *TokenStore {
	return &TokenStore{client: client, refreshTTL: refreshTTL}
}

const tokenKey = "auth:session"

type tokenRecord struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Save 保存当前会话的令牌对
func (s *TokenStore) Save(ctx context.Context, accessToken, refreshToken string) error {
	data, err := json.Marshal(tokenRecord{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
	if err != nil {
		return apperrors.Wrap(err, "序列化令牌失败")
	}

	if err := s.client.Set(ctx, tokenKey, data, s.refreshTTL).Err(); err != nil {
		return apperrors.Wrap(err, "保存令牌失败")
	}
	return nil
}

// Load 加载当前会话的令牌对
func (s *TokenStore) Load(ctx context.Context) (string, string, bool, error) {
	data, err := s.client.Get(ctx, tokenKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", "", false, nil
		}
		return "", "", false, apperrors.Wrap(err, "加载令牌失败")
	}

	var record tokenRecord
	if err := json.Unmarshal(data, &record); err != nil {
		// 记录损坏等同于没有会话
		return "", "", false, nil
	}
	if record.AccessToken == "" {
		return "", "", false, nil
	}

	return record.AccessToken, record.RefreshToken, true, nil
}

// Clear 清除当前会话的令牌对
func (s *TokenStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, tokenKey).Err(); err != nil {
		return apperrors.Wrap(err, "清除令牌失败")
	}
	return nil
}

// Blacklist 将Token加入黑名单
// 使用场景：
// 1. 用户登出
// 2. Token泄露后强制失效
func (s *TokenStore) Blacklist(ctx context.Context, token string, ttl time.Duration) error {
	key := fmt.Sprintf("blacklist:%s", token)

	if err := s.client.Set(ctx, key, "revoked", ttl).Err(); err != nil {
		return apperrors.Wrap(err, "添加Token到黑名单失败")
	}
	return nil
}

// IsBlacklisted 检查Token是否在黑名单中
func (s *TokenStore) IsBlacklisted(ctx context.Context, token string) (bool, error) {
	key := fmt.Sprintf("blacklist:%s", token)

	exists, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return false, apperrors.Wrap(err, "检查黑名单失败")
	}

	return exists > 0, nil
}

var _ identity.TokenStore = (*TokenStore)(nil)
