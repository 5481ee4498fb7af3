package redis

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/xiebiao/storefront/internal/domain/cart"
	"github.com/xiebiao/storefront/internal/domain/session"
	apperrors "github.com/xiebiao/storefront/pkg/errors"
)

// 状态快照存储
// 设计说明：
// 1. 购物车与会话状态以JSON快照形式落盘，每次变更后整体覆盖写入
// 2. 记录带版本号，格式升级时旧记录按"无状态"处理，不阻塞启动
// 3. 读不到、读坏了都不算错误：返回ok=false，由调用方从空状态开始
const (
	cartStateKey    = "storefront:cart"
	sessionStateKey = "storefront:session"

	stateVersion = 1
)

// cartRecord 购物车持久化记录
type cartRecord struct {
	Version int             `json:"version"`
	Items   []cart.LineItem `json:"items"`
}

// CartStateStore 购物车状态存储(实现cart.Storage)
type CartStateStore struct {
	client *redis.Client
}

// NewCartStateStore 创建购物车状态存储
func NewCartStateStore(client *redis.Client) *CartStateStore {
	return &CartStateStore{client: client}
}

// Save 保存购物车状态快照
func (s *CartStateStore) Save(ctx context.Context, state cart.State) error {
	record := cartRecord{
		Version: stateVersion,
		Items:   state.Items,
	}
	data, err := json.Marshal(record)
	if err != nil {
		return apperrors.Wrap(err, "序列化购物车状态失败")
	}

	if err := s.client.Set(ctx, cartStateKey, data, 0).Err(); err != nil {
		return apperrors.Wrap(err, "保存购物车状态失败")
	}
	return nil
}

// Load 加载购物车状态快照
// 返回值ok表示是否存在可用的历史状态
func (s *CartStateStore) Load(ctx context.Context) (cart.State, bool, error) {
	data, err := s.client.Get(ctx, cartStateKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return cart.State{}, false, nil
		}
		return cart.State{}, false, apperrors.Wrap(err, "加载购物车状态失败")
	}

	var record cartRecord
	if err := json.Unmarshal(data, &record); err != nil || record.Version != stateVersion {
		// 损坏或版本不兼容的记录直接丢弃
		log.Printf("购物车持久化记录不可用，按空状态处理: %v", err)
		return cart.State{}, false, nil
	}

	return cart.State{Items: record.Items}, true, nil
}

// sessionRecord 会话持久化记录
type sessionRecord struct {
	Version int                   `json:"version"`
	User    *session.UserIdentity `json:"user"`
}

// SessionStateStore 会话状态存储(实现session.Storage)
type SessionStateStore struct {
	client *redis.Client
}

// NewSessionStateStore 创建会话状态存储
func NewSessionStateStore(client *redis.Client) *SessionStateStore {
	return &SessionStateStore{client: client}
}

// Save 保存会话状态快照
// 注意：只持久化用户身份，loading等瞬态标志不落盘
func (s *SessionStateStore) Save(ctx context.Context, state session.State) error {
	// 未登录时清掉记录，避免残留旧身份
	if state.User == nil {
		if err := s.client.Del(ctx, sessionStateKey).Err(); err != nil {
			return apperrors.Wrap(err, "清除会话状态失败")
		}
		return nil
	}

	record := sessionRecord{
		Version: stateVersion,
		User:    state.User,
	}
	data, err := json.Marshal(record)
	if err != nil {
		return apperrors.Wrap(err, "序列化会话状态失败")
	}

	if err := s.client.Set(ctx, sessionStateKey, data, 0).Err(); err != nil {
		return apperrors.Wrap(err, "保存会话状态失败")
	}
	return nil
}

// Load 加载会话状态快照
func (s *SessionStateStore) Load(ctx context.Context) (session.State, bool, error) {
	data, err := s.client.Get(ctx, sessionStateKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return session.State{}, false, nil
		}
		return session.State{}, false, apperrors.Wrap(err, "加载会话状态失败")
	}

	var record sessionRecord
	if err := json.Unmarshal(data, &record); err != nil || record.Version != stateVersion || record.User == nil {
		log.Printf("会话持久化记录不可用，按未登录处理: %v", err)
		return session.State{}, false, nil
	}

	return session.State{User: record.User}, true, nil
}
