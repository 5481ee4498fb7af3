package session

import (
	"context"
	"log"
	"sync"
)

// Store 会话服务
// 状态机:Anonymous ←→ Authenticated(UserIdentity),外加瞬态loading标志
// 设计说明:
// 1. 进程启动时构造一次,loading=true,由启动阶段的CheckAuth解析一次
// 2. 网络操作(CheckAuth/SignIn/SignUp/SignOut)在调用Gateway期间不持有锁,
//    挂起期间读方看到的是调用前的完整快照
// 3. SignIn/SignUp把凭证错误和服务不可用作为error返回给调用方;
//    CheckAuth和SignOut吞掉所有远程错误,保证结束后状态确定
// 4. 只有已解析的用户身份会持久化,loading标志每次启动都重置为true
type Store struct {
	mu      sync.Mutex
	user    *UserIdentity
	loading bool

	gateway Gateway
	storage Storage

	listenerMu sync.Mutex
	listeners  map[int]func()
	nextID     int
}

// NewStore 创建会话服务并从Storage恢复上次解析的身份
// 恢复的身份只用于首屏展示,启动阶段的CheckAuth会重新向身份服务确认
func NewStore(ctx context.Context, gateway Gateway, storage Storage) *Store {
	s := &Store{
		loading:   true,
		gateway:   gateway,
		storage:   storage,
		listeners: make(map[int]func()),
	}

	state, ok, err := storage.Load(ctx)
	if err != nil {
		log.Printf("加载会话状态失败,按匿名处理: %v", err)
		return s
	}
	if ok {
		s.user = state.User
	}
	return s
}

// CheckAuth 启动时的会话检查
// 流程:查询当前会话 → 拉取用户资料 → 转为已认证
// 任何一步失败或会话不存在都落到匿名态;不论成败,结束后loading一定为false
func (s *Store) CheckAuth(ctx context.Context) {
	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
		s.notify()
	}()

	creds, ok, err := s.gateway.CurrentSession(ctx)
	if err != nil {
		log.Printf("会话检查失败: %v", err)
		s.setUser(ctx, nil)
		return
	}
	if !ok {
		s.setUser(ctx, nil)
		return
	}

	profile, err := s.gateway.Profile(ctx, creds.UserID)
	if err != nil {
		// 资料缺失视为认证失败(账号与资料不一致)
		log.Printf("会话检查拉取资料失败: %v", err)
		s.setUser(ctx, nil)
		return
	}

	s.setUser(ctx, &UserIdentity{
		ID:        creds.UserID,
		Email:     creds.Email,
		FullName:  profile.FullName,
		Role:      profile.Role,
		CreatedAt: profile.CreatedAt,
	})
}

// SignIn 邮箱密码登录
// 成功转为已认证并持久化身份;失败返回错误且状态保持不变
func (s *Store) SignIn(ctx context.Context, email, password string) error {
	creds, err := s.gateway.Authenticate(ctx, email, password)
	if err != nil {
		return err
	}

	profile, err := s.gateway.Profile(ctx, creds.UserID)
	if err != nil {
		// 资料缺失视为认证失败,不改变本地状态
		return err
	}

	s.setUser(ctx, &UserIdentity{
		ID:        creds.UserID,
		Email:     creds.Email,
		FullName:  profile.FullName,
		Role:      profile.Role,
		CreatedAt: profile.CreatedAt,
	})
	return nil
}

// SignUp 注册账号并创建资料(角色默认customer)
// 注意:注册成功不会转为已认证,需要随后显式登录或会话检查
func (s *Store) SignUp(ctx context.Context, email, password, fullName string) error {
	creds, err := s.gateway.Register(ctx, email, password)
	if err != nil {
		return err
	}

	return s.gateway.CreateProfile(ctx, NewProfile{
		UserID:   creds.UserID,
		Email:    creds.Email,
		FullName: fullName,
		Role:     RoleCustomer,
	})
}

// SignOut 登出
// 先通知身份服务结束会话(失败只记录日志),然后无条件转为匿名态
// 对调用方而言登出总是成功的
func (s *Store) SignOut(ctx context.Context) {
	if err := s.gateway.EndSession(ctx); err != nil {
		log.Printf("远程登出失败,本地会话仍将清除: %v", err)
	}
	s.setUser(ctx, nil)
}

// User 返回当前用户身份,匿名态时ok=false
func (s *Store) User() (user UserIdentity, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return UserIdentity{}, false
	}
	return *s.user, true
}

// Loading 启动会话检查是否尚未完成
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Subscribe 订阅状态变更,返回取消订阅函数
// 监听器在变更提交之后同步调用
func (s *Store) Subscribe(fn func()) (unsubscribe func()) {
	s.listenerMu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.listenerMu.Unlock()

	return func() {
		s.listenerMu.Lock()
		delete(s.listeners, id)
		s.listenerMu.Unlock()
	}
}

// setUser 提交新的会话状态并持久化
// 保存失败不影响内存状态(身份服务才是会话有效性的最终仲裁者)
func (s *Store) setUser(ctx context.Context, user *UserIdentity) {
	s.mu.Lock()
	s.user = user
	if err := s.storage.Save(ctx, State{User: user}); err != nil {
		log.Printf("保存会话状态失败: %v", err)
	}
	s.mu.Unlock()

	s.notify()
}

// notify 通知所有监听器,在锁外调用(允许监听器回读Store)
func (s *Store) notify() {
	s.listenerMu.Lock()
	fns := make([]func(), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.listenerMu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
