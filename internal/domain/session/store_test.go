package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGateway 可编程的身份服务假实现
type fakeGateway struct {
	authenticateCreds Credentials
	authenticateErr   error

	registerCreds Credentials
	registerErr   error

	sessionCreds Credentials
	sessionOK    bool
	sessionErr   error

	endSessionErr   error
	endSessionCalls int

	profile    Profile
	profileErr error

	createdProfiles []NewProfile
	createErr       error
}

func (f *fakeGateway) Authenticate(ctx context.Context, email, password string) (Credentials, error) {
	return f.authenticateCreds, f.authenticateErr
}

func (f *fakeGateway) Register(ctx context.Context, email, password string) (Credentials, error) {
	return f.registerCreds, f.registerErr
}

func (f *fakeGateway) CurrentSession(ctx context.Context) (Credentials, bool, error) {
	return f.sessionCreds, f.sessionOK, f.sessionErr
}

func (f *fakeGateway) EndSession(ctx context.Context) error {
	f.endSessionCalls++
	return f.endSessionErr
}

func (f *fakeGateway) Profile(ctx context.Context, userID string) (Profile, error) {
	return f.profile, f.profileErr
}

func (f *fakeGateway) CreateProfile(ctx context.Context, profile NewProfile) error {
	f.createdProfiles = append(f.createdProfiles, profile)
	return f.createErr
}

// fakeSessionStorage 内存实现的Storage
type fakeSessionStorage struct {
	state     State
	hasState  bool
	saveCount int
}

func (f *fakeSessionStorage) Save(ctx context.Context, state State) error {
	f.saveCount++
	f.state = state
	f.hasState = true
	return nil
}

func (f *fakeSessionStorage) Load(ctx context.Context) (State, bool, error) {
	return f.state, f.hasState, nil
}

func validGateway() *fakeGateway {
	return &fakeGateway{
		authenticateCreds: Credentials{UserID: "u1", Email: "reader@example.com"},
		sessionCreds:      Credentials{UserID: "u1", Email: "reader@example.com"},
		sessionOK:         true,
		profile: Profile{
			FullName:  "Jane Reader",
			Role:      RoleCustomer,
			CreatedAt: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
		},
	}
}

func TestStore_CheckAuth(t *testing.T) {
	ctx := context.Background()

	t.Run("有效会话转为已认证", func(t *testing.T) {
		store := NewStore(ctx, validGateway(), &fakeSessionStorage{})
		require.True(t, store.Loading())

		store.CheckAuth(ctx)

		user, ok := store.User()
		require.True(t, ok)
		assert.Equal(t, "u1", user.ID)
		assert.Equal(t, "reader@example.com", user.Email)
		assert.Equal(t, "Jane Reader", user.FullName)
		assert.Equal(t, RoleCustomer, user.Role)
		assert.False(t, store.Loading())
	})

	t.Run("无会话落到匿名态", func(t *testing.T) {
		gw := validGateway()
		gw.sessionOK = false
		store := NewStore(ctx, gw, &fakeSessionStorage{})

		store.CheckAuth(ctx)

		_, ok := store.User()
		assert.False(t, ok)
		assert.False(t, store.Loading())
	})

	t.Run("远程失败也会清除loading", func(t *testing.T) {
		gw := validGateway()
		gw.sessionErr = errors.New("identity service down")
		store := NewStore(ctx, gw, &fakeSessionStorage{})

		store.CheckAuth(ctx)

		_, ok := store.User()
		assert.False(t, ok)
		assert.False(t, store.Loading())
	})

	t.Run("资料缺失视为认证失败", func(t *testing.T) {
		gw := validGateway()
		gw.profileErr = errors.New("profile not found")
		store := NewStore(ctx, gw, &fakeSessionStorage{})

		store.CheckAuth(ctx)

		_, ok := store.User()
		assert.False(t, ok)
	})

	t.Run("恢复的身份会被重新确认", func(t *testing.T) {
		storage := &fakeSessionStorage{}
		first := NewStore(ctx, validGateway(), storage)
		require.NoError(t, first.SignIn(ctx, "reader@example.com", "secret123"))

		// 重启:恢复身份用于首屏,但会话检查发现远程已失效
		gw := validGateway()
		gw.sessionOK = false
		second := NewStore(ctx, gw, storage)

		user, ok := second.User()
		require.True(t, ok, "启动时应先展示恢复的身份")
		assert.Equal(t, "u1", user.ID)

		second.CheckAuth(ctx)
		_, ok = second.User()
		assert.False(t, ok, "远程确认失败后应回到匿名态")
	})
}

func TestStore_SignIn(t *testing.T) {
	ctx := context.Background()

	t.Run("登录成功转为已认证并持久化", func(t *testing.T) {
		storage := &fakeSessionStorage{}
		store := NewStore(ctx, validGateway(), storage)

		err := store.SignIn(ctx, "reader@example.com", "secret123")

		require.NoError(t, err)
		user, ok := store.User()
		require.True(t, ok)
		assert.Equal(t, "Jane Reader", user.FullName)
		require.NotNil(t, storage.state.User)
		assert.Equal(t, "u1", storage.state.User.ID)
	})

	t.Run("凭证错误时状态保持不变", func(t *testing.T) {
		gw := validGateway()
		gw.authenticateErr = errors.New("邮箱或密码错误")
		storage := &fakeSessionStorage{}
		store := NewStore(ctx, gw, storage)

		err := store.SignIn(ctx, "reader@example.com", "wrong")

		require.Error(t, err)
		_, ok := store.User()
		assert.False(t, ok)
		assert.Equal(t, 0, storage.saveCount, "失败的登录不应落盘")
	})

	t.Run("资料拉取失败时状态保持不变", func(t *testing.T) {
		gw := validGateway()
		gw.profileErr = errors.New("profile not found")
		store := NewStore(ctx, gw, &fakeSessionStorage{})

		err := store.SignIn(ctx, "reader@example.com", "secret123")

		require.Error(t, err)
		_, ok := store.User()
		assert.False(t, ok)
	})
}

func TestStore_SignUp(t *testing.T) {
	ctx := context.Background()

	t.Run("注册成功但不自动登录", func(t *testing.T) {
		gw := validGateway()
		gw.registerCreds = Credentials{UserID: "u2", Email: "new@example.com"}
		store := NewStore(ctx, gw, &fakeSessionStorage{})

		err := store.SignUp(ctx, "new@example.com", "secret123", "New Reader")

		require.NoError(t, err)
		_, ok := store.User()
		assert.False(t, ok, "注册成功后仍应是匿名态")

		require.Len(t, gw.createdProfiles, 1)
		created := gw.createdProfiles[0]
		assert.Equal(t, "u2", created.UserID)
		assert.Equal(t, "New Reader", created.FullName)
		assert.Equal(t, RoleCustomer, created.Role)
	})

	t.Run("注册失败返回错误", func(t *testing.T) {
		gw := validGateway()
		gw.registerErr = errors.New("邮箱已被注册")
		store := NewStore(ctx, gw, &fakeSessionStorage{})

		err := store.SignUp(ctx, "dup@example.com", "secret123", "Dup Reader")

		require.Error(t, err)
		assert.Empty(t, gw.createdProfiles)
	})
}

func TestStore_SignOut(t *testing.T) {
	ctx := context.Background()

	t.Run("正常登出转为匿名态", func(t *testing.T) {
		gw := validGateway()
		store := NewStore(ctx, gw, &fakeSessionStorage{})
		require.NoError(t, store.SignIn(ctx, "reader@example.com", "secret123"))

		store.SignOut(ctx)

		_, ok := store.User()
		assert.False(t, ok)
		assert.Equal(t, 1, gw.endSessionCalls)
	})

	t.Run("远程登出失败本地仍清除", func(t *testing.T) {
		gw := validGateway()
		gw.endSessionErr = errors.New("identity service down")
		store := NewStore(ctx, gw, &fakeSessionStorage{})
		require.NoError(t, store.SignIn(ctx, "reader@example.com", "secret123"))

		store.SignOut(ctx)

		_, ok := store.User()
		assert.False(t, ok, "远程失败不影响本地登出")
	})
}

func TestStore_Subscribe(t *testing.T) {
	ctx := context.Background()
	store := NewStore(ctx, validGateway(), &fakeSessionStorage{})

	notified := 0
	unsubscribe := store.Subscribe(func() { notified++ })

	require.NoError(t, store.SignIn(ctx, "reader@example.com", "secret123"))
	assert.Equal(t, 1, notified)

	unsubscribe()
	store.SignOut(ctx)
	assert.Equal(t, 1, notified, "取消订阅后不应再收到通知")
}
