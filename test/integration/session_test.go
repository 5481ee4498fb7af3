package integration

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 会话模块集成测试
//
// 测试场景覆盖：
// 1. 注册(注册成功不自动登录)
// 2. 登录/登出
// 3. 会话查询
// 4. 需要登录的接口

func getSession(t *testing.T) SessionData {
	t.Helper()
	resp := GetJSON(t, BaseURL+"/auth/session")
	require.Equal(t, 0, resp.Code, "查询会话失败: %s", resp.Message)

	var data SessionData
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	return data
}

// TestSignUp 测试注册
func TestSignUp(t *testing.T) {
	SignOut(t)

	t.Run("注册成功但不自动登录", func(t *testing.T) {
		email := GenerateTestEmail("signup")
		resp := PostJSON(t, BaseURL+"/auth/signup", map[string]string{
			"email":     email,
			"password":  "Test1234",
			"full_name": "测试用户",
		})
		require.Equal(t, 0, resp.Code, "注册失败: %s", resp.Message)

		session := getSession(t)
		assert.Nil(t, session.User, "注册成功后仍应是匿名态")

		t.Logf("✓ 注册成功且未自动登录: %s", email)
	})

	t.Run("重复邮箱注册失败", func(t *testing.T) {
		email := GenerateTestEmail("dup")
		req := map[string]string{
			"email":     email,
			"password":  "Test1234",
			"full_name": "测试用户",
		}
		resp1 := PostJSON(t, BaseURL+"/auth/signup", req)
		require.Equal(t, 0, resp1.Code)

		resp2 := PostJSON(t, BaseURL+"/auth/signup", req)
		assert.Equal(t, 40003, resp2.Code, "重复邮箱应返回40003")
	})

	t.Run("弱密码被拒绝", func(t *testing.T) {
		resp := PostJSON(t, BaseURL+"/auth/signup", map[string]string{
			"email":     GenerateTestEmail("weak"),
			"password":  "abcdefgh", // 没有数字
			"full_name": "测试用户",
		})
		assert.NotEqual(t, 0, resp.Code)
	})
}

// TestSignInSignOut 测试登录登出
func TestSignInSignOut(t *testing.T) {
	SignOut(t)

	email := GenerateTestEmail("signin")
	PostJSON(t, BaseURL+"/auth/signup", map[string]string{
		"email":     email,
		"password":  "Test1234",
		"full_name": "登录测试",
	})

	t.Run("密码错误返回40103", func(t *testing.T) {
		resp := PostJSON(t, BaseURL+"/auth/signin", map[string]string{
			"email":    email,
			"password": "Wrong1234",
		})
		assert.Equal(t, 40103, resp.Code)

		session := getSession(t)
		assert.Nil(t, session.User, "登录失败不应改变会话状态")
	})

	t.Run("正常登录", func(t *testing.T) {
		resp := PostJSON(t, BaseURL+"/auth/signin", map[string]string{
			"email":    email,
			"password": "Test1234",
		})
		require.Equal(t, 0, resp.Code, "登录失败: %s", resp.Message)

		var data SessionData
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		require.NotNil(t, data.User)
		assert.Equal(t, email, data.User.Email)
		assert.Equal(t, "登录测试", data.User.FullName)
		assert.Equal(t, "customer", data.User.Role)
	})

	t.Run("登录后可访问profile", func(t *testing.T) {
		resp := GetJSON(t, BaseURL+"/profile")
		require.Equal(t, 0, resp.Code, "profile查询失败: %s", resp.Message)

		var data UserData
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		assert.Equal(t, email, data.Email)
	})

	t.Run("登出后回到匿名态", func(t *testing.T) {
		resp := PostJSON(t, BaseURL+"/auth/signout", nil)
		require.Equal(t, 0, resp.Code, "登出应该总是成功")

		var data SessionData
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		assert.Nil(t, data.User)

		profileResp := GetJSON(t, BaseURL+"/profile")
		assert.Equal(t, 40100, profileResp.Code, "登出后profile应返回未登录")
	})

	t.Run("重复登出也成功", func(t *testing.T) {
		resp := PostJSON(t, BaseURL+"/auth/signout", nil)
		assert.Equal(t, 0, resp.Code, "匿名态登出也应返回成功")
	})
}

// TestRegisterTestUserHelper 测试辅助函数本身(注册+登录组合流程)
func TestRegisterTestUserHelper(t *testing.T) {
	SignOut(t)

	email := RegisterTestUser(t, "helper")

	session := getSession(t)
	require.NotNil(t, session.User)
	assert.Equal(t, email, session.User.Email)
	assert.False(t, session.Loading, "启动会话检查早已完成")

	SignOut(t)
}
