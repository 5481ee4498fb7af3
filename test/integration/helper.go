package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// 集成测试辅助工具
// 将重复的代码（HTTP请求、JSON解析）封装成可复用的函数
//
// 运行方式：
//   先启动服务(依赖MySQL和Redis): go run ./cmd/api
//   go test -v ./test/integration/...
//
// 注意：会话状态保存在服务端,测试之间通过signout隔离

const (
	// BaseURL API基础URL
	BaseURL = "http://localhost:8080/api/v1"
	// Timeout HTTP请求超时时间
	Timeout = 10 * time.Second
)

// Response 统一响应结构
type Response struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// UserData 用户信息响应数据
type UserData struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FullName  string `json:"full_name"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

// SessionData 会话响应数据
type SessionData struct {
	User    *UserData `json:"user"`
	Loading bool      `json:"loading"`
}

// BookItem 图书列表项
type BookItem struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Author    string  `json:"author"`
	Price     int64   `json:"price"`
	PriceYuan string  `json:"price_yuan"`
	Category  string  `json:"category"`
	Rating    float64 `json:"rating"`
	Stock     int     `json:"stock"`
}

// BookListData 图书列表响应数据
type BookListData struct {
	List  []BookItem `json:"list"`
	Total int        `json:"total"`
}

// CartItemData 购物车行项目
type CartItemData struct {
	BookID   string `json:"book_id"`
	Title    string `json:"title"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
	Subtotal int64  `json:"subtotal"`
}

// CartData 购物车响应数据
type CartData struct {
	Items          []CartItemData `json:"items"`
	TotalItems     int            `json:"total_items"`
	TotalPrice     int64          `json:"total_price"`
	TotalPriceYuan string         `json:"total_price_yuan"`
}

// CategoriesData 分类列表响应数据
type CategoriesData struct {
	Categories []string `json:"categories"`
}

// doJSON 发送HTTP请求并解析统一响应结构
func doJSON(t *testing.T, method, url string, data interface{}) *Response {
	t.Helper()

	var body io.Reader
	if data != nil {
		jsonData, err := json.Marshal(data)
		require.NoError(t, err, "JSON序列化失败")
		body = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err, "创建HTTP请求失败")
	if data != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	client := &http.Client{Timeout: Timeout}
	resp, err := client.Do(req)
	require.NoError(t, err, "发送HTTP请求失败")
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "读取响应体失败")

	var result Response
	err = json.Unmarshal(raw, &result)
	require.NoError(t, err, "解析JSON响应失败: %s", string(raw))

	return &result
}

// PostJSON 发送POST请求并解析JSON响应
func PostJSON(t *testing.T, url string, data interface{}) *Response {
	return doJSON(t, http.MethodPost, url, data)
}

// GetJSON 发送GET请求并解析JSON响应
func GetJSON(t *testing.T, url string) *Response {
	return doJSON(t, http.MethodGet, url, nil)
}

// PutJSON 发送PUT请求并解析JSON响应
func PutJSON(t *testing.T, url string, data interface{}) *Response {
	return doJSON(t, http.MethodPut, url, data)
}

// DeleteJSON 发送DELETE请求并解析JSON响应
func DeleteJSON(t *testing.T, url string) *Response {
	return doJSON(t, http.MethodDelete, url, nil)
}

// GenerateTestEmail 生成唯一的测试邮箱
// 使用时间戳确保邮箱唯一性，避免测试重复运行时邮箱冲突
func GenerateTestEmail(prefix string) string {
	return fmt.Sprintf("%s_%d@test.com", prefix, time.Now().UnixNano())
}

// RegisterTestUser 注册并登录一个测试用户,返回邮箱
// 注意：注册接口不会自动登录,需要再调用signin
func RegisterTestUser(t *testing.T, prefix string) string {
	t.Helper()

	email := GenerateTestEmail(prefix)
	signUpReq := map[string]string{
		"email":     email,
		"password":  "Test1234",
		"full_name": "测试用户",
	}
	resp := PostJSON(t, BaseURL+"/auth/signup", signUpReq)
	require.Equal(t, 0, resp.Code, "注册失败: %s", resp.Message)

	signInReq := map[string]string{
		"email":    email,
		"password": "Test1234",
	}
	resp = PostJSON(t, BaseURL+"/auth/signin", signInReq)
	require.Equal(t, 0, resp.Code, "登录失败: %s", resp.Message)

	return email
}

// SignOut 登出当前会话(测试之间的状态隔离)
func SignOut(t *testing.T) {
	t.Helper()
	PostJSON(t, BaseURL+"/auth/signout", nil)
}

// ClearCart 清空购物车(测试之间的状态隔离)
func ClearCart(t *testing.T) {
	t.Helper()
	DeleteJSON(t, BaseURL+"/cart")
}
