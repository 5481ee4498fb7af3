package session

import (
	"time"
)

// Role 用户角色
type Role string

const (
	// RoleCustomer 普通顾客(注册默认角色)
	RoleCustomer Role = "customer"
	// RoleAdmin 管理员
	RoleAdmin Role = "admin"
)

// UserIdentity 已认证用户身份
// 设计说明:
// 1. 由远程身份服务产生,店面侧从不自行构造或修改其内容
// 2. 是会话状态中唯一需要持久化的部分
type UserIdentity struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
