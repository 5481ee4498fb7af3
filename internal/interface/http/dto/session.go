package dto

// SignInRequest HTTP登录请求
type SignInRequest struct {
	Email    string `json:"email" binding:"required,email" example:"reader@example.com"`
	Password string `json:"password" binding:"required,min=8,max=20" example:"secret123"`
}

// SignUpRequest HTTP注册请求
type SignUpRequest struct {
	Email    string `json:"email" binding:"required,email" example:"reader@example.com"`
	Password string `json:"password" binding:"required,min=8,max=20" example:"secret123"`
	FullName string `json:"full_name" binding:"required,min=2,max=50" example:"Jane Reader"`
}

// UserResponse 用户信息(不包含任何凭证字段)
type UserResponse struct {
	ID        string `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Email     string `json:"email" example:"reader@example.com"`
	FullName  string `json:"full_name" example:"Jane Reader"`
	Role      string `json:"role" example:"customer"`
	CreatedAt string `json:"created_at" example:"2024-01-15 10:00:00"`
}

// SessionResponse HTTP会话响应
// user为null表示匿名态,loading表示启动会话检查尚未完成
type SessionResponse struct {
	User    *UserResponse `json:"user"`
	Loading bool          `json:"loading" example:"false"`
}
