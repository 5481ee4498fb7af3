package handler

import (
	"github.com/gin-gonic/gin"

	appsession "github.com/xiebiao/storefront/internal/application/session"
	"github.com/xiebiao/storefront/internal/interface/http/dto"
	apperrors "github.com/xiebiao/storefront/pkg/errors"
	"github.com/xiebiao/storefront/pkg/response"
)

// SessionHandler 会话HTTP处理器
type SessionHandler struct {
	signInUseCase         *appsession.SignInUseCase
	signUpUseCase         *appsession.SignUpUseCase
	signOutUseCase        *appsession.SignOutUseCase
	currentSessionUseCase *appsession.CurrentSessionUseCase
}

// NewSessionHandler 创建会话处理器
func NewSessionHandler(
	signInUseCase *appsession.SignInUseCase,
	signUpUseCase *appsession.SignUpUseCase,
	signOutUseCase *appsession.SignOutUseCase,
	currentSessionUseCase *appsession.CurrentSessionUseCase,
) *SessionHandler {
	return &SessionHandler{
		signInUseCase:         signInUseCase,
		signUpUseCase:         signUpUseCase,
		signOutUseCase:        signOutUseCase,
		currentSessionUseCase: currentSessionUseCase,
	}
}

// SignIn 登录
// @Summary      登录
// @Description  验证邮箱密码,成功后进入已认证态
// @Tags         会话
// @Accept       json
// @Produce      json
// @Param        request body dto.SignInRequest true "登录信息"
// @Success      200 {object} response.Response{data=dto.SessionResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      401 {object} response.Response "邮箱或密码错误"
// @Router       /api/v1/auth/signin [post]
func (h *SessionHandler) SignIn(c *gin.Context) {
	var req dto.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	view, err := h.signInUseCase.Execute(c.Request.Context(), appsession.SignInRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, toSessionResponse(view))
}

// SignUp 注册
// @Summary      注册
// @Description  创建新账号;注册成功不自动登录,需要再调用signin
// @Tags         会话
// @Accept       json
// @Produce      json
// @Param        request body dto.SignUpRequest true "注册信息"
// @Success      200 {object} response.Response "注册成功"
// @Failure      400 {object} response.Response "参数错误"
// @Failure      409 {object} response.Response "邮箱已存在"
// @Router       /api/v1/auth/signup [post]
func (h *SessionHandler) SignUp(c *gin.Context) {
	var req dto.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	err := h.signUpUseCase.Execute(c.Request.Context(), appsession.SignUpRequest{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

// SignOut 登出
// @Summary      登出
// @Description  本地会话必定清除,远程失败不影响结果
// @Tags         会话
// @Produce      json
// @Success      200 {object} response.Response{data=dto.SessionResponse}
// @Router       /api/v1/auth/signout [post]
func (h *SessionHandler) SignOut(c *gin.Context) {
	view := h.signOutUseCase.Execute(c.Request.Context())
	response.Success(c, toSessionResponse(view))
}

// CurrentSession 当前会话
// @Summary      查询当前会话状态
// @Tags         会话
// @Produce      json
// @Success      200 {object} response.Response{data=dto.SessionResponse}
// @Router       /api/v1/auth/session [get]
func (h *SessionHandler) CurrentSession(c *gin.Context) {
	view := h.currentSessionUseCase.Execute(c.Request.Context())
	response.Success(c, toSessionResponse(view))
}

// Profile 当前用户资料(需登录)
// @Summary      当前用户资料
// @Tags         会话
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response{data=dto.UserResponse}
// @Failure      401 {object} response.Response "未登录"
// @Router       /api/v1/profile [get]
func (h *SessionHandler) Profile(c *gin.Context) {
	view := h.currentSessionUseCase.Execute(c.Request.Context())
	if view.User == nil {
		response.Error(c, apperrors.ErrUnauthorized)
		return
	}
	response.Success(c, toUserResponse(view.User))
}

func toSessionResponse(view *appsession.SessionView) *dto.SessionResponse {
	resp := &dto.SessionResponse{Loading: view.Loading}
	if view.User != nil {
		resp.User = toUserResponse(view.User)
	}
	return resp
}

func toUserResponse(user *appsession.UserInfo) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}
