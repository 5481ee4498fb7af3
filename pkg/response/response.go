package response

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/xiebiao/storefront/pkg/errors"
)

// Response 统一响应结构
// 设计说明：
// 1. Code是业务错误码（非HTTP状态码），方便客户端判断错误类型
// 2. Message是用户友好的提示信息
// 3. Data是业务数据，成功时返回，失败时为null
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success 成功响应（Code=0表示成功）
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// Error 错误响应（自动处理AppError）
// 用法：
//
//	err := signInUseCase.Execute(...)
//	if err != nil {
//	    response.Error(c, err)
//	    return
//	}
func Error(c *gin.Context, err error) {
	// 提取AppError
	appErr := apperrors.GetAppError(err)

	// 内部错误只进日志，不返回给客户端
	if appErr.Err != nil {
		log.Printf("request failed: %v", appErr)
	}

	// 返回用户友好的错误信息
	c.JSON(http.StatusOK, Response{
		Code:    appErr.Code,
		Message: appErr.Message,
		Data:    nil,
	})
}

// ErrorWithCode 自定义错误码和消息
func ErrorWithCode(c *gin.Context, code int, message string) {
	c.JSON(http.StatusOK, Response{
		Code:    code,
		Message: message,
		Data:    nil,
	})
}

// =========================================
// 列表响应结构
// =========================================

// ListData 列表数据封装
// 说明：目录查询不分页（客户端在内存中过滤排序），只返回列表与总数
type ListData struct {
	List  interface{} `json:"list"`  // 数据列表
	Total int         `json:"total"` // 记录数
}

// SuccessWithList 列表成功响应
func SuccessWithList(c *gin.Context, list interface{}, total int) {
	Success(c, &ListData{List: list, Total: total})
}
