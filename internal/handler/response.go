package handler

import (
	"errors"
	"net/http"
	"strconv"

	"VidHub/internal/middleware"
	"VidHub/pkg/apperr"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ErrorResponse 定义了标准的API错误响应结构，Error只在500时携带原始错误
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// sendErrorResponse 是一个辅助函数，用于发送标准格式的错误响应
func sendErrorResponse(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, ErrorResponse{Message: message})
}

// sendError 把service层返回的业务错误映射为HTTP状态码
func sendError(c *gin.Context, err error) {
	var appErr *apperr.AppError
	if !errors.As(err, &appErr) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Message: "Server error", Error: err.Error()})
		return
	}
	resp := ErrorResponse{Message: appErr.Message}
	status := statusOf(appErr.Kind)
	if status == http.StatusInternalServerError && appErr.Cause != nil {
		resp.Error = appErr.Cause.Error()
	}
	c.AbortWithStatusJSON(status, resp)
}

func statusOf(kind apperr.Kind) int {
	switch kind {
	case apperr.KindValidation:
		return http.StatusBadRequest
	case apperr.KindUnauthenticated:
		return http.StatusUnauthorized
	case apperr.KindForbidden:
		return http.StatusForbidden
	case apperr.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// parseID 解析路径参数中的ID，失败直接写400
func parseID(c *gin.Context, param, invalidMsg string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil || id == 0 {
		sendErrorResponse(c, http.StatusBadRequest, invalidMsg)
		return 0, false
	}
	return id, true
}

// getUserID 取出认证中间件放入context的用户ID
func getUserID(c *gin.Context) (uint64, bool) {
	userID, ok := middleware.UserID(c)
	if !ok {
		// 路由没挂认证中间件时才会走到这里
		sendErrorResponse(c, http.StatusUnauthorized, "No token, authorization denied")
		return 0, false
	}
	return userID, true
}

// validationMessage 取第一个不满足binding标签的字段，查表得到提示；查不到或不是校验错误（比如JSON格式错）就用通用提示
func validationMessage(err error, messages map[string]string) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		if msg, ok := messages[fe.Field()+"."+fe.Tag()]; ok {
			return msg
		}
	}
	return "Invalid request body"
}
