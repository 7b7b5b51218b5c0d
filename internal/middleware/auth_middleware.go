package middleware

import (
	"net/http"
	"strings"

	"VidHub/pkg/token"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserID   = "userID"
	ContextUsername = "username"
)

// 流程：1、从http请求中取出"Authorization"字段 2、验证"Bearer [token]" 3、通过secretKey验证token有效性 4、若成功，把用户信息放入context
// 失败一律401，业务逻辑一行都不会执行
func AuthMiddleware(secretKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			// 立刻调用c.Abort()，阻止后续的任何处理器被执行
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "No token, authorization denied"})
			return
		}

		claims, ok := parseBearer(secretKey, authHeader)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token is not valid"})
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUsername, claims.Username)
		c.Next()
	}
}

// OptionalAuth 带了有效token就把用户放进context，没带或无效都照常放行（匿名）
func OptionalAuth(secretKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := parseBearer(secretKey, c.GetHeader("Authorization")); ok {
			c.Set(ContextUserID, claims.UserID)
			c.Set(ContextUsername, claims.Username)
		}
		c.Next()
	}
}

// 通常Token的格式是 "Bearer [token]"
func parseBearer(secretKey, authHeader string) (*token.Claims, bool) {
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return nil, false
	}
	claims, err := token.Parse(secretKey, parts[1])
	if err != nil {
		return nil, false
	}
	return claims, true
}

// UserID 取出认证后的用户ID
func UserID(c *gin.Context) (uint64, bool) {
	v, exists := c.Get(ContextUserID)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok
}
