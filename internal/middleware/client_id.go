package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ClientIDHeader = "X-Client-ID"
	clientIDCookie = "roadmap_client_id"
	clientIDKey    = "client_id"

	cookieMaxAge = 365 * 24 * 60 * 60
)

// ClientID 解析匿名客户端标识：优先请求头，其次 Cookie，
// 都没有就铸一个新的并种回 Cookie。完成勾选按这个标识隔离。
func ClientID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(ClientIDHeader)
		if id == "" {
			if v, err := c.Cookie(clientIDCookie); err == nil {
				id = v
			}
		}
		if id == "" {
			id = uuid.New().String()
			c.SetCookie(clientIDCookie, id, cookieMaxAge, "/", "", false, true)
		}
		c.Set(clientIDKey, id)
		c.Next()
	}
}

// GetClientID 取出中间件解析好的客户端标识
func GetClientID(c *gin.Context) string {
	return c.GetString(clientIDKey)
}
