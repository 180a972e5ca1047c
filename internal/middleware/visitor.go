package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// VisitorCookie 标识一个浏览器，聊天记录按它隔离。
	VisitorCookie = "lodge_visitor"
	// VisitorKey 是访客 ID 在 Gin 上下文中的键。
	VisitorKey = "visitorID"

	visitorCookieMaxAge = 365 * 24 * 60 * 60
)

// VisitorMiddleware 读取访客 cookie，没有或格式错误时签发一个新的 UUID。
func VisitorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		visitorID, err := c.Cookie(VisitorCookie)
		if err != nil || uuid.Validate(visitorID) != nil {
			visitorID = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(VisitorCookie, visitorID, visitorCookieMaxAge, "/", "", false, true)
		}
		c.Set(VisitorKey, visitorID)
		c.Next()
	}
}

// VisitorID 返回 VisitorMiddleware 写入上下文的访客 ID。
func VisitorID(c *gin.Context) string {
	return c.GetString(VisitorKey)
}
