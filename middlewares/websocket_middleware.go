package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/vuminhtri/qr-dine/utils"
)

// WebSocketAuthMiddleware memvalidasi token dari query string untuk stream
// yang butuh login (topik staff dan logs). Browser tidak bisa mengirim
// header Authorization saat handshake websocket.
func WebSocketAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Query("token")
		if token == "" {
			c.AbortWithStatus(401)
			return
		}

		claims, err := utils.ParseToken(token)
		if err != nil || claims == nil {
			c.AbortWithStatus(401)
			return
		}

		c.Set("staff_id", claims.StaffID)
		c.Set("role", claims.Role)
		c.Next()
	}
}
