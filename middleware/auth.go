package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"framekart-io/api/configs"
	"framekart-io/api/helper"
)

// SessionIDKey is the context key the auth middleware stores the session
// id under.
const SessionIDKey = "sessionID"

// Auth verifies the bearer session token, rejects blacklisted tokens and
// exposes the session id to handlers.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := configs.ExtractToken(c)
		if tokenString == "" {
			helper.HandleError(c, 401, errors.New("request does not contain an access token"), "request does not contain an access token")
			c.Abort()
			return
		}

		claims, err := configs.ValidateSessionToken(tokenString)
		if err != nil {
			helper.HandleError(c, 401, err, err.Error())
			c.Abort()
			return
		}

		if configs.REDIS != nil && !helper.IsTokenValid(configs.REDIS, tokenString) {
			helper.HandleError(c, 401, errors.New("token has been logged out, please login again"), "token has been logged out, please login again")
			c.Abort()
			return
		}

		c.Set(SessionIDKey, claims.SessionID)
		c.Next()
	}
}
