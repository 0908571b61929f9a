package middleware

import (
	"nautiblog/models"
	"nautiblog/services"
	"nautiblog/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	userKey        = "current_user"
	SessionUserID  = "user_id"
	RememberCookie = "remember_token"
)

// CurrentUser resolves the identity of the request from the session, falling
// back to a valid remember-me cookie, and attaches the loaded user to the
// request context. Identity is always request-scoped, never global.
func CurrentUser(users *services.UserService, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)

		id, ok := session.Get(SessionUserID).(uint)
		if !ok {
			if token, err := c.Cookie(RememberCookie); err == nil {
				if uid, err := utils.ValidateRememberToken(token, secret); err == nil {
					id, ok = uid, true
					session.Set(SessionUserID, uid)
					if err := session.Save(); err != nil {
						_ = c.Error(err)
					}
				}
			}
		}

		if ok {
			if user, err := users.GetUserByID(id); err == nil {
				c.Set(userKey, user)
			}
		}

		c.Next()
	}
}

// UserFromContext returns the authenticated user of the request, if any.
func UserFromContext(c *gin.Context) (*models.User, bool) {
	v, exists := c.Get(userKey)
	if !exists {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}
