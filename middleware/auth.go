package middleware

import (
	"net/http"
	"net/url"

	"nautiblog/utils"

	"github.com/gin-gonic/gin"
)

// AdminRequired guards the admin routes. Anonymous visitors are sent to the
// login form with the requested path preserved as the post-login target;
// authenticated non-admins are turned away to the home page with a notice.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := UserFromContext(c)
		if !ok {
			c.Redirect(http.StatusFound, "/login?next="+url.QueryEscape(c.Request.URL.RequestURI()))
			c.Abort()
			return
		}

		if !user.IsAdmin {
			utils.AddFlash(c, "danger", "Access denied. This page is for administrators only.")
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}

		c.Next()
	}
}
