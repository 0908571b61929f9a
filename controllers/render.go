package controllers

import (
	"net/http"

	"nautiblog/middleware"
	"nautiblog/utils"

	"github.com/gin-gonic/gin"
)

// render wraps c.HTML and injects the data every template expects: the
// request identity and any pending flash notices.
func render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	user, _ := middleware.UserFromContext(c)
	data["CurrentUser"] = user
	data["IsAdmin"] = user != nil && user.IsAdmin
	data["Flashes"] = utils.Flashes(c)

	c.HTML(status, name, data)
}

func renderNotFound(c *gin.Context) {
	render(c, http.StatusNotFound, "404.html", gin.H{"Title": "Not found"})
}
