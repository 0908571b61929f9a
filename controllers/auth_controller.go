package controllers

import (
	"net/http"
	"strings"

	"nautiblog/config"
	"nautiblog/middleware"
	"nautiblog/models"
	"nautiblog/services"
	"nautiblog/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// loginFailedMessage is deliberately the same for unknown emails and wrong
// passwords so the login form cannot be used to enumerate accounts.
const loginFailedMessage = "Login failed. Check email and password."

type AuthController struct {
	userService *services.UserService
	secret      string
}

func NewAuthController(db *gorm.DB, cfg *config.Config) *AuthController {
	return &AuthController{
		userService: services.NewUserService(db),
		secret:      cfg.SessionSecret,
	}
}

// LoginPage renders the login form. Visitors who are already authenticated
// are sent home instead of being prompted again.
func (ac *AuthController) LoginPage(c *gin.Context) {
	if _, ok := middleware.UserFromContext(c); ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	render(c, http.StatusOK, "login.html", gin.H{
		"Title": "Admin Login",
		"Next":  c.Query("next"),
	})
}

func (ac *AuthController) Login(c *gin.Context) {
	if _, ok := middleware.UserFromContext(c); ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	var form models.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		utils.AddFlash(c, "danger", loginFailedMessage)
		render(c, http.StatusOK, "login.html", gin.H{
			"Title": "Admin Login",
			"Next":  c.PostForm("next"),
		})
		return
	}

	user, err := ac.userService.GetUserByEmail(form.Email)
	if err != nil || !user.CheckPassword(form.Password) {
		utils.AddFlash(c, "danger", loginFailedMessage)
		render(c, http.StatusOK, "login.html", gin.H{
			"Title": "Admin Login",
			"Next":  form.Next,
		})
		return
	}

	session := sessions.Default(c)
	session.Set(middleware.SessionUserID, user.ID)
	if err := session.Save(); err != nil {
		c.String(http.StatusInternalServerError, "failed to establish session")
		return
	}

	if form.Remember {
		token, err := utils.GenerateRememberToken(user.ID, ac.secret)
		if err == nil {
			c.SetCookie(middleware.RememberCookie, token,
				int(utils.RememberTokenAge.Seconds()), "/", "", false, true)
		}
	}

	if user.IsAdmin {
		utils.AddFlash(c, "success", "Hello admin "+user.Email+"! Welcome back.")
		c.Redirect(http.StatusFound, safeNext(form.Next, "/admin/dashboard"))
		return
	}

	utils.AddFlash(c, "info", "Logged in, but this account has no admin access.")
	c.Redirect(http.StatusFound, safeNext(form.Next, "/"))
}

func (ac *AuthController) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Delete(middleware.SessionUserID)
	if err := session.Save(); err != nil {
		_ = c.Error(err)
	}
	c.SetCookie(middleware.RememberCookie, "", -1, "/", "", false, true)

	utils.AddFlash(c, "success", "You have been logged out.")
	c.Redirect(http.StatusFound, "/")
}

// safeNext only honors local redirect targets; anything else falls back, so a
// crafted next parameter cannot send the user off-site.
func safeNext(next, fallback string) string {
	if strings.HasPrefix(next, "/") && !strings.HasPrefix(next, "//") {
		return next
	}
	return fallback
}
