package routes

import (
	"net/http"

	"nautiblog/config"
	"nautiblog/controllers"
	"nautiblog/middleware"
	"nautiblog/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// NewRouter assembles the engine: session store, identity middleware,
// templates and static mounts, then the route table.
func NewRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		// Session cookie; a longer lifetime comes from the remember token.
		MaxAge: 0,
	})
	r.Use(sessions.Sessions("nautiblog_session", store))
	r.Use(middleware.CurrentUser(services.NewUserService(db), cfg.SessionSecret))

	r.LoadHTMLGlob(cfg.TemplateGlob)
	r.Static("/uploads", cfg.UploadDir)

	blogController := controllers.NewBlogController(db, cfg)
	authController := controllers.NewAuthController(db, cfg)
	adminController := controllers.NewAdminController(db, cfg)

	SetupRoutes(r, blogController, authController, adminController)

	return r
}

func SetupRoutes(r *gin.Engine, blogController *controllers.BlogController, authController *controllers.AuthController, adminController *controllers.AdminController) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/", blogController.Index)
	r.GET("/home", blogController.Index)
	r.GET("/post/:id", blogController.Show)

	r.GET("/login", authController.LoginPage)
	r.POST("/login", authController.Login)
	r.GET("/logout", authController.Logout)

	admin := r.Group("/admin")
	admin.Use(middleware.AdminRequired())
	{
		admin.GET("/dashboard", adminController.Dashboard)
		admin.GET("/post/new", adminController.NewPostPage)
		admin.POST("/post/new", adminController.CreatePost)
		admin.GET("/post/:id/update", adminController.UpdatePostPage)
		admin.POST("/post/:id/update", adminController.UpdatePost)
		admin.POST("/post/:id/delete", adminController.DeletePost)
	}

	r.NoRoute(func(c *gin.Context) {
		c.HTML(http.StatusNotFound, "404.html", gin.H{"Title": "Not found"})
	})
}
