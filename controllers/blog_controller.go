package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"nautiblog/config"
	"nautiblog/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type BlogController struct {
	postService *services.PostService
}

func NewBlogController(db *gorm.DB, cfg *config.Config) *BlogController {
	images := services.NewImageService(cfg)
	return &BlogController{
		postService: services.NewPostService(db, images),
	}
}

// Index is the public home page: posts newest first, five per page. A bad or
// out-of-range page parameter degrades to a valid page, never an error.
func (bc *BlogController) Index(c *gin.Context) {
	pageNum, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		pageNum = 1
	}

	page, err := bc.postService.Paginate(pageNum)
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load posts")
		return
	}

	render(c, http.StatusOK, "index.html", gin.H{
		"Title": "Latest updates",
		"Page":  page,
	})
}

func (bc *BlogController) Show(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		renderNotFound(c)
		return
	}

	post, err := bc.postService.GetPostByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			renderNotFound(c)
			return
		}
		c.String(http.StatusInternalServerError, "failed to load post")
		return
	}

	render(c, http.StatusOK, "post_detail.html", gin.H{
		"Title": post.Title,
		"Post":  post,
	})
}
