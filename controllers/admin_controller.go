package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"nautiblog/config"
	"nautiblog/middleware"
	"nautiblog/models"
	"nautiblog/services"
	"nautiblog/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const postFormError = "The title must be between 2 and 100 characters and the content must not be empty."

type AdminController struct {
	postService  *services.PostService
	imageService *services.ImageService
}

func NewAdminController(db *gorm.DB, cfg *config.Config) *AdminController {
	images := services.NewImageService(cfg)
	return &AdminController{
		postService:  services.NewPostService(db, images),
		imageService: images,
	}
}

// Dashboard lists every post, newest first.
func (ad *AdminController) Dashboard(c *gin.Context) {
	posts, err := ad.postService.GetAllPosts()
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load posts")
		return
	}

	render(c, http.StatusOK, "dashboard.html", gin.H{
		"Title": "Admin Dashboard",
		"Posts": posts,
	})
}

func (ad *AdminController) NewPostPage(c *gin.Context) {
	render(c, http.StatusOK, "post_form.html", gin.H{
		"Title":  "New post",
		"Legend": "New post",
		"Form":   &models.PostForm{},
	})
}

func (ad *AdminController) CreatePost(c *gin.Context) {
	var form models.PostForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusOK, "post_form.html", gin.H{
			"Title":  "New post",
			"Legend": "New post",
			"Form":   &form,
			"Error":  postFormError,
		})
		return
	}

	imageFile, ok := ad.storeUploadedImage(c, gin.H{
		"Title":  "New post",
		"Legend": "New post",
		"Form":   &form,
	})
	if !ok {
		return
	}

	user, _ := middleware.UserFromContext(c)
	if _, err := ad.postService.CreatePost(&form, imageFile, &user.ID); err != nil {
		c.String(http.StatusInternalServerError, "failed to create post")
		return
	}

	utils.AddFlash(c, "success", "Your post has been created!")
	c.Redirect(http.StatusFound, "/admin/dashboard")
}

func (ad *AdminController) UpdatePostPage(c *gin.Context) {
	post, ok := ad.loadPost(c)
	if !ok {
		return
	}

	render(c, http.StatusOK, "post_form.html", gin.H{
		"Title":  "Update post",
		"Legend": "Update post",
		"Form":   &models.PostForm{Title: post.Title, Content: post.Content},
		"Post":   post,
	})
}

func (ad *AdminController) UpdatePost(c *gin.Context) {
	post, ok := ad.loadPost(c)
	if !ok {
		return
	}

	var form models.PostForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusOK, "post_form.html", gin.H{
			"Title":  "Update post",
			"Legend": "Update post",
			"Form":   &form,
			"Post":   post,
			"Error":  postFormError,
		})
		return
	}

	imageFile, ok := ad.storeUploadedImage(c, gin.H{
		"Title":  "Update post",
		"Legend": "Update post",
		"Form":   &form,
		"Post":   post,
	})
	if !ok {
		return
	}

	if _, err := ad.postService.UpdatePost(post.ID, &form, imageFile); err != nil {
		c.String(http.StatusInternalServerError, "failed to update post")
		return
	}

	utils.AddFlash(c, "success", "Your post has been updated!")
	c.Redirect(http.StatusFound, "/admin/dashboard")
}

// DeletePost is bound to POST only, so a plain link or a prefetch can never
// trigger it.
func (ad *AdminController) DeletePost(c *gin.Context) {
	post, ok := ad.loadPost(c)
	if !ok {
		return
	}

	if err := ad.postService.DeletePost(post.ID); err != nil {
		c.String(http.StatusInternalServerError, "failed to delete post")
		return
	}

	utils.AddFlash(c, "success", "The post has been permanently deleted!")
	c.Redirect(http.StatusFound, "/admin/dashboard")
}

func (ad *AdminController) loadPost(c *gin.Context) (*models.Post, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		renderNotFound(c)
		return nil, false
	}

	post, err := ad.postService.GetPostByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			renderNotFound(c)
			return nil, false
		}
		c.String(http.StatusInternalServerError, "failed to load post")
		return nil, false
	}

	return post, true
}

// storeUploadedImage persists the optional "image" form file. It returns an
// empty filename when no file was submitted; on a disallowed extension it
// re-renders the form and reports false.
func (ad *AdminController) storeUploadedImage(c *gin.Context, formData gin.H) (string, bool) {
	file, err := c.FormFile("image")
	if err != nil || file.Filename == "" {
		return "", true
	}

	name, err := ad.imageService.Store(file)
	if err != nil {
		if errors.Is(err, services.ErrUnsupportedExtension) {
			formData["Error"] = "Only images (PNG, JPG, JPEG, GIF) are allowed."
			render(c, http.StatusOK, "post_form.html", formData)
			return "", false
		}
		c.String(http.StatusInternalServerError, "failed to store image")
		return "", false
	}

	return name, true
}
