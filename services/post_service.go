package services

import (
	"time"

	"nautiblog/models"

	"gorm.io/gorm"
)

// PerPage is the fixed page size of the public post list.
const PerPage = 5

type PostService struct {
	db     *gorm.DB
	images *ImageService
}

func NewPostService(db *gorm.DB, images *ImageService) *PostService {
	return &PostService{db: db, images: images}
}

// Page is one page of the public post list.
type Page struct {
	Posts      []models.Post
	Number     int
	Total      int64
	TotalPages int
}

func (p *Page) HasPrev() bool { return p.Number > 1 }
func (p *Page) HasNext() bool { return p.Number < p.TotalPages }
func (p *Page) Prev() int     { return p.Number - 1 }
func (p *Page) Next() int     { return p.Number + 1 }

// Paginate returns posts newest first. Out-of-range page numbers degrade to
// an empty page rather than erroring.
func (s *PostService) Paginate(page int) (*Page, error) {
	if page < 1 {
		page = 1
	}

	var total int64
	if err := s.db.Model(&models.Post{}).Count(&total).Error; err != nil {
		return nil, err
	}

	var posts []models.Post
	err := s.db.Order("created_at DESC, id DESC").
		Limit(PerPage).
		Offset((page - 1) * PerPage).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}

	return &Page{
		Posts:      posts,
		Number:     page,
		Total:      total,
		TotalPages: int((total + PerPage - 1) / PerPage),
	}, nil
}

// GetAllPosts returns every post newest first, for the admin dashboard.
func (s *PostService) GetAllPosts() ([]models.Post, error) {
	var posts []models.Post
	err := s.db.Order("created_at DESC, id DESC").Find(&posts).Error
	return posts, err
}

func (s *PostService) GetPostByID(id uint) (*models.Post, error) {
	var post models.Post
	err := s.db.First(&post, id).Error
	return &post, err
}

// CreatePost persists a new post attributed to userID. An empty imageFile
// falls back to the default placeholder.
func (s *PostService) CreatePost(form *models.PostForm, imageFile string, userID *uint) (*models.Post, error) {
	if imageFile == "" {
		imageFile = models.DefaultImage
	}

	post := &models.Post{
		Title:     form.Title,
		Content:   form.Content,
		ImageFile: imageFile,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.db.Create(post).Error; err != nil {
		return nil, err
	}

	return post, nil
}

// UpdatePost overwrites title and content. A non-empty newImageFile replaces
// the stored image and deletes the previous file; the creation timestamp is
// left untouched.
func (s *PostService) UpdatePost(id uint, form *models.PostForm, newImageFile string) (*models.Post, error) {
	post, err := s.GetPostByID(id)
	if err != nil {
		return nil, err
	}

	if newImageFile != "" {
		if err := s.images.Remove(post.ImageFile); err != nil {
			return nil, err
		}
		post.ImageFile = newImageFile
	}

	post.Title = form.Title
	post.Content = form.Content

	if err := s.db.Save(post).Error; err != nil {
		return nil, err
	}

	return post, nil
}

// DeletePost removes the row and the associated image file. Deletion is
// permanent; there is no soft delete.
func (s *PostService) DeletePost(id uint) error {
	post, err := s.GetPostByID(id)
	if err != nil {
		return err
	}

	if err := s.images.Remove(post.ImageFile); err != nil {
		return err
	}

	return s.db.Delete(&models.Post{}, id).Error
}
