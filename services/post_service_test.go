package services

import (
	"fmt"
	"os"
	"testing"

	"nautiblog/config"
	"nautiblog/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Post{}))
	return db
}

func newTestPostService(t *testing.T) (*PostService, *ImageService) {
	t.Helper()

	images := NewImageService(&config.Config{
		UploadDir:         t.TempDir(),
		AllowedExtensions: []string{".png", ".jpg", ".jpeg", ".gif"},
	})
	return NewPostService(newTestDB(t), images), images
}

func createPosts(t *testing.T, s *PostService, n int) []*models.Post {
	t.Helper()

	posts := make([]*models.Post, 0, n)
	for i := 0; i < n; i++ {
		post, err := s.CreatePost(&models.PostForm{
			Title:   fmt.Sprintf("Post %d", i+1),
			Content: "some content",
		}, "", nil)
		require.NoError(t, err)
		posts = append(posts, post)
	}
	return posts
}

func TestPostService_CreateAppearsFirst(t *testing.T) {
	s, _ := newTestPostService(t)
	createPosts(t, s, 3)

	latest, err := s.CreatePost(&models.PostForm{Title: "Newest", Content: "c"}, "", nil)
	require.NoError(t, err)

	page, err := s.Paginate(1)
	require.NoError(t, err)
	require.NotEmpty(t, page.Posts)
	assert.Equal(t, latest.ID, page.Posts[0].ID)
	assert.Equal(t, models.DefaultImage, page.Posts[0].ImageFile)
}

func TestPostService_PaginateDegradesGracefully(t *testing.T) {
	s, _ := newTestPostService(t)
	createPosts(t, s, 7)

	first, err := s.Paginate(1)
	require.NoError(t, err)
	assert.Len(t, first.Posts, PerPage)
	assert.Equal(t, 2, first.TotalPages)
	assert.True(t, first.HasNext())
	assert.False(t, first.HasPrev())

	second, err := s.Paginate(2)
	require.NoError(t, err)
	assert.Len(t, second.Posts, 2)

	beyond, err := s.Paginate(99)
	require.NoError(t, err)
	assert.Empty(t, beyond.Posts)

	clamped, err := s.Paginate(-3)
	require.NoError(t, err)
	assert.Equal(t, 1, clamped.Number)
	assert.Len(t, clamped.Posts, PerPage)
}

func TestPostService_PaginateIsStable(t *testing.T) {
	s, _ := newTestPostService(t)
	createPosts(t, s, 7)

	first, err := s.Paginate(1)
	require.NoError(t, err)
	again, err := s.Paginate(1)
	require.NoError(t, err)

	require.Len(t, again.Posts, len(first.Posts))
	for i := range first.Posts {
		assert.Equal(t, first.Posts[i].ID, again.Posts[i].ID)
	}
}

func TestPostService_UpdateReplacesImageAndKeepsTimestamp(t *testing.T) {
	s, images := newTestPostService(t)

	oldImage := "old-image.png"
	require.NoError(t, os.WriteFile(images.Path(oldImage), []byte("old"), 0o644))

	post, err := s.CreatePost(&models.PostForm{Title: "Original", Content: "c"}, oldImage, nil)
	require.NoError(t, err)
	created := post.CreatedAt

	newImage := "new-image.png"
	require.NoError(t, os.WriteFile(images.Path(newImage), []byte("new"), 0o644))

	updated, err := s.UpdatePost(post.ID, &models.PostForm{Title: "Changed", Content: "c2"}, newImage)
	require.NoError(t, err)

	assert.Equal(t, "Changed", updated.Title)
	assert.Equal(t, newImage, updated.ImageFile)
	assert.True(t, created.Equal(updated.CreatedAt), "update must not touch the creation timestamp")

	_, err = os.Stat(images.Path(oldImage))
	assert.True(t, os.IsNotExist(err), "replaced image file must be deleted")
}

func TestPostService_UpdateWithoutNewImageKeepsExisting(t *testing.T) {
	s, images := newTestPostService(t)

	img := "keep-me.png"
	require.NoError(t, os.WriteFile(images.Path(img), []byte("x"), 0o644))
	post, err := s.CreatePost(&models.PostForm{Title: "T", Content: "C"}, img, nil)
	require.NoError(t, err)

	updated, err := s.UpdatePost(post.ID, &models.PostForm{Title: "T2", Content: "C2"}, "")
	require.NoError(t, err)

	assert.Equal(t, img, updated.ImageFile)
	_, err = os.Stat(images.Path(img))
	assert.NoError(t, err)
}

func TestPostService_DeleteRemovesRowAndImage(t *testing.T) {
	s, images := newTestPostService(t)

	img := "delete-me.png"
	require.NoError(t, os.WriteFile(images.Path(img), []byte("x"), 0o644))
	post, err := s.CreatePost(&models.PostForm{Title: "T", Content: "C"}, img, nil)
	require.NoError(t, err)

	require.NoError(t, s.DeletePost(post.ID))

	_, err = s.GetPostByID(post.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	_, err = os.Stat(images.Path(img))
	assert.True(t, os.IsNotExist(err))
}

func TestPostService_DeleteSparesDefaultImage(t *testing.T) {
	s, images := newTestPostService(t)

	require.NoError(t, os.WriteFile(images.Path(models.DefaultImage), []byte("x"), 0o644))

	first, err := s.CreatePost(&models.PostForm{Title: "A", Content: "c"}, "", nil)
	require.NoError(t, err)
	_, err = s.CreatePost(&models.PostForm{Title: "B", Content: "c"}, "", nil)
	require.NoError(t, err)

	require.NoError(t, s.DeletePost(first.ID))

	_, err = os.Stat(images.Path(models.DefaultImage))
	assert.NoError(t, err, "default image is shared and never deleted")
}

func TestPostService_DeleteUnknownID(t *testing.T) {
	s, _ := newTestPostService(t)

	err := s.DeletePost(12345)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
