package services

import (
	"bytes"
	"errors"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"nautiblog/config"
	"nautiblog/models"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

var ErrUnsupportedExtension = errors.New("unsupported file extension")

// Bounding box uploads are resized to fit into, aspect ratio preserved.
const maxImageSize = 500

type ImageService struct {
	uploadDir   string
	allowedExts []string
}

func NewImageService(cfg *config.Config) *ImageService {
	return &ImageService{
		uploadDir:   cfg.UploadDir,
		allowedExts: cfg.AllowedExtensions,
	}
}

// Allowed reports whether the file's extension is on the upload allow-list.
func (s *ImageService) Allowed(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, allowed := range s.allowedExts {
		if ext == allowed {
			return true
		}
	}
	return false
}

// Store validates, renames and persists an uploaded image. The stored name is
// a random token plus the original extension; the user-supplied filename never
// touches the filesystem. The image is resized to fit maxImageSize on its
// longer side; if decoding or re-encoding fails the original bytes are stored
// unmodified.
func (s *ImageService) Store(file *multipart.FileHeader) (string, error) {
	if !s.Allowed(file.Filename) {
		return "", ErrUnsupportedExtension
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return "", err
	}

	name := uuid.NewString() + ext
	path := filepath.Join(s.uploadDir, name)

	if img, err := imaging.Decode(bytes.NewReader(data)); err == nil {
		resized := imaging.Fit(img, maxImageSize, maxImageSize, imaging.Lanczos)
		if err := imaging.Save(resized, path); err == nil {
			return name, nil
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return name, nil
}

// Remove deletes a stored image. The shared default placeholder is never
// deleted, and a file already gone is not an error.
func (s *ImageService) Remove(filename string) error {
	if filename == "" || filename == models.DefaultImage {
		return nil
	}

	err := os.Remove(filepath.Join(s.uploadDir, filename))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (s *ImageService) Path(filename string) string {
	return filepath.Join(s.uploadDir, filename)
}
