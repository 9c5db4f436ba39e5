package services

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"portfolio/internal/models"
	"portfolio/internal/storage"
)

// MediaService handles business logic for uploaded files: it owns the
// randomized on-disk naming and keeps the media table and the upload
// directory in sync.
type MediaService struct {
	store     storage.Store
	uploadDir string
	urlPrefix string
}

// NewMediaService creates a new MediaService. Files are written under
// uploadDir and exposed under urlPrefix (e.g. "/uploads").
func NewMediaService(store storage.Store, uploadDir, urlPrefix string) *MediaService {
	return &MediaService{
		store:     store,
		uploadDir: uploadDir,
		urlPrefix: urlPrefix,
	}
}

// ListMedia retrieves all media records, newest first.
func (s *MediaService) ListMedia() ([]models.Media, error) {
	return s.store.GetMedia()
}

// GetMedia retrieves a single media record by id. Absence is (nil, nil).
func (s *MediaService) GetMedia(id int) (*models.Media, error) {
	return s.store.GetMediaByID(id)
}

// StoredName returns a randomized filename preserving the original extension.
// Randomization is what guarantees the storage-layer uniqueness of filenames.
func (s *MediaService) StoredName(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return uuid.New().String() + ext
}

// UploadPath returns the on-disk destination for a stored filename.
func (s *MediaService) UploadPath(storedName string) string {
	return filepath.Join(s.uploadDir, storedName)
}

// CreateMedia records an already-persisted upload. The upload handler has
// validated MIME type, extension and size before this point.
func (s *MediaService) CreateMedia(storedName, originalName, mimeType string, sizeBytes int64, altText, uploadedBy *string) (*models.Media, error) {
	m := &models.Media{
		Filename:     storedName,
		OriginalName: originalName,
		MimeType:     mimeType,
		Size:         strconv.FormatInt(sizeBytes, 10),
		URL:          s.urlPrefix + "/" + storedName,
		AltText:      altText,
		UploadedBy:   uploadedBy,
	}
	created, err := s.store.CreateMedia(m)
	if err != nil {
		// The record is the source of truth; drop the orphaned file.
		if rmErr := os.Remove(s.UploadPath(storedName)); rmErr != nil && !os.IsNotExist(rmErr) {
			log.Printf("Failed to remove orphaned upload %s: %v", storedName, rmErr)
		}
		return nil, err
	}
	return created, nil
}

// DeleteMedia removes the record and its file. Unknown ids are not an error.
func (s *MediaService) DeleteMedia(id int) error {
	m, err := s.store.GetMediaByID(id)
	if err != nil {
		return err
	}
	if err := s.store.DeleteMedia(id); err != nil {
		return err
	}
	if m != nil {
		if rmErr := os.Remove(s.UploadPath(m.Filename)); rmErr != nil && !os.IsNotExist(rmErr) {
			return fmt.Errorf("media record deleted but file removal failed: %w", rmErr)
		}
	}
	return nil
}
