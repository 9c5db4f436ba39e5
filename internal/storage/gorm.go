package storage

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"portfolio/internal/models"
)

// GormStore is the persistent implementation of Store. Each operation is a
// single statement (or a fetch followed by one statement) and relies on the
// database for atomicity and for the unique constraints on projects.slug,
// users.email and media.filename.
//
// The *gorm.DB must be opened with gorm.Config{TranslateError: true} so that
// driver unique-violation errors surface as gorm.ErrDuplicatedKey.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a store over an open GORM connection.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Migrate creates or updates the schema for all owned entities.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.Media{},
		&models.ContactSubmission{},
		&models.Session{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// classify maps a GORM error onto the storage taxonomy. Record-not-found is
// handled at each call site because its meaning depends on the operation.
func classify(err error, conflictMsg string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &ConflictError{Msg: conflictMsg}
	}
	return &TransportError{Err: err}
}

// GetUser returns the user with the given id, or nil if absent.
func (s *GormStore) GetUser(id string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, &TransportError{Err: err}
	}
	return &user, nil
}

// UpsertUser inserts or merges a user keyed by id.
func (s *GormStore) UpsertUser(user *models.User) (*models.User, error) {
	if user == nil || user.ID == "" {
		return nil, &ValidationError{Msg: "user id is required"}
	}

	existing, err := s.GetUser(user.ID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if existing == nil {
		created := *user
		created.CreatedAt = now
		created.UpdatedAt = now
		if err := s.db.Create(&created).Error; err != nil {
			return nil, classify(err, "email already in use")
		}
		return &created, nil
	}

	updates := map[string]any{"updated_at": now}
	if user.Email != nil {
		updates["email"] = *user.Email
	}
	if user.FirstName != "" {
		updates["first_name"] = user.FirstName
	}
	if user.LastName != "" {
		updates["last_name"] = user.LastName
	}
	if user.ProfileImage != "" {
		updates["profile_image"] = user.ProfileImage
	}
	if err := s.db.Model(&models.User{}).Where("id = ?", user.ID).Updates(updates).Error; err != nil {
		return nil, classify(err, "email already in use")
	}
	return s.GetUser(user.ID)
}

// GetProjects returns projects newest first, optionally filtered by status.
func (s *GormStore) GetProjects(statusFilter string) ([]models.Project, error) {
	var projects []models.Project
	q := s.db.Order("created_at DESC, id DESC")
	if statusFilter != "" {
		q = q.Where("status = ?", statusFilter)
	}
	if err := q.Find(&projects).Error; err != nil {
		return nil, &TransportError{Err: err}
	}
	return projects, nil
}

// GetProject returns the project with the given id, or nil if absent.
func (s *GormStore) GetProject(id int) (*models.Project, error) {
	var p models.Project
	if err := s.db.First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, &TransportError{Err: err}
	}
	return &p, nil
}

// GetProjectBySlug returns the project with the given slug, or nil if absent.
func (s *GormStore) GetProjectBySlug(slug string) (*models.Project, error) {
	var p models.Project
	if err := s.db.First(&p, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, &TransportError{Err: err}
	}
	return &p, nil
}

// CreateProject inserts a project; the database assigns the id.
func (s *GormStore) CreateProject(p *models.Project) (*models.Project, error) {
	if p.Status != "" && !models.ValidProjectStatus(p.Status) {
		return nil, &ValidationError{Msg: "invalid project status: " + p.Status}
	}

	now := time.Now()
	created := *p
	created.ID = 0
	if created.Status == "" {
		created.Status = models.ProjectStatusDraft
	}
	if created.Tags == nil {
		created.Tags = []string{}
	}
	created.CreatedAt = now
	created.UpdatedAt = now
	if err := s.db.Create(&created).Error; err != nil {
		return nil, classify(err, "project slug "+created.Slug+" already exists")
	}
	return &created, nil
}

// UpdateProject merges the supplied fields into an existing project.
func (s *GormStore) UpdateProject(id int, upd models.ProjectUpdate) (*models.Project, error) {
	if upd.Status != nil && !models.ValidProjectStatus(*upd.Status) {
		return nil, &ValidationError{Msg: "invalid project status: " + *upd.Status}
	}

	existing, err := s.GetProject(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, &NotFoundError{Entity: "project", ID: id}
	}

	updates := map[string]any{"updated_at": time.Now()}
	if upd.Title != nil {
		updates["title"] = *upd.Title
	}
	if upd.Slug != nil {
		updates["slug"] = *upd.Slug
	}
	if upd.Description != nil {
		updates["description"] = *upd.Description
	}
	if upd.Content != nil {
		updates["content"] = *upd.Content
	}
	if upd.FeaturedImage != nil {
		updates["featured_image"] = *upd.FeaturedImage
	}
	if upd.Category != nil {
		updates["category"] = *upd.Category
	}
	if upd.Status != nil {
		updates["status"] = *upd.Status
	}

	conflictMsg := "project slug conflict"
	if upd.Slug != nil {
		conflictMsg = "project slug " + *upd.Slug + " already exists"
	}
	// Tags need a second statement so the JSON serializer applies; one
	// transaction keeps the merge all-or-nothing when the first statement
	// hits a constraint.
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Project{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return err
		}
		if upd.Tags != nil {
			if err := tx.Model(existing).Select("tags").Updates(models.Project{Tags: *upd.Tags}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, classify(txErr, conflictMsg)
	}
	return s.GetProject(id)
}

// DeleteProject removes a project. Deleting an absent id is not an error.
func (s *GormStore) DeleteProject(id int) error {
	if err := s.db.Delete(&models.Project{}, "id = ?", id).Error; err != nil {
		return &TransportError{Err: err}
	}
	return nil
}

// GetMedia returns all media records, newest first.
func (s *GormStore) GetMedia() ([]models.Media, error) {
	var media []models.Media
	if err := s.db.Order("created_at DESC, id DESC").Find(&media).Error; err != nil {
		return nil, &TransportError{Err: err}
	}
	return media, nil
}

// GetMediaByID returns the media record with the given id, or nil if absent.
func (s *GormStore) GetMediaByID(id int) (*models.Media, error) {
	var m models.Media
	if err := s.db.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, &TransportError{Err: err}
	}
	return &m, nil
}

// CreateMedia inserts a media record; the database assigns the id.
func (s *GormStore) CreateMedia(m *models.Media) (*models.Media, error) {
	if _, err := models.ParseSize(m.Size); err != nil {
		return nil, &ValidationError{Msg: err.Error()}
	}

	created := *m
	created.ID = 0
	created.CreatedAt = time.Now()
	if err := s.db.Create(&created).Error; err != nil {
		return nil, classify(err, "media filename "+created.Filename+" already exists")
	}
	return &created, nil
}

// DeleteMedia removes a media record. Deleting an absent id is not an error.
func (s *GormStore) DeleteMedia(id int) error {
	if err := s.db.Delete(&models.Media{}, "id = ?", id).Error; err != nil {
		return &TransportError{Err: err}
	}
	return nil
}

// GetContacts returns all contact submissions, newest first.
func (s *GormStore) GetContacts() ([]models.ContactSubmission, error) {
	var contacts []models.ContactSubmission
	if err := s.db.Order("created_at DESC, id DESC").Find(&contacts).Error; err != nil {
		return nil, &TransportError{Err: err}
	}
	return contacts, nil
}

// CreateContact inserts a submission, forcing its status to "new".
func (s *GormStore) CreateContact(c *models.ContactSubmission) (*models.ContactSubmission, error) {
	created := *c
	created.ID = 0
	created.Status = models.ContactStatusNew
	created.CreatedAt = time.Now()
	if err := s.db.Create(&created).Error; err != nil {
		return nil, &TransportError{Err: err}
	}
	return &created, nil
}

// UpdateContactStatus replaces the status of a submission. Unknown ids are
// ignored.
func (s *GormStore) UpdateContactStatus(id int, status string) error {
	if !models.ValidContactStatus(status) {
		return &ValidationError{Msg: "invalid contact status: " + status}
	}
	if err := s.db.Model(&models.ContactSubmission{}).Where("id = ?", id).
		Update("status", status).Error; err != nil {
		return &TransportError{Err: err}
	}
	return nil
}

// CreateSession stores a session row.
func (s *GormStore) CreateSession(sess *models.Session) error {
	if sess == nil || sess.ID == "" {
		return &ValidationError{Msg: "session id is required"}
	}
	if err := s.db.Create(sess).Error; err != nil {
		return classify(err, "session id already exists")
	}
	return nil
}

// GetSession returns a live session, or nil if absent or expired.
func (s *GormStore) GetSession(id string) (*models.Session, error) {
	var sess models.Session
	if err := s.db.First(&sess, "id = ? AND expires_at > ?", id, time.Now()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, &TransportError{Err: err}
	}
	return &sess, nil
}

// DeleteSession removes a session. Deleting an absent id is not an error.
func (s *GormStore) DeleteSession(id string) error {
	if err := s.db.Delete(&models.Session{}, "id = ?", id).Error; err != nil {
		return &TransportError{Err: err}
	}
	return nil
}

// DeleteExpiredSessions removes all sessions past their expiry.
func (s *GormStore) DeleteExpiredSessions() (int64, error) {
	res := s.db.Delete(&models.Session{}, "expires_at <= ?", time.Now())
	if res.Error != nil {
		return 0, &TransportError{Err: res.Error}
	}
	return res.RowsAffected, nil
}

var _ Store = (*GormStore)(nil)
