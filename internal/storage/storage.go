package storage

import "portfolio/internal/models"

// Store is the single data-access contract for the whole application. Two
// implementations exist: MemoryStore for local development and tests, and
// GormStore backed by a relational database. Exactly one is constructed at
// process start and passed by handle to everything that needs it.
//
// Reads return (nil, nil) on a miss. Deletes are idempotent and never fail on
// an absent id. List results are ordered newest first, with a stable order
// for records sharing a creation timestamp.
type Store interface {
	// Users. UpsertUser inserts when the id is unseen, otherwise merges the
	// supplied fields, preserving CreatedAt and refreshing UpdatedAt. An
	// empty id is a ValidationError.
	GetUser(id string) (*models.User, error)
	UpsertUser(user *models.User) (*models.User, error)

	// Projects. statusFilter narrows the list to a single status; the empty
	// string returns everything (admin surface only). CreateProject assigns
	// the next sequential id, defaults Status to draft and Tags to empty,
	// and stamps CreatedAt and UpdatedAt identically. UpdateProject applies
	// merge semantics and fails with NotFoundError on an unknown id.
	GetProjects(statusFilter string) ([]models.Project, error)
	GetProject(id int) (*models.Project, error)
	GetProjectBySlug(slug string) (*models.Project, error)
	CreateProject(p *models.Project) (*models.Project, error)
	UpdateProject(id int, upd models.ProjectUpdate) (*models.Project, error)
	DeleteProject(id int) error

	// Media. Records are immutable after creation.
	GetMedia() ([]models.Media, error)
	GetMediaByID(id int) (*models.Media, error)
	CreateMedia(m *models.Media) (*models.Media, error)
	DeleteMedia(id int) error

	// Contact submissions. CreateContact forces Status to "new" regardless
	// of the caller's value. UpdateContactStatus is a no-op on an unknown id.
	GetContacts() ([]models.ContactSubmission, error)
	CreateContact(c *models.ContactSubmission) (*models.ContactSubmission, error)
	UpdateContactStatus(id int, status string) error

	// Sessions, used by the auth layer. GetSession does not return expired
	// sessions. DeleteExpiredSessions reports how many rows were removed.
	CreateSession(s *models.Session) error
	GetSession(id string) (*models.Session, error)
	DeleteSession(id string) error
	DeleteExpiredSessions() (int64, error)
}
