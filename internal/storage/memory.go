package storage

import (
	"sort"
	"sync"
	"time"

	"portfolio/internal/models"
)

// MemoryStore is an in-process implementation of Store, used for local
// development and tests. State lives for the process lifetime only.
// Sequential ids only ever increment; deleting a record never frees its id.
type MemoryStore struct {
	mu sync.RWMutex

	users    map[string]models.User
	projects map[int]models.Project
	media    map[int]models.Media
	contacts map[int]models.ContactSubmission
	sessions map[string]models.Session

	nextProjectID int
	nextMediaID   int
	nextContactID int
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:         make(map[string]models.User),
		projects:      make(map[int]models.Project),
		media:         make(map[int]models.Media),
		contacts:      make(map[int]models.ContactSubmission),
		sessions:      make(map[string]models.Session),
		nextProjectID: 1,
		nextMediaID:   1,
		nextContactID: 1,
	}
}

// GetUser returns the user with the given id, or nil if absent.
func (s *MemoryStore) GetUser(id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

// UpsertUser inserts or merges a user keyed by id.
func (s *MemoryStore) UpsertUser(user *models.User) (*models.User, error) {
	if user == nil || user.ID == "" {
		return nil, &ValidationError{Msg: "user id is required"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if user.Email != nil {
		for id, other := range s.users {
			if id != user.ID && other.Email != nil && *other.Email == *user.Email {
				return nil, &ConflictError{Msg: "email " + *user.Email + " already in use"}
			}
		}
	}

	now := time.Now()
	existing, ok := s.users[user.ID]
	if !ok {
		created := models.User{
			ID:           user.ID,
			Email:        user.Email,
			FirstName:    user.FirstName,
			LastName:     user.LastName,
			ProfileImage: user.ProfileImage,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		s.users[user.ID] = created
		return &created, nil
	}

	// Merge: only supplied fields overwrite; CreatedAt survives.
	if user.Email != nil {
		existing.Email = user.Email
	}
	if user.FirstName != "" {
		existing.FirstName = user.FirstName
	}
	if user.LastName != "" {
		existing.LastName = user.LastName
	}
	if user.ProfileImage != "" {
		existing.ProfileImage = user.ProfileImage
	}
	existing.UpdatedAt = now
	s.users[user.ID] = existing
	return &existing, nil
}

// GetProjects returns projects newest first, optionally filtered by status.
func (s *MemoryStore) GetProjects(statusFilter string) ([]models.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	projects := make([]models.Project, 0, len(s.projects))
	for _, p := range s.projects {
		if statusFilter != "" && p.Status != statusFilter {
			continue
		}
		projects = append(projects, p)
	}
	sortNewestFirst(projects, func(p models.Project) (time.Time, int) {
		return p.CreatedAt, p.ID
	})
	return projects, nil
}

// GetProject returns the project with the given id, or nil if absent.
func (s *MemoryStore) GetProject(id int) (*models.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.projects[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// GetProjectBySlug returns the project with the given slug, or nil if absent.
func (s *MemoryStore) GetProjectBySlug(slug string) (*models.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.projects {
		if p.Slug == slug {
			return &p, nil
		}
	}
	return nil, nil
}

// CreateProject assigns the next sequential id and stores the project.
func (s *MemoryStore) CreateProject(p *models.Project) (*models.Project, error) {
	if p.Status != "" && !models.ValidProjectStatus(p.Status) {
		return nil, &ValidationError{Msg: "invalid project status: " + p.Status}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, other := range s.projects {
		if other.Slug == p.Slug {
			return nil, &ConflictError{Msg: "project slug " + p.Slug + " already exists"}
		}
	}

	now := time.Now()
	created := *p
	created.ID = s.nextProjectID
	s.nextProjectID++
	if created.Status == "" {
		created.Status = models.ProjectStatusDraft
	}
	if created.Tags == nil {
		created.Tags = []string{}
	}
	created.CreatedAt = now
	created.UpdatedAt = now
	s.projects[created.ID] = created
	return &created, nil
}

// UpdateProject merges the supplied fields into an existing project.
func (s *MemoryStore) UpdateProject(id int, upd models.ProjectUpdate) (*models.Project, error) {
	if upd.Status != nil && !models.ValidProjectStatus(*upd.Status) {
		return nil, &ValidationError{Msg: "invalid project status: " + *upd.Status}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.projects[id]
	if !ok {
		return nil, &NotFoundError{Entity: "project", ID: id}
	}

	if upd.Slug != nil && *upd.Slug != p.Slug {
		for _, other := range s.projects {
			if other.Slug == *upd.Slug {
				return nil, &ConflictError{Msg: "project slug " + *upd.Slug + " already exists"}
			}
		}
	}

	if upd.Title != nil {
		p.Title = *upd.Title
	}
	if upd.Slug != nil {
		p.Slug = *upd.Slug
	}
	if upd.Description != nil {
		p.Description = *upd.Description
	}
	if upd.Content != nil {
		p.Content = *upd.Content
	}
	if upd.FeaturedImage != nil {
		p.FeaturedImage = upd.FeaturedImage
	}
	if upd.Category != nil {
		p.Category = *upd.Category
	}
	if upd.Tags != nil {
		p.Tags = *upd.Tags
	}
	if upd.Status != nil {
		p.Status = *upd.Status
	}
	p.UpdatedAt = time.Now()
	s.projects[id] = p
	return &p, nil
}

// DeleteProject removes a project. Deleting an absent id is not an error.
func (s *MemoryStore) DeleteProject(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.projects, id)
	return nil
}

// GetMedia returns all media records, newest first.
func (s *MemoryStore) GetMedia() ([]models.Media, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	media := make([]models.Media, 0, len(s.media))
	for _, m := range s.media {
		media = append(media, m)
	}
	sortNewestFirst(media, func(m models.Media) (time.Time, int) {
		return m.CreatedAt, m.ID
	})
	return media, nil
}

// GetMediaByID returns the media record with the given id, or nil if absent.
func (s *MemoryStore) GetMediaByID(id int) (*models.Media, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.media[id]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

// CreateMedia assigns the next sequential id and stores the record.
func (s *MemoryStore) CreateMedia(m *models.Media) (*models.Media, error) {
	if _, err := models.ParseSize(m.Size); err != nil {
		return nil, &ValidationError{Msg: err.Error()}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, other := range s.media {
		if other.Filename == m.Filename {
			return nil, &ConflictError{Msg: "media filename " + m.Filename + " already exists"}
		}
	}

	created := *m
	created.ID = s.nextMediaID
	s.nextMediaID++
	created.CreatedAt = time.Now()
	s.media[created.ID] = created
	return &created, nil
}

// DeleteMedia removes a media record. Deleting an absent id is not an error.
func (s *MemoryStore) DeleteMedia(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.media, id)
	return nil
}

// GetContacts returns all contact submissions, newest first.
func (s *MemoryStore) GetContacts() ([]models.ContactSubmission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	contacts := make([]models.ContactSubmission, 0, len(s.contacts))
	for _, c := range s.contacts {
		contacts = append(contacts, c)
	}
	sortNewestFirst(contacts, func(c models.ContactSubmission) (time.Time, int) {
		return c.CreatedAt, c.ID
	})
	return contacts, nil
}

// CreateContact stores a submission, forcing its status to "new".
func (s *MemoryStore) CreateContact(c *models.ContactSubmission) (*models.ContactSubmission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	created := *c
	created.ID = s.nextContactID
	s.nextContactID++
	created.Status = models.ContactStatusNew
	created.CreatedAt = time.Now()
	s.contacts[created.ID] = created
	return &created, nil
}

// UpdateContactStatus replaces the status of a submission. Unknown ids are
// ignored.
func (s *MemoryStore) UpdateContactStatus(id int, status string) error {
	if !models.ValidContactStatus(status) {
		return &ValidationError{Msg: "invalid contact status: " + status}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.contacts[id]
	if !ok {
		return nil
	}
	c.Status = status
	s.contacts[id] = c
	return nil
}

// CreateSession stores a session row.
func (s *MemoryStore) CreateSession(sess *models.Session) error {
	if sess == nil || sess.ID == "" {
		return &ValidationError{Msg: "session id is required"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[sess.ID] = *sess
	return nil
}

// GetSession returns a live session, or nil if absent or expired.
func (s *MemoryStore) GetSession(id string) (*models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok || time.Now().After(sess.ExpiresAt) {
		return nil, nil
	}
	return &sess, nil
}

// DeleteSession removes a session. Deleting an absent id is not an error.
func (s *MemoryStore) DeleteSession(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
	return nil
}

// DeleteExpiredSessions removes all sessions past their expiry.
func (s *MemoryStore) DeleteExpiredSessions() (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	var removed int64
	for id, sess := range s.sessions {
		if now.After(sess.ExpiresAt) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed, nil
}

// sortNewestFirst orders records by creation time descending. Records with
// equal timestamps fall back to id descending so the order never reshuffles
// between calls.
func sortNewestFirst[T any](items []T, key func(T) (time.Time, int)) {
	sort.SliceStable(items, func(i, j int) bool {
		ti, idi := key(items[i])
		tj, idj := key(items[j])
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return idi > idj
	})
}

var _ Store = (*MemoryStore)(nil)
