package services_test

import (
	"github.com/stretchr/testify/mock"

	"portfolio/internal/models"
)

// MockStore is a testify mock of storage.Store.
type MockStore struct {
	mock.Mock
}

func (m *MockStore) GetUser(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockStore) UpsertUser(user *models.User) (*models.User, error) {
	args := m.Called(user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockStore) GetProjects(statusFilter string) ([]models.Project, error) {
	args := m.Called(statusFilter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Project), args.Error(1)
}

func (m *MockStore) GetProject(id int) (*models.Project, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Project), args.Error(1)
}

func (m *MockStore) GetProjectBySlug(slug string) (*models.Project, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Project), args.Error(1)
}

func (m *MockStore) CreateProject(p *models.Project) (*models.Project, error) {
	args := m.Called(p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Project), args.Error(1)
}

func (m *MockStore) UpdateProject(id int, upd models.ProjectUpdate) (*models.Project, error) {
	args := m.Called(id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Project), args.Error(1)
}

func (m *MockStore) DeleteProject(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockStore) GetMedia() ([]models.Media, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Media), args.Error(1)
}

func (m *MockStore) GetMediaByID(id int) (*models.Media, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Media), args.Error(1)
}

func (m *MockStore) CreateMedia(media *models.Media) (*models.Media, error) {
	args := m.Called(media)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Media), args.Error(1)
}

func (m *MockStore) DeleteMedia(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockStore) GetContacts() ([]models.ContactSubmission, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ContactSubmission), args.Error(1)
}

func (m *MockStore) CreateContact(c *models.ContactSubmission) (*models.ContactSubmission, error) {
	args := m.Called(c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ContactSubmission), args.Error(1)
}

func (m *MockStore) UpdateContactStatus(id int, status string) error {
	args := m.Called(id, status)
	return args.Error(0)
}

func (m *MockStore) CreateSession(s *models.Session) error {
	args := m.Called(s)
	return args.Error(0)
}

func (m *MockStore) GetSession(id string) (*models.Session, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockStore) DeleteSession(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockStore) DeleteExpiredSessions() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}
