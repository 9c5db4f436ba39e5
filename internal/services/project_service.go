package services

import (
	"portfolio/internal/models"
	"portfolio/internal/storage"
	"portfolio/pkg/slug"
)

// ProjectService handles business logic related to projects.
type ProjectService struct {
	store storage.Store
}

// NewProjectService creates a new ProjectService.
func NewProjectService(store storage.Store) *ProjectService {
	return &ProjectService{
		store: store,
	}
}

// ListProjects retrieves projects, optionally filtered to one status.
func (s *ProjectService) ListProjects(statusFilter string) ([]models.Project, error) {
	return s.store.GetProjects(statusFilter)
}

// GetProject retrieves a single project by id. Absence is (nil, nil).
func (s *ProjectService) GetProject(id int) (*models.Project, error) {
	return s.store.GetProject(id)
}

// GetProjectBySlug retrieves a single project by slug. Absence is (nil, nil).
func (s *ProjectService) GetProjectBySlug(sl string) (*models.Project, error) {
	return s.store.GetProjectBySlug(sl)
}

// CreateProject derives the slug from the title and creates the project.
// A title whose derived slug is already taken fails with ConflictError; no
// disambiguating suffix is appended.
func (s *ProjectService) CreateProject(p *models.Project) (*models.Project, error) {
	derived := slug.Make(p.Title)
	if derived == "" {
		return nil, &storage.ValidationError{Msg: "title produces an empty slug"}
	}
	p.Slug = derived
	return s.store.CreateProject(p)
}

// UpdateProject applies a partial update. A changed title re-derives the slug.
func (s *ProjectService) UpdateProject(id int, upd models.ProjectUpdate) (*models.Project, error) {
	if upd.Title != nil {
		derived := slug.Make(*upd.Title)
		if derived == "" {
			return nil, &storage.ValidationError{Msg: "title produces an empty slug"}
		}
		upd.Slug = &derived
	}
	return s.store.UpdateProject(id, upd)
}

// DeleteProject deletes a project by id. Unknown ids are not an error.
func (s *ProjectService) DeleteProject(id int) error {
	return s.store.DeleteProject(id)
}
