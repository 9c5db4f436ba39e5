package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"portfolio/internal/models"
	"portfolio/internal/services"
	"portfolio/internal/storage"
)

func TestProjectService_CreateDerivesSlug(t *testing.T) {
	mockStore := new(MockStore)
	service := services.NewProjectService(mockStore)

	mockStore.On("CreateProject", mock.MatchedBy(func(p *models.Project) bool {
		return p.Slug == "my-first-project"
	})).Return(&models.Project{ID: 1, Title: "My First Project", Slug: "my-first-project"}, nil).Once()

	created, err := service.CreateProject(&models.Project{Title: "My First Project", Description: "d", Content: "c", Category: "Web"})

	assert.NoError(t, err)
	assert.Equal(t, "my-first-project", created.Slug)
	mockStore.AssertExpectations(t)
}

func TestProjectService_CreateRejectsEmptySlug(t *testing.T) {
	mockStore := new(MockStore)
	service := services.NewProjectService(mockStore)

	_, err := service.CreateProject(&models.Project{Title: "!!!", Description: "d", Content: "c", Category: "Web"})

	assert.True(t, storage.IsValidation(err))
	mockStore.AssertNotCalled(t, "CreateProject", mock.Anything)
}

func TestProjectService_CreatePropagatesConflict(t *testing.T) {
	mockStore := new(MockStore)
	service := services.NewProjectService(mockStore)

	mockStore.On("CreateProject", mock.Anything).
		Return(nil, &storage.ConflictError{Msg: "project slug my-project already exists"}).Once()

	_, err := service.CreateProject(&models.Project{Title: "My Project", Description: "d", Content: "c", Category: "Web"})

	assert.True(t, storage.IsConflict(err))
	mockStore.AssertExpectations(t)
}

func TestProjectService_UpdateRederivesSlugFromTitle(t *testing.T) {
	mockStore := new(MockStore)
	service := services.NewProjectService(mockStore)

	title := "Renamed Project"
	mockStore.On("UpdateProject", 3, mock.MatchedBy(func(upd models.ProjectUpdate) bool {
		return upd.Slug != nil && *upd.Slug == "renamed-project"
	})).Return(&models.Project{ID: 3, Title: title, Slug: "renamed-project"}, nil).Once()

	updated, err := service.UpdateProject(3, models.ProjectUpdate{Title: &title})

	assert.NoError(t, err)
	assert.Equal(t, "renamed-project", updated.Slug)
	mockStore.AssertExpectations(t)
}

func TestProjectService_UpdateWithoutTitleLeavesSlug(t *testing.T) {
	mockStore := new(MockStore)
	service := services.NewProjectService(mockStore)

	desc := "new description"
	mockStore.On("UpdateProject", 7, mock.MatchedBy(func(upd models.ProjectUpdate) bool {
		return upd.Slug == nil
	})).Return(&models.Project{ID: 7}, nil).Once()

	_, err := service.UpdateProject(7, models.ProjectUpdate{Description: &desc})

	assert.NoError(t, err)
	mockStore.AssertExpectations(t)
}

func TestProjectService_ListPassesFilter(t *testing.T) {
	mockStore := new(MockStore)
	service := services.NewProjectService(mockStore)

	expected := []models.Project{{ID: 1, Title: "A", Status: models.ProjectStatusPublished}}
	mockStore.On("GetProjects", models.ProjectStatusPublished).Return(expected, nil).Once()

	got, err := service.ListProjects(models.ProjectStatusPublished)

	assert.NoError(t, err)
	assert.Equal(t, expected, got)
	mockStore.AssertExpectations(t)
}
