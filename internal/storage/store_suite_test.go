package storage_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/internal/models"
	"portfolio/internal/storage"
)

// runStoreSuite exercises the Store contract. Both implementations must pass
// every case; newStore returns a fresh, empty store per test.
func runStoreSuite(t *testing.T, newStore func(t *testing.T) storage.Store) {
	t.Run("UpsertUserRequiresID", func(t *testing.T) {
		s := newStore(t)
		_, err := s.UpsertUser(&models.User{})
		assert.True(t, storage.IsValidation(err))
	})

	t.Run("UpsertUserMerge", func(t *testing.T) {
		s := newStore(t)
		email1 := "first@example.com"
		created, err := s.UpsertUser(&models.User{
			ID:        "u1",
			Email:     &email1,
			FirstName: "Ada",
			LastName:  "Lovelace",
		})
		require.NoError(t, err)
		require.NotNil(t, created)

		time.Sleep(5 * time.Millisecond)

		email2 := "second@example.com"
		merged, err := s.UpsertUser(&models.User{ID: "u1", Email: &email2})
		require.NoError(t, err)

		assert.Equal(t, "Ada", merged.FirstName)
		assert.Equal(t, "Lovelace", merged.LastName)
		require.NotNil(t, merged.Email)
		assert.Equal(t, email2, *merged.Email)
		assert.WithinDuration(t, created.CreatedAt, merged.CreatedAt, time.Millisecond)
		assert.True(t, merged.UpdatedAt.After(merged.CreatedAt))
	})

	t.Run("GetUserMissIsNil", func(t *testing.T) {
		s := newStore(t)
		u, err := s.GetUser("nobody")
		assert.NoError(t, err)
		assert.Nil(t, u)
	})

	t.Run("CreateProjectDefaults", func(t *testing.T) {
		s := newStore(t)
		p, err := s.CreateProject(&models.Project{
			Title:       "My First Project",
			Slug:        "my-first-project",
			Description: "d",
			Content:     "c",
			Category:    "Web",
		})
		require.NoError(t, err)

		assert.Equal(t, 1, p.ID)
		assert.Equal(t, models.ProjectStatusDraft, p.Status)
		assert.NotNil(t, p.Tags)
		assert.Empty(t, p.Tags)
		assert.WithinDuration(t, p.CreatedAt, p.UpdatedAt, time.Millisecond)
	})

	t.Run("SlugConflict", func(t *testing.T) {
		s := newStore(t)
		_, err := s.CreateProject(&models.Project{Title: "One", Slug: "same-slug", Description: "d", Content: "c", Category: "Web"})
		require.NoError(t, err)

		_, err = s.CreateProject(&models.Project{Title: "Two", Slug: "same-slug", Description: "d", Content: "c", Category: "Web"})
		assert.True(t, storage.IsConflict(err), "expected ConflictError, got %v", err)
	})

	t.Run("UpdateProjectMerge", func(t *testing.T) {
		s := newStore(t)
		created, err := s.CreateProject(&models.Project{
			Title: "Original", Slug: "original", Description: "d", Content: "c", Category: "Web",
			Tags: []string{"go", "web"},
		})
		require.NoError(t, err)

		time.Sleep(5 * time.Millisecond)

		status := models.ProjectStatusPublished
		updated, err := s.UpdateProject(created.ID, models.ProjectUpdate{Status: &status})
		require.NoError(t, err)

		assert.Equal(t, "Original", updated.Title)
		assert.Equal(t, []string{"go", "web"}, updated.Tags)
		assert.Equal(t, models.ProjectStatusPublished, updated.Status)
		assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))
	})

	t.Run("UpdateProjectUnknownID", func(t *testing.T) {
		s := newStore(t)
		title := "x"
		_, err := s.UpdateProject(42, models.ProjectUpdate{Title: &title})
		assert.True(t, storage.IsNotFound(err))
	})

	t.Run("UpdateProjectInvalidStatus", func(t *testing.T) {
		s := newStore(t)
		created, err := s.CreateProject(&models.Project{Title: "P", Slug: "p", Description: "d", Content: "c", Category: "Web"})
		require.NoError(t, err)

		bad := "archived"
		_, err = s.UpdateProject(created.ID, models.ProjectUpdate{Status: &bad})
		assert.True(t, storage.IsValidation(err))
	})

	t.Run("StatusFilterAndOrdering", func(t *testing.T) {
		s := newStore(t)
		published := models.ProjectStatusPublished
		for i, title := range []string{"Alpha", "Beta", "Gamma"} {
			p, err := s.CreateProject(&models.Project{
				Title: title, Slug: "proj-" + title, Description: "d", Content: "c", Category: "Web",
			})
			require.NoError(t, err)
			if i != 1 { // Beta stays a draft
				_, err = s.UpdateProject(p.ID, models.ProjectUpdate{Status: &published})
				require.NoError(t, err)
			}
			time.Sleep(5 * time.Millisecond)
		}

		got, err := s.GetProjects(models.ProjectStatusPublished)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Gamma", got[0].Title)
		assert.Equal(t, "Alpha", got[1].Title)

		all, err := s.GetProjects("")
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})

	t.Run("UpdateConflictLeavesProjectUntouched", func(t *testing.T) {
		s := newStore(t)
		_, err := s.CreateProject(&models.Project{Title: "One", Slug: "one", Description: "d", Content: "c", Category: "Web"})
		require.NoError(t, err)
		second, err := s.CreateProject(&models.Project{
			Title: "Two", Slug: "two", Description: "d", Content: "c", Category: "Web",
			Tags: []string{"original"},
		})
		require.NoError(t, err)

		// A merge that fails on the slug constraint must not persist any of
		// its other fields either.
		taken := "one"
		tags := []string{"changed"}
		title := "Renamed"
		_, err = s.UpdateProject(second.ID, models.ProjectUpdate{Slug: &taken, Title: &title, Tags: &tags})
		require.True(t, storage.IsConflict(err), "expected ConflictError, got %v", err)

		got, err := s.GetProject(second.ID)
		require.NoError(t, err)
		assert.Equal(t, "two", got.Slug)
		assert.Equal(t, "Two", got.Title)
		assert.Equal(t, []string{"original"}, got.Tags)
	})

	t.Run("DeleteProjectIdempotent", func(t *testing.T) {
		s := newStore(t)
		p, err := s.CreateProject(&models.Project{Title: "Gone", Slug: "gone", Description: "d", Content: "c", Category: "Web"})
		require.NoError(t, err)

		assert.NoError(t, s.DeleteProject(p.ID))
		assert.NoError(t, s.DeleteProject(p.ID))

		got, err := s.GetProject(p.ID)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("MonotonicProjectIDs", func(t *testing.T) {
		s := newStore(t)
		first, err := s.CreateProject(&models.Project{Title: "A", Slug: "a", Description: "d", Content: "c", Category: "Web"})
		require.NoError(t, err)
		require.NoError(t, s.DeleteProject(first.ID))

		second, err := s.CreateProject(&models.Project{Title: "B", Slug: "b", Description: "d", Content: "c", Category: "Web"})
		require.NoError(t, err)
		assert.Greater(t, second.ID, first.ID, "ids must never be reclaimed")
	})

	t.Run("MediaLifecycle", func(t *testing.T) {
		s := newStore(t)
		m, err := s.CreateMedia(&models.Media{
			Filename:     "abc123.png",
			OriginalName: "photo.png",
			MimeType:     "image/png",
			Size:         "2048",
			URL:          "/uploads/abc123.png",
		})
		require.NoError(t, err)
		assert.Equal(t, 1, m.ID)
		assert.False(t, m.CreatedAt.IsZero())

		got, err := s.GetMediaByID(m.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "photo.png", got.OriginalName)

		assert.NoError(t, s.DeleteMedia(m.ID))
		assert.NoError(t, s.DeleteMedia(m.ID))

		gone, err := s.GetMediaByID(m.ID)
		assert.NoError(t, err)
		assert.Nil(t, gone)
	})

	t.Run("MediaRejectsBadSize", func(t *testing.T) {
		s := newStore(t)
		_, err := s.CreateMedia(&models.Media{Filename: "f.png", Size: "not-a-number"})
		assert.True(t, storage.IsValidation(err))

		_, err = s.CreateMedia(&models.Media{Filename: "g.png", Size: "-5"})
		assert.True(t, storage.IsValidation(err))
	})

	t.Run("ContactStatusForcedToNew", func(t *testing.T) {
		s := newStore(t)
		c, err := s.CreateContact(&models.ContactSubmission{
			Name: "N", Email: "n@example.com", Subject: "Hi", Message: "m",
			Status: models.ContactStatusReplied,
		})
		require.NoError(t, err)
		assert.Equal(t, models.ContactStatusNew, c.Status)
	})

	t.Run("ContactStatusUpdate", func(t *testing.T) {
		s := newStore(t)
		c, err := s.CreateContact(&models.ContactSubmission{Name: "N", Email: "n@example.com", Subject: "Hi", Message: "m"})
		require.NoError(t, err)

		require.NoError(t, s.UpdateContactStatus(c.ID, models.ContactStatusRead))
		contacts, err := s.GetContacts()
		require.NoError(t, err)
		require.Len(t, contacts, 1)
		assert.Equal(t, models.ContactStatusRead, contacts[0].Status)

		// Unknown ids are a silent no-op.
		assert.NoError(t, s.UpdateContactStatus(999, models.ContactStatusRead))

		// Invalid status values are rejected.
		err = s.UpdateContactStatus(c.ID, "spam")
		assert.True(t, storage.IsValidation(err))
	})

	t.Run("ContactsNewestFirst", func(t *testing.T) {
		s := newStore(t)
		for _, name := range []string{"first", "second", "third"} {
			_, err := s.CreateContact(&models.ContactSubmission{Name: name, Email: name + "@example.com", Subject: "s", Message: "m"})
			require.NoError(t, err)
			time.Sleep(5 * time.Millisecond)
		}
		contacts, err := s.GetContacts()
		require.NoError(t, err)
		require.Len(t, contacts, 3)
		assert.Equal(t, "third", contacts[0].Name)
		assert.Equal(t, "first", contacts[2].Name)
	})

	t.Run("SessionLifecycle", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.CreateSession(&models.Session{
			ID:        "sess-1",
			Payload:   `{"sub":"admin"}`,
			ExpiresAt: time.Now().Add(time.Hour),
		}))

		live, err := s.GetSession("sess-1")
		require.NoError(t, err)
		require.NotNil(t, live)

		require.NoError(t, s.CreateSession(&models.Session{
			ID:        "sess-2",
			Payload:   `{"sub":"admin"}`,
			ExpiresAt: time.Now().Add(-time.Minute),
		}))

		expired, err := s.GetSession("sess-2")
		assert.NoError(t, err)
		assert.Nil(t, expired, "expired sessions must not be returned")

		removed, err := s.DeleteExpiredSessions()
		require.NoError(t, err)
		assert.EqualValues(t, 1, removed)

		require.NoError(t, s.DeleteSession("sess-1"))
		gone, err := s.GetSession("sess-1")
		assert.NoError(t, err)
		assert.Nil(t, gone)
	})
}
