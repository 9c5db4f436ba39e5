package handlers

import (
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"portfolio/internal/models"
	"portfolio/internal/services"
)

// ProjectHandler handles HTTP requests for projects.
type ProjectHandler struct {
	service  *services.ProjectService
	validate *validator.Validate
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(service *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterPublicRoutes registers the unauthenticated project routes. The
// public surface only ever sees published projects.
func (h *ProjectHandler) RegisterPublicRoutes(router fiber.Router) {
	router.Get("/projects", h.HandleListPublished)
	router.Get("/projects/:slug", h.HandleGetBySlug)
}

// RegisterAdminRoutes registers the authenticated project routes.
func (h *ProjectHandler) RegisterAdminRoutes(router fiber.Router) {
	projectRoutes := router.Group("/projects")
	projectRoutes.Get("/", h.HandleListAll)
	projectRoutes.Get("/:id", h.HandleGetByID)
	projectRoutes.Post("/", h.HandleCreate)
	projectRoutes.Patch("/:id", h.HandleUpdate)
	projectRoutes.Delete("/:id", h.HandleDelete)
}

// HandleListPublished returns published projects, newest first.
func (h *ProjectHandler) HandleListPublished(c *fiber.Ctx) error {
	projects, err := h.service.ListProjects(models.ProjectStatusPublished)
	if err != nil {
		return storageErrorResponse(c, err, "retrieve projects")
	}
	return c.JSON(projects)
}

// HandleGetBySlug returns one published project by slug.
func (h *ProjectHandler) HandleGetBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")
	project, err := h.service.GetProjectBySlug(slug)
	if err != nil {
		return storageErrorResponse(c, err, "retrieve project")
	}
	if project == nil || project.Status != models.ProjectStatusPublished {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Project not found",
		})
	}
	return c.JSON(project)
}

// HandleListAll returns every project, with an optional ?status= filter.
func (h *ProjectHandler) HandleListAll(c *fiber.Ctx) error {
	statusFilter := c.Query("status")
	if statusFilter != "" && !models.ValidProjectStatus(statusFilter) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid status filter: " + statusFilter,
		})
	}
	projects, err := h.service.ListProjects(statusFilter)
	if err != nil {
		return storageErrorResponse(c, err, "retrieve projects")
	}
	return c.JSON(projects)
}

// HandleGetByID returns one project by id, drafts included.
func (h *ProjectHandler) HandleGetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Project id must be an integer",
		})
	}
	project, err := h.service.GetProject(id)
	if err != nil {
		return storageErrorResponse(c, err, "retrieve project")
	}
	if project == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Project not found",
		})
	}
	return c.JSON(project)
}

// CreateProjectRequest is the request body for project creation.
type CreateProjectRequest struct {
	Title         string   `json:"title" validate:"required,min=1,max=255"`
	Description   string   `json:"description" validate:"required"`
	Content       string   `json:"content" validate:"required"`
	FeaturedImage *string  `json:"featuredImage,omitempty"`
	Category      string   `json:"category" validate:"required"`
	Tags          []string `json:"tags,omitempty"`
	Status        string   `json:"status,omitempty" validate:"omitempty,oneof=draft published"`
}

// HandleCreate creates a new project authored by the authenticated user.
func (h *ProjectHandler) HandleCreate(c *fiber.Ctx) error {
	var req CreateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing project request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	project := &models.Project{
		Title:         req.Title,
		Description:   req.Description,
		Content:       req.Content,
		FeaturedImage: req.FeaturedImage,
		Category:      req.Category,
		Tags:          req.Tags,
		Status:        req.Status,
	}
	if userID := authenticatedUserID(c); userID != "" {
		project.AuthorID = &userID
	}

	created, err := h.service.CreateProject(project)
	if err != nil {
		return storageErrorResponse(c, err, "create project")
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// HandleUpdate applies a partial update; only supplied fields change.
func (h *ProjectHandler) HandleUpdate(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Project id must be an integer",
		})
	}

	var upd models.ProjectUpdate
	if err := c.BodyParser(&upd); err != nil {
		log.Printf("Error parsing project update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	// The slug follows the title; callers cannot set it directly.
	upd.Slug = nil

	updated, err := h.service.UpdateProject(id, upd)
	if err != nil {
		return storageErrorResponse(c, err, "update project")
	}
	return c.JSON(updated)
}

// HandleDelete deletes a project. Deleting an absent id still returns 204.
func (h *ProjectHandler) HandleDelete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Project id must be an integer",
		})
	}
	if err := h.service.DeleteProject(id); err != nil {
		return storageErrorResponse(c, err, "delete project")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
