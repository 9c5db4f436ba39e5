package handlers

import (
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"portfolio/internal/models"
	"portfolio/internal/services"
)

// ContactHandler handles HTTP requests for contact submissions.
type ContactHandler struct {
	service  *services.ContactService
	validate *validator.Validate
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(service *services.ContactService) *ContactHandler {
	return &ContactHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterPublicRoutes registers the public submission route.
func (h *ContactHandler) RegisterPublicRoutes(router fiber.Router) {
	router.Post("/contacts", h.HandleCreate)
}

// RegisterAdminRoutes registers the authenticated review routes.
func (h *ContactHandler) RegisterAdminRoutes(router fiber.Router) {
	contactRoutes := router.Group("/contacts")
	contactRoutes.Get("/", h.HandleList)
	contactRoutes.Patch("/:id/status", h.HandleUpdateStatus)
}

// ContactRequest is the public contact-form body. A caller-supplied status
// is ignored; new submissions always start as "new".
type ContactRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=255"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,max=255"`
	Message string `json:"message" validate:"required"`
	Status  string `json:"status,omitempty"`
}

// HandleCreate accepts a public contact-form submission.
func (h *ContactHandler) HandleCreate(c *fiber.Ctx) error {
	var req ContactRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing contact request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	submission := &models.ContactSubmission{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
		Status:  req.Status, // forced to "new" by the store
	}
	created, err := h.service.CreateContact(submission)
	if err != nil {
		return storageErrorResponse(c, err, "submit contact form")
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// HandleList returns all submissions, newest first.
func (h *ContactHandler) HandleList(c *fiber.Ctx) error {
	contacts, err := h.service.ListContacts()
	if err != nil {
		return storageErrorResponse(c, err, "retrieve contact submissions")
	}
	return c.JSON(contacts)
}

// UpdateContactStatusRequest is the request body for a status transition.
type UpdateContactStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new read replied"`
}

// HandleUpdateStatus transitions a submission's status. Unknown ids are a
// no-op and still return success.
func (h *ContactHandler) HandleUpdateStatus(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Contact id must be an integer",
		})
	}

	var req UpdateContactStatusRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing status update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	if err := h.service.UpdateContactStatus(id, req.Status); err != nil {
		return storageErrorResponse(c, err, "update contact status")
	}
	return c.JSON(fiber.Map{
		"message": "Contact status updated",
	})
}
