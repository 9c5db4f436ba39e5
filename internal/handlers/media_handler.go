package handlers

import (
	"log"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"portfolio/internal/services"
)

// MaxUploadBytes caps uploaded file size at 5 MiB.
const MaxUploadBytes = 5 << 20

// allowedUploads is the extension/MIME allow-list. Both the file extension
// and the client-reported content type must match.
var allowedUploads = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".svg":  "image/svg+xml",
}

// MediaHandler handles HTTP requests for the media library.
type MediaHandler struct {
	service *services.MediaService
}

// NewMediaHandler creates a new MediaHandler.
func NewMediaHandler(service *services.MediaService) *MediaHandler {
	return &MediaHandler{
		service: service,
	}
}

// RegisterAdminRoutes registers the authenticated media routes.
func (h *MediaHandler) RegisterAdminRoutes(router fiber.Router) {
	mediaRoutes := router.Group("/media")
	mediaRoutes.Get("/", h.HandleList)
	mediaRoutes.Get("/:id", h.HandleGetByID)
	mediaRoutes.Post("/", h.HandleUpload)
	mediaRoutes.Delete("/:id", h.HandleDelete)
}

// HandleList returns all media records, newest first.
func (h *MediaHandler) HandleList(c *fiber.Ctx) error {
	media, err := h.service.ListMedia()
	if err != nil {
		return storageErrorResponse(c, err, "retrieve media")
	}
	return c.JSON(media)
}

// HandleGetByID returns one media record by id.
func (h *MediaHandler) HandleGetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Media id must be an integer",
		})
	}
	m, err := h.service.GetMedia(id)
	if err != nil {
		return storageErrorResponse(c, err, "retrieve media")
	}
	if m == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Media not found",
		})
	}
	return c.JSON(m)
}

// HandleUpload accepts a multipart upload in the "file" field, validates it
// against the allow-list and size cap, persists it under a randomized name
// and records it, attributed to the authenticated uploader.
func (h *MediaHandler) HandleUpload(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "A multipart 'file' field is required",
		})
	}

	if file.Size > MaxUploadBytes {
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(fiber.Map{
			"message": "File exceeds the 5 MiB upload limit",
		})
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	wantMime, ok := allowedUploads[ext]
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "File type not allowed",
		})
	}
	contentType := file.Header.Get("Content-Type")
	if contentType != wantMime {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Content type does not match file extension",
		})
	}

	storedName := h.service.StoredName(file.Filename)
	if err := c.SaveFile(file, h.service.UploadPath(storedName)); err != nil {
		log.Printf("Error saving upload %s: %v", file.Filename, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not save uploaded file",
		})
	}

	var altText *string
	if alt := c.FormValue("altText"); alt != "" {
		altText = &alt
	}
	var uploadedBy *string
	if userID := authenticatedUserID(c); userID != "" {
		uploadedBy = &userID
	}

	created, err := h.service.CreateMedia(storedName, file.Filename, contentType, file.Size, altText, uploadedBy)
	if err != nil {
		return storageErrorResponse(c, err, "record upload")
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// HandleDelete deletes a media record and its file. Absent ids return 204.
func (h *MediaHandler) HandleDelete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Media id must be an integer",
		})
	}
	if err := h.service.DeleteMedia(id); err != nil {
		return storageErrorResponse(c, err, "delete media")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
