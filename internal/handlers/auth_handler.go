package handlers

import (
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"portfolio/internal/models"
	"portfolio/internal/services"
)

// AuthHandler handles HTTP requests for authentication and the admin profile.
type AuthHandler struct {
	authService *services.AuthService
	userService *services.UserService
	validate    *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, userService *services.UserService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		userService: userService,
		validate:    validator.New(),
	}
}

// RegisterPublicRoutes registers the login route.
func (h *AuthHandler) RegisterPublicRoutes(router fiber.Router) {
	router.Post("/auth/login", h.HandleLogin)
}

// RegisterAdminRoutes registers the authenticated logout and profile routes.
func (h *AuthHandler) RegisterAdminRoutes(router fiber.Router) {
	router.Post("/auth/logout", h.HandleLogout)
	router.Get("/auth/me", h.HandleGetProfile)
	router.Put("/auth/me", h.HandleUpdateProfile)
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// HandleLogin authenticates the admin and issues a JWT token.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing login request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	token, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		log.Printf("Login failed for %s: %v", req.Email, err)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Invalid credentials",
		})
	}

	return c.JSON(fiber.Map{
		"token": token,
	})
}

// HandleLogout revokes the session behind the presented token.
func (h *AuthHandler) HandleLogout(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && parts[0] == "Bearer" {
		if err := h.authService.Logout(parts[1]); err != nil {
			return storageErrorResponse(c, err, "log out")
		}
	}
	return c.JSON(fiber.Map{
		"message": "Logged out",
	})
}

// HandleGetProfile returns the authenticated admin's profile.
func (h *AuthHandler) HandleGetProfile(c *fiber.Ctx) error {
	user, err := h.userService.GetUser(authenticatedUserID(c))
	if err != nil {
		return storageErrorResponse(c, err, "retrieve profile")
	}
	if user == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Profile not found",
		})
	}
	return c.JSON(user)
}

// ProfileRequest is the request body for a profile update. Omitted fields
// keep their stored values.
type ProfileRequest struct {
	Email        *string `json:"email,omitempty" validate:"omitempty,email"`
	FirstName    string  `json:"firstName,omitempty"`
	LastName     string  `json:"lastName,omitempty"`
	ProfileImage string  `json:"profileImage,omitempty"`
}

// HandleUpdateProfile upserts the authenticated admin's profile.
func (h *AuthHandler) HandleUpdateProfile(c *fiber.Ctx) error {
	var req ProfileRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing profile request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	user, err := h.userService.UpsertUser(&models.User{
		ID:           authenticatedUserID(c),
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		ProfileImage: req.ProfileImage,
	})
	if err != nil {
		return storageErrorResponse(c, err, "update profile")
	}
	return c.JSON(user)
}
