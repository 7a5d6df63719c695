package auth

import (
	"errors"
	"fmt"
	"os"
	"time"

	"agevee-booking/logger"
	userModel "agevee-booking/models/user"
	authService "agevee-booking/services/auth"
	"agevee-booking/types"
	authTypes "agevee-booking/types/auth"
	"agevee-booking/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AuthController struct {
	db             *gorm.DB
	service        *authService.Service
	loggerInstance *logger.AsyncLogger
}

func NewAuthController(service *authService.Service, db *gorm.DB, asyncLogger *logger.AsyncLogger) *AuthController {
	return &AuthController{service: service, db: db, loggerInstance: asyncLogger}
}

// Register creates a new approved account and returns it with a session
// token. Admin accounts cannot be self-registered.
func (h *AuthController) Register(c *fiber.Ctx) error {
	var req authTypes.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Error parsing request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: fmt.Sprintf("Error parsing request body: %v", err),
			Status:  fiber.StatusBadRequest,
		})
	}

	if validationErr := types.Validate(req); validationErr != "" {
		logger.Error(validationErr, nil)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: validationErr,
			Status:  fiber.StatusBadRequest,
		})
	}

	newUser, err := h.service.Register(req.Name, req.Email, req.Password, userModel.UserType(req.Type))
	if err != nil {
		if errors.Is(err, authService.ErrDuplicateEmail) {
			return c.Status(fiber.StatusConflict).JSON(types.ApiResponse{
				Message: "Email already registered.",
				Status:  fiber.StatusConflict,
			})
		}
		logger.Error("Failed to register user", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to register user",
			Status:  fiber.StatusInternalServerError,
		})
	}

	token, err := utils.GenerateToken(newUser)
	if err != nil {
		logger.Error("Failed to issue session token", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to issue session token",
			Status:  fiber.StatusInternalServerError,
		})
	}

	h.loggerInstance.Log(utils.CreateLogEntry(c))

	currentTime := time.Now().Format("2006-01-02 03:04:05 PM")
	logger.Success("User registered successfully: " + newUser.Email + " at " + currentTime)
	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Message: "Registration successful",
		Status:  fiber.StatusCreated,
		Token:   token,
		Data:    newUser,
	})
}

// Login authenticates an account and returns a fresh session token.
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req authTypes.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Error parsing request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: fmt.Sprintf("Error parsing request body: %v", err),
			Status:  fiber.StatusBadRequest,
		})
	}

	if validationErr := types.Validate(req); validationErr != "" {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: validationErr,
			Status:  fiber.StatusBadRequest,
		})
	}

	u, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, authService.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Message: "User not found.",
				Status:  fiber.StatusNotFound,
			})
		case errors.Is(err, authService.ErrInvalidCredentials):
			return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
				Message: "Invalid password.",
				Status:  fiber.StatusUnauthorized,
			})
		case errors.Is(err, authService.ErrAccountSuspended):
			return c.Status(fiber.StatusForbidden).JSON(types.ApiResponse{
				Message: "This account has been suspended.",
				Status:  fiber.StatusForbidden,
			})
		default:
			logger.Error("Failed to login user", err)
			return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
				Message: "Failed to login user",
				Status:  fiber.StatusInternalServerError,
			})
		}
	}

	token, err := utils.GenerateToken(u)
	if err != nil {
		logger.Error("Failed to issue session token", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to issue session token",
			Status:  fiber.StatusInternalServerError,
		})
	}

	h.setSecureCookie(c, "access", token, 72*3600)
	logger.Success("User logged in successfully: " + u.Email)
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Login successful",
		Status:  fiber.StatusOK,
		Token:   token,
		Data:    u,
	})
}

// LogOut clears the access cookie. Token discard is otherwise the
// client's responsibility; no activity entry is recorded for logout.
func (h *AuthController) LogOut(c *fiber.Ctx) error {
	h.setSecureCookie(c, "access", "", -1)
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Logged out",
		Status:  fiber.StatusOK,
	})
}

// Profile returns the authenticated account.
func (h *AuthController) Profile(c *fiber.Ctx) error {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: err.Error(),
			Status:  fiber.StatusUnauthorized,
		})
	}

	u, err := h.service.GetUser(userID)
	if err != nil {
		if errors.Is(err, authService.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Message: "User not found.",
				Status:  fiber.StatusNotFound,
			})
		}
		logger.Error("Error fetching user", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Error fetching user",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "User fetched successfully",
		Status:  fiber.StatusOK,
		Data:    u,
	})
}

// UpdateProfile fully overwrites the caller's profile and returns a
// fresh token reflecting the new claims.
func (h *AuthController) UpdateProfile(c *fiber.Ctx) error {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: err.Error(),
			Status:  fiber.StatusUnauthorized,
		})
	}

	var req authTypes.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Error parsing request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: fmt.Sprintf("Error parsing request body: %v", err),
			Status:  fiber.StatusBadRequest,
		})
	}

	if validationErr := types.Validate(req); validationErr != "" {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: validationErr,
			Status:  fiber.StatusBadRequest,
		})
	}

	u, err := h.service.UpdateProfile(userID, req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, authService.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Message: "User not found.",
				Status:  fiber.StatusNotFound,
			})
		case errors.Is(err, authService.ErrDuplicateEmail):
			return c.Status(fiber.StatusConflict).JSON(types.ApiResponse{
				Message: "Email already registered.",
				Status:  fiber.StatusConflict,
			})
		default:
			logger.Error("Failed to update profile", err)
			return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
				Message: "Failed to update profile",
				Status:  fiber.StatusInternalServerError,
			})
		}
	}

	token, err := utils.GenerateToken(u)
	if err != nil {
		logger.Error("Failed to issue session token", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to issue session token",
			Status:  fiber.StatusInternalServerError,
		})
	}

	h.loggerInstance.Log(utils.CreateLogEntry(c))

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Profile updated successfully",
		Status:  fiber.StatusOK,
		Token:   token,
		Data:    u,
	})
}

// Helper function to set secure cookies based on environment
func (h *AuthController) setSecureCookie(c *fiber.Ctx, name, value string, maxAge int) {
	isProduction := os.Getenv("APP_ENV") == "production"

	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    value,
		HTTPOnly: false,
		Secure:   isProduction,
		SameSite: "Strict",
		MaxAge:   maxAge,
		Path:     "/",
	})
}
