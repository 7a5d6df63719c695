package user

import (
	"agevee-booking/logger"
	"agevee-booking/services/activity"
	authService "agevee-booking/services/auth"
	"agevee-booking/types"
	"agevee-booking/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// UserController exposes the admin-side user management and audit feed.
type UserController struct {
	DB      *gorm.DB
	Service *authService.Service
	Logger  *logger.AsyncLogger
}

func NewUserController(db *gorm.DB, service *authService.Service, asyncLogger *logger.AsyncLogger) *UserController {
	return &UserController{DB: db, Service: service, Logger: asyncLogger}
}

// Index lists every account.
func (uc *UserController) Index(c *fiber.Ctx) error {
	users, err := uc.Service.ListUsers()
	if err != nil {
		logger.Error("Failed to list users", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to list users",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Users fetched successfully",
		Status:  fiber.StatusOK,
		Data:    users,
	})
}

// Block suspends an account.
func (uc *UserController) Block(c *fiber.Ctx) error {
	return uc.setBlocked(c, true)
}

// Unblock reinstates a suspended account.
func (uc *UserController) Unblock(c *fiber.Ctx) error {
	return uc.setBlocked(c, false)
}

func (uc *UserController) setBlocked(c *fiber.Ctx, blocked bool) error {
	u, err := uc.Service.SetBlocked(c.Params("id"), blocked)
	if err != nil {
		if err == authService.ErrUserNotFound {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Message: "User not found.",
				Status:  fiber.StatusNotFound,
			})
		}
		logger.Error("Failed to update user block status", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to update user",
			Status:  fiber.StatusInternalServerError,
		})
	}

	uc.Logger.Log(utils.CreateLogEntry(c))

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "User updated successfully",
		Status:  fiber.StatusOK,
		Data:    u,
	})
}

// Delete removes an account. Existing bookings keep their stored fields
// untouched; a missing id is treated as already deleted.
func (uc *UserController) Delete(c *fiber.Ctx) error {
	if err := uc.Service.DeleteUser(c.Params("id")); err != nil {
		logger.Error("Failed to delete user", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to delete user",
			Status:  fiber.StatusInternalServerError,
		})
	}

	uc.Logger.Log(utils.CreateLogEntry(c))

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "User deleted",
		Status:  fiber.StatusOK,
	})
}

// Logs returns the activity feed, newest first.
func (uc *UserController) Logs(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 0)
	logs, err := activity.Recent(uc.DB, limit)
	if err != nil {
		logger.Error("Failed to fetch activity logs", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to fetch activity logs",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Activity logs fetched successfully",
		Status:  fiber.StatusOK,
		Data:    logs,
	})
}
