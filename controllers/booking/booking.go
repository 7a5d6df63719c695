package booking

import (
	"errors"
	"fmt"

	"agevee-booking/logger"
	bookingModel "agevee-booking/models/booking"
	bookingService "agevee-booking/services/booking"
	pricingService "agevee-booking/services/pricing"
	"agevee-booking/types"
	bookingTypes "agevee-booking/types/booking"
	"agevee-booking/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// BookingController handles reservation creation, the tourist and
// business queues, and owner decisions.
type BookingController struct {
	DB      *gorm.DB
	Service *bookingService.Service
	Logger  *logger.AsyncLogger
}

func NewBookingController(db *gorm.DB, service *bookingService.Service, asyncLogger *logger.AsyncLogger) *BookingController {
	return &BookingController{DB: db, Service: service, Logger: asyncLogger}
}

// Store opens a PENDING booking on behalf of the authenticated tourist.
func (bc *BookingController) Store(c *fiber.Ctx) error {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: err.Error(),
			Status:  fiber.StatusUnauthorized,
		})
	}

	var req bookingTypes.CreateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid request body",
			Status:  fiber.StatusBadRequest,
		})
	}

	if validationErr := types.Validate(req); validationErr != "" {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: validationErr,
			Status:  fiber.StatusBadRequest,
		})
	}

	b, err := bc.Service.Create(bookingService.CreateInput{
		UserID:     userID,
		ListingID:  req.ListingID,
		Date:       req.Date,
		Details:    req.Details,
		RoomID:     req.RoomID,
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		PackageID:  req.PackageID,
		Guests:     req.Guests,
		TotalPrice: req.TotalPrice,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookingService.ErrUnknownRoom),
			errors.Is(err, bookingService.ErrUnknownPackage),
			errors.Is(err, pricingService.ErrInvalidStay):
			return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
				Message: err.Error(),
				Status:  fiber.StatusBadRequest,
			})
		default:
			logger.Error("Failed to create booking", err)
			return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
				Message: "Failed to create booking",
				Status:  fiber.StatusInternalServerError,
			})
		}
	}

	bc.Logger.Log(utils.CreateLogEntry(c))

	logger.Success(fmt.Sprintf("Booking created successfully with ID: %s", b.ID))
	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Message: "Booking request submitted",
		Status:  fiber.StatusCreated,
		Data:    b,
	})
}

// Mine returns the authenticated tourist's bookings, newest first.
func (bc *BookingController) Mine(c *fiber.Ctx) error {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: err.Error(),
			Status:  fiber.StatusUnauthorized,
		})
	}

	bookings, err := bc.Service.UserBookings(userID)
	if err != nil {
		logger.Error("Failed to fetch bookings", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to fetch bookings",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Bookings fetched successfully",
		Status:  fiber.StatusOK,
		Data:    bookings,
	})
}

// Business returns bookings addressed to the caller's listings.
func (bc *BookingController) Business(c *fiber.Ctx) error {
	ownerID, err := utils.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: err.Error(),
			Status:  fiber.StatusUnauthorized,
		})
	}

	bookings, err := bc.Service.BusinessBookings(ownerID)
	if err != nil {
		logger.Error("Failed to fetch business bookings", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to fetch bookings",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Bookings fetched successfully",
		Status:  fiber.StatusOK,
		Data:    bookings,
	})
}

// UpdateStatus resolves a pending booking: the owner confirms or
// rejects, the tourist cancels.
func (bc *BookingController) UpdateStatus(c *fiber.Ctx) error {
	actorID, err := utils.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: err.Error(),
			Status:  fiber.StatusUnauthorized,
		})
	}

	var req bookingTypes.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid request body",
			Status:  fiber.StatusBadRequest,
		})
	}

	if validationErr := types.Validate(req); validationErr != "" {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: validationErr,
			Status:  fiber.StatusBadRequest,
		})
	}

	b, err := bc.Service.UpdateStatus(c.Params("id"), actorID, bookingModel.BookingStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, bookingService.ErrBookingNotFound):
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Message: "Booking not found",
				Status:  fiber.StatusNotFound,
			})
		case errors.Is(err, bookingService.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(types.ApiResponse{
				Message: "You are not allowed to modify this booking",
				Status:  fiber.StatusForbidden,
			})
		case errors.Is(err, bookingService.ErrInvalidStatus):
			return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
				Message: "Status must be CONFIRMED, REJECTED or CANCELLED",
				Status:  fiber.StatusBadRequest,
			})
		case errors.Is(err, bookingService.ErrInvalidTransition):
			return c.Status(fiber.StatusConflict).JSON(types.ApiResponse{
				Message: "Booking has already been resolved",
				Status:  fiber.StatusConflict,
			})
		default:
			logger.Error("Failed to update booking status", err)
			return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
				Message: "Failed to update booking status",
				Status:  fiber.StatusInternalServerError,
			})
		}
	}

	bc.Logger.Log(utils.CreateLogEntry(c))

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Booking status updated",
		Status:  fiber.StatusOK,
		Data:    b,
	})
}
