package listing

import (
	"errors"
	"fmt"

	"agevee-booking/logger"
	listingModel "agevee-booking/models/listing"
	listingService "agevee-booking/services/listing"
	"agevee-booking/types"
	listingTypes "agevee-booking/types/listing"
	"agevee-booking/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ListingController handles listing browse, submission and moderation.
type ListingController struct {
	DB      *gorm.DB
	Service *listingService.Service
	Logger  *logger.AsyncLogger
}

func NewListingController(db *gorm.DB, service *listingService.Service, asyncLogger *logger.AsyncLogger) *ListingController {
	return &ListingController{DB: db, Service: service, Logger: asyncLogger}
}

// Index returns listings, optionally narrowed by district, type and
// maximum price level. "all" (or absence) disables a predicate.
func (lc *ListingController) Index(c *fiber.Ctx) error {
	filter := listingService.Filter{}

	if district := c.Query("district"); district != "" && district != "all" {
		filter.DistrictID = district
	}
	if listingType := c.Query("type"); listingType != "" && listingType != "all" {
		lt := listingModel.ListingType(listingType)
		if !lt.IsValid() {
			return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
				Message: fmt.Sprintf("Unknown listing type %q", listingType),
				Status:  fiber.StatusBadRequest,
			})
		}
		filter.Type = lt
	}
	if maxPrice := c.QueryInt("max_price", 0); maxPrice > 0 {
		filter.MaxPrice = maxPrice
	}

	listings, err := lc.Service.List(filter)
	if err != nil {
		logger.Error("Failed to fetch listings", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to fetch listings",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Listings fetched successfully",
		Status:  fiber.StatusOK,
		Data:    listings,
	})
}

// Owner returns the authenticated business account's listings.
func (lc *ListingController) Owner(c *fiber.Ctx) error {
	ownerID, err := utils.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: err.Error(),
			Status:  fiber.StatusUnauthorized,
		})
	}

	listings, err := lc.Service.OwnerListings(ownerID)
	if err != nil {
		logger.Error("Failed to fetch owner listings", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to fetch listings",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Listings fetched successfully",
		Status:  fiber.StatusOK,
		Data:    listings,
	})
}

// Store submits a new listing for moderation, owned by the caller.
func (lc *ListingController) Store(c *fiber.Ctx) error {
	ownerID, err := utils.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: err.Error(),
			Status:  fiber.StatusUnauthorized,
		})
	}

	var req listingTypes.CreateRequest
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

	l := listingModel.Listing{
		Name:        req.Name,
		Type:        listingModel.ListingType(req.Type),
		DistrictID:  req.DistrictID,
		Description: req.Description,
		PriceLevel:  req.PriceLevel,
		Contact:     req.Contact,
		Image:       req.Image,
		Features:    req.Features,
		Rooms:       req.Rooms,
		Packages:    req.Packages,
		OwnerID:     ownerID,
	}

	if err := lc.Service.Create(&l); err != nil {
		logger.Error("Failed to create listing", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to create listing",
			Status:  fiber.StatusInternalServerError,
		})
	}

	lc.Logger.Log(utils.CreateLogEntry(c))

	logger.Success(fmt.Sprintf("Listing created successfully with ID: %s", l.ID))
	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Message: "Listing submitted for review",
		Status:  fiber.StatusCreated,
		Data:    l,
	})
}

// UpdateStatus applies an admin moderation decision. Rejection removes
// the listing entirely.
func (lc *ListingController) UpdateStatus(c *fiber.Ctx) error {
	var req listingTypes.UpdateStatusRequest
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

	err := lc.Service.UpdateStatus(c.Params("id"), listingModel.ListingStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, listingService.ErrListingNotFound):
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Message: "Listing not found",
				Status:  fiber.StatusNotFound,
			})
		case errors.Is(err, listingService.ErrInvalidDecision):
			return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
				Message: "Status must be APPROVED or REJECTED",
				Status:  fiber.StatusBadRequest,
			})
		default:
			logger.Error("Failed to update listing status", err)
			return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
				Message: "Failed to update listing status",
				Status:  fiber.StatusInternalServerError,
			})
		}
	}

	lc.Logger.Log(utils.CreateLogEntry(c))

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Listing status updated",
		Status:  fiber.StatusOK,
	})
}

// Delete removes a listing. Missing ids are treated as already deleted.
func (lc *ListingController) Delete(c *fiber.Ctx) error {
	if err := lc.Service.Delete(c.Params("id")); err != nil {
		logger.Error("Failed to delete listing", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to delete listing",
			Status:  fiber.StatusInternalServerError,
		})
	}

	lc.Logger.Log(utils.CreateLogEntry(c))

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Listing deleted",
		Status:  fiber.StatusOK,
	})
}
