package district

import (
	"agevee-booking/logger"
	districtModel "agevee-booking/models/district"
	"agevee-booking/types"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// DistrictController serves the seeded district catalog.
type DistrictController struct {
	DB *gorm.DB
}

func NewDistrictController(db *gorm.DB) *DistrictController {
	return &DistrictController{DB: db}
}

// Index returns every district in stable id order.
func (dc *DistrictController) Index(c *fiber.Ctx) error {
	var districts []districtModel.District
	if err := dc.DB.Order("id ASC").Find(&districts).Error; err != nil {
		logger.Error("Failed to fetch districts", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to fetch districts",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Districts fetched successfully",
		Status:  fiber.StatusOK,
		Data:    districts,
	})
}
