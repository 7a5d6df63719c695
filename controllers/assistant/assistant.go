package assistant

import (
	"agevee-booking/logger"
	assistantService "agevee-booking/services/assistant"
	"agevee-booking/types"
	assistantTypes "agevee-booking/types/assistant"

	"github.com/gofiber/fiber/v2"
)

// AssistantController fronts the Gemini-backed travel assistant.
type AssistantController struct {
	Service *assistantService.Service
}

func NewAssistantController(service *assistantService.Service) *AssistantController {
	return &AssistantController{Service: service}
}

// Chat answers a free-form traveler question. Failures degrade to a
// friendly fallback message rather than an error status.
func (ac *AssistantController) Chat(c *fiber.Ctx) error {
	var req assistantTypes.ChatRequest
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

	reply := ac.Service.Chat(c.Context(), req.Message)
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Assistant reply generated",
		Status:  fiber.StatusOK,
		Data:    fiber.Map{"reply": reply},
	})
}

// Itinerary produces a day-by-day plan for the requested trip.
func (ac *AssistantController) Itinerary(c *fiber.Ctx) error {
	var req assistantTypes.ItineraryRequest
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

	plan := ac.Service.Itinerary(c.Context(), req)
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Itinerary generated",
		Status:  fiber.StatusOK,
		Data:    fiber.Map{"itinerary": plan},
	})
}

// DistrictGuide returns a structured guide for one district.
func (ac *AssistantController) DistrictGuide(c *fiber.Ctx) error {
	name := c.Params("name")
	if name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "District name is required",
			Status:  fiber.StatusBadRequest,
		})
	}

	guide, err := ac.Service.DistrictGuide(c.Context(), name)
	if err != nil {
		logger.Error("Failed to generate district guide", err)
		return c.Status(fiber.StatusServiceUnavailable).JSON(types.ApiResponse{
			Message: "The travel guide is unavailable right now. Please try again later.",
			Status:  fiber.StatusServiceUnavailable,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "District guide generated",
		Status:  fiber.StatusOK,
		Data:    guide,
	})
}

// LiveUpdates reports current weather and road conditions across the
// region, grounded in web search results.
func (ac *AssistantController) LiveUpdates(c *fiber.Ctx) error {
	status, sources, err := ac.Service.LiveUpdates(c.Context())
	if err != nil {
		logger.Error("Failed to fetch live updates", err)
		return c.Status(fiber.StatusServiceUnavailable).JSON(types.ApiResponse{
			Message: "Live updates are unavailable right now. Please try again later.",
			Status:  fiber.StatusServiceUnavailable,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Live updates fetched",
		Status:  fiber.StatusOK,
		Data: assistantTypes.LiveUpdatesResponse{
			Data:    status,
			Sources: sources,
		},
	})
}
