package routes

import (
	"agevee-booking/constants"
	assistantController "agevee-booking/controllers/assistant"
	authController "agevee-booking/controllers/auth"
	bookingController "agevee-booking/controllers/booking"
	districtController "agevee-booking/controllers/district"
	listingController "agevee-booking/controllers/listing"
	userController "agevee-booking/controllers/user"
	"agevee-booking/logger"
	"agevee-booking/middleware"
	assistantService "agevee-booking/services/assistant"
	authService "agevee-booking/services/auth"
	bookingService "agevee-booking/services/booking"
	listingService "agevee-booking/services/listing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	asyncLogger := logger.NewAsyncLogger(db)

	accounts := authService.NewService(db)
	auth := authController.NewAuthController(accounts, db, asyncLogger)
	users := userController.NewUserController(db, accounts, asyncLogger)
	listings := listingController.NewListingController(db, listingService.NewService(db), asyncLogger)
	bookings := bookingController.NewBookingController(db, bookingService.NewService(db), asyncLogger)
	districts := districtController.NewDistrictController(db)
	assistant := assistantController.NewAssistantController(assistantService.NewService())

	// Start the async logger processing goroutine
	go asyncLogger.ProcessLog()

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"service": "Agevee Four Star API",
			"status":  "ok",
		})
	})

	/*=============================================================================
	| Public Routes
	===============================================================================*/
	api := app.Group("/api")
	api.Post("/register", auth.Register)
	api.Post("/login", auth.Login)
	api.Get("/districts", districts.Index)
	api.Get("/listings", listings.Index)

	/*=============================================================================
	| Protected Routes
	===============================================================================*/
	authGroup := api.Group("/auth").Use(middleware.RequireAuth())
	authGroup.Post("/logout", auth.LogOut)
	authGroup.Get("/profile", auth.Profile)
	authGroup.Put("/profile", auth.UpdateProfile)

	/*=============================================================================
	| Listing Routes
	===============================================================================*/
	listingGroup := api.Group("/listings")
	listingGroup.Get("/owner", middleware.RequireRoles(constants.BusinessRoles...), listings.Owner)
	listingGroup.Post("/", middleware.RequireRoles(constants.BusinessRoles...), listings.Store)

	/*=============================================================================
	| Booking Routes
	===============================================================================*/
	bookingGroup := api.Group("/bookings").Use(middleware.RequireAuth())
	bookingGroup.Post("/", bookings.Store)
	bookingGroup.Get("/me", bookings.Mine)
	bookingGroup.Get("/business", middleware.RequireRoles(constants.BusinessRoles...), bookings.Business)
	bookingGroup.Post("/:id/status", bookings.UpdateStatus)

	/*=============================================================================
	| Assistant Routes
	===============================================================================*/
	assistantGroup := api.Group("/assistant")
	assistantGroup.Post("/chat", assistant.Chat)
	assistantGroup.Post("/itinerary", assistant.Itinerary)
	assistantGroup.Get("/districts/:name", assistant.DistrictGuide)
	assistantGroup.Get("/live-updates", assistant.LiveUpdates)

	/*=============================================================================
	| Admin Routes
	===============================================================================*/
	adminGroup := api.Group("/admin").Use(middleware.RequireRoles(constants.RoleAdmin))
	adminGroup.Get("/users", users.Index)
	adminGroup.Post("/users/:id/block", users.Block)
	adminGroup.Post("/users/:id/unblock", users.Unblock)
	adminGroup.Delete("/users/:id", users.Delete)
	adminGroup.Get("/logs", users.Logs)
	adminGroup.Post("/listings/:id/status", listings.UpdateStatus)
	adminGroup.Delete("/listings/:id", listings.Delete)
}
