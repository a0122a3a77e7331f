package routes

import (
	"FoodBridge/domain"
	"FoodBridge/internal/api/handlers"
	"FoodBridge/internal/middleware"
	"FoodBridge/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                 *fiber.App
	UserHandler         handlers.UserHandler
	DonationHandler     handlers.DonationHandler
	MissionHandler      handlers.MissionHandler
	ActivityHandler     handlers.ActivityHandler
	ClassifierHandler   handlers.ClassifierHandler
	NotificationHandler handlers.NotificationHandler
	SettingsHandler     handlers.SettingsHandler
	LayoutHandler       handlers.LayoutHandler
	Middleware          middleware.Middleware
	JWTService          jwt.JWTService
	EnableTestRoutes    bool
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.User()
	c.Donations()
	c.Missions()
	c.Activities()
	c.Classifier()
	c.Notifications()
	c.Settings()
	c.Layout()
	if c.EnableTestRoutes {
		c.DevRoute()
	}
	// must stay last
	c.App.Use(handlers.NotFound)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
	}
}

func (c *Config) Donations() {
	donations := c.App.Group("/api/v1/donations", c.Middleware.AuthMiddleware(c.JWTService))
	donations.Get("", c.DonationHandler.ListAvailableDonations)
	donations.Get("/mine", c.Middleware.OnlyAllow(domain.RoleDonor), c.DonationHandler.GetUserDonations)
	donations.Post("", c.Middleware.OnlyAllow(domain.RoleDonor), c.DonationHandler.CreateDonation)
	donations.Get("/:id", c.DonationHandler.GetDonationByID)
	donations.Delete("/:id", c.Middleware.OnlyAllow(domain.RoleDonor), c.DonationHandler.CancelDonation)
}

func (c *Config) Missions() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)

	ngo := c.App.Group("/api/v1/ngo", auth, c.Middleware.OnlyAllow(domain.RoleNGO))
	ngo.Post("/requests", c.MissionHandler.RequestDonation)
	ngo.Get("/requests", c.MissionHandler.GetNGORequests)

	missions := c.App.Group("/api/v1/missions", auth, c.Middleware.OnlyAllow(domain.RoleVolunteer))
	missions.Get("", c.MissionHandler.GetAvailableMissions)
	missions.Get("/mine", c.MissionHandler.GetVolunteerMissions)
	missions.Post("/:id/accept", c.MissionHandler.AcceptMission)
	missions.Post("/:id/pickup", c.MissionHandler.MarkPickedUp)
	missions.Post("/:id/deliver", c.MissionHandler.MarkDelivered)
}

func (c *Config) Activities() {
	c.App.Get("/api/v1/activities", c.Middleware.AuthMiddleware(c.JWTService), c.ActivityHandler.GetActivityFeed)
}

func (c *Config) Classifier() {
	classify := c.App.Group("/api/v1/classify", c.Middleware.AuthMiddleware(c.JWTService))
	classify.Post("", c.ClassifierHandler.ClassifyFile)
	classify.Post("/image", c.ClassifierHandler.ClassifyImage)
}

func (c *Config) Notifications() {
	notifications := c.App.Group("/api/v1/notifications", c.Middleware.AuthMiddleware(c.JWTService))
	notifications.Get("", c.NotificationHandler.GetNotifications)
	notifications.Delete("/:id", c.NotificationHandler.DismissNotification)
}

func (c *Config) Settings() {
	settings := c.App.Group("/api/v1/settings", c.Middleware.AuthMiddleware(c.JWTService))
	settings.Get("", c.SettingsHandler.GetSettings)
	settings.Patch("", c.SettingsHandler.UpdateSetting)
}

func (c *Config) Layout() {
	c.App.Get("/api/v1/layout/volunteer", c.Middleware.VolunteerShell(c.JWTService), c.LayoutHandler.VolunteerLayout)
}

// DevRoute exposes the manual notification check page; never enabled in production.
func (c *Config) DevRoute() {
	dev := c.App.Group("/api/v1/dev", c.Middleware.AuthMiddleware(c.JWTService))
	dev.Post("/notifications/test", c.NotificationHandler.RunTestSequence)
	dev.Post("/notifications/toggle-push", c.NotificationHandler.TogglePushNotifications)
}
