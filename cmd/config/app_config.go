package config

import (
	"FoodBridge/internal/api/handlers"
	"FoodBridge/internal/api/routes"
	"FoodBridge/internal/middleware"
	"FoodBridge/internal/utils"
	"FoodBridge/internal/utils/mailing"
	"FoodBridge/internal/utils/storage"
	"FoodBridge/pkg/activity"
	"FoodBridge/pkg/classifier"
	"FoodBridge/pkg/donation"
	"FoodBridge/pkg/jwt"
	"FoodBridge/pkg/mission"
	"FoodBridge/pkg/notification"
	"FoodBridge/pkg/settings"
	"FoodBridge/pkg/user"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

// NewApp wires every feature onto a fiber app. The returned cleanup stops pending
// notification sequences and closes the request log; call it after Shutdown.
func NewApp(ctx context.Context, db *gorm.DB) (*fiber.App, func(), error) {
	cfg := utils.Current()
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware(cfg.AppURL)
	validator := utils.Validate

	// setting up logging and limiter
	if err := os.MkdirAll(cfg.LogDir, os.ModePerm); err != nil {
		return nil, nil, fmt.Errorf("create logs directory: %w", err)
	}
	file, err := os.OpenFile(
		filepath.Join(cfg.LogDir, "app.log"),
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("open request log: %w", err)
	}
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Jakarta",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	objectStorage, err := storage.New(ctx, cfg)
	if err != nil {
		_ = file.Close()
		return nil, nil, fmt.Errorf("object storage: %w", err)
	}
	if objectStorage == nil {
		log.Warn("STORAGE_DRIVER is empty, food images will not be stored")
	}
	mailer := mailing.NewMailer(mailing.LoadMailConfig())

	foodClassifier := classifier.NewClassifier(
		classifier.WithFileDelay(time.Duration(cfg.ClassifierDelayMs) * time.Millisecond),
	)
	if err := foodClassifier.LoadModel(ctx); err != nil {
		_ = file.Close()
		return nil, nil, fmt.Errorf("load classifier: %w", err)
	}

	// Repository
	userRepository := user.NewUserRepository(db)
	activityRepository := activity.NewActivityRepository(db)
	settingsRepository := settings.NewSettingsRepository(db)
	notificationRepository := notification.NewNotificationRepository(db)
	donationRepository := donation.NewDonationRepository(db)
	missionRepository := mission.NewMissionRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	activityService := activity.NewActivityService(activityRepository)
	settingsService := settings.NewSettingsService(settingsRepository)
	notificationService := notification.NewNotificationService(notificationRepository, settingsService, userRepository, mailer)
	harness := notification.NewHarness(notificationService, settingsService)
	userService := user.NewUserService(userRepository, activityService, jwtService)
	donationService := donation.NewDonationService(donationRepository, foodClassifier, objectStorage, activityService)
	missionService := mission.NewMissionService(missionRepository, donationRepository, userRepository, activityService, notificationService)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	donationHandler := handlers.NewDonationHandler(donationService, validator)
	missionHandler := handlers.NewMissionHandler(missionService, validator)
	activityHandler := handlers.NewActivityHandler(activityService)
	classifierHandler := handlers.NewClassifierHandler(foodClassifier, objectStorage)
	notificationHandler := handlers.NewNotificationHandler(notificationService, harness)
	settingsHandler := handlers.NewSettingsHandler(settingsService, validator)
	layoutHandler := handlers.NewLayoutHandler()

	// routes
	routesConfig := routes.Config{
		App:                 app,
		UserHandler:         userHandler,
		DonationHandler:     donationHandler,
		MissionHandler:      missionHandler,
		ActivityHandler:     activityHandler,
		ClassifierHandler:   classifierHandler,
		NotificationHandler: notificationHandler,
		SettingsHandler:     settingsHandler,
		LayoutHandler:       layoutHandler,
		Middleware:          middlewares,
		JWTService:          jwtService,
		EnableTestRoutes:    cfg.EnableTestRoutes,
	}
	routesConfig.Setup()

	cleanup := func() {
		harness.Close()
		if err := file.Close(); err != nil {
			log.Warnf("close request log: %v", err)
		}
	}
	return app, cleanup, nil
}
