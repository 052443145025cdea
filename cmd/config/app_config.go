package config

import (
	"errors"
	"frescoguard/domain"
	"frescoguard/internal/api/handlers"
	"frescoguard/internal/api/routes"
	"frescoguard/internal/middleware"
	"frescoguard/internal/utils"
	"frescoguard/internal/utils/mailing"
	"frescoguard/internal/utils/storage"
	"frescoguard/pkg/camera"
	"frescoguard/pkg/food"
	"frescoguard/pkg/jwt"
	"frescoguard/pkg/midtrans"
	"frescoguard/pkg/notification"
	"frescoguard/pkg/oauth"
	"frescoguard/pkg/ocr"
	"frescoguard/pkg/recipe"
	"frescoguard/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

// errorHandler keeps the {"error": ...} shape for errors no handler caught.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := domain.MessageFailedProcessRequest

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		message = fiberErr.Message
	}
	if code >= fiber.StatusInternalServerError {
		log.Errorf("%s %s: %v", c.Method(), c.Path(), err)
	}
	return c.Status(code).JSON(fiber.Map{"error": message})
}

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: !utils.IsProduction(),
		ErrorHandler:      errorHandler,
	})
	middlewares := middleware.NewMiddleware(utils.GetConfig("CORS_ORIGIN"), utils.GetConfig("COOKIE_NAME"))
	validator := utils.Validate

	app.Use(recover.New())

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   utils.GetConfig("APP_TIMEZONE"),
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        20,
		Expiration: 1 * time.Second,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": domain.MessageTooManyRequests})
		},
	}))

	// utils
	s3 := storage.NewAwsS3()
	production := utils.IsProduction()

	// Repository
	userRepository := user.NewUserRepository(db)
	foodRepository := food.NewFoodRepository(db)
	notificationRepository := notification.NewNotificationRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	midtransRepository := midtrans.NewMidtransRepository(db)

	// Service
	jwtService := jwt.NewJWTService(utils.GetConfig("JWT_SECRET"))
	googleProvider := oauth.NewGoogleProvider(
		utils.GetConfig("GOOGLE_CLIENT_ID"),
		utils.GetConfig("GOOGLE_CLIENT_SECRET"),
		utils.GetConfig("GOOGLE_REDIRECT_URL"),
	)
	gateway := midtrans.NewGateway(utils.GetConfig("SERVER_KEY"), utils.GetConfigBool("IS_PROD"))
	generator := recipe.NewTemplateGenerator()
	scanner := ocr.NewMockScanner(ocr.ProcessingDelay)

	var deliverer notification.Deliverer
	if mailConfig := mailing.LoadMailConfig(); mailConfig.Enabled() {
		deliverer = notification.NewMailDeliverer(userRepository, mailing.SendMail, mailConfig.AppURL)
	} else {
		log.Info("SMTP not configured, reminders will not be e-mailed")
	}
	if !s3.Enabled() {
		log.Info("S3 not configured, food image uploads are disabled")
	}

	scheduler := notification.NewScheduler(notificationRepository)
	userService := user.NewUserService(userRepository, jwtService)
	foodService := food.NewFoodService(foodRepository, userRepository, scheduler, s3)
	cameraService := camera.NewCameraService(userRepository, production)
	recipeService := recipe.NewRecipeService(recipeRepository, generator)
	notificationService := notification.NewNotificationService(notificationRepository, foodRepository, generator, deliverer)
	midtransService := midtrans.NewMidtransService(midtransRepository, userRepository, gateway)

	// Handler
	userHandler := handlers.NewUserHandler(userService, jwtService, googleProvider, handlers.SessionConfig{
		CookieName: utils.GetConfig("COOKIE_NAME"),
		Secure:     production,
		AppURL:     utils.GetConfig("APP_URL"),
	}, validator)
	foodHandler := handlers.NewFoodHandler(foodService, validator)
	cameraHandler := handlers.NewCameraHandler(cameraService)
	ocrHandler := handlers.NewOCRHandler(scanner)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	midtransHandler := handlers.NewMidtransHandler(midtransService, validator)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		UserHandler:         userHandler,
		FoodHandler:         foodHandler,
		CameraHandler:       cameraHandler,
		OCRHandler:          ocrHandler,
		RecipeHandler:       recipeHandler,
		NotificationHandler: notificationHandler,
		MidtransHandler:     midtransHandler,
		Middleware:          middlewares,
		JWTService:          jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
