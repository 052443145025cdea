package routes

import (
	"frescoguard/internal/api/handlers"
	"frescoguard/internal/middleware"
	"frescoguard/pkg/jwt"
	"frescoguard/pkg/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
)

type Config struct {
	App                 *fiber.App
	UserHandler         handlers.UserHandler
	FoodHandler         handlers.FoodHandler
	CameraHandler       handlers.CameraHandler
	OCRHandler          handlers.OCRHandler
	RecipeHandler       handlers.RecipeHandler
	NotificationHandler handlers.NotificationHandler
	MidtransHandler     handlers.MidtransHandler
	Middleware          middleware.Middleware
	JWTService          jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.Auth()
	c.Foods()
	c.Camera()
	c.Recipes()
	c.Notifications()
	c.Account()
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
	c.App.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))
	c.App.Post("/webhook/midtrans", c.MidtransHandler.MidtransWebhookHandler)
}

func (c *Config) Auth() {
	auth := c.App.Group("/api/auth")
	{
		auth.Post("/signup", c.UserHandler.SignUp)
		auth.Post("/signin", c.UserHandler.SignIn)
		auth.Post("/signout", c.UserHandler.SignOut)
		auth.Get("/user", c.Middleware.OptionalAuthMiddleware(c.JWTService), c.UserHandler.CurrentUser)
		auth.Get("/google", c.UserHandler.GoogleLogin)
		auth.Get("/callback", c.UserHandler.GoogleCallback)
	}
}

func (c *Config) Foods() {
	c.App.Get("/api/dashboard", c.Middleware.OptionalAuthMiddleware(c.JWTService), c.FoodHandler.GetDashboard)

	foods := c.App.Group("/api/foods", c.Middleware.AuthMiddleware(c.JWTService))
	foods.Post("", c.FoodHandler.AddFood)
	foods.Get("", c.FoodHandler.GetFoods)
	foods.Get("/:id", c.FoodHandler.GetFood)
	foods.Put("/:id", c.FoodHandler.UpdateFood)
	foods.Delete("/:id", c.FoodHandler.DeleteFood)
	foods.Post("/:id/image", c.FoodHandler.UploadFoodImage)

	c.App.Post("/api/ocr", c.Middleware.AuthMiddleware(c.JWTService), c.OCRHandler.ScanLabel)
}

func (c *Config) Camera() {
	camera := c.App.Group("/api/camera")
	camera.Get("/count", c.Middleware.OptionalAuthMiddleware(c.JWTService), c.CameraHandler.GetPhotoCount)
	camera.Post("/count", c.Middleware.AuthMiddleware(c.JWTService), c.CameraHandler.RegisterPhoto)
	camera.Post("/reset", c.Middleware.AuthMiddleware(c.JWTService), c.CameraHandler.ResetPhotos)
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/recipes", c.Middleware.AuthMiddleware(c.JWTService))
	recipes.Post("/generate", c.RecipeHandler.GenerateRecipe)
	recipes.Post("", c.RecipeHandler.SaveRecipe)
	recipes.Get("", c.RecipeHandler.GetRecipes)
	recipes.Delete("/:id", c.RecipeHandler.DeleteRecipe)
}

func (c *Config) Notifications() {
	notifications := c.App.Group("/api/notifications", c.Middleware.AuthMiddleware(c.JWTService))
	notifications.Get("/pending", c.NotificationHandler.GetPending)
	notifications.Post("/process", c.NotificationHandler.ProcessDue)
	notifications.Post("/test", c.NotificationHandler.SendTest)
	notifications.Patch("/:id/read", c.NotificationHandler.MarkRead)
}

func (c *Config) Account() {
	profile := c.App.Group("/api/profile", c.Middleware.AuthMiddleware(c.JWTService))
	profile.Get("", c.UserHandler.GetProfile)
	profile.Put("", c.UserHandler.UpdateProfile)

	c.App.Post("/api/subscription/checkout", c.Middleware.AuthMiddleware(c.JWTService), c.MidtransHandler.CreateCheckout)
}
