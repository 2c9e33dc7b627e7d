package main

import (
	"log"
	"os"

	"planboard/middleware"
	"planboard/seeder"

	"github.com/gofiber/fiber/v2"
	swag "github.com/gofiber/swagger"
	"github.com/joho/godotenv"

	_ "planboard/docs" // <-- required to register swagger spec

	"planboard/controller"
	"planboard/repository"
	"planboard/service"
	"planboard/util"
)

// @title           Planboard API
// @version         1.0
// @description     Account and authentication backend for the Planboard day-planner.
// @termsOfService  http://swagger.io/terms/

// @license.name    Apache 2.0
// @license.url     http://www.apache.org/licenses/LICENSE-2.0.html

// @host            localhost:4000
// @BasePath        /api/v1
func main() {
	// Load .env file with proper error handling
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v (using system environment variables)", err)
	}

	db := util.InitDB()

	seeder.SeedRoles(db)

	userRepo := repository.NewUserRepository(db)
	credentialRepo := repository.NewCredentialRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	otpRepo := repository.NewOTPRepository(db)

	// Redis backs the OTP issue throttle. Without it every request is
	// allowed through, which is fine for local development.
	throttleRepo := repository.NewNoopThrottleRepository()
	if client, err := repository.NewRedisClient(); err != nil {
		log.Printf("warning: redis unavailable, OTP throttling disabled: %v", err)
	} else {
		throttleRepo = repository.NewRedisThrottleRepository(client)
	}

	util.StartDailyCleanup(refreshTokenRepo, otpRepo)

	emailService := service.NewEmailService()
	otpService := service.NewOTPService(otpRepo, userRepo, throttleRepo, emailService)
	authService := service.NewAuthService(userRepo, credentialRepo, refreshTokenRepo, roleRepo, otpService)
	userService := service.NewUserService(userRepo)

	app := fiber.New()
	setupRoutes(app, authService, otpService, userService)

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}

	log.Fatal(app.Listen(":" + port))
}

func setupRoutes(app *fiber.App, authService *service.AuthService, otpService *service.OTPService, userService *service.UserService) {
	// Apply timer metrics middleware globally to all routes
	app.Use(middleware.TimerMetrics)
	app.Use(middleware.InitRateLimiter())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	app.Get("/swagger/*", swag.HandlerDefault)

	authController := controller.NewAuthController(authService)
	otpController := controller.NewOTPController(otpService)
	userController := controller.NewUserController(userService)

	api := app.Group("/api/v1")
	auth := api.Group("/auth")

	auth.Post("/register", authController.Register)
	auth.Post("/login", authController.Login)
	auth.Post("/refresh", authController.Refresh)
	auth.Post("/logout", middleware.AccessTokenRequired(), authController.Logout)

	// OTP endpoints
	auth.Post("/otp/request", otpController.RequestOTP)
	auth.Post("/otp/resend", otpController.ResendOTP)
	auth.Put("/otp/verify", otpController.VerifyOTP)

	// password endpoints
	auth.Post("/forgot-password", authController.ForgotPassword)
	auth.Post("/password-change", middleware.AccessTokenRequired(), authController.ChangePassword)

	// MFA endpoints
	auth.Post("/mfa/setup", middleware.AccessTokenRequired(), authController.SetupMFA)
	auth.Post("/mfa/confirm", middleware.AccessTokenRequired(), authController.ConfirmMFA)

	users := api.Group("/users", middleware.AccessTokenRequired())
	users.Get("/me", userController.GetProfile)
	users.Patch("/me", userController.UpdateProfile)
}
