package api

import (
	"github.com/allenkiakshay/vessify/internal/api/handlers"
	"github.com/allenkiakshay/vessify/pkg/auth"
	"github.com/allenkiakshay/vessify/pkg/config"
	"github.com/allenkiakshay/vessify/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

func SetupRouter(
	authHandler *handlers.AuthHandler,
	orgHandler *handlers.OrganizationHandler,
	txHandler *handlers.TransactionHandler,
	jwtManager *auth.JWTManager,
	rateLimitStore middleware.CounterStore,
	cfg *config.Config,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	// Auth routes (public)
	authRoutes := app.Group("/auth")
	authRoutes.Post("/register", authHandler.Register)
	authRoutes.Post("/login", authHandler.Login)
	authRoutes.Post("/refresh", authHandler.RefreshToken)

	// Protected routes
	protected := app.Group("/api/v1", middleware.AuthMiddleware(jwtManager, appLogger))

	organizations := protected.Group("/organizations")
	organizations.Post("", orgHandler.Create)
	organizations.Get("", orgHandler.List)
	organizations.Get("/:id", orgHandler.Get)
	organizations.Post("/:id/members", orgHandler.AddMember)
	organizations.Delete("/:id/members/:userId", orgHandler.RemoveMember)

	transactions := protected.Group("/transactions")
	transactions.Post("/extract",
		middleware.RateLimitMiddleware(rateLimitStore, &cfg.RateLimit, appLogger),
		txHandler.Extract,
	)
	transactions.Get("", txHandler.List)
	transactions.Get("/:id", txHandler.Get)

	return app
}
