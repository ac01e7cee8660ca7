// Package server contains the HTTP handlers and route wiring for the
// portfolio API.
package server

import (
	"time"

	"showcase/internal/auth"
	"showcase/internal/cache"
	"showcase/internal/config"
	"showcase/internal/database"
	"showcase/internal/mailer"
	"showcase/internal/middleware"
	"showcase/internal/repository"
	"showcase/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers.
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	promMiddleware *fiberprometheus.FiberPrometheus
	tokens         *auth.TokenService
	userRepo       repository.UserRepository
	projectService *service.ProjectService
	contactService *service.ContactService

	// degraded is set when the database was unreachable at startup.
	// Project reads then serve the placeholder list; store-backed
	// endpoints answer 503.
	degraded bool
}

// NewServer creates a new server instance with all dependencies. A
// database connection failure does not abort startup; the server comes
// up in degraded mode instead.
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		middleware.Logger.Warn("database unreachable, running in degraded mode: " + err.Error())
		return newDegradedServer(cfg), nil
	}

	cache.InitRedis(cfg.RedisURL)

	var mail mailer.Mailer
	if cfg.MailConfigured() {
		mail = mailer.NewSMTPMailer(cfg)
	}

	return NewServerWithDeps(cfg, db, cache.GetClient(), mail), nil
}

// NewServerWithDeps creates a Server using already-initialized
// dependencies. Use this in tests or when a bootstrap layer establishes
// DB/Redis itself.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, mail mailer.Mailer) *Server {
	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	contactRepo := repository.NewContactRepository(db)

	return &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		promMiddleware: fiberprometheus.New("showcase-api"),
		tokens:         auth.NewTokenService(cfg.JWTSecret),
		userRepo:       userRepo,
		projectService: service.NewProjectService(projectRepo),
		contactService: service.NewContactService(contactRepo, mail),
	}
}

// newDegradedServer builds a server with no store-backed dependencies.
func newDegradedServer(cfg *config.Config) *Server {
	return &Server{
		config:         cfg,
		promMiddleware: fiberprometheus.New("showcase-api"),
		tokens:         auth.NewTokenService(cfg.JWTSecret),
		degraded:       true,
	}
}

// SetupMiddleware configures middleware for the Fiber app.
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Context middleware to propagate the request ID
	app.Use(middleware.ContextMiddleware())

	// Prometheus metrics
	if s.promMiddleware != nil {
		app.Use(s.promMiddleware.Middleware)
	}

	// Security headers
	app.Use(helmet.New())

	// Structured logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// CORS before middlewares that can short-circuit, so browser clients
	// still receive CORS headers on error responses.
	app.Use(cors.New())

	// Per-IP rate ceiling: 100 requests per 15 minutes, uniform across
	// endpoints and independent of authentication state.
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 15 * time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"message": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application.
func (s *Server) SetupRoutes(app *fiber.App) {
	app.Get("/", s.Welcome)
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)

	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	api := app.Group("/api")
	authRequired := middleware.AuthRequired(s.tokens)

	if s.degraded {
		// Placeholder read path only; everything store-backed answers 503.
		api.Get("/projects", s.ListPlaceholderProjects)
		api.Get("/projects/:id", s.GetPlaceholderProject)
		api.Use(s.StoreUnavailable)
		return
	}

	// Auth routes
	authGroup := api.Group("/auth")
	authGroup.Post("/register", s.Register)
	authGroup.Post("/login", s.Login)
	authGroup.Get("/profile", authRequired, s.GetProfile)
	authGroup.Put("/profile", authRequired, s.UpdateProfile)

	// Project routes: public reads, gated writes
	projects := api.Group("/projects")
	projects.Get("/", s.ListProjects)
	projects.Get("/:id", s.GetProject)
	projects.Post("/", authRequired, s.CreateProject)
	projects.Put("/:id", authRequired, s.UpdateProject)
	projects.Delete("/:id", authRequired, s.DeleteProject)

	// Contact routes: public submit, gated list/delete
	contact := api.Group("/contact")
	contact.Post("/", s.SubmitContactMessage)
	contact.Get("/", authRequired, s.ListContactMessages)
	contact.Delete("/:id", authRequired, s.DeleteContactMessage)
}
