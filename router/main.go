package router

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sahilchouksey/pixel-portfolio/config"
	"github.com/sahilchouksey/pixel-portfolio/database"
	"github.com/sahilchouksey/pixel-portfolio/handlers"
	admin_handlers "github.com/sahilchouksey/pixel-portfolio/handlers/admin"
	desktop_handlers "github.com/sahilchouksey/pixel-portfolio/handlers/desktop"
	note_handlers "github.com/sahilchouksey/pixel-portfolio/handlers/note"
	page_handlers "github.com/sahilchouksey/pixel-portfolio/handlers/page"
	preference_handlers "github.com/sahilchouksey/pixel-portfolio/handlers/preference"
	runhistory_handlers "github.com/sahilchouksey/pixel-portfolio/handlers/runhistory"
	theme_handlers "github.com/sahilchouksey/pixel-portfolio/handlers/theme"
	"github.com/sahilchouksey/pixel-portfolio/services/storage"
	"github.com/sahilchouksey/pixel-portfolio/utils"
	"github.com/sahilchouksey/pixel-portfolio/utils/auth"
	"github.com/sahilchouksey/pixel-portfolio/utils/cache"
	"github.com/sahilchouksey/pixel-portfolio/utils/middleware"
	"github.com/sahilchouksey/pixel-portfolio/utils/response"
)

// Dependencies are the optional services the routes are wired with
type Dependencies struct {
	JWTManager  *auth.JWTManager
	RedisCache  *cache.RedisCache   // nil disables login lockout and theme caching
	ObjectStore storage.ObjectStore // nil makes uploads answer 503
}

func SetupRoutes(app *fiber.App, store database.Storage, env *config.EnvironmentVariable) {
	// Get JWT secret from environment
	jwtSecret := env.JWT_SECRET
	if jwtSecret == "" {
		if env.IsProduction() {
			log.Fatal("JWT_SECRET environment variable is not set")
		}
		// Tokens will not survive a restart
		jwtSecret = uuid.NewString()
		log.Println("Warning: JWT_SECRET is not set, using a random secret for this process")
	}

	jwtManager := auth.NewJWTManager(auth.JWTConfig{
		Secret: jwtSecret,
		Expiry: auth.DefaultTokenExpiry,
		Issuer: env.JWT_ISSUER,
	})

	deps := Dependencies{JWTManager: jwtManager}

	// Initialize Redis cache for brute force protection and theme caching
	if env.REDIS_URL != "" {
		redisCache, err := cache.NewRedisCache(env.REDIS_URL)
		if err != nil {
			log.Printf("Warning: Failed to connect to Redis: %v. Brute force protection will be disabled.", err)
		} else {
			deps.RedisCache = redisCache
		}
	}

	// Object storage for admin uploads
	spacesConfig, err := storage.ConfigFromEnv(env)
	switch {
	case errors.Is(err, storage.ErrNotConfigured):
		log.Println("Object storage is not configured, admin uploads are disabled")
	case err != nil:
		log.Printf("Warning: Invalid object storage configuration: %v", err)
	default:
		client, err := storage.NewSpacesClient(spacesConfig)
		if err != nil {
			log.Printf("Warning: Failed to create object storage client: %v", err)
		} else {
			deps.ObjectStore = client
		}
	}

	// Apply security middleware
	middleware.SetupSecurity(app, middleware.SecurityConfig{
		AllowedOrigins:    env.ALLOWED_ORIGINS,
		RateLimitRequests: 100,             // 100 requests
		RateLimitWindow:   1 * time.Minute, // per minute
	})

	Register(app, store, deps)
}

// Register attaches every route to app
func Register(app *fiber.App, store database.Storage, deps Dependencies) {
	db := store.GetDB()

	preferenceHandler := preference_handlers.NewPreferenceHandler(db)
	runHistoryHandler := runhistory_handlers.NewRunHistoryHandler(db)
	desktopHandler := desktop_handlers.NewDesktopHandler(db)
	themeHandler := theme_handlers.NewThemeHandler(db, deps.RedisCache)
	noteHandler := note_handlers.NewNoteHandler(db)
	pageHandler := page_handlers.NewPageHandler(db)

	var bruteForceProtection *middleware.BruteForceProtection
	if deps.RedisCache != nil {
		bruteForceProtection = middleware.NewBruteForceProtection(deps.RedisCache)
	}
	authMiddleware := middleware.NewAuthMiddleware(deps.JWTManager, db)

	console := &admin_handlers.Console{
		Auth:      admin_handlers.NewAuthHandler(db, deps.JWTManager, bruteForceProtection),
		Resources: admin_handlers.NewPortfolioRegistry(db, func(ctx context.Context) { themeHandler.InvalidateCache(ctx) }),
		Uploads:   admin_handlers.NewUploadHandler(db, deps.ObjectStore),
		Audit:     admin_handlers.NewAuditHandler(db),
	}

	// Health check endpoint (public)
	app.Get("/ping", utils.MakeHTTPHandleFunc(handlers.HandleCheckHealth, store))

	// ==================== Desktop widget API ====================

	api := app.Group("/api")

	api.Get("/preferences", preferenceHandler.GetPreferences)
	api.Post("/preferences", preferenceHandler.UpdatePreferences)
	api.Put("/preferences", preferenceHandler.UpdatePreferences)
	api.All("/preferences", middleware.MethodNotAllowed(fiber.MethodGet, fiber.MethodPost, fiber.MethodPut))

	api.Get("/run-history", runHistoryHandler.ListRuns)
	api.Post("/run-history", runHistoryHandler.CreateRun)
	api.All("/run-history", middleware.MethodNotAllowed(fiber.MethodGet, fiber.MethodPost))

	// Templates before items so the fixed path is not shadowed
	api.Get("/desktop-items/template", desktopHandler.ListTemplates)
	api.Post("/desktop-items/template", desktopHandler.CreateFromTemplate)
	api.All("/desktop-items/template", middleware.MethodNotAllowed(fiber.MethodGet, fiber.MethodPost))

	api.Get("/desktop-items", desktopHandler.ListItems)
	api.Post("/desktop-items", desktopHandler.CreateItem)
	api.Patch("/desktop-items", desktopHandler.UpdateItem)
	api.Delete("/desktop-items", desktopHandler.DeleteItem)
	api.All("/desktop-items", middleware.MethodNotAllowed(fiber.MethodGet, fiber.MethodPost, fiber.MethodPatch, fiber.MethodDelete))

	api.Get("/themes", themeHandler.ListThemes)
	api.All("/themes", middleware.MethodNotAllowed(fiber.MethodGet))

	api.Get("/notes/recycle", noteHandler.ListRecycled)
	api.Delete("/notes/recycle", noteHandler.EmptyRecycled)
	api.All("/notes/recycle", middleware.MethodNotAllowed(fiber.MethodGet, fiber.MethodDelete))

	api.Get("/notes", noteHandler.ListNotes)
	api.Post("/notes", noteHandler.CreateNote)
	api.Patch("/notes", noteHandler.UpdateNote)
	api.Delete("/notes", noteHandler.DeleteNote)
	api.All("/notes", middleware.MethodNotAllowed(fiber.MethodGet, fiber.MethodPost, fiber.MethodPatch, fiber.MethodDelete))

	// ==================== Admin console ====================

	console.Mount(app, authMiddleware, bruteForceProtection)

	// ==================== Pages ====================

	app.Get("/", pageHandler.Home)
	app.Get("/about", pageHandler.About)
	app.Get("/contact", pageHandler.Contact)
	app.Post("/contact", pageHandler.SubmitContact)
	app.Get("/older", pageHandler.Older)
	app.Get("/notepad", pageHandler.Notepad)
	app.Get("/calculator", pageHandler.Calculator)
	app.Get("/mycomputer", pageHandler.MyComputer)
	app.Get("/recycle", pageHandler.RecycleBin)
	app.Get("/projects", pageHandler.Projects)
	app.Get("/project/:id", pageHandler.ProjectDetail)

	app.Use(notFound(pageHandler))
}

// notFound answers unmatched paths in the shape the caller expects
func notFound(pages *page_handlers.PageHandler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()
		switch {
		case strings.HasPrefix(path, "/api/"):
			return response.Fail(c, fiber.StatusNotFound, "Not found")
		case strings.HasPrefix(path, "/admin/"):
			return response.NotFound(c, "")
		}
		return pages.NotFound(c)
	}
}
