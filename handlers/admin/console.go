package admin

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/pixel-portfolio/utils/middleware"
)

// MaxRequestBody is the body limit the server needs for resume uploads
const MaxRequestBody = 12 * 1024 * 1024

// Console bundles the admin API handlers
type Console struct {
	Auth      *AuthHandler
	Resources *Registry
	Uploads   *UploadHandler
	Audit     *AuditHandler
}

// Mount registers the admin API under /admin/api. Every route except login
// requires a superuser token.
func (con *Console) Mount(r fiber.Router, authMiddleware *middleware.AuthMiddleware, bruteForce *middleware.BruteForceProtection) {
	api := r.Group("/admin/api")
	requireAdmin := authMiddleware.RequireAdmin()

	api.Post("/login", bruteForce.CheckAndRecordAttempt(), con.Auth.Login)
	api.All("/login", allow(fiber.MethodPost))
	api.Post("/logout", requireAdmin, con.Auth.Logout)
	api.All("/logout", allow(fiber.MethodPost))
	api.Get("/me", requireAdmin, con.Auth.Me)
	api.All("/me", allow(fiber.MethodGet))

	// Audit trail
	api.Get("/audit", requireAdmin, con.Audit.ListAuditLogs)
	api.All("/audit", allow(fiber.MethodGet))
	api.Get("/audit/:id", requireAdmin, con.Audit.GetAuditLog)
	api.All("/audit/:id", allow(fiber.MethodGet))

	// File uploads
	api.Post("/projects/:id/image", requireAdmin, con.Uploads.UploadProjectImage)
	api.All("/projects/:id/image", allow(fiber.MethodPost))
	api.Post("/profiles/:id/resume", requireAdmin, con.Uploads.UploadResume)
	api.All("/profiles/:id/resume", allow(fiber.MethodPost))

	// Generic tables, registered last so the fixed paths above win
	api.All("/:resource", requireAdmin, con.Resources.Collection)
	api.All("/:resource/:id", requireAdmin, con.Resources.Item)
}

func allow(methods ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return methodNotAllowed(c, methods)
	}
}
