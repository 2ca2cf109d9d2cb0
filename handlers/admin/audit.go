package admin

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/pixel-portfolio/model"
	"github.com/sahilchouksey/pixel-portfolio/utils/middleware"
	"github.com/sahilchouksey/pixel-portfolio/utils/response"
	"gorm.io/gorm"
)

// AuditHandler exposes the admin audit trail
type AuditHandler struct {
	db *gorm.DB
}

// NewAuditHandler creates a new audit handler
func NewAuditHandler(db *gorm.DB) *AuditHandler {
	return &AuditHandler{db: db}
}

// ListAuditLogs handles GET /admin/api/audit
// Query params: page, limit, action, resource, admin_id
func (h *AuditHandler) ListAuditLogs(c *fiber.Ctx) error {
	meta := response.CalculatePagination(c.QueryInt("page", 1), c.QueryInt("limit", 20), 0)

	query := h.db.WithContext(c.UserContext()).Model(&model.AdminAuditLog{})

	if action := c.Query("action"); action != "" {
		query = query.Where("action = ?", action)
	}
	if resource := c.Query("resource"); resource != "" {
		query = query.Where("resource = ?", resource)
	}
	if adminID := c.QueryInt("admin_id", 0); adminID > 0 {
		query = query.Where("admin_id = ?", adminID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return response.InternalServerError(c, "Failed to count audit logs")
	}

	logs := make([]model.AdminAuditLog, 0)
	if err := query.Order("created_at DESC, id DESC").
		Offset((meta.CurrentPage - 1) * meta.PerPage).
		Limit(meta.PerPage).
		Find(&logs).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch audit logs")
	}

	return response.Paginated(c, logs, response.CalculatePagination(meta.CurrentPage, meta.PerPage, total))
}

// GetAuditLog handles GET /admin/api/audit/:id
func (h *AuditHandler) GetAuditLog(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return response.BadRequest(c, "Invalid ID")
	}

	var entry model.AdminAuditLog
	if err := h.db.WithContext(c.UserContext()).First(&entry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Audit log not found")
		}
		return response.InternalServerError(c, "Failed to fetch audit log")
	}

	return response.Success(c, entry)
}

func logAuditFailure(entry middleware.AuditEntry, err error) {
	log.Printf("Failed to record audit log (%s %s #%d): %v", entry.Action, entry.Resource, entry.ResourceID, err)
}
