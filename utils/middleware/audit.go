package middleware

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/pixel-portfolio/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Audit actions
const (
	AuditCreate = "create"
	AuditUpdate = "update"
	AuditDelete = "delete"
	AuditUpload = "upload"
	AuditLogin  = "login"
	AuditLogout = "logout"
)

// AuditEntry describes one admin mutation
type AuditEntry struct {
	Action     string
	Resource   string
	ResourceID uint
	OldValue   interface{}
	NewValue   interface{}
}

// RecordAudit writes an audit log row for the authenticated admin. It runs
// inside the request so the fiber context is still valid.
func RecordAudit(db *gorm.DB, c *fiber.Ctx, entry AuditEntry) error {
	var adminID uint
	if user, ok := GetUser(c); ok {
		adminID = user.ID
	}

	auditLog := model.AdminAuditLog{
		AdminID:     adminID,
		Action:      entry.Action,
		Resource:    entry.Resource,
		ResourceID:  entry.ResourceID,
		OldValue:    toJSON(entry.OldValue),
		NewValue:    toJSON(entry.NewValue),
		IPAddress:   c.IP(),
		UserAgent:   c.Get(fiber.HeaderUserAgent),
		Description: c.Method() + " " + c.Path(),
	}

	return db.WithContext(c.UserContext()).Create(&auditLog).Error
}

func toJSON(v interface{}) datatypes.JSON {
	if v == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return datatypes.JSON(data)
}
