package desktop

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/pixel-portfolio/model"
	"github.com/sahilchouksey/pixel-portfolio/utils/payload"
	"github.com/sahilchouksey/pixel-portfolio/utils/response"
)

// TemplateRequest is the body of POST /api/desktop-items/template
type TemplateRequest struct {
	Key payload.Field[string] `json:"key"`
}

// ListTemplates handles GET /api/desktop-items/template
func (h *DesktopHandler) ListTemplates(c *fiber.Ctx) error {
	return response.Results(c, model.DesktopItemTemplates)
}

// CreateFromTemplate handles POST /api/desktop-items/template
func (h *DesktopHandler) CreateFromTemplate(c *fiber.Ctx) error {
	var req TemplateRequest
	if err := payload.Decode(c.Body(), &req); err != nil {
		return response.InvalidJSON(c)
	}

	tpl, ok := model.LookupDesktopItemTemplate(strings.TrimSpace(req.Key.Value))
	if !ok {
		return response.Fail(c, fiber.StatusBadRequest, "Unknown template")
	}

	item := tpl.NewItem()
	if err := h.db.WithContext(c.UserContext()).Create(&item).Error; err != nil {
		return response.Fail(c, fiber.StatusInternalServerError, "Failed to create desktop item")
	}

	return c.JSON(toItemResponse(item))
}
