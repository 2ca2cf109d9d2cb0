package desktop

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/pixel-portfolio/model"
	"github.com/sahilchouksey/pixel-portfolio/utils/payload"
	"github.com/sahilchouksey/pixel-portfolio/utils/response"
	"gorm.io/gorm"
)

// DesktopHandler persists the icons on the desktop
type DesktopHandler struct {
	db *gorm.DB
}

// NewDesktopHandler creates a new desktop handler
func NewDesktopHandler(db *gorm.DB) *DesktopHandler {
	return &DesktopHandler{db: db}
}

// ItemRequest is the body of POST and PATCH /api/desktop-items.
// Positions accept numbers or numeric strings.
type ItemRequest struct {
	ID       payload.Field[interface{}] `json:"id"`
	Label    payload.Field[string]      `json:"label"`
	ItemType payload.Field[string]      `json:"item_type"`
	PosX     payload.Field[interface{}] `json:"pos_x"`
	PosY     payload.Field[interface{}] `json:"pos_y"`
}

// ItemResponse is the public shape of a desktop item
type ItemResponse struct {
	ID       uint   `json:"id"`
	Label    string `json:"label"`
	ItemType string `json:"item_type"`
	PosX     int    `json:"pos_x"`
	PosY     int    `json:"pos_y"`
}

func toItemResponse(item model.DesktopItem) ItemResponse {
	return ItemResponse{
		ID:       item.ID,
		Label:    item.Label,
		ItemType: item.ItemType,
		PosX:     item.PosX,
		PosY:     item.PosY,
	}
}

// ListItems handles GET /api/desktop-items
func (h *DesktopHandler) ListItems(c *fiber.Ctx) error {
	var items []model.DesktopItem
	if err := h.db.WithContext(c.UserContext()).Order("id ASC").Find(&items).Error; err != nil {
		return response.Fail(c, fiber.StatusInternalServerError, "Failed to fetch desktop items")
	}

	results := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		results = append(results, toItemResponse(item))
	}
	return response.Results(c, results)
}

// CreateItem handles POST /api/desktop-items
func (h *DesktopHandler) CreateItem(c *fiber.Ctx) error {
	var req ItemRequest
	if err := payload.Decode(c.Body(), &req); err != nil {
		return response.InvalidJSON(c)
	}

	item := model.DesktopItem{
		Label:    model.DefaultItemLabel,
		ItemType: model.ItemTypeFolder,
		PosX:     model.DefaultItemPos,
		PosY:     model.DefaultItemPos,
	}
	if label := strings.TrimSpace(req.Label.Value); label != "" {
		item.Label = label
	}
	if msg := applyItemFields(&item, &req); msg != "" {
		return response.Fail(c, fiber.StatusBadRequest, msg)
	}

	if err := h.db.WithContext(c.UserContext()).Create(&item).Error; err != nil {
		return response.Fail(c, fiber.StatusInternalServerError, "Failed to create desktop item")
	}

	return c.JSON(toItemResponse(item))
}

// UpdateItem handles PATCH /api/desktop-items
func (h *DesktopHandler) UpdateItem(c *fiber.Ctx) error {
	var req ItemRequest
	if err := payload.Decode(c.Body(), &req); err != nil {
		return response.InvalidJSON(c)
	}

	id, ok := payload.ID(req.ID.Value)
	if !ok {
		return response.Fail(c, fiber.StatusNotFound, "Invalid id")
	}

	var item model.DesktopItem
	if err := h.db.WithContext(c.UserContext()).First(&item, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.Fail(c, fiber.StatusNotFound, "Invalid id")
		}
		return response.Fail(c, fiber.StatusInternalServerError, "Failed to load desktop item")
	}

	// An empty label keeps the current one
	if label := strings.TrimSpace(req.Label.Value); label != "" {
		item.Label = label
	}
	if msg := applyItemFields(&item, &req); msg != "" {
		return response.Fail(c, fiber.StatusBadRequest, msg)
	}

	if err := h.db.WithContext(c.UserContext()).Save(&item).Error; err != nil {
		return response.Fail(c, fiber.StatusInternalServerError, "Failed to update desktop item")
	}

	return c.JSON(toItemResponse(item))
}

// DeleteItem handles DELETE /api/desktop-items. The id comes from the body
// or the id query parameter; deleting a missing item still succeeds.
func (h *DesktopHandler) DeleteItem(c *fiber.Ctx) error {
	var raw interface{}
	if q := c.Query("id"); q != "" {
		raw = q
	} else {
		var req ItemRequest
		if err := payload.Decode(c.Body(), &req); err != nil {
			return response.Fail(c, fiber.StatusBadRequest, "Invalid request")
		}
		raw = req.ID.Value
	}

	id, ok := payload.ID(raw)
	if !ok {
		return response.Fail(c, fiber.StatusBadRequest, "Invalid request")
	}

	if err := h.db.WithContext(c.UserContext()).Delete(&model.DesktopItem{}, id).Error; err != nil {
		return response.Fail(c, fiber.StatusInternalServerError, "Failed to delete desktop item")
	}

	return response.OK(c)
}

// applyItemFields copies item_type and positions when present
func applyItemFields(item *model.DesktopItem, req *ItemRequest) string {
	if req.ItemType.Set {
		itemType, ok := req.ItemType.Get()
		if !ok || !model.IsValidItemType(itemType) {
			return "item_type must be one of folder, shortcut"
		}
		item.ItemType = itemType
	}

	if req.PosX.Set {
		x, ok := payload.ToInt(req.PosX.Value)
		if !ok {
			return "pos_x must be an integer"
		}
		item.PosX = x
	}

	if req.PosY.Set {
		y, ok := payload.ToInt(req.PosY.Value)
		if !ok {
			return "pos_y must be an integer"
		}
		item.PosY = y
	}

	return ""
}
