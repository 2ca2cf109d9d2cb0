package preference

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/pixel-portfolio/database"
	"github.com/sahilchouksey/pixel-portfolio/model"
	"github.com/sahilchouksey/pixel-portfolio/utils/payload"
	"github.com/sahilchouksey/pixel-portfolio/utils/response"
	"gorm.io/gorm"
)

const (
	maxThemeLength     = 50
	maxWallpaperLength = 64
)

// PreferenceHandler serves the desktop settings singleton
type PreferenceHandler struct {
	db *gorm.DB
}

// NewPreferenceHandler creates a new preference handler
func NewPreferenceHandler(db *gorm.DB) *PreferenceHandler {
	return &PreferenceHandler{db: db}
}

// UpdatePreferencesRequest is a partial update, every key optional
type UpdatePreferencesRequest struct {
	Theme        payload.Field[string]      `json:"theme"`
	Wallpaper    payload.Field[string]      `json:"wallpaper"`
	SoundEnabled payload.Field[interface{}] `json:"sound_enabled"`
	Volume       payload.Field[int]         `json:"volume"`
}

// GetPreferences handles GET /api/preferences
func (h *PreferenceHandler) GetPreferences(c *fiber.Ctx) error {
	prefs, err := database.GetOrCreatePreferences(c.UserContext(), h.db)
	if err != nil {
		return response.Fail(c, fiber.StatusInternalServerError, "Failed to load preferences")
	}
	return c.JSON(prefs)
}

// UpdatePreferences handles POST and PUT /api/preferences
func (h *PreferenceHandler) UpdatePreferences(c *fiber.Ctx) error {
	var req UpdatePreferencesRequest
	if err := payload.Decode(c.Body(), &req); err != nil {
		return response.InvalidJSON(c)
	}

	prefs, err := database.GetOrCreatePreferences(c.UserContext(), h.db)
	if err != nil {
		return response.Fail(c, fiber.StatusInternalServerError, "Failed to load preferences")
	}

	if msg := applyPreferences(prefs, &req); msg != "" {
		return response.Fail(c, fiber.StatusBadRequest, msg)
	}

	if err := h.db.WithContext(c.UserContext()).Save(prefs).Error; err != nil {
		return response.Fail(c, fiber.StatusInternalServerError, "Failed to save preferences")
	}

	return c.JSON(prefs)
}

// applyPreferences copies the present fields onto prefs and returns a
// validation message when a value is out of range.
func applyPreferences(prefs *model.UserPreference, req *UpdatePreferencesRequest) string {
	if theme, ok := req.Theme.Get(); ok {
		theme = strings.TrimSpace(theme)
		if theme == "" {
			return "theme must not be empty"
		}
		if len(theme) > maxThemeLength {
			return "theme must be at most 50 characters"
		}
		prefs.Theme = theme
	}

	if wallpaper, ok := req.Wallpaper.Get(); ok {
		wallpaper = strings.TrimSpace(wallpaper)
		if wallpaper == "" {
			return "wallpaper must not be empty"
		}
		if len(wallpaper) > maxWallpaperLength {
			return "wallpaper must be at most 64 characters"
		}
		prefs.Wallpaper = wallpaper
	}

	if req.SoundEnabled.Set {
		prefs.SoundEnabled = payload.Truthy(req.SoundEnabled.Value)
	}

	// Only whole JSON numbers count; anything else leaves the volume alone.
	if volume, ok := req.Volume.Get(); ok {
		prefs.Volume = model.ClampVolume(volume)
	}

	return ""
}
