package theme

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/pixel-portfolio/model"
	"github.com/sahilchouksey/pixel-portfolio/utils/cache"
	"github.com/sahilchouksey/pixel-portfolio/utils/response"
	"gorm.io/gorm"
)

const (
	themesCacheKey = "themes:list"
	themesCacheTTL = 10 * time.Minute
)

// ThemeHandler lists the available desktop themes
type ThemeHandler struct {
	db    *gorm.DB
	cache *cache.RedisCache // optional
}

// NewThemeHandler creates a new theme handler. redisCache may be nil.
func NewThemeHandler(db *gorm.DB, redisCache *cache.RedisCache) *ThemeHandler {
	return &ThemeHandler{db: db, cache: redisCache}
}

// ThemeResponse is the public shape of a theme
type ThemeResponse struct {
	Key       string                 `json:"key"`
	Name      string                 `json:"name"`
	Variables map[string]interface{} `json:"variables"`
	IsDefault bool                   `json:"is_default"`
}

// ListThemes handles GET /api/themes
func (h *ThemeHandler) ListThemes(c *fiber.Ctx) error {
	if h.cache != nil {
		var cached []ThemeResponse
		if err := h.cache.GetJSON(c.UserContext(), themesCacheKey, &cached); err == nil {
			return response.Results(c, cached)
		}
	}

	var themes []model.Theme
	if err := h.db.WithContext(c.UserContext()).Order("name ASC").Find(&themes).Error; err != nil {
		return response.Fail(c, fiber.StatusInternalServerError, "Failed to fetch themes")
	}

	results := make([]ThemeResponse, 0, len(themes))
	for _, t := range themes {
		vars := map[string]interface{}(t.Variables)
		if vars == nil {
			vars = map[string]interface{}{}
		}
		results = append(results, ThemeResponse{
			Key:       t.Key,
			Name:      t.Name,
			Variables: vars,
			IsDefault: t.IsDefault,
		})
	}

	if h.cache != nil {
		if err := h.cache.SetJSON(c.UserContext(), themesCacheKey, results, themesCacheTTL); err != nil {
			log.Printf("Warning: failed to cache themes: %v", err)
		}
	}

	return response.Results(c, results)
}

// InvalidateCache drops the cached listing after a theme changes
func (h *ThemeHandler) InvalidateCache(ctx context.Context) {
	if h.cache == nil {
		return
	}
	if err := h.cache.Delete(ctx, themesCacheKey); err != nil {
		log.Printf("Warning: failed to invalidate theme cache: %v", err)
	}
}
