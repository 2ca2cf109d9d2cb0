package runhistory

import (
	"strings"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/pixel-portfolio/model"
	"github.com/sahilchouksey/pixel-portfolio/utils/payload"
	"github.com/sahilchouksey/pixel-portfolio/utils/response"
	"gorm.io/gorm"
)

const maxCommandLength = 255

// RunHistoryHandler records commands typed into the Run dialog
type RunHistoryHandler struct {
	db *gorm.DB
}

// NewRunHistoryHandler creates a new run history handler
func NewRunHistoryHandler(db *gorm.DB) *RunHistoryHandler {
	return &RunHistoryHandler{db: db}
}

// CreateRunRequest is the body of POST /api/run-history
type CreateRunRequest struct {
	Command payload.Field[string] `json:"command"`
	Result  payload.Field[string] `json:"result"`
}

// ListRuns handles GET /api/run-history
func (h *RunHistoryHandler) ListRuns(c *fiber.Ctx) error {
	runs := []model.RunHistory{}
	if err := h.db.WithContext(c.UserContext()).
		Order("created_at DESC").
		Order("id DESC").
		Find(&runs).Error; err != nil {
		return response.Fail(c, fiber.StatusInternalServerError, "Failed to fetch run history")
	}

	return response.Results(c, runs)
}

// CreateRun handles POST /api/run-history
func (h *RunHistoryHandler) CreateRun(c *fiber.Ctx) error {
	var req CreateRunRequest
	if err := payload.Decode(c.Body(), &req); err != nil {
		return response.InvalidJSON(c)
	}

	command := strings.TrimSpace(req.Command.Value)
	if command == "" {
		return response.Fail(c, fiber.StatusBadRequest, "command is required")
	}
	if utf8.RuneCountInString(command) > maxCommandLength {
		return response.Fail(c, fiber.StatusBadRequest, "command must be at most 255 characters")
	}

	run := model.RunHistory{
		Command: command,
		Result:  strings.TrimSpace(req.Result.Value),
	}
	if err := h.db.WithContext(c.UserContext()).Create(&run).Error; err != nil {
		return response.Fail(c, fiber.StatusInternalServerError, "Failed to save command")
	}

	return c.JSON(run)
}
