package note

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/pixel-portfolio/model"
	"github.com/sahilchouksey/pixel-portfolio/utils/payload"
	"github.com/sahilchouksey/pixel-portfolio/utils/response"
	"gorm.io/gorm"
)

const maxTitleLength = 200

// NoteHandler backs the notepad and the recycle bin
type NoteHandler struct {
	db  *gorm.DB
	now func() time.Time
}

// NewNoteHandler creates a new note handler
func NewNoteHandler(db *gorm.DB) *NoteHandler {
	return &NoteHandler{db: db, now: time.Now}
}

// NoteRequest is the body of the notes endpoints
type NoteRequest struct {
	ID        payload.Field[interface{}] `json:"id"`
	Title     payload.Field[string]      `json:"title"`
	Content   payload.Field[string]      `json:"content"`
	IsDeleted payload.Field[interface{}] `json:"is_deleted"`
	Purge     payload.Field[interface{}] `json:"purge"`
}

// ListNotes handles GET /api/notes
func (h *NoteHandler) ListNotes(c *fiber.Ctx) error {
	notes := []model.Note{}
	if err := h.db.WithContext(c.UserContext()).
		Where("is_deleted = ?", false).
		Order("updated_at DESC").
		Order("id DESC").
		Find(&notes).Error; err != nil {
		return response.Fail(c, fiber.StatusInternalServerError, "Failed to fetch notes")
	}
	return response.Results(c, notes)
}

// CreateNote handles POST /api/notes
func (h *NoteHandler) CreateNote(c *fiber.Ctx) error {
	var req NoteRequest
	if err := payload.Decode(c.Body(), &req); err != nil {
		return response.InvalidJSON(c)
	}

	note := model.Note{Title: model.DefaultNoteTitle}
	if msg := applyNote(&note, &req); msg != "" {
		return response.Fail(c, fiber.StatusBadRequest, msg)
	}

	if err := h.db.WithContext(c.UserContext()).Create(&note).Error; err != nil {
		return response.Fail(c, fiber.StatusInternalServerError, "Failed to create note")
	}
	return c.JSON(note)
}

// UpdateNote handles PATCH /api/notes
func (h *NoteHandler) UpdateNote(c *fiber.Ctx) error {
	var req NoteRequest
	if err := payload.Decode(c.Body(), &req); err != nil {
		return response.InvalidJSON(c)
	}

	note, err := h.find(c, req.ID.Value)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.Fail(c, fiber.StatusNotFound, "Note not found")
		}
		return response.Fail(c, fiber.StatusInternalServerError, "Failed to load note")
	}

	if msg := applyNote(note, &req); msg != "" {
		return response.Fail(c, fiber.StatusBadRequest, msg)
	}
	if req.IsDeleted.Set {
		if deleted := payload.Truthy(req.IsDeleted.Value); deleted != note.IsDeleted {
			note.MarkDeleted(deleted, h.now())
		}
	}

	if err := h.db.WithContext(c.UserContext()).Save(note).Error; err != nil {
		return response.Fail(c, fiber.StatusInternalServerError, "Failed to update note")
	}
	return c.JSON(note)
}

// DeleteNote handles DELETE /api/notes. Notes go to the recycle bin unless
// the body asks for a purge.
func (h *NoteHandler) DeleteNote(c *fiber.Ctx) error {
	var req NoteRequest
	if err := payload.Decode(c.Body(), &req); err != nil {
		return response.Fail(c, fiber.StatusBadRequest, "Invalid request")
	}
	if _, ok := payload.ID(req.ID.Value); !ok {
		return response.Fail(c, fiber.StatusBadRequest, "Invalid request")
	}

	note, err := h.find(c, req.ID.Value)
	if err == gorm.ErrRecordNotFound {
		return response.OK(c)
	}
	if err != nil {
		return response.Fail(c, fiber.StatusInternalServerError, "Failed to load note")
	}

	db := h.db.WithContext(c.UserContext())
	if payload.Truthy(req.Purge.Value) {
		if err := db.Delete(note).Error; err != nil {
			return response.Fail(c, fiber.StatusInternalServerError, "Failed to delete note")
		}
		return response.OK(c)
	}

	if !note.IsDeleted {
		note.MarkDeleted(true, h.now())
		if err := db.Save(note).Error; err != nil {
			return response.Fail(c, fiber.StatusInternalServerError, "Failed to delete note")
		}
	}
	return response.OK(c)
}

// ListRecycled handles GET /api/notes/recycle
func (h *NoteHandler) ListRecycled(c *fiber.Ctx) error {
	notes := []model.Note{}
	if err := h.db.WithContext(c.UserContext()).
		Where("is_deleted = ?", true).
		Order("deleted_on DESC").
		Order("id DESC").
		Find(&notes).Error; err != nil {
		return response.Fail(c, fiber.StatusInternalServerError, "Failed to fetch recycle bin")
	}
	return response.Results(c, notes)
}

// EmptyRecycled handles DELETE /api/notes/recycle. With an id only that
// note is purged; without one the whole bin is emptied.
func (h *NoteHandler) EmptyRecycled(c *fiber.Ctx) error {
	var req NoteRequest
	if len(strings.TrimSpace(string(c.Body()))) > 0 {
		if err := payload.Decode(c.Body(), &req); err != nil {
			return response.InvalidJSON(c)
		}
	}

	query := h.db.WithContext(c.UserContext()).Where("is_deleted = ?", true)
	if req.ID.Set {
		id, ok := payload.ID(req.ID.Value)
		if !ok {
			return response.Fail(c, fiber.StatusBadRequest, "Invalid request")
		}
		query = query.Where("id = ?", id)
	}

	result := query.Delete(&model.Note{})
	if result.Error != nil {
		return response.Fail(c, fiber.StatusInternalServerError, "Failed to empty recycle bin")
	}

	return c.JSON(fiber.Map{"ok": true, "purged": result.RowsAffected})
}

func (h *NoteHandler) find(c *fiber.Ctx, rawID interface{}) (*model.Note, error) {
	id, ok := payload.ID(rawID)
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	var note model.Note
	if err := h.db.WithContext(c.UserContext()).First(&note, id).Error; err != nil {
		return nil, err
	}
	return &note, nil
}

// applyNote copies title and content when present
func applyNote(note *model.Note, req *NoteRequest) string {
	if req.Title.Set {
		title := strings.TrimSpace(req.Title.Value)
		if utf8.RuneCountInString(title) > maxTitleLength {
			return "title must be at most 200 characters"
		}
		if title == "" {
			title = model.DefaultNoteTitle
		}
		note.Title = title
	}
	if content, ok := req.Content.Get(); ok {
		note.Content = content
	}
	return ""
}
