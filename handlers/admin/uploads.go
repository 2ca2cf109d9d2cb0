package admin

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/pixel-portfolio/model"
	"github.com/sahilchouksey/pixel-portfolio/services/storage"
	"github.com/sahilchouksey/pixel-portfolio/utils/middleware"
	"github.com/sahilchouksey/pixel-portfolio/utils/pdfvalidation"
	"github.com/sahilchouksey/pixel-portfolio/utils/response"
	"gorm.io/gorm"
)

// MaxImageSize bounds project screenshots
const MaxImageSize = 5 * 1024 * 1024

var imageTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/gif":  true,
	"image/webp": true,
}

// UploadHandler stores project images and the profile resume in object storage
type UploadHandler struct {
	db    *gorm.DB
	store storage.ObjectStore
	now   func() time.Time
}

// NewUploadHandler creates a new upload handler. A nil store disables uploads.
func NewUploadHandler(db *gorm.DB, store storage.ObjectStore) *UploadHandler {
	return &UploadHandler{db: db, store: store, now: time.Now}
}

// UploadProjectImage handles POST /admin/api/projects/:id/image
func (h *UploadHandler) UploadProjectImage(c *fiber.Ctx) error {
	if h.store == nil {
		return response.ServiceUnavailable(c, storage.ErrNotConfigured.Error())
	}

	var project model.Project
	if ok, err := h.load(c, &project); !ok {
		return err
	}

	file, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "File is required")
	}
	if file.Size > MaxImageSize {
		return response.BadRequest(c, "Image exceeds maximum size of 5MB")
	}

	f, err := file.Open()
	if err != nil {
		return response.InternalServerError(c, "Failed to read file")
	}
	defer f.Close()

	content, err := io.ReadAll(io.LimitReader(f, MaxImageSize+1))
	if err != nil {
		return response.InternalServerError(c, "Failed to read file")
	}
	if len(content) > MaxImageSize {
		return response.BadRequest(c, "Image exceeds maximum size of 5MB")
	}

	contentType := http.DetectContentType(content)
	if !imageTypes[contentType] {
		return response.BadRequest(c, "Only PNG, JPEG, GIF and WebP images are supported")
	}

	key := storage.GenerateKey("projects/"+strconv.FormatUint(uint64(project.ID), 10), file.Filename, h.now())
	url, err := h.store.UploadBytes(c.UserContext(), key, content, contentType)
	if err != nil {
		log.Printf("Failed to upload project image: %v", err)
		return response.InternalServerError(c, "Failed to upload image")
	}

	old := project.ImageURL
	if err := h.db.WithContext(c.UserContext()).Model(&project).Update("image_url", url).Error; err != nil {
		return response.InternalServerError(c, "Failed to update project")
	}
	project.ImageURL = url

	h.audit(c, "projects", project.ID, fiber.Map{"image_url": old}, fiber.Map{"image_url": url})

	return response.Success(c, project)
}

// UploadResume handles POST /admin/api/profiles/:id/resume
func (h *UploadHandler) UploadResume(c *fiber.Ctx) error {
	if h.store == nil {
		return response.ServiceUnavailable(c, storage.ErrNotConfigured.Error())
	}

	var profile model.Profile
	if ok, err := h.load(c, &profile); !ok {
		return err
	}

	file, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "File is required")
	}

	result, err := pdfvalidation.ValidatePDFFile(file, pdfvalidation.ResumeLimits)
	if err != nil {
		return response.InternalServerError(c, "Failed to read file")
	}
	if !result.Valid {
		return response.BadRequest(c, result.Error)
	}

	key := storage.GenerateKey("resumes/"+strconv.FormatUint(uint64(profile.ID), 10), file.Filename, h.now())
	url, err := h.store.UploadBytes(c.UserContext(), key, result.Content, "application/pdf")
	if err != nil {
		log.Printf("Failed to upload resume: %v", err)
		return response.InternalServerError(c, "Failed to upload resume")
	}

	old := fiber.Map{"resume_url": profile.ResumeURL, "resume_pages": profile.ResumePages}
	if err := h.db.WithContext(c.UserContext()).Model(&profile).Updates(map[string]interface{}{
		"resume_url":   url,
		"resume_pages": result.PageCount,
	}).Error; err != nil {
		return response.InternalServerError(c, "Failed to update profile")
	}
	profile.ResumeURL = url
	profile.ResumePages = result.PageCount

	h.audit(c, "profiles", profile.ID, old, fiber.Map{"resume_url": url, "resume_pages": result.PageCount})

	return response.Success(c, profile)
}

// load fetches the row named by :id into dst. When it reports false the
// error response has been written and err is what fiber should get back.
func (h *UploadHandler) load(c *fiber.Ctx, dst interface{}) (bool, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return false, response.BadRequest(c, "Invalid ID")
	}
	if err := h.db.WithContext(c.UserContext()).First(dst, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, response.NotFound(c, "Record not found")
		}
		return false, response.InternalServerError(c, "Failed to fetch record")
	}
	return true, nil
}

func (h *UploadHandler) audit(c *fiber.Ctx, resource string, id uint, old, updated interface{}) {
	entry := middleware.AuditEntry{
		Action:     middleware.AuditUpload,
		Resource:   resource,
		ResourceID: id,
		OldValue:   old,
		NewValue:   updated,
	}
	if err := middleware.RecordAudit(h.db, c, entry); err != nil {
		logAuditFailure(entry, err)
	}
}
