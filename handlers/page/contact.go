package page

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/pixel-portfolio/model"
	"github.com/sahilchouksey/pixel-portfolio/utils/validation"
)

// ContactForm is the contact page form
type ContactForm struct {
	Name    string `form:"name" json:"name" validate:"required,max=100"`
	Email   string `form:"email" json:"email" validate:"required,email,max=254"`
	Subject string `form:"subject" json:"subject" validate:"max=200"`
	Message string `form:"message" json:"message" validate:"required,max=5000"`
}

func (f *ContactForm) sanitize() {
	f.Name = validation.StripTags(f.Name)
	f.Email = validation.SanitizeString(f.Email)
	f.Subject = validation.StripTags(f.Subject)
	f.Message = validation.StripTags(f.Message)
}

// Contact handles GET /contact
func (h *PageHandler) Contact(c *fiber.Ctx) error {
	return h.renderContact(c, fiber.StatusOK, ContactForm{}, map[string]string{})
}

// SubmitContact handles POST /contact. A valid form is stored and the
// browser is redirected so a refresh does not resubmit it.
func (h *PageHandler) SubmitContact(c *fiber.Ctx) error {
	var form ContactForm
	if err := c.BodyParser(&form); err != nil {
		return h.renderContact(c, fiber.StatusBadRequest, form, map[string]string{
			"message": "Could not read the form, please try again",
		})
	}
	form.sanitize()

	if err := h.validator.ValidateStruct(form); err != nil {
		return h.renderContact(c, fiber.StatusOK, form, validation.FormatValidationErrors(err))
	}

	msg := model.ContactMessage{
		Name:    form.Name,
		Email:   form.Email,
		Subject: form.Subject,
		Message: form.Message,
	}
	if err := h.db.WithContext(c.UserContext()).Create(&msg).Error; err != nil {
		log.Printf("Failed to save contact message: %v", err)
		return err
	}

	return c.Redirect("/contact/?sent=1", fiber.StatusSeeOther)
}

func (h *PageHandler) renderContact(c *fiber.Ctx, status int, form ContactForm, errs map[string]string) error {
	return c.Status(status).Render("pages/contact", fiber.Map{
		"Title":  "Contact",
		"Sent":   c.Query("sent") == "1",
		"Form":   form,
		"Errors": errs,
	}, Layout)
}
