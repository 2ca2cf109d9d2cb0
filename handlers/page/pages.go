package page

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/pixel-portfolio/database"
	"github.com/sahilchouksey/pixel-portfolio/model"
	"github.com/sahilchouksey/pixel-portfolio/utils/validation"
	"gorm.io/gorm"
)

// Layout wraps every page
const Layout = "layouts/main"

// PageHandler renders the server side pages
type PageHandler struct {
	db        *gorm.DB
	validator *validation.Validator
}

// NewPageHandler creates a new page handler
func NewPageHandler(db *gorm.DB) *PageHandler {
	return &PageHandler{
		db:        db,
		validator: validation.NewValidator(),
	}
}

// SkillGroup is one heading of the skills table on the about page
type SkillGroup struct {
	Category string
	Label    string
	Skills   []model.Skill
}

var calculatorKeys = []string{"7", "8", "9", "/", "4", "5", "6", "*", "1", "2", "3", "-", "0", ".", "=", "+", "C"}

// Home handles GET /
func (h *PageHandler) Home(c *fiber.Ctx) error {
	profile, err := h.firstProfile(c)
	if err != nil {
		return err
	}
	links, err := h.visibleSocialLinks(c)
	if err != nil {
		return err
	}

	return c.Render("pages/home", fiber.Map{
		"Profile":     profile,
		"SocialLinks": links,
	}, Layout)
}

// Older handles GET /older
func (h *PageHandler) Older(c *fiber.Ctx) error {
	return c.Render("pages/older", fiber.Map{"Title": "Older"}, Layout)
}

// About handles GET /about
func (h *PageHandler) About(c *fiber.Ctx) error {
	db := h.db.WithContext(c.UserContext())

	var skills []model.Skill
	if err := db.Order("category ASC").Order("name ASC").Find(&skills).Error; err != nil {
		return err
	}

	var education []model.Education
	if err := db.Order("end_year DESC").Order("id ASC").Find(&education).Error; err != nil {
		return err
	}

	profile, err := h.firstProfile(c)
	if err != nil {
		return err
	}
	links, err := h.visibleSocialLinks(c)
	if err != nil {
		return err
	}

	return c.Render("pages/about", fiber.Map{
		"Title":       "About",
		"Profile":     profile,
		"Skills":      skills,
		"SkillGroups": groupSkills(skills),
		"Education":   education,
		"SocialLinks": links,
	}, Layout)
}

// Calculator handles GET /calculator
func (h *PageHandler) Calculator(c *fiber.Ctx) error {
	return c.Render("pages/calculator", fiber.Map{
		"Title": "Calculator",
		"Keys":  calculatorKeys,
	}, Layout)
}

// Notepad handles GET /notepad
func (h *PageHandler) Notepad(c *fiber.Ctx) error {
	var notes []model.Note
	if err := h.db.WithContext(c.UserContext()).
		Where("is_deleted = ?", false).
		Order("updated_at DESC").
		Find(&notes).Error; err != nil {
		return err
	}

	return c.Render("pages/notepad", fiber.Map{
		"Title": "Notepad",
		"Notes": notes,
	}, Layout)
}

// RecycleBin handles GET /recycle
func (h *PageHandler) RecycleBin(c *fiber.Ctx) error {
	var notes []model.Note
	if err := h.db.WithContext(c.UserContext()).
		Where("is_deleted = ?", true).
		Order("deleted_on DESC").
		Find(&notes).Error; err != nil {
		return err
	}

	return c.Render("pages/recycle", fiber.Map{
		"Title": "Recycle Bin",
		"Notes": notes,
	}, Layout)
}

// MyComputer handles GET /mycomputer
func (h *PageHandler) MyComputer(c *fiber.Ctx) error {
	db := h.db.WithContext(c.UserContext())

	var items []model.DesktopItem
	if err := db.Order("id ASC").Find(&items).Error; err != nil {
		return err
	}

	var projectCount int64
	if err := db.Model(&model.Project{}).Count(&projectCount).Error; err != nil {
		return err
	}

	prefs, err := database.GetOrCreatePreferences(c.UserContext(), h.db)
	if err != nil {
		return err
	}

	return c.Render("pages/mycomputer", fiber.Map{
		"Title":        "My Computer",
		"Items":        items,
		"ProjectCount": projectCount,
		"Preferences":  prefs,
	}, Layout)
}

// Projects handles GET /projects
func (h *PageHandler) Projects(c *fiber.Ctx) error {
	var projects []model.Project
	if err := h.db.WithContext(c.UserContext()).
		Order("created_date DESC").
		Order("id DESC").
		Find(&projects).Error; err != nil {
		return err
	}

	return c.Render("pages/projects", fiber.Map{
		"Title":    "Projects",
		"Projects": projects,
	}, Layout)
}

// ProjectDetail handles GET /project/:id
func (h *PageHandler) ProjectDetail(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || id == 0 {
		return h.NotFound(c)
	}

	var project model.Project
	if err := h.db.WithContext(c.UserContext()).First(&project, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return h.NotFound(c)
		}
		return err
	}

	return c.Render("pages/project_detail", fiber.Map{
		"Title":   project.Title,
		"Project": project,
	}, Layout)
}

// NotFound renders the 404 page
func (h *PageHandler) NotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).Render("pages/not_found", fiber.Map{
		"Title": "Not Found",
	}, Layout)
}

func (h *PageHandler) firstProfile(c *fiber.Ctx) (*model.Profile, error) {
	var profiles []model.Profile
	if err := h.db.WithContext(c.UserContext()).Order("id ASC").Limit(1).Find(&profiles).Error; err != nil {
		return nil, err
	}
	if len(profiles) == 0 {
		return nil, nil
	}
	return &profiles[0], nil
}

func (h *PageHandler) visibleSocialLinks(c *fiber.Ctx) ([]model.SocialLink, error) {
	var links []model.SocialLink
	err := h.db.WithContext(c.UserContext()).
		Where("is_visible = ?", true).
		Order("sort_order ASC").
		Order("name ASC").
		Find(&links).Error
	return links, err
}

// groupSkills splits skills, already sorted by category, into headings
func groupSkills(skills []model.Skill) []SkillGroup {
	var groups []SkillGroup
	for _, s := range skills {
		if n := len(groups); n == 0 || groups[n-1].Category != s.Category {
			groups = append(groups, SkillGroup{Category: s.Category, Label: s.CategoryLabel()})
		}
		groups[len(groups)-1].Skills = append(groups[len(groups)-1].Skills, s)
	}
	return groups
}
