package admin

import (
	"context"

	"github.com/sahilchouksey/pixel-portfolio/model"
	"gorm.io/gorm"
)

// NewPortfolioRegistry registers every table the operator can manage.
// onThemeChange runs after any theme mutation and may be nil.
func NewPortfolioRegistry(db *gorm.DB, onThemeChange func(ctx context.Context)) *Registry {
	return NewRegistry(
		// Desktop widgets
		NewTable[model.Theme](db, TableConfig{
			Name:     "themes",
			Search:   []string{"key", "name"},
			Filters:  []string{"is_default"},
			Order:    "name asc",
			OnChange: onThemeChange,
		}),
		NewTable[model.UserPreference](db, TableConfig{
			Name:     "preferences",
			Order:    "id asc",
			NoCreate: true,
			NoDelete: true,
		}),
		NewTable[model.RunHistory](db, TableConfig{
			Name:   "run-history",
			Search: []string{"command"},
			Order:  "created_at desc, id desc",
		}),
		NewTable[model.DesktopItem](db, TableConfig{
			Name:    "desktop-items",
			Search:  []string{"label"},
			Filters: []string{"item_type"},
			Order:   "id asc",
		}),
		NewTable[model.Note](db, TableConfig{
			Name:    "notes",
			Search:  []string{"title", "content"},
			Filters: []string{"is_deleted"},
			Order:   "updated_at desc, id desc",
		}),

		// Showcase content
		NewTable[model.Project](db, TableConfig{
			Name:    "projects",
			Search:  []string{"title", "description", "objective"},
			Filters: []string{"status"},
			Order:   "created_date desc, id desc",
		}),
		NewTable[model.Education](db, TableConfig{
			Name:   "education",
			Search: []string{"degree", "institution"},
			Order:  "start_year desc",
		}),
		NewTable[model.Skill](db, TableConfig{
			Name:    "skills",
			Search:  []string{"name"},
			Filters: []string{"category"},
			Order:   "category asc, proficiency desc",
		}),
		NewTable[model.Profile](db, TableConfig{
			Name:   "profiles",
			Search: []string{"name", "title"},
			Order:  "id asc",
		}),
		NewTable[model.SocialLink](db, TableConfig{
			Name:    "social-links",
			Search:  []string{"name", "url"},
			Filters: []string{"is_visible"},
			Order:   "sort_order asc, id asc",
		}),
		NewTable[model.ContactMessage](db, TableConfig{
			Name:    "contact-messages",
			Search:  []string{"name", "email", "subject", "message"},
			Filters: []string{"is_read"},
			Order:   "created_at desc, id desc",
		}),

		// Scheduled job history, written by the cron manager
		NewTable[model.CronJobLog](db, TableConfig{
			Name:     "cron-logs",
			Search:   []string{"message", "error_msg"},
			Filters:  []string{"job_name", "status"},
			Order:    "started_at desc, id desc",
			NoCreate: true,
			NoUpdate: true,
			NoDelete: true,
		}),
	)
}
