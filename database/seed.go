package database

import (
	"context"
	"fmt"
	"log"

	"github.com/sahilchouksey/pixel-portfolio/model"
	"github.com/sahilchouksey/pixel-portfolio/utils/auth"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DefaultAdminPassword is used when ADMIN_PASSWORD is not set.
const DefaultAdminPassword = "admin123"

// AdminCredentials describes the operator account created on first seed
type AdminCredentials struct {
	Username string
	Email    string
	Password string
}

// Seeder handles database seeding operations
type Seeder struct {
	db    *gorm.DB
	admin AdminCredentials
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB, admin AdminCredentials) *Seeder {
	return &Seeder{db: db, admin: admin}
}

// SeedAll runs all seed functions. Every step checks for existing rows
// first, so running it again creates nothing.
func (s *Seeder) SeedAll() error {
	log.Println("[SEED] Initializing Pixel Portfolio database...")

	steps := []struct {
		name string
		fn   func() error
	}{
		{"projects", s.SeedProjects},
		{"education", s.SeedEducation},
		{"skills", s.SeedSkills},
		{"profile", s.SeedProfile},
		{"social links", s.SeedSocialLinks},
		{"admin user", s.SeedAdminUser},
		{"themes", s.SeedThemes},
		{"preferences", s.SeedPreferences},
	}

	for _, step := range steps {
		if err := step.fn(); err != nil {
			log.Printf("[SEED] Error initializing database: %v", err)
			return fmt.Errorf("failed to seed %s: %w", step.name, err)
		}
	}

	log.Println("[SEED] Database initialization completed successfully!")
	return nil
}

// isEmpty reports whether the table behind m has no rows.
func (s *Seeder) isEmpty(m interface{}) (bool, error) {
	var count int64
	if err := s.db.Model(m).Count(&count).Error; err != nil {
		return false, err
	}
	return count == 0, nil
}

// SeedProjects creates the sample quest log
func (s *Seeder) SeedProjects() error {
	empty, err := s.isEmpty(&model.Project{})
	if err != nil || !empty {
		if err == nil {
			log.Println("[SEED] Projects already exist, skipping...")
		}
		return err
	}

	projects := []model.Project{
		{
			Title:       "Alibaug Tourism & Ferry Website",
			Objective:   "Create a comprehensive tourism platform for Alibaug featuring ferry booking system, tourist attractions, and local business listings to boost tourism in the region.",
			Description: "A comprehensive tourism platform designed to boost tourism in Alibaug region. Features include ferry booking system, tourist attraction guides, local business listings, and an intuitive user interface for both tourists and local businesses.",
			Status:      model.ProjectCompleted,
			Reward:      "Full-Stack Development • Database Design • User Authentication • Payment Integration",
			GithubLink:  "https://github.com/example/alibaug-tourism",
			LiveDemo:    "https://alibaug-tourism.example.com",
		},
		{
			Title:       "Pixel Portfolio Website",
			Objective:   "Design and develop a pixel-themed personal portfolio website with game-like interface.",
			Description: "A fully interactive portfolio website with Windows 95-style interface, live wallpapers, and retro aesthetics.",
			Status:      model.ProjectCompleted,
			Reward:      "Creative Design • Responsive Layout • Retro UI Design",
			GithubLink:  "https://github.com/example/pixel-portfolio",
			LiveDemo:    "https://pixel-portfolio.example.com",
		},
		{
			Title:       "Student Management System",
			Objective:   "Develop a comprehensive system for managing student records, grades, and attendance.",
			Description: "A comprehensive system for managing student records, grades, and attendance with role-based access control.",
			Status:      model.ProjectInProgress,
			Reward:      "Database Management • CRUD Operations • User Roles",
			GithubLink:  "https://github.com/example/student-management",
		},
		{
			Title:       "Retro Game Collection",
			Objective:   "Build a collection of classic arcade games",
			Description: "A web-based collection of retro games including Snake, Tetris, and Pong with authentic 8-bit graphics.",
			Status:      model.ProjectPlanned,
			Reward:      "Game Development • Canvas API • Sound Design",
			GithubLink:  "https://github.com/example/retro-games",
		},
	}

	if err := s.db.Create(&projects).Error; err != nil {
		return err
	}

	log.Printf("[SEED] Created %d projects\n", len(projects))
	return nil
}

// SeedEducation creates the sample education entries
func (s *Seeder) SeedEducation() error {
	empty, err := s.isEmpty(&model.Education{})
	if err != nil || !empty {
		if err == nil {
			log.Println("[SEED] Education already exists, skipping...")
		}
		return err
	}

	education := []model.Education{
		{
			Degree:      "Bachelor of Computer Applications",
			Institution: "University of Mumbai",
			StartYear:   2021,
			EndYear:     2024,
			Percentage:  85.0,
			Description: "Completed comprehensive study in computer science fundamentals, programming languages, database management, and software development methodologies.",
		},
		{
			Degree:      "Higher Secondary Education",
			Institution: "Maharashtra State Board",
			StartYear:   2019,
			EndYear:     2021,
			Percentage:  78.0,
			Description: "Focused on Science stream with Mathematics and Computer Science, laying the foundation for programming and logical thinking.",
		},
	}

	if err := s.db.Create(&education).Error; err != nil {
		return err
	}

	log.Printf("[SEED] Created %d education entries\n", len(education))
	return nil
}

// SeedSkills creates the sample skill bars
func (s *Seeder) SeedSkills() error {
	empty, err := s.isEmpty(&model.Skill{})
	if err != nil || !empty {
		if err == nil {
			log.Println("[SEED] Skills already exist, skipping...")
		}
		return err
	}

	skills := []model.Skill{
		{Name: "Go", Category: model.SkillProgramming, Proficiency: 85, Icon: "🐹"},
		{Name: "Python", Category: model.SkillProgramming, Proficiency: 85, Icon: "🐍"},
		{Name: "JavaScript", Category: model.SkillProgramming, Proficiency: 80, Icon: "⚡"},
		{Name: "C++", Category: model.SkillProgramming, Proficiency: 70, Icon: "⚙️"},
		{Name: "HTML/CSS", Category: model.SkillWeb, Proficiency: 90, Icon: "🌐"},
		{Name: "React", Category: model.SkillWeb, Proficiency: 70, Icon: "⚛️"},
		{Name: "Bootstrap", Category: model.SkillWeb, Proficiency: 85, Icon: "🎨"},
		{Name: "MySQL", Category: model.SkillDatabase, Proficiency: 80, Icon: "🗄️"},
		{Name: "PostgreSQL", Category: model.SkillDatabase, Proficiency: 75, Icon: "🐘"},
		{Name: "Git/GitHub", Category: model.SkillTools, Proficiency: 85, Icon: "📚"},
		{Name: "VS Code", Category: model.SkillTools, Proficiency: 95, Icon: "💻"},
	}

	if err := s.db.Create(&skills).Error; err != nil {
		return err
	}

	log.Printf("[SEED] Created %d skills\n", len(skills))
	return nil
}

// SeedProfile creates the owner card
func (s *Seeder) SeedProfile() error {
	empty, err := s.isEmpty(&model.Profile{})
	if err != nil || !empty {
		return err
	}

	profile := model.Profile{
		Name:     "Player One",
		Title:    "Full-Stack Developer",
		Bio:      "Builder of retro-flavoured web things. Press START to explore my quests.",
		Location: "Mumbai, India",
		Email:    s.admin.Email,
	}
	if err := s.db.Create(&profile).Error; err != nil {
		return err
	}

	log.Println("[SEED] Created profile")
	return nil
}

// SeedSocialLinks creates the default footer links
func (s *Seeder) SeedSocialLinks() error {
	empty, err := s.isEmpty(&model.SocialLink{})
	if err != nil || !empty {
		return err
	}

	links := []model.SocialLink{
		{Name: "GitHub", URL: "https://github.com/yourusername", Icon: "🐙", Order: 1, IsVisible: true},
		{Name: "LinkedIn", URL: "https://www.linkedin.com/in/yourusername", Icon: "💼", Order: 2, IsVisible: true},
		{Name: "Twitter", URL: "https://twitter.com/yourusername", Icon: "🐦", Order: 3, IsVisible: false},
	}
	if err := s.db.Create(&links).Error; err != nil {
		return err
	}

	log.Printf("[SEED] Created %d social links\n", len(links))
	return nil
}

// SeedAdminUser creates the operator account if no superuser exists
func (s *Seeder) SeedAdminUser() error {
	var count int64
	if err := s.db.Model(&model.User{}).Where("is_superuser = ?", true).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("[SEED] Admin user already exists, skipping...")
		return nil
	}

	password := s.admin.Password
	if password == "" {
		password = DefaultAdminPassword
		log.Printf("[SEED] ADMIN_PASSWORD not set, using the default password for %q. Change it!", s.admin.Username)
	}

	passwordHash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &model.User{
		Username:     s.admin.Username,
		Email:        s.admin.Email,
		PasswordHash: passwordHash,
		IsSuperuser:  true,
	}
	if err := s.db.Create(admin).Error; err != nil {
		return err
	}

	log.Printf("[SEED] Created admin user: %s\n", admin.Username)
	return nil
}

// ThemePresets returns the four built-in themes. retro-98 is the default.
func ThemePresets() []model.Theme {
	return []model.Theme{
		{
			Key:       "retro-98",
			Name:      "Retro 98",
			IsDefault: true,
			Variables: datatypes.JSONMap{
				"--retro-bg":        "#0a0a0a",
				"--retro-desktop":   "#000080",
				"--retro-taskbar":   "#c0c0c0",
				"--retro-window":    "#c0c0c0",
				"--retro-border":    "#808080",
				"--retro-text":      "#000000",
				"--retro-highlight": "#ffffff",
				"--retro-shadow":    "#404040",
				"--retro-info":      "#0080ff",
			},
		},
		{
			Key:  "retro-amber",
			Name: "Retro Amber CRT",
			Variables: datatypes.JSONMap{
				"--retro-bg":        "#000000",
				"--retro-desktop":   "#1a1200",
				"--retro-taskbar":   "#4a3b00",
				"--retro-window":    "#2a2100",
				"--retro-border":    "#6b5200",
				"--retro-text":      "#ffbf00",
				"--retro-highlight": "#ffc933",
				"--retro-shadow":    "#332600",
				"--retro-info":      "#ffbf00",
			},
		},
		{
			Key:  "modern-mint",
			Name: "Modern Mint",
			Variables: datatypes.JSONMap{
				"--retro-bg":        "#0d1117",
				"--retro-desktop":   "#0b3d3d",
				"--retro-taskbar":   "#1f6f6f",
				"--retro-window":    "#163a3a",
				"--retro-border":    "#2aa198",
				"--retro-text":      "#e6fffb",
				"--retro-highlight": "#c2fff6",
				"--retro-shadow":    "#0a2a2a",
				"--retro-info":      "#2ec4b6",
			},
		},
		{
			Key:  "modern-neon",
			Name: "Modern Neon",
			Variables: datatypes.JSONMap{
				"--retro-bg":        "#0b0f1a",
				"--retro-desktop":   "#0f172a",
				"--retro-taskbar":   "#111827",
				"--retro-window":    "#111827",
				"--retro-border":    "#374151",
				"--retro-text":      "#e5e7eb",
				"--retro-highlight": "#93c5fd",
				"--retro-shadow":    "#0b1020",
				"--retro-info":      "#60a5fa",
			},
		},
	}
}

// SeedThemes creates the theme presets when no theme exists yet
func (s *Seeder) SeedThemes() error {
	empty, err := s.isEmpty(&model.Theme{})
	if err != nil || !empty {
		if err == nil {
			log.Println("[SEED] Themes already exist, skipping...")
		}
		return err
	}

	themes := ThemePresets()
	if err := s.db.Create(&themes).Error; err != nil {
		return err
	}

	log.Printf("[SEED] Seeded %d themes\n", len(themes))
	return nil
}

// SeedPreferences makes sure the singleton preference row exists
func (s *Seeder) SeedPreferences() error {
	_, err := GetOrCreatePreferences(context.Background(), s.db)
	return err
}

// RunSeeds is the entry point used by cmd/seed
func RunSeeds(db *gorm.DB, admin AdminCredentials) error {
	seeder := NewSeeder(db, admin)
	return seeder.SeedAll()
}
