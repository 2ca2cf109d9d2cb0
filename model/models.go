package model

// All returns every table managed by AutoMigrate, in dependency order.
func All() []interface{} {
	return []interface{}{
		// Desktop widgets
		&Theme{},
		&UserPreference{},
		&RunHistory{},
		&DesktopItem{},
		&Note{},

		// Showcase content
		&Profile{},
		&SocialLink{},
		&Skill{},
		&Education{},
		&Project{},
		&ContactMessage{},

		// Admin console
		&User{},
		&JWTTokenBlacklist{},
		&AdminAuditLog{},

		// Scheduled jobs
		&CronJobLog{},
	}
}
