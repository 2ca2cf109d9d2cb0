package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/sahilchouksey/pixel-portfolio/config"
	"github.com/sahilchouksey/pixel-portfolio/database"
)

func main() {
	// Load environment variables
	if err := config.LoadENV(); err != nil {
		log.Fatalf("Failed to load .env: %v", err)
	}

	env, err := config.Get()
	if err != nil {
		log.Fatalf("Failed to read configuration: %v", err)
	}

	// Initialize database connection using GORM
	store, err := database.StartGORM(env)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer store.Close()

	if err := store.Init(); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Run seeds
	separator := strings.Repeat("=", 60)
	fmt.Println(separator)
	fmt.Println("Pixel Portfolio - Database Seeding")
	fmt.Println(separator)
	fmt.Println()

	admin := database.AdminCredentials{
		Username: env.ADMIN_USERNAME,
		Email:    env.ADMIN_EMAIL,
		Password: env.ADMIN_PASSWORD,
	}
	if err := database.RunSeeds(store.GetDB(), admin); err != nil {
		store.Close()
		log.Fatalf("Seeding failed: %v", err)
	}

	fmt.Println()
	fmt.Println(separator)
	fmt.Println("Seeding completed successfully!")
	fmt.Println(separator)
	fmt.Println()
	if env.ADMIN_PASSWORD == "" {
		fmt.Printf("Admin user %q uses the default password %q. Set ADMIN_PASSWORD and change it.\n",
			env.ADMIN_USERNAME, database.DefaultAdminPassword)
	}
}
