package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/sahilchouksey/pixel-portfolio/config"
	"github.com/sahilchouksey/pixel-portfolio/database"
)

func main() {
	if err := run(); err != nil {
		log.Printf("[OPTIMIZE] %v", err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.LoadENV(); err != nil {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	env, err := config.Get()
	if err != nil {
		return fmt.Errorf("failed to read configuration: %w", err)
	}

	store, err := database.StartGORM(env)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer store.Close()

	report, err := database.NewOptimizer(store).Run(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("Indexes ensured: %d\n", report.IndexesEnsured)
	fmt.Printf("Tables analyzed: %d\n", report.TablesAnalyzed)
	if report.SizeBytes > 0 {
		fmt.Printf("Database size:   %.2f MB\n", float64(report.SizeBytes)/(1024*1024))
	}
	return nil
}
