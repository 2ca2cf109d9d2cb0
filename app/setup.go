package app

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/sahilchouksey/pixel-portfolio/api"
	"github.com/sahilchouksey/pixel-portfolio/config"
	"github.com/sahilchouksey/pixel-portfolio/database"
	"github.com/sahilchouksey/pixel-portfolio/router"
	"github.com/sahilchouksey/pixel-portfolio/services/cron"
)

func SetupAndRunServer() error {

	// Load ENV
	if err := config.LoadENV(); err != nil {
		return err
	}

	getEnv, err := config.Get()
	if err != nil {
		return err
	}

	// Initialize GORM database connection
	store, err := database.StartGORM(getEnv)
	if err != nil {
		print("Check whether the database is reachable\n")
		print("For PostgreSQL set DB_DRIVER=postgres and the DB_* variables,\n")
		print("or use the default DB_DRIVER=sqlite with SQLITE_PATH\n")
		return err
	}

	if err := store.Init(); err != nil {
		print("Failed to initialize database tables\n")
		print("Error running migrations:\n")
		return err
	}

	// Initialize Cron Manager (only if enabled via environment variable)
	var cronManager *cron.CronManager
	if getEnv.CRON_ENABLED {
		cronManager = cron.NewCronManager(store, cron.Options{
			RecycleRetentionDays: getEnv.RECYCLE_RETENTION_DAYS,
		})
		if err := cronManager.Start(); err != nil {
			print("Warning: Failed to start cron jobs\n")
			print("Error: ", err.Error(), "\n")
			// Don't fail the app, just log the warning
			cronManager = nil
		}
	}

	// Defer Closing DB and stopping cron jobs
	defer func() {
		if cronManager != nil {
			cronManager.Stop()
		}
		store.Close()
	}()

	// Init API
	var server *api.APIServer = api.NewAPIServer(fmt.Sprintf(":%d", getEnv.PORT))
	app := server.GetEngine()

	// Setup security middleware and routes
	router.SetupRoutes(app, store, getEnv)

	// Shut down cleanly so cron jobs finish and the store is closed
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-quit
		log.Println("Shutting down server...")
		if err := server.Shutdown(); err != nil {
			log.Printf("Server shutdown failed: %v", err)
		}
	}()

	// Get the PORT & Start the Server
	return server.Run()

}
