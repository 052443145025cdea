package main

import (
	"flag"
	"frescoguard/cmd/config"
	migration "frescoguard/cmd/database/migrate"
	"frescoguard/internal/utils"
	"time"

	"github.com/gofiber/fiber/v2/log"
)

func main() {
	migrate := flag.Bool("migrate", false, "run database migrations before serving")
	flag.Parse()

	utils.LoadConfig()
	if err := utils.ValidateConfig(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	// expiry math runs on calendar days in the app's timezone
	location, err := time.LoadLocation(utils.GetConfig("APP_TIMEZONE"))
	if err != nil {
		log.Fatalf("invalid APP_TIMEZONE: %v", err)
	}
	time.Local = location

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("error connecting database: %v", err)
	}

	if *migrate {
		if err := migration.Migrate(db); err != nil {
			log.Fatalf("error migrating database: %v", err)
		}
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("error creating app: %v", err)
	}

	if err := app.Listen(":" + utils.GetConfig("PORT")); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
