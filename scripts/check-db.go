package main

import (
	"fmt"
	"log"
	"os"

	"car_rental/internal/config"
	"car_rental/internal/database"
	"car_rental/internal/migrations"
)

func main() {
	fmt.Println("Checking database schema...")

	missing, err := check(config.Load())
	if err != nil {
		log.Fatal(err)
	}
	if len(missing) > 0 {
		fmt.Println("Missing objects:")
		for _, name := range missing {
			fmt.Println("  -", name)
		}
		os.Exit(1)
	}

	fmt.Println("Database schema is complete.")
}

func check(cfg *config.Config) ([]string, error) {
	db, err := database.Initialize(cfg.ORMDatabaseURL, cfg.GormLogLevel)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Printf("Warning: Failed to close database: %v", err)
		}
	}()

	missing, err := migrations.VerifySchema(db)
	if err != nil {
		return nil, fmt.Errorf("failed to verify schema: %w", err)
	}
	return missing, nil
}
