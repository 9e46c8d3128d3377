package main

import (
	"fmt"
	"log"

	"github.com/hydrolog/hydration-tracker/internal/config"
	"github.com/hydrolog/hydration-tracker/internal/seed"
	"gorm.io/gorm"
)

func main() {
	cfg := config.Load()

	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Run(db); err != nil {
		log.Fatalf("Seed failed: %v", err)
	}

	fmt.Println("\nSample user IDs for testing:")
	var users []struct {
		ID       string
		Timezone string
	}
	if err := db.Table("users").Select("id", "timezone").Order("created_at").Find(&users).Error; err != nil && err != gorm.ErrRecordNotFound {
		log.Fatalf("Failed to list users: %v", err)
	}
	for _, user := range users {
		fmt.Printf("  %s (%s)\n", user.ID, user.Timezone)
	}
}
