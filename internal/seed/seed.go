package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/hydrolog/hydration-tracker/internal/domain"
	"gorm.io/gorm"
)

const seededDays = 40

// Run seeds the database with sample users, drink events and sleep
// summaries. Safe to call multiple times.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.User{}, &domain.DrinkEvent{}, &domain.SleepSummary{}, &domain.AnalysisSnapshot{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	users := []domain.User{
		{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), Timezone: "Europe/Amsterdam", DailyTargetMl: 2000},
		{ID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), Timezone: "America/New_York", DailyTargetMl: 2500},
		{ID: uuid.MustParse("33333333-3333-3333-3333-333333333333"), Timezone: "Asia/Tokyo", DailyTargetMl: 2000},
		{ID: uuid.MustParse("44444444-4444-4444-4444-444444444444"), Timezone: "Australia/Sydney", DailyTargetMl: 3000},
	}

	for _, user := range users {
		if err := db.Where("id = ?", user.ID).FirstOrCreate(&user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", user.ID, err)
		}
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for _, user := range users {
		if err := seedDrinksForUser(db, user, rng); err != nil {
			return err
		}
		if err := seedSleepForUser(db, user, rng); err != nil {
			return err
		}
	}

	log.Println("Seed completed")
	return nil
}

// daytimeVariants skews toward hydrating drinks; evening rolls occasionally
// land on alcohol so the risk model has something to flag.
var daytimeVariants = []domain.DrinkVariant{
	domain.DrinkWater, domain.DrinkWater, domain.DrinkWater,
	domain.DrinkTea, domain.DrinkCoffee, domain.DrinkJuice, domain.DrinkSoda,
}

var eveningVariants = []domain.DrinkVariant{
	domain.DrinkWater, domain.DrinkWater, domain.DrinkTea,
	domain.DrinkBeer, domain.DrinkWine,
}

func seedDrinksForUser(db *gorm.DB, user domain.User, rng *rand.Rand) error {
	now := time.Now().UTC()
	for i := 0; i < seededDays; i++ {
		date := now.AddDate(0, 0, -i)

		drinks := 4 + rng.Intn(4)
		for j := 0; j < drinks; j++ {
			hour := 7 + rng.Intn(12)
			variant := daytimeVariants[rng.Intn(len(daytimeVariants))]
			if hour >= 19 {
				variant = eveningVariants[rng.Intn(len(eveningVariants))]
			}
			occurredAt := time.Date(date.Year(), date.Month(), date.Day(), hour, rng.Intn(60), 0, 0, time.UTC)

			clientReqID := fmt.Sprintf("seed-drink-%s-%d-%d", user.ID, i, j)
			event := domain.DrinkEvent{
				UserID:          user.ID,
				VolumeMl:        float64(150 + rng.Intn(7)*50),
				Variant:         variant,
				OccurredAt:      occurredAt,
				ClientRequestID: &clientReqID,
			}

			if err := db.Where("client_request_id = ?", clientReqID).FirstOrCreate(&event).Error; err != nil {
				return fmt.Errorf("failed to create drink event: %w", err)
			}
		}
	}
	return nil
}

func seedSleepForUser(db *gorm.DB, user domain.User, rng *rand.Rand) error {
	now := time.Now().UTC()
	for i := 1; i <= seededDays; i++ {
		date := now.AddDate(0, 0, -i)
		day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

		bedtime := day.Add(time.Duration(21+rng.Intn(3))*time.Hour + time.Duration(rng.Intn(60))*time.Minute)
		waketime := bedtime.Add(time.Duration(6+rng.Intn(3)) * time.Hour)

		summary := domain.SleepSummary{
			ID:               uuid.New(),
			UserID:           user.ID,
			Day:              day,
			DurationHours:    waketime.Sub(bedtime).Hours(),
			QualityScore:     0.5 + rng.Float64()*0.5,
			BedTime:          bedtime,
			WakeTime:         waketime,
			DeepSleepMinutes: 60 + rng.Intn(60),
			RemSleepMinutes:  80 + rng.Intn(60),
			ActualDate:       day,
		}

		if err := db.Where("user_id = ? AND day = ?", user.ID, day).FirstOrCreate(&summary).Error; err != nil {
			return fmt.Errorf("failed to create sleep summary: %w", err)
		}
	}
	return nil
}
