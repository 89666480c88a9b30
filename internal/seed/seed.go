package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/restwell/restwell-api/internal/domain"
	"github.com/restwell/restwell-api/pkg/clock"
	"gorm.io/gorm"
)

const seededDays = 40

// Run seeds the database with sample sleep records and caffeine
// entries. Safe to call multiple times.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.SleepRecord{}, &domain.CaffeineEntry{}, &domain.Settings{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	if err := seedSleepRecords(db, rng); err != nil {
		return err
	}
	if err := seedCaffeineEntries(db, rng); err != nil {
		return err
	}

	log.Println("Seed completed")
	return nil
}

func seedSleepRecords(db *gorm.DB, rng *rand.Rand) error {
	now := time.Now().UTC()
	for i := 0; i < seededDays; i++ {
		date := now.AddDate(0, 0, -i).Format(domain.DateLayout)

		bedtime := clock.Time{Hour: 22 + rng.Intn(2), Minute: rng.Intn(60)}
		wake := bedtime.Add(360 + rng.Intn(180))

		record := domain.SleepRecord{
			Date:     date,
			Bedtime:  bedtime.String(),
			WakeTime: wake.String(),
			Hours:    clock.ElapsedHours(bedtime, wake),
		}

		if err := db.Where("date = ?", date).FirstOrCreate(&record).Error; err != nil {
			return fmt.Errorf("failed to create sleep record for %s: %w", date, err)
		}
	}
	return nil
}

func seedCaffeineEntries(db *gorm.DB, rng *rand.Rand) error {
	var count int64
	if err := db.Model(&domain.CaffeineEntry{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count caffeine entries: %w", err)
	}
	if count > 0 {
		return nil
	}

	doses := []struct {
		amount   float64
		category domain.CaffeineCategory
		label    string
	}{
		{95, domain.CaffeineCoffee, "Flat white"},
		{63, domain.CaffeineEspresso, "Double espresso"},
		{47, domain.CaffeineTea, "Black tea"},
		{80, domain.CaffeineEnergyDrink, "Energy drink"},
	}

	now := time.Now().UTC()
	for i := 0; i < 7; i++ {
		day := now.AddDate(0, 0, -i)
		// One or two doses per day, morning and sometimes afternoon
		morning := doses[rng.Intn(len(doses))]
		takenAt := time.Date(day.Year(), day.Month(), day.Day(), 7+rng.Intn(3), rng.Intn(60), 0, 0, time.UTC)
		entry := domain.CaffeineEntry{
			TakenAt:  takenAt,
			AmountMg: morning.amount,
			Category: morning.category,
			Label:    morning.label,
		}
		if err := db.Create(&entry).Error; err != nil {
			return fmt.Errorf("failed to create caffeine entry: %w", err)
		}

		if rng.Float32() < 0.5 {
			afternoon := doses[rng.Intn(len(doses))]
			takenAt := time.Date(day.Year(), day.Month(), day.Day(), 13+rng.Intn(3), rng.Intn(60), 0, 0, time.UTC)
			entry := domain.CaffeineEntry{
				TakenAt:  takenAt,
				AmountMg: afternoon.amount,
				Category: afternoon.category,
				Label:    afternoon.label,
			}
			if err := db.Create(&entry).Error; err != nil {
				return fmt.Errorf("failed to create caffeine entry: %w", err)
			}
		}
	}
	return nil
}
