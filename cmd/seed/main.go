package main

import (
	"context"
	"fmt"
	"log"

	"gorm.io/gorm"

	"herzlink/internal/config"
	"herzlink/internal/db"
	"herzlink/internal/model"
	"herzlink/internal/repository"
)

// sampleAccount pairs a demo login with its hardcoded demo profile, so the
// seeded data is loggable-into out of the box.
type sampleAccount struct {
	user    model.User
	profile model.Profile
}

func sampleAccounts() []sampleAccount {
	return []sampleAccount{
		{
			user: model.User{Name: "Esche", Email: "test1@test.de", Password: "test", Role: model.RoleUser},
			profile: model.Profile{
				Name: "Esche", Age: 29, Location: "Berlin", Status: "single",
				Interests: []string{"Wandern", "Fotografie", "Kochen"},
				Height:    172, Children: "keine", Education: "Bachelor",
				Languages:   []string{"Deutsch", "Englisch"},
				Description: "Naturverbunden und immer auf der Suche nach dem nächsten Abenteuer.",
				Online:      true, Verified: true, Seeking: "feste Beziehung",
			},
		},
		{
			user: model.User{Name: "Max Mustermann", Email: "test2@test.de", Password: "test", Role: model.RoleUser},
			profile: model.Profile{
				Name: "Max Mustermann", Age: 34, Location: "Hamburg", Status: "single",
				Interests: []string{"Segeln", "Jazz", "Laufen"},
				Height:    184, Children: "keine", Education: "Master",
				Languages:   []string{"Deutsch", "Englisch", "Spanisch"},
				Description: "Hafenkind mit Fernweh. Sonntags am liebsten an der Elbe.",
				Verified:    true, Seeking: "feste Beziehung",
			},
		},
		{
			user: model.User{Name: "Anna Beispiel", Email: "test3@test.de", Password: "test", Role: model.RoleUser},
			profile: model.Profile{
				Name: "Anna Beispiel", Age: 27, Location: "München", Status: "single",
				Interests: []string{"Yoga", "Museen", "Backen"},
				Height:    165, Children: "keine", Education: "Ausbildung",
				Languages:   []string{"Deutsch", "Italienisch"},
				Description: "Halb Münchnerin, halb Italienerin. Espresso zuerst.",
				Seeking:     "neue Bekanntschaften",
			},
		},
	}
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewPostgres(cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Profile{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	userRepo := repository.NewUserRepository(gormDB)
	profileRepo := repository.NewProfileRepository(gormDB)
	ctx := context.Background()

	created, skipped, err := seedSamples(ctx, userRepo, profileRepo, sampleAccounts())
	if err != nil {
		log.Fatalf("Failed to seed sample accounts: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - Sample accounts created: %d", created)
	log.Printf("  - Already present, skipped: %d", skipped)
}

// seedSamples inserts sample users and their demo profiles, skipping accounts
// that already exist.
func seedSamples(ctx context.Context, userRepo repository.UserRepository, profileRepo repository.ProfileRepository, samples []sampleAccount) (created, skipped int, err error) {
	for _, sample := range samples {
		existing, err := userRepo.FindByEmail(ctx, sample.user.Email)
		if err != nil && err != gorm.ErrRecordNotFound {
			return created, skipped, fmt.Errorf("error checking user %s: %w", sample.user.Email, err)
		}
		if existing != nil {
			skipped++
			continue
		}

		user := sample.user
		if err := userRepo.Create(ctx, &user); err != nil {
			return created, skipped, fmt.Errorf("error creating user %s: %w", user.Email, err)
		}

		profile := sample.profile
		profile.UserID = user.ID
		if err := profileRepo.Create(ctx, &profile); err != nil {
			return created, skipped, fmt.Errorf("error creating profile for %s: %w", user.Email, err)
		}
		created++
	}
	return created, skipped, nil
}
