package main

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"

	"alostudio/internal/auth"
	"alostudio/internal/catalog"
	"alostudio/internal/pricing"
	"alostudio/internal/shared/config"
	"alostudio/internal/shared/database"
)

type Seeder struct {
	db *database.DB
}

func main() {
	fmt.Println("🌱 Starting Alostudio Database Seeder...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := database.MigrateConstraints(db.GetPostgreSQL()); err != nil {
		log.Fatalf("Failed to apply constraints: %v", err)
	}

	seeder := &Seeder{db: db}
	ctx := context.Background()

	if err := seeder.SeedServices(ctx); err != nil {
		log.Fatalf("Failed to seed services: %v", err)
	}
	if err := seeder.SeedAdmin(ctx); err != nil {
		log.Fatalf("Failed to seed admin: %v", err)
	}

	fmt.Println("✅ Seeding complete")
}

// SeedServices inserts the default catalog when the table is empty.
// Existing catalogs are left untouched so reruns are safe.
func (s *Seeder) SeedServices(ctx context.Context) error {
	count, err := catalog.CountServices(ctx, s.db.GetPostgreSQL())
	if err != nil {
		return err
	}
	if count > 0 {
		fmt.Printf("Catalog already has %d services, skipping\n", count)
		return nil
	}

	indoor := catalog.LocationIndoor
	outdoor := catalog.LocationOutdoor

	services := []catalog.StudioService{
		// Makeup
		{
			Name:              "Natural Glow Glam",
			Type:              catalog.TypeMakeup,
			Description:       "Perfect for everyday elegance with subtle enhancement. Includes skin prep, natural foundation, soft eyeshadow, mascara, and nude lip color.",
			BasePrice:         75.0,
			DepositPercentage: 25.0,
			DurationHours:     1,
			IsActive:          true,
		},
		{
			Name:              "Soft Glow Glam",
			Type:              catalog.TypeMakeup,
			Description:       "Ideal for special occasions with enhanced beauty. Includes contouring, highlighting, defined eyes, and glamorous finish.",
			BasePrice:         95.0,
			DepositPercentage: 25.0,
			DurationHours:     1.5,
			IsActive:          true,
		},
		{
			Name:              "Full Glow Glam",
			Type:              catalog.TypeMakeup,
			Description:       "Complete transformation for red carpet events. Premium makeup with airbrush foundation, dramatic eyes, contouring, and luxury finish.",
			BasePrice:         150.0,
			DepositPercentage: 25.0,
			DurationHours:     2,
			IsActive:          true,
		},
		// Photography
		{
			Name:              "Standard Indoor Session",
			Type:              catalog.TypePhotography,
			Location:          &indoor,
			Description:       "Professional studio session with basic lighting setup, 1 hour session, 10 edited photos.",
			BasePrice:         180.0,
			DepositPercentage: 25.0,
			DurationHours:     1,
			IsActive:          true,
		},
		{
			Name:              "Deluxe Indoor Session",
			Type:              catalog.TypePhotography,
			Location:          &indoor,
			Description:       "Premium studio session with advanced lighting, props, 2 hours, 20 edited photos, and styling consultation.",
			BasePrice:         280.0,
			DepositPercentage: 25.0,
			DurationHours:     2,
			IsActive:          true,
		},
		{
			Name:              "Newborn/Infant Session",
			Type:              catalog.TypePhotography,
			Location:          &indoor,
			Description:       "Specialized newborn photography with safety first approach. Up to 3 clothing changes, 5 edited photos, $15 per additional edit.",
			BasePrice:         230.0,
			DepositPercentage: 25.0,
			DurationHours:     2,
			IsActive:          true,
		},
		{
			Name:              "Outdoor Photography",
			Type:              catalog.TypePhotography,
			Location:          &outdoor,
			Description:       "On-location outdoor session at scenic locations. Natural lighting, candid and posed shots, 15 edited photos.",
			BasePrice:         320.0,
			DepositPercentage: 60.0,
			DurationHours:     2,
			IsActive:          true,
		},
		// Video
		{
			Name:              "Indoor Video Session",
			Type:              catalog.TypeVideo,
			Location:          &indoor,
			Description:       "Professional studio video production with lighting setup, 2-hour session, basic editing included.",
			BasePrice:         350.0,
			DepositPercentage: 25.0,
			DurationHours:     2,
			IsActive:          true,
		},
		{
			Name:              "Outdoor Video Session",
			Type:              catalog.TypeVideo,
			Location:          &outdoor,
			Description:       "On-location video production for events, documentaries, or promotional content. Professional equipment and editing.",
			BasePrice:         500.0,
			DepositPercentage: 60.0,
			DurationHours:     3,
			IsActive:          true,
		},
	}

	repo := catalog.NewRepository(s.db.GetPostgreSQL())
	for i := range services {
		if err := repo.CreateService(ctx, &services[i]); err != nil {
			return fmt.Errorf("failed to create service %q: %w", services[i].Name, err)
		}
	}
	fmt.Printf("Seeded %d services\n", len(services))

	// A sample combo bundling the two most popular services
	total := services[1].BasePrice + services[3].BasePrice
	combo := catalog.ComboService{
		Name:               "Glam & Shoot Combo",
		Description:        "Soft Glow Glam makeup followed by a Standard Indoor Session.",
		ServiceIDs:         []string{services[1].ID.String(), services[3].ID.String()},
		TotalPrice:         total,
		DiscountPercentage: 15.0,
		FinalPrice:         pricing.ComboFinalPrice(total, 0.15),
		DepositPercentage:  50.0,
		IsActive:           true,
	}
	if err := repo.CreateCombo(ctx, &combo); err != nil {
		return fmt.Errorf("failed to create combo: %w", err)
	}
	fmt.Println("Seeded 1 combo service")
	return nil
}

// SeedAdmin creates the default back-office account when none exists.
func (s *Seeder) SeedAdmin(ctx context.Context) error {
	var count int64
	if err := s.db.GetPostgreSQL().WithContext(ctx).Model(&auth.Admin{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		fmt.Println("Admin account already exists, skipping")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	repo := auth.NewRepository(s.db.GetPostgreSQL())
	admin := &auth.Admin{
		Username:     "admin",
		PasswordHash: string(hash),
	}
	if err := repo.CreateAdmin(ctx, admin); err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}
	fmt.Println("Seeded default admin (username: admin)")
	return nil
}
