package main

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/tripnote/travel-planner-api/config"
)

// Dev seeder: inserts a demo user with one itinerary, a couple of planned
// stops, and budget entries. Safe to run repeatedly.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	var userID int64
	err = db.QueryRow(`
		INSERT INTO users (social_provider, social_id, email, display_name, language_code, currency_code)
		VALUES ('google', 'demo-social-id', 'demo@example.com', 'Demo Traveler', 'en', 'USD')
		ON CONFLICT (social_provider, social_id) DO UPDATE SET display_name = EXCLUDED.display_name
		RETURNING id
	`).Scan(&userID)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%d\n", userID)

	start := time.Now().AddDate(0, 1, 0).Truncate(24 * time.Hour)
	end := start.AddDate(0, 0, 4)

	var itineraryID int64
	err = db.QueryRow(`
		INSERT INTO itineraries (user_id, title, description, start_date, end_date)
		VALUES ($1, 'Seoul Trip', 'Five days in Seoul', $2, $3)
		RETURNING id
	`, userID, start, end).Scan(&itineraryID)
	if err != nil {
		log.Fatalf("failed to seed itinerary: %v", err)
	}
	fmt.Printf("seeded itinerary: id=%d\n", itineraryID)

	items := []struct {
		name     string
		lat, lng float64
		order    int
	}{
		{"Gyeongbokgung Palace", 37.5788222356, 126.9769930325, 1},
		{"Bukchon Hanok Village", 37.5826490235, 126.9849519457, 2},
		{"N Seoul Tower", 37.5511694996, 126.9882266598, 3},
	}
	for _, it := range items {
		if _, err := db.Exec(`
			INSERT INTO itinerary_items (itinerary_id, place_name, latitude, longitude, visit_date, visit_order, place_type)
			VALUES ($1, $2, $3, $4, $5, $6, 'attraction')
		`, itineraryID, it.name, it.lat, it.lng, start, it.order); err != nil {
			log.Fatalf("failed to seed item %q: %v", it.name, err)
		}
	}
	fmt.Printf("seeded %d items\n", len(items))

	budgets := []struct {
		category string
		amount   float64
		currency string
	}{
		{"accommodation", 420000, "KRW"},
		{"food", 150000, "KRW"},
		{"transport", 50.0, "USD"},
	}
	for _, b := range budgets {
		if _, err := db.Exec(`
			INSERT INTO budgets (itinerary_id, category, amount, currency, spent_at)
			VALUES ($1, $2, $3, $4, $5)
		`, itineraryID, b.category, b.amount, b.currency, start); err != nil {
			log.Fatalf("failed to seed budget %q: %v", b.category, err)
		}
	}
	fmt.Printf("seeded %d budgets\n", len(budgets))
}
