// cmd/seeder seeds a demo account and a few sample rows for local
// development against an empty database.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/saishivaaditya/market/internal/config"
	"github.com/saishivaaditya/market/internal/db"
	"github.com/saishivaaditya/market/internal/model"
	"github.com/saishivaaditya/market/internal/repository"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, relying on OS environment variables")
	}

	cfg := config.Load()
	conn, err := db.Open(cfg)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	defer conn.Close()

	ctx := context.Background()
	users := &repository.UserRepository{DB: conn}

	demo, err := users.GetByEmail(ctx, "demo@marketmind.local")
	if err != nil {
		log.Fatal(err)
	}
	if demo == nil {
		hash, err := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal(err)
		}
		demo = &model.User{
			Name:         "Demo User",
			Email:        "demo@marketmind.local",
			PasswordHash: string(hash),
		}
		if err := users.Create(ctx, demo); err != nil {
			log.Fatal(err)
		}
		fmt.Println("Seeded: demo user")
	}

	leads := &repository.LeadRepository{DB: conn}
	sample := &model.Lead{
		Name:        "Acme Corp",
		Budget:      "10k",
		Need:        "CRM",
		Urgency:     "high",
		Score:       80,
		Probability: 65,
		Analysis:    "strong fit",
		UserID:      &demo.ID,
	}
	if err := leads.Create(ctx, sample); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Seeded: sample lead")

	fmt.Println("Database seeding completed successfully!")
}
