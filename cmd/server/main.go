package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/saishivaaditya/market/internal/config"
	"github.com/saishivaaditya/market/internal/db"
	"github.com/saishivaaditya/market/internal/groq"
	"github.com/saishivaaditya/market/internal/handler"
	"github.com/saishivaaditya/market/internal/repository"
	"github.com/saishivaaditya/market/internal/service"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, relying on OS environment variables")
	}

	cfg := config.Load()

	conn, err := db.Open(cfg)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	defer conn.Close()

	userRepo := &repository.UserRepository{DB: conn}
	campaignRepo := &repository.CampaignRepository{DB: conn}
	pitchRepo := &repository.PitchRepository{DB: conn}
	leadRepo := &repository.LeadRepository{DB: conn}

	generationService := &service.GenerationService{
		Client:       groq.NewClient(cfg),
		CampaignRepo: campaignRepo,
		PitchRepo:    pitchRepo,
		LeadRepo:     leadRepo,
	}
	authService := &service.AuthService{Users: userRepo}

	generationHandler := &handler.GenerationHandler{Service: generationService}
	authHandler := &handler.AuthHandler{Service: authService}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(handler.CORS)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "web/index.html")
	})

	r.Post("/generate_campaign", generationHandler.GenerateCampaign)
	r.Post("/generate_pitch", generationHandler.GeneratePitch)
	r.Post("/lead_score", generationHandler.LeadScore)
	r.Post("/chatbot", generationHandler.Chatbot)

	r.Post("/register", authHandler.Register)
	r.Post("/login", authHandler.Login)

	log.Println("🚀 Server running on", cfg.Addr)
	log.Fatal(http.ListenAndServe(cfg.Addr, r))
}
