package main

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"golang.org/x/crypto/bcrypt"

	"github.com/baisyuvraj142-crypto/Ecomorphis--App/events"
	"github.com/baisyuvraj142-crypto/Ecomorphis--App/handlers"
	"github.com/baisyuvraj142-crypto/Ecomorphis--App/ledger"
	"github.com/baisyuvraj142-crypto/Ecomorphis--App/middleware"
	"github.com/baisyuvraj142-crypto/Ecomorphis--App/models"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	// The ledger is the single owner of all state; everything else gets
	// it injected.
	l := ledger.New()
	if os.Getenv("SKIP_SEED") == "" {
		if err := seedDemoData(l); err != nil {
			log.Fatal("Failed to seed demo data:", err)
		}
	}

	auth := middleware.NewAuth()

	hub := events.NewHub()
	go hub.Run()

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}

	h := handlers.New(l, auth, hub, uploadDir)

	// Create router
	router := mux.NewRouter()

	// Serve uploaded complaint and green-snap photos
	router.PathPrefix("/uploads/").Handler(http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadDir))))

	// Public routes
	router.HandleFunc("/api/health", healthCheck).Methods("GET")
	router.HandleFunc("/api/auth/signup", h.Signup).Methods("POST")
	router.HandleFunc("/api/auth/login", h.Login).Methods("POST")

	// Dashboard live updates
	router.HandleFunc("/ws", hub.ServeWS)

	// Protected routes
	api := router.PathPrefix("/api").Subrouter()
	api.Use(auth.Middleware)

	// ==================== PROFILE & ECO GARDEN ====================
	api.HandleFunc("/me", h.GetMe).Methods("GET")
	api.HandleFunc("/profile", h.GetProfile).Methods("GET")
	api.HandleFunc("/garden", h.GetGarden).Methods("GET")
	api.HandleFunc("/garden/snap", h.GreenSnap).Methods("POST")
	api.HandleFunc("/leaderboard", h.GetLeaderboard).Methods("GET")
	api.HandleFunc("/facilities", h.GetFacilities).Methods("GET")

	// ==================== TRAINING & QUIZ ====================
	api.HandleFunc("/training/{track}", h.GetTrackProgress).Methods("GET")
	api.HandleFunc("/training/{track}/modules/{key}/complete", h.CompleteModule).Methods("POST")
	api.HandleFunc("/training/{track}/quiz", h.GetQuiz).Methods("GET")
	api.HandleFunc("/training/{track}/quiz", h.SubmitQuiz).Methods("POST")

	// ==================== ECO-REWARDS SHOP ====================
	api.HandleFunc("/shop/products", h.GetProducts).Methods("GET")
	api.HandleFunc("/shop/redeem", h.RedeemReward).Methods("POST")

	// ==================== BINS & QR ====================
	api.HandleFunc("/bins", h.GetBins).Methods("GET")
	api.HandleFunc("/bins/scan", h.ScanBin).Methods("POST")
	api.HandleFunc("/bins/{id}", h.GetBin).Methods("GET")
	api.HandleFunc("/bins/{id}/qr", h.GetBinQR).Methods("GET")

	// Citizen routes
	citizenRoutes := api.NewRoute().Subrouter()
	citizenRoutes.Use(middleware.CitizenOnly)
	citizenRoutes.HandleFunc("/complaints", h.CreateComplaint).Methods("POST")
	citizenRoutes.HandleFunc("/complaints/mine", h.GetMyComplaints).Methods("GET")
	citizenRoutes.HandleFunc("/bins/{id}/report", h.ReportBinOverflow).Methods("POST")

	// Green Champion routes
	championRoutes := api.NewRoute().Subrouter()
	championRoutes.Use(middleware.GreenChampionOnly)
	championRoutes.HandleFunc("/complaints", h.GetComplaints).Methods("GET")
	championRoutes.HandleFunc("/complaints/{id}/verify", h.VerifyComplaint).Methods("POST")
	championRoutes.HandleFunc("/complaints/{id}/invalidate", h.InvalidateComplaint).Methods("POST")
	championRoutes.HandleFunc("/complaints/{id}/resolve", h.ResolveComplaint).Methods("POST")
	championRoutes.HandleFunc("/bins/{id}/clean", h.MarkBinClean).Methods("POST")
	championRoutes.HandleFunc("/penalties", h.ImposeFine).Methods("POST")
	championRoutes.HandleFunc("/dashboard/stats", h.GetDashboardStats).Methods("GET")

	// Apply logging and rate limiting
	router.Use(middleware.Logging)
	router.Use(middleware.RateLimit(rateLimitFromEnv()))

	// Configure CORS
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: getAllowedOrigins(),
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Authorization",
			"Content-Type",
		},
		AllowCredentials: true,
		MaxAge:           300,
	})

	handler := corsHandler.Handler(router)

	// Get port from environment
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s...", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

// seedDemoData loads the demo accounts and the city's registered bins.
func seedDemoData(l *ledger.Ledger) error {
	demoHash, err := bcrypt.GenerateFromPassword([]byte("123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	demoUsers := []struct {
		username string
		role     models.Role
		points   int
	}{
		{"citizen", models.RoleCitizen, 125},
		{"champion", models.RoleGreenChampion, 250},
	}
	for _, u := range demoUsers {
		if _, err := l.CreateUser(u.username, string(demoHash), u.role); err != nil {
			return err
		}
		if u.points > 0 {
			if _, err := l.AwardPoints(u.username, u.points); err != nil {
				return err
			}
		}
	}

	if err := l.AddBin("BIN-BH-001", "Kolar Road, Near SBI", models.BinClean, nil, nil); err != nil {
		return err
	}
	if err := l.AddBin("BIN-BH-002", "Arera Colony, Market Area", models.BinClean, nil, nil); err != nil {
		return err
	}
	reportedBy := "citizen"
	reportedAt := time.Date(2025, 9, 19, 9, 30, 0, 0, time.Local)
	if err := l.AddBin("BIN-BH-003", "MP Nagar, Zone 1", models.BinOverflowing, &reportedBy, &reportedAt); err != nil {
		return err
	}

	log.Println("Seeded demo users and city bins")
	return nil
}

func rateLimitFromEnv() int {
	if v := os.Getenv("RATE_LIMIT_PER_MINUTE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return 100
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy","service":"Ecomorphis Backend"}`))
}

func getAllowedOrigins() []string {
	origins := os.Getenv("ALLOWED_ORIGINS")
	if origins == "" {
		// Default allowed origins for development
		return []string{"*"}
	}

	var result []string
	for _, origin := range strings.Split(origins, ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
