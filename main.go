package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Set properties of the predefined Logger — the prefix tags every line
	// with the service name, flags are cleared because the host adds timestamps.
	log.SetPrefix("cf/cyberfit-go-api: ")
	log.SetFlags(0)

	// .env is optional in deployed environments where config comes from the host.
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	pool := getDBPool()
	h := &Handler{
		db:           pool,
		ledger:       newDailyLedger(&pgStatsStore{db: pool}),
		coachBaseURL: os.Getenv("COACH_GATEWAY_URL"),
	}

	router := gin.Default()
	router.SetTrustedProxies(nil)
	h.registerRoutes(router)

	// The app shell runs on a different origin (device webview / Expo dev
	// server), so the whole API sits behind a CORS wrapper.
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: false,
	}).Handler(router)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	fmt.Printf("Starting gin app on :%s...\n", port)
	if err := http.ListenAndServe(":"+port, corsHandler); err != nil {
		log.Fatal(err)
	}
}
