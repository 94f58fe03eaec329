package server

import (
	"deadlytruth/internal/config"
	"deadlytruth/internal/db"
	"deadlytruth/internal/game"
	"deadlytruth/internal/genai"
	"deadlytruth/internal/rooms"
	"deadlytruth/internal/wshub"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/rs/cors"
)

func Run() error {
	appCfg, err := config.Load()
	if err != nil {
		return err
	}

	gameCfg := game.Config{
		TurnDuration: appCfg.TurnDuration,
		TurnGap:      appCfg.TurnGap,
		QuorumPoll:   appCfg.QuorumPoll,
		MinPlayers:   appCfg.MinPlayers,
		MaxPlayers:   appCfg.MaxPlayers,
	}

	if appCfg.GroqAPIKey == "" {
		log.Println("[GenAI] GROQ_API_KEY not set, case generation will fail until it is configured")
	}
	client := genai.NewClient(appCfg.GroqAPIKey, appCfg.GroqModel, appCfg.GroqTimeout)

	srv := &Server{
		Rooms: rooms.NewStore(),
		Hub:   wshub.NewHub(),
		Cases: genai.NewService(client, appCfg.MaxPlayers),
		Game:  gameCfg,
	}

	// Optional database connection
	if appCfg.DatabaseURL != "" {
		database, err := db.Connect(appCfg.DatabaseURL)
		if err != nil {
			log.Printf("[DB] Failed to connect: %v (running without database)\n", err)
		} else {
			if err := database.Migrate(); err != nil {
				log.Printf("[DB] Migration failed: %v\n", err)
			}
			srv.DB = database
			srv.Archive = make(chan db.InterrogationRecord, 1000)
			go interrogationBatchWriter(database, srv.Archive)
			log.Println("[DB] Database connected and migrations applied")
		}
	} else {
		log.Println("[DB] DATABASE_URL not set, running without database")
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", srv.handleRoot)
	mux.HandleFunc("GET /health", srv.handleHealth)
	mux.HandleFunc("POST /case/new", srv.handleCreateCase)
	mux.HandleFunc("POST /case/{id}/ask", srv.handleAsk)
	mux.HandleFunc("GET /stats", srv.handleStats)
	mux.HandleFunc("/ws/{id}", srv.handleRoomSocket)

	// The frontend is hosted separately, so the API stays wide open.
	handler := cors.AllowAll().Handler(mux)

	addr := "0.0.0.0:" + appCfg.Port
	fmt.Printf("Server listening on http://localhost:%s\n", appCfg.Port)
	return http.ListenAndServe(addr, handler)
}

func interrogationBatchWriter(database *db.DB, buffer chan db.InterrogationRecord) {
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	batch := make([]db.InterrogationRecord, 0, 50)

	for {
		select {
		case rec := <-buffer:
			batch = append(batch, rec)
			if len(batch) >= 50 {
				if err := database.BatchRecordInterrogations(batch); err != nil {
					log.Printf("[DB] BatchRecordInterrogations error: %v\n", err)
				}
				batch = batch[:0]
			}
		case <-ticker.C:
			if len(batch) > 0 {
				if err := database.BatchRecordInterrogations(batch); err != nil {
					log.Printf("[DB] BatchRecordInterrogations error: %v\n", err)
				}
				batch = batch[:0]
			}
		}
	}
}
