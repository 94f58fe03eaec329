package server

import (
	"context"
	"deadlytruth/internal/analytics"
	"deadlytruth/internal/db"
	"deadlytruth/internal/events"
	"deadlytruth/internal/game"
	"deadlytruth/internal/rooms"
	"deadlytruth/internal/wshub"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/samber/lo"
)

// CaseService is what the handlers and schedulers need from the genai
// layer. Tests substitute fakes.
type CaseService interface {
	CreateCase(ctx context.Context, difficulty, scenario string) (game.Case, error)
	Interrogate(ctx context.Context, c game.Case, suspect, question, difficulty string) (game.ChatEntry, error)
}

type Server struct {
	Rooms   *rooms.Store
	Hub     *wshub.Hub
	Cases   CaseService
	Game    game.Config
	DB      *db.DB                      // nil if no database configured
	Archive chan db.InterrogationRecord // nil if no database configured
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[Handle] Encode error: %v\n", err)
	}
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"msg": "Servidor Deadly Truth ativo 🦙"})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	if s.DB != nil {
		if err := s.DB.Ping(); err != nil {
			status = "db_error"
			w.WriteHeader(http.StatusServiceUnavailable)
			fmt.Fprintf(w, `{"status":"%s","error":"%s"}`, status, err.Error())
			return
		}
	}
	fmt.Fprintf(w, `{"status":"%s"}`, status)
}

func (s *Server) handleCreateCase(w http.ResponseWriter, r *http.Request) {
	fmt.Println("[Handle:CreateCase] Request Received")

	var req struct {
		Difficulty string `json:"nivel"`
		Scenario   string `json:"cenario"`
	}
	// An empty or absent body falls back to the defaults.
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.Difficulty == "" {
		req.Difficulty = game.DefaultDifficulty
	}
	if req.Scenario == "" {
		req.Scenario = game.DefaultScenario
	}
	if !lo.Contains(game.Scenarios, req.Scenario) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown_scenario"})
		return
	}

	c, err := s.Cases.CreateCase(r.Context(), req.Difficulty, req.Scenario)
	if err != nil {
		log.Printf("[Handle:CreateCase] Generation failed: %v\n", err)
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": "case_generation_failed"})
		return
	}

	room, err := s.Rooms.Create(req.Difficulty, req.Scenario)
	if err != nil {
		log.Println(err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "room_creation_failed"})
		return
	}
	if c.CaseID == "" || c.CaseID == "ERRO" {
		c.CaseID = room.ID
	}
	room.State.SetCase(c)

	fmt.Printf("[Handle:CreateCase] Created room %s (%s, %s)\n", room.ID, req.Scenario, req.Difficulty)
	writeJSON(w, http.StatusOK, map[string]any{
		"room_id": room.ID,
		"case":    c,
	})
}

func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	fmt.Println("[Handle:Ask] Request Received")

	roomID := r.PathValue("id")
	room := s.Rooms.Get(roomID)
	if room == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "room_not_found"})
		return
	}

	var req struct {
		Suspect  string `json:"suspeito"`
		Question string `json:"pergunta"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Suspect == "" || req.Question == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid_request"})
		return
	}

	snap := room.State.Snapshot()
	entry, err := s.Cases.Interrogate(r.Context(), snap.Case, req.Suspect, req.Question, snap.Difficulty)
	if err != nil {
		log.Printf("[Handle:Ask] Generation failed: %v\n", err)
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": "interrogation_failed"})
		return
	}

	room.State.AppendChat(entry)
	s.Hub.Broadcast(roomID, events.Interrogation(entry))

	// Archive asynchronously; a full buffer drops the record rather than
	// stalling the request.
	if s.Archive != nil {
		select {
		case s.Archive <- db.InterrogationRecord{
			RoomID:        roomID,
			Suspect:       entry.Suspect,
			Question:      entry.Question,
			Answer:        entry.Answer,
			NonVerbalCues: entry.NonVerbalCues,
			AskedAt:       time.Now(),
		}:
		default:
			log.Println("[DB] Archive buffer full, dropping interrogation record")
		}
	}

	writeJSON(w, http.StatusOK, entry)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if s.DB == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "stats_unavailable"})
		return
	}

	overview, err := analytics.NewQueries(s.DB).GetOverview()
	if err != nil {
		log.Printf("[Handle:Stats] Query failed: %v\n", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "stats_query_failed"})
		return
	}
	writeJSON(w, http.StatusOK, overview)
}
