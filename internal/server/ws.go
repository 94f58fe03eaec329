package server

import (
	"context"
	"deadlytruth/internal/events"
	"deadlytruth/internal/game"
	"deadlytruth/internal/rooms"
	"deadlytruth/internal/wshub"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/coder/websocket"
	"github.com/google/uuid"
)

// handleRoomSocket is the per-connection session: it registers the
// connection, claims a roster slot, relays inbound messages, and tears
// everything down on disconnect. Connecting to an unknown room id opens a
// fresh room.
func (s *Server) handleRoomSocket(w http.ResponseWriter, r *http.Request) {
	roomID := r.PathValue("id")

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		log.Printf("[WS] Accept error: %v\n", err)
		return
	}
	defer conn.CloseNow()

	room := s.Rooms.GetOrCreate(roomID)
	slot := room.State.AssignSlot(s.Game.MaxPlayers)

	client := &wshub.Client{
		ID:   uuid.NewString(),
		Slot: slot,
		Conn: conn,
		Send: make(chan []byte, 32),
	}
	s.Hub.Register(roomID, client)
	go client.WritePump(r.Context())
	defer s.teardown(room, client)

	snap := room.State.Snapshot()
	s.Hub.SendTo(client, events.Hello(events.HelloPayload{
		RoomID:      roomID,
		Slot:        slot,
		Connections: s.Hub.Count(roomID),
		Roster:      snap.Roster,
		Case:        snap.Case,
		CurrentTurn: snap.CurrentTurn,
		Active:      snap.Active,
	}))

	if slot == 0 {
		log.Printf("[WS] Room %s: roster full, connection %s joins as observer\n", roomID, client.ID)
	} else {
		s.Hub.Broadcast(roomID, events.Status("join", slot, snap.Roster))
		// Crossing the quorum threshold starts the turn loop.
		if room.State.RosterLen() >= s.Game.MinPlayers {
			s.startGame(room)
		}
	}

	for {
		_, data, err := conn.Read(r.Context())
		if err != nil {
			return
		}
		s.dispatch(room, client, data)
	}
}

// dispatch routes one inbound frame. Frames that are not the structured
// format degrade to freeform chat rather than failing the connection.
func (s *Server) dispatch(room *rooms.Room, client *wshub.Client, data []byte) {
	var msg struct {
		Type    string `json:"type"`
		Content string `json:"content"`
	}
	if err := json.Unmarshal(data, &msg); err != nil {
		s.Hub.Broadcast(room.ID, events.Chat(client.Slot, string(data)))
		return
	}

	switch msg.Type {
	case "action":
		room.Signal.Signal()
		s.Hub.Broadcast(room.ID, events.Chat(client.Slot, fmt.Sprintf("Jogador %d realizou uma ação", client.Slot)))
	case "start":
		n := room.State.RosterLen()
		if n < s.Game.MinPlayers {
			s.Hub.SendTo(client, events.Error(fmt.Sprintf("need %d players to start, have %d", s.Game.MinPlayers, n)))
			return
		}
		if !s.startGame(room) {
			s.Hub.SendTo(client, events.Error("game already running"))
		}
	default:
		s.Hub.Broadcast(room.ID, events.Chat(client.Slot, string(data)))
	}
}

// startGame spins up the room's turn scheduler. The active flag's
// check-and-set guarantees at most one scheduler per room; losing the race
// returns false.
func (s *Server) startGame(room *rooms.Room) bool {
	if !room.State.TryActivate() {
		return false
	}

	sched := game.NewScheduler(room.ID, room.State, room.Signal, s.Cases, s.Hub, s.Game)
	go func() {
		var runID string
		if s.DB != nil {
			id, err := s.DB.CreateGameRun(room.ID, room.State.Scenario(), room.State.Difficulty())
			if err != nil {
				log.Printf("[DB] CreateGameRun error: %v\n", err)
			} else {
				runID = id
			}
		}

		sched.Run(context.Background())

		if s.DB != nil && runID != "" {
			if err := s.DB.EndGameRun(runID); err != nil {
				log.Printf("[DB] EndGameRun error: %v\n", err)
			}
		}
	}()
	return true
}

// teardown runs when a connection closes for any reason: deregister,
// release the roster slot, and destroy the room once the last connection is
// gone. Emptying the roster clears the active flag, which the running
// scheduler observes on its next iteration.
func (s *Server) teardown(room *rooms.Room, client *wshub.Client) {
	left := s.Hub.Deregister(room.ID, client.ID)
	room.State.RemoveSlot(client.Slot)

	if client.Slot != 0 && left > 0 {
		snap := room.State.Snapshot()
		s.Hub.Broadcast(room.ID, events.Status("leave", client.Slot, snap.Roster))
	}
	if left == 0 {
		room.State.Deactivate()
		s.Rooms.Remove(room.ID)
		log.Printf("[WS] Room %s: last connection closed, room removed\n", room.ID)
	}
}
