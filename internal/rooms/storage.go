package rooms

import (
	"deadlytruth/internal/game"
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrNotFound is returned by Mutate for unknown room ids; it never
// fabricates state, that is GetOrCreate's job.
var ErrNotFound = errors.New("room not found")

// Rooms created over REST but never joined are garbage collected after this.
const staleTTL = 1 * time.Hour

// Store owns all rooms for the process lifetime. The store lock guards only
// the map; each Room carries its own serialized state, so operations on
// different rooms never block each other.
type Store struct {
	mu    sync.RWMutex
	rooms map[string]*Room
}

func NewStore() *Store {
	s := &Store{
		rooms: make(map[string]*Room),
	}
	go s.sweepStale()
	return s
}

// Create makes a room under a freshly generated unique code. Used by the
// case-creation endpoint, which names the room before anyone connects.
func (s *Store) Create(difficulty, scenario string) (*Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Try up to 10 times to generate a unique code
	for range 10 {
		code, err := GenerateCode()
		if err != nil {
			return nil, fmt.Errorf("generating room code: %w", err)
		}
		if _, exists := s.rooms[code]; exists {
			continue
		}
		room := s.newRoom(code, difficulty, scenario)
		s.rooms[code] = room
		return room, nil
	}
	return nil, fmt.Errorf("failed to generate unique room code after 10 attempts")
}

// GetOrCreate returns the room for id, creating it with default empty state
// when absent. This is the join path: connecting to an unknown id opens a
// fresh room.
func (s *Store) GetOrCreate(id string) *Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	if room, ok := s.rooms[id]; ok {
		return room
	}
	room := s.newRoom(id, "", "")
	s.rooms[id] = room
	return room
}

func (s *Store) newRoom(id, difficulty, scenario string) *Room {
	return &Room{
		ID:        id,
		State:     game.NewState(difficulty, scenario),
		Signal:    game.NewActionSignal(),
		CreatedAt: time.Now(),
	}
}

func (s *Store) Get(id string) *Room {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rooms[id]
}

// Mutate applies fn to an existing room. The room's state accessors
// serialize the actual reads and writes; Mutate adds the existence check so
// callers get a structured not-found instead of silently fabricated state.
func (s *Store) Mutate(id string, fn func(*Room) error) error {
	s.mu.RLock()
	room := s.rooms[id]
	s.mu.RUnlock()
	if room == nil {
		return fmt.Errorf("mutating room %s: %w", id, ErrNotFound)
	}
	return fn(room)
}

// Remove deletes the room and everything hanging off it.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rooms, id)
}

func (s *Store) List() []*Room {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := make([]*Room, 0, len(s.rooms))
	for _, r := range s.rooms {
		list = append(list, r)
	}
	return list
}

// sweepStale drops rooms that were created but never joined. Rooms with
// players are torn down by the session handler when the last connection
// closes, so anything old with an empty roster is abandoned.
func (s *Store) sweepStale() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		s.mu.Lock()
		now := time.Now()
		for id, room := range s.rooms {
			if room.State.RosterLen() == 0 && now.Sub(room.CreatedAt) > staleTTL {
				delete(s.rooms, id)
			}
		}
		s.mu.Unlock()
	}
}
