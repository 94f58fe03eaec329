package game

import (
	"sync"
	"time"
)

// Config holds the knobs of the turn engine.
type Config struct {
	TurnDuration time.Duration
	TurnGap      time.Duration
	QuorumPoll   time.Duration
	MinPlayers   int
	MaxPlayers   int
}

func DefaultConfig() Config {
	return Config{
		TurnDuration: 120 * time.Second,
		TurnGap:      1 * time.Second,
		QuorumPoll:   1 * time.Second,
		MinPlayers:   3,
		MaxPlayers:   12,
	}
}

// Snapshot is a point-in-time copy of a room's game state, safe to hand to
// encoders and templates without further locking.
type Snapshot struct {
	Difficulty  string
	Scenario    string
	Case        Case
	Chat        []ChatEntry
	Roster      []int
	CurrentTurn int
	Active      bool
}

// State is the mutable game state of one room. Every read and write goes
// through its methods; the mutex serializes mutation per room so rooms never
// block each other.
type State struct {
	mu          sync.Mutex
	difficulty  string
	scenario    string
	cs          Case
	chat        []ChatEntry
	roster      []int
	currentTurn int
	active      bool
}

func NewState(difficulty, scenario string) *State {
	if difficulty == "" {
		difficulty = DefaultDifficulty
	}
	if scenario == "" {
		scenario = DefaultScenario
	}
	return &State{difficulty: difficulty, scenario: scenario}
}

func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Difficulty:  s.difficulty,
		Scenario:    s.scenario,
		Case:        s.cs,
		Chat:        append([]ChatEntry(nil), s.chat...),
		Roster:      append([]int(nil), s.roster...),
		CurrentTurn: s.currentTurn,
		Active:      s.active,
	}
}

func (s *State) Difficulty() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.difficulty
}

func (s *State) Scenario() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scenario
}

func (s *State) Case() Case {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cs
}

// SetCase replaces the case payload wholesale.
func (s *State) SetCase(c Case) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cs = c
}

// AppendChat appends an interrogation record. Records are never mutated or
// removed afterwards.
func (s *State) AppendChat(e ChatEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chat = append(s.chat, e)
}

// AssignSlot claims the lowest unused slot number in 1..max and appends it
// to the roster. Returns 0 when the roster is full: the connection stays an
// observer, receiving broadcasts without a place in the turn order.
func (s *State) AssignSlot(max int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	taken := make(map[int]bool, len(s.roster))
	for _, slot := range s.roster {
		taken[slot] = true
	}
	for slot := 1; slot <= max; slot++ {
		if !taken[slot] {
			s.roster = append(s.roster, slot)
			return slot
		}
	}
	return 0
}

// RemoveSlot drops a slot from the roster and keeps the turn index pointing
// at a valid position. Removing an observer slot (0) is a no-op.
func (s *State) RemoveSlot(slot int) {
	if slot == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, v := range s.roster {
		if v == slot {
			s.roster = append(s.roster[:i], s.roster[i+1:]...)
			if i < s.currentTurn {
				s.currentTurn--
			}
			break
		}
	}
	if len(s.roster) == 0 {
		s.currentTurn = 0
		s.active = false
		return
	}
	s.currentTurn %= len(s.roster)
}

func (s *State) RosterLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.roster)
}

// CurrentSlot returns the slot whose turn it is. ok is false when the
// roster is empty.
func (s *State) CurrentSlot() (slot int, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.roster) == 0 {
		return 0, false
	}
	return s.roster[s.currentTurn%len(s.roster)], true
}

// AdvanceTurn moves the index to the next roster position, wrapping at the
// roster length.
func (s *State) AdvanceTurn() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.roster) == 0 {
		s.currentTurn = 0
		return
	}
	s.currentTurn = (s.currentTurn + 1) % len(s.roster)
}

// TryActivate flips the active flag with check-and-set semantics. It is the
// guard that keeps at most one scheduler running per room: only the caller
// that observes false→true may start a loop.
func (s *State) TryActivate() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active {
		return false
	}
	s.active = true
	s.currentTurn = 0
	return true
}

// Deactivate clears the active flag; the running scheduler observes it at
// its next state-transition boundary and exits.
func (s *State) Deactivate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = false
}

func (s *State) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}
