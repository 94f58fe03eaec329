package game

import (
	"context"
	"deadlytruth/internal/events"
	"log"
	"time"
)

// Broadcaster fans a message out to every connection in a room.
type Broadcaster interface {
	Broadcast(roomID string, ev events.Event)
}

// CaseSource produces the narrative payload for a room. Implemented by the
// genai service; tests substitute fakes.
type CaseSource interface {
	CreateCase(ctx context.Context, difficulty, scenario string) (Case, error)
}

// Scheduler is the per-room turn loop. Exactly one instance runs per active
// room; callers must win State.TryActivate before starting one. An instance
// is not resumable: once Run returns it is discarded, and a later quorum
// starts a fresh one with the turn index reset.
type Scheduler struct {
	roomID    string
	state     *State
	signal    *ActionSignal
	source    CaseSource
	hub       Broadcaster
	cfg       Config
	announced bool
}

func NewScheduler(roomID string, state *State, signal *ActionSignal, source CaseSource, hub Broadcaster, cfg Config) *Scheduler {
	return &Scheduler{
		roomID: roomID,
		state:  state,
		signal: signal,
		source: source,
		hub:    hub,
		cfg:    cfg,
	}
}

// Run blocks until the room empties, the active flag is cleared, or case
// generation fails. Cancellation is cooperative: the loop checks its exit
// conditions at state-transition boundaries and never aborts an in-progress
// turn wait.
func (s *Scheduler) Run(ctx context.Context) {
	defer s.state.Deactivate()
	log.Printf("[Scheduler] Room %s: loop started\n", s.roomID)

	for {
		if !s.awaitQuorum(ctx) {
			log.Printf("[Scheduler] Room %s: loop exiting\n", s.roomID)
			return
		}
		if !s.ensureCase(ctx) {
			log.Printf("[Scheduler] Room %s: loop exiting after generation failure\n", s.roomID)
			return
		}
		if !s.runTurns(ctx) {
			log.Printf("[Scheduler] Room %s: loop exiting\n", s.roomID)
			return
		}
		// Quorum was lost mid-game; wait for it again.
	}
}

// awaitQuorum polls until the roster reaches the minimum player count.
// Returns false when the loop should exit instead.
func (s *Scheduler) awaitQuorum(ctx context.Context) bool {
	for {
		if ctx.Err() != nil || !s.state.Active() {
			return false
		}
		n := s.state.RosterLen()
		if n == 0 {
			return false
		}
		if n >= s.cfg.MinPlayers {
			return true
		}
		select {
		case <-ctx.Done():
			return false
		case <-time.After(s.cfg.QuorumPoll):
		}
	}
}

// ensureCase generates the narrative payload if the room does not have one
// yet, and announces game start once per scheduler instance. On a
// generation failure the room is left in its pre-generation shape so that
// the next start attempt retries.
func (s *Scheduler) ensureCase(ctx context.Context) bool {
	if s.state.Case().Empty() {
		log.Printf("[Scheduler] Room %s: generating case\n", s.roomID)
		c, err := s.source.CreateCase(ctx, s.state.Difficulty(), s.state.Scenario())
		if err != nil {
			log.Printf("[Scheduler] Room %s: case generation failed: %v\n", s.roomID, err)
			s.hub.Broadcast(s.roomID, events.Error("case generation failed: "+err.Error()))
			return false
		}
		if c.CaseID == "" || c.CaseID == "ERRO" {
			c.CaseID = s.roomID
		}
		s.state.SetCase(c)
	}
	if !s.announced {
		s.announced = true
		s.hub.Broadcast(s.roomID, events.GameStart(s.state.Case()))
	}
	return true
}

// runTurns announces turns until an exit condition is observed. Returns
// true when the roster merely dropped below quorum (the caller re-awaits),
// false when the loop should exit for good.
func (s *Scheduler) runTurns(ctx context.Context) bool {
	limitSecs := int(s.cfg.TurnDuration / time.Second)
	for {
		if ctx.Err() != nil || !s.state.Active() {
			return false
		}
		n := s.state.RosterLen()
		if n == 0 {
			return false
		}
		if n < s.cfg.MinPlayers {
			return true
		}

		slot, ok := s.state.CurrentSlot()
		if !ok {
			return false
		}

		// Drop any action left over from the previous turn, then wait.
		s.signal.Clear()
		s.hub.Broadcast(s.roomID, events.TurnStart(slot, limitSecs))

		if s.signal.WaitOrTimeout(s.cfg.TurnDuration) {
			s.hub.Broadcast(s.roomID, events.PlayerAction(slot))
		} else {
			s.hub.Broadcast(s.roomID, events.TimeOut(slot))
		}
		s.state.AdvanceTurn()

		// Short pacing delay between turns.
		select {
		case <-ctx.Done():
			return false
		case <-time.After(s.cfg.TurnGap):
		}
	}
}
