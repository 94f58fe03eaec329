package game

import "time"

// ActionSignal is a per-room, single-slot wake-up event used to end a turn
// window early. It is edge-triggered and auto-clearing: repeated signals
// while one is pending collapse into a single wake, so a player who acts
// twice in one window cannot skip a later turn.
//
// The signal belongs to the room, not to the slot whose turn it is: any
// player's action ends the current window.
type ActionSignal struct {
	ch chan struct{}
}

func NewActionSignal() *ActionSignal {
	return &ActionSignal{ch: make(chan struct{}, 1)}
}

// Signal trips the event. No-op while already signaled.
func (s *ActionSignal) Signal() {
	select {
	case s.ch <- struct{}{}:
	default:
	}
}

// Clear drops any pending signal so a stale action from a previous turn
// cannot end the next one.
func (s *ActionSignal) Clear() {
	select {
	case <-s.ch:
	default:
	}
}

// WaitOrTimeout blocks until the signal fires or d elapses, reporting which
// occurred. A pending signal is consumed before returning true. A
// non-positive duration still honors an already-pending signal.
func (s *ActionSignal) WaitOrTimeout(d time.Duration) bool {
	if d <= 0 {
		select {
		case <-s.ch:
			return true
		default:
			return false
		}
	}

	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-s.ch:
		return true
	case <-timer.C:
		return false
	}
}
