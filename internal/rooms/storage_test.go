package rooms

import (
	"errors"
	"testing"
)

func TestStore_Create(t *testing.T) {
	s := NewStore()
	room, err := s.Create("Iniciante", "Praia")
	if err != nil {
		t.Fatal(err)
	}
	if room.ID == "" {
		t.Error("room id should not be empty")
	}
	if room.State == nil {
		t.Error("room State should not be nil")
	}
	if room.Signal == nil {
		t.Error("room Signal should not be nil")
	}
	if room.State.Scenario() != "Praia" {
		t.Errorf("Scenario() = %q, want %q", room.State.Scenario(), "Praia")
	}
	if room.State.Difficulty() != "Iniciante" {
		t.Errorf("Difficulty() = %q, want %q", room.State.Difficulty(), "Iniciante")
	}
}

func TestStore_GetOrCreate(t *testing.T) {
	s := NewStore()

	room := s.GetOrCreate("SALA1234")
	if room == nil {
		t.Fatal("GetOrCreate() returned nil")
	}
	if room.State.RosterLen() != 0 {
		t.Error("fresh room should have an empty roster")
	}

	again := s.GetOrCreate("SALA1234")
	if again != room {
		t.Error("GetOrCreate() should return the same room for the same id")
	}
}

func TestStore_Get(t *testing.T) {
	s := NewStore()
	room, _ := s.Create("", "")

	if got := s.Get(room.ID); got != room {
		t.Error("Get() did not return the created room")
	}
	if got := s.Get("NOPENOPE"); got != nil {
		t.Error("Get() should return nil for a nonexistent room")
	}
}

func TestStore_Mutate(t *testing.T) {
	s := NewStore()
	room, _ := s.Create("", "")

	err := s.Mutate(room.ID, func(r *Room) error {
		r.State.AssignSlot(12)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if room.State.RosterLen() != 1 {
		t.Error("mutation did not apply")
	}
}

func TestStore_Mutate_NotFound(t *testing.T) {
	s := NewStore()

	err := s.Mutate("MISSING1", func(r *Room) error {
		t.Fatal("fn must not run for a nonexistent room")
		return nil
	})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Mutate() error = %v, want ErrNotFound", err)
	}
}

func TestStore_Remove(t *testing.T) {
	s := NewStore()
	room, _ := s.Create("", "")

	s.Remove(room.ID)
	if s.Get(room.ID) != nil {
		t.Error("room still present after Remove()")
	}
	if len(s.List()) != 0 {
		t.Error("List() should be empty after removal")
	}
}

func TestStore_Create_UniqueIDs(t *testing.T) {
	s := NewStore()
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		room, err := s.Create("", "")
		if err != nil {
			t.Fatal(err)
		}
		if seen[room.ID] {
			t.Fatalf("duplicate room id %q", room.ID)
		}
		seen[room.ID] = true
	}
}
