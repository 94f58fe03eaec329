package genai

import (
	"context"
	"encoding/json"
	"fmt"

	"deadlytruth/internal/game"
	"deadlytruth/internal/utility"
)

// Service turns generator text into the structured records the game
// consumes. It is constructed once at startup with an explicit Generator
// dependency.
type Service struct {
	gen        Generator
	numPlayers int
}

func NewService(gen Generator, numPlayers int) *Service {
	return &Service{gen: gen, numPlayers: numPlayers}
}

// CreateCase generates a full case for a room. A transport or
// configuration failure surfaces as an error and leaves nothing behind;
// unparseable output degrades to a marker case instead.
func (s *Service) CreateCase(ctx context.Context, difficulty, scenario string) (game.Case, error) {
	raw, err := s.gen.Generate(ctx, CasePrompt(s.numPlayers, scenario, difficulty), systemGameMaster)
	if err != nil {
		return game.Case{}, fmt.Errorf("generating case: %w", err)
	}

	c := ParseCase(raw)
	if c.Difficulty == "" {
		c.Difficulty = difficulty
	}
	if c.Scenario == "" {
		c.Scenario = scenario
	}
	return c, nil
}

// Interrogate asks the game master to answer a question in a suspect's
// voice, keeping the prompt context short with a truncated case summary.
func (s *Service) Interrogate(ctx context.Context, c game.Case, suspect, question, difficulty string) (game.ChatEntry, error) {
	summary, err := json.Marshal(c)
	if err != nil {
		return game.ChatEntry{}, fmt.Errorf("summarizing case: %w", err)
	}

	prompt := InterrogationPrompt(utility.Truncate(string(summary), 2000), suspect, question, difficulty)
	raw, err := s.gen.Generate(ctx, prompt, systemGameMaster)
	if err != nil {
		return game.ChatEntry{}, fmt.Errorf("generating interrogation answer: %w", err)
	}

	entry := ParseInterrogation(raw)
	entry.Suspect = suspect
	entry.Question = question
	return entry, nil
}
