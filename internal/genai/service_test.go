package genai

import (
	"context"
	"deadlytruth/internal/game"
	"errors"
	"strings"
	"testing"
)

func caseFixture() game.Case {
	return game.Case{
		CaseID:   "caso-fix",
		Scenario: "Mansão",
		Players:  []game.Suspect{{ID: 1, Name: "Ana"}, {ID: 2, Name: "Beatriz"}},
	}
}

type fakeGenerator struct {
	response   string
	err        error
	lastPrompt string
	lastSystem string
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt, system string) (string, error) {
	f.lastPrompt = prompt
	f.lastSystem = system
	return f.response, f.err
}

func TestService_CreateCase(t *testing.T) {
	gen := &fakeGenerator{response: `{"case_id": "caso-7", "culpado_id": 2}`}
	svc := NewService(gen, 12)

	c, err := svc.CreateCase(context.Background(), "Iniciante", "Teatro")
	if err != nil {
		t.Fatal(err)
	}
	if c.CaseID != "caso-7" {
		t.Errorf("CaseID = %q, want %q", c.CaseID, "caso-7")
	}
	// Missing fields are backfilled from the request.
	if c.Difficulty != "Iniciante" {
		t.Errorf("Difficulty = %q, want %q", c.Difficulty, "Iniciante")
	}
	if c.Scenario != "Teatro" {
		t.Errorf("Scenario = %q, want %q", c.Scenario, "Teatro")
	}
	if !strings.Contains(gen.lastPrompt, "Teatro") {
		t.Error("prompt does not mention the requested scenario")
	}
	if gen.lastSystem == "" {
		t.Error("case generation should use the game master system prompt")
	}
}

func TestService_CreateCase_GeneratorError(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("timeout")}
	svc := NewService(gen, 12)

	if _, err := svc.CreateCase(context.Background(), "Iniciante", "Mansão"); err == nil {
		t.Fatal("CreateCase() = nil error, want the generator failure surfaced")
	}
}

func TestService_Interrogate(t *testing.T) {
	gen := &fakeGenerator{response: `{"resposta": "Estava no jardim.", "sinais_nao_verbais": "olha para baixo"}`}
	svc := NewService(gen, 12)

	entry, err := svc.Interrogate(context.Background(), caseFixture(), "Beatriz", "Onde você estava?", "Iniciante")
	if err != nil {
		t.Fatal(err)
	}
	if entry.Suspect != "Beatriz" {
		t.Errorf("Suspect = %q, want the requested suspect", entry.Suspect)
	}
	if entry.Question != "Onde você estava?" {
		t.Errorf("Question = %q, want the asked question", entry.Question)
	}
	if entry.Answer != "Estava no jardim." {
		t.Errorf("Answer = %q", entry.Answer)
	}
	if !strings.Contains(gen.lastPrompt, "Beatriz") {
		t.Error("prompt does not mention the suspect")
	}
	if !strings.Contains(gen.lastPrompt, "caso-fix") {
		t.Error("prompt does not embed the case summary")
	}
}

func TestService_Interrogate_GeneratorError(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("401 unauthorized")}
	svc := NewService(gen, 12)

	if _, err := svc.Interrogate(context.Background(), caseFixture(), "Ana", "Quem?", "Iniciante"); err == nil {
		t.Fatal("Interrogate() = nil error, want the generator failure surfaced")
	}
}
