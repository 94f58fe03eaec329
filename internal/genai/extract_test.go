package genai

import (
	"strings"
	"testing"
)

func TestParseCase_FencedBlock(t *testing.T) {
	text := "Aqui está o caso:\n```json\n{\"case_id\": \"abc\", \"cenario\": \"Praia\", \"culpado_id\": 3, \"jogadores\": [{\"id\": 1, \"nome\": \"Ana\"}]}\n```\nBoa sorte."

	c := ParseCase(text)
	if c.CaseID != "abc" {
		t.Errorf("CaseID = %q, want %q", c.CaseID, "abc")
	}
	if c.Scenario != "Praia" {
		t.Errorf("Scenario = %q, want %q", c.Scenario, "Praia")
	}
	if c.CulpritID != 3 {
		t.Errorf("CulpritID = %d, want 3", c.CulpritID)
	}
	if len(c.Players) != 1 || c.Players[0].Name != "Ana" {
		t.Errorf("Players = %+v, want one named Ana", c.Players)
	}
}

func TestParseCase_DirectJSON(t *testing.T) {
	c := ParseCase(`{"case_id": "xyz", "nivel": "Detetive"}`)
	if c.CaseID != "xyz" {
		t.Errorf("CaseID = %q, want %q", c.CaseID, "xyz")
	}
	if c.Difficulty != "Detetive" {
		t.Errorf("Difficulty = %q, want %q", c.Difficulty, "Detetive")
	}
}

func TestParseCase_GarbageFallsBack(t *testing.T) {
	long := strings.Repeat("o mordomo fez isso ", 100)
	c := ParseCase(long)

	if c.CaseID != "ERRO" {
		t.Errorf("CaseID = %q, want the ERRO marker", c.CaseID)
	}
	if c.Description == "" {
		t.Error("fallback case should carry the raw text as description")
	}
	if n := len([]rune(c.Description)); n > 500 {
		t.Errorf("fallback description is %d runes, want at most 500", n)
	}
}

func TestParseInterrogation_FillsDefaults(t *testing.T) {
	e := ParseInterrogation(`{"suspeito": "Carlos", "resposta": "Eu estava na cozinha."}`)
	if e.Suspect != "Carlos" {
		t.Errorf("Suspect = %q, want %q", e.Suspect, "Carlos")
	}
	if e.NonVerbalCues != "Não detectados" {
		t.Errorf("NonVerbalCues = %q, want the default", e.NonVerbalCues)
	}
	if e.Inconsistencies == nil || e.SuggestedClues == nil {
		t.Error("list fields should be non-nil after parsing")
	}
}

func TestParseInterrogation_GarbageFallsBack(t *testing.T) {
	e := ParseInterrogation("não sei responder isso")
	if e.Suspect != "Desconhecido" {
		t.Errorf("Suspect = %q, want %q", e.Suspect, "Desconhecido")
	}
	if e.Answer != "não sei responder isso" {
		t.Errorf("Answer = %q, want the raw text", e.Answer)
	}
}
