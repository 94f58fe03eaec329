package genai

import (
	"encoding/json"
	"log"
	"regexp"

	"deadlytruth/internal/game"
	"deadlytruth/internal/utility"

	"github.com/go-playground/validator/v10"
)

// Generator output is untrusted text. The parsers below never fail: when
// the text is not the expected JSON they return a fallback record with
// explicit error markers, so a bad generation degrades a turn instead of
// breaking it.

var (
	fencedJSON = regexp.MustCompile("(?s)```json\\s*(.*?)\\s*```")
	validate   = validator.New()
)

// extractJSON pulls the JSON body out of text, preferring a fenced
// ```json``` block over the raw string.
func extractJSON(text string) []byte {
	if m := fencedJSON.FindStringSubmatch(text); m != nil {
		return []byte(m[1])
	}
	return []byte(text)
}

// ParseCase decodes a generated case payload. Unparseable text yields a
// marker case carrying the raw text as its description; a payload that
// decodes but fails validation is kept as-is.
func ParseCase(text string) game.Case {
	var c game.Case
	if err := json.Unmarshal(extractJSON(text), &c); err != nil {
		log.Printf("[GenAI] Case extraction failed: %v\n", err)
		return game.Case{
			CaseID:      "ERRO",
			Difficulty:  game.DefaultDifficulty,
			Description: utility.Truncate(text, 500),
		}
	}
	if err := validate.Struct(c); err != nil {
		log.Printf("[GenAI] Case validation failed: %v (keeping raw data)\n", err)
	}
	return c
}

// ParseInterrogation decodes a generated interrogation answer, filling
// defaults for any missing field as the game master contract promises them.
func ParseInterrogation(text string) game.ChatEntry {
	var e game.ChatEntry
	if err := json.Unmarshal(extractJSON(text), &e); err != nil {
		log.Printf("[GenAI] Interrogation extraction failed: %v\n", err)
		return fallbackEntry(text)
	}
	if err := validate.Struct(e); err != nil {
		log.Printf("[GenAI] Interrogation validation failed: %v (keeping raw data)\n", err)
	}
	if e.Suspect == "" {
		e.Suspect = "Desconhecido"
	}
	if e.Answer == "" {
		e.Answer = utility.Truncate(text, 500)
	}
	if e.NonVerbalCues == "" {
		e.NonVerbalCues = "Não detectados"
	}
	if e.Inconsistencies == nil {
		e.Inconsistencies = []string{}
	}
	if e.SuggestedClues == nil {
		e.SuggestedClues = []string{}
	}
	return e
}

func fallbackEntry(text string) game.ChatEntry {
	return game.ChatEntry{
		Suspect:         "Desconhecido",
		Answer:          utility.Truncate(text, 500),
		NonVerbalCues:   "Não detectados",
		Inconsistencies: []string{},
		SuggestedClues:  []string{},
	}
}
