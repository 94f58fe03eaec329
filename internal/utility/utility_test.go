package utility

import "testing"

func TestTruncate(t *testing.T) {
	if got := Truncate("hello", 10); got != "hello" {
		t.Errorf("Truncate(%q, 10) = %q, want unchanged", "hello", got)
	}
	if got := Truncate("hello", 3); got != "hel" {
		t.Errorf("Truncate(%q, 3) = %q, want %q", "hello", got, "hel")
	}
	if got := Truncate("hello", 0); got != "" {
		t.Errorf("Truncate(%q, 0) = %q, want empty", "hello", got)
	}
}

func TestTruncate_MultibyteSafe(t *testing.T) {
	// Must cut on rune boundaries, not bytes.
	s := "Mansão à noite"
	got := Truncate(s, 6)
	if got != "Mansão" {
		t.Errorf("Truncate(%q, 6) = %q, want %q", s, got, "Mansão")
	}
}
