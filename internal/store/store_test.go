package store

import (
	"context"
	"testing"
)

func openTest(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestRead_MissingKeyReturnsDefault(t *testing.T) {
	s := openTest(t)
	if got := Read(s, "nope", "fallback"); got != "fallback" {
		t.Fatalf("Read missing: got %q", got)
	}
}

func TestSetRead_RoundTrip(t *testing.T) {
	s := openTest(t)

	type rec struct {
		ID   int64  `json:"id"`
		Text string `json:"text"`
	}
	in := []rec{{ID: 1, Text: "one"}, {ID: 2, Text: "two"}}
	Set(s, "recs", in)

	out := Read(s, "recs", []rec(nil))
	if len(out) != 2 {
		t.Fatalf("expected 2 records, got %d", len(out))
	}
	if out[0] != in[0] || out[1] != in[1] {
		t.Fatalf("round trip mismatch: %+v", out)
	}
}

func TestRead_CorruptValueReturnsDefault(t *testing.T) {
	s := openTest(t)
	if err := s.setRaw("theme", []byte("{not json")); err != nil {
		t.Fatalf("setRaw: %v", err)
	}
	if got := Read(s, "theme", "light"); got != "light" {
		t.Fatalf("Read corrupt: got %q", got)
	}
}

func TestUpdate_AppliesTransform(t *testing.T) {
	s := openTest(t)
	Set(s, "n", 41)
	got := Update(s, "n", 0, func(n int) int { return n + 1 })
	if got != 42 {
		t.Fatalf("Update returned %d", got)
	}
	if v := Read(s, "n", 0); v != 42 {
		t.Fatalf("persisted %d", v)
	}
}

func TestUpdate_MissingKeySeesDefault(t *testing.T) {
	s := openTest(t)
	got := Update(s, "n", 10, func(n int) int { return n * 2 })
	if got != 20 {
		t.Fatalf("Update returned %d", got)
	}
}

func TestSet_FailureLeavesPriorValue(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(context.Background(), dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	Set(s, "k", "before")
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// Writes against a closed handle are swallowed, not propagated.
	Set(s, "k", "after")

	s2, err := Open(context.Background(), dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s2.Close()
	if got := Read(s2, "k", ""); got != "before" {
		t.Fatalf("prior value clobbered: got %q", got)
	}
}

func TestRead_LastWriteWins(t *testing.T) {
	s := openTest(t)
	Set(s, KeyTheme, "light")
	Set(s, KeyTheme, "dark")
	if got := Read(s, KeyTheme, ""); got != "dark" {
		t.Fatalf("got %q", got)
	}
}
