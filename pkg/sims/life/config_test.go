package life

import (
	"slices"
	"testing"
	"time"
)

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{"size": "32", "interval_ms": "120", "workers": "4"})
	if c.Size != 32 || c.Interval != 120*time.Millisecond || c.Workers != 4 {
		t.Fatalf("unexpected config %+v", c)
	}

	c = FromMap(map[string]string{"size": "-1", "interval_ms": "fast", "workers": "0"})
	if c != DefaultConfig() {
		t.Fatalf("invalid values must keep defaults, got %+v", c)
	}
	if FromMap(nil) != DefaultConfig() {
		t.Fatal("nil map must yield defaults")
	}
}

func TestNewNormalizesConfig(t *testing.T) {
	g := New(Config{}, &recordSched{})
	if g.Config() != DefaultConfig() {
		t.Fatalf("zero config must be normalized, got %+v", g.Config())
	}
}

func TestPatternRegistry(t *testing.T) {
	names := PatternNames()
	for _, want := range []string{"blinker", "block", "glider"} {
		if !slices.Contains(names, want) {
			t.Fatalf("pattern %q not registered in %v", want, names)
		}
	}
	if !slices.IsSorted(names) {
		t.Fatalf("names not sorted: %v", names)
	}
}

func TestStatusVocabulary(t *testing.T) {
	keys := map[Status]string{
		StatusNormal:             "Normal",
		StatusNewGame:            "NewGame",
		StatusDeadBoard:          "DeadBoard",
		StatusInfiniteLoop:       "InfiniteLoop",
		StatusGenerationNotFound: "GenerationNotFound",
		StatusGenerationLoaded:   "GenerationLoaded",
	}
	for s, key := range keys {
		if s.String() != key {
			t.Fatalf("status %d key %q, expected %q", s, s.String(), key)
		}
		if s != StatusNormal && s.Message() == "" {
			t.Fatalf("status %s has no display text", key)
		}
	}
	if StatusNormal.Message() != "" {
		t.Fatal("normal status clears the message")
	}
}
