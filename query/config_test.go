package query

import "testing"

func TestDefaultConfigNormalize(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.normalize("  Foo  "); got != "foo" {
		t.Fatalf("normalize = %q, want %q", got, "foo")
	}
}

func TestNormalizeRejectsShortAndTruncatesLong(t *testing.T) {
	cfg := &ParserConfig{MinWordLength: 3, MaxWordLength: 5, Language: noStopWords{}}
	if got := cfg.normalize("ab"); got != "" {
		t.Fatalf("normalize(too short) = %q, want empty", got)
	}
	if got := cfg.normalize("abcdefgh"); got != "abcde" {
		t.Fatalf("normalize(too long) = %q, want truncated %q", got, "abcde")
	}
	if got := cfg.normalize("abcd"); got != "abcd" {
		t.Fatalf("normalize(in bounds) = %q, want %q", got, "abcd")
	}
}

func TestNormalizeZeroBoundsDefaultToPermissive(t *testing.T) {
	cfg := &ParserConfig{Language: noStopWords{}}
	if got := cfg.normalize("x"); got != "x" {
		t.Fatalf("normalize = %q, want %q", got, "x")
	}
}
