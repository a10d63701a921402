package text

import (
	"reflect"
	"strings"
	"testing"
)

func TestColorize(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		style   string
		enabled bool
		want    string
	}{
		{"disabled", "hello", StyleError, false, "hello"},
		{"enabled", "hello", StyleError, true, "\033[0;31mhello\033[0m"},
		{"unknown style", "hello", "sparkle", true, "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Colorize(tt.text, tt.style, tt.enabled); got != tt.want {
				t.Errorf("Colorize(%q, %q, %v) = %q, want %q", tt.text, tt.style, tt.enabled, got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"plain ascii", "plain ascii"},
		{"“quoted”", `"quoted"`},
		{"it’s", "it's"},
		{"wait—no", "wait--no"},
		{"and so…", "and so..."},
		{"café", "cafe"},
		{"Ærø", "Ærø"}, // No combining marks to strip
	}

	for _, tt := range tests {
		if got := Normalize(tt.input); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestWrapShortLineUnchanged(t *testing.T) {
	got := Wrap("hello world", 78)
	if !reflect.DeepEqual(got, []string{"hello world"}) {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestWrapPreservesExplicitBreaks(t *testing.T) {
	got := Wrap("one\ntwo\nthree", 78)
	want := []string{"one", "two", "three"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Wrap = %q, want %q", got, want)
	}
}

func TestWrapLongLine(t *testing.T) {
	line := strings.Repeat("word ", 30) // 150 chars
	got := Wrap(strings.TrimSpace(line), 20)

	if len(got) < 2 {
		t.Fatalf("expected multiple lines, got %q", got)
	}
	for i, out := range got {
		if len(out) > 20 {
			t.Errorf("line %d exceeds width: %q", i, out)
		}
	}
	if strings.Join(got, " ") != strings.TrimSpace(line) {
		t.Error("wrapping should not lose or reorder words")
	}
}

func TestWrapOverlongWordLeftIntact(t *testing.T) {
	word := strings.Repeat("x", 30)
	got := Wrap("a "+word, 20)
	want := []string{"a", word}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Wrap = %q, want %q", got, want)
	}
}
