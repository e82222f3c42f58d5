package cleaner

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCleanFile_WritesOutput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "captions_en.txt")
	out := filepath.Join(dir, "cleaned_captions.txt")
	raw := "Hello world<01:13:29.320>. This is<c> great</c>!\nHello world<01:13:29.320>. This is<c> great</c>!"
	if err := os.WriteFile(in, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}

	rep, err := CleanFile(in, out)
	if err != nil {
		t.Fatalf("CleanFile: %v", err)
	}
	want := "Hello world. This is great!"
	if rep.Text != want {
		t.Fatalf("report text = %q; want %q", rep.Text, want)
	}
	if rep.OriginalLen != len([]rune(raw)) || rep.CleanedLen != len([]rune(want)) {
		t.Fatalf("lengths = %d/%d", rep.OriginalLen, rep.CleanedLen)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(data) != want {
		t.Fatalf("output file = %q; want %q", data, want)
	}
}

func TestCleanFile_MissingInput(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "cleaned_captions.txt")

	_, err := CleanFile(filepath.Join(dir, "absent.txt"), out)
	if !errors.Is(err, ErrInputNotFound) {
		t.Fatalf("expected ErrInputNotFound, got %v", err)
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Fatalf("output must not be written, stat err = %v", statErr)
	}
}

func TestPreview(t *testing.T) {
	raw := "WEBVTT\nline <c>one</c>\nline <c>one</c>\nTwo. Three. Four. Five. Six."
	p := Preview(raw, 2)
	if len(p.Original) != 2 || p.Original[0] != "WEBVTT" {
		t.Fatalf("original preview = %#v", p.Original)
	}
	if len(p.Cleaned) != 2 {
		t.Fatalf("cleaned preview = %#v", p.Cleaned)
	}
	if p.Cleaned[0] != "WEBVTT line one Two. Three. Four. Five." || p.Cleaned[1] != "" {
		t.Fatalf("cleaned preview = %#v", p.Cleaned)
	}

	if got := Preview("a\nb", 0); len(got.Original) != 2 {
		t.Fatalf("default preview should keep short inputs whole, got %#v", got.Original)
	}
}

func TestPreviewFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "captions_en.txt")
	if err := os.WriteFile(in, []byte("Hi <c>there</c> .\nHi <c>there</c> ."), 0o644); err != nil {
		t.Fatal(err)
	}
	before, _ := os.ReadFile(in)

	out, err := PreviewFile(in, 10)
	if err != nil {
		t.Fatalf("PreviewFile: %v", err)
	}
	for _, want := range []string{"ORIGINAL CONTENT", "CLEANED CONTENT", `"Hi there."`, `"Hi <c>there</c> ."`} {
		if !strings.Contains(out, want) {
			t.Errorf("preview missing %q:\n%s", want, out)
		}
	}
	after, _ := os.ReadFile(in)
	if string(before) != string(after) {
		t.Fatalf("preview must not modify the input file")
	}

	if _, err := PreviewFile(filepath.Join(dir, "nope.txt"), 10); !errors.Is(err, ErrInputNotFound) {
		t.Fatalf("expected ErrInputNotFound, got %v", err)
	}
}

func TestSample(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 500, "short"},
		{"abcdef", 3, "abc..."},
		{"éèàù", 2, "éè..."},
		{"abc", 0, "abc"},
	}
	for _, tc := range tests {
		if got := Sample(tc.in, tc.max); got != tc.want {
			t.Errorf("Sample(%q, %d) = %q; want %q", tc.in, tc.max, got, tc.want)
		}
	}
}
