package app

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/patrickprogramme/captools/internal/cleaner"
	"github.com/patrickprogramme/captools/internal/config"
	"github.com/patrickprogramme/captools/internal/fetch"
	"github.com/patrickprogramme/captools/internal/logging"
	"github.com/patrickprogramme/captools/pkg/model"
)

type fakeUI struct {
	infos       []string
	errs        []string
	interactive bool
	confirm     bool
	asked       int
}

func (f *fakeUI) PrintInfo(ctx context.Context, s string)  { f.infos = append(f.infos, s) }
func (f *fakeUI) PrintError(ctx context.Context, s string) { f.errs = append(f.errs, s) }
func (f *fakeUI) IsInteractive() bool                      { return f.interactive }

func (f *fakeUI) Confirm(ctx context.Context, question string) (bool, error) {
	f.asked++
	return f.confirm, nil
}

func (f *fakeUI) errorText() string { return strings.Join(f.errs, "\n") }

type fakeClipboard struct {
	content  string
	readErr  error
	writeErr error
	written  string
}

func (c *fakeClipboard) ReadAll() (string, error) { return c.content, c.readErr }

func (c *fakeClipboard) WriteAll(text string) error {
	if c.writeErr != nil {
		return c.writeErr
	}
	c.written = text
	return nil
}

type fakeSource struct {
	tracks model.CaptionTracks
	vtt    string
	urls   []string
}

func (f *fakeSource) CaptionLanguages(ctx context.Context, url string) (model.CaptionTracks, error) {
	f.urls = append(f.urls, url)
	return f.tracks, nil
}

func (f *fakeSource) DownloadCaption(ctx context.Context, url string, req model.CaptionRequest) error {
	return os.WriteFile(filepath.Join(req.Dir, req.ExpectedFilename()), []byte(f.vtt), 0o644)
}

func newTestApp(t *testing.T, u *fakeUI, clip *fakeClipboard, src fetch.Source) *App {
	t.Helper()
	cfg := config.Default()
	cfg.Fetch.TempDir = t.TempDir()
	a := New(cfg, u, logging.Discard())
	a.clip = clip
	a.newSource = func(ctx context.Context, cfg *config.Config, logger *slog.Logger) (fetch.Source, error) {
		if src == nil {
			return nil, errors.New("yt-dlp introuvable")
		}
		return src, nil
	}
	return a
}

const rawCaptions = "<00:00:01.000><c>hello</c> there.\nhello there.\nHow are you? Fine. Good. Done."

func TestClean_WritesOutputAndCopies(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "captions_en.txt")
	out := filepath.Join(dir, "cleaned.txt")
	if err := os.WriteFile(in, []byte(rawCaptions), 0o644); err != nil {
		t.Fatal(err)
	}

	u := &fakeUI{}
	clip := &fakeClipboard{}
	a := newTestApp(t, u, clip, nil)

	report, err := a.Clean(context.Background(), CleanOptions{Input: in, Output: out, Preview: true, Copy: true})
	if err != nil {
		t.Fatalf("Clean: %v", err)
	}

	want := cleaner.Clean(rawCaptions)
	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(got) != want || report.Text != want {
		t.Errorf("output = %q, want %q", got, want)
	}
	if clip.written != want {
		t.Errorf("clipboard = %q, want %q", clip.written, want)
	}
	if len(u.errs) != 0 {
		t.Errorf("unexpected errors: %v", u.errs)
	}
}

func TestClean_MissingInput(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "cleaned.txt")
	u := &fakeUI{}
	a := newTestApp(t, u, &fakeClipboard{}, nil)

	report, err := a.Clean(context.Background(), CleanOptions{Input: filepath.Join(dir, "absent.txt"), Output: out})
	if !errors.Is(err, cleaner.ErrInputNotFound) {
		t.Fatalf("err = %v, want ErrInputNotFound", err)
	}
	if report != (cleaner.Report{}) {
		t.Errorf("report should be empty: %+v", report)
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Errorf("output file should not exist")
	}
	if !strings.Contains(u.errorText(), "répertoire courant") {
		t.Errorf("missing hint in %q", u.errorText())
	}
}

func TestClean_CopyFailureIsWarning(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	if err := os.WriteFile(in, []byte(rawCaptions), 0o644); err != nil {
		t.Fatal(err)
	}
	u := &fakeUI{}
	a := newTestApp(t, u, &fakeClipboard{writeErr: errors.New("no xclip")}, nil)

	if _, err := a.Clean(context.Background(), CleanOptions{Input: in, Output: filepath.Join(dir, "out.txt"), Copy: true}); err != nil {
		t.Fatalf("Clean: %v", err)
	}
	if !strings.Contains(u.errorText(), "warning") {
		t.Errorf("expected a warning, got %q", u.errorText())
	}
}

func TestPreview_MissingInput(t *testing.T) {
	u := &fakeUI{}
	a := newTestApp(t, u, &fakeClipboard{}, nil)

	err := a.Preview(context.Background(), filepath.Join(t.TempDir(), "absent.txt"), 5)
	if !errors.Is(err, cleaner.ErrInputNotFound) {
		t.Fatalf("err = %v, want ErrInputNotFound", err)
	}
	if len(u.errs) != 1 {
		t.Errorf("errs = %v", u.errs)
	}
}

const captionVTT = "WEBVTT\n\n00:00:00.000 --> 00:00:01.000\nhello world\n"

func TestFetch_SaveModes(t *testing.T) {
	tests := []struct {
		name        string
		mode        SaveMode
		interactive bool
		confirm     bool
		wantSaved   bool
		wantAsked   int
	}{
		{name: "always", mode: SaveAlways, wantSaved: true},
		{name: "never", mode: SaveNever, interactive: true, confirm: true},
		{name: "ask non interactive", mode: SaveAsk},
		{name: "ask yes", mode: SaveAsk, interactive: true, confirm: true, wantSaved: true, wantAsked: 1},
		{name: "ask no", mode: SaveAsk, interactive: true, wantAsked: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := &fakeUI{interactive: tt.interactive, confirm: tt.confirm}
			src := &fakeSource{tracks: model.CaptionTracks{Title: "Demo", Automatic: []string{"en"}}, vtt: captionVTT}
			a := newTestApp(t, u, &fakeClipboard{}, src)
			out := filepath.Join(t.TempDir(), "captions_en.txt")

			res, err := a.Fetch(context.Background(), FetchOptions{URL: "https://youtu.be/abc", Lang: "en", Save: tt.mode, Output: out})
			if err != nil {
				t.Fatalf("Fetch: %v", err)
			}
			if res.Text != "hello world" || res.Title != "Demo" {
				t.Errorf("result = %+v", res)
			}
			_, statErr := os.Stat(out)
			if saved := statErr == nil; saved != tt.wantSaved {
				t.Errorf("saved = %v, want %v", saved, tt.wantSaved)
			}
			if u.asked != tt.wantAsked {
				t.Errorf("asked = %d, want %d", u.asked, tt.wantAsked)
			}
		})
	}
}

func TestFetch_LanguageUnavailable(t *testing.T) {
	u := &fakeUI{}
	src := &fakeSource{tracks: model.CaptionTracks{Title: "Demo video", Manual: []string{"fr"}, Automatic: []string{"de"}}}
	a := newTestApp(t, u, &fakeClipboard{}, src)

	res, err := a.Fetch(context.Background(), FetchOptions{URL: "https://youtu.be/abc", Lang: "en", Save: SaveAlways})
	if !errors.Is(err, fetch.ErrLanguageUnavailable) {
		t.Fatalf("err = %v", err)
	}
	if res != (fetch.Result{}) {
		t.Errorf("result should be empty: %+v", res)
	}
	if !strings.Contains(u.errorText(), "[fr de]") {
		t.Errorf("available languages not reported: %q", u.errorText())
	}
	if !strings.Contains(strings.Join(u.infos, "\n"), `"Demo video"`) {
		t.Errorf("title not shown: %q", u.infos)
	}
}

func TestFetch_SourceInitError(t *testing.T) {
	u := &fakeUI{}
	a := newTestApp(t, u, &fakeClipboard{}, nil)

	if _, err := a.Fetch(context.Background(), FetchOptions{URL: "https://youtu.be/abc"}); err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(u.errorText(), "yt-dlp introuvable") {
		t.Errorf("errs = %q", u.errorText())
	}
}

func TestResolveURL_DefaultConfigIgnoresClipboard(t *testing.T) {
	clip := &fakeClipboard{content: "https://www.youtube.com/watch?v=clip"}
	a := newTestApp(t, &fakeUI{}, clip, nil)

	if got := a.resolveURL(context.Background(), ""); got != config.DefaultURL {
		t.Errorf("resolveURL = %q, want %q", got, config.DefaultURL)
	}
}

func TestResolveURL(t *testing.T) {
	const clipURL = "https://www.youtube.com/watch?v=clip"
	tests := []struct {
		name         string
		arg          string
		clip         *fakeClipboard
		useClipboard bool
		want         string
	}{
		{name: "argument first", arg: "https://youtu.be/arg", clip: &fakeClipboard{content: clipURL}, useClipboard: true, want: "https://youtu.be/arg"},
		{name: "clipboard url", clip: &fakeClipboard{content: clipURL}, useClipboard: true, want: clipURL},
		{name: "clipboard not a url", clip: &fakeClipboard{content: "hello"}, useClipboard: true, want: config.DefaultURL},
		{name: "clipboard error", clip: &fakeClipboard{readErr: errors.New("x")}, useClipboard: true, want: config.DefaultURL},
		{name: "clipboard disabled", clip: &fakeClipboard{content: clipURL}, want: config.DefaultURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestApp(t, &fakeUI{}, tt.clip, nil)
			a.cfg.Fetch.UseClipboardURL = tt.useClipboard
			if got := a.resolveURL(context.Background(), tt.arg); got != tt.want {
				t.Errorf("resolveURL = %q, want %q", got, tt.want)
			}
		})
	}
}
