package model

import (
	"reflect"
	"strings"
	"testing"
)

func TestCaptionTracks_Available(t *testing.T) {
	c := CaptionTracks{Manual: []string{"fr", "en"}, Automatic: []string{"en", "de"}}
	want := []string{"fr", "en", "en", "de"}
	if got := c.Available(); !reflect.DeepEqual(got, want) {
		t.Errorf("Available() = %v, want %v", got, want)
	}
}

func TestCaptionTracks_Pretty(t *testing.T) {
	tests := []struct {
		name   string
		tracks CaptionTracks
		want   []string
	}{
		{
			name:   "with languages",
			tracks: CaptionTracks{Title: "Demo", Manual: []string{"fr", "en"}, Automatic: []string{"de"}},
			want:   []string{`Title      : "Demo"`, "ManualSubs : fr, en", "AutoSubs   : de"},
		},
		{
			name:   "empty",
			tracks: CaptionTracks{},
			want:   []string{`Title      : "Unknown"`, "ManualSubs : (aucun)", "AutoSubs   : (aucun)"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.tracks.Pretty()
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("Pretty() = %q, missing %q", got, w)
				}
			}
		})
	}
}

func TestCaptionRequest_ExpectedFilename(t *testing.T) {
	req := CaptionRequest{Lang: "iw", Stem: "temp_subtitle"}
	if got := req.ExpectedFilename(); got != "temp_subtitle.iw.vtt" {
		t.Errorf("ExpectedFilename() = %q", got)
	}
}
