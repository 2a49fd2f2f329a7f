package transcript

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

// testVideo wires a fake watch page and caption endpoint together.
type testVideo struct {
	videoID string
	tracks  []captionTrack
	// captions maps a track language code to its json3 payload.
	captions map[string]string
	// noCaptions serves a watch page without a captions block.
	noCaptions bool
	// failWatch makes the watch page return HTTP 500.
	failWatch bool
	// failTrack makes the caption endpoint return HTTP 500.
	failTrack bool
}

// newTestClient starts a server for the fake video and returns a client
// pointed at it.
func newTestClient(t *testing.T, video *testVideo) *Client {
	t.Helper()

	mux := http.NewServeMux()
	var serverURL string

	mux.HandleFunc("/watch", func(w http.ResponseWriter, r *http.Request) {
		if video.failWatch {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		if r.URL.Query().Get("v") != video.videoID || video.noCaptions {
			fmt.Fprint(w, `<html><body>var ytInitialPlayerResponse = {"playabilityStatus":{"status":"ERROR"}};</body></html>`)
			return
		}

		tracks := make([]captionTrack, len(video.tracks))
		copy(tracks, video.tracks)
		for i := range tracks {
			tracks[i].BaseURL = serverURL + "/api/timedtext?v=" + video.videoID + "&lang=" + tracks[i].LanguageCode
		}
		data, _ := json.Marshal(tracks)
		fmt.Fprintf(w, `<html><body>var ytInitialPlayerResponse = {"captions":{"playerCaptionsTracklistRenderer":{"captionTracks":%s}}};</body></html>`, data)
	})

	mux.HandleFunc("/api/timedtext", func(w http.ResponseWriter, r *http.Request) {
		if video.failTrack {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		if r.URL.Query().Get("fmt") != "json3" {
			http.Error(w, "unsupported format", http.StatusBadRequest)
			return
		}
		payload, ok := video.captions[r.URL.Query().Get("lang")]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, payload)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	serverURL = server.URL

	client := NewClient(0)
	client.watchBase = server.URL + "/watch"
	t.Cleanup(func() { client.Close() })
	return client
}

const englishJSON3 = `{"events":[
	{"tStartMs":0,"dDurationMs":1000},
	{"tStartMs":0,"dDurationMs":2000,"segs":[{"utf8":"Hello"},{"utf8":" world"}]},
	{"tStartMs":2000,"dDurationMs":1500,"segs":[{"utf8":"\n"}]},
	{"tStartMs":3500,"dDurationMs":2000,"segs":[{"utf8":"this  is"}]},
	{"tStartMs":5500,"dDurationMs":1000,"segs":[{"utf8":"a test"}]}
]}`

func TestFetchJoinsSegmentsInOrder(t *testing.T) {
	client := newTestClient(t, &testVideo{
		videoID:  "vid1",
		tracks:   []captionTrack{{LanguageCode: "en"}},
		captions: map[string]string{"en": englishJSON3},
	})

	transcript, err := client.Fetch(context.Background(), "vid1", nil)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	if transcript.VideoID != "vid1" {
		t.Errorf("VideoID = %q, want %q", transcript.VideoID, "vid1")
	}
	if transcript.Language != "en" {
		t.Errorf("Language = %q, want %q", transcript.Language, "en")
	}
	if want := "Hello world this is a test"; transcript.Text != want {
		t.Errorf("Text = %q, want %q", transcript.Text, want)
	}

	// Segments preserve start-time order; styling and blank events are gone.
	if len(transcript.Segments) != 3 {
		t.Fatalf("len(Segments) = %d, want 3", len(transcript.Segments))
	}
	for i := 1; i < len(transcript.Segments); i++ {
		if transcript.Segments[i].Start < transcript.Segments[i-1].Start {
			t.Errorf("Segments out of start order: %v", transcript.Segments)
		}
	}
}

func TestFetchNoCaptionsIsNotAvailable(t *testing.T) {
	client := newTestClient(t, &testVideo{videoID: "vid1", noCaptions: true})

	_, err := client.Fetch(context.Background(), "vid1", nil)
	if !errors.Is(err, ErrNotAvailable) {
		t.Fatalf("Fetch() error = %v, want ErrNotAvailable", err)
	}
}

func TestFetchUnknownVideoIsNotAvailable(t *testing.T) {
	client := newTestClient(t, &testVideo{
		videoID:  "vid1",
		tracks:   []captionTrack{{LanguageCode: "en"}},
		captions: map[string]string{"en": englishJSON3},
	})

	_, err := client.Fetch(context.Background(), "ghost", nil)
	if !errors.Is(err, ErrNotAvailable) {
		t.Fatalf("Fetch() error = %v, want ErrNotAvailable", err)
	}
}

func TestFetchLanguagePreference(t *testing.T) {
	video := &testVideo{
		videoID: "vid1",
		tracks: []captionTrack{
			{LanguageCode: "en", Kind: "asr"},
			{LanguageCode: "es"},
		},
		captions: map[string]string{
			"en": `{"events":[{"tStartMs":0,"dDurationMs":1000,"segs":[{"utf8":"english"}]}]}`,
			"es": `{"events":[{"tStartMs":0,"dDurationMs":1000,"segs":[{"utf8":"spanish"}]}]}`,
		},
	}

	tests := []struct {
		name      string
		languages []string
		wantLang  string
		wantText  string
	}{
		{"first preference wins", []string{"es", "en"}, "es", "spanish"},
		{"asr used when only match", []string{"en"}, "en", "english"},
		{"nil prefers manual track", nil, "es", "spanish"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, video)
			transcript, err := client.Fetch(context.Background(), "vid1", tt.languages)
			if err != nil {
				t.Fatalf("Fetch() error = %v", err)
			}
			if transcript.Language != tt.wantLang {
				t.Errorf("Language = %q, want %q", transcript.Language, tt.wantLang)
			}
			if transcript.Text != tt.wantText {
				t.Errorf("Text = %q, want %q", transcript.Text, tt.wantText)
			}
		})
	}
}

func TestFetchLanguageNotAvailable(t *testing.T) {
	client := newTestClient(t, &testVideo{
		videoID:  "vid1",
		tracks:   []captionTrack{{LanguageCode: "en"}},
		captions: map[string]string{"en": englishJSON3},
	})

	_, err := client.Fetch(context.Background(), "vid1", []string{"de"})
	if !errors.Is(err, ErrNotAvailable) {
		t.Fatalf("Fetch() error = %v, want ErrNotAvailable", err)
	}
}

func TestFetchWatchPageTransportFailure(t *testing.T) {
	client := newTestClient(t, &testVideo{videoID: "vid1", failWatch: true})

	_, err := client.Fetch(context.Background(), "vid1", nil)
	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("Fetch() error = %v, want *FetchError", err)
	}
	if errors.Is(err, ErrNotAvailable) {
		t.Error("transport failure must not be classified as ErrNotAvailable")
	}
	if fetchErr.VideoID != "vid1" {
		t.Errorf("FetchError.VideoID = %q, want %q", fetchErr.VideoID, "vid1")
	}
}

func TestFetchTrackTransportFailure(t *testing.T) {
	client := newTestClient(t, &testVideo{
		videoID:   "vid1",
		tracks:    []captionTrack{{LanguageCode: "en"}},
		captions:  map[string]string{"en": englishJSON3},
		failTrack: true,
	})

	_, err := client.Fetch(context.Background(), "vid1", nil)
	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("Fetch() error = %v, want *FetchError", err)
	}
}

func TestFetchEmptyVideoID(t *testing.T) {
	client := NewClient(0)
	defer client.Close()

	if _, err := client.Fetch(context.Background(), "", nil); err == nil {
		t.Fatal("Fetch(\"\") error = nil, want error")
	}
}

func TestSelectTrack(t *testing.T) {
	tracks := []captionTrack{
		{LanguageCode: "en", Kind: "asr"},
		{LanguageCode: "en-US"},
		{LanguageCode: "fr"},
	}

	tests := []struct {
		name      string
		languages []string
		wantCode  string
		wantKind  string
		wantErr   bool
	}{
		{"exact manual match", []string{"fr"}, "fr", "", false},
		{"regional variant satisfies bare code", []string{"en"}, "en-US", "", false},
		{"exact beats variant ordering", []string{"en-US"}, "en-US", "", false},
		{"second preference used", []string{"de", "fr"}, "fr", "", false},
		{"no match", []string{"de"}, "", "", true},
		{"empty prefers manual", nil, "en-US", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			track, err := selectTrack(tracks, tt.languages)
			if (err != nil) != tt.wantErr {
				t.Fatalf("selectTrack() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrNotAvailable) {
					t.Errorf("selectTrack() error = %v, want ErrNotAvailable", err)
				}
				return
			}
			if track.LanguageCode != tt.wantCode {
				t.Errorf("LanguageCode = %q, want %q", track.LanguageCode, tt.wantCode)
			}
			if track.Kind != tt.wantKind {
				t.Errorf("Kind = %q, want %q", track.Kind, tt.wantKind)
			}
		})
	}
}

func TestSelectTrackOnlyASR(t *testing.T) {
	tracks := []captionTrack{{LanguageCode: "en", Kind: "asr"}}

	track, err := selectTrack(tracks, nil)
	if err != nil {
		t.Fatalf("selectTrack() error = %v", err)
	}
	if track.Kind != "asr" {
		t.Errorf("Kind = %q, want asr track as last resort", track.Kind)
	}
}

func TestParseJSON3(t *testing.T) {
	segments, err := parseJSON3([]byte(englishJSON3))
	if err != nil {
		t.Fatalf("parseJSON3() error = %v", err)
	}
	if len(segments) != 3 {
		t.Fatalf("len(segments) = %d, want 3", len(segments))
	}
	if segments[0].Text != "Hello world" {
		t.Errorf("segments[0].Text = %q, want %q", segments[0].Text, "Hello world")
	}
	if segments[0].Start != 0 || segments[0].Duration != 2.0 {
		t.Errorf("segments[0] timing = (%v, %v), want (0, 2)", segments[0].Start, segments[0].Duration)
	}
	if segments[1].Start != 3.5 {
		t.Errorf("segments[1].Start = %v, want 3.5", segments[1].Start)
	}
}

func TestParseJSON3Invalid(t *testing.T) {
	if _, err := parseJSON3([]byte("not json")); err == nil {
		t.Fatal("parseJSON3() error = nil, want error")
	}
}

func TestJoinSegments(t *testing.T) {
	segments := []Segment{
		{Text: "  Hello \n world "},
		{Text: "again"},
	}
	if got, want := joinSegments(segments), "Hello world again"; got != want {
		t.Errorf("joinSegments() = %q, want %q", got, want)
	}
}
