// Package transcript fetches YouTube video transcripts.
//
// YouTube exposes caption tracks through the player response embedded in
// the watch page. Fetch loads that page, picks a track by language
// preference, downloads it in json3 form, and flattens the timed events
// into plain text.
package transcript

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	httpclient "ytscribe/http"
)

// ErrNotAvailable indicates no transcript exists for the video: captions
// are disabled, the video is gone, or no track matches the requested
// languages. Callers should treat it as "skip", not as a failure of the
// fetch machinery.
var ErrNotAvailable = errors.New("transcript: not available")

// FetchError wraps a transport failure while fetching a transcript.
// Genuine "no transcript exists" conditions are ErrNotAvailable instead.
type FetchError struct {
	// VideoID is the video whose transcript fetch failed.
	VideoID string
	// Err is the underlying error.
	Err error
}

// Error returns a string representation of the fetch error.
func (e *FetchError) Error() string {
	return "transcript: fetch " + e.VideoID + ": " + e.Err.Error()
}

// Unwrap returns the underlying error for use with errors.Is() and errors.As().
func (e *FetchError) Unwrap() error { return e.Err }

// Segment is a timed fragment of transcript text.
type Segment struct {
	// Text is the fragment text.
	Text string `json:"text"`
	// Start is the offset from the beginning of the video, in seconds.
	Start float64 `json:"start"`
	// Duration is how long the fragment is displayed, in seconds.
	Duration float64 `json:"duration"`
}

// Transcript is the full transcript of one video.
type Transcript struct {
	// VideoID is the video the transcript belongs to.
	VideoID string `json:"video_id"`
	// Language is the language code of the track actually fetched, which
	// may differ from the requested preference.
	Language string `json:"language"`
	// Segments are the timed fragments in start-time order.
	Segments []Segment `json:"segments"`
	// Text is the flattened transcript: segment texts joined with single
	// spaces, redundant whitespace removed.
	Text string `json:"text"`
}

// Client fetches transcripts from YouTube.
type Client struct {
	httpClient *httpclient.Client
	watchBase  string
}

// NewClient creates a transcript client. requestInterval spaces the
// underlying HTTP requests; zero disables pacing.
func NewClient(requestInterval time.Duration) *Client {
	return &Client{
		httpClient: httpclient.New(&httpclient.Config{
			Timeout:         30 * time.Second,
			UserAgent:       "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36",
			RequestInterval: requestInterval,
			Transport:       httpclient.DefaultTransportConfig(),
		}),
		watchBase: "https://www.youtube.com/watch",
	}
}

// Fetch downloads the transcript for a video. languages is an ordered
// preference list of language codes; nil or empty accepts any available
// language. Within a language, manually created tracks are preferred over
// auto-generated ones.
//
// Returns ErrNotAvailable when no transcript exists in any requested
// language, or *FetchError on transport failure.
func (c *Client) Fetch(ctx context.Context, videoID string, languages []string) (*Transcript, error) {
	if videoID == "" {
		return nil, fmt.Errorf("video ID is required")
	}

	tracks, err := c.listCaptionTracks(ctx, videoID)
	if err != nil {
		return nil, err
	}

	track, err := selectTrack(tracks, languages)
	if err != nil {
		return nil, fmt.Errorf("video %s: %w", videoID, err)
	}

	segments, err := c.downloadTrack(ctx, videoID, track.BaseURL)
	if err != nil {
		return nil, err
	}
	if len(segments) == 0 {
		return nil, fmt.Errorf("video %s: empty track: %w", videoID, ErrNotAvailable)
	}

	return &Transcript{
		VideoID:  videoID,
		Language: track.LanguageCode,
		Segments: segments,
		Text:     joinSegments(segments),
	}, nil
}

// Close releases resources held by the client.
func (c *Client) Close() error {
	return c.httpClient.Close()
}

// captionTrack is one entry of the player response's captionTracks list.
type captionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	// Kind is "asr" for auto-generated tracks, empty for manual ones.
	Kind string `json:"kind"`
}

// captionTracksMarker locates the track list inside the watch page HTML.
const captionTracksMarker = `"captionTracks":`

// listCaptionTracks loads the watch page and extracts the caption track
// list from the embedded player response.
func (c *Client) listCaptionTracks(ctx context.Context, videoID string) ([]captionTrack, error) {
	resp, err := c.httpClient.Get(ctx, c.watchBase+"?v="+videoID+"&hl=en")
	if err != nil {
		return nil, &FetchError{VideoID: videoID, Err: err}
	}

	page := string(resp.Body)
	idx := strings.Index(page, captionTracksMarker)
	if idx < 0 {
		// No captions block: captions disabled or the video is unavailable.
		return nil, fmt.Errorf("video %s: no caption tracks: %w", videoID, ErrNotAvailable)
	}

	var tracks []captionTrack
	dec := json.NewDecoder(strings.NewReader(page[idx+len(captionTracksMarker):]))
	if err := dec.Decode(&tracks); err != nil {
		return nil, &FetchError{VideoID: videoID, Err: fmt.Errorf("parse caption tracks: %w", err)}
	}
	if len(tracks) == 0 {
		return nil, fmt.Errorf("video %s: no caption tracks: %w", videoID, ErrNotAvailable)
	}
	return tracks, nil
}

// selectTrack picks the caption track to download. The preference list is
// walked in order; within each language manual tracks beat auto-generated
// ones, and a bare language code matches regional variants ("en" matches
// "en-US"). An empty preference list accepts any track, preferring manual.
func selectTrack(tracks []captionTrack, languages []string) (*captionTrack, error) {
	if len(languages) == 0 {
		for i := range tracks {
			if tracks[i].Kind != "asr" {
				return &tracks[i], nil
			}
		}
		return &tracks[0], nil
	}

	for _, lang := range languages {
		for _, manualOnly := range []bool{true, false} {
			for i := range tracks {
				if manualOnly && tracks[i].Kind == "asr" {
					continue
				}
				if languageMatches(tracks[i].LanguageCode, lang) {
					return &tracks[i], nil
				}
			}
		}
	}

	return nil, fmt.Errorf("no track in languages %v: %w", languages, ErrNotAvailable)
}

// languageMatches reports whether a track code satisfies a requested code.
func languageMatches(trackCode, requested string) bool {
	if strings.EqualFold(trackCode, requested) {
		return true
	}
	return strings.HasPrefix(strings.ToLower(trackCode), strings.ToLower(requested)+"-")
}

// downloadTrack fetches a caption track in json3 form and parses it.
func (c *Client) downloadTrack(ctx context.Context, videoID, baseURL string) ([]Segment, error) {
	url := baseURL
	if strings.Contains(url, "?") {
		url += "&fmt=json3"
	} else {
		url += "?fmt=json3"
	}

	resp, err := c.httpClient.Get(ctx, url)
	if err != nil {
		return nil, &FetchError{VideoID: videoID, Err: err}
	}

	segments, err := parseJSON3(resp.Body)
	if err != nil {
		return nil, &FetchError{VideoID: videoID, Err: err}
	}
	return segments, nil
}

// joinSegments flattens segments into one line of text. Segment texts are
// joined with single spaces and internal runs of whitespace collapse.
func joinSegments(segments []Segment) string {
	var words []string
	for _, seg := range segments {
		words = append(words, strings.Fields(seg.Text)...)
	}
	return strings.Join(words, " ")
}
