// Package collector orchestrates whole-channel transcript collection:
// resolve the channel, enumerate its uploads, fetch metadata, then download
// and persist each video's transcript.
package collector

import (
	"context"
	"errors"
	"fmt"
	"log"

	"ytscribe/transcript"
	"ytscribe/youtube"
)

// DataAPI is the YouTube Data API surface the collector needs.
// *youtube.Client implements it.
type DataAPI interface {
	ResolveChannelID(ctx context.Context, identifier string) (string, error)
	ListVideoIDs(ctx context.Context, channelID string, maxResults int) ([]string, error)
	FetchVideoMetadata(ctx context.Context, videoIDs []string) (map[string]*youtube.VideoMetadata, error)
}

// TranscriptFetcher downloads a single video's transcript.
// *transcript.Client implements it.
type TranscriptFetcher interface {
	Fetch(ctx context.Context, videoID string, languages []string) (*transcript.Transcript, error)
}

// TranscriptStore persists transcripts and answers existence checks.
// *storage.Store implements it.
type TranscriptStore interface {
	Exists(videoID string) bool
	Save(videoID, transcriptText string, metadata *youtube.VideoMetadata) (string, error)
}

// Options configures a collection run.
type Options struct {
	// MaxVideos caps how many videos are processed (0 = all).
	MaxVideos int
	// Languages is the ordered transcript language preference.
	// Empty accepts any available language.
	Languages []string
	// SkipExisting skips videos whose output file already exists, without
	// any network call for them.
	SkipExisting bool
}

// Stats summarizes one collection run. Downloaded, Skipped, and Failed sum
// to TotalVideos.
type Stats struct {
	// TotalVideos is the number of videos enumerated for the run.
	TotalVideos int `json:"total_videos"`
	// Downloaded is the number of transcripts fetched and saved.
	Downloaded int `json:"downloaded"`
	// Skipped is the number of videos skipped because output existed.
	Skipped int `json:"skipped"`
	// Failed is the number of videos with no usable transcript, whether
	// none exists or the fetch failed.
	Failed int `json:"failed"`
	// FailedVideos lists the IDs counted in Failed.
	FailedVideos []string `json:"failed_videos,omitempty"`
}

// Collector runs the collection pipeline.
type Collector struct {
	api         DataAPI
	transcripts TranscriptFetcher
	store       TranscriptStore
	opts        Options
}

// New creates a collector from its collaborators.
func New(api DataAPI, transcripts TranscriptFetcher, store TranscriptStore, opts Options) *Collector {
	return &Collector{
		api:         api,
		transcripts: transcripts,
		store:       store,
		opts:        opts,
	}
}

// Run collects transcripts for every video of the channel the identifier
// resolves to. Resolution and first-page enumeration failures abort the
// run; a per-video transcript failure is counted and the run continues,
// since one bad video must not abort a multi-hundred-video channel.
//
// Partial enumeration or metadata results caused by a mid-run API failure
// are kept and processed rather than discarded.
func (c *Collector) Run(ctx context.Context, identifier string) (*Stats, error) {
	channelID, err := c.api.ResolveChannelID(ctx, identifier)
	if err != nil {
		return nil, fmt.Errorf("resolve channel %q: %w", identifier, err)
	}
	log.Printf("ytscribe: collecting transcripts for channel %s", channelID)

	videoIDs, err := c.api.ListVideoIDs(ctx, channelID, c.opts.MaxVideos)
	if err != nil {
		if len(videoIDs) == 0 {
			return nil, fmt.Errorf("list videos for %s: %w", channelID, err)
		}
		log.Printf("ytscribe: enumeration incomplete, continuing with %d videos: %v", len(videoIDs), err)
	}
	log.Printf("ytscribe: found %d videos", len(videoIDs))

	metadata, err := c.api.FetchVideoMetadata(ctx, videoIDs)
	if err != nil {
		// Metadata is decoration for the output documents; a partial map
		// just means some documents carry less of it.
		log.Printf("ytscribe: metadata incomplete (%d of %d videos): %v", len(metadata), len(videoIDs), err)
	}

	stats := &Stats{TotalVideos: len(videoIDs)}

	for i, videoID := range videoIDs {
		if ctx.Err() != nil {
			return stats, ctx.Err()
		}

		// The existence check comes before any network call so resumed
		// runs spend no quota on finished work.
		if c.opts.SkipExisting && c.store.Exists(videoID) {
			log.Printf("ytscribe: [%d/%d] skipping %s (already exists)", i+1, len(videoIDs), videoID)
			stats.Skipped++
			continue
		}

		tr, err := c.transcripts.Fetch(ctx, videoID, c.opts.Languages)
		if err != nil {
			if errors.Is(err, transcript.ErrNotAvailable) {
				log.Printf("ytscribe: [%d/%d] no transcript for %s", i+1, len(videoIDs), videoID)
			} else {
				log.Printf("ytscribe: [%d/%d] transcript fetch failed for %s: %v", i+1, len(videoIDs), videoID, err)
			}
			stats.Failed++
			stats.FailedVideos = append(stats.FailedVideos, videoID)
			continue
		}

		path, err := c.store.Save(videoID, tr.Text, metadata[videoID])
		if err != nil {
			log.Printf("ytscribe: [%d/%d] save failed for %s: %v", i+1, len(videoIDs), videoID, err)
			stats.Failed++
			stats.FailedVideos = append(stats.FailedVideos, videoID)
			continue
		}

		log.Printf("ytscribe: [%d/%d] saved %s", i+1, len(videoIDs), path)
		stats.Downloaded++
	}

	return stats, nil
}
