// Package ytscribe collects transcripts for every video of a YouTube
// channel and stores each one as a markdown document.
//
// It resolves a channel from any common identifier form, enumerates the
// channel's uploads through the YouTube Data API, and downloads each
// video's caption track from YouTube's timedtext endpoint.
//
// Overview
//
// ytscribe provides high-level convenience functions for the most common
// operations:
//
//   - Collect: Download all transcripts for a channel
//   - ResolveChannel: Turn any channel identifier into a channel ID
//   - FetchTranscript: Get the transcript for a single video
//
// Quick Start
//
// Collect a whole channel:
//
//	ctx := context.Background()
//	stats, err := ytscribe.Collect(ctx, "@somechannel")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("downloaded %d, skipped %d, failed %d\n",
//		stats.Downloaded, stats.Skipped, stats.Failed)
//
// Fetch a single transcript:
//
//	tr, err := ytscribe.FetchTranscript(ctx, "dQw4w9WgXcQ", []string{"en"})
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(tr.Text)
//
// Configuration
//
// ytscribe loads settings from multiple sources:
//
//   1. Environment variables (highest priority)
//   2. Config file (ytscribe.json or ~/.config/ytscribe/ytscribe.json)
//   3. Default values (lowest priority)
//
// Environment variables:
//
//   - YOUTUBE_API_KEY: YouTube Data API v3 key (required)
//   - YTSCRIBE_OUTPUT_DIR: Directory for transcript files
//   - YTSCRIBE_SKIP_EXISTING: Skip videos already on disk (true/false)
//   - YTSCRIBE_MAX_VIDEOS: Maximum videos to process (0 = all)
//   - YTSCRIBE_LANGUAGES: Comma-separated transcript language preference
//   - YTSCRIBE_API_DELAY: Delay between Data API requests
//   - YTSCRIBE_TRANSCRIPT_DELAY: Delay between transcript requests
//
// A .env file in the working directory is loaded before the environment
// is read.
//
// Error Handling
//
// All operations return errors that implement standard Go error handling:
//
//	if errors.Is(err, ytscribe.ErrNotAvailable) {
//		fmt.Println("video has no transcript")
//	}
//
//	var fetchErr *ytscribe.TranscriptFetchError
//	if errors.As(err, &fetchErr) {
//		fmt.Printf("fetching %s failed: %v\n", fetchErr.VideoID, fetchErr.Err)
//	}
//
// Advanced Usage
//
// For more control, use the sub-packages directly:
//
//   - youtube: Channel resolution, video enumeration, and metadata
//   - transcript: Caption track discovery and download
//   - storage: Markdown document output
//   - collector: The pipeline joining everything together
//   - config: Configuration management
//
// Example using the sub-packages directly:
//
//	api, err := youtube.NewClient(ctx, cfg.APIKey, cfg.APIDelay)
//	if err != nil {
//		log.Fatal(err)
//	}
//	c := collector.New(api, transcript.NewClient(cfg.TranscriptDelay),
//		storage.NewStore(cfg.OutputDir, cfg.SkipExisting), collector.Options{
//			MaxVideos:    cfg.MaxVideos,
//			Languages:    cfg.Languages,
//			SkipExisting: cfg.SkipExisting,
//		})
//	stats, err := c.Run(ctx, "@somechannel")
//
package ytscribe
