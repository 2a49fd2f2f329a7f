package ytscribe

import (
	"context"

	"ytscribe/collector"
	"ytscribe/config"
	"ytscribe/storage"
	"ytscribe/transcript"
	"ytscribe/youtube"
)

// Stats summarizes a collection run.
type Stats = collector.Stats

// Transcript is a downloaded video transcript.
type Transcript = transcript.Transcript

// Collect downloads transcripts for every video of the channel the
// identifier names, using configuration loaded from the environment and
// config file. The identifier may be a channel URL, @handle, channel ID,
// or legacy username.
func Collect(ctx context.Context, identifier string) (*Stats, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return CollectWithConfig(ctx, cfg, identifier)
}

// CollectWithConfig is Collect with an explicit configuration.
func CollectWithConfig(ctx context.Context, cfg *config.Config, identifier string) (*Stats, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	api, err := youtube.NewClient(ctx, cfg.APIKey, cfg.APIDelay)
	if err != nil {
		return nil, err
	}
	c := collector.New(
		api,
		transcript.NewClient(cfg.TranscriptDelay),
		storage.NewStore(cfg.OutputDir, cfg.SkipExisting),
		collector.Options{
			MaxVideos:    cfg.MaxVideos,
			Languages:    cfg.Languages,
			SkipExisting: cfg.SkipExisting,
		},
	)
	return c.Run(ctx, identifier)
}

// ResolveChannel turns any supported channel identifier into a canonical
// channel ID using configuration loaded from the environment.
func ResolveChannel(ctx context.Context, identifier string) (string, error) {
	cfg, err := config.Load()
	if err != nil {
		return "", err
	}
	api, err := youtube.NewClient(ctx, cfg.APIKey, cfg.APIDelay)
	if err != nil {
		return "", err
	}
	return api.ResolveChannelID(ctx, identifier)
}

// FetchTranscript downloads the transcript for one video. languages is an
// ordered preference; empty accepts any available language. It needs no
// API key.
func FetchTranscript(ctx context.Context, videoID string, languages []string) (*Transcript, error) {
	return transcript.NewClient(0).Fetch(ctx, videoID, languages)
}
