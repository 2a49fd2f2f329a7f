// Package youtube talks to the YouTube Data API v3: channel resolution,
// upload enumeration, and batched video metadata lookups.
package youtube

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/option"
	youtubeapi "google.golang.org/api/youtube/v3"

	"ytscribe/internal/pacer"
)

// Client wraps the YouTube Data API v3 service.
// All remote calls are spaced by the configured API delay.
type Client struct {
	service *youtubeapi.Service
	pacer   *pacer.Pacer
}

// NewClient creates a YouTube Data API client.
// apiDelay is the minimum spacing between API requests; zero disables
// pacing. Extra options are applied after the API key, which lets tests
// point the client at a fake endpoint.
func NewClient(ctx context.Context, apiKey string, apiDelay time.Duration, opts ...option.ClientOption) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("api key required")
	}

	clientOpts := append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	service, err := youtubeapi.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("create youtube service: %w", err)
	}

	return &Client{
		service: service,
		pacer:   pacer.New(apiDelay),
	}, nil
}
