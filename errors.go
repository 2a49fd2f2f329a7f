package ytscribe

import (
	"ytscribe/config"
	"ytscribe/transcript"
	"ytscribe/youtube"
)

// Error handling types exported for library users.
//
// All error types support the standard error handling patterns:
//
// Using errors.Is() for sentinel errors:
//
//	if errors.Is(err, ytscribe.ErrChannelNotFound) {
//		fmt.Println("channel not found")
//	}
//
// Using errors.As() for wrapped errors:
//
//	var apiErr *ytscribe.APIError
//	if errors.As(err, &apiErr) {
//		fmt.Printf("Data API call %s failed: %v\n", apiErr.Op, apiErr.Err)
//	}

// Type aliases for convenient error handling.
type (
	// APIError wraps a failed YouTube Data API call.
	APIError = youtube.APIError
	// TranscriptFetchError wraps a failed transcript download.
	TranscriptFetchError = transcript.FetchError
)

// Sentinel errors exported from sub-packages.
var (
	// ErrMissingAPIKey indicates no YouTube Data API key was configured.
	ErrMissingAPIKey = config.ErrMissingAPIKey
	// ErrChannelNotFound indicates the channel identifier resolved to nothing.
	ErrChannelNotFound = youtube.ErrChannelNotFound
	// ErrNotAvailable indicates a video has no transcript in any accepted
	// language.
	ErrNotAvailable = transcript.ErrNotAvailable
)
