package youtube

import "errors"

// Sentinel errors for YouTube Data API operations.
var (
	// ErrChannelNotFound indicates a channel lookup returned zero matches.
	ErrChannelNotFound = errors.New("youtube: channel not found")
)

// APIError wraps a transport or HTTP failure from the YouTube Data API with
// the operation that failed. Use errors.As() to extract it:
//
//	var apiErr *youtube.APIError
//	if errors.As(err, &apiErr) {
//		fmt.Printf("%s failed: %v\n", apiErr.Op, apiErr.Err)
//	}
type APIError struct {
	// Op is the API operation ("channels.list", "playlistItems.list", "videos.list").
	Op string
	// Err is the underlying error.
	Err error
}

// Error returns a string representation of the API error.
func (e *APIError) Error() string {
	return "youtube: " + e.Op + ": " + e.Err.Error()
}

// Unwrap returns the underlying error for use with errors.Is() and errors.As().
func (e *APIError) Unwrap() error { return e.Err }
