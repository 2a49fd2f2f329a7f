package youtube

import (
	"context"
	"time"
)

// metadataBatchSize is the maximum video IDs per videos.list call.
const metadataBatchSize = 50

// VideoMetadata contains the metadata kept for a single video.
type VideoMetadata struct {
	// ID is the YouTube video ID (e.g., "dQw4w9WgXcQ").
	ID string `json:"id"`
	// Title is the video title.
	Title string `json:"title"`
	// Description is the full video description.
	Description string `json:"description"`
	// ChannelTitle is the display name of the owning channel.
	ChannelTitle string `json:"channel_title"`
	// PublishedAt is when the video was published.
	PublishedAt time.Time `json:"published_at"`
	// Duration is the ISO 8601 duration string (e.g., "PT4M13S").
	Duration string `json:"duration"`
	// ViewCount is the total view count, or -1 when the API returned no
	// statistics for the video.
	ViewCount int64 `json:"view_count"`
	// LikeCount is the like count, or -1 when unavailable.
	LikeCount int64 `json:"like_count"`
}

// WatchURL returns the canonical watch URL for the video.
func (m *VideoMetadata) WatchURL() string {
	return "https://www.youtube.com/watch?v=" + m.ID
}

// FetchVideoMetadata retrieves metadata for the given video IDs in batches
// of up to 50 per call. IDs the API does not recognize are absent from the
// result. On a batch failure the metadata gathered from earlier batches is
// returned together with the *APIError.
func (c *Client) FetchVideoMetadata(ctx context.Context, videoIDs []string) (map[string]*VideoMetadata, error) {
	metadata := make(map[string]*VideoMetadata, len(videoIDs))

	for start := 0; start < len(videoIDs); start += metadataBatchSize {
		end := start + metadataBatchSize
		if end > len(videoIDs) {
			end = len(videoIDs)
		}

		if err := c.pacer.Wait(ctx); err != nil {
			return metadata, err
		}

		resp, err := c.service.Videos.List([]string{"snippet", "contentDetails", "statistics"}).
			Id(videoIDs[start:end]...).
			Context(ctx).
			Do()
		if err != nil {
			return metadata, &APIError{Op: "videos.list", Err: err}
		}

		for _, item := range resp.Items {
			meta := &VideoMetadata{
				ID:        item.Id,
				ViewCount: -1,
				LikeCount: -1,
			}

			if item.Snippet != nil {
				meta.Title = item.Snippet.Title
				meta.Description = item.Snippet.Description
				meta.ChannelTitle = item.Snippet.ChannelTitle
				if t, err := time.Parse(time.RFC3339, item.Snippet.PublishedAt); err == nil {
					meta.PublishedAt = t
				}
			}
			if item.ContentDetails != nil {
				meta.Duration = item.ContentDetails.Duration
			}
			if item.Statistics != nil {
				meta.ViewCount = int64(item.Statistics.ViewCount)
				meta.LikeCount = int64(item.Statistics.LikeCount)
			}

			metadata[item.Id] = meta
		}
	}

	return metadata, nil
}
