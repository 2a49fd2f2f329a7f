package youtube

import (
	"context"
	"log"
)

// pageSize is the maximum results per playlistItems.list call.
const pageSize = 50

// ListVideoIDs returns the IDs of all videos uploaded by a channel, newest
// first, by paginating the channel's uploads playlist. maxResults caps the
// number of IDs returned exactly (0 = all). Duplicates across pages are
// dropped.
//
// A failure on the first page returns (nil, err). A failure on a later page
// returns the IDs gathered so far together with the error, so callers can
// keep work already paid for in quota.
func (c *Client) ListVideoIDs(ctx context.Context, channelID string, maxResults int) ([]string, error) {
	playlistID, err := c.uploadsPlaylistID(ctx, channelID)
	if err != nil {
		return nil, err
	}

	var ids []string
	seen := make(map[string]bool)
	pageToken := ""

	for {
		if err := c.pacer.Wait(ctx); err != nil {
			return ids, err
		}

		resp, err := c.service.PlaylistItems.List([]string{"contentDetails"}).
			PlaylistId(playlistID).
			MaxResults(pageSize).
			PageToken(pageToken).
			Context(ctx).
			Do()
		if err != nil {
			apiErr := &APIError{Op: "playlistItems.list", Err: err}
			if len(ids) == 0 {
				return nil, apiErr
			}
			log.Printf("ytscribe: page fetch failed after %d videos, returning partial list: %v", len(ids), err)
			return ids, apiErr
		}

		for _, item := range resp.Items {
			id := item.ContentDetails.VideoId
			if id == "" || seen[id] {
				continue
			}
			seen[id] = true
			ids = append(ids, id)

			if maxResults > 0 && len(ids) >= maxResults {
				return ids[:maxResults], nil
			}
		}

		pageToken = resp.NextPageToken
		if pageToken == "" {
			break
		}
	}

	return ids, nil
}

// uploadsPlaylistID fetches the uploads playlist for a channel.
func (c *Client) uploadsPlaylistID(ctx context.Context, channelID string) (string, error) {
	if err := c.pacer.Wait(ctx); err != nil {
		return "", err
	}

	resp, err := c.service.Channels.List([]string{"contentDetails"}).
		Id(channelID).
		Context(ctx).
		Do()
	if err != nil {
		return "", &APIError{Op: "channels.list", Err: err}
	}
	if len(resp.Items) == 0 {
		return "", ErrChannelNotFound
	}
	return resp.Items[0].ContentDetails.RelatedPlaylists.Uploads, nil
}
