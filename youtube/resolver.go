package youtube

import (
	"context"
	"regexp"
	"strings"
)

// channelIDRegex matches a canonical channel ID: "UC" plus 22 URL-safe
// base64 characters.
var channelIDRegex = regexp.MustCompile(`^UC[0-9A-Za-z_-]{22}$`)

// ResolveChannelID maps a user-supplied channel identifier to its canonical
// channel ID. The identifier may be a raw channel ID, a handle
// ("@channelname"), a legacy username, or a full channel URL in any of the
// /channel/, /c/, /user/, or /@handle forms. URL inputs are reduced to their
// trailing path segment and reclassified once; a domain-only URL carries no
// identifier and fails with ErrChannelNotFound.
//
// Returns ErrChannelNotFound when no channel matches, or *APIError on
// transport failure.
func (c *Client) ResolveChannelID(ctx context.Context, identifier string) (string, error) {
	identifier = strings.TrimSpace(identifier)

	if isYouTubeURL(identifier) {
		identifier = identifierFromURL(identifier)
		if identifier == "" || isYouTubeURL(identifier) {
			return "", ErrChannelNotFound
		}
	}

	if handle, ok := strings.CutPrefix(identifier, "@"); ok {
		return c.resolveHandle(ctx, handle)
	}

	// A canonical ID is still validated with a lookup so a typo in a
	// plausible-looking ID fails loudly instead of producing an empty
	// channel downstream.
	if channelIDRegex.MatchString(identifier) {
		return c.resolveByID(ctx, identifier)
	}

	return c.resolveUsername(ctx, identifier)
}

func isYouTubeURL(s string) bool {
	return strings.Contains(s, "youtube.com") || strings.Contains(s, "youtu.be")
}

// identifierFromURL reduces a channel URL to the identifier embedded in it:
// the raw ID for /channel/ URLs, "@handle" for /@ URLs, and the bare name
// for /c/ and /user/ URLs. Unrecognized URLs collapse to their last
// non-empty path segment.
func identifierFromURL(url string) string {
	for _, prefix := range []string{"/channel/", "/c/", "/user/"} {
		if _, rest, ok := strings.Cut(url, prefix); ok {
			return trailingSegment(rest)
		}
	}
	if _, rest, ok := strings.Cut(url, "/@"); ok {
		return "@" + trailingSegment(rest)
	}

	// youtu.be/name or any other form: take the last path segment.
	url = strings.TrimSuffix(url, "/")
	if i := strings.LastIndex(url, "/"); i >= 0 {
		return trailingSegment(url[i+1:])
	}
	return url
}

// trailingSegment strips query strings and nested path components.
func trailingSegment(s string) string {
	s, _, _ = strings.Cut(s, "?")
	s, _, _ = strings.Cut(s, "/")
	return s
}

// resolveByID validates that a canonical-looking ID actually exists.
func (c *Client) resolveByID(ctx context.Context, id string) (string, error) {
	if err := c.pacer.Wait(ctx); err != nil {
		return "", err
	}

	resp, err := c.service.Channels.List([]string{"id"}).Id(id).Context(ctx).Do()
	if err != nil {
		return "", &APIError{Op: "channels.list", Err: err}
	}
	if len(resp.Items) == 0 {
		return "", ErrChannelNotFound
	}
	return resp.Items[0].Id, nil
}

// resolveHandle looks up a channel by its @handle, falling back to a legacy
// username lookup when the handle form yields nothing.
func (c *Client) resolveHandle(ctx context.Context, handle string) (string, error) {
	if err := c.pacer.Wait(ctx); err != nil {
		return "", err
	}

	resp, err := c.service.Channels.List([]string{"id"}).ForHandle(handle).Context(ctx).Do()
	if err != nil {
		return "", &APIError{Op: "channels.list", Err: err}
	}
	if len(resp.Items) > 0 {
		return resp.Items[0].Id, nil
	}

	if err := c.pacer.Wait(ctx); err != nil {
		return "", err
	}

	resp, err = c.service.Channels.List([]string{"id"}).ForUsername(handle).Context(ctx).Do()
	if err != nil {
		return "", &APIError{Op: "channels.list", Err: err}
	}
	if len(resp.Items) > 0 {
		return resp.Items[0].Id, nil
	}

	return "", ErrChannelNotFound
}

// resolveUsername looks up a channel by legacy username, falling back to a
// handle lookup when the username form yields nothing. Bare names without
// the @ sigil are frequently handles in practice.
func (c *Client) resolveUsername(ctx context.Context, username string) (string, error) {
	if err := c.pacer.Wait(ctx); err != nil {
		return "", err
	}

	resp, err := c.service.Channels.List([]string{"id"}).ForUsername(username).Context(ctx).Do()
	if err != nil {
		return "", &APIError{Op: "channels.list", Err: err}
	}
	if len(resp.Items) > 0 {
		return resp.Items[0].Id, nil
	}

	if err := c.pacer.Wait(ctx); err != nil {
		return "", err
	}

	resp, err = c.service.Channels.List([]string{"id"}).ForHandle(username).Context(ctx).Do()
	if err != nil {
		return "", &APIError{Op: "channels.list", Err: err}
	}
	if len(resp.Items) > 0 {
		return resp.Items[0].Id, nil
	}

	return "", ErrChannelNotFound
}
