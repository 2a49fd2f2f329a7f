// Package storage persists transcripts as markdown documents, one file per
// video, named by video ID. File existence doubles as the resume marker for
// interrupted runs.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"ytscribe/youtube"
)

// Store writes transcript documents under a single output directory.
type Store struct {
	// Dir is the output directory, created on demand.
	Dir string
	// SkipExisting makes Save a no-op for videos whose file already exists.
	SkipExisting bool
}

// NewStore creates a store writing to dir.
func NewStore(dir string, skipExisting bool) *Store {
	return &Store{Dir: dir, SkipExisting: skipExisting}
}

// Path returns the deterministic output path for a video.
func (s *Store) Path(videoID string) string {
	return filepath.Join(s.Dir, videoID+".md")
}

// Exists reports whether the output file for a video is already present.
func (s *Store) Exists(videoID string) bool {
	_, err := os.Stat(s.Path(videoID))
	return err == nil
}

// Save writes the transcript document for a video and returns the written
// path. When SkipExisting is set and the file is already present, nothing
// is written and the empty string is returned. metadata may be nil; the
// document then falls back to the video ID for its title and omits the
// metadata fields.
//
// The write is atomic (temp file + rename), so a file that exists is
// always complete.
func (s *Store) Save(videoID, transcriptText string, metadata *youtube.VideoMetadata) (string, error) {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	path := s.Path(videoID)
	if s.SkipExisting {
		if _, err := os.Stat(path); err == nil {
			return "", nil
		}
	}

	doc := formatDocument(videoID, transcriptText, metadata)
	if err := atomicWriteFile(path, []byte(doc)); err != nil {
		return "", fmt.Errorf("save transcript %s: %w", videoID, err)
	}
	return path, nil
}

// formatDocument composes the markdown document for one video.
func formatDocument(videoID, transcriptText string, metadata *youtube.VideoMetadata) string {
	var b strings.Builder

	title := videoID
	if metadata != nil && metadata.Title != "" {
		title = metadata.Title
	}

	fmt.Fprintf(&b, "# %s\n\n", title)
	fmt.Fprintf(&b, "**Video ID:** %s\n\n", videoID)
	fmt.Fprintf(&b, "**Video URL:** https://www.youtube.com/watch?v=%s\n\n", videoID)

	if metadata != nil {
		if metadata.ChannelTitle != "" {
			fmt.Fprintf(&b, "**Channel:** %s\n\n", metadata.ChannelTitle)
		}
		if !metadata.PublishedAt.IsZero() {
			fmt.Fprintf(&b, "**Published:** %s\n\n", metadata.PublishedAt.Format("2006-01-02T15:04:05Z07:00"))
		}
		if metadata.Duration != "" {
			fmt.Fprintf(&b, "**Duration:** %s\n\n", metadata.Duration)
		}
		if metadata.ViewCount >= 0 {
			fmt.Fprintf(&b, "**Views:** %d\n\n", metadata.ViewCount)
		}
		if metadata.Description != "" {
			fmt.Fprintf(&b, "## Description\n\n%s\n\n", metadata.Description)
		}
	}

	b.WriteString("---\n\n")
	b.WriteString("## Transcript\n\n")
	b.WriteString(transcriptText)
	b.WriteString("\n")

	return b.String()
}
