package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"ytscribe"
	"ytscribe/config"
	"ytscribe/transcript"
	"ytscribe/youtube"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "run":
		cmdRun(args)
	case "resolve":
		cmdResolve(args)
	case "list":
		cmdList(args)
	case "transcript":
		cmdTranscript(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		// Treat a bare channel identifier as a run command
		cmdRun(os.Args[1:])
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `ytscribe - YouTube channel transcript collector

Usage:
  ytscribe run [flags] <channel>        Collect all transcripts for a channel
  ytscribe resolve <channel>            Resolve an identifier to a channel ID
  ytscribe list [flags] <channel>       List a channel's videos
  ytscribe transcript [flags] <video-id> Print one video's transcript
  ytscribe help                         Show this help message

The channel may be a URL, @handle, channel ID, or legacy username.

Examples:
  ytscribe run @somechannel                        # Collect a whole channel
  ytscribe run --max 10 --dir ./out @somechannel   # First 10 videos into ./out
  ytscribe run --lang en,es @somechannel           # Prefer English, then Spanish
  ytscribe list https://www.youtube.com/@somechannel
  ytscribe transcript dQw4w9WgXcQ

A YouTube Data API key is read from YOUTUBE_API_KEY (or a .env file).

For help on a specific command: ytscribe <command> -h
`)
}

func cmdRun(args []string) {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	maxVideos := fs.Int("max", 0, "Maximum videos to process (0 = all)")
	outputDir := fs.String("dir", "", "Output directory (default from config)")
	langStr := fs.String("lang", "", "Comma-separated language preference (e.g. en,es)")
	noSkip := fs.Bool("no-skip", false, "Re-download videos that already exist on disk")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: ytscribe run [flags] <channel>\n\nFlags:\n")
		fs.PrintDefaults()
	}
	fs.Parse(args)

	argv := fs.Args()
	if len(argv) == 0 {
		fmt.Fprintf(os.Stderr, "Error: missing channel\n")
		fs.Usage()
		os.Exit(1)
	}

	cfg := loadConfig()
	if *maxVideos > 0 {
		cfg.MaxVideos = *maxVideos
	}
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}
	if langs := splitLanguages(*langStr); len(langs) > 0 {
		cfg.Languages = langs
	}
	if *noSkip {
		cfg.SkipExisting = false
	}

	fmt.Fprintf(os.Stderr, "Collecting transcripts for %s...\n", argv[0])
	stats, err := ytscribe.CollectWithConfig(context.Background(), cfg, argv[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Total videos:\t%d\n", stats.TotalVideos)
	fmt.Fprintf(w, "Downloaded:\t%d\n", stats.Downloaded)
	fmt.Fprintf(w, "Skipped:\t%d\n", stats.Skipped)
	fmt.Fprintf(w, "Failed:\t%d\n", stats.Failed)
	w.Flush()

	if len(stats.FailedVideos) > 0 {
		fmt.Println("\nVideos without transcripts:")
		for _, id := range stats.FailedVideos {
			fmt.Printf("  %s\n", id)
		}
	}
}

func cmdResolve(args []string) {
	fs := flag.NewFlagSet("resolve", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: ytscribe resolve <channel>\n")
	}
	fs.Parse(args)

	argv := fs.Args()
	if len(argv) == 0 {
		fmt.Fprintf(os.Stderr, "Error: missing channel\n")
		fs.Usage()
		os.Exit(1)
	}

	channelID, err := ytscribe.ResolveChannel(context.Background(), argv[0])
	if err != nil {
		if errors.Is(err, youtube.ErrChannelNotFound) {
			fmt.Fprintf(os.Stderr, "Error: channel %q not found\n", argv[0])
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
	fmt.Println(channelID)
}

func cmdList(args []string) {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	maxVideos := fs.Int("max", 0, "Maximum videos to list (0 = all)")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: ytscribe list [flags] <channel>\n\nFlags:\n")
		fs.PrintDefaults()
	}
	fs.Parse(args)

	argv := fs.Args()
	if len(argv) == 0 {
		fmt.Fprintf(os.Stderr, "Error: missing channel\n")
		fs.Usage()
		os.Exit(1)
	}

	cfg := loadConfig()
	ctx := context.Background()

	api, err := youtube.NewClient(ctx, cfg.APIKey, cfg.APIDelay)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	channelID, err := api.ResolveChannelID(ctx, argv[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving channel: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "Fetching videos from %s...\n", channelID)
	ids, err := api.ListVideoIDs(ctx, channelID, *maxVideos)
	if err != nil && len(ids) == 0 {
		fmt.Fprintf(os.Stderr, "Error fetching videos: %v\n", err)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: enumeration incomplete: %v\n", err)
	}

	if len(ids) == 0 {
		fmt.Println("No videos found.")
		return
	}

	metadata, err := api.FetchVideoMetadata(ctx, ids)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: metadata incomplete: %v\n", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "VIDEO ID\tTITLE\tDURATION\tVIEWS")
	for _, id := range ids {
		title, duration, views := "", "", ""
		if m := metadata[id]; m != nil {
			title = truncate(m.Title, 50)
			duration = m.Duration
			if m.ViewCount >= 0 {
				views = fmt.Sprintf("%d", m.ViewCount)
			}
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", id, title, duration, views)
	}
	w.Flush()

	fmt.Fprintf(os.Stderr, "\nTotal: %d videos\n", len(ids))
}

func cmdTranscript(args []string) {
	fs := flag.NewFlagSet("transcript", flag.ExitOnError)
	langStr := fs.String("lang", "", "Comma-separated language preference (e.g. en,es). Empty = any")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: ytscribe transcript [flags] <video-id>\n\nFlags:\n")
		fs.PrintDefaults()
	}
	fs.Parse(args)

	argv := fs.Args()
	if len(argv) == 0 {
		fmt.Fprintf(os.Stderr, "Error: missing video-id\n")
		fs.Usage()
		os.Exit(1)
	}
	videoID := argv[0]

	fmt.Fprintf(os.Stderr, "Fetching transcript for %s...\n", videoID)
	tr, err := ytscribe.FetchTranscript(context.Background(), videoID, splitLanguages(*langStr))
	if err != nil {
		if errors.Is(err, transcript.ErrNotAvailable) {
			fmt.Fprintf(os.Stderr, "No transcript available for %s\n", videoID)
		} else {
			fmt.Fprintf(os.Stderr, "Error fetching transcript: %v\n", err)
		}
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "Language: %s (%d segments)\n\n", tr.Language, len(tr.Segments))
	fmt.Println(tr.Text)
}

// loadConfig loads configuration and exits on failure. Commands that only
// touch the transcript endpoint do not call it, since they need no API key.
func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		if errors.Is(err, config.ErrMissingAPIKey) {
			fmt.Fprintf(os.Stderr, "Error: no API key configured. Set YOUTUBE_API_KEY (or add it to a .env file).\n")
		} else {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		}
		os.Exit(1)
	}
	return cfg
}

func splitLanguages(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	langs := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			langs = append(langs, p)
		}
	}
	return langs
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
