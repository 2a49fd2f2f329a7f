package transcript

import (
	"encoding/json"
	"fmt"
	"strings"
)

// json3Response is the caption endpoint's json3 payload.
type json3Response struct {
	Events []json3Event `json:"events"`
}

// json3Event is a single timed event. Events without segs carry window
// styling rather than text.
type json3Event struct {
	TStartMs    int64      `json:"tStartMs"`
	DDurationMs int64      `json:"dDurationMs"`
	Segs        []json3Seg `json:"segs"`
}

// json3Seg is a text run within an event.
type json3Seg struct {
	UTF8 string `json:"utf8"`
}

// parseJSON3 converts a json3 caption payload into segments, dropping
// events that carry no text.
func parseJSON3(data []byte) ([]Segment, error) {
	var resp json3Response
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("unmarshal json3 captions: %w", err)
	}

	var segments []Segment
	for _, event := range resp.Events {
		if len(event.Segs) == 0 {
			continue
		}

		var text strings.Builder
		for _, seg := range event.Segs {
			text.WriteString(seg.UTF8)
		}
		if strings.TrimSpace(text.String()) == "" {
			continue
		}

		segments = append(segments, Segment{
			Text:     text.String(),
			Start:    float64(event.TStartMs) / 1000.0,
			Duration: float64(event.DDurationMs) / 1000.0,
		})
	}

	return segments, nil
}
