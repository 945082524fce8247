package record

import (
	"errors"
	"net/url"
	"regexp"
	"strings"
)

// ErrInvalidProofURL marks a proof link that is not a recognized video URL.
// Enforced at submission so malformed links never reach the moderation queue.
var ErrInvalidProofURL = errors.New("proof url must be a valid video link")

// videoIDLength is the fixed length of hosted video identifiers.
const videoIDLength = 11

var proofHosts = map[string]struct{}{
	"youtube.com":     {},
	"www.youtube.com": {},
	"m.youtube.com":   {},
	"youtu.be":        {},
	"www.youtu.be":    {},
}

var videoIDPattern = regexp.MustCompile(`(?:youtu\.be/|/v/|/embed/|/shorts/|watch\?v=|[?&]v=)([A-Za-z0-9_-]{11})`)

// ExtractVideoID pulls the 11-character video id out of a proof link. The
// second return is false when no id token is present.
func ExtractVideoID(raw string) (string, bool) {
	match := videoIDPattern.FindStringSubmatch(raw)
	if len(match) != 2 || len(match[1]) != videoIDLength {
		return "", false
	}
	return match[1], true
}

// ValidateProofURL checks that the link points at a known video host and
// carries an extractable video id.
func ValidateProofURL(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ErrInvalidProofURL
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return ErrInvalidProofURL
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return ErrInvalidProofURL
	}

	host := strings.ToLower(parsed.Hostname())
	if _, ok := proofHosts[host]; !ok {
		return ErrInvalidProofURL
	}

	if _, ok := ExtractVideoID(raw); !ok {
		return ErrInvalidProofURL
	}

	return nil
}
