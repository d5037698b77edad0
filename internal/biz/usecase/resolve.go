package usecase

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidSessionID is returned when a subscribe target cannot be resolved to a session id
var ErrInvalidSessionID = errors.New("invalid video ID or URL")

var (
	videoURLRes = []*regexp.Regexp{
		regexp.MustCompile(`(?:v=|/v/|youtu\.be/)([^&?\s/#]+)`),
		regexp.MustCompile(`embed/([^&?\s/#]+)`),
		regexp.MustCompile(`live/([^&?\s/#]+)`),
	}
	bareIDRe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
)

// ResolveSessionID extracts a video id from a watch/share/embed/live URL or accepts a bare id
func ResolveSessionID(input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidSessionID)
	}

	for _, re := range videoURLRes {
		if m := re.FindStringSubmatch(input); m != nil && bareIDRe.MatchString(m[1]) {
			return m[1], nil
		}
	}

	if bareIDRe.MatchString(input) {
		return input, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSessionID, input)
}
