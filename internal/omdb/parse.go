package omdb

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrMalformedRuntime is returned for runtime text that is not "N min" or "N h M min"
var ErrMalformedRuntime = errors.New("malformed runtime")

var runtimeRE = regexp.MustCompile(`^(?:(\d+)\s*h(?:ours?|rs?)?)?\s*(?:(\d+)\s*min(?:utes?|s)?)?$`)

// ParseRuntime converts OMDb runtime text to minutes.
// Missing ("N/A", "") and malformed values yield 0 and an error.
func ParseRuntime(s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "n/a" {
		return 0, fmt.Errorf("%w: %q", ErrMalformedRuntime, s)
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 0 {
		return n, nil
	}

	m := runtimeRE.FindStringSubmatch(s)
	if m == nil || (m[1] == "" && m[2] == "") {
		return 0, fmt.Errorf("%w: %q", ErrMalformedRuntime, s)
	}
	total := 0
	if m[1] != "" {
		h, err := strconv.Atoi(m[1])
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrMalformedRuntime, s)
		}
		total += h * 60
	}
	if m[2] != "" {
		mins, err := strconv.Atoi(m[2])
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrMalformedRuntime, s)
		}
		total += mins
	}
	return total, nil
}

// ParseRating converts an IMDb rating such as "7.5".
// ok is false for "N/A", empty or unparsable text.
func ParseRating(s string) (rating float64, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "n/a") {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

// cleanPoster drops OMDb's "N/A" placeholder
func cleanPoster(s string) string {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "n/a") {
		return ""
	}
	return s
}
