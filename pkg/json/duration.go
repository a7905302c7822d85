package json

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// appendISO8601Duration formats a time.Duration as an ISO 8601 duration
// string (e.g. "PT1H30M5.5S") and appends it to buf. ISO 8601 has no
// standard negative-duration form; a '-' is prefixed for round-trip
// compatibility with parseISO8601Duration.
func appendISO8601Duration(buf []byte, d time.Duration) []byte {
	if d == 0 {
		return append(buf, "PT0S"...)
	}

	neg := d < 0
	if neg {
		d = -d
	}

	hours := d / time.Hour
	rem := d % time.Hour
	minutes := rem / time.Minute
	rem %= time.Minute

	buf = append(buf, 'P')
	if neg {
		buf = append(buf, '-')
	}
	buf = append(buf, 'T')

	wroteUnit := false
	if hours > 0 {
		buf = strconv.AppendInt(buf, int64(hours), 10)
		buf = append(buf, 'H')
		wroteUnit = true
	}
	if minutes > 0 {
		buf = strconv.AppendInt(buf, int64(minutes), 10)
		buf = append(buf, 'M')
		wroteUnit = true
	}
	if rem > 0 || !wroteUnit {
		if rem%time.Second == 0 {
			buf = strconv.AppendInt(buf, int64(rem/time.Second), 10)
		} else {
			buf = strconv.AppendFloat(buf, rem.Seconds(), 'f', -1, 64)
		}
		buf = append(buf, 'S')
	}
	return buf
}

// parseISO8601Duration parses the format produced by appendISO8601Duration.
// It does not accept the full ISO 8601 grammar (no years/months/weeks/days),
// only the hours/minutes/seconds subset this package ever emits.
func parseISO8601Duration(s string) (time.Duration, error) {
	orig := s
	if s == "PT0S" {
		return 0, nil
	}

	neg := false
	if strings.HasPrefix(s, "P-") {
		neg = true
		s = "P" + s[2:]
	}
	if !strings.HasPrefix(s, "PT") {
		return 0, fmt.Errorf("json: invalid duration %q", orig)
	}
	s = s[2:]

	var total time.Duration
	for len(s) > 0 {
		i := 0
		for i < len(s) && (s[i] == '.' || (s[i] >= '0' && s[i] <= '9')) {
			i++
		}
		if i == 0 {
			return 0, fmt.Errorf("json: invalid duration %q", orig)
		}
		numText := s[:i]
		if i >= len(s) {
			return 0, fmt.Errorf("json: invalid duration %q", orig)
		}
		unit := s[i]
		s = s[i+1:]

		switch unit {
		case 'H':
			n, err := strconv.ParseInt(numText, 10, 64)
			if err != nil {
				return 0, fmt.Errorf("json: invalid duration %q: %w", orig, err)
			}
			total += time.Duration(n) * time.Hour
		case 'M':
			n, err := strconv.ParseInt(numText, 10, 64)
			if err != nil {
				return 0, fmt.Errorf("json: invalid duration %q: %w", orig, err)
			}
			total += time.Duration(n) * time.Minute
		case 'S':
			f, err := strconv.ParseFloat(numText, 64)
			if err != nil {
				return 0, fmt.Errorf("json: invalid duration %q: %w", orig, err)
			}
			total += time.Duration(f * float64(time.Second))
		default:
			return 0, fmt.Errorf("json: invalid duration %q", orig)
		}
	}

	if neg {
		total = -total
	}
	return total, nil
}
