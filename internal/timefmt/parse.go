package timefmt

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	// a utc marker anywhere, or a numeric offset at the very end
	offsetRegex = regexp.MustCompile(`[zZ]|[+-]\d{2}:\d{2}$`)
	// leading YYYY-MM-DD[T ]hh:mm:ss, anything after the seconds is ignored
	naiveRegex = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})[T ](\d{2}):(\d{2}):(\d{2})`)
)

var offsetLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02T15:04Z07:00",
}

var fallbackLayouts = []string{
	"2006-01-02",
	time.RFC1123,
	time.RFC1123Z,
}

// Parse reads a server timestamp. Timestamps carrying a utc marker or an offset
// are parsed honoring it, naive ones are wall-clock time in loc.
// Empty or unparseable input yields now().
func Parse(raw string, loc *time.Location, now func() time.Time) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	if now == nil {
		now = time.Now
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return now()
	}

	if offsetRegex.MatchString(raw) {
		normalized := strings.ToUpper(raw)
		for _, layout := range offsetLayouts {
			if t, err := time.Parse(layout, normalized); err == nil {
				return t
			}
		}
	} else if m := naiveRegex.FindStringSubmatch(raw); m != nil {
		if t, ok := wallClock(m[1:], loc); ok {
			return t
		}
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t
		}
	}

	return now()
}

func wallClock(parts []string, loc *time.Location) (time.Time, bool) {
	nums := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return time.Time{}, false
		}
		nums[i] = n
	}

	year, month, day, hour, minute, second := nums[0], nums[1], nums[2], nums[3], nums[4], nums[5]
	if month < 1 || month > 12 || day < 1 || day > 31 || hour > 23 || minute > 59 || second > 59 {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(month), day, hour, minute, second, 0, loc), true
}
