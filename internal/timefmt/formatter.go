package timefmt

import (
	"fmt"
	"strings"
	"time"
	// scratch containers ship without a zoneinfo db
	_ "time/tzdata"

	"golang.org/x/text/language"
)

const (
	DefaultTimezone = "Asia/Kolkata"
	DefaultLocale   = "en-IN"
)

var (
	localeIndia = language.MustParse("en-IN")
	localeUS    = language.MustParse("en-US")
	localeUK    = language.MustParse("en-GB")

	// the first one is the fallback for unmatched locales
	supportedLocales = []language.Tag{localeIndia, localeUS, localeUK}
	localeMatcher    = language.NewMatcher(supportedLocales)
)

type layouts struct {
	date     string
	dateTime string
}

// indexed like supportedLocales
var localeLayouts = []layouts{
	{date: "Jan 02, 2006", dateTime: "Jan 02, 2006, 15:04"},
	{date: "Jan 02, 2006", dateTime: "Jan 02, 2006, 15:04"},
	{date: "02 Jan 2006", dateTime: "02 Jan 2006, 15:04"},
}

type Options struct {
	Timezone string
	Locale   string
	// Now is used for empty or unparseable input, time.Now if nil.
	Now func() time.Time
}

// Formatter renders server timestamps in a configured timezone and locale.
type Formatter struct {
	location *time.Location
	locale   language.Tag
	layouts  layouts
	now      func() time.Time
}

func New(opts Options) (*Formatter, error) {
	tz := strings.TrimSpace(opts.Timezone)
	if tz == "" {
		tz = DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("load location [%s]: %w", tz, err)
	}

	localeIdx := matchLocale(opts.Locale)
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &Formatter{
		location: loc,
		locale:   supportedLocales[localeIdx],
		layouts:  localeLayouts[localeIdx],
		now:      now,
	}, nil
}

// MustDefault returns the Asia/Kolkata, en-IN formatter. It panics only when
// the tz database is missing from the host.
func MustDefault() *Formatter {
	f, err := New(Options{})
	if err != nil {
		panic(err)
	}
	return f
}

// MatchLocale picks the closest supported locale, en-IN when nothing matches.
func MatchLocale(locale string) language.Tag {
	return supportedLocales[matchLocale(locale)]
}

func matchLocale(locale string) int {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return 0
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return 0
	}
	_, idx, confidence := localeMatcher.Match(tag)
	if confidence == language.No {
		return 0
	}
	return idx
}

func (f *Formatter) Location() *time.Location {
	return f.location
}

func (f *Formatter) Locale() language.Tag {
	return f.locale
}

func (f *Formatter) Parse(raw string) time.Time {
	return Parse(raw, f.location, f.now)
}

// FormatDate renders the short date, e.g. "Jan 05, 2024".
func (f *Formatter) FormatDate(raw string) string {
	return f.Parse(raw).In(f.location).Format(f.layouts.date)
}

// FormatTime renders the date with a 24h time, e.g. "Jan 05, 2024, 14:30".
func (f *Formatter) FormatTime(raw string) string {
	return f.Parse(raw).In(f.location).Format(f.layouts.dateTime)
}
