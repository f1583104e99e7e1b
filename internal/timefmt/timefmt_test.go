package timefmt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

var fixedNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func nowFunc() time.Time {
	return fixedNow
}

func mustKolkata(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)
	return loc
}

func TestParse(t *testing.T) {
	kolkata := mustKolkata(t)

	for _, tc := range []struct {
		name     string
		raw      string
		expected time.Time
	}{
		{"empty", "", fixedNow},
		{"blank", "   ", fixedNow},
		{"utc marker", "2024-01-05T10:00:00Z", time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC)},
		{"lowercase utc marker", "2024-01-05t10:00:00z", time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC)},
		{"utc with fraction", "2024-01-05T10:00:00.123456Z", time.Date(2024, 1, 5, 10, 0, 0, 123456000, time.UTC)},
		{"offset", "2024-01-05T10:00:00+02:00", time.Date(2024, 1, 5, 8, 0, 0, 0, time.UTC)},
		{"offset with space", "2024-01-05 10:00:00-05:00", time.Date(2024, 1, 5, 15, 0, 0, 0, time.UTC)},
		{"naive", "2024-01-05T10:00:00", time.Date(2024, 1, 5, 10, 0, 0, 0, kolkata)},
		{"naive with space", "2024-01-05 10:00:00", time.Date(2024, 1, 5, 10, 0, 0, 0, kolkata)},
		{"naive with fraction", "2024-01-05T10:00:00.987654", time.Date(2024, 1, 5, 10, 0, 0, 0, kolkata)},
		{"date only", "2024-01-05", time.Date(2024, 1, 5, 0, 0, 0, 0, kolkata)},
		{"rfc1123", "Fri, 05 Jan 2024 10:00:00 GMT", time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC)},
		{"garbage", "not a date", fixedNow},
		{"garbage with z", "lazy", fixedNow},
		{"naive out of range", "2024-13-05T10:00:00", fixedNow},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got := Parse(tc.raw, kolkata, nowFunc)
			assert.True(t, tc.expected.Equal(got), "expected %s, got %s", tc.expected, got)
		})
	}
}

func TestParse_NaiveIsNotUTC(t *testing.T) {
	kolkata := mustKolkata(t)
	withZone := Parse("2024-01-05T10:00:00Z", kolkata, nowFunc)
	naive := Parse("2024-01-05T10:00:00", kolkata, nowFunc)
	assert.Equal(t, 5*time.Hour+30*time.Minute, withZone.Sub(naive))
}

func TestParse_NilLocationAndNow(t *testing.T) {
	got := Parse("2024-01-05T10:00:00", nil, nil)
	assert.True(t, time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC).Equal(got))
}

func TestNew_Defaults(t *testing.T) {
	f, err := New(Options{})
	require.NoError(t, err)
	assert.Equal(t, "Asia/Kolkata", f.Location().String())
	assert.Equal(t, language.MustParse("en-IN"), f.Locale())
}

func TestNew_UnknownTimezone(t *testing.T) {
	f, err := New(Options{Timezone: "Mars/Olympus_Mons"})
	assert.Error(t, err)
	assert.Nil(t, f)
}

func TestMatchLocale(t *testing.T) {
	assert.Equal(t, language.MustParse("en-IN"), MatchLocale(""))
	assert.Equal(t, language.MustParse("en-IN"), MatchLocale("en-IN"))
	assert.Equal(t, language.MustParse("en-US"), MatchLocale("en-US"))
	assert.Equal(t, language.MustParse("en-GB"), MatchLocale("en-GB"))
	assert.Equal(t, language.MustParse("en-IN"), MatchLocale("!!not a locale"))
	assert.Equal(t, language.MustParse("en-IN"), MatchLocale("ja-JP"))
}

func TestFormatter_FormatDateAndTime(t *testing.T) {
	f, err := New(Options{Now: nowFunc})
	require.NoError(t, err)

	assert.Equal(t, "Jan 05, 2024", f.FormatDate("2024-01-05T10:00:00"))
	assert.Equal(t, "Jan 05, 2024, 14:30", f.FormatTime("2024-01-05T14:30:00"))
	// 10:00 utc is 15:30 in Kolkata
	assert.Equal(t, "Jan 05, 2024, 15:30", f.FormatTime("2024-01-05T10:00:00Z"))
	// crosses midnight
	assert.Equal(t, "Jan 06, 2024", f.FormatDate("2024-01-05T20:00:00Z"))
	// empty -> now, rendered in Kolkata
	assert.Equal(t, "Mar 01, 2025, 17:30", f.FormatTime(""))
}

func TestFormatter_Locales(t *testing.T) {
	us, err := New(Options{Timezone: "UTC", Locale: "en-US", Now: nowFunc})
	require.NoError(t, err)
	assert.Equal(t, "Jan 05, 2024", us.FormatDate("2024-01-05T10:00:00"))
	assert.Equal(t, "Jan 05, 2024, 10:00", us.FormatTime("2024-01-05T10:00:00"))

	gb, err := New(Options{Timezone: "Europe/London", Locale: "en-GB", Now: nowFunc})
	require.NoError(t, err)
	assert.Equal(t, "05 Jan 2024", gb.FormatDate("2024-01-05T10:00:00"))
	assert.Equal(t, "05 Jan 2024, 10:00", gb.FormatTime("2024-01-05T10:00:00"))
	assert.Equal(t, "05 Jan 2024, 10:00", gb.FormatTime("2024-01-05T10:00:00Z"))
}

func TestMustDefault(t *testing.T) {
	assert.NotPanics(t, func() {
		f := MustDefault()
		assert.Equal(t, "Asia/Kolkata", f.Location().String())
	})
}
