package biztime

import (
	"strconv"
	"time"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

const (
	day   = 24 * time.Hour
	week  = 7 * day
	month = 30 * day
	year  = 365 * day
)

var persianDigits = runes.Map(func(r rune) rune {
	if r >= '0' && r <= '9' {
		return '۰' + (r - '0')
	}
	return r
})

// PersianNumber prints n with Persian digits.
func PersianNumber(n int64) string {
	s := strconv.FormatInt(n, 10)
	out, _, err := transform.String(persianDigits, s)
	if err != nil {
		return s
	}
	return out
}

// TimeAgo renders the distance from t to now as a Persian relative label,
// e.g. "۵ دقیقه پیش". Future times read as "چند لحظه پیش".
func TimeAgo(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "چند لحظه پیش"
	case d < time.Hour:
		return ago(d/time.Minute, "دقیقه")
	case d < day:
		return ago(d/time.Hour, "ساعت")
	case d < week:
		return ago(d/day, "روز")
	case d < month:
		return ago(d/week, "هفته")
	case d < year:
		return ago(d/month, "ماه")
	default:
		return ago(d/year, "سال")
	}
}

func ago(n time.Duration, unit string) string {
	return PersianNumber(int64(n)) + " " + unit + " پیش"
}
