package readme

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// UpdateTimestamp writes text as the single line of the last update region and
// reports whether the document changed. Documents without the region are left alone.
func (d *Document) UpdateTimestamp(text string) (bool, error) {
	start := d.index(LastUpdateMarker, 0)
	if start == -1 {
		return false, nil
	}

	end, err := d.endAfter(LastUpdateEndMarker, start)
	if err != nil {
		return false, err
	}
	switch {
	case end == -1:
		d.insert(start+1, text, LastUpdateEndMarker)
	case end == start+2:
		if d.lines[start+1] == text {
			return false, nil
		}
		d.lines[start+1] = text
	default:
		d.replace(start+1, end, text)
	}
	return true, nil
}

// ParseOffset parses a timezone offset such as "+05:30", "-08:00" or "GMT+01:00".
// An empty string is a zero offset.
func ParseOffset(value string) (time.Duration, error) {
	s := strings.TrimSpace(value)
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimPrefix(s, "GMT"), "UTC"))
	if s == "" {
		return 0, nil
	}

	sign := time.Duration(1)
	switch s[0] {
	case '-':
		sign = -1
		s = s[1:]
	case '+':
		s = s[1:]
	}

	hh, mm, ok := strings.Cut(s, ":")
	if !ok {
		return 0, fmt.Errorf("invalid timezone offset %q, expected ±HH:MM", value)
	}
	hours, err := strconv.Atoi(strings.TrimSpace(hh))
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("invalid timezone offset %q, bad hours", value)
	}
	minutes, err := strconv.Atoi(strings.TrimSpace(mm))
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("invalid timezone offset %q, bad minutes", value)
	}

	return sign * (time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute), nil
}

// Shift returns the UTC wall clock of t with offset subtracted
func Shift(t time.Time, offset time.Duration) time.Time {
	return t.UTC().Add(-offset)
}

// FormatTimestamp renders t with a layout made of the tokens DD MM YYYY YY HH hh mm ss AA aa.
// Each token is replaced once, at its first occurrence.
// The 12-hour clock is hour%12 only above 12: noon renders as "12 am" and midnight as "00 am".
func FormatTimestamp(t time.Time, layout string) string {
	hour := t.Hour()
	hour12 := hour
	meridiem := "am"
	if hour > 12 {
		hour12 = hour % 12
		meridiem = "pm"
	}

	replacements := []struct {
		token string
		value string
	}{
		{"DD", twoDigits(t.Day())},
		{"MM", twoDigits(int(t.Month()))},
		{"YYYY", strconv.Itoa(t.Year())},
		{"YY", twoDigits(t.Year() % 100)},
		{"aa", meridiem},
		{"AA", strings.ToUpper(meridiem)},
		{"mm", twoDigits(t.Minute())},
		{"HH", twoDigits(hour)},
		{"hh", twoDigits(hour12)},
		{"ss", twoDigits(t.Second())},
	}

	out := layout
	for _, r := range replacements {
		out = strings.Replace(out, r.token, r.value, 1)
	}
	return out
}

func twoDigits(n int) string {
	return fmt.Sprintf("%02d", n)
}
