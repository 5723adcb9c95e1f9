package models

import (
	"fmt"
	"strings"
	"time"
)

// Storage layouts for calendar values. Records keep dates and clock times
// as strings so store-native temporal types never reach the services.
const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// FormatDate serializes the calendar date part of t.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatClock serializes the hour and minute of t.
func FormatClock(t time.Time) string {
	return t.Format(ClockLayout)
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return t, nil
}

// ParseClock parses HH:MM, also accepting a trailing :SS which is dropped.
func ParseClock(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{ClockLayout, "15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Truncate(time.Minute), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time %q, expected HH:MM", s)
}

// Date is a calendar date that travels as "YYYY-MM-DD" in JSON bodies.
type Date struct {
	time.Time
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(`"` + FormatDate(d.Time) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	t, err := ParseDate(s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// Clock is an hour:minute value that travels as "HH:MM" in JSON bodies.
type Clock struct {
	time.Time
}

func (c Clock) MarshalJSON() ([]byte, error) {
	if c.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(`"` + FormatClock(c.Time) + `"`), nil
}

func (c *Clock) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		c.Time = time.Time{}
		return nil
	}
	t, err := ParseClock(s)
	if err != nil {
		return err
	}
	c.Time = t
	return nil
}
