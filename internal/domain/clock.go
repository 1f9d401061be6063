package domain

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"
)

const (
	MinutesPerDay = 24 * 60

	// EndOfDay is the last minute a daily log can record.
	EndOfDay ClockTime = MinutesPerDay - 1
)

var ErrInvalidClock = errors.New("invalid clock time")

// ClockTime is a time of day on the log's single calendar day,
// stored as minutes since midnight.
type ClockTime int

func NewClockTime(hour, minute int) (ClockTime, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("new clock time %02d:%02d: %w", hour, minute, ErrInvalidClock)
	}
	return ClockTime(hour*60 + minute), nil
}

// ParseClock parses an "HH:MM" (or "H:MM") 24-hour time of day.
func ParseClock(s string) (ClockTime, error) {
	s = strings.TrimSpace(s)
	hs, ms, ok := strings.Cut(s, ":")
	if !ok {
		return 0, fmt.Errorf("parse clock %q: %w", s, ErrInvalidClock)
	}

	hour, err := strconv.Atoi(hs)
	if err != nil {
		return 0, fmt.Errorf("parse clock %q: hour: %w", s, ErrInvalidClock)
	}
	minute, err := strconv.Atoi(ms)
	if err != nil {
		return 0, fmt.Errorf("parse clock %q: minute: %w", s, ErrInvalidClock)
	}

	return NewClockTime(hour, minute)
}

// ClockFromMinutes wraps an absolute minute count onto a 24-hour clock face.
// Values past midnight wrap for display; the caller owns any day overflow.
func ClockFromMinutes(total int) ClockTime {
	return ClockTime(((total % MinutesPerDay) + MinutesPerDay) % MinutesPerDay)
}

// ClockAt captures the wall-clock hour and minute of t.
func ClockAt(t time.Time) ClockTime {
	return ClockTime(t.Hour()*60 + t.Minute())
}

func ClockPtr(c ClockTime) *ClockTime { return &c }

func (c ClockTime) Valid() bool { return c >= 0 && c < MinutesPerDay }

func (c ClockTime) Hour() int { return int(c) / 60 }

func (c ClockTime) Minute() int { return int(c) % 60 }

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

// HoursBetween returns the elapsed hours from start to end. An end earlier
// than start crosses midnight once. Invalid clock values yield 0.
func HoursBetween(start, end ClockTime) float64 {
	if !start.Valid() || !end.Valid() {
		log.Printf("duration: malformed clock value start=%d end=%d", int(start), int(end))
		return 0
	}

	e := end
	if e < start {
		e += MinutesPerDay
	}
	return float64(e-start) / 60
}

// DurationHours is the text form of HoursBetween. Empty input (an open
// interval) and unparseable input both yield 0.
func DurationHours(start, end string) float64 {
	if strings.TrimSpace(start) == "" || strings.TrimSpace(end) == "" {
		return 0
	}

	s, err := ParseClock(start)
	if err != nil {
		log.Printf("duration: malformed clock value start=%q err=%v", start, err)
		return 0
	}
	e, err := ParseClock(end)
	if err != nil {
		log.Printf("duration: malformed clock value end=%q err=%v", end, err)
		return 0
	}

	return HoursBetween(s, e)
}
