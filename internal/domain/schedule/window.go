package schedule

import (
	"fmt"
	"strings"
	"time"
)

// MatchDuration is the fixed window a scheduled match stays visible after kickoff.
const MatchDuration = 120 * time.Minute

type Bucket int

const (
	BucketExcluded Bucket = iota
	BucketToday
	BucketTomorrow
	BucketFinished
)

func (b Bucket) String() string {
	switch b {
	case BucketToday:
		return "today"
	case BucketTomorrow:
		return "tomorrow"
	case BucketFinished:
		return "finished"
	default:
		return "excluded"
	}
}

// NormalizeTime pads a "H:M" feed time to "HH:MM"; a missing minute becomes "00".
func NormalizeTime(jam string) string {
	parts := strings.Split(jam, ":")
	minute := "00"
	if len(parts) > 1 && parts[1] != "" {
		minute = parts[1]
	}
	return padLeft2(parts[0]) + ":" + padLeft2(minute)
}

func padLeft2(v string) string {
	if len(v) >= 2 {
		return v
	}
	return strings.Repeat("0", 2-len(v)) + v
}

// MatchStart composes the kickoff instant from the feed's date and time columns in loc.
func MatchStart(tanggal, jam string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	start, err := time.ParseInLocation("2006-01-02 15:04", tanggal+" "+NormalizeTime(jam), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse match start %q %q: %w", tanggal, jam, err)
	}
	return start, nil
}

// Classify places a match starting at start relative to now.
// Today and tomorrow are calendar days in loc; a match stays in them until its window ends.
func Classify(now, start time.Time, loc *time.Location) Bucket {
	if loc == nil {
		loc = time.Local
	}

	end := start.Add(MatchDuration)
	local := now.In(loc)
	today := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	tomorrow := today.AddDate(0, 0, 1)
	day := calendarDay(start, loc)

	switch {
	case day.Equal(today) && !now.After(end):
		return BucketToday
	case day.Equal(tomorrow) && !now.After(end):
		return BucketTomorrow
	case now.After(end):
		return BucketFinished
	default:
		return BucketExcluded
	}
}

func calendarDay(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// ClassifyMatch combines MatchStart and Classify. Unparseable rows are excluded.
func ClassifyMatch(now time.Time, m Match, loc *time.Location) Bucket {
	start, err := MatchStart(m.Tanggal, m.Jam, loc)
	if err != nil {
		return BucketExcluded
	}
	return Classify(now, start, loc)
}
