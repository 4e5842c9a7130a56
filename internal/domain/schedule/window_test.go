package schedule

import (
	"testing"
	"time"
)

func jakarta(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	return loc
}

func TestNormalizeTime(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "9:5", want: "09:05"},
		{in: "14:30", want: "14:30"},
		{in: "7", want: "07:00"},
		{in: "7:", want: "07:00"},
		{in: "21:45:10", want: "21:45"},
	}

	for _, tt := range tests {
		if got := NormalizeTime(tt.in); got != tt.want {
			t.Fatalf("NormalizeTime(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestClassify_WindowBoundary(t *testing.T) {
	loc := jakarta(t)
	start := time.Date(2026, 10, 19, 15, 0, 0, 0, loc)

	tests := []struct {
		name string
		now  time.Time
		want Bucket
	}{
		{name: "before kickoff", now: start.Add(-3 * time.Hour), want: BucketToday},
		{name: "119 minutes in", now: start.Add(119 * time.Minute), want: BucketToday},
		{name: "exactly at end", now: start.Add(MatchDuration), want: BucketToday},
		{name: "121 minutes in", now: start.Add(121 * time.Minute), want: BucketFinished},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.now, start, loc); got != tt.want {
				t.Fatalf("Classify() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestClassify_TomorrowRollover(t *testing.T) {
	loc := jakarta(t)
	now := time.Date(2026, 10, 19, 23, 0, 0, 0, loc)
	start := time.Date(2026, 10, 20, 0, 30, 0, 0, loc)

	if got := Classify(now, start, loc); got != BucketTomorrow {
		t.Fatalf("Classify() = %s, want tomorrow", got)
	}
}

func TestClassify_TomorrowAcrossDSTUsesCalendarDays(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Amsterdam")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	// Clocks go back on 2026-10-25, making that day 25 hours long.
	now := time.Date(2026, 10, 25, 0, 30, 0, 0, loc)
	start := time.Date(2026, 10, 26, 0, 10, 0, 0, loc)

	if got := Classify(now, start, loc); got != BucketTomorrow {
		t.Fatalf("Classify() = %s, want tomorrow", got)
	}
}

func TestClassify_OutOfWindowIsExcluded(t *testing.T) {
	loc := jakarta(t)
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, loc)
	start := time.Date(2026, 10, 22, 19, 0, 0, 0, loc)

	if got := Classify(now, start, loc); got != BucketExcluded {
		t.Fatalf("Classify() = %s, want excluded", got)
	}
}

func TestClassify_PastDaysAreFinished(t *testing.T) {
	loc := jakarta(t)
	now := time.Date(2026, 10, 19, 0, 30, 0, 0, loc)

	tests := []struct {
		name  string
		start time.Time
	}{
		{name: "yesterday evening", start: time.Date(2026, 10, 18, 19, 0, 0, 0, loc)},
		{name: "yesterday ending just before now", start: time.Date(2026, 10, 18, 22, 29, 0, 0, loc)},
		{name: "three days back", start: time.Date(2026, 10, 16, 15, 30, 0, 0, loc)},
		{name: "previous month", start: time.Date(2026, 9, 1, 20, 0, 0, 0, loc)},
	}

	for _, tt := range tests {
		if got := Classify(now, tt.start, loc); got != BucketFinished {
			t.Fatalf("%s: Classify() = %s, want finished", tt.name, got)
		}
	}
}

func TestClassify_YesterdayStillRunningIsExcluded(t *testing.T) {
	loc := jakarta(t)
	now := time.Date(2026, 10, 19, 0, 30, 0, 0, loc)
	start := time.Date(2026, 10, 18, 23, 0, 0, 0, loc)

	if got := Classify(now, start, loc); got != BucketExcluded {
		t.Fatalf("Classify() = %s, want excluded until the window ends", got)
	}
}

func TestClassifyMatch_UnparseableIsExcluded(t *testing.T) {
	loc := jakarta(t)
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, loc)

	for _, m := range []Match{
		{Tanggal: "19/10/2026", Jam: "19:00"},
		{Tanggal: "2026-10-19", Jam: "jam 7"},
		{},
	} {
		if got := ClassifyMatch(now, m, loc); got != BucketExcluded {
			t.Fatalf("ClassifyMatch(%+v) = %s, want excluded", m, got)
		}
	}
}
