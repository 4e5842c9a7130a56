// Package locale formats dates the way an id-ID browser locale does.
package locale

import (
	"fmt"
	"time"
)

var dayNames = [...]string{"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"}

var monthNames = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

func DayName(t time.Time) string {
	return dayNames[t.Weekday()]
}

func MonthName(t time.Time) string {
	return monthNames[t.Month()-1]
}

// DayLabel renders "Senin, 19 Oktober".
func DayLabel(t time.Time) string {
	return fmt.Sprintf("%s, %d %s", DayName(t), t.Day(), MonthName(t))
}

// LongDate renders "Senin, 19 Oktober 2026".
func LongDate(t time.Time) string {
	return fmt.Sprintf("%s %d", DayLabel(t), t.Year())
}

// ClockTime renders a two-digit "19.30"; id-ID separates hours and minutes with a dot.
func ClockTime(t time.Time) string {
	return fmt.Sprintf("%02d.%02d", t.Hour(), t.Minute())
}
