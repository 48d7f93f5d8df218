package services_test

import (
	"testing"
	"time"

	"github.com/fitgenius/backend/internal/services"
)

func day(t *testing.T, today time.Time, offset int) string {
	t.Helper()
	return today.AddDate(0, 0, offset).Format("2006-01-02")
}

func TestStreakFromDates(t *testing.T) {
	t.Parallel()
	today := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		offsets []int // days before today, newest first
		want    int
	}{
		{name: "no logs", offsets: nil, want: 0},
		{name: "single log today", offsets: []int{0}, want: 1},
		{name: "three consecutive days", offsets: []int{0, -1, -2}, want: 3},
		{name: "gap two days back terminates", offsets: []int{0, -1, -3}, want: 2},
		{name: "lone log two days ago", offsets: []int{-2}, want: 0},
		{name: "streak anchored on yesterday", offsets: []int{-1, -2, -3}, want: 3},
		{name: "gap after yesterday anchor", offsets: []int{-1, -3}, want: 1},
		{name: "future-dated log terminates", offsets: []int{2}, want: 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			dates := make([]string, 0, len(tt.offsets))
			for _, off := range tt.offsets {
				dates = append(dates, day(t, today, off))
			}
			if got := services.StreakFromDates(dates, today); got != tt.want {
				t.Errorf("StreakFromDates(%v) = %d, want %d", dates, got, tt.want)
			}
		})
	}
}

func TestStreakDuplicateDatesCountOnce(t *testing.T) {
	t.Parallel()
	today := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	// Double-logged days collapse: five logs across three days is a 3-day streak.
	dates := []string{
		day(t, today, 0), day(t, today, 0),
		day(t, today, -1), day(t, today, -1),
		day(t, today, -2),
	}
	if got := services.StreakFromDates(dates, today); got != 3 {
		t.Errorf("StreakFromDates(%v) = %d, want 3", dates, got)
	}

	// Duplicates right before a gap must not extend the streak either.
	dates = []string{day(t, today, 0), day(t, today, 0), day(t, today, -2)}
	if got := services.StreakFromDates(dates, today); got != 1 {
		t.Errorf("StreakFromDates(%v) = %d, want 1", dates, got)
	}
}

func TestStreakUnparseableDateTerminates(t *testing.T) {
	t.Parallel()
	today := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	dates := []string{day(t, today, 0), "not-a-date", day(t, today, -1)}
	if got := services.StreakFromDates(dates, today); got != 1 {
		t.Errorf("StreakFromDates(%v) = %d, want 1", dates, got)
	}
}
