package datetime

import (
	"testing"
	"time"
)

func newTestFormatter(t *testing.T, locale string, now time.Time) *Formatter {
	t.Helper()
	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	return NewFormatter(NewFixedClock(loc, now), locale)
}

func TestFormatterDateTime(t *testing.T) {
	now := time.Date(2025, 6, 15, 18, 0, 0, 0, time.UTC)
	f := newTestFormatter(t, LocalePtBR, now)

	// 12:30 UTC is 09:30 in Sao Paulo (UTC-3)
	instant := time.Date(2025, 6, 15, 12, 30, 45, 123456000, time.UTC)
	got := f.DateTime(instant)

	if got.Formatted != "15/06/2025 09:30:45" {
		t.Errorf("Formatted = %q", got.Formatted)
	}
	if got.ISO != "2025-06-15T12:30:45.123456Z" {
		t.Errorf("ISO = %q", got.ISO)
	}
	if got.Timestamp != instant.Unix() {
		t.Errorf("Timestamp = %d, want %d", got.Timestamp, instant.Unix())
	}
	if got.Relative != "há 5 horas" {
		t.Errorf("Relative = %q", got.Relative)
	}
}

func TestFormatterIgnoresHostZone(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	f := newTestFormatter(t, LocalePtBR, now)

	tokyo, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	instant := time.Date(2025, 1, 1, 9, 0, 0, 0, tokyo)

	if got := f.DateTime(instant).Formatted; got != "31/12/2024 21:00:00" {
		t.Errorf("Formatted = %q, want 31/12/2024 21:00:00", got)
	}
}

func TestFormatterDate(t *testing.T) {
	now := time.Date(2025, 12, 29, 15, 0, 0, 0, time.UTC)
	f := newTestFormatter(t, LocalePtBR, now)

	// stored due dates come back as midnight UTC; the day must not shift
	due := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	got := f.Date(due)

	if got.Formatted != "31/12/2025" {
		t.Errorf("Formatted = %q", got.Formatted)
	}
	if got.ISO != "2025-12-31" {
		t.Errorf("ISO = %q", got.ISO)
	}
	want := time.Date(2025, 12, 31, 3, 0, 0, 0, time.UTC).Unix()
	if got.Timestamp != want {
		t.Errorf("Timestamp = %d, want %d", got.Timestamp, want)
	}
	if got.Relative != "daqui a 1 dia" {
		t.Errorf("Relative = %q", got.Relative)
	}
}

func TestRelativePhrases(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		locale string
		at     time.Time
		want   string
	}{
		{"now", LocalePtBR, now, "agora"},
		{"seconds", LocalePtBR, now.Add(-30 * time.Second), "há 30 segundos"},
		{"one minute", LocalePtBR, now.Add(-time.Minute), "há 1 minuto"},
		{"minutes", LocalePtBR, now.Add(-5 * time.Minute), "há 5 minutos"},
		{"days ahead", LocalePtBR, now.Add(3 * 24 * time.Hour), "daqui a 3 dias"},
		{"english", LocaleEn, now.Add(-5 * time.Minute), "5 minutes ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestFormatter(t, tt.locale, now)
			if got := f.Relative(tt.at); got != tt.want {
				t.Errorf("Relative() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClockToday(t *testing.T) {
	loc, _ := time.LoadLocation(DefaultTimezone)
	// 01:00 UTC on the 10th is still the 9th in Sao Paulo
	clock := NewFixedClock(loc, time.Date(2025, 3, 10, 1, 0, 0, 0, time.UTC))

	today := clock.Today()
	if today.Day() != 9 || today.Hour() != 0 {
		t.Errorf("Today() = %v, want 2025-03-09 00:00 local", today)
	}

	parsed, err := clock.ParseDate("2025-03-09")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if !parsed.Equal(today) {
		t.Errorf("ParseDate = %v, want %v", parsed, today)
	}
}

func TestNilPointers(t *testing.T) {
	f := newTestFormatter(t, LocalePtBR, time.Now())
	if f.DatePtr(nil) != nil || f.DateTimePtr(nil) != nil {
		t.Error("expected nil for nil input")
	}
}

func TestNewClockRejectsUnknownZone(t *testing.T) {
	if _, err := NewClock("Mars/Olympus"); err == nil {
		t.Error("expected error for unknown timezone")
	}
}
