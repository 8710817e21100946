// Package datetime renders timestamps and calendar dates in one fixed
// timezone, independent of the host's local zone.
package datetime

import (
	"fmt"
	"math"
	"time"
	_ "time/tzdata"

	"github.com/dustin/go-humanize"
)

const (
	DefaultTimezone = "America/Sao_Paulo"

	LocalePtBR = "pt_BR"
	LocaleEn   = "en"

	DateTimeLayout = "02/01/2006 15:04:05"
	DateLayout     = "02/01/2006"
	ISODateLayout  = "2006-01-02"
	ISOLayout      = "2006-01-02T15:04:05.000000Z"
)

// FormattedDate is the wire shape of every date field
type FormattedDate struct {
	Formatted string `json:"formatted"`
	ISO       string `json:"iso"`
	Timestamp int64  `json:"timestamp"`
	Relative  string `json:"relative"`
}

// Clock supplies "now" and the configured location.
type Clock struct {
	loc *time.Location
	now func() time.Time
}

func NewClock(timezone string) (*Clock, error) {
	if timezone == "" {
		timezone = DefaultTimezone
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Clock{loc: loc, now: time.Now}, nil
}

// NewFixedClock always reports now; used by tests and the seeder.
func NewFixedClock(loc *time.Location, now time.Time) *Clock {
	return &Clock{loc: loc, now: func() time.Time { return now }}
}

func (c *Clock) Location() *time.Location {
	return c.loc
}

func (c *Clock) Now() time.Time {
	return c.now().In(c.loc)
}

// Today is midnight of the current calendar day in the clock's location.
func (c *Clock) Today() time.Time {
	now := c.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, c.loc)
}

// CalendarDay reinterprets the year/month/day of t as a day in the clock's
// location. Due dates are stored without a zone, so their components are
// taken as-is instead of being converted.
func (c *Clock) CalendarDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, c.loc)
}

// ParseDate parses YYYY-MM-DD as a calendar day in the clock's location.
func (c *Clock) ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(ISODateLayout, value, c.loc)
}

// Formatter shapes times for API responses.
type Formatter struct {
	clock  *Clock
	locale string
}

func NewFormatter(clock *Clock, locale string) *Formatter {
	if locale != LocaleEn {
		locale = LocalePtBR
	}
	return &Formatter{clock: clock, locale: locale}
}

func (f *Formatter) Clock() *Clock {
	return f.clock
}

func (f *Formatter) Location() *time.Location {
	return f.clock.Location()
}

// DateTime formats an instant.
func (f *Formatter) DateTime(t time.Time) FormattedDate {
	return FormattedDate{
		Formatted: t.In(f.clock.loc).Format(DateTimeLayout),
		ISO:       t.UTC().Format(ISOLayout),
		Timestamp: t.Unix(),
		Relative:  f.Relative(t),
	}
}

// Date formats a calendar day, anchored at midnight in the configured zone.
func (f *Formatter) Date(t time.Time) FormattedDate {
	day := f.clock.CalendarDay(t)
	return FormattedDate{
		Formatted: day.Format(DateLayout),
		ISO:       day.Format(ISODateLayout),
		Timestamp: day.Unix(),
		Relative:  f.Relative(day),
	}
}

// DateTimePtr and DatePtr return nil for nil input so optional fields
// serialize as null.
func (f *Formatter) DateTimePtr(t *time.Time) *FormattedDate {
	if t == nil {
		return nil
	}
	formatted := f.DateTime(*t)
	return &formatted
}

func (f *Formatter) DatePtr(t *time.Time) *FormattedDate {
	if t == nil {
		return nil
	}
	formatted := f.Date(*t)
	return &formatted
}

// Relative renders t as a phrase relative to the clock's now.
func (f *Formatter) Relative(t time.Time) string {
	now := f.clock.Now()
	if f.locale == LocaleEn {
		return humanize.RelTime(t, now, "ago", "from now")
	}
	return humanize.CustomRelTime(t, now, "há", "daqui a", ptBRMagnitudes)
}

var ptBRMagnitudes = []humanize.RelTimeMagnitude{
	{D: time.Second, Format: "agora", DivBy: time.Second},
	{D: 2 * time.Second, Format: "%s 1 segundo", DivBy: 1},
	{D: time.Minute, Format: "%s %d segundos", DivBy: time.Second},
	{D: 2 * time.Minute, Format: "%s 1 minuto", DivBy: 1},
	{D: time.Hour, Format: "%s %d minutos", DivBy: time.Minute},
	{D: 2 * time.Hour, Format: "%s 1 hora", DivBy: 1},
	{D: humanize.Day, Format: "%s %d horas", DivBy: time.Hour},
	{D: 2 * humanize.Day, Format: "%s 1 dia", DivBy: 1},
	{D: humanize.Week, Format: "%s %d dias", DivBy: humanize.Day},
	{D: 2 * humanize.Week, Format: "%s 1 semana", DivBy: 1},
	{D: humanize.Month, Format: "%s %d semanas", DivBy: humanize.Week},
	{D: 2 * humanize.Month, Format: "%s 1 mês", DivBy: 1},
	{D: humanize.Year, Format: "%s %d meses", DivBy: humanize.Month},
	{D: 2 * humanize.Year, Format: "%s 1 ano", DivBy: 1},
	{D: math.MaxInt64, Format: "%s %d anos", DivBy: humanize.Year},
}
