package correction

import (
	"fmt"
	"strings"
	"time"
)

// DefaultClock подставляется к датам без времени.
const DefaultClock = "09:00:00"

type looseLayout struct {
	layout   string
	dateOnly bool
}

// Порядок важен: 02/01/2006 читается как день/месяц, 01/02/2006 пробуется
// только когда первый вариант не подошёл.
var looseLayouts = []looseLayout{
	{"2/January/2006", true},
	{"2/Jan/2006", true},
	{"2006-01-02 15:04:05", false},
	{"2006-01-02T15:04:05", false},
	{"2006-01-02 15:04", false},
	{time.DateOnly, true},
	{"2/1/2006", true},
	{"1/2/2006", true},
	{"January 2, 2006", true},
	{"January, 2 2006", true},
	{"Jan 2, 2006", true},
}

var clockLayouts = []string{"15:04:05", "15:04"}

// ParseLooseDate разбирает дату в одном из форматов, которыми пользуются операторы.
// clock ("HH:MM[:SS]") заменяет время; если он пуст, дата без времени получает DefaultClock.
// Результат всегда в UTC.
func ParseLooseDate(date, clock string) (time.Time, error) {
	value := strings.Join(strings.Fields(date), " ")

	for _, l := range looseLayouts {
		parsed, err := time.Parse(l.layout, value)
		if err != nil {
			continue
		}

		switch {
		case strings.TrimSpace(clock) != "":
			return withClock(parsed, clock)
		case l.dateOnly:
			return withClock(parsed, DefaultClock)
		default:
			return parsed.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrUnparseableDate, date)
}

func withClock(day time.Time, clock string) (time.Time, error) {
	value := strings.TrimSpace(clock)
	for _, layout := range clockLayouts {
		c, err := time.Parse(layout, value)
		if err != nil {
			continue
		}
		return time.Date(day.Year(), day.Month(), day.Day(), c.Hour(), c.Minute(), c.Second(), 0, time.UTC), nil
	}
	return time.Time{}, fmt.Errorf("%w: time %q", ErrUnparseableDate, clock)
}
