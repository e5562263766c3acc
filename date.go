package apod

import (
	"fmt"
	"time"
)

// Date selects which picture to ask for. The zero value means "today",
// as decided by the API server.
//
// Explicit dates are not range checked, the server reports bad ones.
type Date struct {
	explicit bool
	day      uint8
	month    uint8
	year     uint16
}

// Today returns the date of the current picture.
func Today() Date {
	return Date{}
}

// On returns an explicit calendar date.
func On(day, month uint8, year uint16) Date {
	return Date{explicit: true, day: day, month: month, year: year}
}

// FromTime converts t to an explicit date in t's location.
func FromTime(t time.Time) Date {
	return On(uint8(t.Day()), uint8(t.Month()), uint16(t.Year()))
}

// IsToday reports whether d has no explicit value.
func (d Date) IsToday() bool {
	return !d.explicit
}

// Param returns the value of the "date" query parameter, formatted as
// YYYY-MM-DD. The second result is false for today.
func (d Date) Param() (string, bool) {
	if !d.explicit {
		return "", false
	}
	return fmt.Sprintf("%d-%02d-%02d", d.year, d.month, d.day), true
}

func (d Date) String() string {
	if p, ok := d.Param(); ok {
		return p
	}
	return "today"
}
