// Package day classifies days of the week as weekdays or weekend days.
package day

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/on-the-ground/typed_basics_go/pure"
	"github.com/rickb777/date/v2"
)

var ErrUnknownDay = errors.New("unknown day")

// Day is one of the seven days, Monday first.
type Day int

const (
	Monday Day = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// Kind is the category of a Day.
type Kind string

const (
	Weekday Kind = "Weekday"
	Weekend Kind = "Weekend"
)

var names = [...]string{
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
	Sunday:    "Sunday",
}

var kinds = [...]Kind{
	Monday:    Weekday,
	Tuesday:   Weekday,
	Wednesday: Weekday,
	Thursday:  Weekday,
	Friday:    Weekday,
	Saturday:  Weekend,
	Sunday:    Weekend,
}

func (d Day) String() string {
	if d < Monday || d > Sunday {
		return fmt.Sprintf("Day(%d)", int(d))
	}
	return names[d]
}

// TypeOf returns the category of d. It panics if d is not one of the seven days.
func TypeOf(d Day) Kind {
	return kinds[d]
}

// Parse looks a day up by its English name, ignoring case.
func Parse(name string) (Day, error) {
	for d, n := range names {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return Day(d), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDay, name)
}

// FromWeekday converts a time.Weekday, which starts on Sunday.
func FromWeekday(wd time.Weekday) Day {
	return Day((int(wd) + 6) % 7)
}

var typeOfDate = pure.TableizeI1O1(func(d date.Date) Kind {
	return TypeOf(FromWeekday(d.Weekday()))
}, 1024)

// TypeOfDate returns the category of the day of the week d falls on.
func TypeOfDate(d date.Date) Kind {
	return typeOfDate(d)
}
