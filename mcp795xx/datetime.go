package mcp795xx

import (
	"fmt"
	"time"
)

// DateTime holds the fields stored in the RTCC time registers. Ranges are
// only checked when the value is written to the chip.
type DateTime struct {
	Seconds uint8 // 0-59
	Minutes uint8 // 0-59
	Hours   uint8 // 0-23

	Weekday uint8 // 1-7, Sunday is 1
	Date    uint8 // 1-31
	Month   uint8 // 1-12
	Year    uint16
}

// FromTime converts t, in its own location, to a DateTime. Weekdays are
// numbered from Sunday = 1.
func FromTime(t time.Time) DateTime {
	return DateTime{
		Seconds: uint8(t.Second()),
		Minutes: uint8(t.Minute()),
		Hours:   uint8(t.Hour()),
		Weekday: uint8(t.Weekday()) + 1,
		Date:    uint8(t.Day()),
		Month:   uint8(t.Month()),
		Year:    uint16(t.Year()),
	}
}

// Time returns dt as a UTC time.Time. The weekday field is not consulted.
func (dt DateTime) Time() (time.Time, error) {
	t := time.Date(int(dt.Year), time.Month(dt.Month), int(dt.Date),
		int(dt.Hours), int(dt.Minutes), int(dt.Seconds), 0, time.UTC)

	// time.Date normalizes out-of-range fields, so anything that moved was invalid
	check := FromTime(t)
	check.Weekday = dt.Weekday
	if check != dt {
		return time.Time{}, fmt.Errorf("%w: %s", ErrInvalidDate, dt)
	}
	return t, nil
}

func (dt DateTime) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d",
		dt.Year, dt.Month, dt.Date, dt.Hours, dt.Minutes, dt.Seconds)
}
