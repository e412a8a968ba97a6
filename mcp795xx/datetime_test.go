package mcp795xx

import (
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
)

func TestFromTime(t *testing.T) {
	c := qt.New(t)
	dt := FromTime(time.Date(2024, time.March, 15, 14, 30, 45, 999, time.UTC))
	c.Assert(dt, qt.Equals, sample)

	// weekdays are numbered from Sunday
	c.Assert(FromTime(time.Date(2024, time.March, 17, 0, 0, 0, 0, time.UTC)).Weekday, qt.Equals, uint8(1))
	c.Assert(FromTime(time.Date(2024, time.March, 16, 0, 0, 0, 0, time.UTC)).Weekday, qt.Equals, uint8(7))
}

func TestFromTimeKeepsLocation(t *testing.T) {
	c := qt.New(t)
	loc := time.FixedZone("UTC+2", 2*60*60)
	dt := FromTime(time.Date(2024, time.March, 15, 23, 0, 0, 0, loc))
	c.Assert(dt.Hours, qt.Equals, uint8(23))
	c.Assert(dt.Date, qt.Equals, uint8(15))
}

func TestDateTimeTime(t *testing.T) {
	c := qt.New(t)
	got, err := sample.Time()
	c.Assert(err, qt.IsNil)
	c.Assert(got, qt.DeepEquals, time.Date(2024, time.March, 15, 14, 30, 45, 0, time.UTC))

	// weekday is carried, not checked
	dt := sample
	dt.Weekday = 2
	_, err = dt.Time()
	c.Assert(err, qt.IsNil)
}

func TestDateTimeTimeInvalid(t *testing.T) {
	tests := []struct {
		name string
		dt   DateTime
	}{
		{"february 30", DateTime{Year: 2023, Month: 2, Date: 30, Weekday: 1}},
		{"february 29 non leap", DateTime{Year: 2023, Month: 2, Date: 29, Weekday: 1}},
		{"month zero", DateTime{Year: 2023, Month: 0, Date: 1, Weekday: 1}},
		{"hour 24", DateTime{Year: 2023, Month: 1, Date: 1, Hours: 24}},
		{"seconds 60", DateTime{Year: 2023, Month: 1, Date: 1, Seconds: 60}},
	}
	for _, tt := range tests {
		qt.New(t).Run(tt.name, func(c *qt.C) {
			_, err := tt.dt.Time()
			c.Assert(err, qt.ErrorIs, ErrInvalidDate)
		})
	}

	_, err := DateTime{Year: 2024, Month: 2, Date: 29}.Time()
	qt.New(t).Assert(err, qt.IsNil)
}

func TestDateTimeString(t *testing.T) {
	qt.New(t).Assert(sample.String(), qt.Equals, "2024-03-15 14:30:45")
}
