// Package mcp795xx implements a driver for the Microchip MCP795xx SPI Real-Time Clock/Calendar, providing read-write
// of the current time only. The chip also has alarms, digital trim, power-fail timestamps, SRAM and EEPROM, but those
// features remain unimplemented.
//
// Every call is a single SPI transaction with chip select held low for its whole length. The driver is not safe for
// concurrent use and does not retry.
//
// Datasheet: Microchip DS20002280, MCP795W1X/MCP795W2X
package mcp795xx

import (
	"time"

	"tinygo.org/x/drivers"
)

// Pin is an output pin used as chip select. machine.Pin satisfies it.
type Pin interface {
	High()
	Low()
}

// HourFormat selects how hours are written to the chip.
type HourFormat uint8

const (
	Format24Hour HourFormat = iota
	Format12Hour
)

type Config struct {
	// Format is used by WriteTime. Reads understand either format. Defaults to 24-hour.
	Format HourFormat
}

// Status holds the flags of the weekday register.
type Status struct {
	OscillatorRunning bool
	PowerFail         bool
	BatteryEnabled    bool
}

// instruction, address, hundredths through year (write) or seconds through control (read)
const frameLen = 10

type Device struct {
	bus    drivers.SPI
	cs     Pin
	format HourFormat
	buf    [frameLen]byte
}

// New creates a new MCP795xx driver on a preconfigured SPI bus (mode 0 or 3, up to 5 MHz) with the given chip select
// pin, which must already be configured as an output.
//
// This function only creates the Device object, it does not touch the device.
func New(bus drivers.SPI, cs Pin) *Device {
	return &Device{
		bus: bus,
		cs:  cs,
	}
}

// Configure applies c and parks chip select high.
func (d *Device) Configure(c Config) {
	d.format = c.Format
	d.cs.High()
}

// WriteTime sets the clock to dt. Hundredths of a second are reset to zero.
//
// This always sets the oscillator start bit and enables battery backup.
// Nothing is sent if any field is out of range.
func (d *Device) WriteTime(dt DateTime) error {
	seconds, err := EncodeSeconds(dt.Seconds)
	if err != nil {
		return err
	}
	minutes, err := EncodeMinutes(dt.Minutes)
	if err != nil {
		return err
	}
	hours, err := d.encodeHours(dt.Hours)
	if err != nil {
		return err
	}
	weekday, err := EncodeWeekday(dt.Weekday)
	if err != nil {
		return err
	}
	date, err := EncodeDate(dt.Date)
	if err != nil {
		return err
	}
	month, err := EncodeMonth(dt.Month)
	if err != nil {
		return err
	}
	year, err := EncodeYear(dt.Year)
	if err != nil {
		return err
	}

	d.buf = [frameLen]byte{
		byte(Write),
		byte(RegHundredths),
		0,
		byte(seconds),
		byte(minutes),
		byte(hours),
		byte(weekday),
		byte(date),
		byte(month),
		byte(year),
	}
	return d.tx(d.buf[:], nil)
}

func (d *Device) encodeHours(h uint8) (Hours, error) {
	if d.format != Format12Hour {
		return EncodeHours24(h)
	}
	if h > 23 {
		// report against the caller's 0-23 scale rather than the register's
		return 0, checkRange("hours", int(h), 0, 23)
	}
	pm := h >= 12
	h %= 12
	if h == 0 {
		h = 12
	}
	return EncodeHours12(h, pm)
}

// ReadTime reads the current time. Hours are returned on the 0-23 scale whichever format the chip is in.
//
// No validation is done on the values read.
func (d *Device) ReadTime() (DateTime, error) {
	d.buf = [frameLen]byte{byte(Read), byte(RegSeconds)}
	err := d.tx(d.buf[:], d.buf[:])
	if err != nil {
		return DateTime{}, err
	}

	// buf[2:] now holds seconds through control
	return DateTime{
		Seconds: Seconds(d.buf[2]).Seconds(),
		Minutes: Minutes(d.buf[3]).Minutes(),
		Hours:   Hours(d.buf[4]).Hours24(),
		Weekday: Weekday(d.buf[5]).Weekday(),
		Date:    Date(d.buf[6]).Date(),
		Month:   Month(d.buf[7]).Month(),
		Year:    Year(d.buf[8]).Year(),
	}, nil
}

// ReadStatus reads the oscillator, power-fail and battery flags.
func (d *Device) ReadStatus() (Status, error) {
	buf := d.buf[:3]
	buf[0], buf[1], buf[2] = byte(Read), byte(RegWeekday), 0
	err := d.tx(buf, buf)
	if err != nil {
		return Status{}, err
	}
	w := Weekday(buf[2])
	return Status{
		OscillatorRunning: w.OscillatorRunning(),
		PowerFail:         w.PowerFail(),
		BatteryEnabled:    w.BatteryEnabled(),
	}, nil
}

// Set sets the clock to t in t's location, truncated to the second.
func (d *Device) Set(t time.Time) error {
	return d.WriteTime(FromTime(t))
}

// Now returns the current time in UTC.
func (d *Device) Now() (time.Time, error) {
	dt, err := d.ReadTime()
	if err != nil {
		return time.Time{}, err
	}
	return dt.Time()
}

// tx runs one transaction with chip select held low, releasing it on every path.
func (d *Device) tx(w, r []byte) error {
	d.cs.Low()
	defer d.cs.High()
	return d.bus.Tx(w, r)
}
