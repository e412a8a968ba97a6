// Package clockcmd implements a small line-oriented command set for inspecting and setting an MCP795xx clock from a
// serial console. Lines are split with shell quoting rules, so a timestamp may be passed as one quoted argument.
//
//	now                                  print the current time
//	set 2024-03-15 14:30:45 [weekday]    set the time; weekday defaults to the calendar weekday (Sunday = 1)
//	status                               print oscillator, power-fail and battery flags
//	format 12|24                         select the hour format used by set
//	help                                 list commands
package clockcmd

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/shlex"

	"github.com/ajanata/tinyrtc/mcp795xx"
)

// Layout is the timestamp layout accepted by set.
const Layout = "2006-01-02 15:04:05"

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUsage          = errors.New("usage")
)

// Clock is the subset of *mcp795xx.Device used by the console.
type Clock interface {
	Configure(mcp795xx.Config)
	ReadTime() (mcp795xx.DateTime, error)
	WriteTime(mcp795xx.DateTime) error
	ReadStatus() (mcp795xx.Status, error)
}

type Console struct {
	clock Clock
	out   io.Writer
}

// New creates a console executing commands against clock and writing replies to out.
func New(clock Clock, out io.Writer) *Console {
	return &Console{
		clock: clock,
		out:   out,
	}
}

var usage = map[string]string{
	"now":    "now",
	"set":    "set YYYY-MM-DD HH:MM:SS [weekday]",
	"status": "status",
	"format": "format 12|24",
	"help":   "help",
}

// Exec runs a single command line. Blank lines are ignored.
func (c *Console) Exec(line string) error {
	args, err := shlex.Split(line)
	if err != nil {
		return fmt.Errorf("parse %q: %w", line, err)
	}
	if len(args) == 0 {
		return nil
	}

	switch args[0] {
	case "now":
		return c.now(args[1:])
	case "set":
		return c.set(args[1:])
	case "status":
		return c.status(args[1:])
	case "format":
		return c.format(args[1:])
	case "help":
		for _, name := range []string{"now", "set", "status", "format", "help"} {
			fmt.Fprintln(c.out, usage[name])
		}
		return nil
	}
	return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
}

func usageErr(cmd string) error {
	return fmt.Errorf("%w: %s", ErrUsage, usage[cmd])
}

func (c *Console) now(args []string) error {
	if len(args) != 0 {
		return usageErr("now")
	}
	dt, err := c.clock.ReadTime()
	if err != nil {
		return fmt.Errorf("read time: %w", err)
	}
	fmt.Fprintf(c.out, "%s weekday %d\n", dt, dt.Weekday)
	return nil
}

func (c *Console) set(args []string) error {
	var weekday string
	var stamp string
	switch len(args) {
	case 1:
		// quoted "date time"
		stamp = args[0]
	case 2:
		if strings.Contains(args[0], " ") {
			stamp, weekday = args[0], args[1]
		} else {
			stamp = args[0] + " " + args[1]
		}
	case 3:
		stamp, weekday = args[0]+" "+args[1], args[2]
	default:
		return usageErr("set")
	}

	t, err := time.Parse(Layout, stamp)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	dt := mcp795xx.FromTime(t)
	if weekday != "" {
		n, err := strconv.ParseUint(weekday, 10, 8)
		if err != nil {
			return fmt.Errorf("%w: weekday: %v", ErrUsage, err)
		}
		dt.Weekday = uint8(n)
	}

	if err := c.clock.WriteTime(dt); err != nil {
		return fmt.Errorf("write time: %w", err)
	}
	fmt.Fprintf(c.out, "set %s weekday %d\n", dt, dt.Weekday)
	return nil
}

func (c *Console) status(args []string) error {
	if len(args) != 0 {
		return usageErr("status")
	}
	st, err := c.clock.ReadStatus()
	if err != nil {
		return fmt.Errorf("read status: %w", err)
	}
	fmt.Fprintf(c.out, "oscillator running: %v\npower fail: %v\nbattery enabled: %v\n",
		st.OscillatorRunning, st.PowerFail, st.BatteryEnabled)
	return nil
}

func (c *Console) format(args []string) error {
	if len(args) != 1 {
		return usageErr("format")
	}
	var f mcp795xx.HourFormat
	switch args[0] {
	case "24":
		f = mcp795xx.Format24Hour
	case "12":
		f = mcp795xx.Format12Hour
	default:
		return usageErr("format")
	}
	c.clock.Configure(mcp795xx.Config{Format: f})
	fmt.Fprintf(c.out, "format %s\n", args[0])
	return nil
}
