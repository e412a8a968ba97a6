package clockface

import (
	"errors"
	"image/color"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/ajanata/tinyrtc/mcp795xx"
)

type fakeDisplay struct {
	w, h     int16
	pixels   map[[2]int16]color.RGBA
	displays int
	err      error
}

func newFakeDisplay() *fakeDisplay {
	return &fakeDisplay{w: 128, h: 64, pixels: map[[2]int16]color.RGBA{}}
}

func (d *fakeDisplay) Size() (x, y int16) { return d.w, d.h }

func (d *fakeDisplay) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || x >= d.w || y >= d.h {
		return
	}
	d.pixels[[2]int16{x, y}] = c
}

func (d *fakeDisplay) Display() error {
	d.displays++
	return d.err
}

// lit counts pixels currently set to c.
func (d *fakeDisplay) lit(c color.RGBA) int {
	n := 0
	for _, p := range d.pixels {
		if p == c {
			n++
		}
	}
	return n
}

var (
	white = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	black = color.RGBA{A: 0xFF}
)

var sample = mcp795xx.DateTime{Seconds: 45, Minutes: 30, Hours: 14, Weekday: 6, Date: 15, Month: 3, Year: 2024}

func TestDraw(t *testing.T) {
	c := qt.New(t)
	d := newFakeDisplay()
	f := New(d)

	c.Assert(f.Draw(sample), qt.IsNil)
	c.Assert(d.displays, qt.Equals, 1)
	c.Assert(d.lit(white) > 0, qt.IsTrue)
	c.Assert(d.lit(black), qt.Equals, 0)
	c.Assert(f.lines, qt.Equals, [2]string{"14:30:45", "2024-03-15"})
}

func TestDrawErasesChangedLine(t *testing.T) {
	c := qt.New(t)
	d := newFakeDisplay()
	f := New(d)

	c.Assert(f.Draw(sample), qt.IsNil)
	next := sample
	next.Seconds = 46
	c.Assert(f.Draw(next), qt.IsNil)
	c.Assert(d.displays, qt.Equals, 2)
	c.Assert(d.lit(white) > 0, qt.IsTrue)
	c.Assert(f.lines, qt.Equals, [2]string{"14:30:46", "2024-03-15"})

	// redrawing the same value touches nothing
	before := len(d.pixels)
	c.Assert(f.Draw(next), qt.IsNil)
	c.Assert(len(d.pixels), qt.Equals, before)
}

func TestDrawDisplayError(t *testing.T) {
	c := qt.New(t)
	d := newFakeDisplay()
	d.err = errors.New("i2c nak")
	f := New(d)
	c.Assert(f.Draw(sample), qt.Equals, d.err)
}

func TestConfigureColors(t *testing.T) {
	c := qt.New(t)
	d := newFakeDisplay()
	f := New(d)
	red := color.RGBA{R: 0xFF, A: 0xFF}
	f.Configure(Config{Foreground: red})
	c.Assert(f.Draw(sample), qt.IsNil)
	c.Assert(d.lit(red) > 0, qt.IsTrue)
	c.Assert(d.lit(white), qt.Equals, 0)
}
