// Package clockface draws the time and date held in an mcp795xx.DateTime on any display, using tinyfont.
//
// The time goes on the upper line and the date on the lower, both centered. Text from the previous draw is erased by
// redrawing it in the background color, so displays without a clear operation work too.
package clockface

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"

	"github.com/ajanata/tinyrtc/mcp795xx"
)

type Config struct {
	// Font defaults to FreeMono 9pt.
	Font *tinyfont.Font
	// Foreground defaults to white. Background is used to erase and defaults to black.
	Foreground color.RGBA
	Background color.RGBA
}

type Face struct {
	display drivers.Displayer
	font    *tinyfont.Font
	fg, bg  color.RGBA

	// what is currently on screen
	lines [2]string
}

// New creates a clock face on display with the default configuration.
func New(display drivers.Displayer) *Face {
	f := &Face{display: display}
	f.Configure(Config{})
	return f
}

func (f *Face) Configure(c Config) {
	if c.Font == nil {
		c.Font = &freemono.Regular9pt7b
	}
	if c.Foreground == (color.RGBA{}) {
		c.Foreground = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	}
	if c.Background == (color.RGBA{}) {
		c.Background = color.RGBA{A: 0xFF}
	}
	f.font = c.Font
	f.fg = c.Foreground
	f.bg = c.Background
}

// Draw renders dt and pushes the frame to the display. Lines that did not change are not redrawn.
func (f *Face) Draw(dt mcp795xx.DateTime) error {
	s := dt.String()
	// "2006-01-02 15:04:05"
	lines := [2]string{s[11:], s[:10]}

	_, h := f.display.Size()
	baselines := [2]int16{h * 7 / 16, h * 7 / 8}

	for i, line := range lines {
		if line == f.lines[i] {
			continue
		}
		if f.lines[i] != "" {
			f.write(f.lines[i], baselines[i], f.bg)
		}
		f.write(line, baselines[i], f.fg)
		f.lines[i] = line
	}
	return f.display.Display()
}

func (f *Face) write(s string, y int16, c color.RGBA) {
	w, _ := f.display.Size()
	inner, _ := tinyfont.LineWidth(f.font, s)
	x := (w - int16(inner)) / 2
	if x < 0 {
		x = 0
	}
	tinyfont.WriteLine(f.display, f.font, x, y, s, c)
}
