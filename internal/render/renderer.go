// Package render prints upcoming birthdays for a terminal.
package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"

	"birthdays/internal/domain"
	"birthdays/internal/errors"
)

// Palette maps urgency tiers to terminal styles
type Palette struct {
	Urgent   *color.Color
	Upcoming *color.Color
}

// DefaultPalette styles urgent birthdays bold red and the rest bold yellow.
// Colour is switched off automatically when NO_COLOR is set or stdout is not a terminal.
func DefaultPalette() Palette {
	return Palette{
		Urgent:   color.New(color.FgRed, color.Bold),
		Upcoming: color.New(color.FgYellow, color.Bold),
	}
}

// Style returns the style for tier
func (p Palette) Style(tier domain.Tier) *color.Color {
	if tier == domain.TierUrgent {
		return p.Urgent
	}
	return p.Upcoming
}

// SetColor forces colour on or off for every style in the palette
func (p Palette) SetColor(enabled bool) Palette {
	for _, c := range []*color.Color{p.Urgent, p.Upcoming} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Renderer writes one line per upcoming birthday
type Renderer struct {
	out     io.Writer
	palette Palette
}

// NewRenderer creates a Renderer writing to out
func NewRenderer(out io.Writer, palette Palette) *Renderer {
	return &Renderer{out: out, palette: palette}
}

// FormatLine returns "<name> <surname> <day>.<month>" for the matched
// occurrence, with the day and month numerals styled for the record's tier
func (r *Renderer) FormatLine(u domain.Upcoming) (string, error) {
	if !u.Record.HasBirthdate() {
		return "", errors.NewMissingDateError(u.Record.FullName())
	}

	style := r.palette.Style(u.Tier)
	return fmt.Sprintf("%s %s %s.%s",
		u.Record.Name,
		u.Record.Surname,
		style.Sprint(strconv.Itoa(u.Occurrence.Day)),
		style.Sprint(strconv.Itoa(int(u.Occurrence.Month))),
	), nil
}

// Render writes every line in order. It stops at the first record that
// cannot be rendered; lines already written stay written.
func (r *Renderer) Render(upcoming []domain.Upcoming) error {
	for _, u := range upcoming {
		line, err := r.FormatLine(u)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(r.out, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}
