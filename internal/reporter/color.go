package reporter

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

type ColorMode string

const (
	// Colour only when writing to a terminal.
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

func ParseColorMode(s string) (ColorMode, error) {
	switch mode := ColorMode(s); mode {
	case ColorAuto, ColorAlways, ColorNever:
		return mode, nil
	case "":
		return ColorAuto, nil
	default:
		return "", fmt.Errorf("invalid color mode '%s', expected one of auto, always, never", s)
	}
}

func (m ColorMode) enabled(out io.Writer) bool {
	switch m {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return isTerminal(out)
	}
}

type palette struct {
	success *color.Color
	failure *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		success: color.New(color.FgGreen),
		failure: color.New(color.FgRed, color.Bold),
	}

	for _, c := range []*color.Color{p.success, p.failure} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p
}
