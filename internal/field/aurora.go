package field

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Palette is the cheap rainbow channel: sin(2πt)*0.5+0.5.
func Palette(t float64) float64 {
	return math.Sin(t*2*math.Pi)*0.5 + 0.5
}

// Aurora returns the drifting rainbow band at uv. Off the band the result is black.
func Aurora(uv Vec2, time float64) RGB {
	q := V2(uv.X, 1-uv.Y+time*0.03)
	f := FBM(V3(q.X*10, q.Y*10, time*0.5))

	c := RGB{
		R: Palette(f),
		G: Palette(f + 1.0/3.0),
		B: Palette(f + 2.0/3.0),
	}

	mask := Smoothstep(0.2, 0, math.Abs(uv.Y+0.5-f)*5)

	return c.Scale(mask)
}

type AuroraMode int

const (
	// AuroraOff computes nothing for the aurora; the visible output is the ball field only.
	AuroraOff AuroraMode = iota
	// AuroraAdditive adds the aurora on top of the banded colour.
	AuroraAdditive
)

func (m AuroraMode) String() string {
	switch m {
	case AuroraOff:
		return "off"
	case AuroraAdditive:
		return "additive"
	}
	return fmt.Sprintf("AuroraMode(%d)", int(m))
}

var ErrUnknownAuroraMode = errors.New("unknown aurora mode")

func ParseAuroraMode(s string) (AuroraMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "off", "none":
		return AuroraOff, nil
	case "additive", "add", "on":
		return AuroraAdditive, nil
	}
	return AuroraOff, fmt.Errorf("%w: %q", ErrUnknownAuroraMode, s)
}

// MarshalText and UnmarshalText let the mode sit directly in config files.
func (m AuroraMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *AuroraMode) UnmarshalText(text []byte) error {
	mode, err := ParseAuroraMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}
