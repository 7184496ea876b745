package colormap

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"sort"
	"sync"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultName is the scale used when an annotation names none.
const DefaultName = "binary"

// ErrUnknownColormap is returned when a scale name is not registered.
var ErrUnknownColormap = errors.New("unknown colormap")

// Scale is a continuous color scale.
type Scale interface {
	// At samples the scale at t and returns normalized RGBA components in [0, 1].
	// Values of t outside [0, 1] are clamped.
	At(t float64) (r, g, b, a float64)
}

// Provider resolves color scales by name.
type Provider interface {
	Scale(name string) (Scale, error)
}

// RGBColor represents an RGB color with 8-bit components.
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// RGBA returns the color as an opaque color.RGBA.
func (c RGBColor) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// Hex returns the color in "#RRGGBB" form.
func (c RGBColor) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// ScoreToColor samples the named scale at score and rounds the red, green and
// blue channels to the nearest 8-bit value. Alpha is ignored.
//
// # Errors
//
//   - ErrUnknownColormap if the provider does not know the name
func ScoreToColor(p Provider, score float64, name string) (RGBColor, error) {
	scale, err := p.Scale(name)
	if err != nil {
		return RGBColor{}, err
	}

	r, g, b, _ := scale.At(score)
	return RGBColor{R: to8(r), G: to8(g), B: to8(b)}, nil
}

func to8(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

// Gradient is a Scale made of color stops linearly interpolated in RGB space.
// Stops must be sorted by position; the first and last positions should be 0
// and 1.
type Gradient []Stop

// Stop is a single control color of a Gradient.
type Stop struct {
	Pos   float64
	Color colorful.Color
}

// EvenGradient spaces the given hex colors evenly over [0, 1].
// It panics on malformed hex input and is meant for static tables.
func EvenGradient(hexes ...string) Gradient {
	g := make(Gradient, len(hexes))
	for i, h := range hexes {
		pos := 0.0
		if len(hexes) > 1 {
			pos = float64(i) / float64(len(hexes)-1)
		}
		g[i] = Stop{Pos: pos, Color: mustHex(h)}
	}
	return g
}

// At implements Scale.
func (g Gradient) At(t float64) (float64, float64, float64, float64) {
	if len(g) == 0 {
		return 0, 0, 0, 1
	}
	t = math.Max(0, math.Min(1, t))

	c := g[len(g)-1].Color
	for i := 0; i < len(g)-1; i++ {
		lo, hi := g[i], g[i+1]
		if t <= hi.Pos {
			span := hi.Pos - lo.Pos
			if span <= 0 {
				c = hi.Color
			} else {
				c = lo.Color.BlendRgb(hi.Color, (t-lo.Pos)/span)
			}
			break
		}
	}
	if t <= g[0].Pos {
		c = g[0].Color
	}

	c = c.Clamped()
	return c.R, c.G, c.B, 1
}

// Reversed returns the gradient mirrored over [0, 1].
func (g Gradient) Reversed() Gradient {
	out := make(Gradient, len(g))
	for i, s := range g {
		out[len(g)-1-i] = Stop{Pos: 1 - s.Pos, Color: s.Color}
	}
	return out
}

// Registry is a Provider backed by a name to Scale map.
//
// Registry is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	scales map[string]Scale
}

// NewRegistry creates a registry preloaded with the built-in scales.
func NewRegistry() *Registry {
	r := &Registry{scales: make(map[string]Scale)}
	for name, g := range builtin() {
		r.scales[name] = g
		r.scales[name+"_r"] = g.Reversed()
	}
	return r
}

// Register adds or replaces a named scale.
func (r *Registry) Register(name string, s Scale) {
	r.mu.Lock()
	r.scales[name] = s
	r.mu.Unlock()
}

// Scale implements Provider.
func (r *Registry) Scale(name string) (Scale, error) {
	r.mu.RLock()
	s, ok := r.scales[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColormap, name)
	}
	return s, nil
}

// Names returns the registered scale names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.scales))
	for name := range r.scales {
		names = append(names, name)
	}
	r.mu.RUnlock()
	sort.Strings(names)
	return names
}

func mustHex(h string) colorful.Color {
	c, err := colorful.Hex(h)
	if err != nil {
		panic(fmt.Sprintf("colormap: bad hex color %q: %v", h, err))
	}
	return c
}

func builtin() map[string]Gradient {
	return map[string]Gradient{
		"binary": EvenGradient("#ffffff", "#000000"),
		"gray":   EvenGradient("#000000", "#ffffff"),
		"viridis": EvenGradient("#440154", "#472d7b", "#3b528b", "#2c728e", "#21918c",
			"#28ae80", "#5ec962", "#addc30", "#fde725"),
		"plasma": EvenGradient("#0d0887", "#4c02a1", "#7e03a8", "#a92395", "#cc4778",
			"#e56b5d", "#f89540", "#fdc527", "#f0f921"),
		"inferno": EvenGradient("#000004", "#1f0c48", "#550f6d", "#88226a", "#ba3655",
			"#e35933", "#f98e09", "#f8c932", "#fcffa4"),
		"magma": EvenGradient("#000004", "#1c1044", "#4f127b", "#812581", "#b5367a",
			"#e55064", "#fb8761", "#fec287", "#fcfdbf"),
		"jet": {
			{Pos: 0, Color: mustHex("#00007f")},
			{Pos: 0.125, Color: mustHex("#0000ff")},
			{Pos: 0.375, Color: mustHex("#00ffff")},
			{Pos: 0.625, Color: mustHex("#ffff00")},
			{Pos: 0.875, Color: mustHex("#ff0000")},
			{Pos: 1, Color: mustHex("#7f0000")},
		},
		"coolwarm": EvenGradient("#3b4cc0", "#dddddd", "#b40426"),
		"RdYlGn":   EvenGradient("#a50026", "#f46d43", "#ffffbf", "#66bd63", "#006837"),
		"Reds":     EvenGradient("#fff5f0", "#fcbba1", "#fb6a4a", "#cb181d", "#67000d"),
		"Greens":   EvenGradient("#f7fcf5", "#c7e9c0", "#74c476", "#238b45", "#00441b"),
		"Blues":    EvenGradient("#f7fbff", "#c6dbef", "#6baed6", "#2171b5", "#08306b"),
	}
}
