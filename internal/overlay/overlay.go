package overlay

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"math/rand"
	"time"

	"github.com/llgcode/draw2d/draw2dimg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/ironsheep/arid-tools/internal/annotations"
	"github.com/ironsheep/arid-tools/internal/colormap"
	"github.com/ironsheep/arid-tools/internal/geometry"
	"github.com/ironsheep/arid-tools/internal/imaging"
)

// MaxLabelJitter bounds the random vertical label offset: offsets are drawn
// from [0, MaxLabelJitter).
const MaxLabelJitter = 15

// DefaultLineWidth is the outline stroke width in pixels.
const DefaultLineWidth = 2.0

var labelColor = color.RGBA{255, 255, 255, 255}

// Renderer draws annotations onto images.
//
// A Renderer is not safe for concurrent use because it owns a random source.
// Create one per goroutine.
type Renderer struct {
	colors    colormap.Provider
	rng       *rand.Rand
	face      font.Face
	lineWidth float64
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithRand sets the random source used for label jitter.
func WithRand(rng *rand.Rand) Option {
	return func(r *Renderer) { r.rng = rng }
}

// WithLineWidth sets the outline stroke width.
func WithLineWidth(w float64) Option {
	return func(r *Renderer) { r.lineWidth = w }
}

// WithFace sets the label font face.
func WithFace(face font.Face) Option {
	return func(r *Renderer) { r.face = face }
}

// New creates a Renderer that resolves outline colors through colors.
func New(colors colormap.Provider, opts ...Option) *Renderer {
	r := &Renderer{
		colors:    colors,
		face:      basicfont.Face7x13,
		lineWidth: DefaultLineWidth,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.rng == nil {
		r.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return r
}

// Label returns the text drawn next to an annotation: its id (or "unknown")
// and its score as a whole percentage, e.g. "chair-87".
func Label(a annotations.Annotation) string {
	return fmt.Sprintf("%s-%d", a.Label(), int(math.RoundToEven(a.Score*100)))
}

// RenderOverlay outlines and labels each annotation in order and returns the
// drawn raster. When persist is true the result is written to dest,
// replacing any existing file.
//
// With no annotations the image is returned unmodified and nothing is
// written.
//
// # Errors
//
//   - colormap.ErrUnknownColormap if an annotation names an unknown scale;
//     the image is left untouched in that case
//   - Returns error if the result cannot be saved
func (r *Renderer) RenderOverlay(img image.Image, anns []annotations.Annotation, dest string, persist bool) (image.Image, error) {
	if len(anns) == 0 {
		return img, nil
	}

	// Resolve every color before drawing so a bad colormap leaves no partial overlay
	outlines := make([]color.RGBA, len(anns))
	for i, a := range anns {
		c, err := colormap.ScoreToColor(r.colors, a.Score, a.ColormapName())
		if err != nil {
			return nil, fmt.Errorf("annotation %d (%s): %w", i, a.Label(), err)
		}
		outlines[i] = c.RGBA()
	}

	canvas := imaging.ToRGBA(img)
	for i, a := range anns {
		r.strokePolygon(canvas, a.Coords, outlines[i])
		if len(a.Coords) > 0 {
			r.drawLabel(canvas, a.Coords[0], Label(a))
		}
	}

	if persist {
		if err := imaging.Save(canvas, dest); err != nil {
			return nil, err
		}
	}
	return canvas, nil
}

// RedactRegions fills each annotation polygon with opaque white, destroying
// the pixels underneath, and returns the raster. Persistence follows
// RenderOverlay.
func (r *Renderer) RedactRegions(img image.Image, anns []annotations.Annotation, dest string, persist bool) (image.Image, error) {
	if len(anns) == 0 {
		return img, nil
	}

	canvas := imaging.ToRGBA(img)
	for _, a := range anns {
		fillPolygon(canvas, a.Coords, color.White)
	}

	if persist {
		if err := imaging.Save(canvas, dest); err != nil {
			return nil, err
		}
	}
	return canvas, nil
}

func (r *Renderer) strokePolygon(canvas *image.RGBA, pts []geometry.Point, c color.Color) {
	if len(pts) < 2 {
		return
	}
	gc := draw2dimg.NewGraphicContext(canvas)
	gc.SetStrokeColor(c)
	gc.SetLineWidth(r.lineWidth)
	tracePolygon(gc, pts)
	gc.Stroke()
}

func fillPolygon(canvas *image.RGBA, pts []geometry.Point, c color.Color) {
	if len(pts) < 3 {
		return
	}
	gc := draw2dimg.NewGraphicContext(canvas)
	gc.SetFillColor(c)
	// A 1px stroke in the same color covers the anti-aliased boundary
	gc.SetStrokeColor(c)
	gc.SetLineWidth(1)
	tracePolygon(gc, pts)
	gc.FillStroke()
}

func tracePolygon(gc *draw2dimg.GraphicContext, pts []geometry.Point) {
	gc.BeginPath()
	gc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		gc.LineTo(p.X, p.Y)
	}
	gc.Close()
}

// drawLabel writes text with its top-left corner at the anchor, shifted down
// by a random jitter.
func (r *Renderer) drawLabel(canvas *image.RGBA, anchor geometry.Point, text string) {
	jitter := r.rng.Intn(MaxLabelJitter)
	ascent := r.face.Metrics().Ascent

	d := &font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(labelColor),
		Face: r.face,
		Dot: fixed.Point26_6{
			X: fixed.I(int(math.Round(anchor.X))),
			Y: fixed.I(int(math.Round(anchor.Y))+jitter) + ascent,
		},
	}
	d.DrawString(text)
}
