package annotations

import (
	"github.com/ironsheep/arid-tools/internal/colormap"
	"github.com/ironsheep/arid-tools/internal/geometry"
)

// UnknownID is the label shown for annotations without an id.
const UnknownID = "unknown"

// Annotation is a single labeled region within one image.
type Annotation struct {
	// ID is the optional category label. Nil when absent from the source.
	ID *string `json:"id,omitempty"`

	// Coords is the polygon outline. Boxes use 4 corners ordered top-left,
	// top-right, bottom-right, bottom-left.
	Coords []geometry.Point `json:"coords"`

	// Score is the confidence in [0, 1].
	Score float64 `json:"score"`

	// Colormap optionally names the color scale used to draw the outline.
	Colormap string `json:"colormap,omitempty"`
}

// Label returns the annotation id, or UnknownID when it has none.
func (a Annotation) Label() string {
	if a.ID == nil {
		return UnknownID
	}
	return *a.ID
}

// ColormapName returns the annotation's color scale, defaulting to
// colormap.DefaultName.
func (a Annotation) ColormapName() string {
	if a.Colormap == "" {
		return colormap.DefaultName
	}
	return a.Colormap
}

// ImageRecord holds all annotations for one image.
type ImageRecord struct {
	Filename    string       `json:"filename"`
	Annotations []Annotation `json:"annotations"`
}

// StringID is a helper for building annotations with a literal id.
func StringID(s string) *string {
	return &s
}
