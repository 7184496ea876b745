// Package colormap maps confidence scores to colors through named continuous
// color scales.
//
// A Provider resolves a scale by name; a Scale samples a normalized RGBA
// color for a position in [0, 1]. Registry is the built-in Provider and ships
// the common sequential and diverging scales (binary, gray, viridis, plasma,
// inferno, magma, jet, coolwarm, RdYlGn, Reds, Greens, Blues) together with
// their "_r" reversed variants.
//
// Scales are piecewise linear gradients through a small set of control colors,
// interpolated in RGB space. They match the endpoints of the scales they are
// named after and approximate their interiors.
package colormap
