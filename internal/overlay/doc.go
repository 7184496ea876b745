// Package overlay draws annotation regions onto scene images.
//
// Renderer.RenderOverlay outlines each annotation polygon in the color its
// score maps to on the annotation's color scale and writes a white
// "<id>-<score%>" label at the polygon's first point. Labels are pushed down
// by a random 0-14 pixel jitter so that labels of overlapping regions stay
// readable. Renderer.RedactRegions instead fills each polygon with opaque
// white.
//
// Both operations draw into the caller's raster when it is an *image.RGBA;
// callers that need the original must copy it first (imaging.Clone).
//
// AnnotationPath places rendered output for an annotation method in a
// directory next to the source modality directory:
//
//	/data/wp1/rgb/3.png + "detector_a" -> /data/wp1/detector_a/3.png
package overlay
