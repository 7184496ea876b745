// Package imaging loads, caches, converts and saves the raster images of a
// scene.
//
// All operations work with standard Go image.Image types and use a coordinate
// system where (0,0) is at the top-left corner, X increases rightward, and Y
// increases downward.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. Rasters returned by ToRGBA
// are mutable and must not be shared between goroutines that draw on them.
//
// # Formats
//
// PNG, JPEG, GIF, TIFF and BMP are decoded. Save picks the encoder from the
// destination extension, so an image saved under its original filename keeps
// its original format.
//
// # Performance Considerations
//
// For repeated operations on the same image, use ImageCache to avoid redundant
// disk reads. Large images may consume significant memory when cached.
// Consider using Evict() or Clear() to manage memory for long-running processes.
package imaging
