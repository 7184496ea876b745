// Package catalog discovers the scenes of an ARID dataset on disk.
//
// The expected layout is:
//
//	<root>/<experiment>/<scene>/rgb/...
//	<root>/<experiment>/<scene>/depth/...
//	<root>/<experiment>/<scene>/pcl/...
//	<root>/<experiment>/<scene>/<scene>_labels.json
//
// Every other directory inside a scene holds the output of an alternative
// annotation method and is reported as a method root.
//
// Discovery is tolerant: a scene without a readable, well-formed labels file
// is logged and skipped, and never aborts the walk.
package catalog
