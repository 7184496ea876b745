// Package annotations holds the labeled regions recorded for each image of a
// scene.
//
// An annotation file is a JSON array of image records:
//
//	[
//	  {
//	    "filename": "img/3.png",
//	    "annotations": [
//	      {"id": "chair_1", "coords": [[10,10],[50,10],[50,40],[10,40]], "score": 0.92, "colormap": "viridis"}
//	    ]
//	  }
//	]
//
// Records are keyed by filename. The image identifier used by callers is the
// file stem, so image "3" maps to the key "img/3.png". A Store preserves the
// order in which keys were first inserted; a duplicate filename in the source
// replaces the earlier record in place.
package annotations
