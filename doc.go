// Package superhex builds hexagonal game boards whose fields carry values
// that rise ring by ring from the rim toward the center.
//
// What is superhex?
//
//	A small, dependency-light library with two packages:
//		• hex:   axial coordinates and the six-direction vocabulary
//		• board: Field and Board types plus the ring-growing constructor
//
// Quick ASCII example (radius 1):
//
//	      1   1
//	    1   2   1
//	      1   1
//
// A board of radius R has 3R²+3R+1 fields; every neighbor link inside the
// hexagon is present and mirrored, and only rim fields have absent links.
//
// The cmd/superhex command builds a board from a YAML config and logs its
// ring summary.
//
//	go get github.com/katalvlaran/superhex
package superhex
