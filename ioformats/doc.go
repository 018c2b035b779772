// Package ioformats reads the road-network graph/coordinate file formats
// this toolbox consumes (DIMACS, DDSG, METIS) and writes its outputs: a
// length-prefixed binary partition file, a per-node assignment CSV, and
// a cut-edge CSV for downstream rendering.
package ioformats
