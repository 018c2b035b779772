// Package overlay builds the compact boundary-to-boundary distance
// matrix for one leaf partition cell: a BaseCell (the cell's incoming
// and outgoing boundary nodes plus its intra-cell edges) is processed
// into a MatrixCell holding all-pairs shortest distances between them.
// Stitching every leaf cell's MatrixCell together produces the skeleton
// graph for the next level of partitioning, or the final overlay.
package overlay
