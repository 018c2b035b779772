// Package toolbox is the root of a road-network partitioning toolbox: a
// CSR graph core, a Dinitz max-flow solver over residual capacities, an
// addressable min-heap, one-to-many Dijkstra, Inertial Flow axis cuts,
// a hierarchical PartitionID scheme, a recursive partitioner, and the
// overlay matrix construction used to stitch partitioned cells back
// together.
//
// Everything lives under subpackages:
//
//	core/       — dense CSR StaticGraph, NodeID/EdgeID, InputEdge
//	flow/       — residual graph construction, Dinitz max-flow, SharedBound
//	heap/       — addressable binary min-heap
//	dijkstra/   — one-to-many shortest paths over a StaticGraph
//	geo/        — fixed-point coordinates and axis projection
//	inertial/   — Inertial Flow axis-step partitioning
//	partition/  — PartitionID encoding and the recursive bisector
//	overlay/    — per-cell boundary distance matrices
//	ioformats/  — DIMACS/DDSG/METIS readers, partition/CSV writers
//	cmd/partitioner/ — the CLI entry point wiring all of the above
package toolbox
