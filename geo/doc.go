// Package geo provides the fixed-point coordinate representation and axis
// projection coefficients used by the inertial-flow partitioning step.
//
// FPCoordinate stores latitude/longitude as integers scaled by 1e6
// (micro-degrees) rather than float64, so that projecting and sorting
// nodes along an axis is exact integer arithmetic with no accumulated
// floating-point error — the same reasoning that keeps DIMACS/OSM road
// graphs in fixed point end to end.
package geo
