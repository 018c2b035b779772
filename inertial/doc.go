// Package inertial implements the Inertial Flow heuristic: project every
// node onto a fixed axis, contract the extremes on each side into a
// virtual source/sink, and run max-flow between them. The resulting min
// cut is a cheap, geometry-aware approximation to a balanced graph
// bisection, tried at four axes in parallel so the best of the four can
// be picked.
package inertial
