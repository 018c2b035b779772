// Package partition implements the hierarchical partition-ID bit encoding
// used to label every node with the recursive-bisection cell it ends up
// in, plus the supporting RenumberingTable and LevelDirectory helpers and
// the recursive Partitioner that drives inertial-flow bisection to
// produce those IDs.
//
// A PartitionID doubles as a path in a binary tree: the root is 1, a
// node x's children are 2x and 2x+1, and the level of a node is the
// position of its highest set bit. Parent/child/ancestor queries are
// therefore constant-time bit operations rather than pointer chasing,
// which matters because every node in a road network ends up tagged
// with one.
package partition
