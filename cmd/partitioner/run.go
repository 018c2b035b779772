package main

import (
	"errors"
	"fmt"
	"log"
	"runtime"

	"github.com/DennisOSRM/toolbox-rs-sub000/core"
	"github.com/DennisOSRM/toolbox-rs-sub000/flow"
	"github.com/DennisOSRM/toolbox-rs-sub000/geo"
	"github.com/DennisOSRM/toolbox-rs-sub000/ioformats"
	"github.com/DennisOSRM/toolbox-rs-sub000/partition"
	"github.com/spf13/cobra"
)

// ErrInvariantViolation marks a validated-but-impossible run configuration
// or partitioning outcome, distinct from an I/O failure.
var ErrInvariantViolation = errors.New("partitioner: invariant violation")

// exitCodeFor maps a run error to the documented process exit code: 1 for
// an invariant violation, 2 for anything else (I/O, parse failures).
func exitCodeFor(err error) int {
	if err == nil {
		return 0
	}
	if errors.Is(err, ErrInvariantViolation) {
		return 1
	}
	return 2
}

func runPartition(cmd *cobra.Command, args []string) error {
	if cfg.recursionDepth < 1 || cfg.recursionDepth > 31 {
		return fmt.Errorf("%w: recursion depth %d out of range [1,31]", ErrInvariantViolation, cfg.recursionDepth)
	}
	if cfg.bFactor <= 0 || cfg.bFactor > 0.5 {
		return fmt.Errorf("%w: b-factor %f out of range (0,0.5]", ErrInvariantViolation, cfg.bFactor)
	}
	if cfg.minimumCellSize < 1 {
		return fmt.Errorf("%w: minimum cell size %d must be >= 1", ErrInvariantViolation, cfg.minimumCellSize)
	}
	if cfg.numberOfThreads > 0 {
		runtime.GOMAXPROCS(cfg.numberOfThreads)
	}

	log.Printf("reading graph %q (format=%s)", cfg.graphPath, cfg.graphFormat)
	rawEdges, coords, err := readInputs(cfg.graphPath, cfg.graphFormat, cfg.coordinatePath)
	if err != nil {
		return fmt.Errorf("reading inputs: %w", err)
	}
	log.Printf("loaded %d nodes, %d directed edges", len(coords), len(rawEdges))

	edges := make([]core.InputEdge[flow.ResidualCapacity], len(rawEdges))
	for i, e := range rawEdges {
		edges[i] = core.NewInputEdge(e.Source, e.Target, flow.NewResidualCapacity(int32(e.Data)))
	}

	log.Printf("partitioning: depth=%d balance=%.3f min-cell-size=%d", cfg.recursionDepth, cfg.bFactor, cfg.minimumCellSize)
	partitioner := partition.NewPartitioner(uint32(cfg.recursionDepth), cfg.minimumCellSize, cfg.bFactor)
	ids, err := partitioner.Partition(edges, coords)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvariantViolation, err)
	}
	log.Printf("partitioning complete")

	if cfg.partitionFile != "" {
		log.Printf("writing partition file %q", cfg.partitionFile)
		if err := ioformats.WritePartitionFile(cfg.partitionFile, ids); err != nil {
			return fmt.Errorf("writing partition file: %w", err)
		}
	}
	if cfg.assignmentCSV != "" {
		log.Printf("writing assignment csv %q", cfg.assignmentCSV)
		if err := ioformats.WriteAssignmentCSV(cfg.assignmentCSV, ids); err != nil {
			return fmt.Errorf("writing assignment csv: %w", err)
		}
	}
	if cfg.cutCSV != "" {
		log.Printf("writing cut csv %q", cfg.cutCSV)
		if err := ioformats.WriteCutCSV(cfg.cutCSV, rawEdges, ids); err != nil {
			return fmt.Errorf("writing cut csv: %w", err)
		}
	}
	return nil
}

// readInputs dispatches to the graph/coordinate reader pair matching
// format, which must be one of "dimacs", "ddsg", or "metis".
func readInputs(graphPath, format, coordinatePath string) ([]core.InputEdge[uint32], []geo.FPCoordinate, error) {
	switch format {
	case "dimacs":
		edges, err := ioformats.ReadDIMACSGraph(graphPath, ioformats.WeightOriginal)
		if err != nil {
			return nil, nil, err
		}
		coords, err := ioformats.ReadDIMACSCoordinates(coordinatePath)
		if err != nil {
			return nil, nil, err
		}
		return edges, coords, nil
	case "ddsg":
		edges, err := ioformats.ReadDDSGGraph(graphPath, ioformats.WeightOriginal)
		if err != nil {
			return nil, nil, err
		}
		coords, err := ioformats.ReadDDSGCoordinates(coordinatePath)
		if err != nil {
			return nil, nil, err
		}
		return edges, coords, nil
	case "metis":
		edges, err := ioformats.ReadMETISGraph(graphPath)
		if err != nil {
			return nil, nil, err
		}
		coords, err := ioformats.ReadMETISCoordinates(coordinatePath)
		if err != nil {
			return nil, nil, err
		}
		return edges, coords, nil
	default:
		return nil, nil, fmt.Errorf("%w: unknown graph format %q", ErrInvariantViolation, format)
	}
}
