package ioformats

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/DennisOSRM/toolbox-rs-sub000/core"
	"github.com/DennisOSRM/toolbox-rs-sub000/partition"
)

// WriteAssignmentCSV writes one "node,partition_id" row per node.
func WriteAssignmentCSV(path string, ids []partition.ID) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ioformats: creating assignment csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"node", "partition_id"}); err != nil {
		return fmt.Errorf("ioformats: writing assignment csv header: %w", err)
	}
	for node, id := range ids {
		row := []string{strconv.Itoa(node), id.String()}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("ioformats: writing assignment csv row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

// WriteCutCSV writes one "source,target,weight" row per edge whose
// endpoints fall in different partition cells (a boundary edge of the
// final recursive bisection).
func WriteCutCSV(path string, edges []core.InputEdge[uint32], ids []partition.ID) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ioformats: creating cut csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"source", "target", "weight"}); err != nil {
		return fmt.Errorf("ioformats: writing cut csv header: %w", err)
	}
	for _, e := range edges {
		if ids[e.Source] == ids[e.Target] {
			continue
		}
		row := []string{
			strconv.FormatUint(uint64(e.Source), 10),
			strconv.FormatUint(uint64(e.Target), 10),
			strconv.FormatUint(uint64(e.Data), 10),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("ioformats: writing cut csv row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}
