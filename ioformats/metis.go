package ioformats

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/DennisOSRM/toolbox-rs-sub000/core"
	"github.com/DennisOSRM/toolbox-rs-sub000/geo"
)

// ReadMETISGraph reads an unweighted METIS adjacency-list graph: a
// "nodes edges" header line, then one line per node (0-based, in file
// order) listing its 1-based neighbor IDs. Every edge gets weight 1;
// METIS carries no per-edge weight column in this format.
func ReadMETISGraph(path string) ([]core.InputEdge[uint32], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ioformats: opening metis graph: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return nil, fmt.Errorf("ioformats: empty metis file: %w", ErrUnexpectedHeader)
	}

	var edges []core.InputEdge[uint32]
	var currentSource core.NodeID
	for scanner.Scan() {
		tokens := strings.Fields(scanner.Text())
		for _, tok := range tokens {
			target, err := strconv.ParseUint(tok, 10, 32)
			if err != nil {
				return nil, fmt.Errorf("ioformats: metis neighbor: %w", err)
			}
			edges = append(edges, core.NewInputEdge(currentSource, core.NodeID(target-1), uint32(1)))
		}
		currentSource++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("ioformats: reading metis graph: %w", err)
	}
	return edges, nil
}

// ReadMETISCoordinates reads a METIS coordinate file: one "lon lat" line
// per node, scaled by 1e5, with no header line.
func ReadMETISCoordinates(path string) ([]geo.FPCoordinate, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ioformats: opening metis coordinates: %w", err)
	}
	defer f.Close()

	var coords []geo.FPCoordinate
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		tokens := strings.Fields(scanner.Text())
		if len(tokens) < 2 {
			continue
		}
		lon, err := strconv.ParseFloat(tokens[0], 64)
		if err != nil {
			return nil, fmt.Errorf("ioformats: metis coordinate lon: %w", err)
		}
		lat, err := strconv.ParseFloat(tokens[1], 64)
		if err != nil {
			return nil, fmt.Errorf("ioformats: metis coordinate lat: %w", err)
		}
		coords = append(coords, geo.NewFromLatLon(lat/100000, lon/100000))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("ioformats: reading metis coordinates: %w", err)
	}
	return coords, nil
}
