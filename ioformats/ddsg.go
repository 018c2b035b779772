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

// Direction is a DDSG edge's allowed travel direction, which determines
// how many directed edges it expands into.
type Direction int

const (
	DirectionBoth Direction = iota
	DirectionForward
	DirectionReverse
	DirectionClosed
)

func parseDirection(code int) (Direction, error) {
	switch code {
	case int(DirectionBoth), int(DirectionForward), int(DirectionReverse), int(DirectionClosed):
		return Direction(code), nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownDirection, code)
	}
}

// ReadDDSGGraph reads a DDSG graph: a literal "d" header line, a
// "nodes edges" size line, then one line per edge: "source target
// weight direction". Self-loops are dropped. Direction expands each
// line into zero, one, or two directed edges (DirectionClosed drops it
// entirely; DirectionBoth emits both orientations).
func ReadDDSGGraph(path string, weightType WeightType) ([]core.InputEdge[uint32], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ioformats: opening ddsg graph: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return nil, fmt.Errorf("ioformats: empty ddsg file: %w", ErrUnexpectedHeader)
	}
	if scanner.Text() != "d" {
		return nil, fmt.Errorf("%w: expected literal \"d\"", ErrUnexpectedHeader)
	}
	if !scanner.Scan() {
		return nil, fmt.Errorf("ioformats: missing ddsg size line: %w", ErrUnexpectedHeader)
	}

	var edges []core.InputEdge[uint32]
	for scanner.Scan() {
		line := scanner.Text()
		tokens := strings.Fields(line)
		if len(tokens) != 4 {
			continue
		}
		source, err := strconv.ParseUint(tokens[0], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("ioformats: ddsg source: %w", err)
		}
		target, err := strconv.ParseUint(tokens[1], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("ioformats: ddsg target: %w", err)
		}
		if source == target {
			continue
		}
		weight, err := strconv.ParseUint(tokens[2], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("ioformats: ddsg weight: %w", err)
		}
		directionCode, err := strconv.Atoi(tokens[3])
		if err != nil {
			return nil, fmt.Errorf("ioformats: ddsg direction: %w", err)
		}
		direction, err := parseDirection(directionCode)
		if err != nil {
			return nil, err
		}

		w := weightType.apply(uint32(weight))
		s, t := core.NodeID(source), core.NodeID(target)
		switch direction {
		case DirectionBoth:
			edges = append(edges, core.NewInputEdge(s, t, w), core.NewInputEdge(t, s, w))
		case DirectionForward:
			edges = append(edges, core.NewInputEdge(s, t, w))
		case DirectionReverse:
			edges = append(edges, core.NewInputEdge(t, s, w))
		case DirectionClosed:
			// closed in both directions: contributes no edge.
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("ioformats: reading ddsg graph: %w", err)
	}
	return edges, nil
}

// ReadDDSGCoordinates reads a DDSG coordinate file: a count line,
// followed by "index lon lat" lines scaled by 1e5.
func ReadDDSGCoordinates(path string) ([]geo.FPCoordinate, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ioformats: opening ddsg coordinates: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return nil, fmt.Errorf("ioformats: empty ddsg coordinate file: %w", ErrUnexpectedHeader)
	}
	count, err := strconv.Atoi(scanner.Text())
	if err != nil {
		return nil, fmt.Errorf("ioformats: ddsg coordinate count: %w", err)
	}

	coords := make([]geo.FPCoordinate, 0, count)
	for scanner.Scan() {
		tokens := strings.Fields(scanner.Text())
		if len(tokens) != 3 {
			continue
		}
		lon, err := strconv.ParseFloat(tokens[1], 64)
		if err != nil {
			return nil, fmt.Errorf("ioformats: ddsg coordinate lon: %w", err)
		}
		lat, err := strconv.ParseFloat(tokens[2], 64)
		if err != nil {
			return nil, fmt.Errorf("ioformats: ddsg coordinate lat: %w", err)
		}
		coords = append(coords, geo.NewFromLatLon(lat/100000, lon/100000))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("ioformats: reading ddsg coordinates: %w", err)
	}
	if len(coords) != count {
		return nil, fmt.Errorf("%w: declared %d, read %d", ErrCoordinateCountMismatch, count, len(coords))
	}
	return coords, nil
}
